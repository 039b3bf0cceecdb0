package value

import (
	"fmt"
	"strconv"
	"strings"
)

type KeyNotFoundError struct {
	Key string
}

func (err *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", err.Key)
}

type NotAnObjectError struct {
	Key   string
	Found Kind
}

func (err *NotAnObjectError) Error() string {
	return fmt.Sprintf("cannot get key %q: value is a(n) %s, not an object", err.Key, err.Found)
}

type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (err *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range (length %d)", err.Index, err.Length)
}

type NotAnArrayError struct {
	Index int
	Found Kind
}

func (err *NotAnArrayError) Error() string {
	return fmt.Sprintf("cannot get element %d: value is a(n) %s, not an array", err.Index, err.Found)
}

// Index returns the value associated with key in the object v.
func Index(v Value, key string) (Value, error) {
	obj, ok := v.(Object)
	if !ok {
		return nil, &NotAnObjectError{Key: key, Found: kindOf(v)}
	}
	elem, ok := obj.Get(key)
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return elem, nil
}

// Path follows keys from v, each key is either a string (object member) or an int (array element).
func Path(v Value, keys ...any) (Value, error) {
	current := v

	for i, key := range keys {
		var err error

		switch k := key.(type) {
		case string:
			current, err = Index(current, k)
		case int:
			current, err = elementAt(current, k)
		default:
			return nil, fmt.Errorf("invalid path key of type %T", key)
		}

		if err != nil {
			return nil, fmt.Errorf("%s: %w", FormatPath(keys[:i+1]), err)
		}
	}

	return current, nil
}

func elementAt(v Value, index int) (Value, error) {
	arr, ok := v.(Array)
	if !ok {
		return nil, &NotAnArrayError{Index: index, Found: kindOf(v)}
	}
	if index < 0 || index >= arr.Len() {
		return nil, &IndexOutOfRangeError{Index: index, Length: arr.Len()}
	}
	return arr.At(index), nil
}

// FormatPath formats a path in a JavaScript-like way: .key[0].other
func FormatPath(keys []any) string {
	var b strings.Builder
	for _, key := range keys {
		switch k := key.(type) {
		case string:
			b.WriteByte('.')
			b.WriteString(k)
		case int:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(k))
			b.WriteByte(']')
		}
	}
	if b.Len() == 0 {
		return "."
	}
	return b.String()
}

func kindOf(v Value) Kind {
	if v == nil {
		return 0
	}
	return v.Kind()
}
