package value

import (
	"github.com/goccy/go-json"
)

// ToAny converts v to Go values: map[string]any for objects, []any for arrays,
// string, json.Number, bool and nil for null.
func ToAny(v Value) any {
	switch val := v.(type) {
	case Literal:
		if val.IsNull() {
			return nil
		}
		b, _ := val.Bool()
		return b
	case Number:
		return json.Number(val.digits)
	case String:
		return string(val)
	case Array:
		elements := make([]any, len(val.elements))
		for i, e := range val.elements {
			elements[i] = ToAny(e)
		}
		return elements
	case Object:
		members := make(map[string]any, val.Len())
		val.ForEach(func(key string, e Value) bool {
			members[key] = ToAny(e)
			return true
		})
		return members
	default:
		return nil
	}
}

func (l Literal) MarshalJSON() ([]byte, error) {
	return []byte(l.String()), nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.digits), nil
}

func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (a Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToAny(a))
}

func (o Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToAny(o))
}
