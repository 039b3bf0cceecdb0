package value

import (
	"errors"

	"github.com/tidwall/btree"
)

var (
	errAlreadyBuilt = errors.New("builder has already been used")
)

// An Object maps string keys to values. Keys are iterated in ascending byte order,
// the order of the members in the source text is not preserved.
type Object struct {
	members *btree.Map[string, Value] //nil if the object is empty
}

// Member is a key-value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// NewObject creates an object from the given members, if a key appears several times the last member wins.
func NewObject(members ...Member) Object {
	var b ObjectBuilder
	for _, m := range members {
		b.Set(m.Key, m.Value)
	}
	return b.Build()
}

func (Object) Kind() Kind { return ObjectKind }
func (Object) value()     {}

func (o Object) Len() int {
	if o.members == nil {
		return 0
	}
	return o.members.Len()
}

// Get returns the value associated with key, ok is false if there is no such key.
func (o Object) Get(key string) (v Value, ok bool) {
	if o.members == nil {
		return nil, false
	}
	return o.members.Get(key)
}

func (o Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// ForEach calls fn for each member in ascending key order until fn returns false.
func (o Object) ForEach(fn func(key string, v Value) bool) {
	if o.members == nil {
		return
	}
	o.members.Scan(fn)
}

func (o Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.ForEach(func(key string, _ Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (o Object) Members() []Member {
	members := make([]Member, 0, o.Len())
	o.ForEach(func(key string, v Value) bool {
		members = append(members, Member{Key: key, Value: v})
		return true
	})
	return members
}

// ObjectBuilder accumulates the members of an object, setting an existing key overwrites its value.
// Build should be called once, the builder cannot be used afterwards.
type ObjectBuilder struct {
	members *btree.Map[string, Value]
	built   bool
}

// Set sets the value of key and reports whether a previous value has been overwritten.
func (b *ObjectBuilder) Set(key string, v Value) (overwritten bool) {
	if b.built {
		panic(errAlreadyBuilt)
	}
	if b.members == nil {
		b.members = new(btree.Map[string, Value])
	}
	_, overwritten = b.members.Set(key, v)
	return
}

func (b *ObjectBuilder) Len() int {
	if b.members == nil {
		return 0
	}
	return b.members.Len()
}

func (b *ObjectBuilder) Build() Object {
	if b.built {
		panic(errAlreadyBuilt)
	}
	b.built = true
	return Object{members: b.members}
}
