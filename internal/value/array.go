package value

// An Array is an ordered sequence of values.
type Array struct {
	elements []Value
}

// NewArray creates an array containing a copy of elements.
func NewArray(elements ...Value) Array {
	if len(elements) == 0 {
		return Array{}
	}
	return Array{elements: append(make([]Value, 0, len(elements)), elements...)}
}

// arrayFromSlice takes ownership of elements.
func arrayFromSlice(elements []Value) Array {
	return Array{elements: elements}
}

func (Array) Kind() Kind { return ArrayKind }
func (Array) value()     {}

func (a Array) Len() int {
	return len(a.elements)
}

// At returns the element at index i, it panics if i is out of bounds.
func (a Array) At(i int) Value {
	return a.elements[i]
}

// Elements returns a copy of the elements.
func (a Array) Elements() []Value {
	return append(make([]Value, 0, len(a.elements)), a.elements...)
}

// ForEach calls fn for each element in order until fn returns false.
func (a Array) ForEach(fn func(index int, elem Value) bool) {
	for i, e := range a.elements {
		if !fn(i, e) {
			return
		}
	}
}

// ArrayBuilder accumulates elements, Build should be called once.
type ArrayBuilder struct {
	elements []Value
	built    bool
}

func (b *ArrayBuilder) Append(v Value) {
	if b.built {
		panic(errAlreadyBuilt)
	}
	b.elements = append(b.elements, v)
}

func (b *ArrayBuilder) Len() int {
	return len(b.elements)
}

func (b *ArrayBuilder) Build() Array {
	if b.built {
		panic(errAlreadyBuilt)
	}
	b.built = true
	return arrayFromSlice(b.elements)
}
