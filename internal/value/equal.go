package value

// Equal reports whether a and b have the same shape and contents.
// Object equality does not depend on member order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch a := a.(type) {
	case Literal:
		b, ok := b.(Literal)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a.digits == b.digits
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Array:
		b, ok := b.(Array)
		if !ok || a.Len() != b.Len() {
			return false
		}
		for i, e := range a.elements {
			if !Equal(e, b.elements[i]) {
				return false
			}
		}
		return true
	case Object:
		b, ok := b.(Object)
		if !ok || a.Len() != b.Len() {
			return false
		}
		equal := true
		a.ForEach(func(key string, v Value) bool {
			other, ok := b.Get(key)
			equal = ok && Equal(v, other)
			return equal
		})
		return equal
	default:
		return false
	}
}

func (l Literal) Equal(other Value) bool { return Equal(l, other) }
func (n Number) Equal(other Value) bool  { return Equal(n, other) }
func (s String) Equal(other Value) bool  { return Equal(s, other) }
func (a Array) Equal(other Value) bool   { return Equal(a, other) }
func (o Object) Equal(other Value) bool  { return Equal(o, other) }
