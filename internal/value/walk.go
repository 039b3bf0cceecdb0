package value

import (
	"fmt"
	"runtime/debug"
)

type TraversalAction int

const (
	ContinueTraversal TraversalAction = iota
	Prune
	StopTraversal
)

// A Handler is called for each value of a tree, path contains the keys (string) and indexes (int) leading to v.
// The path slice is reused between calls, it should be copied if retained.
type Handler = func(v Value, parent Value, path []any, after bool) (TraversalAction, error)

// Walk performs a pre-order depth-first traversal of a value tree. postHandle is called on a value
// after all its descendants have been visited. Object members are visited in ascending key order.
func Walk(root Value, handle, postHandle Handler) (err error) {
	defer func() {
		v := recover()

		switch val := v.(type) {
		case walkError:
			err = val.err
		case error:
			err = fmt.Errorf("%s:%w", debug.Stack(), val)
		case nil:
		case TraversalAction:
		default:
			panic(v)
		}
	}()

	path := make([]any, 0, 8)
	walk(root, nil, &path, handle, postHandle)
	return
}

type walkError struct {
	err error
}

func walk(v, parent Value, path *[]any, fn, afterFn Handler) {
	if v == nil {
		return
	}

	if fn != nil {
		action, err := fn(v, parent, *path, false)

		if err != nil {
			panic(walkError{err})
		}

		switch action {
		case StopTraversal:
			panic(StopTraversal)
		case Prune:
			return
		}
	}

	switch val := v.(type) {
	case Array:
		for i, elem := range val.elements {
			*path = append(*path, i)
			walk(elem, v, path, fn, afterFn)
			*path = (*path)[:len(*path)-1]
		}
	case Object:
		val.ForEach(func(key string, elem Value) bool {
			*path = append(*path, key)
			walk(elem, v, path, fn, afterFn)
			*path = (*path)[:len(*path)-1]
			return true
		})
	}

	if afterFn != nil {
		action, err := afterFn(v, parent, *path, true)

		if err != nil {
			panic(walkError{err})
		}

		if action == StopTraversal {
			panic(StopTraversal)
		}
	}
}

// MaxDepth returns the nesting depth of v: 0 for a scalar, each array or object (even empty) adds a level.
func MaxDepth(v Value) int {
	depth := 0
	Walk(v, func(v, _ Value, path []any, _ bool) (TraversalAction, error) {
		d := len(path)
		switch v.(type) {
		case Array, Object:
			d++
		}
		if d > depth {
			depth = d
		}
		return ContinueTraversal, nil
	}, nil)
	return depth
}
