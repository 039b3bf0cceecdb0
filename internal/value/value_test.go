package value

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inoxlang/rson/internal/testconfig"
)

func gpuDetail() Object {
	return NewObject(
		Member{"RamType", String("DDR6")},
		Member{"SerialNum", MustNumber("12837982")},
	)
}

func TestNumber(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("valid", func(t *testing.T) {
		n, err := NewNumber("1234213243")
		require.NoError(t, err)
		assert.Equal(t, "1234213243", n.Digits())

		i, err := n.Int64()
		require.NoError(t, err)
		assert.EqualValues(t, 1234213243, i)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewNumber("")
		assert.ErrorIs(t, err, ErrInvalidNumber)
	})

	t.Run("sign, fraction and exponent are rejected", func(t *testing.T) {
		for _, s := range []string{"-1", "+1", "1.5", "1e3", " 1"} {
			_, err := NewNumber(s)
			assert.ErrorIs(t, err, ErrInvalidNumber, s)
		}
	})

	t.Run("digits larger than int64", func(t *testing.T) {
		n := MustNumber("123456789012345678901234567890")
		_, err := n.Int64()
		assert.Error(t, err)
		assert.Equal(t, "123456789012345678901234567890", n.BigInt().String())
	})
}

func TestLiteral(t *testing.T) {
	testconfig.AllowParallelization(t)

	assert.Equal(t, True, Bool(true))
	assert.Equal(t, False, Bool(false))
	assert.True(t, Null.IsNull())

	b, ok := True.Bool()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = Null.Bool()
	assert.False(t, ok)

	assert.Equal(t, "null", Null.String())
	assert.Equal(t, LiteralKind, Null.Kind())
}

func TestObject(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("empty", func(t *testing.T) {
		obj := NewObject()
		assert.Zero(t, obj.Len())
		assert.Empty(t, obj.Keys())
		_, ok := obj.Get("a")
		assert.False(t, ok)
	})

	t.Run("last member wins", func(t *testing.T) {
		obj := NewObject(Member{"k", MustNumber("1")}, Member{"k", MustNumber("2")})
		assert.Equal(t, 1, obj.Len())

		v, ok := obj.Get("k")
		require.True(t, ok)
		assert.True(t, Equal(MustNumber("2"), v))
	})

	t.Run("keys are iterated in ascending order", func(t *testing.T) {
		obj := NewObject(Member{"b", Null}, Member{"c", Null}, Member{"a", Null})
		assert.Equal(t, []string{"a", "b", "c"}, obj.Keys())
	})

	t.Run("builder cannot be reused", func(t *testing.T) {
		var b ObjectBuilder
		assert.False(t, b.Set("a", Null))
		assert.True(t, b.Set("a", True))
		b.Build()

		assert.Panics(t, func() {
			b.Set("b", Null)
		})
	})
}

func TestArray(t *testing.T) {
	testconfig.AllowParallelization(t)

	elements := []Value{String("A"), MustNumber("1")}
	arr := NewArray(elements...)
	elements[0] = Null

	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, String("A"), arr.At(0), "the array should not share its storage with the argument")

	copied := arr.Elements()
	copied[1] = Null
	assert.Equal(t, MustNumber("1"), arr.At(1))

	var visited []int
	arr.ForEach(func(index int, _ Value) bool {
		visited = append(visited, index)
		return index == 0
	})
	assert.Equal(t, []int{0, 1}, visited)
}

func TestEqual(t *testing.T) {
	testconfig.AllowParallelization(t)

	testCases := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"same literals", Null, Null, true},
		{"different literals", True, False, false},
		{"same numbers", MustNumber("12"), MustNumber("12"), true},
		{"numbers are compared as text", MustNumber("012"), MustNumber("12"), false},
		{"number and string", MustNumber("1"), String("1"), false},
		{"same arrays", NewArray(True, String("a")), NewArray(True, String("a")), true},
		{"arrays with different orders", NewArray(True, False), NewArray(False, True), false},
		{"arrays with different lengths", NewArray(True), NewArray(True, True), false},
		{"empty array and empty object", NewArray(), NewObject(), false},
		{
			"objects with members in different orders",
			NewObject(Member{"a", True}, Member{"b", gpuDetail()}),
			NewObject(Member{"b", gpuDetail()}, Member{"a", True}),
			true,
		},
		{
			"objects with different values",
			NewObject(Member{"a", True}),
			NewObject(Member{"a", False}),
			false,
		},
		{
			"objects with different keys",
			NewObject(Member{"a", True}),
			NewObject(Member{"b", True}),
			false,
		},
		{"nil values", nil, nil, true},
		{"nil and null", nil, Null, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.equal, Equal(testCase.a, testCase.b))
			assert.Equal(t, testCase.equal, Equal(testCase.b, testCase.a))
		})
	}
}

func TestIndexAndPath(t *testing.T) {
	testconfig.AllowParallelization(t)

	root := NewObject(
		Member{"Name", String("Devajit Asem")},
		Member{"GPUDetail", gpuDetail()},
		Member{"Array", NewArray(String("Devajit Asem"), MustNumber("12324"), True, False, Null)},
	)

	t.Run("index", func(t *testing.T) {
		v, err := Index(root, "Name")
		require.NoError(t, err)
		assert.Equal(t, String("Devajit Asem"), v)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := Index(root, "HasGPU")
		var keyErr *KeyNotFoundError
		require.True(t, errors.As(err, &keyErr))
		assert.Equal(t, "HasGPU", keyErr.Key)
	})

	t.Run("index of a non-object", func(t *testing.T) {
		_, err := Index(String("a"), "a")
		var notObjErr *NotAnObjectError
		require.True(t, errors.As(err, &notObjErr))
		assert.Equal(t, StringKind, notObjErr.Found)
	})

	t.Run("path", func(t *testing.T) {
		v, err := Path(root, "GPUDetail", "SerialNum")
		require.NoError(t, err)
		assert.Equal(t, MustNumber("12837982"), v)

		v, err = Path(root, "Array", 4)
		require.NoError(t, err)
		assert.Equal(t, Null, v)
	})

	t.Run("path: out of range", func(t *testing.T) {
		_, err := Path(root, "Array", 5)
		var rangeErr *IndexOutOfRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, 5, rangeErr.Length)
		assert.Contains(t, err.Error(), ".Array[5]")
	})

	t.Run("empty path", func(t *testing.T) {
		v, err := Path(root)
		require.NoError(t, err)
		assert.True(t, Equal(root, v))
	})
}

func TestWalk(t *testing.T) {
	testconfig.AllowParallelization(t)

	root := NewObject(
		Member{"b", NewArray(MustNumber("1"), MustNumber("2"))},
		Member{"a", String("x")},
	)

	t.Run("pre-order", func(t *testing.T) {
		var paths []string
		err := Walk(root, func(v, parent Value, path []any, after bool) (TraversalAction, error) {
			paths = append(paths, FormatPath(path))
			return ContinueTraversal, nil
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{".", ".a", ".b", ".b[0]", ".b[1]"}, paths)
	})

	t.Run("prune", func(t *testing.T) {
		var count int
		err := Walk(root, func(v, parent Value, path []any, after bool) (TraversalAction, error) {
			count++
			if _, ok := v.(Array); ok {
				return Prune, nil
			}
			return ContinueTraversal, nil
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("stop", func(t *testing.T) {
		var count int
		err := Walk(root, func(v, parent Value, path []any, after bool) (TraversalAction, error) {
			count++
			return StopTraversal, nil
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("error", func(t *testing.T) {
		handlerErr := errors.New("handler error")
		err := Walk(root, nil, func(v, parent Value, path []any, after bool) (TraversalAction, error) {
			return ContinueTraversal, handlerErr
		})

		assert.ErrorIs(t, err, handlerErr)
	})

	t.Run("max depth", func(t *testing.T) {
		assert.Equal(t, 0, MaxDepth(Null))
		assert.Equal(t, 1, MaxDepth(NewArray()))
		assert.Equal(t, 2, MaxDepth(root))
	})
}

func TestToAnyAndMarshalJSON(t *testing.T) {
	testconfig.AllowParallelization(t)

	root := NewObject(
		Member{"Id", MustNumber("93638382")},
		Member{"Tags", NewArray(String("a"), True, Null)},
	)

	assert.Equal(t, map[string]any{
		"Id":   json.Number("93638382"),
		"Tags": []any{"a", true, nil},
	}, ToAny(root))

	b, err := json.Marshal(root)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Id": 93638382, "Tags": ["a", true, null]}`, string(b))
}
