package utils

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineErrors(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		assert.NoError(t, CombineErrors())
		assert.NoError(t, CombineErrors(nil, nil))
	})

	t.Run("single error", func(t *testing.T) {
		err := errors.New("a")
		assert.Same(t, err, CombineErrors(nil, err))
	})

	t.Run("several errors", func(t *testing.T) {
		err := CombineErrors(errors.New("a"), nil, fs.ErrNotExist)
		assert.Equal(t, "a\nfile does not exist", err.Error())
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("prefix", func(t *testing.T) {
		err := CombineErrorsWithPrefixMessage("2 files are invalid", errors.New("a"), errors.New("b"))
		assert.Equal(t, "2 files are invalid: a\nb", err.Error())

		assert.NoError(t, CombineErrorsWithPrefixMessage("prefix"))
	})
}

func TestConvertPanicValueToError(t *testing.T) {
	err := errors.New("a")
	assert.Same(t, err, ConvertPanicValueToError(err))
	assert.EqualError(t, ConvertPanicValueToError("b"), `"b"`)
}

func TestCountDigits(t *testing.T) {
	assert.Equal(t, 1, CountDigits(0))
	assert.Equal(t, 1, CountDigits(9))
	assert.Equal(t, 2, CountDigits(10))
	assert.Equal(t, 3, CountDigits(-123))
}
