package commonfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFmtRune(t *testing.T) {
	testCases := []struct {
		input    rune
		expected string
	}{
		{'a', "'a'"},
		{'{', "'{'"},
		{'é', "'é'"},
		{'\n', `'\n'`},
		{'\t', `'\t'`},
		{'\'', `'\''`},
		{'\\', `'\\'`},
		{0, `'\x00'`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.expected, func(t *testing.T) {
			assert.Equal(t, testCase.expected, FmtRune(testCase.input))
		})
	}

	assert.Equal(t, "end of input", FmtFoundRune('a', true))
	assert.Equal(t, "'a'", FmtFoundRune('a', false))
}
