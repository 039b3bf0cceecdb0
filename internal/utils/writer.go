package utils

import (
	"testing"
)

// TestWriter forwards writes to the test's log, it is used as a log destination in tests.
type TestWriter struct {
	T *testing.T
}

func (w *TestWriter) Write(p []byte) (n int, err error) {
	w.T.Log(string(p))
	return len(p), nil
}
