package utils

import "io"

func Must[T any](obj T, err error) T {
	if err != nil {
		panic(err)
	}
	return obj
}

func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

// MustWriteMany writes each slice to w and panics on the first error.
func MustWriteMany(w io.Writer, slices ...[]byte) {
	for _, b := range slices {
		Must(w.Write(b))
	}
}
