package utils

import (
	"golang.org/x/exp/constraints"
)

func CountDigits[I constraints.Integer](n I) int {
	count := 0
	if n < 0 {
		n = -n
	}

	for n >= 10 {
		n /= 10
		count++
	}
	count++

	return count
}
