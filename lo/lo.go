// Package lo holds small generic helpers used across the codebase.
package lo

import (
	"github.com/bdfio/bdf.go/constraints"
)

// Comparator returns -1, 0 or 1 depending on how a orders against b.
func Comparator[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// PanicOnErr returns the result if err is nil and panics otherwise.
func PanicOnErr[T any](result T, err error) T {
	if err != nil {
		panic(err)
	}

	return result
}

// Return2 returns the second of the given parameters.
func Return2[A any](_ any, a A) A {
	return a
}
