package ds

// Pair is an ordered 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a new Pair from the given elements.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}
