package util

// Pair provides a simple encapsulation of two items paired together.  Unlike
// upair.UnorderedPair, position carries meaning here: Pair{1,2} and Pair{2,1}
// are distinct values.
type Pair[S any, T any] struct {
	Left  S
	Right T
}

// NewPair returns a new instance of Pair by value.
func NewPair[S any, T any](left S, right T) Pair[S, T] {
	return Pair[S, T]{left, right}
}

// NewPairRef returns a reference to a new instance of Pair.
func NewPairRef[S any, T any](left S, right T) *Pair[S, T] {
	var p Pair[S, T] = NewPair(left, right)
	return &p
}

// Unpack returns the two components of this pair.
func (p Pair[S, T]) Unpack() (S, T) {
	return p.Left, p.Right
}

// Swap returns a new pair with the two components exchanged.
func (p Pair[S, T]) Swap() Pair[T, S] {
	return Pair[T, S]{p.Right, p.Left}
}
