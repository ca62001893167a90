package seq

import "fmt"

// Pair is one joined row: an element from the left sequence and one from
// the right sequence.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// PairOf creates a Pair.
func PairOf[L, R any](left L, right R) Pair[L, R] {
	return Pair[L, R]{Left: left, Right: right}
}

// String returns "(left, right)".
func (p Pair[L, R]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}
