package seq

import (
	"fmt"
	"iter"
	"strings"
)

// Sequence is an ordered, finite, materialized collection of values.
// The zero value is an empty sequence ready to use.
type Sequence[T any] struct {
	items []T
}

// Of creates a sequence from the given values.
func Of[T any](items ...T) Sequence[T] {
	return FromSlice(items)
}

// FromSlice creates a sequence holding a copy of items.
func FromSlice[T any](items []T) Sequence[T] {
	if len(items) == 0 {
		return Sequence[T]{}
	}
	cp := make([]T, len(items))
	copy(cp, items)
	return Sequence[T]{items: cp}
}

// Empty returns an empty sequence.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{}
}

// Len returns the number of elements.
func (s Sequence[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the sequence has no elements.
func (s Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// At returns the element at index i. It panics if i is out of range.
func (s Sequence[T]) At(i int) T { return s.items[i] }

// Items returns a copy of the elements as a slice.
func (s Sequence[T]) Items() []T {
	cp := make([]T, len(s.items))
	copy(cp, s.items)
	return cp
}

// All yields index/element pairs in order.
func (s Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields elements in order.
func (s Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Append returns a new sequence with items added after the elements of s.
func (s Sequence[T]) Append(items ...T) Sequence[T] {
	out := make([]T, 0, len(s.items)+len(items))
	out = append(out, s.items...)
	out = append(out, items...)
	return Sequence[T]{items: out}
}

// String renders the sequence as [e0 e1 ...].
func (s Sequence[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

// Concat joins sequences in order into a new sequence.
func Concat[T any](seqs ...Sequence[T]) Sequence[T] {
	n := 0
	for _, s := range seqs {
		n += len(s.items)
	}
	if n == 0 {
		return Sequence[T]{}
	}
	out := make([]T, 0, n)
	for _, s := range seqs {
		out = append(out, s.items...)
	}
	return Sequence[T]{items: out}
}

// grow appends in place. Only valid on a sequence owned by the caller,
// such as a fold accumulator the caller created itself.
func (s Sequence[T]) grow(items ...T) Sequence[T] {
	s.items = append(s.items, items...)
	return s
}
