package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/kbukum/seqkit/display"
	"github.com/kbukum/seqkit/seq"
)

// Section is one labeled step of a demonstration run. Run renders its
// result to w and reports how many elements it produced.
type Section struct {
	Name  string
	Label string
	Run   func(ctx context.Context, w io.Writer) (int, error)
}

// outputError marks a failure of the writer rather than of an operator.
type outputError struct{ err error }

func (e *outputError) Error() string { return e.err.Error() }
func (e *outputError) Unwrap() error { return e.err }

// NewSection builds a Section from an operator pipeline. compute's error is
// passed through unchanged; a display failure is reported separately.
func NewSection[T any](name, label string, compute func(ctx context.Context) (seq.Sequence[T], error)) Section {
	return Section{
		Name:  name,
		Label: label,
		Run: func(ctx context.Context, w io.Writer) (int, error) {
			result, err := compute(ctx)
			if err != nil {
				return 0, err
			}
			if err := display.Labeled(w, label, result); err != nil {
				return 0, &outputError{err: err}
			}
			return result.Len(), nil
		},
	}
}

func isOdd(n int) bool { return n%2 != 0 }

// DefaultSections returns the standard demonstration over cfg's samples.
func DefaultSections(cfg *Config) []Section {
	evens := seq.FromSlice(cfg.Samples.Evens)
	thirds := seq.FromSlice(cfg.Samples.Thirds)
	m := cfg.Multiplier

	return []Section{
		NewSection("map", fmt.Sprintf("Map: evens * %d", m), func(context.Context) (seq.Sequence[int], error) {
			return seq.Map(evens, seq.Pure(func(n int) int { return n * m }))
		}),
		NewSection("reduce", "Reduce: sum of evens", func(context.Context) (seq.Sequence[int], error) {
			sum, err := seq.Reduce(evens, 0, seq.PureCombiner(func(acc, n int) int { return acc + n }))
			if err != nil {
				return seq.Sequence[int]{}, err
			}
			return seq.Of(sum), nil
		}),
		NewSection("where-evens", "Where: odd evens", func(context.Context) (seq.Sequence[int], error) {
			return seq.Where(evens, seq.PurePredicate(isOdd))
		}),
		NewSection("where-thirds", "Where: odd thirds", func(context.Context) (seq.Sequence[int], error) {
			return seq.Where(thirds, seq.PurePredicate(isOdd))
		}),
		NewSection("simple-join", "SimpleJoin: evens x thirds", func(context.Context) (seq.Sequence[seq.Pair[int, int]], error) {
			return seq.SimpleJoin(evens, thirds, seq.Always[int, int]())
		}),
		NewSection("join", "Join: evens x thirds", func(context.Context) (seq.Sequence[seq.Pair[int, int]], error) {
			return seq.Join(evens, thirds, seq.Always[int, int]())
		}),
		NewSection("join-equal", "Join: evens = thirds", func(context.Context) (seq.Sequence[seq.Pair[int, int]], error) {
			return seq.Join(evens, thirds, seq.PureCondition(func(l, r int) bool { return l == r }))
		}),
	}
}
