// Package seq provides eager, composable operators over ordered, finite
// sequences.
//
// Every operator reads its inputs and returns a freshly allocated result;
// inputs are never mutated. Callables are fallible: the first error aborts
// the whole operation, no partial result is returned, and the error reaches
// the caller exactly as the callable produced it.
//
// # Operators
//
//   - Map: transform each element, preserving order and count
//   - Filter (Where): keep elements matching a predicate, preserving order
//   - Reduce: left fold with a seed and a combiner
//   - SimpleJoin: nested-loop inner join of two sequences
//   - Join: the same join expressed as two nested Reduce calls
//
// # Usage
//
//	evens := seq.Of(0, 2, 4, 6, 8)
//	doubled, _ := seq.Map(evens, seq.Pure(func(n int) int { return n * 2 }))
//	sum, _ := seq.Reduce(evens, 0, seq.PureCombiner(func(acc, n int) int { return acc + n }))
//	pairs, _ := seq.Join(evens, seq.Of(0, 3, 6, 9), seq.Always[int, int]())
package seq
