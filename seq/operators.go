package seq

// Transform maps one element to a new value.
type Transform[T, U any] func(T) (U, error)

// Predicate decides whether an element is kept.
type Predicate[T any] func(T) (bool, error)

// Combiner folds one element into an accumulator.
type Combiner[U, T any] func(U, T) (U, error)

// Condition decides whether a left and a right element form a joined row.
type Condition[L, R any] func(L, R) (bool, error)

// Pure adapts a total function to a Transform.
func Pure[T, U any](fn func(T) U) Transform[T, U] {
	return func(v T) (U, error) { return fn(v), nil }
}

// PurePredicate adapts a total predicate.
func PurePredicate[T any](fn func(T) bool) Predicate[T] {
	return func(v T) (bool, error) { return fn(v), nil }
}

// PureCombiner adapts a total combining function.
func PureCombiner[U, T any](fn func(U, T) U) Combiner[U, T] {
	return func(acc U, v T) (U, error) { return fn(acc, v), nil }
}

// PureCondition adapts a total join condition.
func PureCondition[L, R any](fn func(L, R) bool) Condition[L, R] {
	return func(l L, r R) (bool, error) { return fn(l, r), nil }
}

// Always returns a condition that matches every pair, turning a join into
// a cartesian product.
func Always[L, R any]() Condition[L, R] {
	return func(L, R) (bool, error) { return true, nil }
}

// Map applies fn to each element and returns the results in order.
// The result has the same length as s.
func Map[T, U any](s Sequence[T], fn Transform[T, U]) (Sequence[U], error) {
	if len(s.items) == 0 {
		return Sequence[U]{}, nil
	}
	out := make([]U, len(s.items))
	for i, v := range s.items {
		u, err := fn(v)
		if err != nil {
			return Sequence[U]{}, err
		}
		out[i] = u
	}
	return Sequence[U]{items: out}, nil
}

// Filter returns the elements of s for which fn holds, in their original
// relative order.
func Filter[T any](s Sequence[T], fn Predicate[T]) (Sequence[T], error) {
	var out []T
	for _, v := range s.items {
		ok, err := fn(v)
		if err != nil {
			return Sequence[T]{}, err
		}
		if ok {
			out = append(out, v)
		}
	}
	return Sequence[T]{items: out}, nil
}

// Where is an alias for Filter.
func Where[T any](s Sequence[T], fn Predicate[T]) (Sequence[T], error) {
	return Filter(s, fn)
}

// Reduce folds s from left to right: acc starts at seed and each element is
// combined into it in order. An empty sequence yields seed.
// On error the zero value of U is returned, never the partial accumulator.
func Reduce[T, U any](s Sequence[T], seed U, fn Combiner[U, T]) (U, error) {
	acc := seed
	for _, v := range s.items {
		next, err := fn(acc, v)
		if err != nil {
			var zero U
			return zero, err
		}
		acc = next
	}
	return acc, nil
}
