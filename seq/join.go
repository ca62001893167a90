package seq

// SimpleJoin returns every Pair(l, r) with l from left, r from right and
// cond(l, r) true. Pairs are emitted in nested-loop order: left-major,
// right-minor. cond is evaluated len(left)*len(right) times unless it fails.
func SimpleJoin[L, R any](left Sequence[L], right Sequence[R], cond Condition[L, R]) (Sequence[Pair[L, R]], error) {
	var out []Pair[L, R]
	for _, l := range left.items {
		for _, r := range right.items {
			ok, err := cond(l, r)
			if err != nil {
				return Sequence[Pair[L, R]]{}, err
			}
			if ok {
				out = append(out, Pair[L, R]{Left: l, Right: r})
			}
		}
	}
	return Sequence[Pair[L, R]]{items: out}, nil
}

// Join produces exactly the result of SimpleJoin, built from two folds:
// the outer Reduce walks left, and for each left row an inner Reduce walks
// right collecting the matching pairs, which are then appended to the outer
// accumulator. Errors from either fold are returned unchanged.
func Join[L, R any](left Sequence[L], right Sequence[R], cond Condition[L, R]) (Sequence[Pair[L, R]], error) {
	return Reduce(left, Empty[Pair[L, R]](), func(acc Sequence[Pair[L, R]], l L) (Sequence[Pair[L, R]], error) {
		row, err := Reduce(right, Empty[Pair[L, R]](), func(matches Sequence[Pair[L, R]], r R) (Sequence[Pair[L, R]], error) {
			ok, err := cond(l, r)
			if err != nil || !ok {
				return matches, err
			}
			return matches.grow(Pair[L, R]{Left: l, Right: r}), nil
		})
		if err != nil {
			return acc, err
		}
		// Both accumulators are private to this call, so growing in place
		// never touches a sequence the caller can see.
		return acc.grow(row.items...), nil
	})
}
