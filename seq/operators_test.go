package seq

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

var errBoom = errors.New("boom")

func TestOf_CopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	s := FromSlice(src)
	src[0] = 99
	if s.At(0) != 1 {
		t.Errorf("expected sequence to be independent of source slice, got %v", s)
	}
	items := s.Items()
	items[1] = 42
	if s.At(1) != 2 {
		t.Errorf("expected Items to return a copy, got %v", s)
	}
}

func TestSequence_ZeroValue(t *testing.T) {
	var s Sequence[string]
	if !s.IsEmpty() || s.Len() != 0 {
		t.Errorf("expected empty zero value, got len %d", s.Len())
	}
	if s.String() != "[]" {
		t.Errorf("expected [], got %q", s.String())
	}
}

func TestSequence_AppendAndConcat(t *testing.T) {
	a := Of(1, 2)
	b := a.Append(3)
	if a.Len() != 2 {
		t.Errorf("Append mutated receiver: %v", a)
	}
	if got := b.Items(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
	c := Concat(a, Empty[int](), b)
	if got := c.Items(); !slices.Equal(got, []int{1, 2, 1, 2, 3}) {
		t.Errorf("got %v, want [1 2 1 2 3]", got)
	}
	if Concat[int]().Len() != 0 {
		t.Error("expected empty concat")
	}
}

func TestSequence_Iterators(t *testing.T) {
	s := Of("a", "b", "c")
	var idx []int
	var vals []string
	for i, v := range s.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	if !slices.Equal(idx, []int{0, 1, 2}) || !slices.Equal(vals, []string{"a", "b", "c"}) {
		t.Errorf("got %v %v", idx, vals)
	}
	if got := slices.Collect(s.Values()); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("got %v", got)
	}
	for v := range s.Values() {
		if v == "a" {
			break
		}
		t.Errorf("expect break on first element, got %q", v)
	}
}

func TestMap(t *testing.T) {
	got, err := Map(Of(0, 2, 4, 6, 8), Pure(func(n int) int { return n * 2 }))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 4, 8, 12, 16}
	if !slices.Equal(got.Items(), want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMap_TypeConversion(t *testing.T) {
	in := Of(1, 2, 3)
	got, err := Map(in, Pure(func(n int) string { return fmt.Sprintf("#%d", n) }))
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != in.Len() {
		t.Fatalf("expected %d elements, got %d", in.Len(), got.Len())
	}
	for i, v := range got.All() {
		if want := fmt.Sprintf("#%d", in.At(i)); v != want {
			t.Errorf("index %d: expected %q, got %q", i, want, v)
		}
	}
}

func TestMap_Empty(t *testing.T) {
	calls := 0
	got, err := Map(Empty[int](), func(n int) (int, error) {
		calls++
		return n, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 0 || calls != 0 {
		t.Errorf("expected empty result and no calls, got %v after %d calls", got, calls)
	}
}

func TestMap_ErrorFailsFast(t *testing.T) {
	calls := 0
	got, err := Map(Of(1, 2, 3), func(n int) (int, error) {
		calls++
		if n == 2 {
			return 0, errBoom
		}
		return n, nil
	})
	if err != errBoom {
		t.Fatalf("expected callable error unchanged, got %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("expected no partial result, got %v", got)
	}
	if calls != 2 {
		t.Errorf("expected traversal to stop after 2 calls, got %d", calls)
	}
}

func TestMap_DoesNotMutateInput(t *testing.T) {
	in := Of(1, 2, 3)
	if _, err := Map(in, Pure(func(n int) int { return -n })); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(in.Items(), []int{1, 2, 3}) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestFilter(t *testing.T) {
	odd := PurePredicate(func(n int) bool { return n%2 != 0 })
	tests := []struct {
		name string
		in   Sequence[int]
		want []int
	}{
		{"no odd elements", Of(0, 2, 4, 6, 8), nil},
		{"some odd elements", Of(0, 3, 6, 9), []int{3, 9}},
		{"all odd", Of(1, 3, 5), []int{1, 3, 5}},
		{"empty", Empty[int](), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Filter(tc.in, odd)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got.Items(), tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
			if got.Len() > tc.in.Len() {
				t.Errorf("filter grew the sequence: %d > %d", got.Len(), tc.in.Len())
			}
		})
	}
}

func TestWhere_MatchesFilter(t *testing.T) {
	in := Of(5, 1, 4, 2, 3)
	gt2 := PurePredicate(func(n int) bool { return n > 2 })
	a, _ := Filter(in, gt2)
	b, _ := Where(in, gt2)
	if !slices.Equal(a.Items(), b.Items()) {
		t.Errorf("Where %v != Filter %v", b, a)
	}
	if !slices.Equal(a.Items(), []int{5, 4, 3}) {
		t.Errorf("got %v, want [5 4 3]", a)
	}
}

func TestFilter_ErrorFailsFast(t *testing.T) {
	calls := 0
	got, err := Filter(Of(1, 2, 3, 4), func(n int) (bool, error) {
		calls++
		if n == 3 {
			return false, errBoom
		}
		return true, nil
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("expected no partial result, got %v", got)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestReduce_Sum(t *testing.T) {
	sum, err := Reduce(Of(0, 2, 4, 6, 8), 0, PureCombiner(func(acc, n int) int { return acc + n }))
	if err != nil {
		t.Fatal(err)
	}
	if sum != 20 {
		t.Errorf("expected 20, got %d", sum)
	}
}

func TestReduce_EmptyReturnsSeed(t *testing.T) {
	got, err := Reduce(Empty[int](), "seed", func(string, int) (string, error) {
		return "", errBoom
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "seed" {
		t.Errorf("expected seed, got %q", got)
	}
}

func TestReduce_LeftToRight(t *testing.T) {
	// Non-associative combiner exposes evaluation order.
	got, err := Reduce(Of("a", "b", "c"), "s", PureCombiner(func(acc, v string) string {
		return "(" + acc + v + ")"
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := "(((sa)b)c)"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	diff, _ := Reduce(Of(1, 2, 3), 10, PureCombiner(func(acc, n int) int { return acc - n }))
	if diff != 4 {
		t.Errorf("expected ((10-1)-2)-3 = 4, got %d", diff)
	}
}

func TestReduce_ErrorDiscardsAccumulator(t *testing.T) {
	calls := 0
	got, err := Reduce(Of(1, 2, 3, 4), 100, func(acc, n int) (int, error) {
		calls++
		if n == 3 {
			return acc, errBoom
		}
		return acc + n, nil
	})
	if err != errBoom {
		t.Fatalf("expected errBoom, got %v", err)
	}
	if got != 0 {
		t.Errorf("expected zero value, got %d", got)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestPair_String(t *testing.T) {
	if got := PairOf(1, "x").String(); got != "(1, x)" {
		t.Errorf("got %q", got)
	}
}
