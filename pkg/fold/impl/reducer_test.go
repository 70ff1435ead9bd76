package impl

import (
	"slices"
	"testing"
)

// maxReduce keeps the larger of two ints.
type maxReduce struct{}

func (maxReduce) Reduce(acc int, item int) int {
	if item > acc {
		return item
	}
	return acc
}

func TestReducer_EmptyHasNoValue(t *testing.T) {
	t.Parallel()
	r := NewReducer[int, maxReduce]()
	if _, ok := r.Peek(); ok {
		t.Fatalf("expected empty reducer to have no value")
	}
	if _, ok := r.IntoInner(); ok {
		t.Fatalf("expected empty reducer to yield no value")
	}
}

func TestReducer_FirstItemAbsorbedAsIs(t *testing.T) {
	t.Parallel()
	r := NewReducer[int, maxReduce]()
	r.Reduce(-3)
	if v, ok := r.Peek(); !ok || v != -3 {
		t.Fatalf("expected -3 absorbed as-is, got %d (ok=%v)", v, ok)
	}
}

func TestReducer_Extend(t *testing.T) {
	t.Parallel()
	r := NewReducer[int, maxReduce]()
	r.Extend(slices.Values([]int{3, 9, 1, 7}))
	if v, ok := r.IntoInner(); !ok || v != 9 {
		t.Fatalf("expected 9, got %d (ok=%v)", v, ok)
	}
}

func TestCollectReduce(t *testing.T) {
	t.Parallel()
	r := CollectReduce[int, maxReduce](slices.Values([]int{4, 2, 8, 6}))
	if v, ok := r.IntoInner(); !ok || v != 8 {
		t.Fatalf("expected 8, got %d (ok=%v)", v, ok)
	}
}

func TestReducerFrom_SeedParticipates(t *testing.T) {
	t.Parallel()
	r := NewReducerFrom[int, maxReduce](10)
	r.ExtendSlice([]int{1, 2, 3})
	if v, ok := r.IntoInner(); !ok || v != 10 {
		t.Fatalf("expected seed 10 to win, got %d (ok=%v)", v, ok)
	}
}
