package dyn

import (
	"iter"

	"github.com/ib-77/autofold/pkg/fold"
)

// Reducer is a Folder whose output and input types coincide and which needs
// no initial value: the first reduced item is absorbed as-is, without
// calling the combining function.
type Reducer[T any] struct {
	item    T
	has     bool
	combine fold.ReduceFunc[T]
}

// NewReducer creates an empty Reducer combining with combine.
func NewReducer[T any](combine fold.ReduceFunc[T]) *Reducer[T] {
	return &Reducer[T]{combine: combine}
}

// NewReducerFrom creates a Reducer seeded with initial.
func NewReducerFrom[T any](initial T, combine fold.ReduceFunc[T]) *Reducer[T] {
	return &Reducer[T]{
		item:    initial,
		has:     true,
		combine: combine,
	}
}

// Reduce folds a single item into the running value, or absorbs it as-is
// when the Reducer is still empty.
func (r *Reducer[T]) Reduce(item T) {
	if r.has {
		r.item = r.combine(r.item, item)
		return
	}
	r.item = item
	r.has = true
}

// Extend reduces every element produced by seq, in iteration order.
func (r *Reducer[T]) Extend(seq iter.Seq[T]) {
	for item := range seq {
		r.Reduce(item)
	}
}

// ExtendSlice reduces every element of items, front to back.
func (r *Reducer[T]) ExtendSlice(items []T) {
	for _, item := range items {
		r.Reduce(item)
	}
}

// Peek returns the current value, if there is one.
func (r *Reducer[T]) Peek() (T, bool) {
	return r.item, r.has
}

// IntoInner consumes the Reducer and returns the final value, if any item
// was reduced. No operation is valid after this call.
func (r *Reducer[T]) IntoInner() (T, bool) {
	item, has := r.item, r.has
	var zero T
	r.item = zero
	r.has = false
	r.combine = nil
	return item, has
}
