package impl

import "iter"

// Reducible provides the reduction step for Reducer, combining two values
// of the same type. Implementations are typically empty struct types.
type Reducible[T any] interface {
	Reduce(acc T, item T) T
}

// Reducer is a Folder whose output and input types coincide and which needs
// no initial value: the first reduced item is absorbed as-is. The reduction
// operation is fixed by the type parameter R.
type Reducer[T any, R Reducible[T]] struct {
	item T
	has  bool
}

// NewReducer creates an empty Reducer.
func NewReducer[T any, R Reducible[T]]() *Reducer[T, R] {
	return &Reducer[T, R]{}
}

// NewReducerFrom creates a Reducer seeded with initial.
func NewReducerFrom[T any, R Reducible[T]](initial T) *Reducer[T, R] {
	return &Reducer[T, R]{
		item: initial,
		has:  true,
	}
}

// CollectReduce reduces an entire sequence into a fresh empty Reducer.
func CollectReduce[T any, R Reducible[T]](seq iter.Seq[T]) *Reducer[T, R] {
	r := NewReducer[T, R]()
	r.Extend(seq)
	return r
}

// Reduce folds a single item into the running value, or absorbs it as-is
// when the Reducer is still empty.
func (r *Reducer[T, R]) Reduce(item T) {
	if r.has {
		var red R
		r.item = red.Reduce(r.item, item)
		return
	}
	r.item = item
	r.has = true
}

// Extend reduces every element produced by seq, in iteration order.
func (r *Reducer[T, R]) Extend(seq iter.Seq[T]) {
	for item := range seq {
		r.Reduce(item)
	}
}

// ExtendSlice reduces every element of items, front to back.
func (r *Reducer[T, R]) ExtendSlice(items []T) {
	for _, item := range items {
		r.Reduce(item)
	}
}

// Peek returns the current value, if there is one.
func (r *Reducer[T, R]) Peek() (T, bool) {
	return r.item, r.has
}

// IntoInner consumes the Reducer and returns the final value, if any item
// was reduced. No operation is valid after this call.
func (r *Reducer[T, R]) IntoInner() (T, bool) {
	item, has := r.item, r.has
	var zero T
	r.item = zero
	r.has = false
	return item, has
}
