package adder

import (
	"iter"

	"github.com/ib-77/autofold/pkg/fold"
)

// Adder folds values with the + operator. It is the fixed-operation
// counterpart of a summing Folder: numerics accumulate a sum, strings
// concatenate.
type Adder[T fold.Addable] struct {
	sum T
}

// New creates an Adder starting from the zero value of T.
func New[T fold.Addable]() *Adder[T] {
	return &Adder[T]{}
}

// NewFrom creates an Adder starting from initial.
func NewFrom[T fold.Addable](initial T) *Adder[T] {
	return &Adder[T]{sum: initial}
}

// Collect sums an entire sequence into a fresh Adder.
func Collect[T fold.Addable](seq iter.Seq[T]) *Adder[T] {
	a := New[T]()
	a.Extend(seq)
	return a
}

// Fold adds a single item to the running sum.
func (a *Adder[T]) Fold(item T) {
	a.sum += item
}

// Extend adds every element produced by seq, in iteration order.
func (a *Adder[T]) Extend(seq iter.Seq[T]) {
	for item := range seq {
		a.sum += item
	}
}

// ExtendSlice adds every element of items, front to back.
func (a *Adder[T]) ExtendSlice(items []T) {
	for _, item := range items {
		a.sum += item
	}
}

// Peek returns the running sum.
func (a *Adder[T]) Peek() T {
	return a.sum
}

// Snapshot returns a tagged copy of the running sum.
func (a *Adder[T]) Snapshot() fold.Snapshot[T] {
	return fold.NewSnapshot(a.sum)
}

// IntoInner consumes the Adder and returns the final sum.
func (a *Adder[T]) IntoInner() T {
	sum := a.sum
	var zero T
	a.sum = zero
	return sum
}
