package minmax

import (
	"iter"

	"github.com/ib-77/autofold/pkg/fold"
)

// Min keeps only the smallest value seen so far.
type Min[T fold.Ordered] struct {
	item T
	has  bool
}

// NewMin creates an empty Min.
func NewMin[T fold.Ordered]() *Min[T] {
	return &Min[T]{}
}

// NewMinFrom creates a Min seeded with initial.
func NewMinFrom[T fold.Ordered](initial T) *Min[T] {
	return &Min[T]{item: initial, has: true}
}

// NewMinNum creates a Min seeded with the top bound of T, so it is never
// empty and any reduced value replaces the seed.
func NewMinNum[T fold.Number]() *Min[T] {
	return &Min[T]{item: fold.MaxBound[T](), has: true}
}

// Reduce keeps item if it is strictly smaller than the current value, or
// absorbs it as-is when Min is still empty. Unordered values (NaN) are
// never kept over an existing value.
func (m *Min[T]) Reduce(item T) {
	if !m.has || item < m.item {
		m.item = item
		m.has = true
	}
}

// Eval is an alias for Reduce.
func (m *Min[T]) Eval(item T) {
	m.Reduce(item)
}

// Extend reduces every element produced by seq, in iteration order.
func (m *Min[T]) Extend(seq iter.Seq[T]) {
	for item := range seq {
		m.Reduce(item)
	}
}

// ExtendSlice reduces every element of items, front to back.
func (m *Min[T]) ExtendSlice(items []T) {
	for _, item := range items {
		m.Reduce(item)
	}
}

// Peek returns the current value, if there is one.
func (m *Min[T]) Peek() (T, bool) {
	return m.item, m.has
}

// IntoInner consumes the Min and returns the smallest value seen, if any.
func (m *Min[T]) IntoInner() (T, bool) {
	item, has := m.item, m.has
	var zero T
	m.item = zero
	m.has = false
	return item, has
}

// Max keeps only the largest value seen so far.
type Max[T fold.Ordered] struct {
	item T
	has  bool
}

// NewMax creates an empty Max.
func NewMax[T fold.Ordered]() *Max[T] {
	return &Max[T]{}
}

// NewMaxFrom creates a Max seeded with initial.
func NewMaxFrom[T fold.Ordered](initial T) *Max[T] {
	return &Max[T]{item: initial, has: true}
}

// NewMaxNum creates a Max seeded with the bottom bound of T, so it is never
// empty and any reduced value replaces the seed.
func NewMaxNum[T fold.Number]() *Max[T] {
	return &Max[T]{item: fold.MinBound[T](), has: true}
}

// Reduce keeps item if it is strictly larger than the current value, or
// absorbs it as-is when Max is still empty. Unordered values (NaN) are
// never kept over an existing value.
func (m *Max[T]) Reduce(item T) {
	if !m.has || item > m.item {
		m.item = item
		m.has = true
	}
}

// Eval is an alias for Reduce.
func (m *Max[T]) Eval(item T) {
	m.Reduce(item)
}

// Extend reduces every element produced by seq, in iteration order.
func (m *Max[T]) Extend(seq iter.Seq[T]) {
	for item := range seq {
		m.Reduce(item)
	}
}

// ExtendSlice reduces every element of items, front to back.
func (m *Max[T]) ExtendSlice(items []T) {
	for _, item := range items {
		m.Reduce(item)
	}
}

// Peek returns the current value, if there is one.
func (m *Max[T]) Peek() (T, bool) {
	return m.item, m.has
}

// IntoInner consumes the Max and returns the largest value seen, if any.
func (m *Max[T]) IntoInner() (T, bool) {
	item, has := m.item, m.has
	var zero T
	m.item = zero
	m.has = false
	return item, has
}
