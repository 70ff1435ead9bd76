package minmax

import (
	"iter"

	"github.com/ib-77/autofold/pkg/fold"
)

// MinMax keeps both the smallest and the largest value seen so far. It
// moves through three states: empty, holding a single value, and holding
// both extremes once two distinct values have been reduced.
type MinMax[T fold.Ordered] struct {
	min T
	max T
	n   int // 0 empty, 1 single (held in min), >= 2 both
}

// NewMinMax creates an empty MinMax.
func NewMinMax[T fold.Ordered]() *MinMax[T] {
	return &MinMax[T]{}
}

// NewMinMaxFrom creates a MinMax holding a single initial value.
func NewMinMaxFrom[T fold.Ordered](initial T) *MinMax[T] {
	return &MinMax[T]{min: initial, n: 1}
}

// Reduce folds item into the tracked extremes. While holding a single
// value, a strictly smaller or larger item promotes the state to both;
// equal or unordered items leave the state unchanged.
func (m *MinMax[T]) Reduce(item T) {
	switch {
	case m.n == 0:
		m.min = item
		m.n = 1
	case m.n == 1:
		if item < m.min {
			m.max = m.min
			m.min = item
			m.n = 2
		} else if item > m.min {
			m.max = item
			m.n = 2
		}
	default:
		if item < m.min {
			m.min = item
		} else if item > m.max {
			m.max = item
		}
	}
}

// Eval is an alias for Reduce.
func (m *MinMax[T]) Eval(item T) {
	m.Reduce(item)
}

// Extend reduces every element produced by seq, in iteration order.
func (m *MinMax[T]) Extend(seq iter.Seq[T]) {
	for item := range seq {
		m.Reduce(item)
	}
}

// ExtendSlice reduces every element of items, front to back.
func (m *MinMax[T]) ExtendSlice(items []T) {
	for _, item := range items {
		m.Reduce(item)
	}
}

// Peek returns the current extremes, if any value has been reduced. With a
// single value held, both extremes are that value.
func (m *MinMax[T]) Peek() (min T, max T, ok bool) {
	switch m.n {
	case 0:
		return
	case 1:
		return m.min, m.min, true
	default:
		return m.min, m.max, true
	}
}

// MinPeek returns the current minimum, if there is one.
func (m *MinMax[T]) MinPeek() (T, bool) {
	return m.min, m.n > 0
}

// MaxPeek returns the current maximum, if there is one.
func (m *MinMax[T]) MaxPeek() (T, bool) {
	if m.n == 1 {
		return m.min, true
	}
	return m.max, m.n > 0
}

// ToInner consumes the MinMax and returns the extremes, if any value was
// reduced.
func (m *MinMax[T]) ToInner() (min T, max T, ok bool) {
	min, max, ok = m.Peek()
	var zero T
	m.min = zero
	m.max = zero
	m.n = 0
	return
}
