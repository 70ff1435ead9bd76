package fold

import "iter"

// CombineFunc folds one input into the running output value. It receives the
// current value itself, not a reference to it; the container stores whatever
// the function returns.
type CombineFunc[Out, In any] func(out Out, in In) Out

// ReduceFunc combines two values of the same type into one.
type ReduceFunc[T any] func(acc T, item T) T

// Peeker exposes the running value of a folding container.
type Peeker[Out any] interface {
	// Peek returns the current value without consuming the container
	Peek() Out
	// Snapshot returns a tagged copy of the current value
	Snapshot() Snapshot[Out]
}

// Folder is the contract shared by the dynamic- and static-dispatch folding
// containers, so callers can switch between them with minimal change.
type Folder[Out, In any] interface {
	Peeker[Out]
	// Fold folds a single input into the running value
	Fold(in In)
	// Extend folds every element of the sequence, in iteration order
	Extend(seq iter.Seq[In])
	// ExtendSlice folds every element of the slice, front to back
	ExtendSlice(ins []In)
	// IntoInner consumes the container and returns the final value
	IntoInner() Out
}
