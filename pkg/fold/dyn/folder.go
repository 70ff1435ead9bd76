package dyn

import (
	"iter"

	"github.com/ib-77/autofold/pkg/fold"
)

// Folder accumulates values with a combining function supplied at
// construction time. The function is invoked through the stored reference,
// so a single Folder type serves any output/input pairing at the cost of
// one indirect call per fold.
type Folder[Out, In any] struct {
	out     Out
	combine fold.CombineFunc[Out, In]
}

// New creates a Folder holding initial, folding with combine.
func New[Out, In any](initial Out, combine fold.CombineFunc[Out, In]) *Folder[Out, In] {
	return &Folder[Out, In]{
		out:     initial,
		combine: combine,
	}
}

// Fold folds a single input into the running value. The combining function
// receives the current value itself and its return value replaces it; any
// panic it raises propagates to the caller unchanged.
func (f *Folder[Out, In]) Fold(in In) {
	f.out = f.combine(f.out, in)
}

// Extend folds every element produced by seq, pulled one at a time, in
// iteration order. An empty sequence is a no-op.
func (f *Folder[Out, In]) Extend(seq iter.Seq[In]) {
	for in := range seq {
		f.Fold(in)
	}
}

// ExtendSlice folds every element of ins, front to back.
func (f *Folder[Out, In]) ExtendSlice(ins []In) {
	for _, in := range ins {
		f.Fold(in)
	}
}

// Peek returns the current value. For pointer-shaped outputs the caller
// shares the referent with the container: read immediately, do not retain
// across subsequent Fold or Extend calls.
func (f *Folder[Out, In]) Peek() Out {
	return f.out
}

// Snapshot returns a tagged copy of the current value.
func (f *Folder[Out, In]) Snapshot() fold.Snapshot[Out] {
	return fold.NewSnapshot(f.out)
}

// IntoInner consumes the Folder and returns the final value. The combining
// function is dropped so that a later Fold panics; no operation is valid
// after this call.
func (f *Folder[Out, In]) IntoInner() Out {
	out := f.out
	var zero Out
	f.out = zero
	f.combine = nil
	return out
}
