package impl

import (
	"iter"

	"github.com/ib-77/autofold/pkg/fold"
)

// Combiner provides the folding step for Folder. Implementations are
// typically empty struct types; the method is resolved at compile time for
// each Folder instantiation, which lets the compiler inline the call.
type Combiner[Out, In any] interface {
	Combine(out Out, in In) Out
}

// Folder accumulates values with a combining operation fixed by the type
// parameter C rather than passed at construction. Each (Out, In, C)
// instantiation has exactly one combining function; in exchange, Folders
// can be built from the zero value alone, which the dynamic-dispatch
// variant cannot offer.
//
// C must be instantiable as its zero value, so use a struct type, not an
// interface or function type.
type Folder[Out, In any, C Combiner[Out, In]] struct {
	out Out
}

// New creates a Folder holding initial.
func New[Out, In any, C Combiner[Out, In]](initial Out) *Folder[Out, In, C] {
	return &Folder[Out, In, C]{out: initial}
}

// NewDefault creates a Folder holding the zero value of Out. Only use it
// when the zero value is a meaningful starting point for C.
func NewDefault[Out, In any, C Combiner[Out, In]]() *Folder[Out, In, C] {
	return &Folder[Out, In, C]{}
}

// Collect folds an entire sequence into a fresh zero-valued Folder. It is
// the sequence-consumption counterpart of NewDefault.
func Collect[Out, In any, C Combiner[Out, In]](seq iter.Seq[In]) *Folder[Out, In, C] {
	f := NewDefault[Out, In, C]()
	f.Extend(seq)
	return f
}

// Fold folds a single input into the running value. Panics raised by the
// combining method propagate to the caller unchanged.
func (f *Folder[Out, In, C]) Fold(in In) {
	var c C
	f.out = c.Combine(f.out, in)
}

// Extend folds every element produced by seq, pulled one at a time, in
// iteration order. An empty sequence is a no-op.
func (f *Folder[Out, In, C]) Extend(seq iter.Seq[In]) {
	for in := range seq {
		f.Fold(in)
	}
}

// ExtendSlice folds every element of ins, front to back.
func (f *Folder[Out, In, C]) ExtendSlice(ins []In) {
	for _, in := range ins {
		f.Fold(in)
	}
}

// Peek returns the current value. For pointer-shaped outputs the caller
// shares the referent with the container: read immediately, do not retain
// across subsequent Fold or Extend calls.
func (f *Folder[Out, In, C]) Peek() Out {
	return f.out
}

// Snapshot returns a tagged copy of the current value.
func (f *Folder[Out, In, C]) Snapshot() fold.Snapshot[Out] {
	return fold.NewSnapshot(f.out)
}

// IntoInner consumes the Folder and returns the final value. The running
// value is zeroed; no operation is valid after this call.
func (f *Folder[Out, In, C]) IntoInner() Out {
	out := f.out
	var zero Out
	f.out = zero
	return out
}
