package flow

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/autofold/pkg/fold"
	"github.com/ib-77/autofold/pkg/fold/dyn"
)

// Feed drains ch into dst on the calling goroutine. It returns nil once ch
// closes, or ctx.Err() if the context is cancelled first. The partially
// folded value stays in dst either way.
func Feed[Out, In any](ctx context.Context, dst fold.Folder[Out, In], ch <-chan In) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-ch:
			if !ok {
				return nil
			}
			dst.Fold(in)
		}
	}
}

// Parallel folds the inputs arriving on ch with a fixed number of workers.
// Each worker owns a private folder obtained from newFolder; once ch closes
// the partial values are merged with merge, in no particular order. The
// containers themselves are never shared between goroutines; workers
// serialize through ch alone.
//
// merge must agree with the folders' combining function for the final value
// to be input-order independent.
func Parallel[Out, In any](ctx context.Context, ch <-chan In, workers int,
	newFolder func() fold.Folder[Out, In], merge fold.ReduceFunc[Out]) (Out, error) {

	if workers < 1 {
		workers = 1
	}

	partials := make([]Out, workers)
	g, ctx := errgroup.WithContext(ctx)

	for i := range workers {
		g.Go(func() error {
			f := newFolder()
			err := Feed(ctx, f, ch)
			partials[i] = f.IntoInner()
			return err
		})
	}

	if err := g.Wait(); err != nil {
		var zero Out
		return zero, err
	}

	merged := dyn.NewReducer(merge)
	merged.ExtendSlice(partials)
	out, _ := merged.IntoInner()
	return out, nil
}
