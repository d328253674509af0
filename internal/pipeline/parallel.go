package pipeline

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// forEach calls fn for all indices in [0, count) and returns the lowest failing
// index and its error. Indices above a known failure are skipped, indices below
// it always run, so the reported index does not depend on scheduling.
// A canceled context is reported with index -1.
func forEach(ctx context.Context, workers, count int, fn func(i int) error) (int, error) {
	if workers < 2 {
		return forEachSequential(ctx, count, fn)
	}

	errs := make([]error, count)
	var lowest atomic.Int64
	lowest.Store(int64(count))

	var g errgroup.Group
	g.SetLimit(workers)

	for i := range count {
		if int64(i) > lowest.Load() {
			break
		}
		if err := ctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if int64(i) > lowest.Load() {
				return nil
			}
			if err := fn(i); err != nil {
				errs[i] = err
				lowerTo(&lowest, int64(i))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return -1, err
	}
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	for i, err := range errs {
		if err != nil {
			return i, err
		}
	}
	return 0, nil
}

func forEachSequential(ctx context.Context, count int, fn func(i int) error) (int, error) {
	for i := range count {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		if err := fn(i); err != nil {
			return i, err
		}
	}
	return 0, nil
}

func lowerTo(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n >= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}
