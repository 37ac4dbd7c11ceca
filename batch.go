package triego

import (
	"context"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/triego/core"
	"golang.org/x/sync/errgroup"
)

// defaultChunkSize keeps per-task bookkeeping negligible next to the
// lookups themselves.
const defaultChunkSize = 256

// LookupAll performs one independent lookup per key, fanned out across a
// bounded set of goroutines. The returned slice is positionally aligned with
// keys; missing keys hold core.AbsentOrdinal.
//
// Lookups in flight are not interrupted by ctx, but no new chunk starts once
// ctx is done.
func (v View) LookupAll(ctx context.Context, keys [][]byte, optFns ...BatchOption) ([]core.Ordinal, error) {
	opts := batchOptions{
		Parallelism: runtime.GOMAXPROCS(0),
		ChunkSize:   defaultChunkSize,
		Logger:      NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	results := make([]core.Ordinal, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)

	for lo := 0; lo < len(keys); lo += opts.ChunkSize {
		lo := lo
		hi := min(lo+opts.ChunkSize, len(keys))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				results[i] = v.Lookup(keys[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		opts.Logger.LogBatchLookup(len(keys), 0, err)
		return nil, err
	}

	found := 0
	for _, ord := range results {
		if ord != core.AbsentOrdinal {
			found++
		}
	}
	opts.Logger.LogBatchLookup(len(keys), found, nil)

	return results, nil
}

// LookupBitmap performs LookupAll and additionally collects the positions of
// the keys that were found into a roaring bitmap, so callers can intersect
// or iterate hit sets cheaply.
func (v View) LookupBitmap(ctx context.Context, keys [][]byte, optFns ...BatchOption) (*roaring.Bitmap, []core.Ordinal, error) {
	ordinals, err := v.LookupAll(ctx, keys, optFns...)
	if err != nil {
		return nil, nil, err
	}
	found := roaring.New()
	for i, ord := range ordinals {
		if ord != core.AbsentOrdinal {
			found.Add(uint32(i))
		}
	}
	return found, ordinals, nil
}
