package bytekit

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ChunkFunc transforms one chunk. Each invocation gets an independent
// slice of the input; no state is shared across chunks.
type ChunkFunc func(ctx context.Context, chunk []byte) ([]byte, error)

// ProcessChunks partitions data into chunkSize pieces (the last one may
// be shorter) and runs fn over them with at most maxParallel in flight.
// Results keep chunk order regardless of completion order. The first
// failure or a context cancellation aborts the remaining work.
func ProcessChunks(ctx context.Context, data []byte, chunkSize, maxParallel int, fn ChunkFunc) ([][]byte, error) {
	if data == nil {
		return nil, ErrNilBuffer
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: chunk callback", ErrNilBuffer)
	}
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d", ErrOutOfRange, chunkSize)
	}
	if maxParallel <= 0 {
		return nil, fmt.Errorf("%w: max parallel %d", ErrOutOfRange, maxParallel)
	}

	n := (len(data) + chunkSize - 1) / chunkSize
	results := make([][]byte, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i := 0; i < n; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, len(data))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := fn(ctx, data[start:end])
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
