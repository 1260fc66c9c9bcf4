package bytekit

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessChunksOrdering(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}

	results, err := ProcessChunks(context.Background(), data, 7, 4,
		func(_ context.Context, chunk []byte) ([]byte, error) {
			// stagger completion so order cannot come from timing
			time.Sleep(time.Duration(chunk[0]%5) * time.Millisecond)
			return Reverse(chunk), nil
		})
	require.NoError(t, err)
	require.Len(t, results, 15)

	// results follow chunk order regardless of completion order
	assert.Equal(t, byte(6), results[0][0])
	assert.Equal(t, byte(0), results[0][6])
	assert.Equal(t, byte(99), results[14][0])
	assert.Len(t, results[14], 2)
}

func TestProcessChunksConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	_, err := ProcessChunks(context.Background(), make([]byte, 64), 4, 3,
		func(context.Context, []byte) ([]byte, error) {
			cur := inFlight.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			inFlight.Add(-1)
			return nil, nil
		})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestProcessChunksError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ProcessChunks(context.Background(), make([]byte, 10), 2, 2,
		func(_ context.Context, chunk []byte) ([]byte, error) {
			return nil, boom
		})
	require.ErrorIs(t, err, boom)
}

func TestProcessChunksCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ProcessChunks(ctx, make([]byte, 10), 2, 2,
		func(context.Context, []byte) ([]byte, error) {
			return nil, nil
		})
	require.ErrorIs(t, err, context.Canceled)
}

func TestProcessChunksArguments(t *testing.T) {
	ctx := context.Background()
	fn := func(context.Context, []byte) ([]byte, error) { return nil, nil }

	_, err := ProcessChunks(ctx, nil, 2, 2, fn)
	require.ErrorIs(t, err, ErrNilBuffer)

	_, err = ProcessChunks(ctx, []byte{1}, 0, 2, fn)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = ProcessChunks(ctx, []byte{1}, 2, 0, fn)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = ProcessChunks(ctx, []byte{1}, 2, 2, nil)
	require.ErrorIs(t, err, ErrNilBuffer)

	// empty input, no chunks
	results, err := ProcessChunks(ctx, []byte{}, 2, 2, fn)
	require.NoError(t, err)
	assert.Empty(t, results)
}
