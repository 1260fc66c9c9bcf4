package bytekit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var ErrBuilderClosed = errors.New("builder is closed")

const defaultBuilderCap = 256

var builderPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, defaultBuilderCap)
		return &b
	},
}

// Builder accumulates bytes over pooled backing storage. It is a
// single-owner, sequential type: one goroutine appends, materializes,
// then closes. Append methods chain and record the first failure; the
// error surfaces at materialization and from Err.
type Builder struct {
	buf    []byte
	err    error
	closed bool
}

func NewBuilder() *Builder {
	p := builderPool.Get().(*[]byte)
	return &Builder{buf: (*p)[:0]}
}

// NewBuilderSize pre-sizes the internal buffer for callers that know
// the payload size up front.
func NewBuilderSize(capacity int) *Builder {
	b := NewBuilder()
	if capacity > cap(b.buf) {
		b.buf = make([]byte, 0, capacity)
	}
	return b
}

// Err reports the first append failure, if any.
func (b *Builder) Err() error { return b.err }

func (b *Builder) Len() int { return len(b.buf) }

func (b *Builder) Cap() int { return cap(b.buf) }

// Clear drops the accumulated bytes and any sticky error while keeping
// the allocated capacity.
func (b *Builder) Clear() *Builder {
	if b.closed {
		return b
	}
	b.buf = b.buf[:0]
	b.err = nil
	return b
}

// Bytes materializes an exact-size copy of the accumulated bytes, or
// the first append error if one occurred.
func (b *Builder) Bytes() ([]byte, error) {
	if b.closed {
		return nil, ErrBuilderClosed
	}
	if b.err != nil {
		return nil, b.err
	}
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out, nil
}

// BytesMax is Bytes with a cap: accumulating more than maxSize bytes
// is a capacity error.
func (b *Builder) BytesMax(maxSize int) ([]byte, error) {
	if b.closed {
		return nil, ErrBuilderClosed
	}
	if b.err != nil {
		return nil, b.err
	}
	if len(b.buf) > maxSize {
		return nil, fmt.Errorf("%w: %d bytes accumulated, cap %d", ErrCapacity, len(b.buf), maxSize)
	}
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out, nil
}

// String renders the accumulated bytes as comma-separated decimals.
// Debugging aid, not a data format.
func (b *Builder) String() string {
	var sb strings.Builder
	for i, c := range b.buf {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	return sb.String()
}

// Close returns the backing storage to the pool. Safe to call more
// than once and on every exit path; the builder is unusable afterward.
func (b *Builder) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	stored := b.buf[:0]
	b.buf = nil
	builderPool.Put(&stored)
	return nil
}

// append is the single mutation point every Append goes through.
func (b *Builder) append(p []byte) *Builder {
	if b.closed {
		if b.err == nil {
			b.err = ErrBuilderClosed
		}
		return b
	}
	if b.err != nil {
		return b
	}
	b.buf = append(b.buf, p...)
	return b
}

// fail records the first error and keeps the chain going.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}
