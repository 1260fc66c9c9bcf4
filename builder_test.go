package bytekit

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderChain(t *testing.T) {
	b := NewBuilder()
	defer b.Close()

	raw, err := b.AppendByte(1).
		AppendUint16(0x0302).
		AppendUint16BE(0x0405).
		AppendUTF8String("ab").
		Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0x02, 0x03, 0x04, 0x05, 'a', 'b'}, raw)
	assert.Equal(t, 7, b.Len())
}

func TestBuilderBytesMax(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	b.AppendByte(1).AppendUTF8String("hello")

	_, err := b.BytesMax(3)
	require.ErrorIs(t, err, ErrCapacity)

	raw, err := b.BytesMax(6)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 'h', 'e', 'l', 'l', 'o'}, raw)

	raw, err = b.BytesMax(100)
	require.NoError(t, err)
	assert.Len(t, raw, 6)
}

func TestBuilderStickyError(t *testing.T) {
	b := NewBuilder()
	defer b.Close()

	b.AppendByte(1).AppendHex("zz").AppendByte(2)
	require.ErrorIs(t, b.Err(), ErrMalformed)
	_, err := b.Bytes()
	require.ErrorIs(t, err, ErrMalformed)

	// Clear resets content and error
	b.Clear()
	raw, err := b.AppendByte(9).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, raw)
}

func TestBuilderAppendAnyUnsupported(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	b.Append(struct{ X int }{1})
	require.ErrorIs(t, b.Err(), ErrUnsupported)
}

func TestBuilderAppendAny(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	raw, err := b.Append(true).
		Append(uint16(7)).
		Append("hi").
		Append([]byte{1, 2}).
		Append(u).
		Bytes()
	require.NoError(t, err)
	assert.Equal(t, 1+2+2+2+16, len(raw))
}

func TestBuilderAppendFloatBE(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	raw, err := b.AppendFloat64BE(1.0).AppendFloat32BE(1.0).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x3F, 0xF0, 0, 0, 0, 0, 0, 0}, raw[:8])
	assert.Equal(t, []byte{0x3F, 0x80, 0, 0}, raw[8:])
}

func TestBuilderAppendRepeated(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	raw, err := b.AppendRepeated(0xAB, 3).AppendPattern([]byte{1, 2}, 2).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0xAB, 0xAB, 1, 2, 1, 2}, raw)

	b.Clear().AppendRepeated(1, -1)
	require.ErrorIs(t, b.Err(), ErrMalformed)
}

func TestBuilderAppendIf(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	raw, err := b.
		AppendIf(true, func(b *Builder) { b.AppendByte(1) }).
		AppendIf(false, func(b *Builder) { b.AppendByte(2) }).
		Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, raw)
}

func TestBuilderAppendMany(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	AppendMany(b, []uint16{1, 2, 3}, func(b *Builder, v uint16) { b.AppendUint16(v) })
	raw, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 2, 0, 3, 0}, raw)

	AppendMany[int](b, []int{1}, nil)
	require.Error(t, b.Err())
}

func TestBuilderAppendFromReader(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	raw, err := b.AppendFromReader(strings.NewReader("abcdef"), 4).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), raw)

	b.Clear()
	raw, err = b.AppendFromReader(strings.NewReader("xyz"), -1).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("xyz"), raw)
}

func TestBuilderAppendEnum(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	raw, err := AppendEnum(b, wide(-1)).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, raw)
}

func TestBuilderTimeAppends(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("", 3600))
	b := NewBuilder()
	defer b.Close()
	raw, err := b.AppendDateTimeOffset(at).Bytes()
	require.NoError(t, err)

	cursor := 0
	got, err := ReadDateTimeOffset(raw, &cursor)
	require.NoError(t, err)
	assert.True(t, got.Equal(at))
	assert.Equal(t, 16, cursor)
}

func TestBuilderString(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	b.AppendByte(1).AppendByte(22).AppendByte(333 % 256)
	assert.Equal(t, "1,22,77", b.String())
}

func TestBuilderClosedBeatsBadArguments(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Close())
	b.AppendRepeated(1, -1)
	require.ErrorIs(t, b.Err(), ErrBuilderClosed)

	b = NewBuilder()
	require.NoError(t, b.Close())
	b.AppendPattern([]byte{1}, -1)
	require.ErrorIs(t, b.Err(), ErrBuilderClosed)
}

func TestBuilderCloseIdempotent(t *testing.T) {
	b := NewBuilder()
	b.AppendByte(1)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	b.AppendByte(2)
	require.ErrorIs(t, b.Err(), ErrBuilderClosed)
	_, err := b.Bytes()
	require.ErrorIs(t, err, ErrBuilderClosed)
}

func TestBuilderSize(t *testing.T) {
	b := NewBuilderSize(4096)
	defer b.Close()
	assert.GreaterOrEqual(t, b.Cap(), 4096)
	assert.Equal(t, 0, b.Len())
}

func BenchmarkBuilderAppend(b *testing.B) {
	bld := NewBuilder()
	defer bld.Close()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bld.Clear().AppendUint64(uint64(i)).AppendUTF8String("chunk")
	}
}
