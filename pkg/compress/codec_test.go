package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []byte {
	// compressible but not trivial
	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		buf.WriteString("the quick brown fox ")
		buf.WriteByte(byte(i))
	}
	return buf.Bytes()
}

func TestRoundTripAllCodecs(t *testing.T) {
	data := sample()
	for _, name := range Available() {
		codec, err := Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, codec.Name())

		packed, err := codec.Compress(data)
		require.NoError(t, err, name)
		got, err := codec.Decompress(packed)
		require.NoError(t, err, name)
		assert.Equal(t, data, got, name)
	}
}

func TestRoundTripEmpty(t *testing.T) {
	for _, name := range Available() {
		codec, err := Get(name)
		require.NoError(t, err)
		packed, err := codec.Compress(nil)
		require.NoError(t, err, name)
		got, err := codec.Decompress(packed)
		require.NoError(t, err, name)
		assert.Empty(t, got, name)
	}
}

func TestDecompressMalformed(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02}
	for _, name := range []string{"gzip", "zstd", "lz4"} {
		codec, err := Get(name)
		require.NoError(t, err)
		_, err = codec.Decompress(garbage)
		require.ErrorIs(t, err, ErrInvalidData, name)
	}
}

func TestUnknownCodec(t *testing.T) {
	_, err := Get("snappy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown codec")
}

func TestRegister(t *testing.T) {
	Register("identity", func() Codec { return identityCodec{} })
	codec, err := Get("identity")
	require.NoError(t, err)
	got, err := codec.Decompress([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, got)
}

type identityCodec struct{}

func (identityCodec) Name() string { return "identity" }

func (identityCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (identityCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
