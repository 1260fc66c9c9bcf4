package bytekit

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTripAllOptions(t *testing.T) {
	opts := []HexOptions{
		{},
		{Uppercase: true},
		{Separator: " "},
		{Separator: "-", Uppercase: true},
		{Separator: ":", Prefix: "0x"},
		{Prefix: "0X", Uppercase: true},
	}
	condition := func(data []byte) bool {
		for _, o := range opts {
			decoded, err := FromHexString(ToHexString(data, o))
			require.NoError(t, err)
			if !bytes.Equal(decoded, data) {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestToHexString(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	assert.Equal(t, "deadbeef", ToHex(data))
	assert.Equal(t, "DE-AD-BE-EF", ToHexString(data, HexOptions{Separator: "-", Uppercase: true}))
	assert.Equal(t, "0xde:0xad:0xbe:0xef", ToHexString(data, HexOptions{Separator: ":", Prefix: "0x"}))
	assert.Equal(t, "", ToHexString(nil, HexOptions{}))
}

func TestFromHexStringToleratesSeparators(t *testing.T) {
	for _, s := range []string{"deadbeef", "DE AD BE EF", "de-ad-be-ef", "DE:AD:BE:EF", "0xde 0xad 0xbe 0xef", "0XDEADBEEF"} {
		got, err := FromHexString(s)
		require.NoError(t, err, s)
		assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, got, s)
	}
}

func TestFromHexStringErrors(t *testing.T) {
	_, err := FromHexString("abc")
	require.ErrorIs(t, err, ErrMalformed)

	_, err = FromHexString("zz")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestBase64RoundTrip(t *testing.T) {
	data := []byte{0, 1, 2, 250, 251, 252}
	got, err := FromBase64(ToBase64(data))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	_, err = FromBase64("!!!not base64!!!")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestBinaryString(t *testing.T) {
	got, err := FromBinaryString("10101010 11110000")
	require.NoError(t, err)
	assert.Equal(t, []byte{0b10101010, 0b11110000}, got)

	assert.Equal(t, "10101010 11110000", ToBinaryString(got, " "))

	_, err = FromBinaryString("1010101")
	require.ErrorIs(t, err, ErrMalformed)

	_, err = FromBinaryString("10101012")
	require.ErrorIs(t, err, ErrMalformed)
}

func FuzzHexRoundTrip(f *testing.F) {
	f.Add([]byte{0x00, 0xFF})
	f.Fuzz(func(t *testing.T, data []byte) {
		got, err := FromHexString(ToHexString(data, HexOptions{Separator: " ", Prefix: "0x", Uppercase: true}))
		require.NoError(t, err)
		if len(data) == 0 {
			require.Empty(t, got)
			return
		}
		require.Equal(t, data, got)
	})
}
