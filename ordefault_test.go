package bytekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrDefaultNoAdvanceOnFailure(t *testing.T) {
	buf := []byte{1, 2, 3}

	cursor := 1
	got := ReadUint32OrDefault(buf, &cursor, 42)
	assert.Equal(t, uint32(42), got)
	assert.Equal(t, 1, cursor, "failed fail-soft read must not move the cursor")

	cursor = -3
	assert.Equal(t, int64(-7), ReadInt64OrDefault(buf, &cursor, -7))
	assert.Equal(t, -3, cursor)

	cursor = 99
	assert.Equal(t, uint16(5), ReadUint16BEOrDefault(buf, &cursor, 5))
	assert.Equal(t, 99, cursor)
}

func TestOrDefaultAdvancesOnSuccess(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}
	cursor := 0
	got := ReadUint32OrDefault(buf, &cursor, 0)
	assert.Equal(t, uint32(0x04030201), got)
	assert.Equal(t, 4, cursor)
}

func TestOrDefaultNilBufferPanics(t *testing.T) {
	cursor := 0
	require.Panics(t, func() { ReadUint32OrDefault(nil, &cursor, 0) })
	require.Panics(t, func() { ReadBoolOrDefault(nil, &cursor, false) })
	require.Panics(t, func() { ReadBytesOrDefault(nil, &cursor, 4, nil) })
}

func TestOrDefaultCompositeRollback(t *testing.T) {
	// 4 address bytes present but the 2-byte port is short by one:
	// the endpoint read must roll the cursor all the way back.
	buf := []byte{10, 0, 0, 1, 0x1F}
	cursor := 0
	def := mustAddrPort(t, "127.0.0.1:9")
	got := ReadEndpointOrDefault(buf, &cursor, IPv4, def)
	assert.Equal(t, def, got)
	assert.Equal(t, 0, cursor)
}

func TestOrDefaultAllWidths(t *testing.T) {
	short := []byte{0xFF}
	for name, probe := range map[string]func(*int) bool{
		"int16":    func(c *int) bool { return ReadInt16OrDefault(short, c, -2) == -2 },
		"uint16":   func(c *int) bool { return ReadUint16OrDefault(short, c, 2) == 2 },
		"int32":    func(c *int) bool { return ReadInt32OrDefault(short, c, -4) == -4 },
		"uint32":   func(c *int) bool { return ReadUint32OrDefault(short, c, 4) == 4 },
		"int64":    func(c *int) bool { return ReadInt64OrDefault(short, c, -8) == -8 },
		"uint64":   func(c *int) bool { return ReadUint64OrDefault(short, c, 8) == 8 },
		"float32":  func(c *int) bool { return ReadFloat32OrDefault(short, c, 1.5) == 1.5 },
		"float64":  func(c *int) bool { return ReadFloat64OrDefault(short, c, 2.5) == 2.5 },
		"int16be":  func(c *int) bool { return ReadInt16BEOrDefault(short, c, -2) == -2 },
		"uint32be": func(c *int) bool { return ReadUint32BEOrDefault(short, c, 4) == 4 },
		"int64be":  func(c *int) bool { return ReadInt64BEOrDefault(short, c, -8) == -8 },
	} {
		cursor := 0
		assert.True(t, probe(&cursor), name)
		assert.Equal(t, 0, cursor, name)
	}
}
