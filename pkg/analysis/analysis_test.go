package analysis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntropyBounds(t *testing.T) {
	assert.Equal(t, 0.0, Entropy(nil))
	assert.Equal(t, 0.0, Entropy([]byte{7, 7, 7, 7}))

	// one of each byte value: exactly 8 bits per byte
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	assert.Equal(t, 8.0, Entropy(all))

	// two equally likely values: 1 bit
	assert.InDelta(t, 1.0, Entropy([]byte{0, 1, 0, 1}), 1e-12)

	// entropy never exceeds 8
	mixed := bytes.Repeat(all, 3)
	assert.LessOrEqual(t, Entropy(mixed), 8.0)
}

func TestFrequency(t *testing.T) {
	freq := Frequency([]byte{1, 1, 2, 0xFF})
	assert.Equal(t, map[byte]int{1: 2, 2: 1, 0xFF: 1}, freq)

	// unseen values are omitted
	_, seen := freq[0]
	assert.False(t, seen)

	assert.Empty(t, Frequency(nil))
}
