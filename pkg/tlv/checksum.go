package tlv

import (
	"errors"
	"fmt"
)

// ChecksumAlgorithm selects the single-byte reducer.
type ChecksumAlgorithm int

const (
	// ChecksumAdditive is the sum of all bytes mod 256.
	ChecksumAdditive ChecksumAlgorithm = iota
	// ChecksumXor is the bitwise XOR of all bytes.
	ChecksumXor
)

var ErrUnknownChecksum = errors.New("unknown checksum algorithm")

// Sum8 is the additive checksum; 0 for empty input.
func Sum8(data []byte) byte {
	var sum byte
	for _, c := range data {
		sum += c
	}
	return sum
}

// Xor8 is the xor checksum; 0 for empty input.
func Xor8(data []byte) byte {
	var x byte
	for _, c := range data {
		x ^= c
	}
	return x
}

func compute(data []byte, alg ChecksumAlgorithm) (byte, error) {
	switch alg {
	case ChecksumAdditive:
		return Sum8(data), nil
	case ChecksumXor:
		return Xor8(data), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownChecksum, alg)
	}
}

// AppendChecksum returns data with its single checksum byte appended.
func AppendChecksum(data []byte, alg ChecksumAlgorithm) ([]byte, error) {
	c, err := compute(data, alg)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(data)+1)
	out = append(out, data...)
	return append(out, c), nil
}

// ValidateChecksum treats the last byte as the expected checksum and
// recomputes over the remainder. Mismatch and empty input are false,
// never an error; only an unknown algorithm fails.
func ValidateChecksum(data []byte, alg ChecksumAlgorithm) (bool, error) {
	if len(data) == 0 {
		return false, nil
	}
	c, err := compute(data[:len(data)-1], alg)
	if err != nil {
		return false, err
	}
	return c == data[len(data)-1], nil
}
