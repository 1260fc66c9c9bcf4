package bytekit

import (
	"bytes"
	"fmt"
)

// StartsWith reports whether b begins with pattern. An empty pattern
// matches everything.
func StartsWith(b, pattern []byte) bool {
	return bytes.HasPrefix(b, pattern)
}

// EndsWith reports whether b ends with pattern.
func EndsWith(b, pattern []byte) bool {
	return bytes.HasSuffix(b, pattern)
}

// IndexOf returns the first offset of pattern in b, or -1. An empty
// pattern is found at 0.
func IndexOf(b, pattern []byte) int {
	return bytes.Index(b, pattern)
}

// IsIdenticalTo is byte-wise equality where two nil slices are
// identical and nil never equals non-nil, regardless of length.
func IsIdenticalTo(a, b []byte) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return bytes.Equal(a, b)
}

// SafeSlice clamps instead of failing: a start outside the buffer
// yields an empty slice, a length past the end is truncated. The
// result is always a copy.
func SafeSlice(b []byte, start, length int) []byte {
	if start < 0 || start >= len(b) || length <= 0 {
		return []byte{}
	}
	if length > len(b)-start {
		length = len(b) - start
	}
	out := make([]byte, length)
	copy(out, b[start:start+length])
	return out
}

// Concatenate joins the inputs in order; nil entries count as empty.
func Concatenate(arrays ...[]byte) []byte {
	total := 0
	for _, a := range arrays {
		total += len(a)
	}
	out := make([]byte, 0, total)
	for _, a := range arrays {
		out = append(out, a...)
	}
	return out
}

// TrimEnd returns a copy of b with trailing bytes equal to value
// removed. The input is never mutated.
func TrimEnd(b []byte, value byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == value {
		end--
	}
	out := make([]byte, end)
	copy(out, b[:end])
	return out
}

// TrimEndNonDestructive returns b itself when there is nothing to
// trim, a trimmed copy otherwise.
func TrimEndNonDestructive(b []byte, value byte) []byte {
	if len(b) == 0 || b[len(b)-1] != value {
		return b
	}
	return TrimEnd(b, value)
}

// Reverse returns a new slice with the byte order reversed.
func Reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// Xor combines two equal-length slices byte-wise.
func Xor(a, b []byte) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: left operand", ErrNilBuffer)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: right operand", ErrNilBuffer)
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: xor operands differ in length (%d vs %d)", ErrMalformed, len(a), len(b))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}
