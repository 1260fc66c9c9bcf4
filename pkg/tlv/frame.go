package tlv

import (
	"errors"
	"fmt"
	"math"

	"github.com/rawbytedev/bytekit"
)

// DefaultMarker is the conventional frame boundary byte.
const DefaultMarker byte = 0x7E

var ErrBadFrame = errors.New("invalid frame")

// WrapFrame surrounds payload with single-byte start and end markers.
func WrapFrame(payload []byte, start, end byte) []byte {
	return bytekit.Concatenate([]byte{start}, payload, []byte{end})
}

// UnwrapFrame validates both markers and returns the payload between
// them.
func UnwrapFrame(frame []byte, start, end byte) ([]byte, error) {
	if len(frame) < 2 {
		return nil, fmt.Errorf("%w: %d bytes is too short for two markers", ErrBadFrame, len(frame))
	}
	if frame[0] != start {
		return nil, fmt.Errorf("%w: start marker 0x%02X, want 0x%02X", ErrBadFrame, frame[0], start)
	}
	if frame[len(frame)-1] != end {
		return nil, fmt.Errorf("%w: end marker 0x%02X, want 0x%02X", ErrBadFrame, frame[len(frame)-1], end)
	}
	return bytekit.SafeSlice(frame, 1, len(frame)-2), nil
}

// WrapLengthPrefixed emits a 2-byte little-endian payload length
// followed by the payload.
func WrapLengthPrefixed(payload []byte) ([]byte, error) {
	if len(payload) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: payload is %d bytes", ErrValueTooLarge, len(payload))
	}
	b := bytekit.NewBuilder()
	defer b.Close()
	return b.AppendUint16(uint16(len(payload))).AppendBytes(payload).Bytes()
}

// UnwrapLengthPrefixed validates that the declared length matches the
// available payload exactly.
func UnwrapLengthPrefixed(frame []byte) ([]byte, error) {
	cursor := 0
	declared, err := bytekit.ReadUint16(frame, &cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: missing length header", ErrBadFrame)
	}
	if int(declared) != len(frame)-cursor {
		return nil, fmt.Errorf("%w: declared %d payload bytes, have %d", ErrBadFrame, declared, len(frame)-cursor)
	}
	return bytekit.ReadBytes(frame, &cursor, int(declared))
}
