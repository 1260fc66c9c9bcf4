package bytekit

import (
	"errors"
	"fmt"
)

var (
	ErrNilBuffer   = errors.New("nil buffer")
	ErrOutOfRange  = errors.New("cursor out of range")
	ErrMalformed   = errors.New("malformed value")
	ErrCapacity    = errors.New("capacity exceeded")
	ErrUnsupported = errors.New("unsupported type")
)

// checkRead validates the precondition ladder shared by every positional
// operation. Order matters: nil buffer, then a negative byte count,
// then cursor outside [0,len], then insufficient remaining bytes.
func checkRead(buf []byte, cursor int, width int) error {
	if buf == nil {
		return ErrNilBuffer
	}
	if width < 0 {
		return fmt.Errorf("%w: negative byte count %d", ErrOutOfRange, width)
	}
	if cursor < 0 || cursor > len(buf) {
		return fmt.Errorf("%w: cursor %d, buffer %d bytes", ErrOutOfRange, cursor, len(buf))
	}
	if width > len(buf)-cursor {
		return fmt.Errorf("%w: need %d bytes at cursor %d, have %d", ErrOutOfRange, width, cursor, len(buf)-cursor)
	}
	return nil
}
