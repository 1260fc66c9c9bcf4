package bytekit

import (
	"encoding/binary"
	"math"
)

// readFixed is the single bounds-checked read primitive. Every public
// fixed-width read is a thin wrapper over it: validate, decode width
// bytes at the cursor, advance the cursor by width.
func readFixed[T any](buf []byte, cursor *int, width int, decode func([]byte) T) (T, error) {
	var zero T
	if err := checkRead(buf, *cursor, width); err != nil {
		return zero, err
	}
	v := decode(buf[*cursor:])
	*cursor += width
	return v, nil
}

// ReadBool decodes one byte; anything non-zero is true.
func ReadBool(buf []byte, cursor *int) (bool, error) {
	return readFixed(buf, cursor, 1, func(b []byte) bool { return b[0] != 0 })
}

func ReadInt8(buf []byte, cursor *int) (int8, error) {
	return readFixed(buf, cursor, 1, func(b []byte) int8 { return int8(b[0]) })
}

func ReadUint8(buf []byte, cursor *int) (uint8, error) {
	return readFixed(buf, cursor, 1, func(b []byte) uint8 { return b[0] })
}

// ReadInt16 decodes a little-endian int16 and advances the cursor by 2.
func ReadInt16(buf []byte, cursor *int) (int16, error) {
	return readFixed(buf, cursor, 2, func(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) })
}

func ReadUint16(buf []byte, cursor *int) (uint16, error) {
	return readFixed(buf, cursor, 2, binary.LittleEndian.Uint16)
}

func ReadInt32(buf []byte, cursor *int) (int32, error) {
	return readFixed(buf, cursor, 4, func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) })
}

func ReadUint32(buf []byte, cursor *int) (uint32, error) {
	return readFixed(buf, cursor, 4, binary.LittleEndian.Uint32)
}

func ReadInt64(buf []byte, cursor *int) (int64, error) {
	return readFixed(buf, cursor, 8, func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) })
}

func ReadUint64(buf []byte, cursor *int) (uint64, error) {
	return readFixed(buf, cursor, 8, binary.LittleEndian.Uint64)
}

func ReadFloat32(buf []byte, cursor *int) (float32, error) {
	return readFixed(buf, cursor, 4, func(b []byte) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	})
}

func ReadFloat64(buf []byte, cursor *int) (float64, error) {
	return readFixed(buf, cursor, 8, func(b []byte) float64 {
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	})
}

// ReadBytes copies n bytes starting at the cursor. n == -1 reads to the
// end of the buffer; n == 0 returns an empty slice.
func ReadBytes(buf []byte, cursor *int, n int) ([]byte, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	if n == ToEnd {
		n = len(buf) - *cursor
		if n < 0 {
			n = 0
		}
	}
	if err := checkRead(buf, *cursor, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, buf[*cursor:*cursor+n])
	*cursor += n
	return out, nil
}

// At variants read at a plain offset through a throwaway local cursor.

func ReadBoolAt(buf []byte, offset int) (bool, error)   { return ReadBool(buf, &offset) }
func ReadInt8At(buf []byte, offset int) (int8, error)   { return ReadInt8(buf, &offset) }
func ReadUint8At(buf []byte, offset int) (uint8, error) { return ReadUint8(buf, &offset) }
func ReadInt16At(buf []byte, offset int) (int16, error) { return ReadInt16(buf, &offset) }
func ReadUint16At(buf []byte, offset int) (uint16, error) {
	return ReadUint16(buf, &offset)
}
func ReadInt32At(buf []byte, offset int) (int32, error) { return ReadInt32(buf, &offset) }
func ReadUint32At(buf []byte, offset int) (uint32, error) {
	return ReadUint32(buf, &offset)
}
func ReadInt64At(buf []byte, offset int) (int64, error) { return ReadInt64(buf, &offset) }
func ReadUint64At(buf []byte, offset int) (uint64, error) {
	return ReadUint64(buf, &offset)
}
func ReadFloat32At(buf []byte, offset int) (float32, error) {
	return ReadFloat32(buf, &offset)
}
func ReadFloat64At(buf []byte, offset int) (float64, error) {
	return ReadFloat64(buf, &offset)
}

// ToEnd as a byte count selects "everything from the cursor onwards".
const ToEnd = -1
