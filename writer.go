package bytekit

import (
	"encoding/binary"
	"math"
)

// writeFixed mirrors readFixed for in-place writes into an existing
// buffer: same precondition ladder, encode width bytes at the cursor,
// advance by width.
func writeFixed(buf []byte, cursor *int, width int, encode func([]byte)) error {
	if err := checkRead(buf, *cursor, width); err != nil {
		return err
	}
	encode(buf[*cursor:])
	*cursor += width
	return nil
}

func PutBool(buf []byte, cursor *int, v bool) error {
	return writeFixed(buf, cursor, 1, func(b []byte) {
		if v {
			b[0] = 1
		} else {
			b[0] = 0
		}
	})
}

func PutInt8(buf []byte, cursor *int, v int8) error {
	return writeFixed(buf, cursor, 1, func(b []byte) { b[0] = byte(v) })
}

func PutUint8(buf []byte, cursor *int, v uint8) error {
	return writeFixed(buf, cursor, 1, func(b []byte) { b[0] = v })
}

func PutInt16(buf []byte, cursor *int, v int16) error {
	return writeFixed(buf, cursor, 2, func(b []byte) { binary.LittleEndian.PutUint16(b, uint16(v)) })
}

func PutUint16(buf []byte, cursor *int, v uint16) error {
	return writeFixed(buf, cursor, 2, func(b []byte) { binary.LittleEndian.PutUint16(b, v) })
}

func PutInt32(buf []byte, cursor *int, v int32) error {
	return writeFixed(buf, cursor, 4, func(b []byte) { binary.LittleEndian.PutUint32(b, uint32(v)) })
}

func PutUint32(buf []byte, cursor *int, v uint32) error {
	return writeFixed(buf, cursor, 4, func(b []byte) { binary.LittleEndian.PutUint32(b, v) })
}

func PutInt64(buf []byte, cursor *int, v int64) error {
	return writeFixed(buf, cursor, 8, func(b []byte) { binary.LittleEndian.PutUint64(b, uint64(v)) })
}

func PutUint64(buf []byte, cursor *int, v uint64) error {
	return writeFixed(buf, cursor, 8, func(b []byte) { binary.LittleEndian.PutUint64(b, v) })
}

func PutFloat32(buf []byte, cursor *int, v float32) error {
	return writeFixed(buf, cursor, 4, func(b []byte) {
		binary.LittleEndian.PutUint32(b, math.Float32bits(v))
	})
}

func PutFloat64(buf []byte, cursor *int, v float64) error {
	return writeFixed(buf, cursor, 8, func(b []byte) {
		binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	})
}

func PutInt16BE(buf []byte, cursor *int, v int16) error {
	return writeFixed(buf, cursor, 2, func(b []byte) { binary.BigEndian.PutUint16(b, uint16(v)) })
}

func PutUint16BE(buf []byte, cursor *int, v uint16) error {
	return writeFixed(buf, cursor, 2, func(b []byte) { binary.BigEndian.PutUint16(b, v) })
}

func PutInt32BE(buf []byte, cursor *int, v int32) error {
	return writeFixed(buf, cursor, 4, func(b []byte) { binary.BigEndian.PutUint32(b, uint32(v)) })
}

func PutUint32BE(buf []byte, cursor *int, v uint32) error {
	return writeFixed(buf, cursor, 4, func(b []byte) { binary.BigEndian.PutUint32(b, v) })
}

func PutInt64BE(buf []byte, cursor *int, v int64) error {
	return writeFixed(buf, cursor, 8, func(b []byte) { binary.BigEndian.PutUint64(b, uint64(v)) })
}

func PutUint64BE(buf []byte, cursor *int, v uint64) error {
	return writeFixed(buf, cursor, 8, func(b []byte) { binary.BigEndian.PutUint64(b, v) })
}

// PutBytes copies src into buf at the cursor, bounds-checked as a
// single write of len(src) bytes.
func PutBytes(buf []byte, cursor *int, src []byte) error {
	return writeFixed(buf, cursor, len(src), func(b []byte) { copy(b, src) })
}
