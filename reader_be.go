package bytekit

import "encoding/binary"

// Big-endian (network order) integer reads. Same precondition ladder
// and cursor discipline as the little-endian defaults, reversed byte
// interpretation.

func ReadInt16BE(buf []byte, cursor *int) (int16, error) {
	return readFixed(buf, cursor, 2, func(b []byte) int16 { return int16(binary.BigEndian.Uint16(b)) })
}

func ReadUint16BE(buf []byte, cursor *int) (uint16, error) {
	return readFixed(buf, cursor, 2, binary.BigEndian.Uint16)
}

func ReadInt32BE(buf []byte, cursor *int) (int32, error) {
	return readFixed(buf, cursor, 4, func(b []byte) int32 { return int32(binary.BigEndian.Uint32(b)) })
}

func ReadUint32BE(buf []byte, cursor *int) (uint32, error) {
	return readFixed(buf, cursor, 4, binary.BigEndian.Uint32)
}

func ReadInt64BE(buf []byte, cursor *int) (int64, error) {
	return readFixed(buf, cursor, 8, func(b []byte) int64 { return int64(binary.BigEndian.Uint64(b)) })
}

func ReadUint64BE(buf []byte, cursor *int) (uint64, error) {
	return readFixed(buf, cursor, 8, binary.BigEndian.Uint64)
}

func ReadInt16BEAt(buf []byte, offset int) (int16, error) { return ReadInt16BE(buf, &offset) }
func ReadUint16BEAt(buf []byte, offset int) (uint16, error) {
	return ReadUint16BE(buf, &offset)
}
func ReadInt32BEAt(buf []byte, offset int) (int32, error) { return ReadInt32BE(buf, &offset) }
func ReadUint32BEAt(buf []byte, offset int) (uint32, error) {
	return ReadUint32BE(buf, &offset)
}
func ReadInt64BEAt(buf []byte, offset int) (int64, error) { return ReadInt64BE(buf, &offset) }
func ReadUint64BEAt(buf []byte, offset int) (uint64, error) {
	return ReadUint64BE(buf, &offset)
}
