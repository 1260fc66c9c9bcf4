package bytekit

// orDefault runs a strict read against a local copy of the cursor and
// commits the advance only on success. Composite reads that fail
// halfway therefore roll back to the pre-call position for free. A nil
// buffer stays a hard failure even here.
func orDefault[T any](buf []byte, cursor *int, def T, read func([]byte, *int) (T, error)) T {
	if buf == nil {
		panic("bytekit: nil buffer")
	}
	local := *cursor
	v, err := read(buf, &local)
	if err != nil {
		return def
	}
	*cursor = local
	return v
}

func ReadBoolOrDefault(buf []byte, cursor *int, def bool) bool {
	return orDefault(buf, cursor, def, ReadBool)
}

func ReadInt8OrDefault(buf []byte, cursor *int, def int8) int8 {
	return orDefault(buf, cursor, def, ReadInt8)
}

func ReadUint8OrDefault(buf []byte, cursor *int, def uint8) uint8 {
	return orDefault(buf, cursor, def, ReadUint8)
}

func ReadInt16OrDefault(buf []byte, cursor *int, def int16) int16 {
	return orDefault(buf, cursor, def, ReadInt16)
}

func ReadUint16OrDefault(buf []byte, cursor *int, def uint16) uint16 {
	return orDefault(buf, cursor, def, ReadUint16)
}

func ReadInt32OrDefault(buf []byte, cursor *int, def int32) int32 {
	return orDefault(buf, cursor, def, ReadInt32)
}

func ReadUint32OrDefault(buf []byte, cursor *int, def uint32) uint32 {
	return orDefault(buf, cursor, def, ReadUint32)
}

func ReadInt64OrDefault(buf []byte, cursor *int, def int64) int64 {
	return orDefault(buf, cursor, def, ReadInt64)
}

func ReadUint64OrDefault(buf []byte, cursor *int, def uint64) uint64 {
	return orDefault(buf, cursor, def, ReadUint64)
}

func ReadFloat32OrDefault(buf []byte, cursor *int, def float32) float32 {
	return orDefault(buf, cursor, def, ReadFloat32)
}

func ReadFloat64OrDefault(buf []byte, cursor *int, def float64) float64 {
	return orDefault(buf, cursor, def, ReadFloat64)
}

func ReadInt16BEOrDefault(buf []byte, cursor *int, def int16) int16 {
	return orDefault(buf, cursor, def, ReadInt16BE)
}

func ReadUint16BEOrDefault(buf []byte, cursor *int, def uint16) uint16 {
	return orDefault(buf, cursor, def, ReadUint16BE)
}

func ReadInt32BEOrDefault(buf []byte, cursor *int, def int32) int32 {
	return orDefault(buf, cursor, def, ReadInt32BE)
}

func ReadUint32BEOrDefault(buf []byte, cursor *int, def uint32) uint32 {
	return orDefault(buf, cursor, def, ReadUint32BE)
}

func ReadInt64BEOrDefault(buf []byte, cursor *int, def int64) int64 {
	return orDefault(buf, cursor, def, ReadInt64BE)
}

func ReadUint64BEOrDefault(buf []byte, cursor *int, def uint64) uint64 {
	return orDefault(buf, cursor, def, ReadUint64BE)
}

func ReadBytesOrDefault(buf []byte, cursor *int, n int, def []byte) []byte {
	return orDefault(buf, cursor, def, func(b []byte, c *int) ([]byte, error) {
		return ReadBytes(b, c, n)
	})
}
