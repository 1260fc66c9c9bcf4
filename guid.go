package bytekit

import "github.com/google/uuid"

// ReadGUID decodes a 16-byte UUID at the cursor. Bytes are taken in
// RFC 4122 order and round-trip exactly through PutGUID.
func ReadGUID(buf []byte, cursor *int) (uuid.UUID, error) {
	return readFixed(buf, cursor, 16, func(b []byte) uuid.UUID {
		var u uuid.UUID
		copy(u[:], b[:16])
		return u
	})
}

func ReadGUIDAt(buf []byte, offset int) (uuid.UUID, error) {
	return ReadGUID(buf, &offset)
}

func ReadGUIDOrDefault(buf []byte, cursor *int, def uuid.UUID) uuid.UUID {
	return orDefault(buf, cursor, def, ReadGUID)
}

func PutGUID(buf []byte, cursor *int, u uuid.UUID) error {
	return writeFixed(buf, cursor, 16, func(b []byte) { copy(b, u[:]) })
}
