package bytekit

import (
	"fmt"
	"unsafe"
)

// Integer covers the storage widths an enum may be declared over.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// EnumSpec describes an enum type: its defined members and whether it
// is a bitmask (flags) type. Width and signedness come from T itself,
// so there is no reflection at decode time.
type EnumSpec[T Integer] struct {
	Members []T
	Flags   bool
}

func enumWidth[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// bitsOf is the width-masked two's-complement bit pattern of v, used
// so signed and unsigned members compare under one representation.
func bitsOf[T Integer](v T, width int) uint64 {
	mask := ^uint64(0) >> (64 - 8*width)
	return uint64(v) & mask
}

// ReadEnum decodes T's storage width at the cursor and validates the
// value against spec: exact membership for plain enums, a bit subset
// of the union of members for flags enums.
func ReadEnum[T Integer](buf []byte, cursor *int, spec EnumSpec[T]) (T, error) {
	var zero T
	width := enumWidth[T]()
	local := *cursor
	if err := checkRead(buf, local, width); err != nil {
		return zero, err
	}
	var raw uint64
	for i := 0; i < width; i++ {
		raw |= uint64(buf[local+i]) << (8 * i)
	}
	v := T(raw)
	if spec.Flags {
		var all uint64
		for _, m := range spec.Members {
			all |= bitsOf(m, width)
		}
		if bitsOf(v, width)&^all != 0 {
			return zero, fmt.Errorf("%w: value 0x%X contains bits not defined in flags enum", ErrMalformed, raw)
		}
	} else {
		ok := false
		for _, m := range spec.Members {
			if m == v {
				ok = true
				break
			}
		}
		if !ok {
			return zero, fmt.Errorf("%w: 0x%X is not a valid value for enum", ErrMalformed, raw)
		}
	}
	*cursor = local + width
	return v, nil
}

func ReadEnumOrDefault[T Integer](buf []byte, cursor *int, spec EnumSpec[T], def T) T {
	return orDefault(buf, cursor, def, func(b []byte, c *int) (T, error) {
		return ReadEnum(b, c, spec)
	})
}

// PutEnum writes v at T's storage width, little-endian. Values are not
// validated on the way out; the spec constrains decoding only.
func PutEnum[T Integer](buf []byte, cursor *int, v T) error {
	width := enumWidth[T]()
	return writeFixed(buf, cursor, width, func(b []byte) {
		raw := bitsOf(v, width)
		for i := 0; i < width; i++ {
			b[i] = byte(raw >> (8 * i))
		}
	})
}
