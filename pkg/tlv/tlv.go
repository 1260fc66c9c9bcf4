// Package tlv implements the ad-hoc protocol helpers: type-length-value
// records, marker and length-prefixed framing, and single-byte
// checksums. Markers, type codes and algorithms are conventions the
// consumer picks, not a fixed wire specification.
package tlv

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/rawbytedev/bytekit"
)

var (
	ErrTruncated     = errors.New("truncated tlv record")
	ErrValueTooLarge = errors.New("tlv value exceeds 16-bit length field")
)

// headerSize is 1 type byte plus a 2-byte little-endian length.
const headerSize = 3

// Record is one type-length-value entry. Value is copied out of the
// source buffer; records never alias it.
type Record struct {
	Type  byte
	Value []byte
}

func (r Record) Len() int { return len(r.Value) }

// Parse reads one record at the cursor: 1-byte type, 2-byte
// little-endian length, then that many value bytes. The cursor stays
// put on failure.
func Parse(buf []byte, cursor *int) (Record, error) {
	local := *cursor
	typ, err := bytekit.ReadUint8(buf, &local)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	length, err := bytekit.ReadUint16(buf, &local)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	value, err := bytekit.ReadBytes(buf, &local, int(length))
	if err != nil {
		return Record{}, fmt.Errorf("%w: value wants %d bytes past the buffer", ErrTruncated, length)
	}
	*cursor = local
	return Record{Type: typ, Value: value}, nil
}

// Records walks buf from offset 0 as a lazy, restartable sequence of
// records. It stops silently at the first partial record: best-effort
// truncation, not a parse error.
func Records(buf []byte) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		cursor := 0
		for cursor+headerSize <= len(buf) {
			rec, err := Parse(buf, &cursor)
			if err != nil {
				return
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// ParseAll collects every complete record in buf.
func ParseAll(buf []byte) []Record {
	var out []Record
	for rec := range Records(buf) {
		out = append(out, rec)
	}
	return out
}

// Marshal emits the three-part encoding of one record.
func Marshal(typ byte, value []byte) ([]byte, error) {
	if len(value) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d bytes", ErrValueTooLarge, len(value))
	}
	b := bytekit.NewBuilder()
	defer b.Close()
	return b.AppendByte(typ).
		AppendUint16(uint16(len(value))).
		AppendBytes(value).
		Bytes()
}
