package bytekit

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"net/netip"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
)

func (b *Builder) AppendBool(v bool) *Builder {
	if v {
		return b.append([]byte{1})
	}
	return b.append([]byte{0})
}

func (b *Builder) AppendByte(v byte) *Builder   { return b.append([]byte{v}) }
func (b *Builder) AppendInt8(v int8) *Builder   { return b.append([]byte{byte(v)}) }
func (b *Builder) AppendUint8(v uint8) *Builder { return b.append([]byte{v}) }

func (b *Builder) AppendInt16(v int16) *Builder   { return b.AppendUint16(uint16(v)) }
func (b *Builder) AppendInt32(v int32) *Builder   { return b.AppendUint32(uint32(v)) }
func (b *Builder) AppendInt64(v int64) *Builder   { return b.AppendUint64(uint64(v)) }
func (b *Builder) AppendInt16BE(v int16) *Builder { return b.AppendUint16BE(uint16(v)) }
func (b *Builder) AppendInt32BE(v int32) *Builder { return b.AppendUint32BE(uint32(v)) }
func (b *Builder) AppendInt64BE(v int64) *Builder { return b.AppendUint64BE(uint64(v)) }

func (b *Builder) AppendUint16(v uint16) *Builder {
	if b.closed || b.err != nil {
		return b.append(nil)
	}
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
	return b
}

func (b *Builder) AppendUint32(v uint32) *Builder {
	if b.closed || b.err != nil {
		return b.append(nil)
	}
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	return b
}

func (b *Builder) AppendUint64(v uint64) *Builder {
	if b.closed || b.err != nil {
		return b.append(nil)
	}
	b.buf = binary.LittleEndian.AppendUint64(b.buf, v)
	return b
}

func (b *Builder) AppendUint16BE(v uint16) *Builder {
	if b.closed || b.err != nil {
		return b.append(nil)
	}
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
	return b
}

func (b *Builder) AppendUint32BE(v uint32) *Builder {
	if b.closed || b.err != nil {
		return b.append(nil)
	}
	b.buf = binary.BigEndian.AppendUint32(b.buf, v)
	return b
}

func (b *Builder) AppendUint64BE(v uint64) *Builder {
	if b.closed || b.err != nil {
		return b.append(nil)
	}
	b.buf = binary.BigEndian.AppendUint64(b.buf, v)
	return b
}

func (b *Builder) AppendFloat32(v float32) *Builder { return b.AppendUint32(math.Float32bits(v)) }
func (b *Builder) AppendFloat64(v float64) *Builder { return b.AppendUint64(math.Float64bits(v)) }

func (b *Builder) AppendFloat32BE(v float32) *Builder { return b.AppendUint32BE(math.Float32bits(v)) }
func (b *Builder) AppendFloat64BE(v float64) *Builder { return b.AppendUint64BE(math.Float64bits(v)) }

func (b *Builder) AppendBytes(p []byte) *Builder { return b.append(p) }

func (b *Builder) AppendGUID(u uuid.UUID) *Builder { return b.append(u[:]) }

func (b *Builder) AppendDateTime(t time.Time) *Builder { return b.AppendInt64(t.UnixNano()) }

func (b *Builder) AppendUnixTimestamp(t time.Time) *Builder { return b.AppendInt32(int32(t.Unix())) }

func (b *Builder) AppendDuration(d time.Duration) *Builder {
	return b.AppendInt64(int64(d) / nanosPerTick)
}

func (b *Builder) AppendDateTimeOffset(t time.Time) *Builder {
	_, offSecs := t.Zone()
	return b.AppendDateTime(t).AppendInt64(int64(offSecs) * int64(time.Second) / nanosPerTick)
}

func (b *Builder) AppendIP(addr netip.Addr) *Builder { return b.append(addr.AsSlice()) }

func (b *Builder) AppendEndpoint(ep netip.AddrPort) *Builder {
	return b.AppendIP(ep.Addr()).AppendUint16BE(ep.Port())
}

func (b *Builder) AppendDecimal(d decimal.Decimal) *Builder {
	var tmp [decimalWidth]byte
	cur := 0
	if err := PutDecimal(tmp[:], &cur, d); err != nil {
		return b.fail(err)
	}
	return b.append(tmp[:])
}

func (b *Builder) AppendVersionBinary(v Version) *Builder {
	return b.AppendInt32(int32(v.Major)).
		AppendInt32(int32(v.Minor)).
		AppendInt32(int32(v.Build)).
		AppendInt32(int32(v.Revision))
}

func (b *Builder) AppendVersionString(v Version) *Builder {
	return b.AppendUTF8String(v.String())
}

func (b *Builder) AppendUTF8String(s string) *Builder { return b.append([]byte(s)) }

func (b *Builder) AppendASCIIString(s string) *Builder {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return b.fail(fmt.Errorf("%w: byte 0x%02X at offset %d is not ASCII", ErrMalformed, s[i], i))
		}
	}
	return b.append([]byte(s))
}

func (b *Builder) AppendStringEnc(s string, enc encoding.Encoding) *Builder {
	raw, err := encodeString(s, enc)
	if err != nil {
		return b.fail(err)
	}
	return b.append(raw)
}

func (b *Builder) AppendUTF16String(s string) *Builder { return b.AppendStringEnc(s, UTF16Encoding) }
func (b *Builder) AppendUTF32String(s string) *Builder { return b.AppendStringEnc(s, UTF32Encoding) }

// AppendLengthPrefixedString emits a 2-byte little-endian byte count
// followed by the encoded bytes. Payloads past the 16-bit range fail.
func (b *Builder) AppendLengthPrefixedString(s string, enc encoding.Encoding) *Builder {
	raw, err := encodeString(s, enc)
	if err != nil {
		return b.fail(err)
	}
	if len(raw) > math.MaxUint16 {
		return b.fail(fmt.Errorf("%w: encoded string is %d bytes, prefix holds %d", ErrCapacity, len(raw), math.MaxUint16))
	}
	return b.AppendUint16(uint16(len(raw))).append(raw)
}

// AppendNullTerminatedString emits the encoded bytes and a 0x00
// terminator. Strings containing a NUL cannot be framed this way.
func (b *Builder) AppendNullTerminatedString(s string, enc encoding.Encoding) *Builder {
	raw, err := encodeString(s, enc)
	if err != nil {
		return b.fail(err)
	}
	for _, c := range raw {
		if c == 0 {
			return b.fail(fmt.Errorf("%w: string contains NUL", ErrMalformed))
		}
	}
	return b.append(raw).AppendByte(0)
}

// AppendHex decodes hex text (any separator/prefix combination
// FromHexString accepts) and appends the bytes.
func (b *Builder) AppendHex(s string) *Builder {
	raw, err := FromHexString(s)
	if err != nil {
		return b.fail(err)
	}
	return b.append(raw)
}

func (b *Builder) AppendBase64(s string) *Builder {
	raw, err := FromBase64(s)
	if err != nil {
		return b.fail(err)
	}
	return b.append(raw)
}

// AppendRepeated appends count copies of value.
func (b *Builder) AppendRepeated(value byte, count int) *Builder {
	if b.closed || b.err != nil {
		return b.append(nil)
	}
	if count < 0 {
		return b.fail(fmt.Errorf("%w: negative repeat count %d", ErrMalformed, count))
	}
	for i := 0; i < count; i++ {
		b.buf = append(b.buf, value)
	}
	return b
}

// AppendPattern appends pattern repeated repetitions times.
func (b *Builder) AppendPattern(pattern []byte, repetitions int) *Builder {
	if b.closed || b.err != nil {
		return b.append(nil)
	}
	if repetitions < 0 {
		return b.fail(fmt.Errorf("%w: negative repeat count %d", ErrMalformed, repetitions))
	}
	for i := 0; i < repetitions; i++ {
		b.append(pattern)
	}
	return b
}

// AppendIf invokes fn on the builder only when cond holds.
func (b *Builder) AppendIf(cond bool, fn func(*Builder)) *Builder {
	if cond && fn != nil && b.err == nil && !b.closed {
		fn(b)
	}
	return b
}

// AppendFromReader copies up to n bytes from r (all of r when n < 0).
func (b *Builder) AppendFromReader(r io.Reader, n int64) *Builder {
	if r == nil {
		return b.fail(fmt.Errorf("%w: reader", ErrNilBuffer))
	}
	if b.closed || b.err != nil {
		return b.append(nil)
	}
	src := r
	if n >= 0 {
		src = io.LimitReader(r, n)
	}
	raw, err := io.ReadAll(src)
	if err != nil {
		return b.fail(err)
	}
	return b.append(raw)
}

// Append takes any supported value and dispatches to the typed
// appender. Unsupported types are an argument error, not a panic.
func (b *Builder) Append(v any) *Builder {
	switch x := v.(type) {
	case bool:
		return b.AppendBool(x)
	case byte:
		return b.AppendByte(x)
	case int8:
		return b.AppendInt8(x)
	case int16:
		return b.AppendInt16(x)
	case uint16:
		return b.AppendUint16(x)
	case int32:
		return b.AppendInt32(x)
	case uint32:
		return b.AppendUint32(x)
	case int64:
		return b.AppendInt64(x)
	case uint64:
		return b.AppendUint64(x)
	case int:
		return b.AppendInt64(int64(x))
	case float32:
		return b.AppendFloat32(x)
	case float64:
		return b.AppendFloat64(x)
	case string:
		return b.AppendUTF8String(x)
	case []byte:
		return b.AppendBytes(x)
	case uuid.UUID:
		return b.AppendGUID(x)
	case time.Time:
		return b.AppendDateTime(x)
	case time.Duration:
		return b.AppendDuration(x)
	case netip.Addr:
		return b.AppendIP(x)
	case netip.AddrPort:
		return b.AppendEndpoint(x)
	case decimal.Decimal:
		return b.AppendDecimal(x)
	case Version:
		return b.AppendVersionBinary(x)
	default:
		return b.fail(fmt.Errorf("%w: cannot append %T", ErrUnsupported, v))
	}
}

// AppendEnum writes v at its storage width, little-endian. Free
// function because methods cannot carry type parameters.
func AppendEnum[T Integer](b *Builder, v T) *Builder {
	width := enumWidth[T]()
	raw := bitsOf(v, width)
	var tmp [8]byte
	for i := 0; i < width; i++ {
		tmp[i] = byte(raw >> (8 * i))
	}
	return b.append(tmp[:width])
}

// AppendMany applies one serialization per element, in order.
func AppendMany[T any](b *Builder, items []T, fn func(*Builder, T)) *Builder {
	if fn == nil {
		return b.fail(fmt.Errorf("%w: serializer callback", ErrNilBuffer))
	}
	for _, it := range items {
		if b.err != nil || b.closed {
			break
		}
		fn(b, it)
	}
	return b
}
