package bytekit

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var ErrNilEncoding = errors.New("nil encoding")

// Shared little-endian encodings for the string codecs and the
// builder's string appenders.
var (
	UTF8Encoding  encoding.Encoding = unicode.UTF8
	UTF16Encoding encoding.Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	UTF32Encoding encoding.Encoding = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
)

// ReadString decodes n bytes at the cursor using enc. n == ToEnd reads
// everything from the cursor to the end of the buffer; n == 0 yields an
// empty string and leaves the cursor where it was.
func ReadString(buf []byte, cursor *int, n int, enc encoding.Encoding) (string, error) {
	if enc == nil {
		return "", ErrNilEncoding
	}
	if buf == nil {
		return "", ErrNilBuffer
	}
	if n == ToEnd {
		n = len(buf) - *cursor
		if n < 0 {
			n = 0
		}
	}
	if err := checkRead(buf, *cursor, n); err != nil {
		return "", err
	}
	decoded, err := enc.NewDecoder().Bytes(buf[*cursor : *cursor+n])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	*cursor += n
	return string(decoded), nil
}

// ReadUTF8String reads n bytes as UTF-8 (ToEnd for the rest of the
// buffer). The bytes are taken verbatim; Go strings carry arbitrary
// bytes, so no validation pass is made.
func ReadUTF8String(buf []byte, cursor *int, n int) (string, error) {
	if buf == nil {
		return "", ErrNilBuffer
	}
	if n == ToEnd {
		n = len(buf) - *cursor
		if n < 0 {
			n = 0
		}
	}
	if err := checkRead(buf, *cursor, n); err != nil {
		return "", err
	}
	s := string(buf[*cursor : *cursor+n])
	*cursor += n
	return s, nil
}

// ReadASCIIString reads n bytes, rejecting anything outside 7-bit ASCII.
func ReadASCIIString(buf []byte, cursor *int, n int) (string, error) {
	if buf == nil {
		return "", ErrNilBuffer
	}
	if n == ToEnd {
		n = len(buf) - *cursor
		if n < 0 {
			n = 0
		}
	}
	if err := checkRead(buf, *cursor, n); err != nil {
		return "", err
	}
	raw := buf[*cursor : *cursor+n]
	for i, c := range raw {
		if c > 0x7F {
			return "", fmt.Errorf("%w: byte 0x%02X at offset %d is not ASCII", ErrMalformed, c, *cursor+i)
		}
	}
	*cursor += n
	return string(raw), nil
}

func ReadUTF16String(buf []byte, cursor *int, n int) (string, error) {
	return ReadString(buf, cursor, n, UTF16Encoding)
}

func ReadUTF32String(buf []byte, cursor *int, n int) (string, error) {
	return ReadString(buf, cursor, n, UTF32Encoding)
}

// ReadLengthPrefixedString reads a 2-byte little-endian length followed
// by that many bytes decoded with enc. The cursor rolls back entirely
// if the payload is short.
func ReadLengthPrefixedString(buf []byte, cursor *int, enc encoding.Encoding) (string, error) {
	if enc == nil {
		return "", ErrNilEncoding
	}
	local := *cursor
	n, err := ReadUint16(buf, &local)
	if err != nil {
		return "", err
	}
	s, err := ReadString(buf, &local, int(n), enc)
	if err != nil {
		return "", err
	}
	*cursor = local
	return s, nil
}

// ReadNullTerminatedString reads bytes up to a 0x00 terminator or the
// end of the buffer. The cursor lands past the terminator when one was
// found, at the end of the buffer otherwise.
func ReadNullTerminatedString(buf []byte, cursor *int, enc encoding.Encoding) (string, error) {
	if enc == nil {
		return "", ErrNilEncoding
	}
	if buf == nil {
		return "", ErrNilBuffer
	}
	if err := checkRead(buf, *cursor, 0); err != nil {
		return "", err
	}
	rest := buf[*cursor:]
	end := bytes.IndexByte(rest, 0)
	consumed := len(rest)
	raw := rest
	if end >= 0 {
		raw = rest[:end]
		consumed = end + 1
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	*cursor += consumed
	return string(decoded), nil
}

func ReadUTF8StringOrDefault(buf []byte, cursor *int, n int, def string) string {
	return orDefault(buf, cursor, def, func(b []byte, c *int) (string, error) {
		return ReadUTF8String(b, c, n)
	})
}

func ReadStringOrDefault(buf []byte, cursor *int, n int, enc encoding.Encoding, def string) string {
	return orDefault(buf, cursor, def, func(b []byte, c *int) (string, error) {
		return ReadString(b, c, n, enc)
	})
}

func ReadLengthPrefixedStringOrDefault(buf []byte, cursor *int, enc encoding.Encoding, def string) string {
	return orDefault(buf, cursor, def, func(b []byte, c *int) (string, error) {
		return ReadLengthPrefixedString(b, c, enc)
	})
}

func ReadNullTerminatedStringOrDefault(buf []byte, cursor *int, enc encoding.Encoding, def string) string {
	return orDefault(buf, cursor, def, func(b []byte, c *int) (string, error) {
		return ReadNullTerminatedString(b, c, enc)
	})
}

// encodeString converts s to bytes under enc.
func encodeString(s string, enc encoding.Encoding) ([]byte, error) {
	if enc == nil {
		return nil, ErrNilEncoding
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}
