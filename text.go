package bytekit

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// HexOptions controls ToHexString output. The zero value renders
// contiguous lowercase digits with no prefix.
type HexOptions struct {
	Separator string // between bytes, e.g. " ", "-", ":"
	Prefix    string // before every byte, e.g. "0x"
	Uppercase bool
}

// ToHex renders b as contiguous lowercase hex digits.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

func ToHexString(b []byte, opts HexOptions) string {
	if len(b) == 0 {
		return ""
	}
	digits := "0123456789abcdef"
	if opts.Uppercase {
		digits = "0123456789ABCDEF"
	}
	var sb strings.Builder
	sb.Grow(len(b) * (2 + len(opts.Prefix) + len(opts.Separator)))
	for i, c := range b {
		if i > 0 {
			sb.WriteString(opts.Separator)
		}
		sb.WriteString(opts.Prefix)
		sb.WriteByte(digits[c>>4])
		sb.WriteByte(digits[c&0x0F])
	}
	return sb.String()
}

// FromHexString decodes hex text produced with any HexOptions
// combination: whitespace, "-", ":" separators and 0x/0X prefixes are
// stripped before decoding. An odd digit count or a non-hex digit is a
// format error.
func FromHexString(s string) ([]byte, error) {
	cleaned := strings.NewReplacer("0x", "", "0X", "", "-", "", ":", "", " ", "", "\t", "", "\n", "", "\r", "").Replace(s)
	if len(cleaned)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of hex digits (%d)", ErrMalformed, len(cleaned))
	}
	out, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}

func ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func FromBase64(s string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}

// ToBinaryString renders each byte as 8 bits, most significant first,
// joined by sep.
func ToBinaryString(b []byte, sep string) string {
	var sb strings.Builder
	sb.Grow(len(b) * (8 + len(sep)))
	for i, c := range b {
		if i > 0 {
			sb.WriteString(sep)
		}
		for bit := 7; bit >= 0; bit-- {
			if c&(1<<bit) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

// FromBinaryString parses a bit string such as "10101010 11110000".
// Space, "-", ":", "_" separators are stripped; what remains must be
// 0/1 digits in groups of 8.
func FromBinaryString(s string) ([]byte, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "", ":", "", "_", "", "\t", "", "\n", "", "\r", "").Replace(s)
	if len(cleaned)%8 != 0 {
		return nil, fmt.Errorf("%w: bit count %d is not a multiple of 8", ErrMalformed, len(cleaned))
	}
	out := make([]byte, len(cleaned)/8)
	for i := 0; i < len(cleaned); i++ {
		switch cleaned[i] {
		case '1':
			out[i/8] |= 1 << (7 - i%8)
		case '0':
		default:
			return nil, fmt.Errorf("%w: %q is not a binary digit", ErrMalformed, cleaned[i])
		}
	}
	return out, nil
}
