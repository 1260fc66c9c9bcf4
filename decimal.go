package bytekit

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// The 16-byte decimal layout is four little-endian 32-bit words:
// lo, mid, hi (a 96-bit unsigned coefficient) and flags, where bits
// 16-23 carry the scale (0..28) and bit 31 the sign. All other flag
// bits must be zero.
const (
	decimalWidth = 16
	maxScale     = 28
	scaleShift   = 16
	scaleMask    = 0x00FF0000
	signMask     = 0x80000000
	reservedMask = 0x7F00FFFF
)

func ReadDecimal(buf []byte, cursor *int) (decimal.Decimal, error) {
	local := *cursor
	if err := checkRead(buf, local, decimalWidth); err != nil {
		return decimal.Decimal{}, err
	}
	lo := binary.LittleEndian.Uint32(buf[local:])
	mid := binary.LittleEndian.Uint32(buf[local+4:])
	hi := binary.LittleEndian.Uint32(buf[local+8:])
	flags := binary.LittleEndian.Uint32(buf[local+12:])

	if flags&reservedMask != 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: reserved decimal flag bits set (0x%08X)", ErrMalformed, flags)
	}
	scale := (flags & scaleMask) >> scaleShift
	if scale > maxScale {
		return decimal.Decimal{}, fmt.Errorf("%w: decimal scale %d exceeds %d", ErrMalformed, scale, maxScale)
	}

	coeff := new(big.Int).SetUint64(uint64(hi))
	coeff.Lsh(coeff, 64)
	low64 := new(big.Int).SetUint64(uint64(mid)<<32 | uint64(lo))
	coeff.Or(coeff, low64)
	if flags&signMask != 0 {
		coeff.Neg(coeff)
	}
	*cursor = local + decimalWidth
	return decimal.NewFromBigInt(coeff, -int32(scale)), nil
}

func ReadDecimalAt(buf []byte, offset int) (decimal.Decimal, error) {
	return ReadDecimal(buf, &offset)
}

func ReadDecimalOrDefault(buf []byte, cursor *int, def decimal.Decimal) decimal.Decimal {
	return orDefault(buf, cursor, def, ReadDecimal)
}

// PutDecimal writes d in the 16-byte layout. Values whose coefficient
// does not fit 96 bits, or whose scale falls outside 0..28, cannot be
// represented and fail as malformed.
func PutDecimal(buf []byte, cursor *int, d decimal.Decimal) error {
	coeff := new(big.Int).Set(d.Coefficient())
	exp := int(d.Exponent())
	if exp > 0 {
		coeff.Mul(coeff, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
		exp = 0
	}
	scale := -exp
	if scale > maxScale {
		return fmt.Errorf("%w: decimal scale %d exceeds %d", ErrMalformed, scale, maxScale)
	}
	var flags uint32 = uint32(scale) << scaleShift
	if coeff.Sign() < 0 {
		flags |= signMask
		coeff.Neg(coeff)
	}
	if coeff.BitLen() > 96 {
		return fmt.Errorf("%w: decimal coefficient exceeds 96 bits", ErrMalformed)
	}
	var raw [12]byte
	coeff.FillBytes(raw[:]) // big-endian: hi | mid | lo

	local := *cursor
	if err := checkRead(buf, local, decimalWidth); err != nil {
		return err
	}
	for _, word := range [4]uint32{
		binary.BigEndian.Uint32(raw[8:12]), // lo
		binary.BigEndian.Uint32(raw[4:8]),  // mid
		binary.BigEndian.Uint32(raw[0:4]),  // hi
		flags,
	} {
		if err := PutUint32(buf, &local, word); err != nil {
			return err
		}
	}
	*cursor = local
	return nil
}
