// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package tier

import (
	"math/big"

	"github.com/holiman/uint256"
)

// register128 is the all-ones value of the 128-bit tier.
// Bits 128 and above of a 128-bit tier register are always zero.
var register128 = uint256.Int{^uint64(0), ^uint64(0), 0, 0}

var bigOne = big.NewInt(1)

func checkWidth(width uint, t Tier) {
	if width == 0 {
		panic(ErrWidthZero)
	}
	if !t.Holds(width) {
		panic(ErrWidthTier)
	}
}

// Register returns the all-ones value of a word tier.
func Register(t Tier) uint64 {
	return Mask(t.Bits(), t)
}

// Mask returns all-ones in the low width bits of a word tier register.
// When width equals the register size the mask is the full register.
func Mask(width uint, t Tier) uint64 {
	checkWidth(width, t)
	if !t.Word() {
		panic(ErrWidthTier)
	}

	if width == WORD_LIMIT {
		return ^uint64(0)
	}

	return (uint64(1) << width) - 1
}

// Apply canonicalizes a word tier register to width bits.
//
// Unsigned values are masked. Signed values with bit (width-1) set have every
// register bit above width set; otherwise they are masked.
func Apply(v uint64, width uint, signed bool, t Tier) uint64 {
	mask := Mask(width, t)
	if signed && (v>>(width-1))&1 != 0 {
		return (v | ^mask) & Register(t)
	}
	return v & mask
}

// SignExtend returns the low width bits of v as a sign-extended int64.
func SignExtend(v uint64, width uint) int64 {
	if width == 0 {
		panic(ErrWidthZero)
	}
	if width >= WORD_LIMIT {
		return int64(v)
	}
	shift := WORD_LIMIT - width
	return int64(v<<shift) >> shift
}

// ZeroExtend returns the low width bits of v.
func ZeroExtend(v uint64, width uint) uint64 {
	if width == 0 {
		panic(ErrWidthZero)
	}
	if width >= WORD_LIMIT {
		return v
	}
	return v & ((uint64(1) << width) - 1)
}

// Mask256 returns all-ones in the low width bits of a 128-bit tier register.
func Mask256(width uint) (mask uint256.Int) {
	checkWidth(width, TIER_128)

	mask.Lsh(uint256.NewInt(1), width)
	mask.Sub(&mask, uint256.NewInt(1))
	return
}

// Bit256 returns bit n of v.
func Bit256(v *uint256.Int, n uint) uint64 {
	return (v[n/64] >> (n % 64)) & 1
}

// Apply256 canonicalizes a 128-bit tier register to width bits.
// The result never carries bits at or above bit 128.
func Apply256(v uint256.Int, width uint, signed bool) (r uint256.Int) {
	mask := Mask256(width)
	if signed && Bit256(&v, width-1) != 0 {
		r.Not(&mask)
		r.Or(&r, &v)
		r.And(&r, &register128)
		return
	}
	r.And(&v, &mask)
	return
}

// Extend256 sign extends a canonical 128-bit tier register to the full
// 256-bit carrier, for two's complement operations on the carrier.
func Extend256(v uint256.Int, signed bool) uint256.Int {
	if signed && Bit256(&v, NATIVE_LIMIT-1) != 0 {
		v[2] = ^uint64(0)
		v[3] = ^uint64(0)
	}
	return v
}

// MaskBig returns 2^width - 1.
func MaskBig(width uint) *big.Int {
	mask := new(big.Int).Lsh(bigOne, width)
	return mask.Sub(mask, bigOne)
}

// ApplyBig canonicalizes a big-integer value to width bits, returning a new
// value. Unsigned results are in [0, 2^width), signed results in
// [-2^(width-1), 2^(width-1)). INFINITE widths are never masked.
func ApplyBig(v *big.Int, width uint, signed bool) *big.Int {
	if width == 0 {
		panic(ErrWidthZero)
	}

	if width == INFINITE {
		if !signed && v.Sign() < 0 {
			panic(ErrNegativeUnsigned)
		}
		return new(big.Int).Set(v)
	}

	r := new(big.Int).And(v, MaskBig(width))
	if signed && r.Bit(int(width-1)) != 0 {
		r.Sub(r, new(big.Int).Lsh(bigOne, width))
	}
	return r
}

// FitsBig returns true if v is representable at width bits, either as an
// unsigned bit pattern or as a signed value.
func FitsBig(v *big.Int, width uint) bool {
	if width == INFINITE {
		return true
	}
	if v.Sign() >= 0 {
		return uint(v.BitLen()) <= width
	}
	// -2^(width-1) is the most negative value.
	mag := new(big.Int).Neg(v)
	mag.Sub(mag, bigOne)
	return uint(mag.BitLen()) < width
}
