// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bitvec

import (
	"math/big"
	"math/bits"

	"github.com/holiman/uint256"

	"github.com/ezrec/hwbits/tier"
)

// Bits is a fully known value of a fixed width.
//
// The storage tier is chosen once at construction. Word tiers keep the
// value in a uint64 register, the 128-bit tier in a 256-bit carrier, and the
// big tier as the logical value in a big.Int. Stored values never carry bits
// outside the width, except for the sign fill of signed values inside their
// native register.
type Bits struct {
	width  uint
	signed bool
	store  tier.Tier
	word   uint64
	wide   uint256.Int
	huge   *big.Int
}

var _ Static = Bits{}
var _ Known = Bits{}

func (b Bits) static() {}
func (b Bits) known()  {}

// Width of the value in bits.
func (b Bits) Width() uint {
	return b.width
}

// Bound is the largest width the value could have; for Bits, its width.
func (b Bits) Bound() uint {
	return b.width
}

// Signed returns true for signed values.
func (b Bits) Signed() bool {
	return b.signed
}

// Format returns the width and signedness of the value.
func (b Bits) Format() Format {
	return Format{Width: b.width, Signed: b.signed}
}

// Tier returns the storage tier of the value.
func (b Bits) Tier() tier.Tier {
	return b.store
}

// Value returns b.
func (b Bits) Value() Bits {
	return b
}

// Mask returns the (empty) unknown mask of b.
func (b Bits) Mask() Bits {
	return maskFormat(b.width).build("mask", b.store)
}

// low64 returns the low 64 bits of the two's complement logical value.
func (b Bits) low64() uint64 {
	switch {
	case b.store.Word():
		if b.signed {
			return uint64(tier.SignExtend(b.word, b.width))
		}
		return b.word
	case b.store == tier.TIER_128:
		return b.wide[0]
	default:
		return new(big.Int).And(b.huge, tier.MaskBig(64)).Uint64()
	}
}

// low256 returns the low 256 bits of the two's complement logical value.
func (b Bits) low256() (v uint256.Int) {
	switch {
	case b.store.Word():
		lo := b.low64()
		v[0] = lo
		if b.signed && int64(lo) < 0 {
			v[1], v[2], v[3] = ^uint64(0), ^uint64(0), ^uint64(0)
		}
	case b.store == tier.TIER_128:
		v = tier.Extend256(b.wide, b.signed)
	default:
		pattern := new(big.Int).And(b.huge, tier.MaskBig(256))
		wide, _ := uint256.FromBig(pattern)
		v = *wide
	}
	return
}

// Big returns the logical value as a new big integer.
func (b Bits) Big() *big.Int {
	switch {
	case b.store.Word():
		if b.signed {
			return big.NewInt(tier.SignExtend(b.word, b.width))
		}
		return new(big.Int).SetUint64(b.word)
	case b.store == tier.TIER_128:
		ext := tier.Extend256(b.wide, b.signed)
		v := ext.ToBig()
		if b.signed && tier.Bit256(&ext, 255) != 0 {
			v.Sub(v, new(big.Int).Lsh(big.NewInt(1), 256))
		}
		return v
	default:
		return new(big.Int).Set(b.huge)
	}
}

// Uint64 returns the low 64 bits of the value. Signed values are sign
// extended first.
func (b Bits) Uint64() uint64 {
	return b.low64()
}

// Int64 returns the low 64 bits of the value as a signed integer.
// Signed values are sign extended first.
func (b Bits) Int64() int64 {
	return int64(b.low64())
}

// Integer is the set of native integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Get returns the value as a native integer type, truncating as a Go
// conversion would. Signed values are sign extended first.
func Get[T Integer](b Bits) T {
	return T(b.low64())
}

// IsZero returns true if every bit is zero.
func (b Bits) IsZero() bool {
	switch {
	case b.store.Word():
		return b.word == 0
	case b.store == tier.TIER_128:
		return b.wide.IsZero()
	default:
		return b.huge.Sign() == 0
	}
}

// Sign returns -1, 0 or +1 for negative, zero and positive values.
func (b Bits) Sign() int {
	switch {
	case b.IsZero():
		return 0
	case !b.signed:
		return 1
	case b.store.Word():
		if tier.SignExtend(b.word, b.width) < 0 {
			return -1
		}
		return 1
	default:
		return b.Big().Sign()
	}
}

// BitLen returns the bit length of the absolute logical value.
func (b Bits) BitLen() int {
	if !b.signed && b.store.Word() {
		return bits.Len64(b.word)
	}
	v := b.Big()
	return v.Abs(v).BitLen()
}

// OnesCount returns the number of set bits in the width.
func (b Bits) OnesCount() (count int) {
	if b.signed && !b.Format().Infinite() {
		b = U(b.width).convert("count", b, b.store)
	}

	switch {
	case b.store.Word():
		count = bits.OnesCount64(b.word)
	case b.store == tier.TIER_128:
		count = bits.OnesCount64(b.wide[0]) + bits.OnesCount64(b.wide[1])
	default:
		for _, word := range b.huge.Bits() {
			count += bits.OnesCount(uint(word))
		}
	}

	return
}

// X returns b as a value with an empty unknown mask.
func (b Bits) X() XBits {
	return NewXBits(b, b.Mask())
}

// Dyn returns b as a dynamic width value, bounded by its current width.
func (b Bits) Dyn() DynBits {
	return NewDynBits(b.width, b)
}

// retier returns b held in another storage tier.
func (b Bits) retier(store tier.Tier) Bits {
	if b.store == store {
		return b
	}
	return b.Format().convert("retier", b, store)
}

// Assign sets b to the value of v, converted to the width of b.
// Values with unknown bits return ErrUndefined and leave b untouched.
func (b *Bits) Assign(v Vector) (err error) {
	if !v.Mask().IsZero() {
		err = undefined("assign")
		return
	}

	*b = b.Format().convert("assign", v.Value(), b.store)
	return
}

// Inc increments b in place. Overflow wraps within the width.
func (b *Bits) Inc() {
	*b = b.Format().binary(opAdd, *b, U(1).Of(1), b.store)
}

// Dec decrements b in place. Underflow wraps within the width.
func (b *Bits) Dec() {
	*b = b.Format().binary(opSub, *b, U(1).Of(1), b.store)
}

// AddAssign adds o to b in place, keeping the width of b.
func (b *Bits) AddAssign(o Bits) {
	*b = b.Format().binary(opAdd, *b, o, b.store)
}

// SubAssign subtracts o from b in place, keeping the width of b.
func (b *Bits) SubAssign(o Bits) {
	*b = b.Format().binary(opSub, *b, o, b.store)
}
