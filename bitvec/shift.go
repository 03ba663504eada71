// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bitvec

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/ezrec/hwbits/tier"
)

// Shl returns b << n, discarding bits shifted past the width.
func (b Bits) Shl(n uint) Bits {
	fm := b.Format()
	if !fm.Infinite() && n >= b.width {
		return fm.build("shl", b.store)
	}
	if fm.Infinite() && n >= tier.MAX_WIDTH && b.huge.Sign() != 0 {
		fatal("shl", ErrWidthBound)
	}

	switch {
	case b.store.Word():
		return fm.fromWord(b.word<<n, b.store)
	case b.store == tier.TIER_128:
		var z uint256.Int
		z.Lsh(&b.wide, n)
		return fm.fromWide(z)
	default:
		return fm.fromBig("shl", new(big.Int).Lsh(b.huge, n))
	}
}

// Shr returns the logical (zero filling) shift b >> n.
//
// Unbounded values have no top bit to fill from, and shift arithmetically.
func (b Bits) Shr(n uint) Bits {
	fm := b.Format()
	if fm.Infinite() {
		return fm.fromBig("shr", new(big.Int).Rsh(b.huge, n))
	}
	if n >= b.width {
		return fm.build("shr", b.store)
	}

	pattern := U(b.width).convert("shr", b, b.store)
	switch {
	case b.store.Word():
		return fm.fromWord(pattern.word>>n, b.store)
	case b.store == tier.TIER_128:
		var z uint256.Int
		z.Rsh(&pattern.wide, n)
		return fm.fromWide(z)
	default:
		return fm.fromBig("shr", new(big.Int).Rsh(pattern.huge, n))
	}
}

// Sra returns the arithmetic (sign filling) shift b >> n. Bit (width-1) is
// the sign bit, for unsigned values too. Shifts of the full width or more
// leave only copies of the sign bit.
func (b Bits) Sra(n uint) Bits {
	fm := b.Format()
	view := S(b.width).convert("sra", b, b.store)
	if !fm.Infinite() && n >= b.width {
		n = b.width - 1
	}

	switch {
	case b.store.Word():
		return fm.fromWord(uint64(tier.SignExtend(view.word, b.width)>>n), b.store)
	case b.store == tier.TIER_128:
		var z uint256.Int
		ext := tier.Extend256(view.wide, true)
		z.SRsh(&ext, n)
		return fm.fromWide(z)
	default:
		return fm.fromBig("sra", new(big.Int).Rsh(view.huge, n))
	}
}

// WideningShl returns b << n at width+n bits, so no bits are lost.
// The result width saturates at tier.MAX_WIDTH.
func (b Bits) WideningShl(n uint) Bits {
	fm := Format{Width: tier.Widen(b.width, n), Signed: b.signed}
	return fm.From(b).Shl(n)
}

// ShlBy returns b << amount, for an amount of any representation.
func (b Bits) ShlBy(amount Vector) (r Bits, err error) {
	n, err := Index(amount)
	if err != nil {
		return
	}
	r = b.Shl(n)
	return
}

// ShrBy returns b >> amount (logical), for an amount of any representation.
func (b Bits) ShrBy(amount Vector) (r Bits, err error) {
	n, err := Index(amount)
	if err != nil {
		return
	}
	r = b.Shr(n)
	return
}

// SraBy returns b >> amount (arithmetic), for an amount of any representation.
func (b Bits) SraBy(amount Vector) (r Bits, err error) {
	n, err := Index(amount)
	if err != nil {
		return
	}
	r = b.Sra(n)
	return
}
