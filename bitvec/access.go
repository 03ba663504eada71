package bitvec

import (
	"math/big"
	"slices"

	"github.com/ezrec/hwbits/tier"
)

// checkExtract validates an extraction range against a width.
func checkExtract(op string, width, msb, lsb uint) {
	if msb < lsb || (width != tier.INFINITE && msb >= width) {
		fatal(op, ErrExtractRange)
	}
}

// checkIndex validates a bit position against a width.
func checkIndex(op string, width, pos uint) {
	if width != tier.INFINITE && pos >= width {
		fatal(op, ErrIndexRange)
	}
}

// Extract returns the unsigned value of bits [lsb, msb].
func (b Bits) Extract(msb, lsb uint) Bits {
	checkExtract("extract", b.width, msb, lsb)
	return U(msb - lsb + 1).From(b.Shr(lsb))
}

// At returns bit pos as a one bit value.
func (b Bits) At(pos uint) Bits {
	checkIndex("at", b.width, pos)
	return b.Extract(pos, pos)
}

// Bit returns bit pos as 0 or 1.
func (b Bits) Bit(pos uint) uint {
	checkIndex("bit", b.width, pos)
	switch {
	case b.store.Word():
		return uint(b.word>>pos) & 1
	case b.store == tier.TIER_128:
		return uint(tier.Bit256(&b.wide, pos))
	default:
		return b.huge.Bit(int(pos))
	}
}

// SetBit sets bit idx of b in place.
func (b *Bits) SetBit(idx uint, value bool) {
	checkIndex("setbit", b.width, idx)

	bit := uint(0)
	if value {
		bit = 1
	}

	fm := b.Format()
	switch {
	case b.store.Word():
		v := b.word &^ (uint64(1) << idx)
		*b = fm.fromWord(v|uint64(bit)<<idx, b.store)
	case b.store == tier.TIER_128:
		v := b.wide
		v[idx/64] &^= uint64(1) << (idx % 64)
		v[idx/64] |= uint64(bit) << (idx % 64)
		*b = fm.fromWide(v)
	default:
		pattern := b.huge
		if b.signed && !fm.Infinite() {
			pattern = new(big.Int).And(b.huge, tier.MaskBig(b.width))
		}
		*b = fm.fromBig("setbit", new(big.Int).SetBit(pattern, int(idx), bit))
	}
}

// Replicate returns k copies of b side by side, as an unsigned value.
func (b Bits) Replicate(k uint) Bits {
	checkReplicate(b.width, k)
	return Cat(slices.Repeat([]Bits{b}, int(k))...)
}

func checkReplicate(width, k uint) {
	switch {
	case k == 0:
		fatal("replicate", ErrReplicateZero)
	case width == tier.INFINITE || k > tier.MAX_WIDTH/width:
		fatal("replicate", ErrReplicateOverflow)
	}
}

// ExtractBy returns bits [lsb, msb], for indices of any representation.
func (b Bits) ExtractBy(msb, lsb Vector) (r Bits, err error) {
	hi, err := Index(msb)
	if err != nil {
		return
	}
	lo, err := Index(lsb)
	if err != nil {
		return
	}
	r = b.Extract(hi, lo)
	return
}

// AtBy returns one bit, for a position of any representation.
func (b Bits) AtBy(pos Vector) (r Bits, err error) {
	n, err := Index(pos)
	if err != nil {
		return
	}
	r = b.At(n)
	return
}

// SetBitBy sets one bit in place, for a position of any representation.
func (b *Bits) SetBitBy(idx Vector, value bool) (err error) {
	n, err := Index(idx)
	if err != nil {
		return
	}
	b.SetBit(n, value)
	return
}
