package bitvec

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/ezrec/hwbits/tier"
)

// Format is the type of a bit vector: its width and signedness.
type Format struct {
	Width  uint
	Signed bool
}

// Unbounded formats.
var (
	UINF = Format{Width: tier.INFINITE}
	SINF = Format{Width: tier.INFINITE, Signed: true}
)

// U returns the unsigned format of a width.
func U(width uint) Format {
	return Format{Width: width}
}

// S returns the signed format of a width.
func S(width uint) Format {
	return Format{Width: width, Signed: true}
}

// Join returns the result format of a non-widening binary operation.
// The result is signed only if both operands are signed.
func Join(a, b Format) Format {
	return Format{
		Width:  tier.Max(a.Width, b.Width),
		Signed: a.Signed && b.Signed,
	}
}

// maskFormat is the format of an unknown bit mask of a width.
// Unbounded masks are signed, so that an unknown sign extends forever.
func maskFormat(width uint) Format {
	if width == tier.INFINITE {
		return SINF
	}
	return U(width)
}

// Tier returns the storage tier selected for the format.
func (fm Format) Tier() tier.Tier {
	return tier.Select(fm.Width)
}

// Infinite returns true for unbounded formats.
func (fm Format) Infinite() bool {
	return fm.Width == tier.INFINITE
}

func (fm Format) String() string {
	sign := "u"
	if fm.Signed {
		sign = "s"
	}
	if fm.Infinite() {
		return sign + "inf"
	}
	return fmt.Sprintf("%v%d", sign, fm.Width)
}

// build returns a zero value of the format, held in a given tier.
func (fm Format) build(op string, store tier.Tier) (b Bits) {
	if fm.Width == 0 {
		fatal(op, ErrWidthZero)
	}
	if !store.Holds(fm.Width) {
		fatal(op, ErrWidthTier)
	}

	b = Bits{
		width:  fm.Width,
		signed: fm.Signed,
		store:  store,
	}
	if store == tier.TIER_BIG {
		b.huge = new(big.Int)
	}

	return
}

func (fm Format) fromWord(v uint64, store tier.Tier) (b Bits) {
	b = fm.build("word", store)
	b.word = tier.Apply(v, fm.Width, fm.Signed, store)
	return
}

func (fm Format) fromWide(v uint256.Int) (b Bits) {
	b = fm.build("wide", tier.TIER_128)
	b.wide = tier.Apply256(v, fm.Width, fm.Signed)
	return
}

func (fm Format) fromBig(op string, v *big.Int) (b Bits) {
	b = fm.build(op, tier.TIER_BIG)
	if fm.Infinite() && !fm.Signed && v.Sign() < 0 {
		fatal(op, ErrNegativeUnsigned)
	}
	b.huge = tier.ApplyBig(v, fm.Width, fm.Signed)
	return
}

// convert returns b converted to the format, held in a given tier.
// Narrower sources are extended according to their own signedness,
// wider sources are truncated.
func (fm Format) convert(op string, b Bits, store tier.Tier) Bits {
	switch {
	case store.Word():
		return fm.fromWord(b.low64(), store)
	case store == tier.TIER_128:
		return fm.fromWide(b.low256())
	default:
		return fm.fromBig(op, b.Big())
	}
}

// Zero returns the zero value of the format.
func (fm Format) Zero() Bits {
	return fm.build("zero", fm.Tier())
}

// Ones returns the all-ones value of the format.
func (fm Format) Ones() Bits {
	return fm.Zero().Not()
}

// Of returns a native unsigned integer as the format.
func (fm Format) Of(v uint64) Bits {
	src := Bits{width: 64, store: tier.TIER_64, word: v}
	return fm.convert("assign", src, fm.Tier())
}

// OfInt returns a native signed integer as the format.
// Negative values assigned to an unsigned unbounded format panic.
func (fm Format) OfInt(v int64) Bits {
	src := Bits{width: 64, signed: true, store: tier.TIER_64, word: uint64(v)}
	return fm.convert("assign", src, fm.Tier())
}

// OfBig returns a big integer as the format.
func (fm Format) OfBig(v *big.Int) Bits {
	switch store := fm.Tier(); {
	case store == tier.TIER_BIG:
		return fm.fromBig("assign", v)
	default:
		src := Bits{width: tier.INFINITE, signed: true, store: tier.TIER_BIG, huge: v}
		return fm.convert("assign", src, store)
	}
}

// From converts a known value to the format.
func (fm Format) From(b Bits) Bits {
	return fm.convert("convert", b, fm.Tier())
}

// Convert converts any representation to the format.
// Values with unknown bits return ErrUndefined.
func (fm Format) Convert(v Vector) (b Bits, err error) {
	if !v.Mask().IsZero() {
		err = undefined("convert")
		return
	}

	b = fm.From(v.Value())
	return
}

// Unknown returns a value of the format with every bit unknown.
func (fm Format) Unknown() XBits {
	return NewXBits(fm.Zero(), maskFormat(fm.Width).Ones())
}

// Dyn returns a zero value of the format, with a dynamic width bounded by max.
func (fm Format) Dyn(max uint) DynBits {
	return NewDynBits(max, fm.Zero())
}
