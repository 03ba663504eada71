// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bitvec

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/ezrec/hwbits/tier"
)

// XBits is a fixed width value where any bit may be unknown.
//
// The mask has a bit set for each unknown position. Unknown positions read
// as 0 in the paired value.
type XBits struct {
	value Bits
	mask  Bits
}

var _ Static = XBits{}

func (x XBits) static() {}

// NewXBits returns a value with the unknown bits of mask.
// The mask is converted to the width of value.
func NewXBits(value Bits, mask Bits) (x XBits) {
	x.mask = maskFormat(value.width).convert("mask", mask, value.store)
	x.value = andNot(value, x.mask)
	return
}

// andNot returns v with the bits set in m cleared, keeping the format of v.
func andNot(v, m Bits) Bits {
	fm := v.Format()
	switch {
	case v.store.Word():
		return fm.fromWord(v.word&^m.low64(), v.store)
	case v.store == tier.TIER_128:
		var z uint256.Int
		mw := m.low256()
		z.Not(&mw)
		z.And(&z, &v.wide)
		return fm.fromWide(z)
	default:
		return fm.fromBig("mask", new(big.Int).AndNot(v.huge, m.Big()))
	}
}

// toX returns any vector as a static width value with unknown bits.
func toX(v Vector) XBits {
	if x, ok := v.(XBits); ok {
		return x
	}
	return NewXBits(v.Value(), v.Mask())
}

// Width of the value in bits.
func (x XBits) Width() uint {
	return x.value.width
}

// Bound is the largest width the value could have; for XBits, its width.
func (x XBits) Bound() uint {
	return x.value.width
}

// Signed returns true for signed values.
func (x XBits) Signed() bool {
	return x.value.signed
}

// Format returns the width and signedness of the value.
func (x XBits) Format() Format {
	return x.value.Format()
}

// Tier returns the storage tier of the value.
func (x XBits) Tier() tier.Tier {
	return x.value.store
}

// Value returns the known bits. Unknown positions read as 0.
func (x XBits) Value() Bits {
	return x.value
}

// Mask returns the unknown bit mask.
func (x XBits) Mask() Bits {
	return x.mask
}

// Dyn returns x as a dynamic width value, bounded by its current width.
func (x XBits) Dyn() DynXBits {
	return NewDynXBits(x.value.width, x)
}

// IsDefined returns true if no bit is unknown.
func (x XBits) IsDefined() bool {
	return x.mask.IsZero()
}

// UnknownBits returns the number of unknown bits.
func (x XBits) UnknownBits() int {
	return x.mask.OnesCount()
}

// Defined returns the known value, or ErrUndefined if any bit is unknown.
func (x XBits) Defined() (b Bits, err error) {
	if !x.IsDefined() {
		err = undefined("defined")
		return
	}
	b = x.value
	return
}

// Uint64 returns the low 64 bits of a fully known value.
func (x XBits) Uint64() (v uint64, err error) {
	b, err := x.Defined()
	if err != nil {
		return
	}
	v = b.Uint64()
	return
}

// Int64 returns the low 64 bits of a fully known value, as a signed integer.
func (x XBits) Int64() (v int64, err error) {
	b, err := x.Defined()
	if err != nil {
		return
	}
	v = b.Int64()
	return
}

// convert returns x converted to a format, held in a given tier.
// Extending a signed value with an unknown sign bit extends the unknown
// bits too.
func (x XBits) convert(op string, fm Format, store tier.Tier) (r XBits) {
	mask := x.mask
	if x.value.signed {
		mask = S(x.value.width).convert(op, mask, mask.store)
	}

	r.mask = maskFormat(fm.Width).convert(op, mask, store)
	r.value = andNot(fm.convert(op, x.value, store), r.mask)
	return
}

// patterns returns the value and mask of x and o as bit patterns of the
// joined format.
func (x XBits) patterns(op string, o Static) (fm Format, xv, xm, ov, om Bits) {
	y := toX(o)
	fm = Join(x.Format(), y.Format())
	pf := maskFormat(fm.Width)
	store := fm.Tier()

	a := x.convert(op, fm, store)
	b := y.convert(op, fm, store)

	xv, xm = pf.convert(op, a.value, store), a.mask
	ov, om = pf.convert(op, b.value, store), b.mask
	return
}

// fromPatterns returns an unknown value of a format from bit patterns.
func (fm Format) fromPatterns(value, mask Bits) XBits {
	return NewXBits(fm.From(value), mask)
}

// And returns x & o. A known 0 in either operand gives a known 0.
func (x XBits) And(o Static) XBits {
	fm, xv, xm, ov, om := x.patterns("and", o)
	unknown := xm.Or(om).And(xv.Or(xm)).And(ov.Or(om))
	return fm.fromPatterns(xv.And(ov), unknown)
}

// Or returns x | o. A known 1 in either operand gives a known 1.
func (x XBits) Or(o Static) XBits {
	fm, xv, xm, ov, om := x.patterns("or", o)
	ones := xv.Or(ov)
	unknown := andNot(xm.Or(om), ones)
	return fm.fromPatterns(ones, unknown)
}

// Not returns ^x. Unknown bits stay unknown.
func (x XBits) Not() XBits {
	return NewXBits(x.value.Not(), x.mask)
}

// bothDefined returns the known values of x and o, or ErrUndefined.
func (x XBits) bothDefined(op string, o Static) (a, b Bits, err error) {
	if !x.IsDefined() || !o.Mask().IsZero() {
		err = undefined(op)
		return
	}
	a, b = x.value, o.Value()
	return
}

// arith applies a known operator to two fully known values.
func (x XBits) arith(op string, o Static, fn func(a, b Bits) Bits) (r XBits, err error) {
	a, b, err := x.bothDefined(op, o)
	if err != nil {
		return
	}
	r = fn(a, b).X()
	return
}

// Xor returns x ^ o, or ErrUndefined if any bit is unknown.
func (x XBits) Xor(o Static) (XBits, error) {
	return x.arith("xor", o, Bits.Xor)
}

// Add returns x + o, or ErrUndefined if any bit is unknown.
func (x XBits) Add(o Static) (XBits, error) {
	return x.arith("add", o, Bits.Add)
}

// Sub returns x - o, or ErrUndefined if any bit is unknown.
func (x XBits) Sub(o Static) (XBits, error) {
	return x.arith("sub", o, Bits.Sub)
}

// Mul returns x * o, or ErrUndefined if any bit is unknown.
func (x XBits) Mul(o Static) (XBits, error) {
	return x.arith("mul", o, Bits.Mul)
}

// Div returns x / o, or ErrUndefined if any bit is unknown.
// Division by a known zero panics.
func (x XBits) Div(o Static) (XBits, error) {
	return x.arith("div", o, Bits.Div)
}

// Rem returns x % o, or ErrUndefined if any bit is unknown.
// Division by a known zero panics.
func (x XBits) Rem(o Static) (XBits, error) {
	return x.arith("rem", o, Bits.Rem)
}

// WideningAdd returns x + o one bit wider, or ErrUndefined.
func (x XBits) WideningAdd(o Static) (XBits, error) {
	return x.arith("add", o, Bits.WideningAdd)
}

// WideningSub returns x - o one bit wider, or ErrUndefined.
func (x XBits) WideningSub(o Static) (XBits, error) {
	return x.arith("sub", o, Bits.WideningSub)
}

// WideningMul returns x * o at the sum of the widths, or ErrUndefined.
func (x XBits) WideningMul(o Static) (XBits, error) {
	return x.arith("mul", o, Bits.WideningMul)
}

// Neg returns -x, or ErrUndefined if any bit is unknown.
func (x XBits) Neg() (r XBits, err error) {
	b, err := x.Defined()
	if err != nil {
		return
	}
	r = b.Neg().X()
	return
}

// Cmp compares two fully known values.
func (x XBits) Cmp(o Static) (c int, err error) {
	a, b, err := x.bothDefined("cmp", o)
	if err != nil {
		return
	}
	c = a.Cmp(b)
	return
}

// Eq returns x == o, or ErrUndefined if any bit is unknown.
func (x XBits) Eq(o Static) (bool, error) {
	c, err := x.Cmp(o)
	return c == 0, err
}

// Ne returns x != o, or ErrUndefined if any bit is unknown.
func (x XBits) Ne(o Static) (bool, error) {
	c, err := x.Cmp(o)
	return c != 0, err
}

// Lt returns x < o, or ErrUndefined if any bit is unknown.
func (x XBits) Lt(o Static) (bool, error) {
	c, err := x.Cmp(o)
	return c < 0, err
}

// Le returns x <= o, or ErrUndefined if any bit is unknown.
func (x XBits) Le(o Static) (bool, error) {
	c, err := x.Cmp(o)
	return c <= 0, err
}

// Gt returns x > o, or ErrUndefined if any bit is unknown.
func (x XBits) Gt(o Static) (bool, error) {
	c, err := x.Cmp(o)
	return c > 0, err
}

// Ge returns x >= o, or ErrUndefined if any bit is unknown.
func (x XBits) Ge(o Static) (bool, error) {
	c, err := x.Cmp(o)
	return c >= 0, err
}

// Same returns true if x and o have the same format, value and unknown bits.
func (x XBits) Same(o XBits) bool {
	return x.value.Same(o.value) && x.mask.Eq(o.mask)
}

// Shl returns x << n. Unknown bits move with the value.
func (x XBits) Shl(n uint) XBits {
	return NewXBits(x.value.Shl(n), x.mask.Shl(n))
}

// Shr returns the logical shift x >> n. Unknown bits move with the value.
func (x XBits) Shr(n uint) XBits {
	return NewXBits(x.value.Shr(n), x.mask.Shr(n))
}

// Sra returns the arithmetic shift x >> n. An unknown sign bit fills with
// unknown bits.
func (x XBits) Sra(n uint) XBits {
	return NewXBits(x.value.Sra(n), x.mask.Sra(n))
}

// WideningShl returns x << n at width+n bits.
func (x XBits) WideningShl(n uint) XBits {
	fm := Format{Width: tier.Widen(x.value.width, n), Signed: x.value.signed}
	return x.convert("shl", fm, fm.Tier()).Shl(n)
}

// ShlBy returns x << amount, or ErrUndefined for an unknown amount.
func (x XBits) ShlBy(amount Vector) (r XBits, err error) {
	n, err := Index(amount)
	if err != nil {
		return
	}
	r = x.Shl(n)
	return
}

// ShrBy returns x >> amount (logical), or ErrUndefined for an unknown amount.
func (x XBits) ShrBy(amount Vector) (r XBits, err error) {
	n, err := Index(amount)
	if err != nil {
		return
	}
	r = x.Shr(n)
	return
}

// SraBy returns x >> amount (arithmetic), or ErrUndefined for an unknown
// amount.
func (x XBits) SraBy(amount Vector) (r XBits, err error) {
	n, err := Index(amount)
	if err != nil {
		return
	}
	r = x.Sra(n)
	return
}

// Extract returns bits [lsb, msb] as an unsigned value.
func (x XBits) Extract(msb, lsb uint) XBits {
	return NewXBits(x.value.Extract(msb, lsb), x.mask.Extract(msb, lsb))
}

// At returns bit pos as a one bit value.
func (x XBits) At(pos uint) XBits {
	return NewXBits(x.value.At(pos), x.mask.At(pos))
}

// Bit returns bit pos as 0 or 1, or ErrUndefined if it is unknown.
func (x XBits) Bit(pos uint) (v uint, err error) {
	if x.mask.Bit(pos) != 0 {
		err = undefined("bit")
		return
	}
	v = x.value.Bit(pos)
	return
}

// SetBit sets bit idx of x to a known value, in place.
func (x *XBits) SetBit(idx uint, value bool) {
	x.value.SetBit(idx, value)
	x.mask.SetBit(idx, false)
}

// SetUnknown marks bit idx of x unknown, in place.
func (x *XBits) SetUnknown(idx uint) {
	x.value.SetBit(idx, false)
	x.mask.SetBit(idx, true)
}

// Replicate returns k copies of x side by side, as an unsigned value.
func (x XBits) Replicate(k uint) XBits {
	return NewXBits(x.value.Replicate(k), x.mask.Replicate(k))
}

// ExtractBy returns bits [lsb, msb], for indices of any representation.
func (x XBits) ExtractBy(msb, lsb Vector) (r XBits, err error) {
	hi, err := Index(msb)
	if err != nil {
		return
	}
	lo, err := Index(lsb)
	if err != nil {
		return
	}
	r = x.Extract(hi, lo)
	return
}

// AtBy returns one bit, for a position of any representation.
func (x XBits) AtBy(pos Vector) (r XBits, err error) {
	n, err := Index(pos)
	if err != nil {
		return
	}
	r = x.At(n)
	return
}

// SetBitBy sets one bit in place, for a position of any representation.
func (x *XBits) SetBitBy(idx Vector, value bool) (err error) {
	n, err := Index(idx)
	if err != nil {
		return
	}
	x.SetBit(n, value)
	return
}

// Assign sets x to the value and unknown bits of v, converted to the width
// of x.
func (x *XBits) Assign(v Vector) {
	*x = toX(v).convert("assign", x.Format(), x.value.store)
}
