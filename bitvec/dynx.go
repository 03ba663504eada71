package bitvec

import (
	"github.com/ezrec/hwbits/tier"
)

// DynXBits is a value with unknown bits whose width is set at run time,
// up to a bound.
type DynXBits struct {
	max   uint
	value XBits
}

var _ Vector = DynXBits{}

// NewDynXBits returns value with a dynamic width bounded by max.
// A width beyond the bound panics.
func NewDynXBits(max uint, value XBits) (d DynXBits) {
	checkBound("dyn", max, value.Width())
	d = DynXBits{
		max:   max,
		value: value.convert("dyn", value.Format(), tier.Select(max)),
	}
	return
}

// Width is the current width in bits.
func (d DynXBits) Width() uint {
	return d.value.Width()
}

// Bound is the largest width the value can take.
func (d DynXBits) Bound() uint {
	return d.max
}

// Signed returns true for signed values.
func (d DynXBits) Signed() bool {
	return d.value.Signed()
}

// Format returns the current width and signedness.
func (d DynXBits) Format() Format {
	return d.value.Format()
}

// Tier returns the storage tier selected by the bound.
func (d DynXBits) Tier() tier.Tier {
	return d.value.Tier()
}

// Value returns the known bits. Unknown positions read as 0.
func (d DynXBits) Value() Bits {
	return d.value.Value()
}

// Mask returns the unknown bit mask.
func (d DynXBits) Mask() Bits {
	return d.value.Mask()
}

// IsDefined returns true if no bit is unknown.
func (d DynXBits) IsDefined() bool {
	return d.value.IsDefined()
}

// UnknownBits returns the number of unknown bits.
func (d DynXBits) UnknownBits() int {
	return d.value.UnknownBits()
}

// Defined returns the known value, or ErrUndefined if any bit is unknown.
func (d DynXBits) Defined() (r DynBits, err error) {
	b, err := d.value.Defined()
	if err != nil {
		return
	}
	r = NewDynBits(d.max, b)
	return
}

// Resize changes the width in place, extending or truncating the value and
// its unknown bits.
func (d *DynXBits) Resize(width uint) {
	checkBound("resize", d.max, width)
	fm := Format{Width: width, Signed: d.value.Signed()}
	d.value = d.value.convert("resize", fm, d.value.Tier())
}

// Fixed returns the value as a static width of the given format.
// The format must match the current width and signedness.
func (d DynXBits) Fixed(fm Format) (x XBits, err error) {
	if fm != d.Format() {
		err = &ErrOperation{Op: "fixed", Err: ErrWidthMismatch}
		return
	}
	x = d.value.convert("fixed", fm, fm.Tier())
	return
}

func (d DynXBits) joinBound(o Vector) uint {
	return tier.Max(d.max, o.Bound())
}

// wrap applies a fallible operation and bounds the result.
func (d DynXBits) wrap(max uint, x XBits, err error) (r DynXBits, _ error) {
	if err != nil {
		return r, err
	}
	return NewDynXBits(max, x), nil
}

// And returns d & o. A known 0 in either operand gives a known 0.
func (d DynXBits) And(o Vector) DynXBits {
	return NewDynXBits(d.joinBound(o), d.value.And(toX(o)))
}

// Or returns d | o. A known 1 in either operand gives a known 1.
func (d DynXBits) Or(o Vector) DynXBits {
	return NewDynXBits(d.joinBound(o), d.value.Or(toX(o)))
}

// Not returns ^d.
func (d DynXBits) Not() DynXBits {
	return NewDynXBits(d.max, d.value.Not())
}

// Xor returns d ^ o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Xor(o Vector) (DynXBits, error) {
	x, err := d.value.Xor(toX(o))
	return d.wrap(d.joinBound(o), x, err)
}

// Add returns d + o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Add(o Vector) (DynXBits, error) {
	x, err := d.value.Add(toX(o))
	return d.wrap(d.joinBound(o), x, err)
}

// Sub returns d - o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Sub(o Vector) (DynXBits, error) {
	x, err := d.value.Sub(toX(o))
	return d.wrap(d.joinBound(o), x, err)
}

// Mul returns d * o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Mul(o Vector) (DynXBits, error) {
	x, err := d.value.Mul(toX(o))
	return d.wrap(d.joinBound(o), x, err)
}

// Div returns d / o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Div(o Vector) (DynXBits, error) {
	x, err := d.value.Div(toX(o))
	return d.wrap(d.joinBound(o), x, err)
}

// Rem returns d % o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Rem(o Vector) (DynXBits, error) {
	x, err := d.value.Rem(toX(o))
	return d.wrap(d.joinBound(o), x, err)
}

// Neg returns -d, or ErrUndefined if any bit is unknown.
func (d DynXBits) Neg() (DynXBits, error) {
	x, err := d.value.Neg()
	return d.wrap(d.max, x, err)
}

// WideningAdd returns d + o one bit wider, or ErrUndefined.
func (d DynXBits) WideningAdd(o Vector) (DynXBits, error) {
	x, err := d.value.WideningAdd(toX(o))
	return d.wrap(tier.Widen(d.joinBound(o), 1), x, err)
}

// WideningSub returns d - o one bit wider, or ErrUndefined.
func (d DynXBits) WideningSub(o Vector) (DynXBits, error) {
	x, err := d.value.WideningSub(toX(o))
	return d.wrap(tier.Widen(d.joinBound(o), 1), x, err)
}

// WideningMul returns d * o at the sum of the widths, or ErrUndefined.
func (d DynXBits) WideningMul(o Vector) (DynXBits, error) {
	x, err := d.value.WideningMul(toX(o))
	return d.wrap(tier.Widen(d.max, o.Bound()), x, err)
}

// Cmp compares two fully known values.
func (d DynXBits) Cmp(o Vector) (int, error) {
	return d.value.Cmp(toX(o))
}

// Eq returns d == o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Eq(o Vector) (bool, error) {
	return d.value.Eq(toX(o))
}

// Ne returns d != o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Ne(o Vector) (bool, error) {
	return d.value.Ne(toX(o))
}

// Lt returns d < o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Lt(o Vector) (bool, error) {
	return d.value.Lt(toX(o))
}

// Le returns d <= o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Le(o Vector) (bool, error) {
	return d.value.Le(toX(o))
}

// Gt returns d > o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Gt(o Vector) (bool, error) {
	return d.value.Gt(toX(o))
}

// Ge returns d >= o, or ErrUndefined if any bit is unknown.
func (d DynXBits) Ge(o Vector) (bool, error) {
	return d.value.Ge(toX(o))
}

// Shl returns d << n at the current width.
func (d DynXBits) Shl(n uint) DynXBits {
	return NewDynXBits(d.max, d.value.Shl(n))
}

// Shr returns the logical shift d >> n.
func (d DynXBits) Shr(n uint) DynXBits {
	return NewDynXBits(d.max, d.value.Shr(n))
}

// Sra returns the arithmetic shift d >> n.
func (d DynXBits) Sra(n uint) DynXBits {
	return NewDynXBits(d.max, d.value.Sra(n))
}

// WideningShl returns d << n at width+n bits.
func (d DynXBits) WideningShl(n uint) DynXBits {
	return NewDynXBits(tier.Widen(d.max, n), d.value.WideningShl(n))
}

// ShlBy returns d << amount, or ErrUndefined for an unknown amount.
func (d DynXBits) ShlBy(amount Vector) (DynXBits, error) {
	x, err := d.value.ShlBy(amount)
	return d.wrap(d.max, x, err)
}

// ShrBy returns d >> amount (logical), or ErrUndefined for an unknown amount.
func (d DynXBits) ShrBy(amount Vector) (DynXBits, error) {
	x, err := d.value.ShrBy(amount)
	return d.wrap(d.max, x, err)
}

// SraBy returns d >> amount (arithmetic), or ErrUndefined for an unknown
// amount.
func (d DynXBits) SraBy(amount Vector) (DynXBits, error) {
	x, err := d.value.SraBy(amount)
	return d.wrap(d.max, x, err)
}

// Extract returns bits [lsb, msb] of the current width.
func (d DynXBits) Extract(msb, lsb uint) XBits {
	return d.value.Extract(msb, lsb)
}

// At returns bit pos of the current width.
func (d DynXBits) At(pos uint) XBits {
	return d.value.At(pos)
}

// Bit returns bit pos as 0 or 1, or ErrUndefined if it is unknown.
func (d DynXBits) Bit(pos uint) (uint, error) {
	return d.value.Bit(pos)
}

// SetBit sets bit idx to a known value, in place.
func (d *DynXBits) SetBit(idx uint, value bool) {
	d.value.SetBit(idx, value)
}

// SetUnknown marks bit idx unknown, in place.
func (d *DynXBits) SetUnknown(idx uint) {
	d.value.SetUnknown(idx)
}

// Replicate returns k copies of d side by side, bounded by k copies of the
// bound.
func (d DynXBits) Replicate(k uint) DynXBits {
	checkReplicate(d.max, k)
	return NewDynXBits(d.max*k, d.value.Replicate(k))
}

// ExtractBy returns bits [lsb, msb], for indices of any representation.
func (d DynXBits) ExtractBy(msb, lsb Vector) (XBits, error) {
	return d.value.ExtractBy(msb, lsb)
}

// AtBy returns one bit, for a position of any representation.
func (d DynXBits) AtBy(pos Vector) (XBits, error) {
	return d.value.AtBy(pos)
}

// SetBitBy sets one bit in place, for a position of any representation.
func (d *DynXBits) SetBitBy(idx Vector, value bool) error {
	return d.value.SetBitBy(idx, value)
}

// Assign sets d to the value and unknown bits of v, converted to the
// current width of d.
func (d *DynXBits) Assign(v Vector) {
	d.value.Assign(v)
}
