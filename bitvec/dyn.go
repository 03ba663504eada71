package bitvec

import (
	"github.com/ezrec/hwbits/tier"
)

// DynBits is a known value whose width is set at run time, up to a bound.
//
// The storage tier is selected by the bound, so resizing never changes it.
type DynBits struct {
	max   uint
	value Bits
}

var _ Known = DynBits{}

func (d DynBits) known() {}

// NewDynBits returns value with a dynamic width bounded by max.
// A width beyond the bound panics.
func NewDynBits(max uint, value Bits) (d DynBits) {
	checkBound("dyn", max, value.width)
	d = DynBits{
		max:   max,
		value: value.retier(tier.Select(max)),
	}
	return
}

func checkBound(op string, max, width uint) {
	if max == 0 || width == 0 {
		fatal(op, ErrWidthZero)
	}
	if width > max {
		fatal(op, ErrWidthBound)
	}
}

// Width is the current width in bits.
func (d DynBits) Width() uint {
	return d.value.width
}

// Bound is the largest width the value can take.
func (d DynBits) Bound() uint {
	return d.max
}

// Signed returns true for signed values.
func (d DynBits) Signed() bool {
	return d.value.signed
}

// Format returns the current width and signedness.
func (d DynBits) Format() Format {
	return d.value.Format()
}

// Tier returns the storage tier selected by the bound.
func (d DynBits) Tier() tier.Tier {
	return d.value.store
}

// Value returns the value at its current width.
func (d DynBits) Value() Bits {
	return d.value
}

// Mask returns the (empty) unknown mask.
func (d DynBits) Mask() Bits {
	return d.value.Mask()
}

// X returns d as a dynamic width value with an empty unknown mask.
func (d DynBits) X() DynXBits {
	return NewDynXBits(d.max, d.value.X())
}

// Resize changes the width in place, extending or truncating the value.
func (d *DynBits) Resize(width uint) {
	checkBound("resize", d.max, width)
	fm := Format{Width: width, Signed: d.value.signed}
	d.value = fm.convert("resize", d.value, d.value.store)
}

// Fixed returns the value as a static width of the given format.
// The format must match the current width and signedness.
func (d DynBits) Fixed(fm Format) (b Bits, err error) {
	if fm != d.Format() {
		err = &ErrOperation{Op: "fixed", Err: ErrWidthMismatch}
		return
	}
	b = d.value.retier(fm.Tier())
	return
}

// joinBound is the result bound of a non-widening operation.
func (d DynBits) joinBound(o Vector) uint {
	return tier.Max(d.max, o.Bound())
}

// And returns d & o.
func (d DynBits) And(o Known) DynBits {
	return NewDynBits(d.joinBound(o), d.value.And(o.Value()))
}

// Or returns d | o.
func (d DynBits) Or(o Known) DynBits {
	return NewDynBits(d.joinBound(o), d.value.Or(o.Value()))
}

// Xor returns d ^ o.
func (d DynBits) Xor(o Known) DynBits {
	return NewDynBits(d.joinBound(o), d.value.Xor(o.Value()))
}

// Not returns ^d.
func (d DynBits) Not() DynBits {
	return NewDynBits(d.max, d.value.Not())
}

// Add returns d + o, wrapping at the wider width.
func (d DynBits) Add(o Known) DynBits {
	return NewDynBits(d.joinBound(o), d.value.Add(o.Value()))
}

// Sub returns d - o, wrapping at the wider width.
func (d DynBits) Sub(o Known) DynBits {
	return NewDynBits(d.joinBound(o), d.value.Sub(o.Value()))
}

// Mul returns d * o, wrapping at the wider width.
func (d DynBits) Mul(o Known) DynBits {
	return NewDynBits(d.joinBound(o), d.value.Mul(o.Value()))
}

// Div returns d / o. Division by zero panics.
func (d DynBits) Div(o Known) DynBits {
	return NewDynBits(d.joinBound(o), d.value.Div(o.Value()))
}

// Rem returns d % o. Division by zero panics.
func (d DynBits) Rem(o Known) DynBits {
	return NewDynBits(d.joinBound(o), d.value.Rem(o.Value()))
}

// Neg returns -d.
func (d DynBits) Neg() DynBits {
	return NewDynBits(d.max, d.value.Neg())
}

// WideningAdd returns d + o, one bit wider than the wider operand.
func (d DynBits) WideningAdd(o Known) DynBits {
	return NewDynBits(tier.Widen(d.joinBound(o), 1), d.value.WideningAdd(o.Value()))
}

// WideningSub returns d - o, one bit wider than the wider operand.
func (d DynBits) WideningSub(o Known) DynBits {
	return NewDynBits(tier.Widen(d.joinBound(o), 1), d.value.WideningSub(o.Value()))
}

// WideningMul returns d * o, as wide as both operands together.
func (d DynBits) WideningMul(o Known) DynBits {
	return NewDynBits(tier.Widen(d.max, o.Bound()), d.value.WideningMul(o.Value()))
}

// Cmp compares the logical values of d and o.
func (d DynBits) Cmp(o Known) int {
	return d.value.Cmp(o.Value())
}

// Eq returns d == o.
func (d DynBits) Eq(o Known) bool {
	return d.Cmp(o) == 0
}

// Ne returns d != o.
func (d DynBits) Ne(o Known) bool {
	return d.Cmp(o) != 0
}

// Lt returns d < o.
func (d DynBits) Lt(o Known) bool {
	return d.Cmp(o) < 0
}

// Le returns d <= o.
func (d DynBits) Le(o Known) bool {
	return d.Cmp(o) <= 0
}

// Gt returns d > o.
func (d DynBits) Gt(o Known) bool {
	return d.Cmp(o) > 0
}

// Ge returns d >= o.
func (d DynBits) Ge(o Known) bool {
	return d.Cmp(o) >= 0
}

// Shl returns d << n at the current width.
func (d DynBits) Shl(n uint) DynBits {
	return NewDynBits(d.max, d.value.Shl(n))
}

// Shr returns the logical shift d >> n.
func (d DynBits) Shr(n uint) DynBits {
	return NewDynBits(d.max, d.value.Shr(n))
}

// Sra returns the arithmetic shift d >> n.
func (d DynBits) Sra(n uint) DynBits {
	return NewDynBits(d.max, d.value.Sra(n))
}

// WideningShl returns d << n at width+n bits.
func (d DynBits) WideningShl(n uint) DynBits {
	return NewDynBits(tier.Widen(d.max, n), d.value.WideningShl(n))
}

// ShlBy returns d << amount, or ErrUndefined for an unknown amount.
func (d DynBits) ShlBy(amount Vector) (r DynBits, err error) {
	n, err := Index(amount)
	if err != nil {
		return
	}
	r = d.Shl(n)
	return
}

// ShrBy returns d >> amount (logical), or ErrUndefined for an unknown amount.
func (d DynBits) ShrBy(amount Vector) (r DynBits, err error) {
	n, err := Index(amount)
	if err != nil {
		return
	}
	r = d.Shr(n)
	return
}

// SraBy returns d >> amount (arithmetic), or ErrUndefined for an unknown
// amount.
func (d DynBits) SraBy(amount Vector) (r DynBits, err error) {
	n, err := Index(amount)
	if err != nil {
		return
	}
	r = d.Sra(n)
	return
}

// Extract returns bits [lsb, msb] of the current width.
func (d DynBits) Extract(msb, lsb uint) Bits {
	return d.value.Extract(msb, lsb)
}

// At returns bit pos of the current width.
func (d DynBits) At(pos uint) Bits {
	return d.value.At(pos)
}

// Bit returns bit pos as 0 or 1.
func (d DynBits) Bit(pos uint) uint {
	return d.value.Bit(pos)
}

// SetBit sets bit idx in place.
func (d *DynBits) SetBit(idx uint, value bool) {
	d.value.SetBit(idx, value)
}

// Replicate returns k copies of d side by side, bounded by k copies of the
// bound.
func (d DynBits) Replicate(k uint) DynBits {
	checkReplicate(d.max, k)
	return NewDynBits(d.max*k, d.value.Replicate(k))
}

// ExtractBy returns bits [lsb, msb], for indices of any representation.
func (d DynBits) ExtractBy(msb, lsb Vector) (Bits, error) {
	return d.value.ExtractBy(msb, lsb)
}

// AtBy returns one bit, for a position of any representation.
func (d DynBits) AtBy(pos Vector) (Bits, error) {
	return d.value.AtBy(pos)
}

// SetBitBy sets one bit in place, for a position of any representation.
func (d *DynBits) SetBitBy(idx Vector, value bool) error {
	return d.value.SetBitBy(idx, value)
}

// Inc increments d in place.
func (d *DynBits) Inc() {
	d.value.Inc()
}

// Dec decrements d in place.
func (d *DynBits) Dec() {
	d.value.Dec()
}

// AddAssign adds o to d in place, keeping the width of d.
func (d *DynBits) AddAssign(o Known) {
	d.value.AddAssign(o.Value())
}

// SubAssign subtracts o from d in place, keeping the width of d.
func (d *DynBits) SubAssign(o Known) {
	d.value.SubAssign(o.Value())
}

// Assign sets d to the value of v, converted to the current width of d.
func (d *DynBits) Assign(v Vector) error {
	return d.value.Assign(v)
}
