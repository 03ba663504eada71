package bitvec

import (
	"cmp"
)

// Cmp compares the logical values of b and o, returning -1, 0 or +1.
// Widths and signedness may differ.
func (b Bits) Cmp(o Bits) int {
	if !b.store.Word() || !o.store.Word() {
		return b.Big().Cmp(o.Big())
	}

	bv, ov := b.low64(), o.low64()
	bneg := b.signed && int64(bv) < 0
	oneg := o.signed && int64(ov) < 0

	switch {
	case bneg && !oneg:
		return -1
	case oneg && !bneg:
		return 1
	case bneg:
		return cmp.Compare(int64(bv), int64(ov))
	default:
		return cmp.Compare(bv, ov)
	}
}

// Eq returns b == o.
func (b Bits) Eq(o Bits) bool {
	return b.Cmp(o) == 0
}

// Ne returns b != o.
func (b Bits) Ne(o Bits) bool {
	return b.Cmp(o) != 0
}

// Lt returns b < o.
func (b Bits) Lt(o Bits) bool {
	return b.Cmp(o) < 0
}

// Le returns b <= o.
func (b Bits) Le(o Bits) bool {
	return b.Cmp(o) <= 0
}

// Gt returns b > o.
func (b Bits) Gt(o Bits) bool {
	return b.Cmp(o) > 0
}

// Ge returns b >= o.
func (b Bits) Ge(o Bits) bool {
	return b.Cmp(o) >= 0
}

// Same returns true if b and o have the same format and value.
func (b Bits) Same(o Bits) bool {
	return b.Format() == o.Format() && b.Eq(o)
}
