package bitvec

import (
	"github.com/ezrec/hwbits/tier"
)

// Vector is the capability shared by every bit vector representation.
type Vector interface {
	// Width is the current width in bits.
	Width() uint
	// Bound is the largest width the vector can take.
	Bound() uint
	// Signed is true for two's complement values.
	Signed() bool
	// Value returns the known bits, with unknown positions reading as 0.
	Value() Bits
	// Mask returns the unsigned mask of unknown bits.
	Mask() Bits
}

// Static is a vector whose width is fixed at construction.
type Static interface {
	Vector
	static()
}

// Known is a vector without unknown bits.
type Known interface {
	Vector
	known()
}

// Index converts an index or shift amount vector to a native value.
// Amounts too large for a uint saturate to tier.INFINITE; unknown bits are
// an undefined value error, and negative amounts panic.
func Index(v Vector) (n uint, err error) {
	if !v.Mask().IsZero() {
		err = undefined("index")
		return
	}

	value := v.Value()
	switch {
	case value.Sign() < 0:
		fatal("index", ErrIndexRange)
	case value.BitLen() >= 64:
		n = tier.INFINITE
	default:
		n = uint(value.Uint64())
	}

	return
}

// catWidth returns the total width of a concatenation.
func catWidth(op string, widths ...uint) (width uint) {
	if len(widths) == 0 {
		fatal(op, ErrWidthZero)
	}
	for _, w := range widths {
		if w == tier.INFINITE || w > tier.MAX_WIDTH-width {
			fatal(op, ErrWidthBound)
		}
		width += w
	}
	return
}

// Cat concatenates known static values, first argument most significant.
// The result is unsigned.
func Cat(parts ...Bits) (r Bits) {
	widths := make([]uint, len(parts))
	for n, p := range parts {
		widths[n] = p.width
	}

	fm := U(catWidth("cat", widths...))
	r = fm.Zero()
	for _, p := range parts {
		r = r.Shl(p.width).Or(U(p.width).From(p))
	}

	return
}

// Concat concatenates vectors of any representation, first argument most
// significant. The result is a DynBits or DynXBits if any part has a
// dynamic width, and an XBits or DynXBits if any part may carry unknown
// bits.
func Concat(parts ...Vector) Vector {
	var dynamic, unknown bool

	values := make([]Bits, len(parts))
	masks := make([]Bits, len(parts))
	bounds := make([]uint, len(parts))
	for n, p := range parts {
		switch p.(type) {
		case Bits:
		case XBits:
			unknown = true
		case DynBits:
			dynamic = true
		default:
			dynamic, unknown = true, true
		}
		values[n] = p.Value()
		masks[n] = p.Mask()
		bounds[n] = p.Bound()
	}

	value := Cat(values...)
	if !unknown && !dynamic {
		return value
	}

	xvalue := NewXBits(value, Cat(masks...))
	switch {
	case !dynamic:
		return xvalue
	case !unknown:
		return NewDynBits(catWidth("concat", bounds...), value)
	default:
		return NewDynXBits(catWidth("concat", bounds...), xvalue)
	}
}
