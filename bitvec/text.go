package bitvec

import (
	"fmt"
	"math/big"
	"strings"
)

// pattern returns the unsigned bit pattern of a bounded value.
func (b Bits) pattern() *big.Int {
	return U(b.width).From(b).Big()
}

// String returns the shortest literal of the value; "0x123" for U(12) 0x123,
// and "-0x5_s" for S(8) -5. Format.Parse reads it back at the same format.
func (b Bits) String() string {
	v := b.Big()
	sign := ""
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	suffix := ""
	if b.signed {
		suffix = FORM_SIGNED.String()
	}
	return fmt.Sprintf("%v0x%v%v", sign, v.Text(16), suffix)
}

// Literal returns the exact sized literal of the value; "12'h123" for U(12)
// 0x123, and "12'hfff_s" for S(12) -1. ParseBits reads it back at the same
// format.
func (b Bits) Literal() string {
	suffix := ""
	if b.signed {
		suffix = FORM_SIGNED.String()
	}

	if b.Format().Infinite() {
		v := b.Big()
		sign := ""
		if v.Sign() < 0 {
			sign = "-"
			v.Neg(v)
		}
		return fmt.Sprintf("%vinf'd%v%v", sign, v.Text(10), suffix)
	}

	return fmt.Sprintf("%d'h%v%v", b.width, b.pattern().Text(16), suffix)
}

// MarshalText encodes the exact sized literal of the value.
func (b Bits) MarshalText() (text []byte, err error) {
	text = []byte(b.Literal())
	return
}

// UnmarshalText decodes a literal. When b already has a width, the literal
// is parsed into its format, otherwise the literal sets the format.
func (b *Bits) UnmarshalText(text []byte) (err error) {
	var v Bits
	if b.width == 0 {
		v, err = ParseBits(string(text))
	} else {
		v, err = b.Format().Parse(string(text))
		if err == nil {
			v = v.retier(b.store)
		}
	}
	if err != nil {
		return
	}

	*b = v
	return
}

// xDigits writes the digits of a value and unknown mask, as hex when every
// nibble is entirely known or entirely unknown, otherwise as binary.
func xDigits(width uint, value, mask *big.Int) (radix string, digits string) {
	nibbles := (width + 3) / 4
	hex := true
	for n := range nibbles {
		m := new(big.Int).Rsh(mask, n*4).Uint64() & 0xf
		if m != 0 && m != 0xf {
			hex = false
			break
		}
	}

	var sb strings.Builder
	if hex {
		radix = "h"
		for n := int(nibbles) - 1; n >= 0; n-- {
			if mask.Bit(n*4) != 0 {
				sb.WriteByte('x')
				continue
			}
			d := new(big.Int).Rsh(value, uint(n)*4).Uint64() & 0xf
			sb.WriteByte("0123456789abcdef"[d])
		}
	} else {
		radix = "b"
		for n := int(width) - 1; n >= 0; n-- {
			switch {
			case mask.Bit(n) != 0:
				sb.WriteByte('x')
			case value.Bit(n) != 0:
				sb.WriteByte('1')
			default:
				sb.WriteByte('0')
			}
		}
	}

	digits = strings.TrimLeft(sb.String(), "0")
	if digits == "" {
		digits = "0"
	}
	return
}

// String returns the exact sized literal of the value with unknown digits.
func (x XBits) String() string {
	text, err := x.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(text)
}

// Literal returns the exact sized literal of the value with unknown digits;
// "8'h1x_ux" for U(8) with the low nibble unknown.
func (x XBits) Literal() (text string, err error) {
	suffix := FORM_UNSIGNED_X.String()
	if x.value.signed {
		suffix = FORM_SIGNED_X.String()
	}

	if x.Format().Infinite() {
		if !x.IsDefined() {
			err = &ErrOperation{Op: "literal", Err: ErrWidthBound}
			return
		}
		text = strings.TrimSuffix(x.value.Literal(), FORM_SIGNED.String()) + suffix
		return
	}

	radix, digits := xDigits(x.value.width, x.value.pattern(), x.mask.Big())
	text = fmt.Sprintf("%d'%v%v%v", x.value.width, radix, digits, suffix)
	return
}

// MarshalText encodes the exact sized literal of the value.
func (x XBits) MarshalText() (text []byte, err error) {
	lit, err := x.Literal()
	if err != nil {
		return
	}
	text = []byte(lit)
	return
}

// UnmarshalText decodes a literal. When x already has a width, the literal
// is parsed into its format, otherwise the literal sets the format.
func (x *XBits) UnmarshalText(text []byte) (err error) {
	var v XBits
	if x.value.width == 0 {
		v, err = ParseXBits(string(text))
	} else {
		v, err = x.Format().ParseX(string(text))
		if err == nil {
			v = v.convert("unmarshal", v.Format(), x.value.store)
		}
	}
	if err != nil {
		return
	}

	*x = v
	return
}
