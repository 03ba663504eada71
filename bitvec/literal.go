package bitvec

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/ezrec/hwbits/tier"
)

// Form is the kind of value a literal produces.
type Form int

//go:generate go tool stringer -linecomment -type=Form
const (
	FORM_UNSIGNED   = Form(0) // _u
	FORM_SIGNED     = Form(1) // _s
	FORM_UNSIGNED_X = Form(2) // _ux
	FORM_SIGNED_X   = Form(3) // _sx
)

// Signed returns true for the signed forms.
func (form Form) Signed() bool {
	return form == FORM_SIGNED || form == FORM_SIGNED_X
}

// Unknown returns true for the forms that allow unknown digits.
func (form Form) Unknown() bool {
	return form == FORM_UNSIGNED_X || form == FORM_SIGNED_X
}

// literal suffixes, longest first.
var formSuffix = []Form{FORM_SIGNED_X, FORM_UNSIGNED_X, FORM_SIGNED, FORM_UNSIGNED}

// Literal is a parsed literal.
//
// Value is the logical value, negative only for signed forms. Mask has a
// bit set for each unknown digit bit.
type Literal struct {
	Form  Form
	Width uint
	Value *big.Int
	Mask  *big.Int
}

// Format returns the width and signedness of the literal.
func (lit Literal) Format() Format {
	return Format{Width: lit.Width, Signed: lit.Form.Signed()}
}

// Vector returns the literal as Bits for the known forms, or XBits for the
// unknown forms.
func (lit Literal) Vector() Vector {
	fm := lit.Format()
	value := fm.OfBig(lit.Value)
	if !lit.Form.Unknown() {
		return value
	}
	return NewXBits(value, maskFormat(fm.Width).OfBig(lit.Mask))
}

// ParseLiteral parses literal text.
//
// The grammar is `[-] body [suffix]`. The body is decimal, `0x` hex, `0b`
// binary, sized `<width|inf>'<h|b|d><digits>`, or a `$(expression)`.
// The suffix `_u` (the default), `_s`, `_ux` or `_sx` selects the form.
// Digits may be separated by `_`, and hex or binary digits of the unknown
// forms may be `x`.
func ParseLiteral(text string) (lit Literal, err error) {
	defer func() {
		if err != nil {
			err = &ErrLiteral{Text: text, Err: err}
		}
	}()

	body := strings.TrimSpace(text)
	for _, form := range formSuffix {
		if suffix := form.String(); strings.HasSuffix(body, suffix) {
			lit.Form = form
			body = strings.TrimSuffix(body, suffix)
			break
		}
	}

	negative := strings.HasPrefix(body, "-")
	body = strings.TrimPrefix(body, "-")
	if negative && !lit.Form.Signed() {
		err = ErrLiteralNegative
		return
	}

	expression := strings.HasPrefix(body, "$(") && strings.HasSuffix(body, ")")
	if !expression && strings.ContainsFunc(body, unicode.IsSpace) {
		err = ErrLiteralSyntax
		return
	}

	sized := false
	switch {
	case expression:
		var value Bits
		value, err = Eval(body[2:len(body)-1], nil)
		if err != nil {
			return
		}
		lit.Value = value.Big()
		lit.Mask = new(big.Int)
		if lit.Value.Sign() < 0 {
			if !lit.Form.Signed() {
				err = ErrLiteralNegative
				return
			}
			// The sign is already carried in the width.
			sized = true
			lit.Width = value.width
		} else {
			lit.Width = max(1, uint(lit.Value.BitLen()))
		}
	case strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X"):
		lit.Value, lit.Mask, lit.Width, err = parseDigits(body[2:], 16, lit.Form.Unknown())
	case strings.HasPrefix(body, "0b") || strings.HasPrefix(body, "0B"):
		lit.Value, lit.Mask, lit.Width, err = parseDigits(body[2:], 2, lit.Form.Unknown())
	case strings.Contains(body, "'"):
		sized = true
		err = lit.parseSized(body)
	default:
		lit.Value, lit.Mask, lit.Width, err = parseDigits(body, 10, false)
	}
	if err != nil {
		return
	}

	if !sized && lit.Form.Signed() {
		lit.Width = tier.Widen(lit.Width, 1)
	}

	if negative {
		if lit.Mask.Sign() != 0 {
			err = ErrLiteralUnknown
			return
		}
		lit.Value.Neg(lit.Value)
		if !tier.FitsBig(lit.Value, lit.Width) {
			err = ErrLiteralOverflow
			return
		}
	}

	lit.Value = tier.ApplyBig(lit.Value, lit.Width, lit.Form.Signed())
	return
}

// parseSized parses `<width|inf>'<h|b|d><digits>`.
func (lit *Literal) parseSized(body string) (err error) {
	size, digits, _ := strings.Cut(body, "'")
	if len(digits) < 1 {
		err = ErrLiteralSyntax
		return
	}

	if size == "inf" {
		lit.Width = tier.INFINITE
	} else {
		var width uint64
		width, err = strconv.ParseUint(size, 10, 0)
		if err != nil || width == 0 || width > uint64(tier.MAX_WIDTH) {
			err = ErrLiteralSyntax
			return
		}
		lit.Width = uint(width)
	}

	base := 0
	switch digits[0] {
	case 'h', 'H':
		base = 16
	case 'b', 'B':
		base = 2
	case 'd', 'D':
		base = 10
	default:
		err = ErrLiteralSyntax
		return
	}

	lit.Value, lit.Mask, _, err = parseDigits(digits[1:], base, lit.Form.Unknown() && base != 10)
	if err != nil {
		return
	}

	if lit.Width != tier.INFINITE && uint(max(lit.Value.BitLen(), lit.Mask.BitLen())) > lit.Width {
		err = ErrLiteralOverflow
		return
	}

	return
}

// parseDigits parses the digits of a base, returning the value, the mask of
// unknown bits, and the inferred width.
func parseDigits(digits string, base int, allowX bool) (value, mask *big.Int, width uint, err error) {
	digits = strings.ReplaceAll(digits, "_", "")
	if len(digits) == 0 {
		err = ErrLiteralSyntax
		return
	}

	value = new(big.Int)
	mask = new(big.Int)

	if base == 10 {
		if strings.ContainsAny(digits, "xX") {
			err = ErrLiteralUnknown
			return
		}
		if strings.ContainsFunc(digits, func(c rune) bool { return c < '0' || c > '9' }) {
			err = ErrLiteralDigit
			return
		}
		if _, ok := value.SetString(digits, 10); !ok {
			err = ErrLiteralDigit
			return
		}
		width = max(1, uint(value.BitLen()))
		return
	}

	bits := uint(4)
	if base == 2 {
		bits = 1
	}
	all := big.NewInt(int64(base - 1))

	for _, c := range digits {
		value.Lsh(value, bits)
		mask.Lsh(mask, bits)

		if c == 'x' || c == 'X' {
			if !allowX {
				err = ErrLiteralUnknown
				return
			}
			mask.Or(mask, all)
			if width == 0 {
				width = bits
			} else {
				width += bits
			}
			continue
		}

		var digit uint64
		digit, err = strconv.ParseUint(string(c), base, 8)
		if err != nil {
			err = ErrLiteralDigit
			return
		}
		value.Or(value, new(big.Int).SetUint64(digit))

		switch {
		case width != 0:
			width += bits
		case digit != 0:
			width = uint(big.NewInt(int64(digit)).BitLen())
		}
	}

	width = max(1, width)
	return
}

// Parse parses a literal of any form, returning Bits for the known forms
// and XBits for the unknown forms.
func Parse(text string) (v Vector, err error) {
	lit, err := ParseLiteral(text)
	if err != nil {
		return
	}
	v = lit.Vector()
	return
}

// ParseBits parses a literal without unknown bits.
func ParseBits(text string) (b Bits, err error) {
	lit, err := ParseLiteral(text)
	if err != nil {
		return
	}
	if lit.Mask.Sign() != 0 {
		err = &ErrLiteral{Text: text, Err: ErrLiteralUnknown}
		return
	}
	b = lit.Format().OfBig(lit.Value)
	return
}

// ParseXBits parses a literal of any form as a value with unknown bits.
func ParseXBits(text string) (x XBits, err error) {
	v, err := Parse(text)
	if err != nil {
		return
	}
	x = toX(v)
	return
}

// MustBits parses a literal without unknown bits, and panics on failure.
func MustBits(text string) Bits {
	b, err := ParseBits(text)
	if err != nil {
		panic(err)
	}
	return b
}

// MustXBits parses a literal of any form, and panics on failure.
func MustXBits(text string) XBits {
	x, err := ParseXBits(text)
	if err != nil {
		panic(err)
	}
	return x
}

// fits checks that a literal can be stored in the format.
func (fm Format) fits(text string, lit Literal) (err error) {
	if !tier.FitsBig(lit.Value, fm.Width) || !tier.FitsBig(lit.Mask, fm.Width) {
		err = &ErrLiteral{Text: text, Err: ErrLiteralOverflow}
		return
	}
	if !fm.Signed && fm.Infinite() && lit.Value.Sign() < 0 {
		err = &ErrLiteral{Text: text, Err: ErrLiteralNegative}
		return
	}
	return
}

// Parse parses a literal into the format. Any literal whose value fits the
// width is accepted, as a bit pattern or as a signed value.
func (fm Format) Parse(text string) (b Bits, err error) {
	lit, err := ParseLiteral(text)
	if err != nil {
		return
	}
	if lit.Mask.Sign() != 0 {
		err = &ErrLiteral{Text: text, Err: ErrLiteralUnknown}
		return
	}
	err = fm.fits(text, lit)
	if err != nil {
		return
	}
	b = fm.OfBig(lit.Value)
	return
}

// ParseX parses a literal, which may have unknown bits, into the format.
func (fm Format) ParseX(text string) (x XBits, err error) {
	lit, err := ParseLiteral(text)
	if err != nil {
		return
	}
	err = fm.fits(text, lit)
	if err != nil {
		return
	}
	x = NewXBits(fm.OfBig(lit.Value), maskFormat(fm.Width).OfBig(lit.Mask))
	return
}
