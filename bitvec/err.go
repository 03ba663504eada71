package bitvec

import (
	"github.com/ezrec/hwbits/tier"
	"github.com/ezrec/hwbits/translate"
)

var f = translate.From

var (
	// Value errors
	ErrUndefined    = translate.Error("undefined value")
	ErrDivideByZero = translate.Error("divide by zero")

	// Contract violations
	ErrWidthZero         = tier.ErrWidthZero
	ErrWidthTier         = tier.ErrWidthTier
	ErrNegativeUnsigned  = tier.ErrNegativeUnsigned
	ErrWidthBound        = translate.Error("width exceeds bound")
	ErrWidthMismatch     = translate.Error("width mismatch")
	ErrWidthNative       = translate.Error("width is not a native byte width")
	ErrExtractRange      = translate.Error("extraction out of range")
	ErrIndexRange        = translate.Error("index out of range")
	ErrReplicateZero     = translate.Error("replication by zero")
	ErrReplicateOverflow = translate.Error("replication overflow")

	// Literal errors
	ErrLiteralSyntax   = translate.Error("syntax")
	ErrLiteralDigit    = translate.Error("invalid digit")
	ErrLiteralUnknown  = translate.Error("unknown digit in known literal")
	ErrLiteralNegative = translate.Error("negative unsigned literal")
	ErrLiteralOverflow = translate.Error("literal does not fit")
	ErrExpression      = translate.Error("not an integer expression")
)

// ErrOperation is the context of a failed operation.
type ErrOperation struct {
	Op  string
	Err error
}

func (err *ErrOperation) Error() string {
	return f("%v: %v", err.Op, err.Err)
}

func (err *ErrOperation) Unwrap() error {
	return err.Err
}

// ErrLiteral is a literal parsing failure.
type ErrLiteral struct {
	Text string
	Err  error
}

func (err *ErrLiteral) Error() string {
	return f("literal '%v' %v", err.Text, err.Err)
}

func (err *ErrLiteral) Unwrap() error {
	return err.Err
}

// fatal panics with a contract violation.
func fatal(op string, err error) {
	panic(&ErrOperation{Op: op, Err: err})
}

// undefined returns the error for an operation on unknown bits.
func undefined(op string) error {
	return &ErrOperation{Op: op, Err: ErrUndefined}
}
