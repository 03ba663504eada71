// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bitvec

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/ezrec/hwbits/tier"
)

// binop is a binary operator of the value algebra.
type binop int

const (
	opAnd = binop(0)
	opOr  = binop(1)
	opXor = binop(2)
	opAdd = binop(3)
	opSub = binop(4)
	opMul = binop(5)
	opDiv = binop(6)
	opRem = binop(7)
)

var binopName = [...]string{"and", "or", "xor", "add", "sub", "mul", "div", "rem"}

func (op binop) String() string {
	return binopName[op]
}

// binary applies op to a and b after converting both to the format, and
// masks the result to the format. The result is held in the given tier.
func (fm Format) binary(op binop, a, b Bits, store tier.Tier) Bits {
	x := fm.convert(op.String(), a, store)
	y := fm.convert(op.String(), b, store)

	if (op == opDiv || op == opRem) && y.IsZero() {
		fatal(op.String(), ErrDivideByZero)
	}

	switch {
	case store.Word():
		return fm.fromWord(fm.binaryWord(op, x.word, y.word), store)
	case store == tier.TIER_128:
		return fm.fromWide(fm.binaryWide(op, x.wide, y.wide))
	default:
		return fm.fromBig(op.String(), binaryBig(op, x.huge, y.huge))
	}
}

func (fm Format) binaryWord(op binop, x, y uint64) uint64 {
	switch op {
	case opAnd:
		return x & y
	case opOr:
		return x | y
	case opXor:
		return x ^ y
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	}

	if fm.Signed {
		sx := tier.SignExtend(x, fm.Width)
		sy := tier.SignExtend(y, fm.Width)
		// The most negative value divided by -1 wraps back to itself.
		if op == opDiv {
			return uint64(sx / sy)
		}
		return uint64(sx % sy)
	}

	if op == opDiv {
		return x / y
	}
	return x % y
}

func (fm Format) binaryWide(op binop, x, y uint256.Int) (z uint256.Int) {
	switch op {
	case opAnd:
		z.And(&x, &y)
	case opOr:
		z.Or(&x, &y)
	case opXor:
		z.Xor(&x, &y)
	case opAdd:
		z.Add(&x, &y)
	case opSub:
		z.Sub(&x, &y)
	case opMul:
		z.Mul(&x, &y)
	case opDiv, opRem:
		if fm.Signed {
			sx := tier.Extend256(x, true)
			sy := tier.Extend256(y, true)
			if op == opDiv {
				z.SDiv(&sx, &sy)
			} else {
				z.SMod(&sx, &sy)
			}
		} else if op == opDiv {
			z.Div(&x, &y)
		} else {
			z.Mod(&x, &y)
		}
	}
	return
}

func binaryBig(op binop, x, y *big.Int) *big.Int {
	z := new(big.Int)
	switch op {
	case opAnd:
		z.And(x, y)
	case opOr:
		z.Or(x, y)
	case opXor:
		z.Xor(x, y)
	case opAdd:
		z.Add(x, y)
	case opSub:
		z.Sub(x, y)
	case opMul:
		z.Mul(x, y)
	case opDiv:
		z.Quo(x, y)
	case opRem:
		z.Rem(x, y)
	}
	return z
}

// binop applies a non-widening operator.
func (b Bits) binop(op binop, o Bits) Bits {
	fm := Join(b.Format(), o.Format())
	return fm.binary(op, b, o, fm.Tier())
}

// widening applies an operator at a wider result width.
func (b Bits) widening(op binop, o Bits, width uint) Bits {
	fm := Format{Width: width, Signed: b.signed && o.signed}
	return fm.binary(op, b, o, fm.Tier())
}

// And returns b & o at the wider of the two widths.
func (b Bits) And(o Bits) Bits {
	return b.binop(opAnd, o)
}

// Or returns b | o at the wider of the two widths.
func (b Bits) Or(o Bits) Bits {
	return b.binop(opOr, o)
}

// Xor returns b ^ o at the wider of the two widths.
func (b Bits) Xor(o Bits) Bits {
	return b.binop(opXor, o)
}

// Not returns ^b.
func (b Bits) Not() Bits {
	fm := b.Format()
	switch {
	case b.store.Word():
		return fm.fromWord(^b.word, b.store)
	case b.store == tier.TIER_128:
		var z uint256.Int
		z.Not(&b.wide)
		return fm.fromWide(z)
	default:
		return fm.fromBig("not", new(big.Int).Not(b.huge))
	}
}

// Add returns b + o, wrapping at the wider of the two widths.
func (b Bits) Add(o Bits) Bits {
	return b.binop(opAdd, o)
}

// Sub returns b - o, wrapping at the wider of the two widths.
func (b Bits) Sub(o Bits) Bits {
	return b.binop(opSub, o)
}

// Mul returns b * o, wrapping at the wider of the two widths.
func (b Bits) Mul(o Bits) Bits {
	return b.binop(opMul, o)
}

// Div returns b / o, truncated toward zero. Division by zero panics.
func (b Bits) Div(o Bits) Bits {
	return b.binop(opDiv, o)
}

// Rem returns b % o, with the sign of b. Division by zero panics.
func (b Bits) Rem(o Bits) Bits {
	return b.binop(opRem, o)
}

// Neg returns -b, wrapping within the width.
func (b Bits) Neg() Bits {
	fm := b.Format()
	return fm.binary(opSub, fm.build("neg", b.store), b, b.store)
}

// WideningAdd returns b + o, one bit wider than the wider operand.
func (b Bits) WideningAdd(o Bits) Bits {
	return b.widening(opAdd, o, tier.Widen(tier.Max(b.width, o.width), 1))
}

// WideningSub returns b - o, one bit wider than the wider operand.
func (b Bits) WideningSub(o Bits) Bits {
	return b.widening(opSub, o, tier.Widen(tier.Max(b.width, o.width), 1))
}

// WideningMul returns b * o, as wide as both operands together.
func (b Bits) WideningMul(o Bits) Bits {
	return b.widening(opMul, o, tier.Widen(b.width, o.width))
}
