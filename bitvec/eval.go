package bitvec

import (
	"iter"
	"math/big"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval evaluates an integer expression.
//
// Each define whose text parses as a known literal is visible to the
// expression by name; other defines are ignored. A non-negative result is
// returned unsigned at its minimum width, and a negative result is returned
// signed at its minimum two's complement width.
func Eval(expr string, defines iter.Seq2[string, string]) (value Bits, err error) {
	thread := starlark.Thread{Name: "eval"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	if defines != nil {
		for key, text := range defines {
			b, perr := ParseBits(text)
			if perr != nil {
				// Not every define is an integer.
				continue
			}
			pred[key] = starlark.MakeBigInt(b.Big())
		}
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrOperation{Op: "eval", Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrOperation{Op: "eval", Err: ErrExpression}
		return
	}

	v := st_int.BigInt()
	value = minimal(v)
	return
}

// minimal returns a big integer at its minimum width.
func minimal(v *big.Int) Bits {
	if v.Sign() >= 0 {
		return U(max(1, uint(v.BitLen()))).OfBig(v)
	}

	// The most negative value of n bits is -2^(n-1).
	mag := new(big.Int).Neg(v)
	mag.Sub(mag, big.NewInt(1))
	return S(uint(mag.BitLen()) + 1).OfBig(v)
}
