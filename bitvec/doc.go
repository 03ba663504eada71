// Package bitvec implements bit-exact, arbitrary width integer values for
// generated hardware and instruction set simulator code.
//
// There are four representations, sharing one operator algebra:
//
//   - Bits: fully known value of a fixed width.
//   - XBits: Bits plus a mask of unknown (X) bits, as found in registers
//     after reset.
//   - DynBits: Bits whose width is a run-time value bounded by a maximum.
//   - DynXBits: XBits whose width is a run-time value bounded by a maximum.
//
// Conversions only go up the lattice implicitly: Bits.X() and Bits.Dyn()
// always succeed. XBits.Defined() and DynBits.Fixed() are the explicit,
// fallible ways back down.
//
// Malformed widths and indices are programming defects of the generator, and
// panic with an *ErrOperation. Operations that need a fully known operand
// return an error wrapping ErrUndefined instead, so the simulator can model
// the architecturally unpredictable result.
//
// Literals use a Verilog flavoured syntax:
//
//	0x123      12'h123    0b1010     -5_s     0b1x0_ux    8'hxx_sx    $(1 << 12)
package bitvec
