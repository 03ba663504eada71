// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package tier

import (
	"fmt"
	"iter"
	"maps"
)

// Tier is the storage category selected for a bit width.
type Tier int

//go:generate go tool stringer -linecomment -type=Tier
const (
	TIER_8   = Tier(0) // u8
	TIER_16  = Tier(1) // u16
	TIER_32  = Tier(2) // u32
	TIER_64  = Tier(3) // u64
	TIER_128 = Tier(4) // u128
	TIER_BIG = Tier(5) // big
)

const (
	NATIVE_LIMIT = 128            // Largest native register width.
	WORD_LIMIT   = 64             // Largest register held in a machine word.
	INFINITE     = ^uint(0)       // Unbounded width, never masked.
	MAX_WIDTH    = uint(1) << 20  // Ceiling for saturating width arithmetic.
)

var _tier_defines = map[string]string{
	"NATIVE_LIMIT": fmt.Sprintf("%v", NATIVE_LIMIT),
	"WORD_LIMIT":   fmt.Sprintf("%v", WORD_LIMIT),
	"MAX_WIDTH":    fmt.Sprintf("%v", MAX_WIDTH),
}

// Defines for the storage tiers.
func Defines() iter.Seq2[string, string] {
	return maps.All(_tier_defines)
}

// Select returns the smallest storage tier able to hold width bits.
// Widths beyond NATIVE_LIMIT, and INFINITE, select TIER_BIG.
func Select(width uint) (t Tier) {
	switch {
	case width == 0:
		panic(ErrWidthZero)
	case width <= 8:
		t = TIER_8
	case width <= 16:
		t = TIER_16
	case width <= 32:
		t = TIER_32
	case width <= 64:
		t = TIER_64
	case width <= NATIVE_LIMIT:
		t = TIER_128
	default:
		t = TIER_BIG
	}
	return
}

// Bits returns the register size of the tier, or 0 for TIER_BIG.
func (t Tier) Bits() uint {
	switch t {
	case TIER_8:
		return 8
	case TIER_16:
		return 16
	case TIER_32:
		return 32
	case TIER_64:
		return 64
	case TIER_128:
		return 128
	}
	return 0
}

// Word returns true if the tier register fits in a uint64.
func (t Tier) Word() bool {
	return t <= TIER_64
}

// Holds returns true if a register of this tier can carry width bits.
func (t Tier) Holds(width uint) bool {
	if t == TIER_BIG {
		return true
	}
	return width != 0 && width <= t.Bits()
}

// Widen returns the saturating sum of two widths.
func Widen(a, b uint) uint {
	if a == INFINITE || b == INFINITE {
		return INFINITE
	}
	if a >= MAX_WIDTH || b >= MAX_WIDTH || a+b > MAX_WIDTH {
		return MAX_WIDTH
	}
	return a + b
}

// Max returns the wider of two widths.
func Max(a, b uint) uint {
	return max(a, b)
}
