package bitvec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hwbits/tier"
)

// fatalError returns the error a function panics with, or nil.
func fatalError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return
}

func bigPow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

func bigOnes(n uint) *big.Int {
	v := bigPow2(n)
	return v.Sub(v, big.NewInt(1))
}

func TestBits_Construct(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value  Bits
		tier   tier.Tier
		uint64 uint64
		int64  int64
	}){
		{U(8).Of(0x1ff), tier.TIER_8, 0xff, 0xff},
		{S(8).Of(0xff), tier.TIER_8, ^uint64(0), -1},
		{S(4).OfInt(-8), tier.TIER_8, ^uint64(7), -8},
		{S(4).OfInt(8), tier.TIER_8, ^uint64(7), -8},
		{U(12).OfInt(-1), tier.TIER_16, 0xfff, 0xfff},
		{S(33).OfInt(-2), tier.TIER_64, ^uint64(1), -2},
		{U(64).OfInt(-1), tier.TIER_64, ^uint64(0), -1},
		{U(65).Of(5), tier.TIER_128, 5, 5},
		{S(128).OfInt(-1), tier.TIER_128, ^uint64(0), -1},
		{U(200).Of(7), tier.TIER_BIG, 7, 7},
		{S(200).OfInt(-3), tier.TIER_BIG, ^uint64(2), -3},
		{UINF.Of(9), tier.TIER_BIG, 9, 9},
	}

	for _, entry := range table {
		assert.Equal(entry.tier, entry.value.Tier(), entry.value.Format())
		assert.Equal(entry.uint64, entry.value.Uint64(), entry.value.Format())
		assert.Equal(entry.int64, entry.value.Int64(), entry.value.Format())
	}
}

func TestBits_Big(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(bigOnes(100), U(100).OfInt(-1).Big())
	assert.Equal(bigOnes(128), U(128).OfInt(-1).Big())
	assert.Equal(big.NewInt(-1), S(128).OfInt(-1).Big())
	assert.Equal(big.NewInt(-3), S(200).OfInt(-3).Big())
	assert.Equal(bigOnes(300), U(300).Ones().Big())

	v := new(big.Int).Add(bigPow2(130), big.NewInt(5))
	assert.Equal(big.NewInt(5), U(128).OfBig(v).Big())
	assert.Equal(big.NewInt(5), U(8).OfBig(v).Big())
	assert.Equal(v, UINF.OfBig(v).Big())
}

func TestBits_Fatal(t *testing.T) {
	assert := assert.New(t)

	assert.ErrorIs(fatalError(func() { U(0).Zero() }), ErrWidthZero)
	assert.ErrorIs(fatalError(func() { UINF.OfInt(-1) }), ErrNegativeUnsigned)
	assert.ErrorIs(fatalError(func() { UINF.Of(1).Neg() }), ErrNegativeUnsigned)
	assert.NoError(fatalError(func() { SINF.OfInt(-1) }))
}

func TestBits_Convert(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		fm     Format
		from   Bits
		expect int64
	}){
		{U(16), S(8).OfInt(-1), 0xffff},
		{U(16), U(8).Of(0xff), 0xff},
		{S(16), U(8).Of(0xff), 0xff},
		{S(16), S(8).OfInt(-1), -1},
		{U(4), U(8).Of(0xab), 0xb},
		{S(4), U(8).Of(0xab), -5},
		{S(100), S(8).OfInt(-2), -2},
		{S(8), S(100).OfInt(-2), -2},
		{U(8), S(300).OfInt(-2), 0xfe},
	}

	for _, entry := range table {
		b := entry.fm.From(entry.from)
		assert.Equal(entry.fm, b.Format())
		assert.Equal(big.NewInt(entry.expect), b.Big(), entry)
	}

	b, err := U(8).Convert(S(4).OfInt(-1).X())
	assert.NoError(err)
	assert.Equal(uint64(0xff), b.Uint64())

	_, err = U(8).Convert(U(4).Unknown())
	assert.ErrorIs(err, ErrUndefined)
}

func TestBits_Get(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int8(-2), Get[int8](S(8).OfInt(-2)))
	assert.Equal(uint16(0x2345), Get[uint16](U(32).Of(0x12345)))
	assert.Equal(-1, Get[int](S(128).OfInt(-1)))
	assert.Equal(uint32(0xffffffff), Get[uint32](S(4).OfInt(-1)))
}

func TestBits_Query(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value     Bits
		zero      bool
		sign      int
		bitLen    int
		onesCount int
	}){
		{U(8).Zero(), true, 0, 0, 0},
		{S(8).OfInt(-5), false, -1, 3, 7},
		{S(8).OfInt(-1), false, -1, 1, 8},
		{U(8).Of(0x80), false, 1, 8, 1},
		{U(100).OfInt(-1), false, 1, 100, 100},
		{U(128).Ones(), false, 1, 128, 128},
		{S(128).OfInt(-1), false, -1, 1, 128},
		{S(200).OfInt(-1), false, -1, 1, 200},
		{S(200).Zero(), true, 0, 0, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.zero, entry.value.IsZero(), entry.value.Format())
		assert.Equal(entry.sign, entry.value.Sign(), entry.value.Format())
		assert.Equal(entry.bitLen, entry.value.BitLen(), entry.value.Format())
		assert.Equal(entry.onesCount, entry.value.OnesCount(), entry.value.Format())
	}
}

func TestBits_Mutate(t *testing.T) {
	assert := assert.New(t)

	b := U(8).Of(0xff)
	b.Inc()
	assert.True(b.IsZero())
	b.Dec()
	assert.Equal(uint64(0xff), b.Uint64())

	s := S(8).OfInt(127)
	s.Inc()
	assert.Equal(int64(-128), s.Int64())

	w := U(128).Ones()
	w.Inc()
	assert.True(w.IsZero())
	assert.Equal(tier.TIER_128, w.Tier())

	h := U(200).Zero()
	h.Dec()
	assert.Equal(bigOnes(200), h.Big())

	a := U(8).Of(250)
	a.AddAssign(U(16).Of(0x106))
	assert.Equal(uint64(0), a.Uint64())
	a.SubAssign(U(8).Of(1))
	assert.Equal(uint64(0xff), a.Uint64())

	err := a.Assign(S(4).OfInt(-2))
	assert.NoError(err)
	assert.Equal(U(8), a.Format())
	assert.Equal(uint64(0xfe), a.Uint64())

	err = a.Assign(U(8).Unknown())
	assert.ErrorIs(err, ErrUndefined)
	assert.Equal(uint64(0xfe), a.Uint64())
}

func TestBits_Lattice(t *testing.T) {
	assert := assert.New(t)

	b := U(12).Of(0x123)

	x := b.X()
	assert.True(x.IsDefined())
	assert.Equal(uint(12), x.Width())

	d := b.Dyn()
	assert.Equal(uint(12), d.Bound())
	assert.Equal(uint(12), d.Width())

	back, err := x.Defined()
	assert.NoError(err)
	assert.True(back.Same(b))

	fixed, err := d.Fixed(U(12))
	assert.NoError(err)
	assert.True(fixed.Same(b))
}
