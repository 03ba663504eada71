package bitvec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hwbits/tier"
)

func TestBits_Extract(t *testing.T) {
	assert := assert.New(t)

	b := U(16).Of(0xeeff)
	assert.True(b.Extract(7, 0).Same(U(8).Of(0xff)))
	assert.True(b.Extract(15, 8).Same(U(8).Of(0xee)))
	assert.True(b.Extract(11, 4).Same(U(8).Of(0xef)))
	assert.True(b.At(15).Same(U(1).Of(1)))
	assert.True(b.At(8).Same(U(1).Of(0)))

	s := S(8).OfInt(-2)
	assert.True(s.Extract(7, 4).Same(U(4).Of(0xf)))
	assert.True(s.Extract(7, 0).Same(U(8).Of(0xfe)))

	w := U(128).OfInt(-1)
	assert.True(w.Extract(127, 64).Same(U(64).Ones()))
	assert.True(w.Extract(100, 0).Same(U(101).Ones()))

	h := S(300).OfInt(-1)
	assert.True(h.Extract(299, 250).Same(U(50).Ones()))

	inf := SINF.OfInt(-1)
	assert.True(inf.Extract(1000, 999).Same(U(2).Of(3)))

	assert.ErrorIs(fatalError(func() { b.Extract(7, 8) }), ErrExtractRange)
	assert.ErrorIs(fatalError(func() { b.Extract(16, 0) }), ErrExtractRange)
	assert.ErrorIs(fatalError(func() { b.At(16) }), ErrIndexRange)
}

func TestBits_Bit(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value Bits
		pos   uint
		bit   uint
	}){
		{U(8).Of(0x80), 7, 1},
		{U(8).Of(0x80), 6, 0},
		{S(8).OfInt(-1), 7, 1},
		{U(128).Of(1).Shl(100), 100, 1},
		{S(300).OfInt(-2), 299, 1},
		{S(300).OfInt(-2), 0, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.bit, entry.value.Bit(entry.pos), "%v[%v]", entry.value, entry.pos)
	}
}

func TestBits_SetBit(t *testing.T) {
	assert := assert.New(t)

	b := U(8).Zero()
	b.SetBit(3, true)
	assert.Equal(uint64(8), b.Uint64())
	b.SetBit(3, false)
	assert.True(b.IsZero())

	s := S(8).Zero()
	s.SetBit(7, true)
	assert.Equal(int64(-128), s.Int64())
	s.SetBit(7, false)
	assert.True(s.IsZero())

	w := S(128).Zero()
	w.SetBit(127, true)
	assert.Equal(new(big.Int).Neg(bigPow2(127)), w.Big())
	w.SetBit(127, false)
	assert.True(w.IsZero())

	h := S(200).OfInt(-1)
	h.SetBit(199, false)
	assert.Equal(bigOnes(199), h.Big())

	assert.ErrorIs(fatalError(func() { b.SetBit(8, true) }), ErrIndexRange)

	err := b.SetBitBy(U(3).Of(1), true)
	assert.NoError(err)
	assert.Equal(uint64(2), b.Uint64())

	err = b.SetBitBy(U(3).Unknown(), true)
	assert.ErrorIs(err, ErrUndefined)
}

func TestBits_Replicate(t *testing.T) {
	assert := assert.New(t)

	assert.True(U(4).Of(0xa).Replicate(3).Same(U(12).Of(0xaaa)))
	assert.True(S(2).OfInt(-2).Replicate(2).Same(U(4).Of(0xa)))
	assert.True(U(1).Of(1).Replicate(200).Same(U(200).Ones()))
	assert.True(U(64).Of(1).Replicate(2).Same(U(128).OfBig(new(big.Int).Add(bigPow2(64), bigPow2(0)))))

	assert.ErrorIs(fatalError(func() { U(4).Zero().Replicate(0) }), ErrReplicateZero)
	assert.ErrorIs(fatalError(func() { U(tier.MAX_WIDTH / 2).Zero().Replicate(3) }), ErrReplicateOverflow)
	assert.ErrorIs(fatalError(func() { UINF.Zero().Replicate(2) }), ErrReplicateOverflow)
}

func TestBits_IndexBy(t *testing.T) {
	assert := assert.New(t)

	b := U(16).Of(0xeeff)

	r, err := b.ExtractBy(U(4).Of(15), U(4).Of(8))
	assert.NoError(err)
	assert.True(r.Same(U(8).Of(0xee)))

	r, err = b.AtBy(U(4).Of(0).Dyn())
	assert.NoError(err)
	assert.True(r.Same(U(1).Of(1)))

	_, err = b.ExtractBy(U(4).Unknown(), U(4).Of(8))
	assert.ErrorIs(err, ErrUndefined)

	_, err = b.AtBy(MustXBits("4'b00x0_ux"))
	assert.ErrorIs(err, ErrUndefined)

	assert.ErrorIs(fatalError(func() { b.ExtractBy(U(8).Of(16), U(4).Of(8)) }), ErrExtractRange)
}

func TestCat(t *testing.T) {
	assert := assert.New(t)

	assert.True(Cat(U(4).Of(1), U(4).Of(2), U(4).Of(3)).Same(U(12).Of(0x123)))
	assert.True(Cat(S(4).OfInt(-1), U(4).Zero()).Same(U(8).Of(0xf0)))
	assert.True(Cat(U(1).Of(1), U(128).Zero()).Same(U(129).OfBig(bigPow2(128))))
	assert.True(Cat(U(8).Of(0xab)).Same(U(8).Of(0xab)))

	assert.ErrorIs(fatalError(func() { Cat() }), ErrWidthZero)
	assert.ErrorIs(fatalError(func() { Cat(UINF.Zero(), U(1).Zero()) }), ErrWidthBound)
}

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	b := Concat(U(4).Of(1), U(4).Of(2), U(4).Of(3))
	assert.IsType(Bits{}, b)
	assert.True(b.(Bits).Same(U(12).Of(0x123)))

	x := Concat(U(4).Of(1), MustXBits("4'hx_ux"))
	assert.IsType(XBits{}, x)
	assert.True(x.(XBits).Same(MustXBits("8'h1x_ux")))

	d := Concat(NewDynBits(8, U(4).Of(1)), U(4).Of(2))
	assert.IsType(DynBits{}, d)
	assert.Equal(uint(8), d.Width())
	assert.Equal(uint(12), d.Bound())
	assert.True(d.Value().Eq(U(8).Of(0x12)))

	dx := Concat(NewDynBits(8, U(4).Of(1)), MustXBits("4'hx_ux"))
	assert.IsType(DynXBits{}, dx)
	assert.Equal(uint(8), dx.Width())
	assert.Equal(uint(12), dx.Bound())
	assert.True(dx.Mask().Eq(U(8).Of(0x0f)))
	assert.True(dx.Value().Eq(U(8).Of(0x10)))
}
