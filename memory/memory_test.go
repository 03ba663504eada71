package memory

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hwbits/bitvec"
)

func TestMemoryUndefined(t *testing.T) {
	assert := assert.New(t)

	mem := New(0x1000, 16)

	x, err := mem.Read(0x1000, bitvec.U(32))
	assert.NoError(err)
	assert.False(x.IsDefined())
	assert.Equal(32, x.UnknownBits())

	_, err = mem.ReadBits(0x1000, bitvec.U(32))
	assert.ErrorIs(err, bitvec.ErrUndefined)

	assert.False(mem.Defined(0x1000, 1))
	assert.True(mem.Defined(0x1000, 0))
}

func TestMemoryReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := New(0x1000, 16)

	err := mem.Write(0x1004, bitvec.U(32).Of(0x11223344))
	assert.NoError(err)
	assert.True(mem.Defined(0x1004, 4))
	assert.False(mem.Defined(0x1003, 4))
	assert.Equal([]byte{0x44, 0x33, 0x22, 0x11}, mem.Data[4:8])

	b, err := mem.ReadBits(0x1004, bitvec.U(32))
	assert.NoError(err)
	assert.Equal(uint64(0x11223344), b.Uint64())

	b, err = mem.ReadBits(0x1006, bitvec.U(16))
	assert.NoError(err)
	assert.Equal(uint64(0x1122), b.Uint64())

	b, err = mem.ReadBits(0x1007, bitvec.S(8))
	assert.NoError(err)
	assert.Equal(int64(0x11), b.Int64())

	err = mem.Write(0x1008, bitvec.S(16).OfInt(-2))
	assert.NoError(err)
	b, err = mem.ReadBits(0x1008, bitvec.S(16))
	assert.NoError(err)
	assert.Equal(int64(-2), b.Int64())

	// A half known word defines only the known bytes.
	x, err := mem.Read(0x1008, bitvec.U(32))
	assert.NoError(err)
	assert.Equal(uint64(0xffff0000), x.Mask().Uint64())
	assert.Equal(uint64(0xfffe), x.Value().Uint64())
}

func TestMemoryBigEndian(t *testing.T) {
	assert := assert.New(t)

	mem := New(0, 8)
	mem.Order = binary.BigEndian

	assert.NoError(mem.Write(0, bitvec.U(32).Of(0x11223344)))
	assert.Equal([]byte{0x11, 0x22, 0x33, 0x44}, mem.Data[0:4])

	b, err := mem.ReadBits(0, bitvec.U(16))
	assert.NoError(err)
	assert.Equal(uint64(0x1122), b.Uint64())
}

func TestMemoryWriteUnknown(t *testing.T) {
	assert := assert.New(t)

	mem := New(0, 8)
	assert.NoError(mem.Fill(0, 8, 0xa5))
	assert.True(mem.Defined(0, 8))

	assert.NoError(mem.Write(0, bitvec.MustXBits("16'h12xx_ux")))
	assert.False(mem.Defined(0, 1))
	assert.True(mem.Defined(1, 1))

	x, err := mem.Read(0, bitvec.U(16))
	assert.NoError(err)
	assert.Equal(uint64(0x00ff), x.Mask().Uint64())
	assert.Equal(uint64(0x1200), x.Value().Uint64())
}

func TestMemoryErrors(t *testing.T) {
	assert := assert.New(t)

	mem := New(0x100, 8)

	table := [...]struct {
		addr   uint64
		format bitvec.Format
		err    error
	}{
		{0xff, bitvec.U(8), ErrAddress},
		{0x108, bitvec.U(8), ErrAddress},
		{0x105, bitvec.U(32), ErrAddress},
		{0x104, bitvec.U(32), nil},
		{0x100, bitvec.U(12), ErrWidth},
		{0x100, bitvec.U(128), ErrWidth},
	}

	for _, entry := range table {
		_, err := mem.Read(entry.addr, entry.format)
		if entry.err == nil {
			assert.NoError(err, "0x%x", entry.addr)
		} else {
			assert.ErrorIs(err, entry.err, "0x%x", entry.addr)
		}
	}

	assert.ErrorIs(mem.Load(0x106, []byte{1, 2, 3}), ErrAddress)
	assert.ErrorIs(mem.Fill(0x100, 9, 0), ErrAddress)
	assert.False(mem.Defined(0x107, 2))
}

func TestMemoryLoadReset(t *testing.T) {
	assert := assert.New(t)

	mem := New(0x200, 8)
	assert.NoError(mem.Load(0x202, []byte{1, 2, 3}))
	assert.True(mem.Defined(0x202, 3))
	assert.False(mem.Defined(0x201, 2))
	assert.False(mem.Defined(0x204, 2))

	mem.Reset()
	assert.False(mem.Defined(0x202, 1))
	assert.Equal(make([]byte, 8), mem.Data)
}

func TestMemoryImage(t *testing.T) {
	assert := assert.New(t)

	mem := New(0x8000, 4096)
	assert.NoError(mem.Load(0x8010, []byte("hello, world")))
	assert.NoError(mem.Write(0x8800, bitvec.U(64).Of(0x0123456789abcdef)))

	var buf bytes.Buffer
	assert.NoError(mem.Marshal(&buf))

	other := &Memory{}
	assert.NoError(other.Unmarshal(&buf))
	assert.Equal(mem.Base, other.Base)
	assert.Equal(mem.Data, other.Data)
	assert.True(other.Defined(0x8010, 12))
	assert.False(other.Defined(0x800f, 1))

	b, err := other.ReadBits(0x8800, bitvec.U(64))
	assert.NoError(err)
	assert.Equal(uint64(0x0123456789abcdef), b.Uint64())
}

func TestMemoryImageInvalid(t *testing.T) {
	assert := assert.New(t)

	mem := New(0, 4)

	err := mem.Unmarshal(bytes.NewReader([]byte("not an image")))
	assert.Error(err)

	var buf bytes.Buffer
	assert.NoError(mem.Marshal(&buf))
	image := buf.Bytes()

	err = mem.Unmarshal(bytes.NewReader(image[:len(image)/2]))
	assert.Error(err)
}

func TestMemoryDefines(t *testing.T) {
	assert := assert.New(t)

	mem := New(0x1000, 256)

	defines := map[string]string{}
	for k, v := range mem.Defines() {
		defines[k] = v
	}

	assert.Equal("4096", defines["MEMORY_BASE"])
	assert.Equal("256", defines["MEMORY_SIZE"])
	assert.Equal("4352", defines["MEMORY_END"])

	v, err := bitvec.Eval("MEMORY_END - MEMORY_BASE", mem.Defines())
	assert.NoError(err)
	assert.Equal(uint64(256), v.Uint64())
}
