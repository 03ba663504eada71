package loader

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hwbits/bitvec"
	"github.com/ezrec/hwbits/memory"
)

// program32 builds a 32-bit ELF executable with one loadable segment.
func program32(order binary.ByteOrder, vaddr uint32, data []byte, memsz uint32) []byte {
	var buf bytes.Buffer

	header := elf.Header32{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(elf.EM_RISCV),
		Version:   uint32(elf.EV_CURRENT),
		Entry:     vaddr,
		Phoff:     52,
		Ehsize:    52,
		Phentsize: 32,
		Phnum:     2,
	}
	copy(header.Ident[:], elf.ELFMAG)
	header.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	header.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)
	if order == binary.BigEndian {
		header.Ident[elf.EI_DATA] = byte(elf.ELFDATA2MSB)
	} else {
		header.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	}

	progs := []elf.Prog32{
		{
			Type: uint32(elf.PT_NOTE),
		},
		{
			Type:   uint32(elf.PT_LOAD),
			Off:    52 + 2*32,
			Vaddr:  vaddr,
			Paddr:  vaddr,
			Filesz: uint32(len(data)),
			Memsz:  memsz,
			Flags:  uint32(elf.PF_R | elf.PF_X),
			Align:  4,
		},
	}

	_ = binary.Write(&buf, order, &header)
	_ = binary.Write(&buf, order, progs)
	buf.Write(data)

	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	image := program32(binary.LittleEndian, 0x1000, []byte{0x13, 0x00, 0x00, 0x00, 0x6f}, 8)

	mem := memory.New(0x1000, 16)
	ld := &Loader{}

	entry, err := ld.Load(bytes.NewReader(image), mem)
	assert.NoError(err)
	assert.True(entry.Same(bitvec.U(32).Of(0x1000)))

	assert.True(mem.Defined(0x1000, 8))
	assert.False(mem.Defined(0x1008, 1))

	b, err := mem.ReadBits(0x1000, bitvec.U(32))
	assert.NoError(err)
	assert.Equal(uint64(0x13), b.Uint64())

	b, err = mem.ReadBits(0x1004, bitvec.U(32))
	assert.NoError(err)
	assert.Equal(uint64(0x6f), b.Uint64())
}

func TestLoadBigEndian(t *testing.T) {
	assert := assert.New(t)

	image := program32(binary.BigEndian, 0x40, []byte{0x12, 0x34}, 2)

	mem := memory.New(0, 0x100)
	ld := &Loader{}

	entry, err := ld.Load(bytes.NewReader(image), mem)
	assert.NoError(err)
	assert.Equal(uint64(0x40), entry.Uint64())
	assert.Equal(binary.BigEndian, mem.Order)

	b, err := mem.ReadBits(0x40, bitvec.U(16))
	assert.NoError(err)
	assert.Equal(uint64(0x1234), b.Uint64())
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}

	_, err := ld.Load(bytes.NewReader([]byte("not an elf file")), memory.New(0, 16))
	assert.Error(err)

	image := program32(binary.LittleEndian, 0x2000, []byte{1, 2, 3, 4}, 4)
	_, err = ld.Load(bytes.NewReader(image), memory.New(0x1000, 16))
	assert.ErrorIs(err, memory.ErrAddress)

	image = program32(binary.LittleEndian, 0x1000, []byte{1, 2, 3, 4}, 2)
	_, err = ld.Load(bytes.NewReader(image), memory.New(0x1000, 16))
	assert.ErrorIs(err, ErrSegment)
}
