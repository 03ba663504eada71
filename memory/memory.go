// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory is a byte addressed store whose bytes are unknown until
// written, read and written as bit vectors.
package memory

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/ezrec/hwbits/bitvec"
)

const (
	// IMAGE_MAGIC starts every memory image.
	IMAGE_MAGIC = uint32(0x4d425748) // "HWBM"
	// IMAGE_VERSION is the current memory image layout.
	IMAGE_VERSION = uint32(1)
)

// imageHeader precedes the memory bytes in an image.
type imageHeader struct {
	Magic   uint32
	Version uint32
	Base    uint32
	Size    uint32
}

// Memory is a block of bytes at Base. Bytes that were never written, or that
// were last written with unknown bits, read back as unknown.
type Memory struct {
	Verbose bool
	Order   binary.ByteOrder

	Base uint32
	Data []byte

	defined *roaring.Bitmap
}

// New returns size bytes of undefined memory at base.
func New(base uint32, size int) (mem *Memory) {
	mem = &Memory{
		Order:   binary.LittleEndian,
		Base:    base,
		Data:    make([]byte, size),
		defined: roaring.New(),
	}

	return
}

// Size of the memory in bytes.
func (mem *Memory) Size() int {
	return len(mem.Data)
}

// Defines for expressions evaluated against this memory.
func (mem *Memory) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"MEMORY_BASE": fmt.Sprintf("%v", mem.Base),
		"MEMORY_SIZE": fmt.Sprintf("%v", len(mem.Data)),
		"MEMORY_END":  fmt.Sprintf("%v", uint64(mem.Base)+uint64(len(mem.Data))),
	})
}

// Reset makes every byte undefined.
func (mem *Memory) Reset() {
	if mem.Verbose {
		log.Printf("memory: reset 0x%08x+%v", mem.Base, len(mem.Data))
	}

	clear(mem.Data)
	mem.defined.Clear()
}

// offset translates a span of n bytes at addr to an offset into Data.
func (mem *Memory) offset(op string, addr uint64, n int) (off int, err error) {
	if addr < uint64(mem.Base) {
		err = &ErrAccess{Op: op, Addr: addr, Err: ErrAddress}
		return
	}

	rel := addr - uint64(mem.Base)
	if n < 0 || rel > uint64(len(mem.Data)) || uint64(n) > uint64(len(mem.Data))-rel {
		err = &ErrAccess{Op: op, Addr: addr, Err: ErrAddress}
		return
	}

	off = int(rel)
	return
}

// access checks a native width access at addr.
func (mem *Memory) access(op string, addr uint64, width uint) (off int, n int, err error) {
	switch width {
	case 8, 16, 32, 64:
	default:
		err = &ErrAccess{Op: op, Addr: addr, Err: ErrWidth}
		return
	}

	n = int(width / 8)
	off, err = mem.offset(op, addr, n)
	return
}

// Defined reports if all n bytes at addr are defined.
func (mem *Memory) Defined(addr uint64, n int) bool {
	off, err := mem.offset("defined", addr, n)
	if err != nil {
		return false
	}

	if n == 0 {
		return true
	}

	count := mem.defined.Rank(uint32(off + n - 1))
	if off > 0 {
		count -= mem.defined.Rank(uint32(off - 1))
	}

	return count == uint64(n)
}

// Read the value of format fm at addr. Undefined bytes read as unknown bits.
func (mem *Memory) Read(addr uint64, fm bitvec.Format) (x bitvec.XBits, err error) {
	off, n, err := mem.access("read", addr, fm.Width)
	if err != nil {
		return
	}

	unknown := make([]byte, n)
	for i := range n {
		if !mem.defined.Contains(uint32(off + i)) {
			unknown[i] = 0xff
		}
	}

	value := bitvec.FromBytes(fm, mem.Order, mem.Data[off:off+n])
	mask := bitvec.FromBytes(bitvec.U(fm.Width), mem.Order, unknown)

	x = bitvec.NewXBits(value, mask)

	if mem.Verbose {
		log.Printf("memory: read 0x%08x: %v", addr, x)
	}

	return
}

// ReadBits reads the value of format fm at addr, which must be defined.
func (mem *Memory) ReadBits(addr uint64, fm bitvec.Format) (b bitvec.Bits, err error) {
	x, err := mem.Read(addr, fm)
	if err != nil {
		return
	}

	b, err = x.Defined()
	if err != nil {
		err = &ErrAccess{Op: "read", Addr: addr, Err: err}
	}

	return
}

// Write v at addr. Bytes holding any unknown bit become undefined.
func (mem *Memory) Write(addr uint64, v bitvec.Vector) (err error) {
	off, n, err := mem.access("write", addr, v.Width())
	if err != nil {
		return
	}

	value := bitvec.U(v.Width()).From(v.Value())
	mask := bitvec.U(v.Width()).From(v.Mask())

	data := value.Bytes(mem.Order)
	unknown := mask.Bytes(mem.Order)

	for i := range n {
		if unknown[i] != 0 {
			mem.Data[off+i] = 0
			mem.defined.Remove(uint32(off + i))
		} else {
			mem.Data[off+i] = data[i]
			mem.defined.Add(uint32(off + i))
		}
	}

	if mem.Verbose {
		log.Printf("memory: write 0x%08x: %v", addr, v)
	}

	return
}

// Load copies data to addr, defining every byte.
func (mem *Memory) Load(addr uint64, data []byte) (err error) {
	off, err := mem.offset("load", addr, len(data))
	if err != nil {
		return
	}

	if mem.Verbose {
		log.Printf("memory: load 0x%08x+%v", addr, len(data))
	}

	copy(mem.Data[off:], data)
	mem.defined.AddRange(uint64(off), uint64(off+len(data)))

	return
}

// Fill sets n bytes at addr to value, defining them.
func (mem *Memory) Fill(addr uint64, n int, value byte) (err error) {
	off, err := mem.offset("fill", addr, n)
	if err != nil {
		return
	}

	if mem.Verbose {
		log.Printf("memory: fill 0x%08x+%v: 0x%02x", addr, n, value)
	}

	for i := range n {
		mem.Data[off+i] = value
	}
	mem.defined.AddRange(uint64(off), uint64(off+n))

	return
}

// Marshal writes a compressed image of the memory.
func (mem *Memory) Marshal(file io.Writer) (err error) {
	enc, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return
	}
	defer func() {
		err = errors.Join(err, enc.Close())
	}()

	header := imageHeader{
		Magic:   IMAGE_MAGIC,
		Version: IMAGE_VERSION,
		Base:    mem.Base,
		Size:    uint32(len(mem.Data)),
	}

	err = binary.Write(enc, binary.LittleEndian, &header)
	if err != nil {
		return
	}

	_, err = enc.Write(mem.Data)
	if err != nil {
		return
	}

	_, err = mem.defined.WriteTo(enc)

	return
}

// Unmarshal replaces the memory with an image written by Marshal.
func (mem *Memory) Unmarshal(file io.Reader) (err error) {
	dec, err := zstd.NewReader(file)
	if err != nil {
		return
	}
	defer dec.Close()

	var header imageHeader
	err = binary.Read(dec, binary.LittleEndian, &header)
	if err != nil {
		err = errors.Join(ErrImage, err)
		return
	}

	if header.Magic != IMAGE_MAGIC || header.Version != IMAGE_VERSION {
		err = ErrImage
		return
	}

	data := make([]byte, header.Size)
	_, err = io.ReadFull(dec, data)
	if err != nil {
		err = errors.Join(ErrImage, err)
		return
	}

	defined := roaring.New()
	_, err = defined.ReadFrom(dec)
	if err != nil {
		err = errors.Join(ErrImage, err)
		return
	}

	if !defined.IsEmpty() && defined.Maximum() >= header.Size {
		err = ErrImage
		return
	}

	mem.Base = header.Base
	mem.Data = data
	mem.defined = defined
	if mem.Order == nil {
		mem.Order = binary.LittleEndian
	}

	if mem.Verbose {
		log.Printf("memory: image 0x%08x+%v, %v defined", mem.Base, len(mem.Data), defined.GetCardinality())
	}

	return
}
