// Package loader places ELF program images into memory.
package loader

import (
	"debug/elf"
	"io"
	"log"

	"github.com/ezrec/hwbits/bitvec"
	"github.com/ezrec/hwbits/memory"
)

// Loader copies the loadable segments of an ELF file into memory.
type Loader struct {
	Verbose bool
}

// Load the PT_LOAD segments of file into mem, and return the entry point
// at the address width of the ELF class. The memory takes on the byte
// order of the file.
func (ld *Loader) Load(file io.ReaderAt, mem *memory.Memory) (entry bitvec.Bits, err error) {
	ef, err := elf.NewFile(file)
	if err != nil {
		return
	}
	defer ef.Close()

	var addr bitvec.Format
	switch ef.Class {
	case elf.ELFCLASS32:
		addr = bitvec.U(32)
	case elf.ELFCLASS64:
		addr = bitvec.U(64)
	default:
		err = ErrClass
		return
	}

	mem.Order = ef.ByteOrder

	for n, prog := range ef.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}

		if prog.Filesz > prog.Memsz {
			err = &ErrLoad{Segment: n, Err: ErrSegment}
			return
		}

		if ld.Verbose {
			log.Printf("loader: segment %v: 0x%08x file %v mem %v", n, prog.Vaddr, prog.Filesz, prog.Memsz)
		}

		var data []byte
		data, err = io.ReadAll(prog.Open())
		if err != nil {
			err = &ErrLoad{Segment: n, Err: err}
			return
		}

		err = mem.Load(prog.Vaddr, data)
		if err != nil {
			err = &ErrLoad{Segment: n, Err: err}
			return
		}

		bss := prog.Memsz - prog.Filesz
		if bss > 0 {
			err = mem.Fill(prog.Vaddr+prog.Filesz, int(bss), 0)
			if err != nil {
				err = &ErrLoad{Segment: n, Err: err}
				return
			}
		}
	}

	entry = addr.Of(ef.Entry)

	if ld.Verbose {
		log.Printf("loader: entry %v", entry)
	}

	return
}
