// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"maps"
	"os"

	"github.com/ezrec/hwbits/bitvec"
	"github.com/ezrec/hwbits/internal"
	"github.com/ezrec/hwbits/loader"
	"github.com/ezrec/hwbits/memory"
	"github.com/ezrec/hwbits/snapshot"
	"github.com/ezrec/hwbits/tier"
)

func main() {
	var expr string
	var program string
	var base string
	var size int
	var input string
	var output string
	var read string
	var width uint
	var snap string
	var verbose bool

	flag.StringVar(&expr, "e", "", "Expression to evaluate")
	flag.StringVar(&program, "elf", "", "ELF program to load into memory")
	flag.StringVar(&base, "b", "0", "Memory base address")
	flag.IntVar(&size, "m", 65536, "Memory size in bytes")
	flag.StringVar(&input, "i", "", "Memory image to restore")
	flag.StringVar(&output, "o", "", "Memory image to save")
	flag.StringVar(&read, "r", "", "Memory address expression to read")
	flag.UintVar(&width, "w", 32, "Memory read width in bits")
	flag.StringVar(&snap, "s", "", "Snapshot file to write")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	addr, err := bitvec.ParseBits(base)
	if err != nil {
		log.Fatalf("%v: %v", base, err)
	}

	mem := memory.New(uint32(addr.Uint64()), size)
	mem.Verbose = verbose

	state := snapshot.New()

	if len(input) != 0 {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()

		err = mem.Unmarshal(inf)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
	}

	defines := internal.Defines(tier.Defines(), mem.Defines())

	if len(program) != 0 {
		inf, err := os.Open(program)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		defer inf.Close()

		ld := &loader.Loader{Verbose: verbose}
		entry, err := ld.Load(inf, mem)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}

		state.Set("entry", entry)
		defines = internal.Defines(defines, maps.All(map[string]string{
			"ENTRY": entry.String(),
		}))
	}

	// Literals on the command line.
	for _, arg := range flag.Args() {
		lit, err := bitvec.ParseLiteral(arg)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%v %v\n", lit.Format(), lit.Vector())
	}

	if len(expr) != 0 {
		value, err := bitvec.Eval(expr, defines)
		if err != nil {
			log.Fatalf("%v: %v", expr, err)
		}
		state.Set("expr", value)
		fmt.Printf("%v %v\n", value.Format(), value)
	}

	if len(read) != 0 {
		at, err := bitvec.Eval(read, defines)
		if err != nil {
			log.Fatalf("%v: %v", read, err)
		}

		x, err := mem.Read(at.Uint64(), bitvec.U(width))
		if err != nil {
			log.Fatal(err)
		}
		state.Set("read", x)
		fmt.Printf("%v: %v\n", at, x)
	}

	if len(output) != 0 {
		var buf bytes.Buffer
		err := mem.Marshal(&buf)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}

		err = os.WriteFile(output, buf.Bytes(), 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if len(snap) != 0 {
		ouf, err := os.Create(snap)
		if err != nil {
			log.Fatalf("%v: %v", snap, err)
		}
		defer ouf.Close()

		err = state.Save(ouf)
		if err != nil {
			log.Fatalf("%v: %v", snap, err)
		}
	}
}
