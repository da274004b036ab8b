// Package main provides the entry point for a64dump.
// a64dump disassembles the executable segments of an ARM64 ELF binary
// into decoded instruction records.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/sarchlab/a64dec/insts"
	"github.com/sarchlab/a64dec/loader"
)

var verbose = flag.Bool("v", false, "Dump the full record of every instruction")

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: a64dump [options] <program.elf>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	prog, err := loader.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	decoder := insts.NewDecoder()
	for _, seg := range prog.Segments {
		for _, cw := range seg.Words() {
			inst := decoder.Decode(cw.Word, cw.Addr)
			if *verbose {
				fmt.Printf("%08X: %08X\n%s", cw.Addr, cw.Word, spew.Sdump(inst))
				continue
			}
			switch inst.Op {
			case insts.OpError:
				fmt.Printf("%08X: %08X  <invalid: %s>\n", cw.Addr, cw.Word, inst.Error)
			case insts.OpUnknown:
				fmt.Printf("%08X: %08X  <unknown>\n", cw.Addr, cw.Word)
			default:
				fmt.Printf("%08X: %08X  %s\n", cw.Addr, cw.Word, inst.Op)
			}
		}
	}
}
