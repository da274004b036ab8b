// Package loader extracts A64 machine code from ELF binaries.
package loader

import (
	"debug/elf"
	"encoding/binary"
	"fmt"
	"io"
)

// Segment is one executable loadable segment of an ELF binary.
type Segment struct {
	// Addr is the virtual address of the first byte.
	Addr uint64
	// Data contains the segment contents from the file.
	Data []byte
}

// CodeWord is one 32-bit instruction word together with the virtual
// address it occupies.
type CodeWord struct {
	Addr uint64
	Word uint32
}

// Words splits the segment into little-endian instruction words with
// their addresses. A trailing fragment shorter than four bytes is
// dropped; A64 code is always a multiple of four bytes, so a fragment
// can only be non-code padding.
func (s Segment) Words() []CodeWord {
	words := make([]CodeWord, 0, len(s.Data)/4)
	for i := 0; i+4 <= len(s.Data); i += 4 {
		words = append(words, CodeWord{
			Addr: s.Addr + uint64(i),
			Word: binary.LittleEndian.Uint32(s.Data[i:]),
		})
	}
	return words
}

// Program holds the executable code of an ELF binary.
type Program struct {
	// Entry is the virtual address where execution begins.
	Entry uint64
	// Segments contains the executable PT_LOAD segments, in file order.
	Segments []Segment
}

// Load parses an ARM64 ELF binary and returns its executable segments.
func Load(path string) (*Program, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if f.Class != elf.ELFCLASS64 {
		return nil, fmt.Errorf("not a 64-bit ELF file")
	}
	if f.Machine != elf.EM_AARCH64 {
		return nil, fmt.Errorf("not an ARM64 ELF file (machine type: %v)", f.Machine)
	}

	prog := &Program{Entry: f.Entry}
	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD || phdr.Flags&elf.PF_X == 0 {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Vaddr, n, phdr.Filesz)
			}
		}

		prog.Segments = append(prog.Segments, Segment{
			Addr: phdr.Vaddr,
			Data: data,
		})
	}

	return prog, nil
}
