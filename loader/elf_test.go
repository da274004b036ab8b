package loader_test

import (
	"encoding/binary"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dec/loader"
)

var _ = Describe("ELF Loader", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "elf-loader-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	Describe("Load", func() {
		Context("with a valid ARM64 ELF binary", func() {
			var elfPath string
			code := []byte{
				0x40, 0x05, 0x80, 0xd2, // mov x0, #42
				0xc0, 0x03, 0x5f, 0xd6, // ret
			}

			BeforeEach(func() {
				elfPath = filepath.Join(tempDir, "test.elf")
				createELF(elfPath, 0x400080, []elfSegment{
					{addr: 0x400000, data: code, exec: true},
				})
			})

			It("should extract the entry point", func() {
				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.Entry).To(Equal(uint64(0x400080)))
			})

			It("should load the code segment", func() {
				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.Segments).To(HaveLen(1))
				Expect(prog.Segments[0].Addr).To(Equal(uint64(0x400000)))
				Expect(prog.Segments[0].Data).To(Equal(code))
			})
		})

		Context("with a non-executable data segment", func() {
			It("should keep only the executable segments", func() {
				elfPath := filepath.Join(tempDir, "mixed.elf")
				createELF(elfPath, 0x400000, []elfSegment{
					{addr: 0x400000, data: []byte{0x1f, 0x20, 0x03, 0xd5}, exec: true},
					{addr: 0x600000, data: []byte{0x01, 0x02, 0x03, 0x04}},
				})

				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.Segments).To(HaveLen(1))
				Expect(prog.Segments[0].Addr).To(Equal(uint64(0x400000)))
			})
		})

		Context("with an invalid file", func() {
			It("should return error for non-existent file", func() {
				_, err := loader.Load("/nonexistent/path/to/file.elf")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("failed to open"))
			})

			It("should return error for non-ELF file", func() {
				notElfPath := filepath.Join(tempDir, "not-elf.bin")
				err := os.WriteFile(notElfPath, []byte("not an elf file"), 0644)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(notElfPath)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Segment words", func() {
		It("should split the data into addressed little-endian words", func() {
			seg := loader.Segment{
				Addr: 0x400000,
				Data: []byte{
					0x40, 0x05, 0x80, 0xd2,
					0xc0, 0x03, 0x5f, 0xd6,
				},
			}

			Expect(seg.Words()).To(Equal([]loader.CodeWord{
				{Addr: 0x400000, Word: 0xd2800540},
				{Addr: 0x400004, Word: 0xd65f03c0},
			}))
		})

		It("should drop a trailing fragment", func() {
			seg := loader.Segment{
				Addr: 0x1000,
				Data: []byte{0x1f, 0x20, 0x03, 0xd5, 0xaa, 0xbb},
			}

			Expect(seg.Words()).To(Equal([]loader.CodeWord{
				{Addr: 0x1000, Word: 0xd503201f},
			}))
		})

		It("should return no words for an empty segment", func() {
			Expect(loader.Segment{Addr: 0x1000}.Words()).To(BeEmpty())
		})
	})
})

type elfSegment struct {
	addr uint64
	data []byte
	exec bool
}

// createELF writes a minimal ARM64 ELF64 executable containing the given
// segments, placed back to back after the headers.
func createELF(path string, entry uint64, segments []elfSegment) {
	const (
		ehSize = 64
		phSize = 56
	)
	phNum := len(segments)
	dataOff := uint64(ehSize + phNum*phSize)

	header := make([]byte, ehSize)
	copy(header[0:4], []byte{0x7f, 'E', 'L', 'F'})
	header[4] = 2 // 64-bit
	header[5] = 1 // little endian
	header[6] = 1 // version
	binary.LittleEndian.PutUint16(header[16:18], 2)   // ET_EXEC
	binary.LittleEndian.PutUint16(header[18:20], 183) // EM_AARCH64
	binary.LittleEndian.PutUint32(header[20:24], 1)
	binary.LittleEndian.PutUint64(header[24:32], entry)
	binary.LittleEndian.PutUint64(header[32:40], ehSize) // phoff
	binary.LittleEndian.PutUint16(header[52:54], ehSize)
	binary.LittleEndian.PutUint16(header[54:56], phSize)
	binary.LittleEndian.PutUint16(header[56:58], uint16(phNum))

	file := header
	off := dataOff
	for _, seg := range segments {
		phdr := make([]byte, phSize)
		binary.LittleEndian.PutUint32(phdr[0:4], 1) // PT_LOAD
		flags := uint32(4)                          // PF_R
		if seg.exec {
			flags |= 1 // PF_X
		} else {
			flags |= 2 // PF_W
		}
		binary.LittleEndian.PutUint32(phdr[4:8], flags)
		binary.LittleEndian.PutUint64(phdr[8:16], off)
		binary.LittleEndian.PutUint64(phdr[16:24], seg.addr)
		binary.LittleEndian.PutUint64(phdr[24:32], seg.addr)
		binary.LittleEndian.PutUint64(phdr[32:40], uint64(len(seg.data)))
		binary.LittleEndian.PutUint64(phdr[40:48], uint64(len(seg.data)))
		binary.LittleEndian.PutUint64(phdr[48:56], 4)
		file = append(file, phdr...)
		off += uint64(len(seg.data))
	}
	for _, seg := range segments {
		file = append(file, seg.data...)
	}

	Expect(os.WriteFile(path, file, 0644)).To(Succeed())
}
