package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dec/insts"
)

var _ = Describe("Decoder - Scalar Floating Point", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	// FADD S0, S1, S2 -> 0x1E222820
	// Encoding: M=0, S=0, 11110, ftype=00, 1, Rm=2, 0010, 10, Rn=1, Rd=0
	It("should decode FADD S0, S1, S2", func() {
		inst := decoder.Decode(0x1E222820, 0x4000)

		Expect(inst.Op).To(Equal(insts.OpFADD))
		Expect(inst.Prec).To(Equal(insts.FPSizeS))
		Expect(inst.Rd).To(Equal(insts.Reg(0)))
		Expect(inst.Rn).To(Equal(insts.Reg(1)))
		Expect(inst.Rm).To(Equal(insts.Reg(2)))
	})

	// FMOV X0, D1 -> 0x9E660020
	It("should decode the bit-pattern move to a general register", func() {
		inst := decoder.Decode(0x9E660020, 0x4000)

		Expect(inst.Op).To(Equal(insts.OpFMOVVec2GPR))
		Expect(inst.Prec).To(Equal(insts.FPSizeD))
		Expect(inst.Flags.W32()).To(BeFalse())
	})

	// FCVTZS W0, S1 -> 0x1E380020
	It("should decode FCVTZS with round-toward-zero", func() {
		inst := decoder.Decode(0x1E380020, 0x4000)

		Expect(inst.Op).To(Equal(insts.OpFCVTGPR))
		Expect(inst.Flags.W32()).To(BeTrue())
		Expect(inst.Prec).To(Equal(insts.FPSizeS))
		Expect(inst.Aux).To(Equal(insts.FCvt{Mode: insts.FPRZero, Signed: true}))
	})

	// SCVTF D0, X1 -> 0x9E620020
	It("should decode SCVTF D0, X1", func() {
		inst := decoder.Decode(0x9E620020, 0x4000)

		Expect(inst.Op).To(Equal(insts.OpCVTF))
		Expect(inst.Prec).To(Equal(insts.FPSizeD))
		Expect(inst.Aux).To(Equal(insts.FCvt{Signed: true}))
	})

	// FMOV D0, #1.0 -> 0x1E6E1000
	It("should expand the 8-bit floating-point immediate", func() {
		inst := decoder.Decode(0x1E6E1000, 0x4000)

		Expect(inst.Op).To(Equal(insts.OpFMOVImm))
		Expect(inst.Prec).To(Equal(insts.FPSizeD))
		Expect(inst.FImm).To(Equal(1.0))
	})

	// FMADD D0, D1, D2, D3 -> 0x1F420C20
	It("should decode FMADD with the accumulator", func() {
		inst := decoder.Decode(0x1F420C20, 0x4000)

		Expect(inst.Op).To(Equal(insts.OpFMADD))
		Expect(inst.Ra).To(Equal(insts.Reg(3)))
	})

	// FCMP S1, #0.0 -> 0x1E202028
	It("should decode the compare-against-zero form", func() {
		inst := decoder.Decode(0x1E202028, 0x4000)

		Expect(inst.Op).To(Equal(insts.OpFCMPZero))
		Expect(inst.Rn).To(Equal(insts.Reg(1)))
	})

	// FMOV with sf=0, ftype=01 (a 32-bit register against a 64-bit
	// precision) -> 0x1E660020
	It("should reject a register move whose widths disagree", func() {
		inst := decoder.Decode(0x1E660020, 0x4000)

		Expect(inst.Op).To(Equal(insts.OpUnknown))
		Expect(inst.Imm).To(Equal(uint64(0x1E660020)))
	})
})

var _ = Describe("Decoder - SIMD", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("Three same", func() {
		// ADD V0.8H, V1.8H, V2.8H -> 0x4E628420
		It("should decode the arrangement once into Vec", func() {
			inst := decoder.Decode(0x4E628420, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpADDVec))
			Expect(inst.Vec).To(Equal(insts.VA8H))
			Expect(inst.Rd).To(Equal(insts.Reg(0)))
			Expect(inst.Rn).To(Equal(insts.Reg(1)))
			Expect(inst.Rm).To(Equal(insts.Reg(2)))
		})

		// CMEQ V0.16B, V1.16B, V2.16B -> 0x6E228C20
		It("should decode the register compare", func() {
			inst := decoder.Decode(0x6E228C20, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpCMEQReg))
			Expect(inst.Vec).To(Equal(insts.VA16B))
		})

		// FADD V0.4S, V1.4S, V2.4S -> 0x4E22D420
		It("should decode the floating-point vector add", func() {
			inst := decoder.Decode(0x4E22D420, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpFADDVec))
			Expect(inst.Vec).To(Equal(insts.VA4S))
		})
	})

	Describe("Copy", func() {
		// DUP V0.4S, V1.S[1] -> 0x4E0C0420
		It("should decode the element duplicate with its lane", func() {
			inst := decoder.Decode(0x4E0C0420, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpDUPElem))
			Expect(inst.Vec).To(Equal(insts.VA4S))
			Expect(inst.Imm).To(Equal(uint64(1)))
		})

		// UMOV W0, V1.S[1] -> 0x0E0C3C20
		It("should decode the unsigned lane move to a general register", func() {
			inst := decoder.Decode(0x0E0C3C20, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpUMOV))
			Expect(inst.Flags.W32()).To(BeTrue())
			Expect(inst.Imm).To(Equal(uint64(1)))
		})

		// INS V0.D[1], X1 -> 0x4E181C20
		It("should decode the general-register insert", func() {
			inst := decoder.Decode(0x4E181C20, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpINSGPR))
			Expect(inst.Prec).To(Equal(insts.FPSizeD))
			Expect(inst.Imm).To(Equal(uint64(1)))
		})
	})

	Describe("Modified immediate", func() {
		// MOVI V0.4S, #0x55 -> 0x4F0206A0
		It("should replicate the expanded immediate across the vector", func() {
			inst := decoder.Decode(0x4F0206A0, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpMOVI))
			Expect(inst.Vec).To(Equal(insts.VA4S))
			Expect(inst.Imm).To(Equal(uint64(0x0000005500000055)))
		})

		// MOVI V0.4H, #0x12, LSL #8 -> 0x0F00A640
		It("should use the halfword arrangement for the 16-bit shifted form", func() {
			inst := decoder.Decode(0x0F00A640, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpMOVI))
			Expect(inst.Vec).To(Equal(insts.VA4H))
			Expect(inst.Imm).To(Equal(uint64(0x1200120012001200)))
		})
	})

	Describe("Shift by immediate", func() {
		// SSHR V0.4S, V1.4S, #3 -> 0x4F3D0420
		It("should recover the right-shift amount", func() {
			inst := decoder.Decode(0x4F3D0420, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpSHR))
			Expect(inst.Flags.Signed()).To(BeTrue())
			Expect(inst.Vec).To(Equal(insts.VA4S))
			Expect(inst.Imm).To(Equal(uint64(3)))
		})

		// SSHR D0, D1, #8 -> 0x5F780420
		It("should decode the scalar doubleword shift", func() {
			inst := decoder.Decode(0x5F780420, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpSHR))
			Expect(inst.Flags.Scalar()).To(BeTrue())
			Expect(inst.Prec).To(Equal(insts.FPSizeD))
			Expect(inst.Imm).To(Equal(uint64(8)))
		})

		// SHRN with immh=1000: no narrowing from doubleword sources
		// exists -> 0x4F408400
		It("should reject a narrowing shift past 32-bit elements", func() {
			inst := decoder.Decode(0x4F408400, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})

		// SSHR with immh=1001 and Q=0 would be a 1D arrangement
		// -> 0x0F480420
		It("should reject doubleword elements on a half-width vector", func() {
			inst := decoder.Decode(0x0F480420, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})

		// Scalar SSHR with immh=0010: plain shifts only exist scalar on
		// doublewords -> 0x5F100420
		It("should reject a scalar plain shift on halfword elements", func() {
			inst := decoder.Decode(0x5F100420, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})

		// SCVTF with immh=0001: no byte-element conversions -> 0x4F08E420
		It("should reject a byte-element fixed-point conversion", func() {
			inst := decoder.Decode(0x4F08E420, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})
	})

	Describe("Two-register miscellaneous", func() {
		// XTN V0.4H, V1.4S -> 0x0E612820
		It("should decode the narrowing move", func() {
			inst := decoder.Decode(0x0E612820, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpXTN))
			Expect(inst.Vec).To(Equal(insts.VA4H))
		})
	})

	Describe("Across lanes", func() {
		// ADDV B0, V1.16B -> 0x4E31B820
		It("should decode the lane-wise reduction", func() {
			inst := decoder.Decode(0x4E31B820, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpADDV))
			Expect(inst.Vec).To(Equal(insts.VA16B))
		})
	})

	Describe("Table lookup and permute", func() {
		// TBL V0.16B, {V1.16B}, V2.16B -> 0x4E020020
		It("should decode TBL with the table length", func() {
			inst := decoder.Decode(0x4E020020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpTBL))
			Expect(inst.Vec).To(Equal(insts.VA16B))
			Expect(inst.Imm).To(Equal(uint64(1)))
		})

		// ZIP1 V0.16B, V1.16B, V2.16B -> 0x4E023820
		It("should decode ZIP1", func() {
			inst := decoder.Decode(0x4E023820, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpZIP1))
			Expect(inst.Vec).To(Equal(insts.VA16B))
		})

		// EXT V0.16B, V1.16B, V2.16B, #4 -> 0x6E022020
		It("should decode EXT with the byte rotation", func() {
			inst := decoder.Decode(0x6E022020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpEXT))
			Expect(inst.Imm).To(Equal(uint64(4)))
		})
	})

	Describe("By element", func() {
		// FMUL V0.4S, V1.4S, V2.S[1] -> 0x4FA29020
		It("should decode the by-element multiply with its lane", func() {
			inst := decoder.Decode(0x4FA29020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpFMULElem))
			Expect(inst.Vec).To(Equal(insts.VA4S))
			Expect(inst.Rm).To(Equal(insts.Reg(2)))
			Expect(inst.Imm).To(Equal(uint64(1)))
		})
	})
})
