package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dec/insts"
)

var _ = Describe("Decoder - Data Processing (Immediate)", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("PC-relative addressing", func() {
		// ADR X0, #+8 -> 0x10000040
		// Encoding: op=0, immlo=0, 10000, immhi=2, Rd=0
		It("should decode ADR X0, #+8", func() {
			inst := decoder.Decode(0x10000040, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpADR))
			Expect(inst.Rd).To(Equal(insts.Reg(0)))
			Expect(inst.Offset).To(Equal(int64(8)))
			Expect(inst.Imm).To(Equal(uint64(0x4008)))
		})

		// ADRP X0, #+1 page -> 0xB0000000
		// Encoding: op=1, immlo=1, 10000, immhi=0, Rd=0
		It("should decode ADRP X0, #+4096", func() {
			inst := decoder.Decode(0xB0000000, 0x4123)

			Expect(inst.Op).To(Equal(insts.OpADRP))
			Expect(inst.Offset).To(Equal(int64(0x1000)))
			Expect(inst.Imm).To(Equal(uint64(0x5000)))
		})
	})

	Describe("Add/subtract immediate", func() {
		// ADD X0, X1, #42 -> 0x9100A820
		// Encoding: sf=1, op=0, S=0, 100010, sh=0, imm12=42, Rn=1, Rd=0
		It("should decode ADD X0, X1, #42", func() {
			inst := decoder.Decode(0x9100A820, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpADDImm))
			Expect(inst.Flags.W32()).To(BeFalse())
			Expect(inst.Flags.SetFlags()).To(BeFalse())
			Expect(inst.Rd).To(Equal(insts.Reg(0)))
			Expect(inst.Rn).To(Equal(insts.Reg(1)))
			Expect(inst.Imm).To(Equal(uint64(42)))
		})

		// MOV X0, SP (alias of ADD X0, SP, #0) -> 0x910003E0
		// Encoding: sf=1, op=0, S=0, 100010, sh=0, imm12=0, Rn=31, Rd=0
		It("should decode MOV X0, SP as the stack-pointer move alias", func() {
			inst := decoder.Decode(0x910003E0, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpMOVSP))
			Expect(inst.Rd).To(Equal(insts.Reg(0)))
			Expect(inst.Rn).To(Equal(insts.SP))
		})

		// CMP X1, #10 (alias of SUBS XZR, X1, #10) -> 0xF100283F
		// Encoding: sf=1, op=1, S=1, 100010, sh=0, imm12=10, Rn=1, Rd=31
		It("should decode CMP X1, #10 as the compare alias", func() {
			inst := decoder.Decode(0xF100283F, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpCMPImm))
			Expect(inst.Flags.SetFlags()).To(BeTrue())
			Expect(inst.Rd).To(Equal(insts.ZR))
			Expect(inst.Rn).To(Equal(insts.Reg(1)))
			Expect(inst.Imm).To(Equal(uint64(10)))
		})
	})

	Describe("Logical immediate", func() {
		// ORR X0, XZR, #0xFFFF -> 0xB2403FE0
		// Encoding: sf=1, opc=01, 100100, N=1, immr=0, imms=15, Rn=31, Rd=0
		It("should decode ORR with a zero source as MOV immediate", func() {
			inst := decoder.Decode(0xB2403FE0, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpMOVImm))
			Expect(inst.Rd).To(Equal(insts.Reg(0)))
			Expect(inst.Imm).To(Equal(uint64(0xFFFF)))
		})

		// TST X1, #0x3FFF (alias of ANDS XZR, X1, #0x3FFF) -> 0xF240343F
		// Encoding: sf=1, opc=11, 100100, N=1, immr=0, imms=13, Rn=1, Rd=31
		It("should decode ANDS with a discarded result as TST", func() {
			inst := decoder.Decode(0xF240343F, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpTSTImm))
			Expect(inst.Flags.SetFlags()).To(BeTrue())
			Expect(inst.Rn).To(Equal(insts.Reg(1)))
			Expect(inst.Imm).To(Equal(uint64(0x3FFF)))
		})

		// AND W0, W1, #<N=1> -> 0x12400020
		// Encoding: sf=0, opc=00, 100100, N=1, immr=0, imms=0, Rn=1, Rd=0
		It("should reject N set in the 32-bit variant", func() {
			inst := decoder.Decode(0x12400020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpError))
			Expect(inst.Error).NotTo(BeEmpty())
		})
	})

	Describe("Move wide immediate", func() {
		// MOVZ X0, #0x1234 -> 0xD2824680
		// Encoding: sf=1, opc=10, 100101, hw=0, imm16=0x1234, Rd=0
		It("should decode MOVZ X0, #0x1234 as MOV immediate", func() {
			inst := decoder.Decode(0xD2824680, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpMOVImm))
			Expect(inst.Rd).To(Equal(insts.Reg(0)))
			Expect(inst.Imm).To(Equal(uint64(0x1234)))
		})

		// MOVN X0, #0 -> 0x92800000
		// Encoding: sf=1, opc=00, 100101, hw=0, imm16=0, Rd=0
		It("should decode MOVN X0, #0 as all-ones", func() {
			inst := decoder.Decode(0x92800000, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpMOVImm))
			Expect(inst.Imm).To(Equal(^uint64(0)))
		})

		// MOVZ W0, #0xFFFF, LSL #16 -> 0x52BFFFE0
		// MOVN W0, #0xFFFF          -> 0x129FFFE0
		// ORR  W0, WZR, #0xFFFF0000 -> 0x32103FE0
		It("should collapse all three spellings of 0xFFFF0000 to the same record", func() {
			movz := decoder.Decode(0x52BFFFE0, 0x4000)
			movn := decoder.Decode(0x129FFFE0, 0x4000)
			orr := decoder.Decode(0x32103FE0, 0x4000)

			Expect(movz.Op).To(Equal(insts.OpMOVImm))
			Expect(movz.Imm).To(Equal(uint64(0xFFFF0000)))
			Expect(movn.Op).To(Equal(insts.OpMOVImm))
			Expect(movn.Imm).To(Equal(uint64(0xFFFF0000)))
			Expect(orr.Op).To(Equal(insts.OpMOVImm))
			Expect(orr.Imm).To(Equal(uint64(0xFFFF0000)))
		})

		// MOVK X0, #0xBEEF, LSL #32 -> 0xF2D7DDE0
		// Encoding: sf=1, opc=11, 100101, hw=2, imm16=0xBEEF, Rd=0
		It("should keep the raw immediate and shift of MOVK", func() {
			inst := decoder.Decode(0xF2D7DDE0, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpMOVK))
			Expect(inst.Aux).To(Equal(insts.MovWide{Imm16: 0xBEEF, LSL: 32}))
		})
	})

	Describe("Bitfield", func() {
		// LSL X0, X1, #4 (alias of UBFM X0, X1, #60, #59) -> 0xD37CEC20
		// Encoding: sf=1, opc=10, 100110, N=1, immr=60, imms=59, Rn=1, Rd=0
		It("should decode UBFM as the LSL immediate alias", func() {
			inst := decoder.Decode(0xD37CEC20, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLSLImm))
			Expect(inst.Aux).To(Equal(insts.ShiftOp{Type: insts.ShiftLSL, Amount: 4}))
		})

		// ASR W1, W2, #3 (alias of SBFM W1, W2, #3, #31) -> 0x13037C41
		// Encoding: sf=0, opc=00, 100110, N=0, immr=3, imms=31, Rn=2, Rd=1
		It("should decode SBFM as the ASR immediate alias", func() {
			inst := decoder.Decode(0x13037C41, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpASRImm))
			Expect(inst.Flags.W32()).To(BeTrue())
			Expect(inst.Rd).To(Equal(insts.Reg(1)))
			Expect(inst.Rn).To(Equal(insts.Reg(2)))
			Expect(inst.Aux).To(Equal(insts.ShiftOp{Type: insts.ShiftASR, Amount: 3}))
		})

		// SXTB X0, W1 (alias of SBFM X0, X1, #0, #7) -> 0x93401C20
		// Encoding: sf=1, opc=00, 100110, N=1, immr=0, imms=7, Rn=1, Rd=0
		It("should decode SBFM as the sign-extend alias", func() {
			inst := decoder.Decode(0x93401C20, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpEXTEND))
			Expect(inst.Aux).To(Equal(insts.ExtendOp{Type: insts.ExtSXTB}))
		})

		// BFI X0, X1, #8, #4 (alias of BFM X0, X1, #56, #3) -> 0xB3780C20
		// Encoding: sf=1, opc=01, 100110, N=1, immr=56, imms=3, Rn=1, Rd=0
		It("should decode BFM as BFI with the field position recovered", func() {
			inst := decoder.Decode(0xB3780C20, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpBFI))
			Expect(inst.Aux).To(Equal(insts.Bitfield{LSB: 8, Width: 4}))
		})

		// BFC X0, #8, #4 (BFM with Rn=31) -> 0xB3780FE0
		It("should decode BFM with a zero source as BFC", func() {
			inst := decoder.Decode(0xB3780FE0, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpBFC))
			Expect(inst.Aux).To(Equal(insts.Bitfield{LSB: 8, Width: 4}))
		})
	})

	Describe("Extract", func() {
		// EXTR X0, X1, X2, #12 -> 0x93C23020
		// Encoding: sf=1, 00100111, N=1, Rm=2, imms=12, Rn=1, Rd=0
		It("should decode EXTR X0, X1, X2, #12", func() {
			inst := decoder.Decode(0x93C23020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpEXTR))
			Expect(inst.Rm).To(Equal(insts.Reg(2)))
			Expect(inst.Imm).To(Equal(uint64(12)))
		})

		// ROR X0, X1, #12 (alias of EXTR X0, X1, X1, #12) -> 0x93C13020
		It("should decode EXTR with equal sources as ROR immediate", func() {
			inst := decoder.Decode(0x93C13020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpRORImm))
			Expect(inst.Aux).To(Equal(insts.ShiftOp{Type: insts.ShiftROR, Amount: 12}))
		})
	})
})
