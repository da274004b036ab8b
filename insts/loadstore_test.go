package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dec/insts"
)

var _ = Describe("Decoder - Loads and Stores", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("Register with immediate offset", func() {
		// LDR X0, [X1, #16] -> 0xF9400820
		// Encoding: size=11, 111, V=0, 01, opc=01, imm12=2, Rn=1, Rt=0
		It("should scale the unsigned immediate offset", func() {
			inst := decoder.Decode(0xF9400820, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLDR))
			Expect(inst.Flags.AddrMode()).To(Equal(insts.AMOffImm))
			Expect(inst.Flags.Size()).To(Equal(insts.FPSizeD))
			Expect(inst.Rd).To(Equal(insts.Reg(0)))
			Expect(inst.Rn).To(Equal(insts.Reg(1)))
			Expect(inst.Offset).To(Equal(int64(16)))
		})

		// STR W2, [SP, #-4]! -> 0xB81FCFE2
		// Encoding: size=10, opc=00, imm9=-4, pre-index, Rn=31, Rt=2
		It("should decode the pre-index writeback form", func() {
			inst := decoder.Decode(0xB81FCFE2, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpSTR))
			Expect(inst.Flags.W32()).To(BeTrue())
			Expect(inst.Flags.AddrMode()).To(Equal(insts.AMPre))
			Expect(inst.Rn).To(Equal(insts.SP))
			Expect(inst.Offset).To(Equal(int64(-4)))
		})

		// LDUR X0, [X1, #-8] -> 0xF85F8020
		It("should decode the unscaled negative offset", func() {
			inst := decoder.Decode(0xF85F8020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLDR))
			Expect(inst.Flags.AddrMode()).To(Equal(insts.AMOffImm))
			Expect(inst.Offset).To(Equal(int64(-8)))
		})

		// LDRB W0, [X1] -> 0x39400020
		It("should record the byte access size", func() {
			inst := decoder.Decode(0x39400020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLDR))
			Expect(inst.Flags.W32()).To(BeTrue())
			Expect(inst.Flags.Size()).To(Equal(insts.FPSizeB))
		})

		// LDRSW X0, [X1] -> 0xB9800020
		It("should mark sign-extending loads signed without W32", func() {
			inst := decoder.Decode(0xB9800020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLDR))
			Expect(inst.Flags.Signed()).To(BeTrue())
			Expect(inst.Flags.W32()).To(BeFalse())
			Expect(inst.Flags.Size()).To(Equal(insts.FPSizeS))
		})

		// PRFM PLDL1KEEP, [X1] -> 0xF9800020
		It("should keep the raw prefetch operation in Rd", func() {
			inst := decoder.Decode(0xF9800020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpPRFM))
			Expect(inst.Rd).To(Equal(insts.Reg(0)))
		})

		// LDTR X0, [X1] -> 0xF8400820
		It("should reject the unprivileged forms with a reason", func() {
			inst := decoder.Decode(0xF8400820, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpError))
			Expect(inst.Error).To(ContainSubstring("unprivileged"))
		})
	})

	Describe("Register with register offset", func() {
		// LDR X1, [X2, X3, LSL #3] -> 0xF8637841
		// Encoding: size=11, opc=01, Rm=3, option=011, S=1, Rn=2, Rt=1
		It("should decode the shifted register offset", func() {
			inst := decoder.Decode(0xF8637841, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLDR))
			Expect(inst.Flags.AddrMode()).To(Equal(insts.AMOffReg))
			Expect(inst.Rm).To(Equal(insts.Reg(3)))
			Expect(inst.Aux).To(Equal(insts.ExtendOp{Type: insts.ExtUXTX, LSL: 3}))
		})
	})

	Describe("Literal", func() {
		// LDR X0, #+8 -> 0x58000040
		It("should materialize the literal target address", func() {
			inst := decoder.Decode(0x58000040, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLDR))
			Expect(inst.Flags.AddrMode()).To(Equal(insts.AMLiteral))
			Expect(inst.Offset).To(Equal(int64(8)))
			Expect(inst.Imm).To(Equal(uint64(0x4008)))
		})
	})

	Describe("Pair", func() {
		// STP X0, X1, [SP, #16] -> 0xA90107E0
		It("should decode STP with the scaled pair offset", func() {
			inst := decoder.Decode(0xA90107E0, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpSTP))
			Expect(inst.Flags.AddrMode()).To(Equal(insts.AMOffImm))
			Expect(inst.Rd).To(Equal(insts.Reg(0)))
			Expect(inst.Rt2).To(Equal(insts.Reg(1)))
			Expect(inst.Rn).To(Equal(insts.SP))
			Expect(inst.Offset).To(Equal(int64(16)))
		})

		// LDP X0, X1, [SP], #16 -> 0xA8C107E0
		It("should decode the post-index pair form", func() {
			inst := decoder.Decode(0xA8C107E0, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLDP))
			Expect(inst.Flags.AddrMode()).To(Equal(insts.AMPost))
			Expect(inst.Offset).To(Equal(int64(16)))
		})
	})

	Describe("Exclusive and ordered", func() {
		// LDXR X0, [X1] -> 0xC85F7C20
		It("should decode LDXR with no ordering", func() {
			inst := decoder.Decode(0xC85F7C20, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLDXR))
			Expect(inst.Flags.AddrMode()).To(Equal(insts.AMSimple))
			Expect(inst.Aux).To(Equal(insts.LdStOrder{Rs: insts.ZR}))
		})

		// STLXR W2, X0, [X1] -> 0xC802FC20
		It("should decode STLXR with release ordering and the status register", func() {
			inst := decoder.Decode(0xC802FC20, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpSTXR))
			Expect(inst.Aux).To(Equal(insts.LdStOrder{
				Store: insts.MORelease,
				Rs:    insts.Reg(2),
			}))
		})

		// LDAR X0, [X1] -> 0xC8DFFC20
		It("should decode LDAR as an acquire load", func() {
			inst := decoder.Decode(0xC8DFFC20, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLDR))
			Expect(inst.Aux).To(Equal(insts.LdStOrder{
				Load: insts.MOAcquire,
				Rs:   insts.ZR,
			}))
		})

		// STLR X0, [X1] -> 0xC89FFC20
		It("should decode STLR as a release store", func() {
			inst := decoder.Decode(0xC89FFC20, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpSTR))
			Expect(inst.Aux).To(Equal(insts.LdStOrder{
				Store: insts.MORelease,
				Rs:    insts.ZR,
			}))
		})

		// CAS X2, X0, [X1] -> 0xC8A27C20
		It("should decode CAS with the compare register", func() {
			inst := decoder.Decode(0xC8A27C20, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpCAS))
			Expect(inst.Aux).To(Equal(insts.LdStOrder{Rs: insts.Reg(2)}))
		})
	})

	Describe("Atomic memory operations", func() {
		// LDADD X2, X0, [X1] -> 0xF8220020
		It("should decode LDADD with no ordering", func() {
			inst := decoder.Decode(0xF8220020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLDADD))
			Expect(inst.Flags.AddrMode()).To(Equal(insts.AMSimple))
			Expect(inst.Aux).To(Equal(insts.LdStOrder{Rs: insts.Reg(2)}))
		})

		// LDADDAL X2, X0, [X1] -> 0xF8E20020
		It("should decode LDADDAL with both orderings", func() {
			inst := decoder.Decode(0xF8E20020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLDADD))
			Expect(inst.Aux).To(Equal(insts.LdStOrder{
				Load:  insts.MOAcquire,
				Store: insts.MORelease,
				Rs:    insts.Reg(2),
			}))
		})

		// SWP X2, X0, [X1] -> 0xF8228020
		It("should decode SWP", func() {
			inst := decoder.Decode(0xF8228020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpSWP))
		})
	})

	Describe("SIMD structure loads and stores", func() {
		// LD1 {V0.16B}, [X1] -> 0x4C407020
		It("should decode LD1 with a single structure", func() {
			inst := decoder.Decode(0x4C407020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLD1Mult))
			Expect(inst.Vec).To(Equal(insts.VA16B))
			Expect(inst.Rn).To(Equal(insts.Reg(1)))
			Expect(inst.Aux).To(Equal(insts.SIMDLdSt{NReg: 1}))
		})

		// LD4 {V0.8H-V3.8H}, [X1], #64 -> 0x4CDF0420
		It("should decode the post-index immediate of LD4", func() {
			inst := decoder.Decode(0x4CDF0420, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLD4Mult))
			Expect(inst.Vec).To(Equal(insts.VA8H))
			Expect(inst.Flags.AddrMode()).To(Equal(insts.AMPost))
			Expect(inst.Aux).To(Equal(insts.SIMDLdSt{NReg: 4, Offset: 64}))
		})

		// LD1R {V0.4S}, [X1] -> 0x4D40C820
		It("should decode the replicating load", func() {
			inst := decoder.Decode(0x4D40C820, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpLD1R))
			Expect(inst.Vec).To(Equal(insts.VA4S))
		})

		// ST1 {V0.S}[1], [X1] -> 0x0D009020
		It("should decode the single-lane store with its index", func() {
			inst := decoder.Decode(0x0D009020, 0x4000)

			Expect(inst.Op).To(Equal(insts.OpST1Single))
			Expect(inst.Aux).To(Equal(insts.SIMDLdSt{NReg: 1, Index: 1}))
		})
	})
})
