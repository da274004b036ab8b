package insts

import "fmt"

// Op represents an A64 opcode. The values are ordered and grouped according
// to the Top-level Encodings of the A64 instruction set (data processing
// immediate, branches/exception/system, data processing register, loads and
// stores, scalar FP and SIMD).
//
// Immediate and register variants generally have different opcodes (e.g.
// OpADDImm, OpADDShifted, OpADDExt), but the marker only appears where
// disambiguation is needed (ADR has no register variant, so there is no
// OpADRImm). Aliases have opcodes of their own, selected by predicates over
// the decoded fields: a consumer gets the architecturally documented
// mnemonic without re-deriving the predicate.
//
// Where variants of an instruction have regular structure they share one
// opcode. Conditional branches like B.EQ and B.PL are all OpBCond with the
// condition in Inst.Flags; the addressing modes of loads and stores are
// folded into the attributes word the same way.
type Op uint16

// A64 opcodes.
const (
	// OpUnknown marks a word that decodes to no defined instruction.
	// Inst.Imm carries the raw word for diagnostics.
	OpUnknown Op = iota
	// OpError marks a recognized but invalid encoding; Inst.Error carries
	// a human-readable reason.
	OpError
	// OpUDF is the permanently undefined instruction. Executing it raises
	// an Undefined Instruction exception, which makes it a real,
	// decodable instruction rather than a decode failure.
	OpUDF

	// Data processing - immediate

	OpADR
	OpADRP
	OpADDImm
	OpCMNImm // ADDS alias (Rd == ZR && set flags)
	OpMOVSP  // ADD (imm) alias (shift == 0 && imm12 == 0 && (Rd or Rn is SP))
	OpSUBImm
	OpCMPImm // SUBS alias (Rd == ZR && set flags)
	OpANDImm
	OpORRImm
	OpEORImm
	OpTSTImm // ANDS alias (Rd == ZR)
	OpMOVK
	// OpMOVImm is a synthetic opcode comprising MOV (bitmask immediate),
	// MOV (wide immediate, MOVZ) and MOV (inverted wide immediate, MOVN):
	// all moves whose result can be precalculated. Consumers care about
	// the resulting immediate, not which encoding produced it.
	OpMOVImm
	OpSBFM // never surfaces; always decoded to an alias
	OpASRImm
	OpSBFIZ
	OpSBFX
	OpBFM // never surfaces; always decoded to an alias
	OpBFC
	OpBFI
	OpBFXIL
	OpUBFM // never surfaces; always decoded to an alias
	OpLSLImm
	OpLSRImm
	OpUBFIZ
	OpUBFX
	// OpEXTEND is a synthetic opcode comprising the SXTB, SXTH, SXTW,
	// UXTB and UXTH aliases of SBFM/UBFM. The kind of extension is in
	// the ExtendOp payload.
	OpEXTEND
	OpEXTR
	OpRORImm // EXTR alias (Rm == Rn)

	// Branches, exception generating and system instructions

	OpBCond
	OpSVC
	OpHVC
	OpSMC
	OpBRK
	OpHLT
	OpDCPS1
	OpDCPS2
	OpDCPS3
	// OpHINT covers every allocated hint (NOP, YIELD, WFE, ...); the
	// specific hint is deliberately not preserved.
	OpHINT
	OpCLREX
	OpDMB
	OpISB
	OpSB
	OpDSB
	OpSSBB
	OpPSSBB
	OpMSRImm // MSR <pstatefield>, #imm -- MSRImm payload
	OpCFINV
	OpXAFlag
	OpAXFlag
	OpSYS  // SYS #op1, Cn, Cm, #op2(, Xt) -- SysOp payload, Xt in Rd
	OpSYSL // SYSL Xt, #op1, Cn, Cm, #op2 -- SysOp payload, Xt in Rd
	OpMSRReg
	OpMRS
	OpBR
	OpBLR
	OpRET
	OpB
	OpBL
	OpCBZ
	OpCBNZ
	OpTBZ
	OpTBNZ

	// Data processing - register

	OpUDIV
	OpSDIV
	OpLSLV
	OpLSRV
	OpASRV
	OpRORV
	OpCRC32B
	OpCRC32H
	OpCRC32W
	OpCRC32X
	OpCRC32CB
	OpCRC32CH
	OpCRC32CW
	OpCRC32CX
	OpSUBP
	OpRBIT
	OpREV16
	OpREV
	OpREV32
	OpCLZ
	OpCLS
	OpANDShifted
	OpTSTShifted // ANDS alias (Rd == ZR)
	OpBIC
	OpORRShifted
	OpMOVReg // ORR alias (shift == 0 && amount == 0 && Rn == ZR)
	OpORN
	OpMVN // ORN alias (Rn == ZR)
	OpEORShifted
	OpEON
	OpADDShifted
	OpCMNShifted // ADDS alias (Rd == ZR && set flags)
	OpSUBShifted
	OpNEG        // SUB alias (Rn == ZR)
	OpCMPShifted // SUBS alias (Rd == ZR && set flags)
	OpADDExt
	OpCMNExt // ADDS alias (Rd == ZR && set flags)
	OpSUBExt
	OpCMPExt // SUBS alias (Rd == ZR && set flags)
	OpADC
	OpSBC
	OpNGC // SBC alias (Rn == ZR)
	OpRMIF
	OpSETF8
	OpSETF16
	OpCCMNReg
	OpCCMPReg
	OpCCMNImm
	OpCCMPImm
	OpCSEL
	OpCSINC
	OpCINC // CSINC alias (cond inverted; Rm == Rn != ZR)
	OpCSET // CSINC alias (cond inverted; Rm == Rn == ZR)
	OpCSINV
	OpCINV  // CSINV alias (cond inverted; Rm == Rn != ZR)
	OpCSETM // CSINV alias (cond inverted; Rm == Rn == ZR)
	OpCSNEG
	OpCNEG // CSNEG alias (cond inverted; Rm == Rn)
	OpMADD
	OpMUL // MADD alias (Ra == ZR)
	OpMSUB
	OpMNEG // MSUB alias (Ra == ZR)
	OpSMADDL
	OpSMULL // SMADDL alias (Ra == ZR)
	OpSMSUBL
	OpSMNEGL // SMSUBL alias (Ra == ZR)
	OpSMULH
	OpUMADDL
	OpUMULL // UMADDL alias (Ra == ZR)
	OpUMSUBL
	OpUMNEGL // UMSUBL alias (Ra == ZR)
	OpUMULH

	// Loads and stores. There are few opcodes here because access size,
	// sign extension and addressing mode are folded into the attributes
	// word, leveraging the regular structure of the encodings.

	OpLD1Mult
	OpST1Mult
	OpLD2Mult
	OpST2Mult
	OpLD3Mult
	OpST3Mult
	OpLD4Mult
	OpST4Mult
	OpLD1Single
	OpST1Single
	OpLD2Single
	OpST2Single
	OpLD3Single
	OpST3Single
	OpLD4Single
	OpST4Single
	OpLD1R
	OpLD2R
	OpLD3R
	OpLD4R
	OpLDXR // includes load-acquire variants (LDAXR)
	OpSTXR // includes store-release variants (STLXR)
	OpLDXP
	OpSTXP
	OpLDAPR
	OpLDNP
	OpSTNP
	OpLDNPFP
	OpSTNPFP
	OpLDP
	OpSTP
	OpLDPFP
	OpSTPFP
	OpLDR // LDR, LDAR, LDLAR, LDUR
	OpSTR // STR, STLR, STLLR, STUR
	OpLDRFP
	OpSTRFP
	// OpPRFM covers the prefetch forms; the prefetch operation number is
	// stored in Rd, which for PRFM is not a register operand.
	OpPRFM
	// Atomic memory operations. Load-acquire/store-release semantics are
	// in the LdStOrder payload. There are no ST* aliases: a pure
	// side-effect LDADD discards the old value by targeting the zero
	// register, and the decoder records that literal destination.
	OpLDADD
	OpLDCLR
	OpLDEOR
	OpLDSET
	OpLDSMAX
	OpLDSMIN
	OpLDUMAX
	OpLDUMIN
	OpSWP
	OpCAS
	OpCASP

	// Scalar floating-point and SIMD. Ordered by functionality rather
	// than by encoding page, because the top-level encoding order splits
	// variants of the same instruction.

	OpFCVTGPR // Sca(fp) -> GPR(int|fixed); FCvt payload
	OpFCVTVec // Vec(fp) -> Vec(int|fixed)
	OpCVTF    // GPR(int|fixed) -> Sca(fp)
	OpCVTFVec // Vec(int|fixed) -> Vec(fp)
	OpFJCVTZS // Sca(f32) -> GPR(i32); JavaScript convert
	OpFRINT
	OpFRINTVec
	OpFRINTX // exact: raises Inexact when the result differs
	OpFRINTXVec
	OpFCVTH // convert precision to half
	OpFCVTS // convert precision to single
	OpFCVTD // convert precision to double
	OpFCVTL // extend to higher precision (vector)
	OpFCVTN // narrow to lower precision (vector)
	OpFCVTXN
	OpFABS
	OpFNEG
	OpFSQRT
	OpFMUL
	OpFMULX
	OpFDIV
	OpFADD
	OpFSUB
	OpFMAX
	OpFMAXNM
	OpFMIN
	OpFMINNM
	OpFRECPE
	OpFRECPS
	OpFRECPX
	OpFRSQRTE
	OpFRSQRTS
	OpFNMUL
	OpFMADD
	OpFMSUB
	OpFNMADD
	OpFNMSUB
	OpFCMPReg
	OpFCMPZero
	OpFCMPEReg
	OpFCMPEZero
	OpFCCMP
	OpFCCMPE
	OpFCSEL
	OpFMOVVec2GPR // GPR <- SIMD&FP register, no conversion
	OpFMOVGPR2Vec // GPR -> SIMD&FP register, no conversion
	OpFMOVTop2GPR // GPR <- top half of 128-bit register
	OpFMOVGPR2Top // GPR -> top half of 128-bit register
	OpFMOVReg     // SIMD&FP <-> SIMD&FP
	OpFMOVImm     // SIMD&FP <- 8-bit float immediate
	OpFMOVVec     // vector <- 8-bit float immediate, replicated to all lanes
	OpFCMEQReg
	OpFCMEQZero
	OpFCMGEReg
	OpFCMGEZero
	OpFCMGTReg
	OpFCMGTZero
	OpFCMLEZero
	OpFCMLTZero
	OpFACGE
	OpFACGT
	OpFABSVec
	OpFABDVec
	OpFNEGVec
	OpFSQRTVec
	OpFMULElem
	OpFMULVec
	OpFMULXElem
	OpFMULXVec
	OpFDIVVec
	OpFADDVec
	OpFCADD // complex add; CmplxElem payload carries the rotation
	OpFSUBVec
	OpFMAXVec
	OpFMAXNMVec
	OpFMINVec
	OpFMINNMVec
	OpFRECPEVec
	OpFRECPSVec
	OpFRSQRTEVec
	OpFRSQRTSVec
	OpFMLAElem
	OpFMLAVec
	OpFMLALElem
	OpFMLALVec
	OpFMLAL2Elem
	OpFMLAL2Vec
	OpFCMLAElem // CmplxElem payload carries index and rotation
	OpFCMLAVec
	OpFMLSElem
	OpFMLSVec
	OpFMLSLElem
	OpFMLSLVec
	OpFMLSL2Elem
	OpFMLSL2Vec
	OpFADDP
	OpFADDPVec
	OpFMAXP
	OpFMAXPVec
	OpFMAXV
	OpFMAXNMP
	OpFMAXNMPVec
	OpFMAXNMV
	OpFMINP
	OpFMINPVec
	OpFMINV
	OpFMINNMP
	OpFMINNMPVec
	OpFMINNMV
	OpANDVec
	OpBCAX // ARMv8.2-SHA
	OpBICVecImm
	OpBICVecReg
	OpBIF
	OpBIT
	OpBSL
	OpCLSVec
	OpCLZVec
	OpCNT
	OpEORVec
	OpEOR3 // ARMv8.2-SHA
	OpNOTVec
	OpORNVec
	OpORRVecImm
	OpORRVecReg
	OpMOVVec // ORR (vector, register) alias (Rm == Rn)
	OpRAX1   // ARMv8.2-SHA
	OpRBITVec
	OpREV16Vec
	OpREV32Vec
	OpREV64Vec
	OpSHLImm
	OpSHLReg // SSHL, USHL, SRSHL, URSHL
	OpSHLL   // SSHLL, USHLL
	OpSHR    // SSHR, USHR, SRSHR, URSHR
	OpSHRN   // SHRN, RSHRN
	OpSRA    // SSRA, USRA, SRSRA, URSRA
	OpSLI
	OpSRI
	OpXAR // ARMv8.2-SHA
	OpDUPElem
	OpDUPGPR
	OpEXT
	OpINSElem // InsElem payload carries both lane indices
	OpINSGPR
	OpMOVI // includes MVNI
	OpSMOV
	OpUMOV
	OpTBL // Inst.Imm holds the table register count (1-4)
	OpTBX
	OpTRN1
	OpTRN2
	OpUZP1
	OpUZP2
	OpXTN
	OpZIP1
	OpZIP2
	OpCMEQReg
	OpCMEQZero
	OpCMGEReg
	OpCMGEZero
	OpCMGTReg
	OpCMGTZero
	OpCMHIReg
	OpCMHSReg
	OpCMLEZero
	OpCMLTZero
	OpCMTST
	// SIMD integer computation. Signedness (SABD vs UABD) is in
	// FlagSigned, rounding vs truncating (SRSHL vs SSHL) in FlagRound.
	OpABSVec
	OpABD
	OpABDL
	OpABA
	OpABAL
	OpNEGVec
	OpMULElem
	OpMULVec
	OpMULLElem
	OpMULLVec
	OpADDVec
	OpADDHN
	OpADDL
	OpADDW
	OpHADD
	OpSUBVec
	OpSUBHN
	OpSUBL
	OpSUBW
	OpHSUB
	OpMAXVec
	OpMINVec
	OpDOTElem
	OpDOTVec
	OpURECPE
	OpURSQRTE
	OpMLAElem
	OpMLAVec
	OpMLSElem
	OpMLSVec
	OpMLALElem // SMLAL, UMLAL
	OpMLALVec
	OpMLSLElem // SMLSL, UMLSL
	OpMLSLVec
	OpADDP // scalar: Dd <- Vn.d[1] + Vn.d[0]
	OpADDPVec
	OpADDV
	OpADALP
	OpADDLP
	OpADDLV
	OpMAXP
	OpMAXV
	OpMINP
	OpMINV
	OpQADD // SQADD, UQADD
	OpQABS
	OpSUQADD
	OpUSQADD
	OpQSHLImm
	OpQSHLReg
	OpQSHRN
	OpQSUB
	OpQXTN
	OpSQABS
	OpSQNEG
	OpSQDMLALElem
	OpSQDMLALVec
	OpSQDMLSLElem
	OpSQDMLSLVec
	OpSQDMULHElem // SQDMULH, SQRDMULH
	OpSQDMULHVec
	OpSQDMULLElem
	OpSQDMULLVec
	OpSQRDMLAHElem
	OpSQRDMLAHVec
	OpSQRDMLSHElem
	OpSQRDMLSHVec
	OpSQSHLU
	OpSQSHRUN // SQSHRUN, SQRSHRUN
	OpSQXTUN
	OpPMUL
	OpPMULL

	// NumOps is the number of opcodes; used for exhaustiveness checks.
	NumOps
)

// String returns the opcode's name.
func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint16(op))
}
