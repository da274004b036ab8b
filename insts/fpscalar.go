package insts

// decodeFPSIMD decodes the scalar floating-point and SIMD class.
func (d *Decoder) decodeFPSIMD(word uint32, inst *Inst) {
	switch {
	case word>>24 == 0xCE:
		d.decodeSHA3(word, inst)
	case bit(word, 30) == 0 && bit(word, 29) == 0 && field(word, 28, 24) == 0b11110:
		d.decodeScalarFP(word, inst)
	case field(word, 31, 29) == 0b000 && field(word, 28, 24) == 0b11111:
		d.decodeFP3Source(word, inst)
	case bit(word, 31) == 0 && field(word, 28, 24) == 0b01110:
		d.decodeSIMDCore(word, inst, false)
	case field(word, 31, 30) == 0b01 && field(word, 28, 24) == 0b11110:
		d.decodeSIMDCore(word, inst, true)
	case bit(word, 31) == 0 && field(word, 28, 24) == 0b01111:
		d.decodeSIMDImmOrElem(word, inst, false)
	case field(word, 31, 30) == 0b01 && field(word, 28, 24) == 0b11111:
		d.decodeSIMDImmOrElem(word, inst, true)
	default:
		d.unknown(word, inst)
	}
}

// decodeSHA3 decodes the SHA3 sliver at 0xCE: EOR3, BCAX, RAX1, and XAR.
// Format: 11001110 | op | Rm | ... | Rn | Rd
func (d *Decoder) decodeSHA3(word uint32, inst *Inst) {
	op := field(word, 23, 21)
	inst.Rd = regFP(field(word, 4, 0))
	inst.Rn = regFP(field(word, 9, 5))
	inst.Rm = regFP(field(word, 20, 16))

	switch {
	case op == 0b000 && bit(word, 15) == 0:
		inst.Op = OpEOR3
		inst.Ra = regFP(field(word, 14, 10))
		inst.Vec = VA16B
	case op == 0b001 && bit(word, 15) == 0:
		inst.Op = OpBCAX
		inst.Ra = regFP(field(word, 14, 10))
		inst.Vec = VA16B
	case op == 0b011 && field(word, 15, 10) == 0b100011:
		inst.Op = OpRAX1
		inst.Vec = VA2D
	case op == 0b100:
		inst.Op = OpXAR
		inst.Imm = uint64(field(word, 15, 10))
		inst.Vec = VA2D
	default:
		d.unknown(word, inst)
	}
}

// fpPrec maps the scalar FP "type" field to a precision; FPSizeB marks the
// reserved encoding.
func fpPrec(ftype uint32) FPSize {
	return [4]FPSize{FPSizeS, FPSizeD, FPSizeB, FPSizeH}[ftype]
}

// decodeScalarFP decodes the scalar floating-point data-processing group
// and the float<->integer transfers.
// Format: M | 0 | S | 11110 | type | ...
func (d *Decoder) decodeScalarFP(word uint32, inst *Inst) {
	ftype := field(word, 23, 22)

	if bit(word, 21) == 0 {
		d.decodeFPFixedConvert(word, ftype, inst)
		return
	}
	if field(word, 15, 10) == 0b000000 {
		d.decodeFPIntConvert(word, ftype, inst)
		return
	}
	// Everything below has no sf bit; bit 31 must be clear.
	if bit(word, 31) != 0 || ftype == 0b10 {
		d.unknown(word, inst)
		return
	}
	inst.Prec = fpPrec(ftype)
	inst.Rd = regFP(field(word, 4, 0))
	inst.Rn = regFP(field(word, 9, 5))

	switch {
	case field(word, 14, 10) == 0b10000:
		d.decodeFP1Source(word, inst)
	case field(word, 13, 10) == 0b1000:
		d.decodeFPCompare(word, inst)
	case field(word, 12, 10) == 0b100:
		// FMOV (scalar, immediate)
		if field(word, 9, 5) != 0 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpFMOVImm
		inst.Rn = ZR
		inst.FImm = vfpExpandImm(field(word, 20, 13))
	case field(word, 11, 10) == 0b01:
		// FCCMP/FCCMPE
		if bit(word, 4) == 0 {
			inst.Op = OpFCCMP
		} else {
			inst.Op = OpFCCMPE
		}
		inst.Rd = ZR
		inst.Rm = regFP(field(word, 20, 16))
		inst.Flags |= condFlags(Cond(field(word, 15, 12)))
		inst.Aux = CondCmp{NZCV: uint8(field(word, 3, 0))}
	case field(word, 11, 10) == 0b10:
		d.decodeFP2Source(word, inst)
	default: // 0b11
		inst.Op = OpFCSEL
		inst.Rm = regFP(field(word, 20, 16))
		inst.Flags |= condFlags(Cond(field(word, 15, 12)))
	}
}

// decodeFPIntConvert decodes the float<->integer conversions and register
// transfers (FCVT*, SCVTF/UCVTF, FMOV to/from general registers, FJCVTZS).
// Format: sf | 0 | S | 11110 | type | 1 | rmode | opcode | 000000 | Rn | Rd
func (d *Decoder) decodeFPIntConvert(word, ftype uint32, inst *Inst) {
	sf := bit(word, 31)
	rmode := field(word, 20, 19)
	opcode := field(word, 18, 16)
	rn := field(word, 9, 5)
	rd := field(word, 4, 0)

	inst.Flags = flagsW32(sf)
	inst.Prec = fpPrec(ftype)

	// toGPR is set for conversions/moves whose destination is a general
	// register; the remainder go the other way.
	toGPR := true
	var mode FPRounding
	switch rmode<<3 | opcode {
	case 0b00_000, 0b00_001:
		inst.Op, mode = OpFCVTGPR, FPRTieEven
	case 0b00_100, 0b00_101:
		inst.Op, mode = OpFCVTGPR, FPRTieAway
	case 0b01_000, 0b01_001:
		inst.Op, mode = OpFCVTGPR, FPRPosInf
	case 0b10_000, 0b10_001:
		inst.Op, mode = OpFCVTGPR, FPRNegInf
	case 0b11_000, 0b11_001:
		inst.Op, mode = OpFCVTGPR, FPRZero
	case 0b00_010, 0b00_011:
		inst.Op, toGPR = OpCVTF, false
	case 0b00_110, 0b00_111:
		// FMOV moves a whole register, so the general register width
		// must match the FP precision; half precision fits either way.
		ok := ftype == 0b11 ||
			(sf == 0 && ftype == 0b00) ||
			(sf == 1 && ftype == 0b01)
		if !ok {
			d.unknown(word, inst)
			return
		}
		if opcode == 0b110 {
			inst.Op = OpFMOVVec2GPR
		} else {
			inst.Op, toGPR = OpFMOVGPR2Vec, false
		}
	case 0b01_110:
		if ftype != 0b10 {
			d.unknown(word, inst)
			return
		}
		inst.Op, inst.Prec = OpFMOVTop2GPR, FPSizeQ
	case 0b01_111:
		if ftype != 0b10 {
			d.unknown(word, inst)
			return
		}
		inst.Op, inst.Prec, toGPR = OpFMOVGPR2Top, FPSizeQ, false
	case 0b11_110:
		if sf != 0 || ftype != 0b01 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpFJCVTZS
	default:
		d.unknown(word, inst)
		return
	}
	if inst.Prec == FPSizeB {
		d.unknown(word, inst)
		return
	}
	if inst.Op == OpFCVTGPR || inst.Op == OpCVTF {
		inst.Aux = FCvt{Mode: mode, Signed: opcode&1 == 0}
	}
	if toGPR {
		inst.Rd = regZR(rd)
		inst.Rn = regFP(rn)
	} else {
		inst.Rd = regFP(rd)
		inst.Rn = regZR(rn)
	}
}

// decodeFPFixedConvert decodes the float<->fixed-point conversions, which
// carry an explicit fractional-bits count.
// Format: sf | 0 | S | 11110 | type | 0 | rmode | opcode | scale | Rn | Rd
func (d *Decoder) decodeFPFixedConvert(word, ftype uint32, inst *Inst) {
	sf := bit(word, 31)
	rmode := field(word, 20, 19)
	opcode := field(word, 18, 16)
	fbits := 64 - field(word, 15, 10)

	if ftype == 0b10 {
		d.unknown(word, inst)
		return
	}
	if sf == 0 && fbits > 32 {
		d.invalid(inst, "fixed-point convert: %d fractional bits in 32-bit variant", fbits)
		return
	}

	inst.Flags = flagsW32(sf)
	inst.Prec = fpPrec(ftype)
	signed := opcode&1 == 0
	switch rmode<<3 | opcode {
	case 0b11_000, 0b11_001: // FCVTZS/FCVTZU (fixed-point)
		inst.Op = OpFCVTGPR
		inst.Aux = FCvt{Mode: FPRZero, FBits: uint8(fbits), Signed: signed}
		inst.Rd = regZR(field(word, 4, 0))
		inst.Rn = regFP(field(word, 9, 5))
	case 0b00_010, 0b00_011: // SCVTF/UCVTF (fixed-point)
		inst.Op = OpCVTF
		inst.Aux = FCvt{FBits: uint8(fbits), Signed: signed}
		inst.Rd = regFP(field(word, 4, 0))
		inst.Rn = regZR(field(word, 9, 5))
	default:
		d.unknown(word, inst)
	}
}

// decodeFP1Source decodes the one-source scalar FP group: moves, absolute
// value, negation, square root, precision conversion, and round-to-integral.
// Format: 00011110 | type | 1 | opcode | 10000 | Rn | Rd
func (d *Decoder) decodeFP1Source(word uint32, inst *Inst) {
	switch opcode := field(word, 20, 15); opcode {
	case 0b000000:
		inst.Op = OpFMOVReg
	case 0b000001:
		inst.Op = OpFABS
	case 0b000010:
		inst.Op = OpFNEG
	case 0b000011:
		inst.Op = OpFSQRT
	case 0b000100:
		inst.Op = OpFCVTS
	case 0b000101:
		inst.Op = OpFCVTD
	case 0b000111:
		inst.Op = OpFCVTH
	case 0b001000, 0b001001, 0b001010, 0b001011, 0b001100, 0b001110, 0b001111:
		modes := [8]FPRounding{
			FPRTieEven, FPRPosInf, FPRNegInf, FPRZero,
			FPRTieAway, 0, FPRCurrent, FPRCurrent,
		}
		if opcode&0b111 == 0b110 {
			inst.Op = OpFRINTX // exact
		} else {
			inst.Op = OpFRINT
		}
		inst.Aux = FRound{Mode: modes[opcode&0b111]}
	case 0b010000, 0b010001, 0b010010, 0b010011:
		// FRINT32Z/FRINT32X/FRINT64Z/FRINT64X
		if opcode&1 == 0 {
			inst.Op = OpFRINT
			inst.Aux = FRound{Mode: FPRZero, Bits: 32 << (opcode >> 1 & 1)}
		} else {
			inst.Op = OpFRINTX
			inst.Aux = FRound{Mode: FPRCurrent, Bits: 32 << (opcode >> 1 & 1)}
		}
	default:
		d.unknown(word, inst)
	}
}

// decodeFPCompare decodes FCMP/FCMPE against a register or against zero.
// Format: 00011110 | type | 1 | Rm | op | 1000 | Rn | opcode2
func (d *Decoder) decodeFPCompare(word uint32, inst *Inst) {
	if field(word, 15, 14) != 0 {
		d.unknown(word, inst)
		return
	}
	inst.Rd = ZR
	switch field(word, 4, 0) {
	case 0b00000:
		inst.Op = OpFCMPReg
		inst.Rm = regFP(field(word, 20, 16))
	case 0b01000:
		inst.Op = OpFCMPZero
	case 0b10000:
		inst.Op = OpFCMPEReg
		inst.Rm = regFP(field(word, 20, 16))
	case 0b11000:
		inst.Op = OpFCMPEZero
	default:
		d.unknown(word, inst)
	}
}

// decodeFP2Source decodes the two-source scalar FP arithmetic.
// Format: 00011110 | type | 1 | Rm | opcode | 10 | Rn | Rd
func (d *Decoder) decodeFP2Source(word uint32, inst *Inst) {
	ops := [16]Op{
		OpFMUL, OpFDIV, OpFADD, OpFSUB,
		OpFMAX, OpFMIN, OpFMAXNM, OpFMINNM,
		OpFNMUL,
	}
	opcode := field(word, 15, 12)
	if opcode > 0b1000 {
		d.unknown(word, inst)
		return
	}
	inst.Op = ops[opcode]
	inst.Rm = regFP(field(word, 20, 16))
}

// decodeFP3Source decodes the fused multiply-add family.
// Format: 00011111 | type | o1 | Rm | o0 | Ra | Rn | Rd
func (d *Decoder) decodeFP3Source(word uint32, inst *Inst) {
	ftype := field(word, 23, 22)
	if ftype == 0b10 {
		d.unknown(word, inst)
		return
	}
	inst.Op = [4]Op{OpFMADD, OpFMSUB, OpFNMADD, OpFNMSUB}[bit(word, 21)<<1|bit(word, 15)]
	inst.Prec = fpPrec(ftype)
	inst.Rd = regFP(field(word, 4, 0))
	inst.Rn = regFP(field(word, 9, 5))
	inst.Rm = regFP(field(word, 20, 16))
	inst.Ra = regFP(field(word, 14, 10))
}
