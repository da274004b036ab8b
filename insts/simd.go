package insts

import "math/bits"

// decodeSIMDCore decodes the shared vector/scalar SIMD spine: three-same,
// three-different, two-register misc, across-lanes (vector) or pairwise
// (scalar), and the vector-only copy/table/permute/extract groups.
func (d *Decoder) decodeSIMDCore(word uint32, inst *Inst, scalar bool) {
	if scalar {
		inst.Flags |= FlagScalar
	}
	inst.Rd = regFP(field(word, 4, 0))
	inst.Rn = regFP(field(word, 9, 5))

	if bit(word, 21) == 1 {
		switch {
		case bit(word, 10) == 1:
			d.decodeSIMD3Same(word, inst, scalar)
		case field(word, 11, 10) == 0b00:
			d.decodeSIMD3Diff(word, inst, scalar)
		case field(word, 20, 17) == 0b0000:
			d.decodeSIMD2Misc(word, inst, scalar)
		case field(word, 20, 17) == 0b1000:
			if scalar {
				d.decodeSIMDPairwise(word, inst)
			} else {
				d.decodeSIMDAcross(word, inst)
			}
		default:
			d.unknown(word, inst)
		}
		return
	}

	if scalar {
		// Scalar DUP (element), the only scalar group without bit 21.
		if bit(word, 29) == 0 && field(word, 23, 21) == 0 &&
			bit(word, 15) == 0 && field(word, 14, 10) == 0b00001 {
			d.decodeSIMDCopy(word, inst, true)
		} else {
			d.unknown(word, inst)
		}
		return
	}

	u := bit(word, 29)
	size := field(word, 23, 22)
	switch {
	case field(word, 23, 21) == 0 && bit(word, 15) == 0 && bit(word, 10) == 1:
		d.decodeSIMDCopy(word, inst, false)
	case u == 0 && size == 0b00 && bit(word, 15) == 0 && field(word, 11, 10) == 0b00:
		// TBL/TBX; Imm holds the table length in registers.
		if bit(word, 12) == 0 {
			inst.Op = OpTBL
		} else {
			inst.Op = OpTBX
		}
		inst.Rm = regFP(field(word, 20, 16))
		inst.Imm = uint64(field(word, 14, 13)) + 1
		inst.Vec = arrangement(FPSizeB, bit(word, 30))
	case u == 0 && bit(word, 15) == 0 && field(word, 11, 10) == 0b10:
		d.decodeSIMDPermute(word, inst)
	case u == 1 && size == 0b00 && bit(word, 15) == 0 && bit(word, 10) == 0:
		// EXT
		imm4 := field(word, 14, 11)
		if bit(word, 30) == 0 && imm4 >= 8 {
			d.invalid(inst, "EXT: element index %d exceeds the 64-bit vector", imm4)
			return
		}
		inst.Op = OpEXT
		inst.Rm = regFP(field(word, 20, 16))
		inst.Imm = uint64(imm4)
		inst.Vec = arrangement(FPSizeB, bit(word, 30))
	case field(word, 15, 10) == 0b100101 && size == 0b10:
		inst.Op = OpDOTVec
		if u == 0 {
			inst.Flags |= FlagSigned
		}
		inst.Rm = regFP(field(word, 20, 16))
		inst.Vec = arrangement(FPSizeB, bit(word, 30))
	case u == 1 && field(word, 15, 13) == 0b110 && bit(word, 10) == 1:
		// FCMLA (vector)
		inst.Op = OpFCMLAVec
		inst.Rm = regFP(field(word, 20, 16))
		inst.Vec = arrangement(FPSize(size), bit(word, 30))
		inst.Aux = CmplxElem{Rotation: uint16(field(word, 12, 11)) * 90}
	case u == 1 && field(word, 15, 12) == 0b1110 && bit(word, 10) == 1:
		// FCADD (vector)
		inst.Op = OpFCADD
		inst.Rm = regFP(field(word, 20, 16))
		inst.Vec = arrangement(FPSize(size), bit(word, 30))
		inst.Aux = CmplxElem{Rotation: 90 + 180*uint16(bit(word, 12))}
	default:
		d.unknown(word, inst)
	}
}

// vecShape records the element size either as a vector arrangement or as a
// scalar precision.
func (d *Decoder) vecShape(word uint32, inst *Inst, scalar bool, esz FPSize) {
	if scalar {
		inst.Prec = esz
	} else {
		inst.Vec = arrangement(esz, bit(word, 30))
	}
}

// decodeSIMD3Same decodes the three-same group.
// Format: 0/01 | Q/1 | U | 01110 | size | 1 | Rm | opcode | 1 | Rn | Rd
func (d *Decoder) decodeSIMD3Same(word uint32, inst *Inst, scalar bool) {
	u := bit(word, 29)
	size := field(word, 23, 22)
	opcode := field(word, 15, 11)
	signed := Flags(0)
	if u == 0 {
		signed = FlagSigned
	}

	inst.Rm = regFP(field(word, 20, 16))

	if opcode >= 0b11000 {
		d.decodeSIMD3SameFloat(word, u, size, opcode, inst, scalar)
		return
	}
	if opcode == 0b00011 {
		if scalar {
			d.unknown(word, inst)
			return
		}
		d.decodeSIMD3SameLogical(word, u, size, inst)
		return
	}

	d.vecShape(word, inst, scalar, FPSize(size))
	if !scalar && size == 0b11 && bit(word, 30) == 0 {
		d.invalid(inst, "SIMD three-same: 1D arrangement")
		return
	}

	switch opcode {
	case 0b00000:
		inst.Op, inst.Flags = OpHADD, inst.Flags|signed
	case 0b00001:
		inst.Op, inst.Flags = OpQADD, inst.Flags|signed
	case 0b00010:
		inst.Op, inst.Flags = OpHADD, inst.Flags|signed|FlagRound
	case 0b00100:
		inst.Op, inst.Flags = OpHSUB, inst.Flags|signed
	case 0b00101:
		inst.Op, inst.Flags = OpQSUB, inst.Flags|signed
	case 0b00110:
		if u == 0 {
			inst.Op = OpCMGTReg
		} else {
			inst.Op = OpCMHIReg
		}
	case 0b00111:
		if u == 0 {
			inst.Op = OpCMGEReg
		} else {
			inst.Op = OpCMHSReg
		}
	case 0b01000:
		inst.Op, inst.Flags = OpSHLReg, inst.Flags|signed
	case 0b01001:
		inst.Op, inst.Flags = OpQSHLReg, inst.Flags|signed
	case 0b01010:
		inst.Op, inst.Flags = OpSHLReg, inst.Flags|signed|FlagRound
	case 0b01011:
		inst.Op, inst.Flags = OpQSHLReg, inst.Flags|signed|FlagRound
	case 0b01100:
		inst.Op, inst.Flags = OpMAXVec, inst.Flags|signed
	case 0b01101:
		inst.Op, inst.Flags = OpMINVec, inst.Flags|signed
	case 0b01110:
		inst.Op, inst.Flags = OpABD, inst.Flags|signed
	case 0b01111:
		inst.Op, inst.Flags = OpABA, inst.Flags|signed
	case 0b10000:
		if u == 0 {
			inst.Op = OpADDVec
		} else {
			inst.Op = OpSUBVec
		}
	case 0b10001:
		if u == 0 {
			inst.Op = OpCMTST
		} else {
			inst.Op = OpCMEQReg
		}
	case 0b10010:
		if u == 0 {
			inst.Op = OpMLAVec
		} else {
			inst.Op = OpMLSVec
		}
	case 0b10011:
		if u == 0 {
			inst.Op = OpMULVec
		} else {
			inst.Op = OpPMUL
		}
	case 0b10100:
		inst.Op, inst.Flags = OpMAXP, inst.Flags|signed
	case 0b10101:
		inst.Op, inst.Flags = OpMINP, inst.Flags|signed
	case 0b10110:
		inst.Op = OpSQDMULHVec
		if u == 1 {
			inst.Flags |= FlagRound
		}
	case 0b10111:
		if u == 1 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpADDPVec
	}
}

func (d *Decoder) decodeSIMD3SameLogical(word, u, size uint32, inst *Inst) {
	inst.Vec = arrangement(FPSizeB, bit(word, 30))
	if u == 0 {
		switch size {
		case 0b00:
			inst.Op = OpANDVec
		case 0b01:
			inst.Op = OpBICVecReg
		case 0b10:
			if inst.Rm == inst.Rn {
				inst.Op = OpMOVVec
			} else {
				inst.Op = OpORRVecReg
			}
		case 0b11:
			inst.Op = OpORNVec
		}
	} else {
		inst.Op = [4]Op{OpEORVec, OpBSL, OpBIT, OpBIF}[size]
	}
}

func (d *Decoder) decodeSIMD3SameFloat(word, u, size, opcode uint32, inst *Inst, scalar bool) {
	// The widening half-precision multiply-adds overload two slots.
	if u == 0 && opcode == 0b11101 {
		if scalar || size&1 != 0 {
			d.unknown(word, inst)
			return
		}
		if size == 0b00 {
			inst.Op = OpFMLALVec
		} else {
			inst.Op = OpFMLSLVec
		}
		inst.Vec = arrangement(FPSizeH, bit(word, 30))
		return
	}
	if u == 1 && opcode == 0b11001 {
		if scalar || size&1 != 0 {
			d.unknown(word, inst)
			return
		}
		if size == 0b00 {
			inst.Op = OpFMLAL2Vec
		} else {
			inst.Op = OpFMLSL2Vec
		}
		inst.Vec = arrangement(FPSizeH, bit(word, 30))
		return
	}

	esz := FPSizeS
	if bit(word, 22) == 1 {
		esz = FPSizeD
	}
	szHigh := bit(word, 23)

	var op Op
	switch u<<6 | szHigh<<5 | opcode {
	case 0b0_0_11000:
		op = OpFMAXNMVec
	case 0b0_0_11001:
		op = OpFMLAVec
	case 0b0_0_11010:
		op = OpFADDVec
	case 0b0_0_11011:
		op = OpFMULXVec
	case 0b0_0_11100:
		op = OpFCMEQReg
	case 0b0_0_11110:
		op = OpFMAXVec
	case 0b0_0_11111:
		op = OpFRECPSVec
	case 0b0_1_11000:
		op = OpFMINNMVec
	case 0b0_1_11001:
		op = OpFMLSVec
	case 0b0_1_11010:
		op = OpFSUBVec
	case 0b0_1_11110:
		op = OpFMINVec
	case 0b0_1_11111:
		op = OpFRSQRTSVec
	case 0b1_0_11000:
		op = OpFMAXNMPVec
	case 0b1_0_11010:
		op = OpFADDPVec
	case 0b1_0_11011:
		op = OpFMULVec
	case 0b1_0_11100:
		op = OpFCMGEReg
	case 0b1_0_11101:
		op = OpFACGE
	case 0b1_0_11110:
		op = OpFMAXPVec
	case 0b1_0_11111:
		op = OpFDIVVec
	case 0b1_1_11000:
		op = OpFMINNMPVec
	case 0b1_1_11010:
		op = OpFABDVec
	case 0b1_1_11100:
		op = OpFCMGTReg
	case 0b1_1_11101:
		op = OpFACGT
	case 0b1_1_11110:
		op = OpFMINPVec
	default:
		d.unknown(word, inst)
		return
	}
	inst.Op = op
	d.vecShape(word, inst, scalar, esz)
}

// decodeSIMD3Diff decodes the three-different (widening/narrowing) group.
// Format: 0 | Q | U | 01110 | size | 1 | Rm | opcode | 00 | Rn | Rd
func (d *Decoder) decodeSIMD3Diff(word uint32, inst *Inst, scalar bool) {
	u := bit(word, 29)
	size := field(word, 23, 22)
	opcode := field(word, 15, 12)
	signed := Flags(0)
	if u == 0 {
		signed = FlagSigned
	}

	inst.Rm = regFP(field(word, 20, 16))
	d.vecShape(word, inst, scalar, FPSize(size))

	if scalar {
		// Only the saturating doubling ops have scalar forms.
		if u != 0 {
			d.unknown(word, inst)
			return
		}
		switch opcode {
		case 0b1001:
			inst.Op = OpSQDMLALVec
		case 0b1011:
			inst.Op = OpSQDMLSLVec
		case 0b1101:
			inst.Op = OpSQDMULLVec
		default:
			d.unknown(word, inst)
		}
		return
	}

	switch opcode {
	case 0b0000:
		inst.Op, inst.Flags = OpADDL, inst.Flags|signed
	case 0b0001:
		inst.Op, inst.Flags = OpADDW, inst.Flags|signed
	case 0b0010:
		inst.Op, inst.Flags = OpSUBL, inst.Flags|signed
	case 0b0011:
		inst.Op, inst.Flags = OpSUBW, inst.Flags|signed
	case 0b0100:
		inst.Op = OpADDHN
		if u == 1 {
			inst.Flags |= FlagRound
		}
	case 0b0101:
		inst.Op, inst.Flags = OpABAL, inst.Flags|signed
	case 0b0110:
		inst.Op = OpSUBHN
		if u == 1 {
			inst.Flags |= FlagRound
		}
	case 0b0111:
		inst.Op, inst.Flags = OpABDL, inst.Flags|signed
	case 0b1000:
		inst.Op, inst.Flags = OpMLALVec, inst.Flags|signed
	case 0b1001:
		if u == 1 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpSQDMLALVec
	case 0b1010:
		inst.Op, inst.Flags = OpMLSLVec, inst.Flags|signed
	case 0b1011:
		if u == 1 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpSQDMLSLVec
	case 0b1100:
		inst.Op, inst.Flags = OpMULLVec, inst.Flags|signed
	case 0b1101:
		if u == 1 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpSQDMULLVec
	case 0b1110:
		if u == 1 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpPMULL
	default:
		d.unknown(word, inst)
	}
}

// decodeSIMD2Misc decodes the two-register miscellaneous group.
// Format: 0/01 | Q/1 | U | 01110 | size | 10000 | opcode | 10 | Rn | Rd
func (d *Decoder) decodeSIMD2Misc(word uint32, inst *Inst, scalar bool) {
	u := bit(word, 29)
	size := field(word, 23, 22)
	opcode := field(word, 16, 12)
	signed := Flags(0)
	if u == 0 {
		signed = FlagSigned
	}

	// The float sub-block uses only the low size bit for precision.
	fsz := FPSizeS
	if bit(word, 22) == 1 {
		fsz = FPSizeD
	}
	szHigh := bit(word, 23)

	setInt := func(op Op, extra Flags) {
		inst.Op = op
		inst.Flags |= extra
		d.vecShape(word, inst, scalar, FPSize(size))
	}
	setFloat := func(op Op) {
		inst.Op = op
		d.vecShape(word, inst, scalar, fsz)
	}

	switch {
	case u == 0 && opcode == 0b00000:
		setInt(OpREV64Vec, 0)
	case u == 1 && opcode == 0b00000:
		setInt(OpREV32Vec, 0)
	case u == 0 && opcode == 0b00001:
		setInt(OpREV16Vec, 0)
	case opcode == 0b00010:
		setInt(OpADDLP, signed)
	case opcode == 0b00011:
		if u == 0 {
			setInt(OpSUQADD, 0)
		} else {
			setInt(OpUSQADD, 0)
		}
	case u == 0 && opcode == 0b00100:
		setInt(OpCLSVec, 0)
	case u == 1 && opcode == 0b00100:
		setInt(OpCLZVec, 0)
	case u == 0 && opcode == 0b00101:
		setInt(OpCNT, 0)
	case u == 1 && opcode == 0b00101:
		switch size {
		case 0b00:
			setInt(OpNOTVec, 0)
		case 0b01:
			setInt(OpRBITVec, 0)
		default:
			d.unknown(word, inst)
		}
	case opcode == 0b00110:
		setInt(OpADALP, signed)
	case opcode == 0b00111:
		if u == 0 {
			setInt(OpSQABS, 0)
		} else {
			setInt(OpSQNEG, 0)
		}
	case opcode == 0b01000:
		if u == 0 {
			setInt(OpCMGTZero, 0)
		} else {
			setInt(OpCMGEZero, 0)
		}
	case opcode == 0b01001:
		if u == 0 {
			setInt(OpCMEQZero, 0)
		} else {
			setInt(OpCMLEZero, 0)
		}
	case u == 0 && opcode == 0b01010:
		setInt(OpCMLTZero, 0)
	case opcode == 0b01011:
		if u == 0 {
			setInt(OpABSVec, 0)
		} else {
			setInt(OpNEGVec, 0)
		}
	case u == 0 && opcode == 0b10010:
		setInt(OpXTN, 0)
	case u == 1 && opcode == 0b10010:
		setInt(OpSQXTUN, 0)
	case u == 1 && opcode == 0b10011:
		// SHLL: the shift is the source element width.
		setInt(OpSHLL, 0)
		inst.Imm = 8 << size
	case opcode == 0b10100:
		setInt(OpQXTN, signed)

	// Zero-comparing and unary float block, keyed by the high size bit.
	case szHigh == 1 && opcode == 0b01100:
		if u == 0 {
			setFloat(OpFCMGTZero)
		} else {
			setFloat(OpFCMGEZero)
		}
	case szHigh == 1 && opcode == 0b01101:
		if u == 0 {
			setFloat(OpFCMEQZero)
		} else {
			setFloat(OpFCMLEZero)
		}
	case szHigh == 1 && u == 0 && opcode == 0b01110:
		setFloat(OpFCMLTZero)
	case szHigh == 1 && opcode == 0b01111:
		if u == 0 {
			setFloat(OpFABSVec)
		} else {
			setFloat(OpFNEGVec)
		}
	case szHigh == 0 && u == 0 && opcode == 0b10110:
		setFloat(OpFCVTN)
	case szHigh == 0 && u == 1 && opcode == 0b10110:
		setFloat(OpFCVTXN)
	case szHigh == 0 && u == 0 && opcode == 0b10111:
		setFloat(OpFCVTL)
	case opcode == 0b11000 || opcode == 0b11001:
		d.decodeSIMDFRINT(u, szHigh, opcode, word, inst, scalar, fsz)
	case opcode == 0b11010 || opcode == 0b11011 || (opcode == 0b11100 && szHigh == 0):
		// FCVT* (vector, to integer)
		var mode FPRounding
		switch szHigh<<5 | opcode {
		case 0b0_11010:
			mode = FPRTieEven
		case 0b0_11011:
			mode = FPRNegInf
		case 0b0_11100:
			mode = FPRTieAway
		case 0b1_11010:
			mode = FPRPosInf
		case 0b1_11011:
			mode = FPRZero
		}
		setFloat(OpFCVTVec)
		inst.Aux = FCvt{Mode: mode, Signed: u == 0}
	case szHigh == 0 && opcode == 0b11101:
		setFloat(OpCVTFVec)
		inst.Aux = FCvt{Signed: u == 0}
	case szHigh == 1 && opcode == 0b11100:
		if u == 0 {
			setFloat(OpURECPE)
		} else {
			setFloat(OpURSQRTE)
		}
	case szHigh == 1 && opcode == 0b11101:
		if u == 0 {
			setFloat(OpFRECPEVec)
		} else {
			setFloat(OpFRSQRTEVec)
		}
	case szHigh == 1 && opcode == 0b11111:
		switch {
		case scalar && u == 0:
			setFloat(OpFRECPX)
		case u == 1:
			setFloat(OpFSQRTVec)
		default:
			d.unknown(word, inst)
		}
	default:
		d.unknown(word, inst)
	}
}

func (d *Decoder) decodeSIMDFRINT(u, szHigh, opcode, word uint32, inst *Inst, scalar bool, fsz FPSize) {
	key := u<<6 | szHigh<<5 | opcode
	var mode FPRounding
	op := OpFRINTVec
	switch key {
	case 0b0_0_11000:
		mode = FPRTieEven
	case 0b0_0_11001:
		mode = FPRNegInf
	case 0b0_1_11000:
		mode = FPRPosInf
	case 0b0_1_11001:
		mode = FPRZero
	case 0b1_0_11000:
		mode = FPRTieAway
	case 0b1_0_11001:
		op, mode = OpFRINTXVec, FPRCurrent
	case 0b1_1_11001:
		mode = FPRCurrent // FRINTI
	default:
		d.unknown(word, inst)
		return
	}
	inst.Op = op
	d.vecShape(word, inst, scalar, fsz)
	inst.Aux = FRound{Mode: mode}
}

// decodeSIMDAcross decodes the across-lanes reductions.
// Format: 0 | Q | U | 01110 | size | 11000 | opcode | 10 | Rn | Rd
func (d *Decoder) decodeSIMDAcross(word uint32, inst *Inst) {
	u := bit(word, 29)
	size := field(word, 23, 22)
	opcode := field(word, 16, 12)
	signed := Flags(0)
	if u == 0 {
		signed = FlagSigned
	}
	szHigh := bit(word, 23)

	inst.Vec = arrangement(FPSize(size), bit(word, 30))
	switch {
	case opcode == 0b00011:
		inst.Op = OpADDLV
		inst.Flags |= signed
	case opcode == 0b01010:
		inst.Op = OpMAXV
		inst.Flags |= signed
	case opcode == 0b11010:
		inst.Op = OpMINV
		inst.Flags |= signed
	case u == 0 && opcode == 0b11011:
		inst.Op = OpADDV
	case u == 1 && opcode == 0b01100:
		inst.Vec = arrangement(FPSizeS, bit(word, 30))
		if szHigh == 0 {
			inst.Op = OpFMAXNMV
		} else {
			inst.Op = OpFMINNMV
		}
	case u == 1 && opcode == 0b01111:
		inst.Vec = arrangement(FPSizeS, bit(word, 30))
		if szHigh == 0 {
			inst.Op = OpFMAXV
		} else {
			inst.Op = OpFMINV
		}
	default:
		d.unknown(word, inst)
	}
}

// decodeSIMDPairwise decodes the scalar pairwise reductions, which occupy
// the across-lanes slot of the scalar encoding space.
func (d *Decoder) decodeSIMDPairwise(word uint32, inst *Inst) {
	u := bit(word, 29)
	size := field(word, 23, 22)
	opcode := field(word, 16, 12)
	szHigh := bit(word, 23)

	fsz := FPSizeS
	if bit(word, 22) == 1 {
		fsz = FPSizeD
	}

	switch {
	case u == 0 && opcode == 0b11011:
		if size != 0b11 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpADDP
		inst.Prec = FPSizeD
	case u == 1 && opcode == 0b01100:
		if szHigh == 0 {
			inst.Op = OpFMAXNMP
		} else {
			inst.Op = OpFMINNMP
		}
		inst.Prec = fsz
	case u == 1 && szHigh == 0 && opcode == 0b01101:
		inst.Op = OpFADDP
		inst.Prec = fsz
	case u == 1 && opcode == 0b01111:
		if szHigh == 0 {
			inst.Op = OpFMAXP
		} else {
			inst.Op = OpFMINP
		}
		inst.Prec = fsz
	default:
		d.unknown(word, inst)
	}
}

// decodeSIMDPermute decodes UZP/TRN/ZIP.
// Format: 0 | Q | 001110 | size | 0 | Rm | 0 | opcode | 10 | Rn | Rd
func (d *Decoder) decodeSIMDPermute(word uint32, inst *Inst) {
	size := field(word, 23, 22)
	q := bit(word, 30)
	if size == 0b11 && q == 0 {
		d.invalid(inst, "SIMD permute: 1D arrangement")
		return
	}
	switch field(word, 14, 12) {
	case 0b001:
		inst.Op = OpUZP1
	case 0b010:
		inst.Op = OpTRN1
	case 0b011:
		inst.Op = OpZIP1
	case 0b101:
		inst.Op = OpUZP2
	case 0b110:
		inst.Op = OpTRN2
	case 0b111:
		inst.Op = OpZIP2
	default:
		d.unknown(word, inst)
		return
	}
	inst.Rm = regFP(field(word, 20, 16))
	inst.Vec = arrangement(FPSize(size), q)
}

// decodeSIMDCopy decodes DUP, INS, SMOV, and UMOV. The element size is the
// position of the lowest set bit of imm5; the lane index sits above it.
func (d *Decoder) decodeSIMDCopy(word uint32, inst *Inst, scalar bool) {
	op := bit(word, 29)
	q := bit(word, 30)
	imm5 := field(word, 20, 16)
	imm4 := field(word, 14, 11)

	if imm5&0b1111 == 0 {
		d.unknown(word, inst)
		return
	}
	esz := uint(bits.TrailingZeros32(imm5))
	index := uint64(imm5 >> (esz + 1))

	if scalar {
		if op != 0 || imm4 != 0 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpDUPElem
		inst.Prec = FPSize(esz)
		inst.Imm = index
		return
	}

	if op == 1 {
		if q != 1 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpINSElem
		inst.Prec = FPSize(esz)
		inst.Aux = InsElem{Dst: uint8(index), Src: uint8(imm4 >> esz)}
		return
	}

	switch imm4 {
	case 0b0000:
		if esz == 3 && q == 0 {
			d.invalid(inst, "DUP: 1D arrangement")
			return
		}
		inst.Op = OpDUPElem
		inst.Vec = arrangement(FPSize(esz), q)
		inst.Imm = index
	case 0b0001:
		if esz == 3 && q == 0 {
			d.invalid(inst, "DUP: 1D arrangement")
			return
		}
		inst.Op = OpDUPGPR
		inst.Rn = regZR(field(word, 9, 5))
		inst.Vec = arrangement(FPSize(esz), q)
	case 0b0011:
		inst.Op = OpINSGPR
		inst.Rn = regZR(field(word, 9, 5))
		inst.Prec = FPSize(esz)
		inst.Imm = index
	case 0b0101:
		// SMOV: byte/halfword to W, byte/halfword/word to X.
		if uint32(esz) >= 2+q {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpSMOV
		inst.Rd = regZR(field(word, 4, 0))
		inst.Flags |= flagsW32(q)
		inst.Prec = FPSize(esz)
		inst.Imm = index
	case 0b0111:
		// UMOV: the 64-bit form only moves doubleword lanes.
		if q == 1 && esz != 3 || q == 0 && esz == 3 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpUMOV
		inst.Rd = regZR(field(word, 4, 0))
		inst.Flags |= flagsW32(q)
		inst.Prec = FPSize(esz)
		inst.Imm = index
	default:
		d.unknown(word, inst)
	}
}
