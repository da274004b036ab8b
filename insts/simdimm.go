package insts

import "math/bits"

// decodeSIMDImmOrElem decodes the remaining SIMD encodings: by-element
// arithmetic, shifts by immediate, and the modified-immediate moves.
func (d *Decoder) decodeSIMDImmOrElem(word uint32, inst *Inst, scalar bool) {
	if scalar {
		inst.Flags |= FlagScalar
	}
	switch {
	case bit(word, 10) == 0:
		d.decodeSIMDByElem(word, inst, scalar)
	case bit(word, 23) != 0:
		d.unknown(word, inst)
	case field(word, 22, 19) == 0:
		if scalar {
			d.unknown(word, inst)
			return
		}
		d.decodeSIMDModImm(word, inst)
	default:
		d.decodeSIMDShiftImm(word, inst, scalar)
	}
}

// decodeSIMDByElem decodes the vector-by-element arithmetic group. The
// lane index is assembled from the H, L, and M bits according to the
// element size; for halfword elements M extends the index, otherwise it
// extends Rm.
// Format: 0/01 | Q/1 | U | 01111 | size | L | M | Rm | opcode | H | 0 | Rn | Rd
func (d *Decoder) decodeSIMDByElem(word uint32, inst *Inst, scalar bool) {
	u := bit(word, 29)
	size := field(word, 23, 22)
	l := bit(word, 21)
	m := bit(word, 20)
	rmLow := field(word, 19, 16)
	opcode := field(word, 15, 12)
	h := bit(word, 11)
	signed := Flags(0)
	if u == 0 {
		signed = FlagSigned
	}

	// Element categories: halfword-or-word integer ops, single-or-double
	// float ops, and the fixed-halfword widening float multiplies.
	const (
		catInt = iota
		catFloat
		catHalf
		catCmplx
	)

	var op Op
	cat := catInt
	var extra Flags
	switch u<<4 | opcode {
	case 0b0_0001:
		op, cat = OpFMLAElem, catFloat
	case 0b0_0101:
		op, cat = OpFMLSElem, catFloat
	case 0b0_1001:
		op, cat = OpFMULElem, catFloat
	case 0b1_1001:
		op, cat = OpFMULXElem, catFloat
	case 0b0_0000:
		op, cat = OpFMLALElem, catHalf
	case 0b0_0100:
		op, cat = OpFMLSLElem, catHalf
	case 0b1_1000:
		op, cat = OpFMLAL2Elem, catHalf
	case 0b1_1100:
		op, cat = OpFMLSL2Elem, catHalf
	case 0b0_0010, 0b1_0010:
		op, extra = OpMLALElem, signed
	case 0b0_0110, 0b1_0110:
		op, extra = OpMLSLElem, signed
	case 0b0_1010, 0b1_1010:
		op, extra = OpMULLElem, signed
	case 0b0_0011:
		op = OpSQDMLALElem
	case 0b0_0111:
		op = OpSQDMLSLElem
	case 0b0_1011:
		op = OpSQDMULLElem
	case 0b0_1100:
		op = OpSQDMULHElem
	case 0b0_1101:
		op, extra = OpSQDMULHElem, FlagRound
	case 0b1_1101:
		op = OpSQRDMLAHElem
	case 0b1_1111:
		op = OpSQRDMLSHElem
	case 0b0_1000:
		op = OpMULElem
	case 0b1_0000:
		op = OpMLAElem
	case 0b1_0100:
		op = OpMLSElem
	case 0b0_1110, 0b1_1110:
		op, extra = OpDOTElem, signed
	case 0b1_0001, 0b1_0011, 0b1_0101, 0b1_0111:
		op, cat = OpFCMLAElem, catCmplx
	default:
		d.unknown(word, inst)
		return
	}

	if scalar {
		switch op {
		case OpFMLAElem, OpFMLSElem, OpFMULElem, OpFMULXElem,
			OpSQDMLALElem, OpSQDMLSLElem, OpSQDMULLElem,
			OpSQDMULHElem, OpSQRDMLAHElem, OpSQRDMLSHElem:
		default:
			d.unknown(word, inst)
			return
		}
	}

	// Lane index and the fifth Rm bit.
	var index uint64
	rm := rmLow
	esz := FPSize(size)
	switch cat {
	case catFloat:
		switch size {
		case 0b10:
			index = uint64(h<<1 | l)
			rm = m<<4 | rmLow
		case 0b11:
			if l != 0 {
				d.unknown(word, inst)
				return
			}
			index = uint64(h)
			rm = m<<4 | rmLow
		default:
			d.unknown(word, inst)
			return
		}
	case catHalf:
		if size != 0b10 || scalar {
			d.unknown(word, inst)
			return
		}
		index = uint64(h<<2 | l<<1 | m)
		esz = FPSizeH
	case catCmplx:
		switch size {
		case 0b01:
			index = uint64(h<<1 | l)
		case 0b10:
			index = uint64(h)
		default:
			d.unknown(word, inst)
			return
		}
		rm = m<<4 | rmLow
	default:
		switch size {
		case 0b01:
			index = uint64(h<<2 | l<<1 | m)
		case 0b10:
			index = uint64(h<<1 | l)
			rm = m<<4 | rmLow
		default:
			d.unknown(word, inst)
			return
		}
	}

	inst.Op = op
	inst.Flags |= extra
	inst.Rd = regFP(field(word, 4, 0))
	inst.Rn = regFP(field(word, 9, 5))
	inst.Rm = regFP(rm)
	if scalar {
		inst.Prec = esz
	} else {
		inst.Vec = arrangement(esz, bit(word, 30))
	}
	if op == OpFCMLAElem {
		inst.Aux = CmplxElem{
			Index:    uint8(index),
			Rotation: uint16(field(word, 14, 13)) * 90,
		}
	} else {
		inst.Imm = index
	}
}

// decodeSIMDShiftImm decodes the shift-by-immediate group. Right shifts
// store 2*esize - encoded, left shifts encoded - esize; the element size is
// the highest set bit of immh.
// Format: 0/01 | Q/1 | U | 011110 | immh | immb | opcode | 1 | Rn | Rd
func (d *Decoder) decodeSIMDShiftImm(word uint32, inst *Inst, scalar bool) {
	u := bit(word, 29)
	immh := field(word, 22, 19)
	immb := field(word, 18, 16)
	opcode := field(word, 15, 11)
	signed := Flags(0)
	if u == 0 {
		signed = FlagSigned
	}

	esz := uint(31 - bits.LeadingZeros32(immh))
	elemBits := uint64(8) << esz
	total := uint64(immh<<3 | immb)
	rshift := 2*elemBits - total
	lshift := total - elemBits

	var op Op
	var extra Flags
	shift := rshift
	switch u<<5 | opcode {
	case 0b0_00000, 0b1_00000:
		op, extra = OpSHR, signed
	case 0b0_00010, 0b1_00010:
		op, extra = OpSRA, signed
	case 0b0_00100, 0b1_00100:
		op, extra = OpSHR, signed|FlagRound
	case 0b0_00110, 0b1_00110:
		op, extra = OpSRA, signed|FlagRound
	case 0b1_01000:
		op = OpSRI
	case 0b0_01010:
		op, shift = OpSHLImm, lshift
	case 0b1_01010:
		op, shift = OpSLI, lshift
	case 0b1_01100:
		op, shift = OpSQSHLU, lshift
	case 0b0_01110, 0b1_01110:
		op, extra, shift = OpQSHLImm, signed, lshift
	case 0b0_10000:
		op = OpSHRN
	case 0b0_10001:
		op, extra = OpSHRN, FlagRound
	case 0b1_10000:
		op = OpSQSHRUN
	case 0b1_10001:
		op, extra = OpSQSHRUN, FlagRound
	case 0b0_10010, 0b1_10010:
		op, extra = OpQSHRN, signed
	case 0b0_10011, 0b1_10011:
		op, extra = OpQSHRN, signed|FlagRound
	case 0b0_10100, 0b1_10100:
		op, extra, shift = OpSHLL, signed, lshift
	case 0b0_11100, 0b1_11100:
		op = OpCVTFVec
	case 0b0_11111, 0b1_11111:
		op = OpFCVTVec
	default:
		d.unknown(word, inst)
		return
	}

	// immh ranges the opcode families do not allocate.
	wide := immh&0b1000 != 0
	switch op {
	case OpSHRN, OpSQSHRUN, OpQSHRN, OpSHLL:
		// Narrowing and widening forms stop at 32-bit elements, and the
		// unsaturated ones have no scalar form at all.
		if wide || scalar && (op == OpSHRN || op == OpSHLL) {
			d.unknown(word, inst)
			return
		}
	case OpCVTFVec, OpFCVTVec:
		// No byte-element conversions.
		if immh == 0b0001 {
			d.unknown(word, inst)
			return
		}
	case OpSHR, OpSRA, OpSRI, OpSHLImm, OpSLI:
		// The plain shifts only exist scalar on doublewords.
		if scalar && !wide {
			d.unknown(word, inst)
			return
		}
	}
	// Doubleword elements need the full-width vector.
	if !scalar && wide && bit(word, 30) == 0 {
		d.unknown(word, inst)
		return
	}

	inst.Op = op
	inst.Flags |= extra
	inst.Rd = regFP(field(word, 4, 0))
	inst.Rn = regFP(field(word, 9, 5))
	if scalar {
		inst.Prec = FPSize(esz)
	} else {
		inst.Vec = arrangement(FPSize(esz), bit(word, 30))
	}
	switch op {
	case OpCVTFVec:
		inst.Aux = FCvt{FBits: uint8(rshift), Signed: u == 0}
	case OpFCVTVec:
		inst.Aux = FCvt{Mode: FPRZero, FBits: uint8(rshift), Signed: u == 0}
	default:
		inst.Imm = shift
	}
}

// decodeSIMDModImm decodes the modified-immediate group: MOVI/MVNI,
// vector ORR/BIC by immediate, and the vector FMOV.
// Format: 0 | Q | op | 0111100000 | abc | cmode | 0 | 1 | defgh | Rd
func (d *Decoder) decodeSIMDModImm(word uint32, inst *Inst) {
	if bit(word, 11) != 0 {
		d.unknown(word, inst)
		return
	}
	q := bit(word, 30)
	op := bit(word, 29)
	cmode := field(word, 15, 12)
	imm8 := field(word, 18, 16)<<5 | field(word, 9, 5)
	value := advSIMDExpandImm(op, cmode, imm8)

	inst.Rd = regFP(field(word, 4, 0))

	// Element width implied by cmode.
	esz := FPSizeS
	switch {
	case cmode>>2 == 0b10:
		esz = FPSizeH
	case cmode == 0b1110:
		esz = FPSizeB
		if op == 1 {
			esz = FPSizeD
		}
	case cmode == 0b1111:
		esz = FPSizeS
		if op == 1 {
			esz = FPSizeD
		}
	}
	inst.Vec = arrangement(esz, q)

	orr := cmode < 0b1100 && cmode&1 == 1
	switch {
	case cmode == 0b1111:
		// FMOV (vector, immediate)
		if op == 1 && q == 0 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpFMOVVec
		inst.FImm = vfpExpandImm(imm8)
	case op == 0 && orr:
		inst.Op = OpORRVecImm
		inst.Imm = value
	case op == 1 && orr:
		inst.Op = OpBICVecImm
		inst.Imm = value
	case op == 1 && cmode != 0b1110:
		// MVNI: same expansion, inverted at use.
		inst.Op = OpMOVI
		inst.Imm = ^value
	default:
		inst.Op = OpMOVI
		inst.Imm = value
	}
}
