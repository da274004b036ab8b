package insts

// decodeDataProcImm decodes the Data Processing (Immediate) class.
// Bits [25:23] select the subgroup.
func (d *Decoder) decodeDataProcImm(word uint32, addr uint64, inst *Inst) {
	switch field(word, 25, 23) {
	case 0b000, 0b001:
		d.decodePCRelAddr(word, addr, inst)
	case 0b010:
		d.decodeAddSubImm(word, inst)
	case 0b011:
		// Add/subtract (immediate, with tags): MTE, not decoded.
		d.unknown(word, inst)
	case 0b100:
		d.decodeLogicalImm(word, inst)
	case 0b101:
		d.decodeMoveWide(word, inst)
	case 0b110:
		d.decodeBitfield(word, inst)
	case 0b111:
		d.decodeExtract(word, inst)
	}
}

// decodePCRelAddr decodes ADR and ADRP.
// Format: op | immlo | 10000 | immhi | Rd
func (d *Decoder) decodePCRelAddr(word uint32, addr uint64, inst *Inst) {
	op := bit(word, 31)
	immlo := field(word, 30, 29)
	immhi := field(word, 23, 5)
	simm := sext(uint64(immhi<<2|immlo), 21)

	inst.Rd = regZR(field(word, 4, 0))
	if op == 0 {
		inst.Op = OpADR
		inst.Offset = simm
		inst.Imm = addr + uint64(simm)
	} else {
		// ADRP forms a 4KB-page address: the offset is in pages and
		// the low 12 bits of the PC are masked off.
		inst.Op = OpADRP
		inst.Offset = simm << 12
		inst.Imm = (addr &^ 0xFFF) + uint64(simm<<12)
	}
}

// decodeAddSubImm decodes add/subtract (immediate).
// Format: sf | op | S | 100010 | sh | imm12 | Rn | Rd
func (d *Decoder) decodeAddSubImm(word uint32, inst *Inst) {
	sf := bit(word, 31)
	op := bit(word, 30)
	s := bit(word, 29)
	sh := bit(word, 22)
	imm12 := field(word, 21, 10)
	rn := field(word, 9, 5)
	rd := field(word, 4, 0)

	inst.Flags = flagsW32(sf)
	if s == 1 {
		inst.Flags |= FlagSetFlags
	}
	inst.Rn = regSP(rn)
	// The flag-setting forms write the zero register, not the stack
	// pointer; the plain forms can target SP.
	if s == 1 {
		inst.Rd = regZR(rd)
	} else {
		inst.Rd = regSP(rd)
	}
	inst.Imm = uint64(imm12) << (12 * sh)

	switch {
	case op == 0 && s == 1 && inst.Rd == ZR:
		inst.Op = OpCMNImm
	case op == 0 && s == 0 && sh == 0 && imm12 == 0 && (inst.Rd == SP || inst.Rn == SP):
		inst.Op = OpMOVSP
	case op == 0:
		inst.Op = OpADDImm
	case op == 1 && s == 1 && inst.Rd == ZR:
		inst.Op = OpCMPImm
	default:
		inst.Op = OpSUBImm
	}
}

// decodeLogicalImm decodes AND/ORR/EOR/ANDS (immediate) with the bitmask
// immediate expanded, plus the TST and MOV (bitmask immediate) aliases.
// Format: sf | opc | 100100 | N | immr | imms | Rn | Rd
func (d *Decoder) decodeLogicalImm(word uint32, inst *Inst) {
	sf := bit(word, 31)
	opc := field(word, 30, 29)
	n := bit(word, 22)
	immr := field(word, 21, 16)
	imms := field(word, 15, 10)
	rn := field(word, 9, 5)
	rd := field(word, 4, 0)

	if sf == 0 && n == 1 {
		d.invalid(inst, "logical immediate: N == 1 in 32-bit variant")
		return
	}
	imm, ok := decodeBitMasks(n, immr, imms, sf == 0)
	if !ok {
		d.invalid(inst, "logical immediate: reserved bitmask encoding N=%d immr=%d imms=%d", n, immr, imms)
		return
	}

	inst.Flags = flagsW32(sf)
	inst.Imm = imm
	inst.Rn = regZR(rn)

	switch opc {
	case 0b00:
		inst.Op = OpANDImm
		inst.Rd = regSP(rd) // logical immediate can write SP
	case 0b01:
		inst.Rd = regSP(rd)
		if inst.Rn == ZR {
			inst.Op = OpMOVImm // MOV (bitmask immediate)
		} else {
			inst.Op = OpORRImm
		}
	case 0b10:
		inst.Op = OpEORImm
		inst.Rd = regSP(rd)
	case 0b11:
		inst.Flags |= FlagSetFlags
		inst.Rd = regZR(rd)
		if inst.Rd == ZR {
			inst.Op = OpTSTImm
		} else {
			inst.Op = OpANDImm
		}
	}
}

// decodeMoveWide decodes the move wide (immediate) family. MOVZ and MOVN
// collapse into the synthetic OpMOVImm carrying the precalculated value;
// MOVK stays separate because its result depends on the old register value.
// Format: sf | opc | 100101 | hw | imm16 | Rd
func (d *Decoder) decodeMoveWide(word uint32, inst *Inst) {
	sf := bit(word, 31)
	opc := field(word, 30, 29)
	hw := field(word, 22, 21)
	imm16 := field(word, 20, 5)

	if sf == 0 && hw > 1 {
		d.invalid(inst, "move wide immediate: shift %d in 32-bit variant", hw*16)
		return
	}
	if opc == 0b01 {
		d.unknown(word, inst)
		return
	}

	inst.Flags = flagsW32(sf)
	inst.Rd = regZR(field(word, 4, 0))
	shift := 16 * hw

	switch opc {
	case 0b00: // MOVN
		inst.Op = OpMOVImm
		inst.Imm = ^(uint64(imm16) << shift)
		if sf == 0 {
			inst.Imm &= 0xFFFFFFFF
		}
	case 0b10: // MOVZ
		inst.Op = OpMOVImm
		inst.Imm = uint64(imm16) << shift
	case 0b11:
		inst.Op = OpMOVK
		inst.Aux = MovWide{Imm16: imm16, LSL: uint8(shift)}
	}
}

// decodeBitfield decodes the bitfield group. SBFM/BFM/UBFM never surface
// as themselves: the alias is selected here by predicates over the decoded
// immr/imms fields, because the un-aliased form has no simpler independent
// meaning.
// Format: sf | opc | 100110 | N | immr | imms | Rn | Rd
func (d *Decoder) decodeBitfield(word uint32, inst *Inst) {
	sf := bit(word, 31)
	opc := field(word, 30, 29)
	n := bit(word, 22)
	immr := field(word, 21, 16)
	imms := field(word, 15, 10)

	if opc == 0b11 {
		d.unknown(word, inst)
		return
	}
	if n != sf {
		d.invalid(inst, "bitfield: N (%d) does not match sf (%d)", n, sf)
		return
	}
	regBits := uint32(32) << sf
	if sf == 0 && (immr >= 32 || imms >= 32) {
		d.invalid(inst, "bitfield: immr/imms out of range for 32-bit variant")
		return
	}

	inst.Flags = flagsW32(sf)
	inst.Rd = regZR(field(word, 4, 0))
	inst.Rn = regZR(field(word, 9, 5))

	// Field position of the xBFIZ/xBFX aliases.
	izLSB := uint8((regBits - immr) % regBits)
	izWidth := uint8(imms + 1)
	xLSB := uint8(immr)
	xWidth := uint8(imms - immr + 1)

	switch opc {
	case 0b00: // SBFM
		switch {
		case imms == regBits-1:
			inst.Op = OpASRImm
			inst.Aux = ShiftOp{Type: ShiftASR, Amount: uint8(immr)}
		case immr == 0 && imms == 7:
			inst.Op = OpEXTEND
			inst.Aux = ExtendOp{Type: ExtSXTB}
		case immr == 0 && imms == 15:
			inst.Op = OpEXTEND
			inst.Aux = ExtendOp{Type: ExtSXTH}
		case immr == 0 && imms == 31 && sf == 1:
			inst.Op = OpEXTEND
			inst.Aux = ExtendOp{Type: ExtSXTW}
		case imms < immr:
			inst.Op = OpSBFIZ
			inst.Aux = Bitfield{LSB: izLSB, Width: izWidth}
		default:
			inst.Op = OpSBFX
			inst.Aux = Bitfield{LSB: xLSB, Width: xWidth}
		}
	case 0b01: // BFM
		if imms < immr {
			if inst.Rn == ZR {
				inst.Op = OpBFC
			} else {
				inst.Op = OpBFI
			}
			inst.Aux = Bitfield{LSB: izLSB, Width: izWidth}
		} else {
			inst.Op = OpBFXIL
			inst.Aux = Bitfield{LSB: xLSB, Width: xWidth}
		}
	case 0b10: // UBFM
		switch {
		case imms != regBits-1 && imms+1 == immr:
			inst.Op = OpLSLImm
			inst.Aux = ShiftOp{Type: ShiftLSL, Amount: uint8(regBits - 1 - imms)}
		case imms == regBits-1:
			inst.Op = OpLSRImm
			inst.Aux = ShiftOp{Type: ShiftLSR, Amount: uint8(immr)}
		case immr == 0 && imms == 7:
			inst.Op = OpEXTEND
			inst.Aux = ExtendOp{Type: ExtUXTB}
		case immr == 0 && imms == 15:
			inst.Op = OpEXTEND
			inst.Aux = ExtendOp{Type: ExtUXTH}
		case imms < immr:
			inst.Op = OpUBFIZ
			inst.Aux = Bitfield{LSB: izLSB, Width: izWidth}
		default:
			inst.Op = OpUBFX
			inst.Aux = Bitfield{LSB: xLSB, Width: xWidth}
		}
	}
}

// decodeExtract decodes EXTR and its ROR-immediate alias.
// Format: sf | 00 | 100111 | N | 0 | Rm | imms | Rn | Rd
func (d *Decoder) decodeExtract(word uint32, inst *Inst) {
	sf := bit(word, 31)
	op21 := field(word, 30, 29)
	n := bit(word, 22)
	o0 := bit(word, 21)
	imms := field(word, 15, 10)

	if op21 != 0 || o0 != 0 || n != sf {
		d.unknown(word, inst)
		return
	}
	if sf == 0 && imms >= 32 {
		d.invalid(inst, "extract: rotate amount %d in 32-bit variant", imms)
		return
	}

	inst.Flags = flagsW32(sf)
	inst.Rd = regZR(field(word, 4, 0))
	inst.Rn = regZR(field(word, 9, 5))
	inst.Rm = regZR(field(word, 20, 16))
	inst.Imm = uint64(imms)

	if inst.Rm == inst.Rn {
		inst.Op = OpRORImm
		inst.Aux = ShiftOp{Type: ShiftROR, Amount: uint8(imms)}
	} else {
		inst.Op = OpEXTR
	}
}
