package insts

// decodeDataProcReg decodes the Data Processing (Register) class.
// op1 is bit 28 and op2 is bits [24:21].
func (d *Decoder) decodeDataProcReg(word uint32, inst *Inst) {
	op1 := bit(word, 28)
	op2 := field(word, 24, 21)

	switch {
	case op1 == 1 && op2 == 0b0110:
		if bit(word, 30) == 0 {
			d.decodeTwoSource(word, inst)
		} else {
			d.decodeOneSource(word, inst)
		}
	case op1 == 0 && bit(word, 24) == 0:
		d.decodeLogicalShifted(word, inst)
	case op1 == 0 && bit(word, 21) == 0:
		d.decodeAddSubShifted(word, inst)
	case op1 == 0:
		d.decodeAddSubExtended(word, inst)
	case op2 == 0b0000:
		d.decodeCarryAndFlags(word, inst)
	case op2 == 0b0010:
		d.decodeCondCompare(word, inst)
	case op2 == 0b0100:
		d.decodeCondSelect(word, inst)
	case op2&0b1000 != 0:
		d.decodeThreeSource(word, inst)
	default:
		d.unknown(word, inst)
	}
}

// decodeTwoSource decodes UDIV/SDIV, the register shifts, SUBP, and CRC32.
// Format: sf | 0 | S | 11010110 | Rm | opcode | Rn | Rd
func (d *Decoder) decodeTwoSource(word uint32, inst *Inst) {
	sf := bit(word, 31)
	if bit(word, 29) != 0 {
		d.unknown(word, inst)
		return
	}
	opcode := field(word, 15, 10)

	inst.Flags = flagsW32(sf)
	inst.Rd = regZR(field(word, 4, 0))
	inst.Rn = regZR(field(word, 9, 5))
	inst.Rm = regZR(field(word, 20, 16))

	switch opcode {
	case 0b000000:
		if sf != 1 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpSUBP
		inst.Rn = regSP(field(word, 9, 5))
		inst.Rm = regSP(field(word, 20, 16))
	case 0b000010:
		inst.Op = OpUDIV
	case 0b000011:
		inst.Op = OpSDIV
	case 0b001000:
		inst.Op = OpLSLV
	case 0b001001:
		inst.Op = OpLSRV
	case 0b001010:
		inst.Op = OpASRV
	case 0b001011:
		inst.Op = OpRORV
	case 0b010000, 0b010001, 0b010010, 0b010011,
		0b010100, 0b010101, 0b010110, 0b010111:
		d.decodeCRC32(word, sf, opcode, inst)
	default:
		d.unknown(word, inst)
	}
}

func (d *Decoder) decodeCRC32(word, sf, opcode uint32, inst *Inst) {
	sz := opcode & 0b11
	c := opcode & 0b100
	// Only the doubleword form uses a 64-bit data register.
	if (sz == 0b11) != (sf == 1) {
		d.unknown(word, inst)
		return
	}
	// The accumulator is always 32-bit.
	inst.Flags = FlagW32
	if c == 0 {
		inst.Op = [4]Op{OpCRC32B, OpCRC32H, OpCRC32W, OpCRC32X}[sz]
	} else {
		inst.Op = [4]Op{OpCRC32CB, OpCRC32CH, OpCRC32CW, OpCRC32CX}[sz]
	}
}

// decodeOneSource decodes RBIT, the byte-reverses, CLZ, and CLS.
// Format: sf | 1 | S | 11010110 | opcode2 | opcode | Rn | Rd
func (d *Decoder) decodeOneSource(word uint32, inst *Inst) {
	sf := bit(word, 31)
	if bit(word, 29) != 0 || field(word, 20, 16) != 0 {
		d.unknown(word, inst)
		return
	}

	inst.Flags = flagsW32(sf)
	inst.Rd = regZR(field(word, 4, 0))
	inst.Rn = regZR(field(word, 9, 5))

	switch field(word, 15, 10) {
	case 0b000000:
		inst.Op = OpRBIT
	case 0b000001:
		inst.Op = OpREV16
	case 0b000010:
		if sf == 1 {
			inst.Op = OpREV32
		} else {
			inst.Op = OpREV
		}
	case 0b000011:
		if sf != 1 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpREV
	case 0b000100:
		inst.Op = OpCLZ
	case 0b000101:
		inst.Op = OpCLS
	default:
		d.unknown(word, inst)
	}
}

// decodeLogicalShifted decodes the logical (shifted register) group with
// its MOV, MVN, and TST aliases.
// Format: sf | opc | 01010 | shift | N | Rm | imm6 | Rn | Rd
func (d *Decoder) decodeLogicalShifted(word uint32, inst *Inst) {
	sf := bit(word, 31)
	opc := field(word, 30, 29)
	shift := Shift(field(word, 23, 22))
	n := bit(word, 21)
	imm6 := field(word, 15, 10)

	if sf == 0 && imm6 >= 32 {
		d.invalid(inst, "logical shifted register: shift amount %d in 32-bit variant", imm6)
		return
	}

	inst.Flags = flagsW32(sf)
	inst.Rd = regZR(field(word, 4, 0))
	inst.Rn = regZR(field(word, 9, 5))
	inst.Rm = regZR(field(word, 20, 16))
	inst.Aux = ShiftOp{Type: shift, Amount: uint8(imm6)}

	switch opc<<1 | n {
	case 0b00_0:
		inst.Op = OpANDShifted
	case 0b00_1:
		inst.Op = OpBIC
	case 0b01_0:
		if shift == ShiftLSL && imm6 == 0 && inst.Rn == ZR {
			inst.Op = OpMOVReg
			inst.Aux = nil
		} else {
			inst.Op = OpORRShifted
		}
	case 0b01_1:
		if inst.Rn == ZR {
			inst.Op = OpMVN
		} else {
			inst.Op = OpORN
		}
	case 0b10_0:
		inst.Op = OpEORShifted
	case 0b10_1:
		inst.Op = OpEON
	case 0b11_0:
		inst.Flags |= FlagSetFlags
		if inst.Rd == ZR {
			inst.Op = OpTSTShifted
		} else {
			inst.Op = OpANDShifted
		}
	case 0b11_1:
		inst.Flags |= FlagSetFlags
		inst.Op = OpBIC
	}
}

// decodeAddSubShifted decodes add/subtract (shifted register) with the
// CMN, CMP, and NEG aliases.
// Format: sf | op | S | 01011 | shift | 0 | Rm | imm6 | Rn | Rd
func (d *Decoder) decodeAddSubShifted(word uint32, inst *Inst) {
	sf := bit(word, 31)
	op := bit(word, 30)
	s := bit(word, 29)
	shift := Shift(field(word, 23, 22))
	imm6 := field(word, 15, 10)

	if shift == ShiftROR {
		d.invalid(inst, "add/sub shifted register: reserved shift type ROR")
		return
	}
	if sf == 0 && imm6 >= 32 {
		d.invalid(inst, "add/sub shifted register: shift amount %d in 32-bit variant", imm6)
		return
	}

	inst.Flags = flagsW32(sf)
	if s == 1 {
		inst.Flags |= FlagSetFlags
	}
	inst.Rd = regZR(field(word, 4, 0))
	inst.Rn = regZR(field(word, 9, 5))
	inst.Rm = regZR(field(word, 20, 16))
	inst.Aux = ShiftOp{Type: shift, Amount: uint8(imm6)}

	switch {
	case op == 0 && s == 1 && inst.Rd == ZR:
		inst.Op = OpCMNShifted
	case op == 0:
		inst.Op = OpADDShifted
	case s == 1 && inst.Rd == ZR:
		inst.Op = OpCMPShifted
	case inst.Rn == ZR:
		inst.Op = OpNEG
	default:
		inst.Op = OpSUBShifted
	}
}

// decodeAddSubExtended decodes add/subtract (extended register).
// Format: sf | op | S | 01011 | opt | 1 | Rm | option | imm3 | Rn | Rd
func (d *Decoder) decodeAddSubExtended(word uint32, inst *Inst) {
	sf := bit(word, 31)
	op := bit(word, 30)
	s := bit(word, 29)
	option := field(word, 15, 13)
	imm3 := field(word, 12, 10)

	if field(word, 23, 22) != 0 {
		d.unknown(word, inst)
		return
	}
	if imm3 > 4 {
		d.invalid(inst, "add/sub extended register: shift amount %d exceeds 4", imm3)
		return
	}

	inst.Flags = flagsW32(sf)
	if s == 1 {
		inst.Flags |= FlagSetFlags
	}
	inst.Rn = regSP(field(word, 9, 5))
	if s == 1 {
		inst.Rd = regZR(field(word, 4, 0))
	} else {
		inst.Rd = regSP(field(word, 4, 0))
	}
	inst.Rm = regZR(field(word, 20, 16))
	inst.Aux = ExtendOp{Type: ExtendType(option), LSL: uint8(imm3)}

	switch {
	case op == 0 && s == 1 && inst.Rd == ZR:
		inst.Op = OpCMNExt
	case op == 0:
		inst.Op = OpADDExt
	case s == 1 && inst.Rd == ZR:
		inst.Op = OpCMPExt
	default:
		inst.Op = OpSUBExt
	}
}

// decodeCarryAndFlags decodes ADC/SBC, RMIF, and SETF8/SETF16.
func (d *Decoder) decodeCarryAndFlags(word uint32, inst *Inst) {
	sf := bit(word, 31)
	op := bit(word, 30)
	s := bit(word, 29)

	switch {
	case field(word, 15, 10) == 0:
		// ADC/ADCS/SBC/SBCS
		// Format: sf | op | S | 11010000 | Rm | 000000 | Rn | Rd
		inst.Flags = flagsW32(sf)
		if s == 1 {
			inst.Flags |= FlagSetFlags
		}
		inst.Rd = regZR(field(word, 4, 0))
		inst.Rn = regZR(field(word, 9, 5))
		inst.Rm = regZR(field(word, 20, 16))
		switch {
		case op == 0:
			inst.Op = OpADC
		case inst.Rn == ZR:
			inst.Op = OpNGC
		default:
			inst.Op = OpSBC
		}
	case field(word, 14, 10) == 0b00001 && op == 0 && s == 1 && sf == 1:
		// RMIF
		// Format: 10111010000 | imm6 | 00001 | Rn | 0 | mask
		inst.Op = OpRMIF
		inst.Rn = regZR(field(word, 9, 5))
		inst.Aux = RotFlags{
			Mask:     uint8(field(word, 3, 0)),
			Rotation: uint8(field(word, 20, 15)),
		}
	case field(word, 13, 10) == 0b0010 && field(word, 20, 15) == 0 && op == 0 && s == 1 && sf == 0:
		// SETF8/SETF16
		if bit(word, 14) == 0 {
			inst.Op = OpSETF8
		} else {
			inst.Op = OpSETF16
		}
		inst.Flags = FlagW32
		inst.Rn = regZR(field(word, 9, 5))
	default:
		d.unknown(word, inst)
	}
}

// decodeCondCompare decodes CCMN/CCMP in both register and immediate form.
// Format: sf | op | S | 11010010 | Rm/imm5 | cond | i | 0 | Rn | o2 | nzcv
func (d *Decoder) decodeCondCompare(word uint32, inst *Inst) {
	if bit(word, 29) != 1 || bit(word, 10) != 0 || bit(word, 4) != 0 {
		d.unknown(word, inst)
		return
	}
	sf := bit(word, 31)

	inst.Flags = flagsW32(sf) | condFlags(Cond(field(word, 15, 12)))
	inst.Rn = regZR(field(word, 9, 5))
	op := bit(word, 30)
	aux := CondCmp{NZCV: uint8(field(word, 3, 0))}
	if bit(word, 11) == 1 {
		aux.Imm5 = uint8(field(word, 20, 16))
		if op == 0 {
			inst.Op = OpCCMNImm
		} else {
			inst.Op = OpCCMPImm
		}
	} else {
		inst.Rm = regZR(field(word, 20, 16))
		if op == 0 {
			inst.Op = OpCCMNReg
		} else {
			inst.Op = OpCCMPReg
		}
	}
	inst.Aux = aux
}

// decodeCondSelect decodes CSEL/CSINC/CSINV/CSNEG and their single-source
// aliases. The aliases test the inverse of the encoded condition, so the
// stored condition is flipped when an alias is selected.
// Format: sf | op | S | 11010100 | Rm | cond | op2 | Rn | Rd
func (d *Decoder) decodeCondSelect(word uint32, inst *Inst) {
	if bit(word, 29) != 0 {
		d.unknown(word, inst)
		return
	}
	sf := bit(word, 31)
	op := bit(word, 30)
	op2 := field(word, 11, 10)
	cond := Cond(field(word, 15, 12))

	if op2 > 0b01 {
		d.unknown(word, inst)
		return
	}

	inst.Flags = flagsW32(sf)
	inst.Rd = regZR(field(word, 4, 0))
	inst.Rn = regZR(field(word, 9, 5))
	inst.Rm = regZR(field(word, 20, 16))

	switch op<<2 | op2 {
	case 0b0_00:
		inst.Op = OpCSEL
	case 0b0_01:
		inst.Op = csAlias(inst, cond, OpCSINC, OpCSET, OpCINC)
	case 0b1_00:
		inst.Op = csAlias(inst, cond, OpCSINV, OpCSETM, OpCINV)
	case 0b1_01:
		inst.Op = csAlias(inst, cond, OpCSNEG, OpUnknown, OpCNEG)
	default:
		d.unknown(word, inst)
		return
	}
	if inst.Op != OpCSEL && inst.Op != OpCSINC && inst.Op != OpCSINV && inst.Op != OpCSNEG {
		cond = cond.Invert()
	}
	inst.Flags |= condFlags(cond)
}

// csAlias picks the single-source alias of a conditional select when both
// sources name the same register and the condition is invertible. zeroOp is
// the form with both sources ZR (CSET/CSETM); there is no such form for
// CSNEG, so OpUnknown falls through to the single-source alias.
func csAlias(inst *Inst, cond Cond, base, zeroOp, oneOp Op) Op {
	if inst.Rm != inst.Rn || !cond.Invertible() {
		return base
	}
	if inst.Rn == ZR && zeroOp != OpUnknown {
		return zeroOp
	}
	return oneOp
}

// decodeThreeSource decodes multiply-add and the widening multiplies, with
// the MUL/MNEG-style aliases when the addend is the zero register.
// Format: sf | op54 | 11011 | op31 | Rm | o0 | Ra | Rn | Rd
func (d *Decoder) decodeThreeSource(word uint32, inst *Inst) {
	sf := bit(word, 31)
	if field(word, 30, 29) != 0 {
		d.unknown(word, inst)
		return
	}
	op31 := field(word, 23, 21)
	o0 := bit(word, 15)

	inst.Flags = flagsW32(sf)
	inst.Rd = regZR(field(word, 4, 0))
	inst.Rn = regZR(field(word, 9, 5))
	inst.Rm = regZR(field(word, 20, 16))
	inst.Ra = regZR(field(word, 14, 10))

	// The widening and high-half multiplies only exist in 64-bit form.
	if op31 != 0 && sf == 0 {
		d.invalid(inst, "multiply: widening form requires 64-bit variant")
		return
	}

	switch op31<<1 | o0 {
	case 0b000_0:
		if inst.Ra == ZR {
			inst.Op = OpMUL
		} else {
			inst.Op = OpMADD
		}
	case 0b000_1:
		if inst.Ra == ZR {
			inst.Op = OpMNEG
		} else {
			inst.Op = OpMSUB
		}
	case 0b001_0:
		if inst.Ra == ZR {
			inst.Op = OpSMULL
		} else {
			inst.Op = OpSMADDL
		}
	case 0b001_1:
		if inst.Ra == ZR {
			inst.Op = OpSMNEGL
		} else {
			inst.Op = OpSMSUBL
		}
	case 0b010_0:
		inst.Op = OpSMULH
	case 0b101_0:
		if inst.Ra == ZR {
			inst.Op = OpUMULL
		} else {
			inst.Op = OpUMADDL
		}
	case 0b101_1:
		if inst.Ra == ZR {
			inst.Op = OpUMNEGL
		} else {
			inst.Op = OpUMSUBL
		}
	case 0b110_0:
		inst.Op = OpUMULH
	default:
		d.unknown(word, inst)
	}
}
