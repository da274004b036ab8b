package insts

// decodeBranches decodes branches, exception generation, and system
// instructions. All branch targets are byte offsets relative to the
// address of the branch itself.
func (d *Decoder) decodeBranches(word uint32, addr uint64, inst *Inst) {
	switch field(word, 31, 29) {
	case 0b010:
		d.decodeCondBranch(word, inst)
	case 0b000, 0b100:
		// B / BL
		// Format: op | 00101 | imm26
		if bit(word, 31) == 0 {
			inst.Op = OpB
		} else {
			inst.Op = OpBL
		}
		inst.Offset = sext(uint64(field(word, 25, 0)), 26) * 4
	case 0b001, 0b101:
		switch field(word, 30, 25) {
		case 0b011010:
			d.decodeCompareBranch(word, inst)
		case 0b011011:
			d.decodeTestBranch(word, inst)
		default:
			d.unknown(word, inst)
		}
	case 0b110:
		switch {
		case word>>24 == 0xD4:
			d.decodeException(word, inst)
		case word>>22 == 0b1101010100:
			d.decodeSystem(word, inst)
		case field(word, 31, 25) == 0b1101011:
			d.decodeBranchReg(word, inst)
		default:
			d.unknown(word, inst)
		}
	default:
		d.unknown(word, inst)
	}
}

// decodeCondBranch decodes B.cond.
// Format: 0101010 | 0 | imm19 | 0 | cond
func (d *Decoder) decodeCondBranch(word uint32, inst *Inst) {
	if bit(word, 24) != 0 || bit(word, 4) != 0 {
		d.unknown(word, inst)
		return
	}
	inst.Op = OpBCond
	inst.Flags = condFlags(Cond(field(word, 3, 0)))
	inst.Offset = sext(uint64(field(word, 23, 5)), 19) * 4
}

// decodeCompareBranch decodes CBZ and CBNZ.
// Format: sf | 011010 | op | imm19 | Rt
func (d *Decoder) decodeCompareBranch(word uint32, inst *Inst) {
	if bit(word, 24) == 0 {
		inst.Op = OpCBZ
	} else {
		inst.Op = OpCBNZ
	}
	inst.Flags = flagsW32(bit(word, 31))
	inst.Rd = regZR(field(word, 4, 0))
	inst.Offset = sext(uint64(field(word, 23, 5)), 19) * 4
}

// decodeTestBranch decodes TBZ and TBNZ. The tested bit number spans the
// b5:b40 fields, and b5 doubles as the register width selector.
// Format: b5 | 011011 | op | b40 | imm14 | Rt
func (d *Decoder) decodeTestBranch(word uint32, inst *Inst) {
	b5 := bit(word, 31)
	if bit(word, 24) == 0 {
		inst.Op = OpTBZ
	} else {
		inst.Op = OpTBNZ
	}
	inst.Flags = flagsW32(b5)
	inst.Rd = regZR(field(word, 4, 0))
	inst.Aux = TestBranch{
		Bit:    uint8(b5<<5 | field(word, 23, 19)),
		Offset: sext(uint64(field(word, 18, 5)), 14) * 4,
	}
}

// decodeException decodes the exception generation group.
// Format: 11010100 | opc | imm16 | op2 | LL
func (d *Decoder) decodeException(word uint32, inst *Inst) {
	opc := field(word, 23, 21)
	imm16 := field(word, 20, 5)
	op2 := field(word, 4, 2)
	ll := field(word, 1, 0)

	if op2 != 0 {
		d.unknown(word, inst)
		return
	}
	switch opc<<2 | ll {
	case 0b000_01:
		inst.Op = OpSVC
	case 0b000_10:
		inst.Op = OpHVC
	case 0b000_11:
		inst.Op = OpSMC
	case 0b001_00:
		inst.Op = OpBRK
	case 0b010_00:
		inst.Op = OpHLT
	case 0b101_01:
		inst.Op = OpDCPS1
	case 0b101_10:
		inst.Op = OpDCPS2
	case 0b101_11:
		inst.Op = OpDCPS3
	default:
		d.unknown(word, inst)
		return
	}
	inst.Imm = uint64(imm16)
}

// decodeSystem decodes hints, barriers, PSTATE writes, SYS/SYSL, and
// system register moves.
// Format: 1101010100 | L | op0 | op1 | CRn | CRm | op2 | Rt
func (d *Decoder) decodeSystem(word uint32, inst *Inst) {
	l := bit(word, 21)
	op0 := field(word, 20, 19)
	op1 := field(word, 18, 16)
	crn := field(word, 15, 12)
	crm := field(word, 11, 8)
	op2 := field(word, 7, 5)
	rt := field(word, 4, 0)

	switch {
	case l == 0 && op0 == 0:
		switch {
		case crn == 2 && rt == 0b11111:
			// NOP, YIELD, WFE, WFI, SEV, SEVL, and friends all
			// behave identically for decoding purposes.
			inst.Op = OpHINT
			inst.Imm = uint64(crm<<3 | op2)
		case crn == 3:
			d.decodeBarrier(word, crm, op2, rt, inst)
		case crn == 4:
			d.decodePState(word, op1, crm, op2, rt, inst)
		default:
			d.unknown(word, inst)
		}
	case op0 == 1:
		if l == 0 {
			inst.Op = OpSYS
		} else {
			inst.Op = OpSYSL
		}
		inst.Rd = regZR(rt)
		inst.Aux = SysOp{Op1: uint16(op1), Op2: uint16(op2), CRn: uint16(crn), CRm: uint16(crm)}
	case op0 == 2 || op0 == 3:
		if l == 0 {
			inst.Op = OpMSRReg
		} else {
			inst.Op = OpMRS
		}
		inst.Rd = regZR(rt)
		// Packed system register number: o0:op1:CRn:CRm:op2, where
		// o0 is the low bit of op0 (op0 is 2 or 3 here).
		inst.Imm = uint64((op0&1)<<14 | op1<<11 | crn<<7 | crm<<3 | op2)
	default:
		d.unknown(word, inst)
	}
}

func (d *Decoder) decodeBarrier(word, crm, op2, rt uint32, inst *Inst) {
	if rt != 0b11111 {
		d.unknown(word, inst)
		return
	}
	switch op2 {
	case 0b010:
		inst.Op = OpCLREX
		inst.Imm = uint64(crm)
	case 0b100:
		switch crm {
		case 0b0000:
			inst.Op = OpSSBB
		case 0b0100:
			inst.Op = OpPSSBB
		default:
			inst.Op = OpDSB
			inst.Imm = uint64(crm)
		}
	case 0b101:
		inst.Op = OpDMB
		inst.Imm = uint64(crm)
	case 0b110:
		inst.Op = OpISB
		inst.Imm = uint64(crm)
	case 0b111:
		inst.Op = OpSB
	default:
		d.unknown(word, inst)
	}
}

func (d *Decoder) decodePState(word, op1, crm, op2, rt uint32, inst *Inst) {
	if rt != 0b11111 {
		d.unknown(word, inst)
		return
	}
	if op1 == 0 && crm == 0 {
		switch op2 {
		case 0b000:
			inst.Op = OpCFINV
			return
		case 0b001:
			inst.Op = OpXAFlag
			return
		case 0b010:
			inst.Op = OpAXFlag
			return
		}
	}
	var f PStateField
	switch op1<<3 | op2 {
	case 0b000_011:
		f = PSFUAO
	case 0b000_100:
		f = PSFPAN
	case 0b000_101:
		f = PSFSPSel
	case 0b011_001:
		f = PSFSSBS
	case 0b011_010:
		f = PSFDIT
	case 0b011_110:
		f = PSFDAIFSet
	case 0b011_111:
		f = PSFDAIFClr
	default:
		d.invalid(inst, "MSR (immediate): unallocated PSTATE field op1=%d op2=%d", op1, op2)
		return
	}
	inst.Op = OpMSRImm
	inst.Aux = MSRImm{Field: f, Imm: uint8(crm)}
}

// decodeBranchReg decodes BR, BLR, and RET.
// Format: 1101011 | opc | 11111 | op3 | Rn | op4
func (d *Decoder) decodeBranchReg(word uint32, inst *Inst) {
	if field(word, 20, 16) != 0b11111 {
		d.unknown(word, inst)
		return
	}
	if field(word, 15, 10) != 0 || field(word, 4, 0) != 0 {
		d.unknown(word, inst)
		return
	}
	switch field(word, 24, 21) {
	case 0b0000:
		inst.Op = OpBR
	case 0b0001:
		inst.Op = OpBLR
	case 0b0010:
		inst.Op = OpRET
	default:
		d.unknown(word, inst)
		return
	}
	inst.Rn = regZR(field(word, 9, 5))
}
