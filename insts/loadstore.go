package insts

// decodeLoadStore decodes the loads-and-stores class. Bits [29:28] pick
// the subgroup and bit 26 (V) selects the SIMD&FP register file.
func (d *Decoder) decodeLoadStore(word uint32, addr uint64, inst *Inst) {
	v := bit(word, 26)
	switch field(word, 29, 28) {
	case 0b00:
		if v == 1 {
			d.decodeSIMDLdStStruct(word, inst)
		} else {
			d.decodeExclusive(word, inst)
		}
	case 0b01:
		if bit(word, 24) == 0 {
			d.decodeLiteral(word, addr, inst)
		} else {
			// LDAPR/STLR (unscaled) and memory tagging live here.
			d.unknown(word, inst)
		}
	case 0b10:
		d.decodePair(word, inst)
	case 0b11:
		d.decodeRegister(word, inst)
	}
}

// decodeExclusive decodes load/store exclusive, the ordered loads/stores
// (LDAR and friends), and compare-and-swap.
// Format: size | 001000 | o2 | L | o1 | Rs | o0 | Rt2 | Rn | Rt
func (d *Decoder) decodeExclusive(word uint32, inst *Inst) {
	if bit(word, 24) != 0 {
		d.unknown(word, inst)
		return
	}
	size := field(word, 31, 30)
	o2 := bit(word, 23)
	l := bit(word, 22)
	o1 := bit(word, 21)
	rs := field(word, 20, 16)
	o0 := bit(word, 15)
	rt2 := field(word, 14, 10)

	inst.Flags = sizeFlags(FPSize(size)) | addrModeFlags(AMSimple)
	if size != 0b11 {
		inst.Flags |= FlagW32
	}
	inst.Rd = regZR(field(word, 4, 0))
	inst.Rn = regSP(field(word, 9, 5))

	switch o2<<1 | o1 {
	case 0b00:
		order := LdStOrder{Rs: regZR(rs)}
		if l == 0 {
			inst.Op = OpSTXR
			if o0 == 1 {
				order.Store = MORelease
			}
		} else {
			inst.Op = OpLDXR
			if o0 == 1 {
				order.Load = MOAcquire
			}
			order.Rs = ZR
		}
		inst.Aux = order
	case 0b01:
		if size >= 0b10 {
			// LDXP/STXP
			order := LdStOrder{Rs: regZR(rs)}
			inst.Rt2 = regZR(rt2)
			if l == 0 {
				inst.Op = OpSTXP
				if o0 == 1 {
					order.Store = MORelease
				}
			} else {
				inst.Op = OpLDXP
				if o0 == 1 {
					order.Load = MOAcquire
				}
				order.Rs = ZR
			}
			inst.Aux = order
		} else {
			// CASP: size selects a 32- or 64-bit register pair.
			if rt2 != 0b11111 {
				d.unknown(word, inst)
				return
			}
			inst.Op = OpCASP
			inst.Flags = sizeFlags(FPSize(size + 2)) | addrModeFlags(AMSimple)
			if size == 0 {
				inst.Flags |= FlagW32
			}
			inst.Aux = casOrder(l, o0, rs)
		}
	case 0b10:
		// LDAR/LDLAR/STLR/STLLR: plain loads/stores with ordering.
		if rs != 0b11111 || rt2 != 0b11111 {
			d.unknown(word, inst)
			return
		}
		order := LdStOrder{Rs: ZR}
		if l == 0 {
			inst.Op = OpSTR
			if o0 == 1 {
				order.Store = MORelease
			} else {
				order.Store = MOLORelease
			}
		} else {
			inst.Op = OpLDR
			if o0 == 1 {
				order.Load = MOAcquire
			} else {
				order.Load = MOLOAcquire
			}
		}
		inst.Aux = order
	case 0b11:
		if rt2 != 0b11111 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpCAS
		inst.Aux = casOrder(l, o0, rs)
	}
}

func casOrder(l, o0, rs uint32) LdStOrder {
	order := LdStOrder{Rs: regZR(rs)}
	if l == 1 {
		order.Load = MOAcquire
	}
	if o0 == 1 {
		order.Store = MORelease
	}
	return order
}

// decodeLiteral decodes the PC-relative (literal) loads. The target
// address is fully materialized because both the base and the offset are
// known at decode time.
// Format: opc | 011 | V | 00 | imm19 | Rt
func (d *Decoder) decodeLiteral(word uint32, addr uint64, inst *Inst) {
	opc := field(word, 31, 30)
	v := bit(word, 26)
	offset := sext(uint64(field(word, 23, 5)), 19) * 4
	rt := field(word, 4, 0)

	inst.Flags = addrModeFlags(AMLiteral)
	inst.Offset = offset
	inst.Imm = addr + uint64(offset)

	if v == 1 {
		if opc == 0b11 {
			d.unknown(word, inst)
			return
		}
		inst.Op = OpLDRFP
		inst.Rd = regFP(rt)
		inst.Prec = [3]FPSize{FPSizeS, FPSizeD, FPSizeQ}[opc]
		inst.Flags |= sizeFlags(inst.Prec)
		return
	}
	switch opc {
	case 0b00:
		inst.Op = OpLDR
		inst.Flags |= FlagW32 | sizeFlags(FPSize(SizeW))
		inst.Rd = regZR(rt)
	case 0b01:
		inst.Op = OpLDR
		inst.Flags |= sizeFlags(FPSize(SizeX))
		inst.Rd = regZR(rt)
	case 0b10:
		// LDRSW: 32-bit access sign-extended into a 64-bit register.
		inst.Op = OpLDR
		inst.Flags |= FlagSigned | sizeFlags(FPSize(SizeW))
		inst.Rd = regZR(rt)
	case 0b11:
		inst.Op = OpPRFM
		inst.Rd = Reg(rt) // prefetch operation number, not a register
	}
}

// decodePair decodes the load/store pair group, including the
// non-temporal forms and LDPSW.
// Format: opc | 101 | V | op2 | L | imm7 | Rt2 | Rn | Rt
func (d *Decoder) decodePair(word uint32, inst *Inst) {
	opc := field(word, 31, 30)
	v := bit(word, 26)
	op2 := field(word, 24, 23)
	l := bit(word, 22)
	imm7 := sext(uint64(field(word, 21, 15)), 7)
	rt2 := field(word, 14, 10)
	rt := field(word, 4, 0)

	mode := [4]AddrMode{AMOffImm, AMPost, AMOffImm, AMPre}[op2]
	nontemporal := op2 == 0b00

	var scale int64
	if v == 1 {
		if opc == 0b11 {
			d.invalid(inst, "load/store pair: reserved SIMD&FP opc")
			return
		}
		prec := [3]FPSize{FPSizeS, FPSizeD, FPSizeQ}[opc]
		scale = int64(4) << opc
		inst.Prec = prec
		inst.Flags = sizeFlags(prec) | addrModeFlags(mode)
		inst.Rd = regFP(rt)
		inst.Rt2 = regFP(rt2)
		switch {
		case nontemporal && l == 1:
			inst.Op = OpLDNPFP
		case nontemporal:
			inst.Op = OpSTNPFP
		case l == 1:
			inst.Op = OpLDPFP
		default:
			inst.Op = OpSTPFP
		}
	} else {
		switch opc {
		case 0b00:
			scale = 4
			inst.Flags = FlagW32 | sizeFlags(FPSize(SizeW))
		case 0b01:
			// LDPSW; there is no signed store pair (STGP is MTE).
			if l == 0 || nontemporal {
				d.unknown(word, inst)
				return
			}
			scale = 4
			inst.Flags = FlagSigned | sizeFlags(FPSize(SizeW))
		case 0b10:
			scale = 8
			inst.Flags = sizeFlags(FPSize(SizeX))
		case 0b11:
			d.unknown(word, inst)
			return
		}
		inst.Flags |= addrModeFlags(mode)
		inst.Rd = regZR(rt)
		inst.Rt2 = regZR(rt2)
		switch {
		case nontemporal && l == 1:
			inst.Op = OpLDNP
		case nontemporal:
			inst.Op = OpSTNP
		case l == 1:
			inst.Op = OpLDP
		default:
			inst.Op = OpSTP
		}
	}
	inst.Rn = regSP(field(word, 9, 5))
	inst.Offset = imm7 * scale
}

// decodeRegister decodes the load/store register group: unsigned
// immediate, unscaled immediate, pre/post-indexed, register offset, and
// the atomic memory operations.
// Format: size | 111 | V | 0? | opc | ... | Rn | Rt
func (d *Decoder) decodeRegister(word uint32, inst *Inst) {
	size := field(word, 31, 30)
	v := bit(word, 26)
	opc := field(word, 23, 22)
	rn := field(word, 9, 5)

	scale := size
	if v == 1 {
		scale = (opc&0b10)<<1 | size
	}

	if bit(word, 24) == 1 {
		// Unsigned scaled 12-bit immediate offset.
		if !d.setRegLdStOp(word, v, size, opc, scale, inst) {
			return
		}
		inst.Flags |= addrModeFlags(AMOffImm)
		inst.Offset = int64(field(word, 21, 10)) << scale
		inst.Rn = regSP(rn)
		return
	}

	op4 := field(word, 11, 10)
	switch {
	case bit(word, 21) == 1 && op4 == 0b10:
		// Register offset.
		option := field(word, 15, 13)
		if option&0b010 == 0 {
			d.invalid(inst, "load/store register offset: reserved extend option %#b", option)
			return
		}
		if !d.setRegLdStOp(word, v, size, opc, scale, inst) {
			return
		}
		var amount uint8
		if bit(word, 12) == 1 {
			amount = uint8(scale)
		}
		mode := AMOffExt
		if option == 0b011 {
			mode = AMOffReg
		}
		inst.Flags |= addrModeFlags(mode)
		inst.Aux = ExtendOp{Type: ExtendType(option), LSL: amount}
		inst.Rm = regZR(field(word, 20, 16))
		inst.Rn = regSP(rn)
	case bit(word, 21) == 1 && op4 == 0b00:
		d.decodeAtomic(word, size, inst)
	case bit(word, 21) == 0:
		if op4 == 0b10 {
			d.invalid(inst, "unprivileged load/store not supported")
			return
		}
		if !d.setRegLdStOp(word, v, size, opc, scale, inst) {
			return
		}
		inst.Flags |= addrModeFlags([4]AddrMode{AMOffImm, AMPost, 0, AMPre}[op4])
		inst.Offset = sext(uint64(field(word, 20, 12)), 9) // unscaled
		inst.Rn = regSP(rn)
	default:
		d.unknown(word, inst)
	}
}

// setRegLdStOp fills in Op, Flags (width, sign, access size), Prec, and
// the destination register for the load/store register group, which share
// one size/opc matrix across all addressing modes. Reports false after
// routing to unknown or invalid.
func (d *Decoder) setRegLdStOp(word, v, size, opc, scale uint32, inst *Inst) bool {
	rt := field(word, 4, 0)

	if v == 1 {
		if scale > 4 {
			d.unknown(word, inst)
			return false
		}
		prec := [5]FPSize{FPSizeB, FPSizeH, FPSizeS, FPSizeD, FPSizeQ}[scale]
		inst.Prec = prec
		inst.Flags = sizeFlags(prec)
		inst.Rd = regFP(rt)
		if opc&0b01 == 1 {
			inst.Op = OpLDRFP
		} else {
			inst.Op = OpSTRFP
		}
		return true
	}

	inst.Flags = sizeFlags(FPSize(size))
	inst.Rd = regZR(rt)
	switch opc {
	case 0b00:
		inst.Op = OpSTR
		if size != 0b11 {
			inst.Flags |= FlagW32
		}
	case 0b01:
		inst.Op = OpLDR
		if size != 0b11 {
			inst.Flags |= FlagW32
		}
	case 0b10:
		if size == 0b11 {
			inst.Op = OpPRFM
			inst.Rd = Reg(rt)
			return true
		}
		// Signed load into a 64-bit register.
		inst.Op = OpLDR
		inst.Flags |= FlagSigned
	case 0b11:
		if size >= 0b10 {
			d.unknown(word, inst)
			return false
		}
		// Signed load into a 32-bit register.
		inst.Op = OpLDR
		inst.Flags |= FlagSigned | FlagW32
	}
	return true
}

// decodeAtomic decodes the atomic memory operations (LDADD and friends,
// SWP, and LDAPR which squats in this encoding space).
// Format: size | 111000 | A | R | 1 | Rs | o3 | opc | 00 | Rn | Rt
func (d *Decoder) decodeAtomic(word, size uint32, inst *Inst) {
	if bit(word, 26) == 1 {
		d.unknown(word, inst)
		return
	}
	a := bit(word, 23)
	r := bit(word, 22)
	rs := field(word, 20, 16)
	o3 := bit(word, 15)
	opcode := field(word, 14, 12)

	inst.Flags = sizeFlags(FPSize(size)) | addrModeFlags(AMSimple)
	if size != 0b11 {
		inst.Flags |= FlagW32
	}
	inst.Rd = regZR(field(word, 4, 0))
	inst.Rn = regSP(field(word, 9, 5))
	order := LdStOrder{Rs: regZR(rs)}
	if a == 1 {
		order.Load = MOAcquire
	}
	if r == 1 {
		order.Store = MORelease
	}

	if o3 == 0 {
		inst.Op = [8]Op{
			OpLDADD, OpLDCLR, OpLDEOR, OpLDSET,
			OpLDSMAX, OpLDSMIN, OpLDUMAX, OpLDUMIN,
		}[opcode]
		if opcode == 0b100 || opcode == 0b101 {
			inst.Flags |= FlagSigned
		}
		inst.Aux = order
		return
	}
	switch {
	case opcode == 0b000:
		inst.Op = OpSWP
		inst.Aux = order
	case opcode == 0b100 && a == 1 && r == 0 && rs == 0b11111:
		inst.Op = OpLDAPR
		inst.Aux = LdStOrder{Load: MOAcquirePC, Rs: ZR}
	default:
		d.unknown(word, inst)
	}
}

// decodeSIMDLdStStruct decodes the SIMD load/store structure group: LD1-LD4
// and ST1-ST4 in their multiple-structure, single-structure, and
// load-replicate forms.
// Format: 0 | Q | 0011010/1 | L | ... | Rm | opcode | size | Rn | Rt
func (d *Decoder) decodeSIMDLdStStruct(word uint32, inst *Inst) {
	if bit(word, 31) != 0 {
		d.unknown(word, inst)
		return
	}
	if bit(word, 24) == 0 {
		d.decodeSIMDLdStMult(word, inst)
	} else {
		d.decodeSIMDLdStSingle(word, inst)
	}
}

func (d *Decoder) decodeSIMDLdStMult(word uint32, inst *Inst) {
	q := bit(word, 30)
	post := bit(word, 23)
	l := bit(word, 22)
	size := field(word, 11, 10)

	if bit(word, 21) != 0 {
		d.unknown(word, inst)
		return
	}

	var nreg uint8
	var interleaved bool
	switch field(word, 15, 12) {
	case 0b0000:
		nreg, interleaved = 4, true
	case 0b0010:
		nreg = 4
	case 0b0100:
		nreg, interleaved = 3, true
	case 0b0110:
		nreg = 3
	case 0b0111:
		nreg = 1
	case 0b1000:
		nreg, interleaved = 2, true
	case 0b1010:
		nreg = 2
	default:
		d.unknown(word, inst)
		return
	}
	// The 1D arrangement only exists for the de-interleaving count of 1.
	if size == 0b11 && q == 0 && interleaved {
		d.invalid(inst, "SIMD load/store multiple: 1D arrangement with %d interleaved structures", nreg)
		return
	}

	count := nreg
	if !interleaved {
		count = 1
	}
	if l == 1 {
		inst.Op = [4]Op{OpLD1Mult, OpLD2Mult, OpLD3Mult, OpLD4Mult}[count-1]
	} else {
		inst.Op = [4]Op{OpST1Mult, OpST2Mult, OpST3Mult, OpST4Mult}[count-1]
	}

	inst.Vec = arrangement(FPSize(size), q)
	inst.Rd = regFP(field(word, 4, 0))
	inst.Rn = regSP(field(word, 9, 5))
	aux := SIMDLdSt{NReg: nreg}
	mode := AMSimple
	if post == 1 {
		mode = AMPost
		rm := field(word, 20, 16)
		if rm == 0b11111 {
			aux.Offset = int16(nreg) * int16(8<<q)
		} else {
			inst.Rm = regZR(rm)
		}
	}
	inst.Flags = addrModeFlags(mode)
	inst.Aux = aux
}

func (d *Decoder) decodeSIMDLdStSingle(word uint32, inst *Inst) {
	q := bit(word, 30)
	post := bit(word, 23)
	l := bit(word, 22)
	r := bit(word, 21)
	opc := field(word, 15, 13)
	s := bit(word, 12)
	size := field(word, 11, 10)

	nreg := uint8((opc&1)*2 + r + 1)
	var esz FPSize
	var index uint8
	replicate := false

	switch opc >> 1 {
	case 0b00:
		esz = FPSizeB
		index = uint8(q<<3 | s<<2 | size)
	case 0b01:
		if size&1 != 0 {
			d.unknown(word, inst)
			return
		}
		esz = FPSizeH
		index = uint8(q<<2 | s<<1 | size>>1)
	case 0b10:
		switch {
		case size == 0b00:
			esz = FPSizeS
			index = uint8(q<<1 | s)
		case size == 0b01 && s == 0:
			esz = FPSizeD
			index = uint8(q)
		default:
			d.unknown(word, inst)
			return
		}
	case 0b11:
		// Load-replicate.
		if l != 1 || s != 0 {
			d.unknown(word, inst)
			return
		}
		replicate = true
		esz = FPSize(size)
	}

	if replicate {
		inst.Op = [4]Op{OpLD1R, OpLD2R, OpLD3R, OpLD4R}[nreg-1]
		inst.Vec = arrangement(esz, q)
	} else {
		loadOps := [4]Op{OpLD1Single, OpLD2Single, OpLD3Single, OpLD4Single}
		storeOps := [4]Op{OpST1Single, OpST2Single, OpST3Single, OpST4Single}
		if l == 1 {
			inst.Op = loadOps[nreg-1]
		} else {
			inst.Op = storeOps[nreg-1]
		}
	}

	inst.Rd = regFP(field(word, 4, 0))
	inst.Rn = regSP(field(word, 9, 5))
	aux := SIMDLdSt{NReg: nreg, Index: index}
	mode := AMSimple
	if post == 1 {
		mode = AMPost
		rm := field(word, 20, 16)
		if rm == 0b11111 {
			aux.Offset = int16(nreg) << esz
		} else {
			inst.Rm = regZR(rm)
		}
	}
	inst.Flags = sizeFlags(esz) | addrModeFlags(mode)
	inst.Aux = aux
}
