package insts

// Cond represents an ARM64 condition code. The low three bits select the
// condition proper; the lowest bit inverts it.
type Cond uint8

// ARM64 condition codes.
const (
	CondEQ Cond = 0b0000 // Equal (Z == 1)
	CondNE Cond = 0b0001 // Not Equal (Z == 0)
	CondCS Cond = 0b0010 // Carry Set / Unsigned higher or same (C == 1)
	CondCC Cond = 0b0011 // Carry Clear / Unsigned lower (C == 0)
	CondMI Cond = 0b0100 // Minus / Negative (N == 1)
	CondPL Cond = 0b0101 // Plus / Positive or zero (N == 0)
	CondVS Cond = 0b0110 // Overflow (V == 1)
	CondVC Cond = 0b0111 // No overflow (V == 0)
	CondHI Cond = 0b1000 // Unsigned higher (C == 1 && Z == 0)
	CondLS Cond = 0b1001 // Unsigned lower or same (C == 0 || Z == 1)
	CondGE Cond = 0b1010 // Signed greater than or equal (N == V)
	CondLT Cond = 0b1011 // Signed less than (N != V)
	CondGT Cond = 0b1100 // Signed greater than (Z == 0 && N == V)
	CondLE Cond = 0b1101 // Signed less than or equal (Z == 1 || N != V)
	CondAL Cond = 0b1110 // Always (unconditional)
	CondNV Cond = 0b1111 // Always (unconditional, not "never" as in A32)
)

// Invert returns the inverse condition (EQ <-> NE, ...). AL and NV have no
// inverse and are returned unchanged; callers must check Invertible first.
func (c Cond) Invert() Cond {
	if !c.Invertible() {
		return c
	}
	return c ^ 1
}

// Invertible reports whether the condition has an inverse; AL and NV do not.
func (c Cond) Invertible() bool {
	return c&0b1110 != 0b1110
}

// Shift represents a shift type for shifted-register and immediate-shift
// operands.
type Shift uint8

// Shift types.
const (
	ShiftLSL Shift = 0b00 // Logical shift left
	ShiftLSR Shift = 0b01 // Logical shift right
	ShiftASR Shift = 0b10 // Arithmetic shift right
	ShiftROR Shift = 0b11 // Rotate right (RORV and ROR-immediate only)
)

// AddrMode represents the address computation strategy of a load/store
// instruction. The base register is stored in Inst.Rn.
type AddrMode uint8

// Addressing modes.
const (
	AMSimple  AddrMode = 0 // [base] -- exclusive/ordered/atomic; see LdStOrder
	AMOffImm  AddrMode = 1 // [base, #imm]
	AMOffReg  AddrMode = 2 // [base, Xm, {LSL #amount}]
	AMOffExt  AddrMode = 3 // [base, Wm, {S|U}XTW {#amount}]
	AMPre     AddrMode = 4 // [base, #imm]!
	AMPost    AddrMode = 5 // [base], #imm (LDx/STx also register: [base], Xm)
	AMLiteral AddrMode = 6 // PC-relative label
)

// MemOrdering represents memory-ordering semantics of atomic instructions
// and of loads/stores in the exclusive and ordered groups.
type MemOrdering uint8

// Memory orderings.
const (
	MONone      MemOrdering = iota
	MOAcquire               // Load-Acquire, sequentially consistent
	MOLOAcquire             // Load-LOAcquire, acquire in a Limited Ordering Region
	MOAcquirePC             // Load-AcquirePC, weaker processor-consistent acquire
	MORelease               // Store-Release
	MOLORelease             // Store-LORelease, release in a Limited Ordering Region
)

// Size represents an access or element size, encoded in two bits.
type Size uint8

// Sizes.
const (
	SizeB Size = 0b00 // Byte     -  8 bit
	SizeH Size = 0b01 // Halfword - 16 bit
	SizeW Size = 0b10 // Word     - 32 bit
	SizeX Size = 0b11 // Extended - 64 bit
)

// FPSize represents a SIMD&FP operand size. Synonymous with Size up to
// doubleword, with an additional value for the 128-bit quad precision,
// which the raw encodings represent in various incoherent ways.
type FPSize uint8

// Floating-point sizes.
const (
	FPSizeB FPSize = 0b000 // Byte   -   8 bits
	FPSizeH FPSize = 0b001 // Half   -  16 bits
	FPSizeS FPSize = 0b010 // Single -  32 bits
	FPSizeD FPSize = 0b011 // Double -  64 bits
	FPSizeQ FPSize = 0b111 // Quad   - 128 bits
)

// VectorArrangement determines the structure of the vectors used by a SIMD
// instruction: per-lane element width times total vector width. It is
// encoded as elementsize(2):fullwidth(1). The vector registers are 128 bits
// long; some arrangements use only the bottom 64 bits.
type VectorArrangement uint8

// Vector arrangements.
const (
	VA8B  VectorArrangement = VectorArrangement(FPSizeB)<<1 | 0 //  64 bit
	VA16B VectorArrangement = VectorArrangement(FPSizeB)<<1 | 1 // 128 bit
	VA4H  VectorArrangement = VectorArrangement(FPSizeH)<<1 | 0 //  64 bit
	VA8H  VectorArrangement = VectorArrangement(FPSizeH)<<1 | 1 // 128 bit
	VA2S  VectorArrangement = VectorArrangement(FPSizeS)<<1 | 0 //  64 bit
	VA4S  VectorArrangement = VectorArrangement(FPSizeS)<<1 | 1 // 128 bit
	VA1D  VectorArrangement = VectorArrangement(FPSizeD)<<1 | 0 //  64 bit
	VA2D  VectorArrangement = VectorArrangement(FPSizeD)<<1 | 1 // 128 bit
)

// arrangement builds the VectorArrangement for the given element size and
// full-width (Q) bit.
func arrangement(esz FPSize, q uint32) VectorArrangement {
	return VectorArrangement(esz)<<1 | VectorArrangement(q&1)
}

// FPRounding represents a floating-point rounding mode. The letter is the
// one used in the FCVT* mnemonics.
type FPRounding uint8

// Rounding modes.
const (
	FPRCurrent FPRounding = iota // current FPCR rounding mode
	FPRTieEven                   // N, nearest with ties to even (IEEE 754 default)
	FPRTieAway                   // A, nearest with ties away from zero
	FPRNegInf                    // M, toward negative infinity
	FPRZero                      // Z, toward zero
	FPRPosInf                    // P, toward positive infinity
	FPROdd                       // XN, round to odd, only used by FCVTXN
)

// ExtendType represents a register extension, encoded as signed(1):size(2).
type ExtendType uint8

// Extension types.
const (
	ExtUXTB ExtendType = ExtendType(0<<2) | ExtendType(SizeB)
	ExtUXTH ExtendType = ExtendType(0<<2) | ExtendType(SizeH)
	ExtUXTW ExtendType = ExtendType(0<<2) | ExtendType(SizeW)
	ExtUXTX ExtendType = ExtendType(0<<2) | ExtendType(SizeX) // also LSL
	ExtSXTB ExtendType = ExtendType(1<<2) | ExtendType(SizeB)
	ExtSXTH ExtendType = ExtendType(1<<2) | ExtendType(SizeH)
	ExtSXTW ExtendType = ExtendType(1<<2) | ExtendType(SizeW)
	ExtSXTX ExtendType = ExtendType(1<<2) | ExtendType(SizeX)
)

// PStateField identifies which PSTATE bits an MSR-immediate modifies.
type PStateField uint8

// PSTATE fields.
const (
	PSFUAO PStateField = iota
	PSFPAN
	PSFSPSel
	PSFSSBS
	PSFDIT
	PSFDAIFSet
	PSFDAIFClr
)

// Flags is the compact attributes word of an instruction.
//
// Layout:
//
//	bit 0      W32: use the 32-bit W0...W31 facets of the registers
//	bit 1      SetFlags: the instruction sets the NZCV flags (S suffix)
//	bit 2      Scalar: SIMD instruction operating on a scalar (see Inst.Prec)
//	bit 3      Signed: SIMD integer op treats values as signed; also set on
//	           sign-extending loads (LDRS*, LDPSW) and signed atomics
//	bit 4      Round: SIMD integer op rounds instead of truncating
//	bits 7:5   access size of a load/store, as an FPSize
//	bits 11:8  condition code (conditional branch/select/compare opcodes)
//	bits 10:8  addressing mode (load/store opcodes)
//
// Bits 11:8 are intentionally shared between the condition code and the
// addressing mode: no opcode carries both. Which interpretation applies is
// fixed by the opcode's category, never by the bits themselves.
type Flags uint16

// Individual flag bits.
const (
	FlagW32      Flags = 1 << 0
	FlagSetFlags Flags = 1 << 1
	FlagScalar   Flags = 1 << 2
	FlagSigned   Flags = 1 << 3
	FlagRound    Flags = 1 << 4
)

// W32 reports whether the instruction uses the 32-bit register facets.
func (f Flags) W32() bool { return f&FlagW32 != 0 }

// SetFlags reports whether the instruction sets the NZCV flags.
func (f Flags) SetFlags() bool { return f&FlagSetFlags != 0 }

// Scalar reports whether a SIMD instruction operates on a scalar.
func (f Flags) Scalar() bool { return f&FlagScalar != 0 }

// Signed reports signedness of a SIMD integer op or sign-extension of a load.
func (f Flags) Signed() bool { return f&FlagSigned != 0 }

// Round reports whether a SIMD integer op rounds instead of truncating.
func (f Flags) Round() bool { return f&FlagRound != 0 }

// Size returns the memory access size of a load/store opcode.
func (f Flags) Size() FPSize { return FPSize(f >> 5 & 0b111) }

// Cond returns the condition code of a conditional branch/select/compare
// opcode. Meaningless for other opcodes (the bits hold the addressing mode).
func (f Flags) Cond() Cond { return Cond(f >> 8 & 0b1111) }

// AddrMode returns the addressing mode of a load/store opcode. Meaningless
// for other opcodes (the bits hold the condition code).
func (f Flags) AddrMode() AddrMode { return AddrMode(f >> 8 & 0b111) }

// flagsW32 returns FlagW32 if sf selects the 32-bit facets (sf == 0).
func flagsW32(sf uint32) Flags {
	if sf == 0 {
		return FlagW32
	}
	return 0
}

// condFlags places a condition code into the shared attribute bits.
func condFlags(c Cond) Flags { return Flags(c&0b1111) << 8 }

// addrModeFlags places an addressing mode into the shared attribute bits.
func addrModeFlags(m AddrMode) Flags { return Flags(m&0b111) << 8 }

// sizeFlags places a load/store access size into the attribute bits.
func sizeFlags(sz FPSize) Flags { return Flags(sz&0b111) << 5 }
