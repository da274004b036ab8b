package insts

// Aux is the opcode-class-specific payload of an instruction: operand
// details that do not fit the generic register/immediate/attributes shape.
// Exactly one concrete payload type matches each opcode that carries one;
// consumers type-switch on it. Opcodes without extra operands leave it nil.
type Aux interface {
	isAux()
}

// MovWide holds the raw immediate of MOVK, which cannot be precalculated
// into a plain value because it keeps the other bits of the destination.
type MovWide struct {
	Imm16 uint32 // 16-bit immediate
	LSL   uint8  // left shift amount: 0, 16, 32 or 48
}

// Bitfield holds the decoded field position of the bitfield-move aliases
// (BFI, BFXIL, SBFIZ, SBFX, UBFIZ, UBFX, BFC).
type Bitfield struct {
	LSB   uint8 // least significant bit of the field
	Width uint8 // width of the field in bits
}

// CondCmp holds the conditional-compare operands of CCMN/CCMP.
type CondCmp struct {
	NZCV uint8 // flags to set when the condition fails
	Imm5 uint8 // comparison immediate (immediate forms only)
}

// SysOp holds the operands of the generic system instructions SYS/SYSL.
type SysOp struct {
	Op1 uint16
	Op2 uint16
	CRn uint16
	CRm uint16
}

// MSRImm holds the operands of an MSR (immediate) PSTATE write.
type MSRImm struct {
	Field PStateField
	Imm   uint8 // the CRm immediate
}

// TestBranch holds the operands of TBZ/TBNZ. The tested bit position is
// split across two non-adjacent raw fields and reassembled here.
type TestBranch struct {
	Bit    uint8 // bit position 0-63
	Offset int64 // byte offset relative to the instruction address
}

// ShiftOp holds a generic shift operand (shifted-register forms and the
// ASR/LSL/LSR/ROR immediate aliases).
type ShiftOp struct {
	Type   Shift
	Amount uint8
}

// RotFlags holds the RMIF operands.
type RotFlags struct {
	Mask     uint8 // NZCV selection mask
	Rotation uint8 // rotate-right amount
}

// ExtendOp holds an extended-register operand (add/sub extended register,
// the SXT*/UXT* aliases, and extended-register offset addressing).
type ExtendOp struct {
	Type ExtendType
	LSL  uint8 // left shift applied after extension
}

// LdStOrder holds the memory-ordering semantics of exclusive, ordered and
// atomic loads/stores. Load and store ordering are independent: a single
// instruction may be load-acquire, store-release, both, or neither.
type LdStOrder struct {
	Load  MemOrdering
	Store MemOrdering
	Rs    Reg // status register of store-exclusive, or CAS compare value
}

// SIMDLdSt holds the structure-count, lane index and post-index offset of
// the SIMD multiple/single structure loads and stores.
type SIMDLdSt struct {
	NReg   uint8 // number of registers/structures: 1-4
	Index  uint8 // lane index (single-structure forms)
	Offset int16 // post-index immediate, in bytes
}

// FCvt holds the conversion parameters of float<->integer/fixed-point
// conversions. FBits > 0 selects a fixed-point conversion.
type FCvt struct {
	Mode   FPRounding
	FBits  uint8 // fixed-point fraction bits, 0 for integer conversion
	Signed bool
}

// FRound holds the parameters of the FRINT round-to-integral family.
type FRound struct {
	Mode FPRounding
	Bits uint8 // 0 for any size; 32 or 64 for the FRINT32*/FRINT64* forms
}

// InsElem holds the lane indices of an element-to-element INS.
type InsElem struct {
	Dst uint8
	Src uint8
}

// CmplxElem holds the lane index and rotation of the complex-arithmetic
// instructions FCMLA/FCADD.
type CmplxElem struct {
	Index    uint8
	Rotation uint16 // degrees: 0, 90, 180 or 270
}

func (MovWide) isAux()    {}
func (Bitfield) isAux()   {}
func (CondCmp) isAux()    {}
func (SysOp) isAux()      {}
func (MSRImm) isAux()     {}
func (TestBranch) isAux() {}
func (ShiftOp) isAux()    {}
func (RotFlags) isAux()   {}
func (ExtendOp) isAux()   {}
func (LdStOrder) isAux()  {}
func (SIMDLdSt) isAux()   {}
func (FCvt) isAux()       {}
func (FRound) isAux()     {}
func (InsElem) isAux()    {}
func (CmplxElem) isAux()  {}

// Inst represents one decoded A64 instruction. A record is constructed
// fresh per decode call, fully owned by the caller, and never mutated by
// the decoder after return.
type Inst struct {
	Op    Op
	Flags Flags

	// Register operands. Which fields are meaningful depends on the
	// opcode; unused fields are ZR.
	Rd  Reg // destination; transfer register Rt of loads/stores
	Rn  Reg // first source; base register of loads/stores
	Rm  Reg // second source; offset register of loads/stores
	Rt2 Reg // second transfer register of load/store pair forms
	Ra  Reg // accumulator of 3-source arithmetic

	// Vec is the vector arrangement of a SIMD instruction.
	Vec VectorArrangement
	// Prec is the scalar precision of a scalar SIMD&FP instruction,
	// recorded distinctly from the vector arrangement.
	Prec FPSize

	// Imm is the immediate operand. For OpUnknown it carries the raw
	// undecodable word; for ADR/ADRP and literal loads the materialized
	// absolute target address.
	Imm uint64
	// FImm is the expanded floating-point immediate of OpFMOVImm.
	FImm float64
	// Offset is a signed byte offset: branch displacement relative to
	// the instruction's own address, or the memory offset of a
	// load/store addressing mode.
	Offset int64

	// Error is the failure description of an OpError record.
	Error string

	// Aux is the opcode-class-specific payload, or nil.
	Aux Aux
}
