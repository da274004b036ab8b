package insts

// Reg identifies a register operand.
//
// The architecture overloads register number 31: many instructions interpret
// it as the zero register ZR/WZR (reads as zero, writes are discarded) while
// others interpret it as the stack pointer SP/WSP. The decoder resolves this
// at decode time, so a consumer never needs to know which instructions use
// the SP and which use the ZR: index 31 decoded in a zero-register role
// stays ZR, while index 31 decoded in a stack-pointer role becomes the
// distinct SP identity. Ordinary indices 0-30 (0-31 for SIMD&FP registers,
// which have no overloading) pass through unchanged.
type Reg uint8

const (
	// ZR is the zero-register identity of register 31.
	ZR Reg = 31
	// SP is the stack-pointer identity of register 31. The value is
	// arbitrary; it only needs to be disjoint from ZR and 0-30.
	SP Reg = 100
)

// regZR returns register n with 31 meaning the zero register.
func regZR(n uint32) Reg {
	return Reg(n)
}

// regSP returns register n with 31 meaning the stack pointer.
func regSP(n uint32) Reg {
	if n == 31 {
		return SP
	}
	return Reg(n)
}

// regFP returns SIMD&FP register n; all 32 are ordinary registers.
func regFP(n uint32) Reg {
	return Reg(n)
}
