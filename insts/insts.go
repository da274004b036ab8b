// Package insts provides ARM64 (A64) instruction definitions and decoding.
//
// This package implements decoding of raw 32-bit A64 machine code words into
// structured, semantically normalized instruction records. Beyond opcode
// classification it extracts and canonicalizes:
//   - operand registers, with register 31 resolved into the disjoint
//     zero-register (ZR) and stack-pointer (SP) identities
//   - immediates, branch offsets (always byte-granular, relative to the
//     instruction's own address) and PC-relative targets
//   - condition codes, shift/extend operands and addressing modes
//   - memory-ordering semantics of exclusive, ordered and atomic accesses
//   - vector arrangements and scalar FP precision for SIMD instructions
//   - architectural aliases (MOV as ORR, CMP as SUBS, CSET as CSINC, ...),
//     resolved by predicates over already-decoded fields
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x91002820, 0x4000) // ADD X0, X1, #10
//	fmt.Printf("Op: %v, Rd: %d, Rn: %d, Imm: %d\n", inst.Op, inst.Rd, inst.Rn, inst.Imm)
//
// Decoding is a pure function: one word in, one record out, no shared state.
// It is safe to call concurrently from any number of goroutines. Every call
// terminates; unallocated or malformed words yield OpUnknown or OpError
// records rather than panics.
package insts
