package insts

import "fmt"

// Decoder decodes A64 machine code into instruction records.
type Decoder struct{}

// NewDecoder creates a new A64 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes the 32-bit instruction word located at virtual address
// addr. The address is needed to materialize PC-relative targets (ADR,
// ADRP, literal loads); branch offsets are always recorded relative to it.
//
// Decode is total: every word yields exactly one record. Words that match
// no allocated encoding come back as OpUnknown with the raw word in Imm;
// encodings with a violated sub-constraint come back as OpError with a
// reason. Neither outcome is fatal and neither affects later calls.
func (d *Decoder) Decode(word uint32, addr uint64) *Inst {
	inst := &Inst{Op: OpUnknown, Rd: ZR, Rn: ZR, Rm: ZR, Rt2: ZR, Ra: ZR}

	// Bits [28:25] are the primary instruction-class selector.
	op0 := field(word, 28, 25)

	switch {
	case op0 == 0b0000:
		d.decodeReserved(word, inst)
	case op0&0b1110 == 0b1000: // 100x
		d.decodeDataProcImm(word, addr, inst)
	case op0&0b1110 == 0b1010: // 101x
		d.decodeBranches(word, addr, inst)
	case op0&0b0111 == 0b0101: // x101
		d.decodeDataProcReg(word, inst)
	case op0&0b0101 == 0b0100: // x1x0
		d.decodeLoadStore(word, addr, inst)
	case op0&0b0111 == 0b0111: // x111
		d.decodeFPSIMD(word, inst)
	default:
		// 0001, 0010 (SVE), 0011: unallocated here
		d.unknown(word, inst)
	}

	return inst
}

// decodeReserved handles the op0 == 0000 class, which contains only the
// permanently undefined instruction UDF #imm16.
func (d *Decoder) decodeReserved(word uint32, inst *Inst) {
	if word&0xFFFF0000 == 0 {
		inst.Op = OpUDF
		inst.Imm = uint64(word & 0xFFFF)
		return
	}
	d.unknown(word, inst)
}

// unknown marks inst as decoding to no defined instruction, keeping the
// raw word for diagnostics.
func (d *Decoder) unknown(word uint32, inst *Inst) {
	inst.Op = OpUnknown
	inst.Imm = uint64(word)
}

// invalid marks inst as a recognized but invalid encoding.
func (d *Decoder) invalid(inst *Inst, format string, args ...any) {
	inst.Op = OpError
	inst.Error = fmt.Sprintf(format, args...)
}
