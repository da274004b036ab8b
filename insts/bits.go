package insts

import "math/bits"

// field extracts bits [hi:lo] of w.
func field(w uint32, hi, lo uint) uint32 {
	return (w >> lo) & ((1 << (hi - lo + 1)) - 1)
}

// bit extracts bit i of w.
func bit(w uint32, i uint) uint32 {
	return (w >> i) & 1
}

// sext sign-extends the low n bits of v to 64 bits.
func sext(v uint64, n uint) int64 {
	shift := 64 - n
	return int64(v<<shift) >> shift
}

// decodeBitMasks expands the (N, immr, imms) logical-immediate encoding into
// its 64-bit bitmask: a run of ones, rotated within an element of 2, 4, 8,
// 16, 32 or 64 bits and replicated to fill the register. Returns ok == false
// for the reserved patterns that encode no valid mask.
func decodeBitMasks(n, immr, imms uint32, w32 bool) (uint64, bool) {
	// The element size is derived from the highest set bit of N:NOT(imms).
	pattern := n<<6 | (^imms & 0x3F)
	if pattern == 0 {
		return 0, false
	}
	length := uint(31 - bits.LeadingZeros32(pattern))
	esize := uint(1) << length
	if w32 && esize > 32 {
		return 0, false
	}

	levels := uint32(esize - 1)
	s := imms & levels
	r := immr & levels
	if s == levels { // all-ones element is reserved
		return 0, false
	}

	// Build the S+1 ones and rotate them right by R within the element.
	welem := uint64(1)<<(s+1) - 1
	emask := uint64(1)<<esize - 1
	if esize == 64 {
		emask = ^uint64(0)
	}
	wmask := welem
	if r != 0 {
		wmask = (welem>>r | welem<<(esize-uint(r))) & emask
	}

	// Replicate the element across the register.
	for e := esize; e < 64; e *= 2 {
		wmask |= wmask << e
	}
	if w32 {
		wmask &= 0xFFFFFFFF
	}
	return wmask, true
}

// vfpExpandImm expands the 8-bit FMOV immediate (sign, 3-bit exponent,
// 4-bit fraction) into the floating-point value it denotes.
func vfpExpandImm(imm8 uint32) float64 {
	sign := float64(1)
	if imm8&0x80 != 0 {
		sign = -1
	}
	exp := int(imm8>>4&0x3) + 1 // exponent NOT(b6):Replicate(b6):b5:b4, unbiased
	if imm8&0x40 != 0 {
		exp = int(imm8>>4&0x3) - 3
	}
	frac := 1 + float64(imm8&0xF)/16
	val := frac
	for i := 0; i < exp; i++ {
		val *= 2
	}
	for i := 0; i > exp; i-- {
		val /= 2
	}
	return sign * val
}

// advSIMDExpandImm expands the MOVI/MVNI-family immediate (op, cmode, imm8)
// into the replicated 64-bit pattern. Returns ok == false for the reserved
// combination op=1, cmode=1111, Q=0 handled by the caller.
func advSIMDExpandImm(op, cmode, imm8 uint32) uint64 {
	imm := uint64(imm8)
	switch cmode >> 1 {
	case 0, 1, 2, 3: // 32-bit, LSL 0/8/16/24
		imm <<= 8 * (cmode >> 1)
		imm |= imm << 32
	case 4, 5: // 16-bit, LSL 0/8
		imm <<= 8 * (cmode >> 1 & 1)
		imm |= imm << 16
		imm |= imm << 32
	case 6: // 32-bit, shifting ones (MSL)
		if cmode&1 == 0 {
			imm = imm<<8 | 0xFF
		} else {
			imm = imm<<16 | 0xFFFF
		}
		imm |= imm << 32
	case 7:
		switch {
		case cmode&1 == 0 && op == 0: // 8-bit
			imm |= imm << 8
			imm |= imm << 16
			imm |= imm << 32
		case cmode&1 == 0 && op == 1: // 64-bit: one mask byte per imm8 bit
			imm = 0
			for i := uint(0); i < 8; i++ {
				if imm8>>i&1 != 0 {
					imm |= 0xFF << (8 * i)
				}
			}
		case cmode&1 == 1 && op == 0: // f32 replicated to both halves
			imm = uint64(expandImmF32Bits(imm8))
			imm |= imm << 32
		default: // f64
			imm = expandImmF64Bits(imm8)
		}
	}
	return imm
}

// expandImmF32Bits maps the 8-bit float immediate onto IEEE 754 single bits.
func expandImmF32Bits(imm8 uint32) uint32 {
	sign := imm8 >> 7
	expLow := imm8 >> 4 & 0x3
	frac := imm8 & 0xF
	var exp uint32
	if imm8&0x40 != 0 {
		exp = 0x7C | expLow // NOT(b6):Replicate(b6,5) pattern
	} else {
		exp = 0x80 | expLow
	}
	return sign<<31 | exp<<23 | frac<<19
}

// expandImmF64Bits maps the 8-bit float immediate onto IEEE 754 double bits.
func expandImmF64Bits(imm8 uint32) uint64 {
	sign := uint64(imm8 >> 7)
	expLow := uint64(imm8 >> 4 & 0x3)
	frac := uint64(imm8 & 0xF)
	var exp uint64
	if imm8&0x40 != 0 {
		exp = 0x3FC | expLow
	} else {
		exp = 0x400 | expLow
	}
	return sign<<63 | exp<<52 | frac<<48
}
