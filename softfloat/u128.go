package softfloat

import (
	"math/bits"
)

// 128-bit unsigned integer; the emulation keeps mantissas in such values,
// left-aligned (top bit at position 127) once normalized.
type u128 struct {
	hi, lo uint64
}

func (a u128) isZero() bool {
	return a.hi|a.lo == 0
}

// Left shift; counts of 128 or more give zero. Go defines shifts by 64 or
// more on uint64 to yield zero, which the expressions below rely upon.
func (a u128) shl(n uint) u128 {
	switch {
	case n >= 128:
		return u128{}
	case n >= 64:
		return u128{a.lo << (n - 64), 0}
	default:
		return u128{(a.hi << n) | (a.lo >> (64 - n)), a.lo << n}
	}
}

// Logical right shift; counts of 128 or more give zero.
func (a u128) shr(n uint) u128 {
	switch {
	case n >= 128:
		return u128{}
	case n >= 64:
		return u128{0, a.hi >> (n - 64)}
	default:
		return u128{a.hi >> n, (a.lo >> n) | (a.hi << (64 - n))}
	}
}

// Right shift with a sticky least significant bit: if any of the dropped
// bits is non-zero, then the lsb of the result is forced to 1.
func (a u128) shrSticky(n uint) u128 {
	r := a.shr(n)
	if !a.and(mask128(n)).isZero() {
		r.lo |= 1
	}
	return r
}

func (a u128) and(b u128) u128 {
	return u128{a.hi & b.hi, a.lo & b.lo}
}

func (a u128) or(b u128) u128 {
	return u128{a.hi | b.hi, a.lo | b.lo}
}

func (a u128) add(b u128) u128 {
	lo, c := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, c)
	return u128{hi, lo}
}

func (a u128) sub(b u128) u128 {
	lo, c := bits.Sub64(a.lo, b.lo, 0)
	hi, _ := bits.Sub64(a.hi, b.hi, c)
	return u128{hi, lo}
}

func (a u128) less(b u128) bool {
	return a.hi < b.hi || (a.hi == b.hi && a.lo < b.lo)
}

// Count of leading zeros; 128 for a zero value.
func (a u128) lz() uint {
	if a.hi != 0 {
		return uint(bits.LeadingZeros64(a.hi))
	}
	return 64 + uint(bits.LeadingZeros64(a.lo))
}

// Bit n (0 to 127).
func (a u128) bit(n uint) uint64 {
	return a.shr(n).lo & 1
}

// Value with the n low bits set (n <= 128).
func mask128(n uint) u128 {
	if n >= 128 {
		return u128{^uint64(0), ^uint64(0)}
	}
	return u128{0, 1}.shl(n).sub(u128{0, 1})
}

// Full 128x128 -> 256 multiplication; the result is returned as its high
// and low halves.
func mul128(a, b u128) (u128, u128) {
	h00, l00 := bits.Mul64(a.lo, b.lo)
	h01, l01 := bits.Mul64(a.lo, b.hi)
	h10, l10 := bits.Mul64(a.hi, b.lo)
	h11, l11 := bits.Mul64(a.hi, b.hi)

	w0 := l00
	w1, c1 := bits.Add64(h00, l01, 0)
	w1, c2 := bits.Add64(w1, l10, 0)
	w2, c3 := bits.Add64(h01, h10, c1)
	w2, c4 := bits.Add64(w2, l11, c2)
	w3 := h11 + c3 + c4
	return u128{w3, w2}, u128{w1, w0}
}
