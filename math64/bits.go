package math64

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/reduce"
)

const (
	signMask = 0x8000000000000000
	expMask  = 0x7FF0000000000000
	manMask  = 0x000FFFFFFFFFFFFF
	expShift = 52
	bias     = 1023

	// Smallest positive normal value.
	minNormal = 0x1p-1022
)

// Unbiased exponent of x, from its bits. ±Inf and NaN give 1024, zeros
// and subnormals give -1023.
func expo(bits uint64) int {
	return int((bits>>expShift)&0x7FF) - bias
}

// IsNaN reports whether x is a NaN.
func IsNaN(x float64) bool {
	if !config.HasIEEE754 {
		return x != x
	}
	b := math.Float64bits(x)
	return b&expMask == expMask && b&manMask != 0
}

// IsInf reports whether x is +Inf or -Inf.
func IsInf(x float64) bool {
	if !config.HasIEEE754 {
		return x == x && x-x != 0
	}
	return math.Float64bits(x)&^signMask == expMask
}

// IsSubnormal reports whether x is non-zero and below the smallest
// normal value in magnitude.
func IsSubnormal(x float64) bool {
	if !config.HasIEEE754 {
		return x != 0 && x < minNormal && x > -minNormal
	}
	b := math.Float64bits(x)
	return b&expMask == 0 && b&manMask != 0
}

// Abs returns |x|. Only the sign bit is cleared: NaN payloads are kept.
func Abs(x float64) float64 {
	if !config.HasIEEE754 {
		return absPortable(x)
	}
	return math.Float64frombits(math.Float64bits(x) &^ signMask)
}

func absPortable(x float64) float64 {
	switch {
	case x < 0:
		return -x
	case x == 0:
		return 0
	default:
		return x
	}
}

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign(x, y float64) float64 {
	if !config.HasIEEE754 {
		return copysignPortable(x, y)
	}
	return math.Float64frombits(math.Float64bits(x)&^signMask | math.Float64bits(y)&signMask)
}

// The sign of a zero or NaN y cannot be read by comparisons; x is then
// returned as is.
func copysignPortable(x, y float64) float64 {
	switch {
	case y < 0:
		return -absPortable(x)
	case y > 0:
		return absPortable(x)
	}
	return x
}

// Floor returns the greatest integral value not above x. Signed zeros,
// infinities and NaN are returned unchanged.
func Floor(x float64) float64 {
	if !config.HasIEEE754 {
		return floorPortable(x)
	}
	return floorBits(x)
}

func floorBits(x float64) float64 {
	b := math.Float64bits(x)
	e := expo(b)

	// |x| < 1: the result is 0 or -1, except for signed zeros.
	if e < 0 {
		if b&^signMask == 0 {
			return x
		}
		if b&signMask != 0 {
			return -1
		}
		return 0
	}

	// Values of 2^52 and above are integers (this includes ±Inf and NaN).
	if e >= 52 {
		return x
	}

	// Bits of weight below 1. If none is set, x is already an integer.
	frac := uint64(manMask) >> uint(e)
	if b&frac == 0 {
		return x
	}

	// Negative values go one unit further away from zero; the carry may
	// propagate into the exponent, which is fine.
	if b&signMask != 0 {
		b += uint64(1<<expShift) >> uint(e)
	}
	return math.Float64frombits(b &^ frac)
}

func floorPortable(x float64) float64 {
	t := truncPortable(x)
	if x < t {
		return t - 1
	}
	return t
}

// Trunc returns the integral part of x, rounding toward zero.
func Trunc(x float64) float64 {
	if !config.HasIEEE754 {
		return truncPortable(x)
	}
	b := math.Float64bits(x)
	e := expo(b)
	if e < 0 {
		return math.Float64frombits(b & signMask)
	}
	if e >= 52 {
		return x
	}
	return math.Float64frombits(b &^ (uint64(manMask) >> uint(e)))
}

func truncPortable(x float64) float64 {
	if !(x < 0x1p52 && x > -0x1p52) {
		return x
	}
	t := float64(int64(x))
	if t == 0 {
		return math.Copysign(0, x)
	}
	return t
}

// ModTwo returns x - 2*trunc(x/2): the remainder of x by 2, with the
// sign of x. ModTwo(5) = 1, ModTwo(-5) = -1 and ModTwo(4) = +0, while
// ModTwo(-4) = -0. ±Inf and NaN give NaN.
func ModTwo(x float64) float64 {
	if !config.HasIEEE754 {
		return reduce.ModTwo(x)
	}
	return modTwoBits(x)
}

func modTwoBits(x float64) float64 {
	b := math.Float64bits(x)
	e := expo(b)
	switch {
	case e == 1024:
		return math.NaN()
	case e < 1:
		return x
	case e > 52:
		// Even integer.
		return math.Float64frombits(b & signMask)
	}

	// Integers resolve with the units bit alone.
	frac := uint64(manMask) >> uint(e)
	if b&frac == 0 {
		if b&(uint64(1)<<uint(52-e)) != 0 {
			return math.Float64frombits(b&signMask | uint64(bias)<<expShift)
		}
		return math.Float64frombits(b & signMask)
	}

	// Halve by decrementing the exponent, truncate, double back, and
	// subtract. 2*trunc(x/2) and x are less than 2 apart with the same
	// sign, and the former is at least 2: the subtraction is exact.
	h := b - 1<<expShift
	h &^= uint64(manMask) >> uint(e-1)
	h += 1 << expShift
	return x - math.Float64frombits(h)
}
