package math32

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/reduce"
)

const (
	signMask = 0x80000000
	expMask  = 0x7F800000
	manMask  = 0x007FFFFF
	expShift = 23
	bias     = 127

	minNormal = 0x1p-126
)

func expo(bits uint32) int {
	return int((bits>>expShift)&0xFF) - bias
}

func nan() float32 {
	return float32(math.NaN())
}

func inf() float32 {
	return float32(math.Inf(1))
}

// IsNaN reports whether x is a NaN.
func IsNaN(x float32) bool {
	if !config.HasIEEE754 {
		return x != x
	}
	b := math.Float32bits(x)
	return b&expMask == expMask && b&manMask != 0
}

// IsInf reports whether x is +Inf or -Inf.
func IsInf(x float32) bool {
	if !config.HasIEEE754 {
		return x == x && x-x != 0
	}
	return math.Float32bits(x)&^signMask == expMask
}

// IsSubnormal reports whether x is a non-zero subnormal value.
func IsSubnormal(x float32) bool {
	if !config.HasIEEE754 {
		return x != 0 && x < minNormal && x > -minNormal
	}
	b := math.Float32bits(x)
	return b&expMask == 0 && b&manMask != 0
}

// Abs returns |x|, clearing the sign bit only.
func Abs(x float32) float32 {
	if !config.HasIEEE754 {
		return absPortable(x)
	}
	return math.Float32frombits(math.Float32bits(x) &^ signMask)
}

func absPortable(x float32) float32 {
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
func Copysign(x, y float32) float32 {
	if !config.HasIEEE754 {
		switch {
		case y < 0:
			return -absPortable(x)
		case y > 0:
			return absPortable(x)
		}
		return x
	}
	return math.Float32frombits(math.Float32bits(x)&^signMask | math.Float32bits(y)&signMask)
}

// Floor returns the greatest integral value not above x.
func Floor(x float32) float32 {
	if !config.HasIEEE754 {
		return floorPortable(x)
	}
	return floorBits(x)
}

func floorBits(x float32) float32 {
	b := math.Float32bits(x)
	e := expo(b)
	if e < 0 {
		if b&^signMask == 0 {
			return x
		}
		if b&signMask != 0 {
			return -1
		}
		return 0
	}
	if e >= 23 {
		return x
	}
	frac := uint32(manMask) >> uint(e)
	if b&frac == 0 {
		return x
	}
	if b&signMask != 0 {
		b += uint32(1<<expShift) >> uint(e)
	}
	return math.Float32frombits(b &^ frac)
}

func floorPortable(x float32) float32 {
	t := truncPortable(x)
	if x < t {
		return t - 1
	}
	return t
}

// Trunc returns the integral part of x, rounding toward zero.
func Trunc(x float32) float32 {
	if !config.HasIEEE754 {
		return truncPortable(x)
	}
	b := math.Float32bits(x)
	e := expo(b)
	if e < 0 {
		return math.Float32frombits(b & signMask)
	}
	if e >= 23 {
		return x
	}
	return math.Float32frombits(b &^ (uint32(manMask) >> uint(e)))
}

func truncPortable(x float32) float32 {
	if !(x < 0x1p23 && x > -0x1p23) {
		return x
	}
	t := float32(int32(x))
	if t == 0 {
		return float32(math.Copysign(0, float64(x)))
	}
	return t
}

// ModTwo returns x - 2*trunc(x/2), which has the sign of x.
// ±Inf and NaN give NaN.
func ModTwo(x float32) float32 {
	if !config.HasIEEE754 {
		return reduce.ModTwo(x)
	}
	return modTwoBits(x)
}

func modTwoBits(x float32) float32 {
	b := math.Float32bits(x)
	e := expo(b)
	switch {
	case e == 128:
		return nan()
	case e < 1:
		return x
	case e > 23:
		return math.Float32frombits(b & signMask)
	}
	frac := uint32(manMask) >> uint(e)
	if b&frac == 0 {
		if b&(uint32(1)<<uint(23-e)) != 0 {
			return math.Float32frombits(b&signMask | uint32(bias)<<expShift)
		}
		return math.Float32frombits(b & signMask)
	}
	h := b - 1<<expShift
	h &^= uint32(manMask) >> uint(e-1)
	h += 1 << expShift
	return x - math.Float32frombits(h)
}
