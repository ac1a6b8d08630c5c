//go:build !tmpl_portable && (tmpl_ldouble_doubledouble || (!tmpl_ldouble_double && !tmpl_ldouble_extended && !tmpl_ldouble_quadruple && (ppc64 || ppc64le)))

package mathl

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/ieee754"
	"github.com/ryanmaguire/libtmpl-sub005/math64"
)

// LDouble is the long precision type: a double-double pair in this
// build. Operations keep pairs normalized, |Lo| <= ulp(Hi)/2.
type LDouble = ieee754.DoubleDouble

// Precision is the number of significant bits of LDouble.
const Precision = 106

const (
	expTerms  = 12
	trigTerms = 7
	asinTerms = 10
	cbrtTerms = 8

	maxLogF = 709.782712893384
	minLogF = -745.1332191019412

	// The low half must stay clear of the subnormal range too.
	hypotEmin = -440
	hypotEmax = 511
	hypotDown = -600
	hypotUp   = 700
)

// Error-free sum: s + e = a + b exactly.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// Error-free product: p + e = a*b exactly, barring underflow.
func twoProd(a, b float64) (p, e float64) {
	p = float64(a * b)
	e = math.FMA(a, b, -p)
	return p, e
}

// Pair s + e, with infinities, NaNs and zeros carried by Hi alone.
func pair(s, e float64) LDouble {
	if s == 0 || s-s != 0 {
		return LDouble{Hi: s}
	}
	return LDouble{Hi: s, Lo: e}
}

func FromFloat64(x float64) LDouble { return LDouble{Hi: x} }

// Float64 rounds x to the nearest float64.
func Float64(x LDouble) float64 {
	if x.Hi-x.Hi != 0 || x.Lo == 0 {
		return x.Hi
	}
	return x.Hi + x.Lo
}

// FromInt converts i exactly.
func FromInt(i int) LDouble {
	hi := float64(i)
	return pair(hi, float64(i-int(hi)))
}

func Add(x, y LDouble) LDouble {
	if x.Hi == 0 && y.Hi == 0 {
		return LDouble{Hi: x.Hi + y.Hi}
	}
	s, e := twoSum(x.Hi, y.Hi)
	t, f := twoSum(x.Lo, y.Lo)
	e += t
	s, e = twoSum(s, e)
	e += f
	return pair(twoSum(s, e))
}

func Sub(x, y LDouble) LDouble { return Add(x, y.Neg()) }

func Mul(x, y LDouble) LDouble {
	p, e := twoProd(x.Hi, y.Hi)
	if p == 0 || p-p != 0 {
		return LDouble{Hi: p}
	}
	e += float64(x.Hi*y.Lo) + float64(x.Lo*y.Hi)
	return pair(twoSum(p, e))
}

// x*f for a float64 f.
func mulFloat(x LDouble, f float64) LDouble {
	p, e := twoProd(x.Hi, f)
	if p == 0 || p-p != 0 {
		return LDouble{Hi: p}
	}
	e += float64(x.Lo * f)
	return pair(twoSum(p, e))
}

// Div computes three quotient digits by long division.
func Div(x, y LDouble) LDouble {
	q1 := x.Hi / y.Hi
	if q1 == 0 || q1-q1 != 0 {
		return LDouble{Hi: q1}
	}
	r := Sub(x, mulFloat(y, q1))
	q2 := r.Hi / y.Hi
	r = Sub(r, mulFloat(y, q2))
	q3 := r.Hi / y.Hi
	s, e := twoSum(q1, q2)
	return Add(pair(s, e), LDouble{Hi: q3})
}

// Sqrt refines the float64 root with one Newton step.
func Sqrt(x LDouble) LDouble {
	if x.Hi <= 0 || x.Hi-x.Hi != 0 {
		// Zeros, negative values, infinities and NaN.
		return LDouble{Hi: math.Sqrt(x.Hi)}
	}
	h := math.Sqrt(x.Hi)
	p, e := twoProd(h, h)
	r := Sub(x, LDouble{Hi: p, Lo: e})
	return pair(twoSum(h, r.Hi/(2*h)))
}

func Neg(x LDouble) LDouble { return x.Neg() }

func Less(x, y LDouble) bool {
	return x.Hi < y.Hi || (x.Hi == y.Hi && x.Lo < y.Lo)
}

func Equal(x, y LDouble) bool {
	return x.Hi == y.Hi && x.Lo == y.Lo
}

// Ldexp scales both halves; the low half may lose bits in the subnormal
// range.
func Ldexp(x LDouble, n int) LDouble {
	return pair(math.Ldexp(x.Hi, n), math.Ldexp(x.Lo, n))
}

func Signbit(x LDouble) bool { return x.Signbit() }

func IsZero(x LDouble) bool { return x.IsZero() }

func IsNaN(x LDouble) bool { return x.IsNaN() }

func IsInf(x LDouble) bool { return x.IsInf() }

func IsSubnormal(x LDouble) bool { return x.IsSubnormal() }

// Abs makes Hi positive and flips Lo with it.
func Abs(x LDouble) LDouble { return x.Abs() }

// Raw returns the bits of x as stored in Layout.
func Raw(x LDouble) ieee754.Raw { return x.Raw() }

// The exponent of Hi, less one when Hi is a power of two and Lo pulls
// the value below it.
func ilogb(x LDouble) (int, bool) {
	if x.Hi == 0 || x.Hi-x.Hi != 0 {
		return 0, false
	}
	fr, e := math.Frexp(x.Hi)
	e--
	if (fr == 0.5 || fr == -0.5) && x.Lo != 0 && math.Signbit(x.Lo) != math.Signbit(x.Hi) {
		e--
	}
	return e, true
}

// Floor returns the greatest integral value not above x.
func Floor(x LDouble) LDouble {
	fh := math64.Floor(x.Hi)
	switch {
	case x.Hi-x.Hi != 0:
		return x
	case fh != x.Hi:
		// |Lo| is below the distance from Hi to the next integer.
		return LDouble{Hi: fh}
	case x.Lo == 0:
		return x
	}
	return pair(twoSum(fh, math64.Floor(x.Lo)))
}

// Trunc returns the integral part of x.
func Trunc(x LDouble) LDouble {
	th := math64.Trunc(x.Hi)
	switch {
	case x.Hi-x.Hi != 0:
		return x
	case th != x.Hi:
		return LDouble{Hi: th}
	case x.Lo == 0:
		return x
	case x.Hi > 0:
		return pair(twoSum(th, math64.Floor(x.Lo)))
	default:
		return pair(twoSum(th, -math64.Floor(-x.Lo)))
	}
}

// ModTwo returns x - 2*trunc(x/2), with the sign of x. ±Inf and NaN give
// NaN.
func ModTwo(x LDouble) LDouble {
	switch {
	case x.Hi-x.Hi != 0:
		return nan
	case x.Lo == 0:
		return LDouble{Hi: math64.ModTwo(x.Hi)}
	}
	r := Sub(x, Ldexp(Trunc(Ldexp(x, -1)), 1))
	if r.Hi == 0 {
		return LDouble{Hi: math.Copysign(0, x.Hi)}
	}
	return r
}
