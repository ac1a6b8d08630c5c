//go:build !tmpl_portable && (tmpl_ldouble_extended || (!tmpl_ldouble_double && !tmpl_ldouble_quadruple && !tmpl_ldouble_doubledouble && (amd64 || 386) && !windows))

package mathl

import (
	"math/bits"

	"github.com/ryanmaguire/libtmpl-sub005/ieee754"
	"github.com/ryanmaguire/libtmpl-sub005/softfloat"
)

// LDouble is the long precision type: x87 80-bit extended in this build,
// computed in software.
type LDouble = ieee754.Extended

// Precision is the number of significant bits of LDouble.
const Precision = 64

const (
	expTerms  = 8
	trigTerms = 5
	asinTerms = 7
	cbrtTerms = 5

	maxLogF = 11356.523406294144
	minLogF = -11399.498531488862

	hypotEmin = -8100
	hypotEmax = 8191
	hypotDown = -9000
	hypotUp   = 9000

	extBias    = 16383
	extExpMax  = 0x7FFF
	extSignBit = 0x8000
)

var fmtL = softfloat.Extended80

func wrap(r ieee754.Raw) LDouble {
	return ieee754.ExtendedFromRaw(r)
}

// FromFloat64 converts x exactly.
func FromFloat64(x float64) LDouble { return wrap(fmtL.FromFloat64(x)) }

// Float64 rounds x to the nearest float64.
func Float64(x LDouble) float64 { return fmtL.Float64(x.Raw()) }

// FromInt converts i exactly.
func FromInt(i int) LDouble { return wrap(fmtL.FromInt64(int64(i))) }

// Add returns x+y, correctly rounded. So do Sub, Mul, Div and Sqrt.
func Add(x, y LDouble) LDouble { return wrap(fmtL.Add(x.Raw(), y.Raw())) }

func Sub(x, y LDouble) LDouble { return wrap(fmtL.Sub(x.Raw(), y.Raw())) }

func Mul(x, y LDouble) LDouble { return wrap(fmtL.Mul(x.Raw(), y.Raw())) }

func Div(x, y LDouble) LDouble { return wrap(fmtL.Div(x.Raw(), y.Raw())) }

func Sqrt(x LDouble) LDouble { return wrap(fmtL.Sqrt(x.Raw())) }

func Neg(x LDouble) LDouble { return x.Neg() }

// Less reports whether x < y; comparisons with NaN are false.
func Less(x, y LDouble) bool { return fmtL.Less(x.Raw(), y.Raw()) }

func Equal(x, y LDouble) bool { return fmtL.Equal(x.Raw(), y.Raw()) }

// Ldexp returns x*2^n, correctly rounded.
func Ldexp(x LDouble, n int) LDouble { return wrap(fmtL.Ldexp(x.Raw(), n)) }

func Signbit(x LDouble) bool { return x.Signbit() }

func IsZero(x LDouble) bool { return x.IsZero() }

// IsNaN reports whether x is a NaN. Unnormals (a non-zero exponent with
// a clear integer bit) count as NaN, as on the x87.
func IsNaN(x LDouble) bool { return x.IsNaN() }

func IsInf(x LDouble) bool { return x.IsInf() }

func IsSubnormal(x LDouble) bool { return x.IsSubnormal() }

// Abs clears the sign bit.
func Abs(x LDouble) LDouble { return x.Abs() }

// Raw returns the bits of x as stored in Layout.
func Raw(x LDouble) ieee754.Raw { return x.Raw() }

func ilogb(x LDouble) (int, bool) { return fmtL.Ilogb(x.Raw()) }

func extExpo(x LDouble) int {
	return int(x.Exponent()) - extBias
}

func extSignedZero(x LDouble) LDouble {
	return LDouble{SignExp: x.SignExp & extSignBit}
}

// Floor returns the greatest integral value not above x.
func Floor(x LDouble) LDouble {
	e := extExpo(x)
	switch {
	case x.Exponent() == extExpMax || e >= 63:
		return x
	case e < 0:
		switch {
		case x.Mant == 0:
			return x
		case x.Signbit():
			return ieee754.MakeExtended(1, extBias, 1<<63)
		default:
			return LDouble{}
		}
	}

	// Bits of weight below 1; the integer bit is at position 63.
	frac := uint64(1)<<uint(63-e) - 1
	if x.Mant&frac == 0 {
		return x
	}
	if x.Signbit() {
		m, carry := bits.Add64(x.Mant, frac+1, 0)
		if carry != 0 {
			// The value reached 2^(e+1).
			x.SignExp++
			m = 1 << 63
		}
		x.Mant = m
	}
	x.Mant &^= frac
	return x
}

// Trunc returns the integral part of x.
func Trunc(x LDouble) LDouble {
	e := extExpo(x)
	switch {
	case x.Exponent() == extExpMax || e >= 63:
		return x
	case e < 0:
		return extSignedZero(x)
	}
	x.Mant &^= uint64(1)<<uint(63-e) - 1
	return x
}

// ModTwo returns x - 2*trunc(x/2), with the sign of x. ±Inf and NaN give
// NaN.
func ModTwo(x LDouble) LDouble {
	if x.Exponent() == extExpMax {
		return nan
	}
	e := extExpo(x)
	switch {
	case e < 1:
		return x
	case e > 63:
		return extSignedZero(x)
	}
	unit := uint64(1) << uint(63-e)
	if x.Mant&(unit-1) == 0 {
		if x.Mant&unit != 0 {
			return ieee754.MakeExtended(uint8(x.SignExp>>15), extBias, 1<<63)
		}
		return extSignedZero(x)
	}

	// x/2 and the doubling back are exact, as is the difference.
	return Sub(x, Ldexp(Trunc(Ldexp(x, -1)), 1))
}
