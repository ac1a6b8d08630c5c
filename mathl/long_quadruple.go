//go:build !tmpl_portable && (tmpl_ldouble_quadruple || (!tmpl_ldouble_double && !tmpl_ldouble_extended && !tmpl_ldouble_doubledouble && ((arm64 && linux) || riscv64 || s390x || loong64)))

package mathl

import (
	"math/bits"

	"github.com/ryanmaguire/libtmpl-sub005/ieee754"
	"github.com/ryanmaguire/libtmpl-sub005/softfloat"
)

// LDouble is the long precision type: IEEE-754 binary128 in this build,
// computed in software.
type LDouble = ieee754.Quadruple

// Precision is the number of significant bits of LDouble.
const Precision = 113

const (
	expTerms  = 13
	trigTerms = 7
	asinTerms = 11
	cbrtTerms = 8

	maxLogF = 11356.523406294144
	minLogF = -11433.462743336298

	hypotEmin = -8100
	hypotEmax = 8191
	hypotDown = -9000
	hypotUp   = 9000

	quadBias    = 16383
	quadExpMax  = 0x7FFF
	quadSignBit = 1 << 63
	quadMan     = 112
)

var fmtL = softfloat.Binary128

func wrap(r ieee754.Raw) LDouble {
	return ieee754.QuadrupleFromRaw(r)
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

func IsNaN(x LDouble) bool { return x.IsNaN() }

func IsInf(x LDouble) bool { return x.IsInf() }

func IsSubnormal(x LDouble) bool { return x.IsSubnormal() }

// Abs clears the sign bit.
func Abs(x LDouble) LDouble { return x.Abs() }

// Raw returns the bits of x as stored in Layout.
func Raw(x LDouble) ieee754.Raw { return x.Raw() }

func ilogb(x LDouble) (int, bool) { return fmtL.Ilogb(x.Raw()) }

func quadExpo(x LDouble) int {
	return int(x.Exponent()) - quadBias
}

func quadSignedZero(x LDouble) LDouble {
	return LDouble{Hi: x.Hi & quadSignBit}
}

// Low n bits of the 128-bit word, 0 < n <= 112.
func quadMask(n uint) (hi, lo uint64) {
	if n >= 64 {
		return uint64(1)<<(n-64) - 1, ^uint64(0)
	}
	return 0, uint64(1)<<n - 1
}

// Bit n of the 128-bit word alone.
func quadBit(n uint) (hi, lo uint64) {
	if n >= 64 {
		return uint64(1) << (n - 64), 0
	}
	return 0, uint64(1) << n
}

// Floor returns the greatest integral value not above x.
func Floor(x LDouble) LDouble {
	e := quadExpo(x)
	switch {
	case x.Exponent() == quadExpMax || e >= quadMan:
		return x
	case e < 0:
		switch {
		case x.IsZero():
			return x
		case x.Signbit():
			return ieee754.MakeQuadruple(1, quadBias, 0, 0)
		default:
			return LDouble{}
		}
	}
	fh, fl := quadMask(uint(quadMan - e))
	if x.Hi&fh == 0 && x.Lo&fl == 0 {
		return x
	}

	// Negative values go one unit further from zero. A carry out of the
	// mantissa lands in the exponent, which is the right result.
	if x.Signbit() {
		uh, ul := quadBit(uint(quadMan - e))
		var c uint64
		x.Lo, c = bits.Add64(x.Lo, ul, 0)
		x.Hi, _ = bits.Add64(x.Hi, uh, c)
	}
	x.Hi &^= fh
	x.Lo &^= fl
	return x
}

// Trunc returns the integral part of x.
func Trunc(x LDouble) LDouble {
	e := quadExpo(x)
	switch {
	case x.Exponent() == quadExpMax || e >= quadMan:
		return x
	case e < 0:
		return quadSignedZero(x)
	}
	fh, fl := quadMask(uint(quadMan - e))
	x.Hi &^= fh
	x.Lo &^= fl
	return x
}

// ModTwo returns x - 2*trunc(x/2), with the sign of x. ±Inf and NaN give
// NaN.
func ModTwo(x LDouble) LDouble {
	if x.Exponent() == quadExpMax {
		return nan
	}
	e := quadExpo(x)
	switch {
	case e < 1:
		return x
	case e > quadMan:
		return quadSignedZero(x)
	}
	if e == quadMan {
		// Integer; only the units bit matters.
		if x.Lo&1 != 0 {
			return ieee754.MakeQuadruple(uint8(x.Hi>>63), quadBias, 0, 0)
		}
		return quadSignedZero(x)
	}
	fh, fl := quadMask(uint(quadMan - e))
	if x.Hi&fh == 0 && x.Lo&fl == 0 {
		uh, ul := quadBit(uint(quadMan - e))
		if x.Hi&uh != 0 || x.Lo&ul != 0 {
			return ieee754.MakeQuadruple(uint8(x.Hi>>63), quadBias, 0, 0)
		}
		return quadSignedZero(x)
	}
	return Sub(x, Ldexp(Trunc(Ldexp(x, -1)), 1))
}
