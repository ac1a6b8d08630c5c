package mathl

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/math64"
)

// Layout is the storage layout of LDouble.
const Layout = config.LDoubleLayout

// Long doubles in the binary64 format share the double kernels.
const sharesDouble = Precision == 53

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign(x, y LDouble) LDouble {
	if sharesDouble {
		return FromFloat64(math64.Copysign(Float64(x), Float64(y)))
	}
	if Signbit(x) != Signbit(y) {
		return Neg(x)
	}
	return x
}

// An unevaluated sum of three float64 values, largest first.
type triple [3]float64

func fromTriple(t triple) LDouble {
	return Add(FromFloat64(t[0]), Add(FromFloat64(t[1]), FromFloat64(t[2])))
}

func tabulate(ts []triple) []LDouble {
	v := make([]LDouble, len(ts))
	for i, t := range ts {
		v[i] = fromTriple(t)
	}
	return v
}

var pio2Triple = triple{0x1.921fb54442d18p+0, 0x1.1a62633145c07p-54, -0x1.f1976b7ed8fbcp-110}

var (
	zero  = FromFloat64(0)
	one   = FromFloat64(1)
	two   = FromFloat64(2)
	three = FromFloat64(3)
	c90   = FromFloat64(90)
	c180  = FromFloat64(180)
	c360  = FromFloat64(360)
	inf   = FromFloat64(math.Inf(1))
	nan   = FromFloat64(math.NaN())

	// ln(2) = ln2Hi + ln2Lo, where ln2Hi has 42 significant bits: k*ln2Hi
	// is exact for every k an exponent can take.
	ln2Hi = FromFloat64(0x1.62e42fefa3800p-1)
	ln2Lo = fromTriple(triple{0x1.ef35793c76730p-45, 0x1.f97b57a079a19p-103, 0x1.9ca62d8b62834p-158})

	pio2Hi = fromTriple(pio2Triple)
	pio2Lo = Add(Sub(FromFloat64(pio2Triple[0]), pio2Hi),
		Add(FromFloat64(pio2Triple[1]), FromFloat64(pio2Triple[2])))

	maxLog = FromFloat64(maxLogF)
	minLog = FromFloat64(minLogF)

	tinyExp  = Ldexp(one, -(Precision + 1))
	tinyAsin = Ldexp(one, -(Precision/2 + 1))
	smallArg = FromFloat64(0x1p-7)

	sindTab     = tabulate(sindTriples[:])
	expTab      = tabulate(expTriples[:])
	cbrtTab     = tabulate(cbrtTriples[:])
	cbrtTwoTab  = tabulate(cbrtTwoTriples[:])
	asinTab     = tabulate(asinTriples[:])
	asinSqrtTab = tabulate(asinSqrtTriples[:])

	sindCoeffs = tabulate(sindCoeffTriples[:trigTerms])
	cosdCoeffs = tabulate(cosdCoeffTriples[:trigTerms])
	expCoeffs  = tabulate(expCoeffTriples[:expTerms])
	asinCoeffs = tabulate(asinCoeffTriples[:asinTerms])
	cbrtCoeffs = tabulate(cbrtCoeffTriples[:cbrtTerms])
)

const invLn2 = 1.4426950408889634

func horner(x LDouble, c []LDouble) LDouble {
	r := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		r = Add(Mul(r, x), c[i])
	}
	return r
}

// Nearest integer, ties away from zero.
func nearest(x float64) int {
	if x < 0 {
		return -int(-x + 0.5)
	}
	return int(x + 0.5)
}

func floorDiv3(e int) int {
	if e >= 0 {
		return e / 3
	}
	return -((-e + 2) / 3)
}

// Exact |x| mod 360 for a finite x.
//
// The running value is reduced by 360*2^k for decreasing k. Multiples of
// 8 keep their remainder when their exponent drops by a multiple of 12
// (2^12 = 1 mod 45), which shortens the loop for large inputs.
func degrees(x LDouble) LDouble {
	r := Abs(x)
	if Less(r, c360) {
		return r
	}
	e, _ := ilogb(r)
	if lim := Precision + 20; e > lim {
		s := Ldexp(r, -12*((e-lim+11)/12))
		if multipleOf8(r) && multipleOf8(s) {
			r = s
			e, _ = ilogb(r)
		}
	}
	k := e - 9
	if k < 0 {
		k = 0
	}
	p := Ldexp(c360, k)
	for Less(r, p) {
		p = Ldexp(p, -1)
	}
	for !Less(p, c360) {
		if !Less(r, p) {
			r = Sub(r, p)
		}
		p = Ldexp(p, -1)
	}
	return r
}

func multipleOf8(x LDouble) bool {
	h := Ldexp(x, -3)
	return Equal(Trunc(h), h)
}
