package mathl

import "github.com/ryanmaguire/libtmpl-sub005/math64"

// Asin returns the arcsine of x, in [-pi/2, pi/2]. Inputs outside
// [-1, 1] and NaN give NaN.
func Asin(x LDouble) LDouble {
	if sharesDouble {
		return FromFloat64(math64.Asin(Float64(x)))
	}
	ax := Abs(x)
	switch {
	case IsNaN(x) || Less(one, ax):
		return nan
	case Less(ax, tinyAsin):
		return x
	case Equal(ax, one):
		if Signbit(x) {
			return Neg(pio2Hi)
		}
		return pio2Hi
	}

	var r LDouble
	if !Less(half, ax) {
		r = asinHalf(ax)
	} else {
		// asin(x) = pi/2 - 2 asin(s), s = sqrt(t), t = (1-x)/2. The
		// rounding error of s, c ~ (t - s*s) / 2s, moves asin(s) by
		// c / sqrt(1-t).
		t := Ldexp(Sub(one, ax), -1)
		s := Sqrt(t)
		c := Div(Sub(t, Mul(s, s)), Ldexp(s, 1))
		h := Add(asinHalf(s), Div(c, Sqrt(Sub(one, t))))
		r = Sub(pio2Hi, Sub(Ldexp(h, 1), pio2Lo))
	}
	if Signbit(x) {
		return Neg(r)
	}
	return r
}

var (
	half      = FromFloat64(0.5)
	asinSmall = FromFloat64(0x1p-6)
)

// asin(x) for 0 <= x <= 1/2: the series below 1/64, and otherwise the
// nearest table point a = n/32 with asin(x) = asin(a) + asin(d),
// d = (x-a)(x+a) / (x sqrt(1-a^2) + a sqrt(1-x^2)).
func asinHalf(x LDouble) LDouble {
	if Less(x, asinSmall) {
		return asinSeries(x)
	}
	n := nearest(Float64(x) * 32)
	a := Ldexp(FromInt(n), -5)
	num := Mul(Sub(x, a), Add(x, a))
	den := Add(Mul(x, asinSqrtTab[n]), Mul(a, Sqrt(Sub(one, Mul(x, x)))))
	return Add(asinTab[n], asinSeries(Div(num, den)))
}

func asinSeries(x LDouble) LDouble {
	return Mul(x, horner(Mul(x, x), asinCoeffs))
}
