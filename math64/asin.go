package math64

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/internal/tables"
	"github.com/ryanmaguire/libtmpl-sub005/reduce"
)

const (
	pio2Hi = 1.5707963267948966
	pio2Lo = 6.123233995736766e-17
)

// Maclaurin coefficients of asin(x)/x in powers of x^2:
// (2k)! / (4^k (k!)^2 (2k+1)).
var asinCoeffs = []float64{
	1.0,
	0.16666666666666666,
	0.075,
	0.044642857142857144,
	0.030381944444444444,
	0.022372159090909092,
}

// Asin returns the arcsine of x, in [-pi/2, pi/2]. Inputs outside
// [-1, 1] and NaN give NaN.
func Asin(x float64) float64 {
	ax := Abs(x)
	switch {
	case x != x || ax > 1:
		return math.NaN()
	case ax < 0x1p-26:
		// asin(x) = x + x^3/6 + ... rounds to x.
		return x
	case ax == 1:
		return math.Copysign(pio2Hi, x)
	}
	var r float64
	if ax <= 0.5 {
		hi, lo := asinHalf(ax)
		r = hi + lo
	} else {
		// asin(x) = pi/2 - 2 asin(s), s = sqrt(t), t = (1-x)/2 exact.
		// c = (t - s*s) / 2s is the rounding error of s, and moves
		// asin(s) by c / sqrt(1-t).
		t := (1 - ax) * 0.5
		s := math.Sqrt(t)
		c := math.FMA(-s, s, t) / (2 * s)
		hi, lo := asinHalf(s)
		lo += c / math.Sqrt(1-t)
		h, e := twoSum(pio2Hi, -2*hi)
		r = h + (e + (pio2Lo - 2*lo))
	}
	if x < 0 {
		return -r
	}
	return r
}

// asin(x) for 0 <= x <= 1/2, as an unevaluated sum hi + lo.
func asinHalf(x float64) (float64, float64) {
	if x < 0x1p-6 {
		x2 := float64(x * x)
		return x, float64(x*x2) * reduce.Horner(x2, asinCoeffs[1:])
	}

	// a = n/32 is the table point nearest to x, and
	// asin(x) = asin(a) + asin(d), d = x sqrt(1-a^2) - a sqrt(1-x^2).
	// Both square roots are hi/lo pairs; d loses a few bits to
	// cancellation, out of about 106.
	n, _ := reduce.SplitNearest(x * 32)
	a := float64(n) * 0x1p-5
	ca := tables.AsinSqrt[n]

	ph, pl := twoProd(x, x)
	wh, we := twoSum(1, -ph)
	wl := we - pl
	sh := math.Sqrt(wh)
	sl := (math.FMA(-sh, sh, wh) + wl) / (2 * sh)

	p1, e1 := twoProd(x, ca.Hi)
	p2, e2 := twoProd(a, sh)
	dh, de := twoSum(p1, -p2)
	dl := de + e1 - e2 + float64(x*ca.Lo) - float64(a*sl)
	dh, dl = fastTwoSum(dh, dl)

	// asin(d) = d + d^3/6 + ..., |d| < 1/50.
	d2 := float64(dh * dh)
	corr := float64(dh*d2) * reduce.Horner(d2, asinCoeffs[1:])

	as := tables.Asin[n]
	h, e := twoSum(as.Hi, dh)
	return h, e + (as.Lo + (dl + corr))
}
