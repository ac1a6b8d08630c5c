package math64

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/internal/tables"
	"github.com/ryanmaguire/libtmpl-sub005/reduce"
)

// pi/180 = degHi + degLo.
const (
	degHi = 0.017453292519943295
	degLo = 2.9486522708701687e-19
)

// Maclaurin coefficients of sin(t degrees) in powers of t^2, after
// factoring out t: (-1)^k (pi/180)^(2k+1) / (2k+1)!.
var sindCoeffs = []float64{
	0.017453292519943295,
	-8.86096155701298e-07,
	1.349601623163255e-11,
	-9.788384861617728e-17,
}

// Maclaurin coefficients of cos(t degrees) in powers of t^2:
// (-1)^k (pi/180)^(2k) / (2k)!.
var cosdCoeffs = []float64{
	1.0,
	-0.0001523087098933543,
	3.866323851562994e-09,
	-3.925831985743095e-14,
}

// SinCosd returns the sine and the cosine of x degrees. Multiples of 90
// degrees give exact results: Cosd(90) is +0, Sind(180) is +0. NaN and
// ±Inf give NaN.
func SinCosd(x float64) (float64, float64) {
	if x != x || x-x != 0 {
		return math.NaN(), math.NaN()
	}
	if x == 0 {
		return x, 1
	}

	// sin is odd, cos is even.
	negS := x < 0
	negC := false

	// Exact reduction to [0, 90], using sin(x+180) = -sin(x),
	// cos(x+180) = -cos(x) and sin(180-x) = sin(x), cos(180-x) = -cos(x).
	// Both subtractions are exact (Sterbenz).
	r := reduce.Degrees(x)
	if r >= 180 {
		r -= 180
		negS = !negS
		negC = true
	}
	if r > 90 {
		r = 180 - r
		negC = !negC
	}

	// r = n + t, |t| <= 1/2, and the angle-sum formulas with
	// sin(n), cos(n) = sin(90-n) from the table. Every term is a hi/lo
	// pair and the sums are rounded once at the end.
	n, t := reduce.SplitNearest(r)
	t2 := float64(t * t)
	sth, stl := twoProd(t, degHi)
	stl += float64(t*degLo) + float64(t*t2)*reduce.Horner(t2, sindCoeffs[1:])
	cth, ctl := fastTwoSum(1, float64(t2*reduce.Horner(t2, cosdCoeffs[1:])))
	sn := tables.SinDeg[n]
	cn := tables.SinDeg[90-n]

	p1, e1 := twoProd(sn.Hi, cth)
	p2, e2 := twoProd(cn.Hi, sth)
	sh, se := twoSum(p1, p2)
	s := sh + (se + e1 + e2 + mulLo(sn, cth, ctl) + mulLo(cn, sth, stl))

	q1, f1 := twoProd(cn.Hi, cth)
	q2, f2 := twoProd(sn.Hi, sth)
	ch, ce := twoSum(q1, -q2)
	c := ch + (ce + f1 - f2 + mulLo(cn, cth, ctl) - mulLo(sn, sth, stl))

	// Exact zeros stay +0.
	if negS && s != 0 {
		s = -s
	}
	if negC && c != 0 {
		c = -c
	}
	return s, c
}

// The low-order terms of (a.Hi + a.Lo)(hi + lo) beyond a.Hi*hi.
func mulLo(a tables.Pair, hi, lo float64) float64 {
	return float64(a.Hi*lo) + float64(a.Lo*hi)
}

// Sind returns the sine of x degrees.
func Sind(x float64) float64 {
	s, _ := SinCosd(x)
	return s
}

// Cosd returns the cosine of x degrees.
func Cosd(x float64) float64 {
	_, c := SinCosd(x)
	return c
}
