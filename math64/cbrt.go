package math64

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/internal/tables"
	"github.com/ryanmaguire/libtmpl-sub005/reduce"
)

// binomial(1/3, n), n = 0 to 3: cbrt(1+s) = 1 + s/3 - s^2/9 + 5s^3/81 - ...
// The truncation error is below 2^-31 for |s| < 1/128; one Newton step
// then brings it below 2^-60.
var cbrtCoeffs = []float64{
	1.0,
	0.3333333333333333,
	-0.1111111111111111,
	0.06172839506172839,
}

// Cbrt returns the real cube root of x. ±0, ±Inf and NaN are returned
// unchanged.
func Cbrt(x float64) float64 {
	if x == 0 || x != x || x-x != 0 {
		return x
	}
	if !config.HasIEEE754 {
		return cbrtPortable(x)
	}

	b := math.Float64bits(x)
	sign := b & signMask
	b &^= signMask

	// Subnormals are scaled by 2^54 (a multiple of 3) first.
	adj := 0
	if b&expMask == 0 {
		b = math.Float64bits(math.Float64frombits(b) * 0x1p54)
		adj = -18
	}

	// x = 2^(3q+p) * u with u in [1, 2) and p in {0, 1, 2}.
	e := expo(b)
	q := floorDiv3(e)
	p := e - 3*q
	u := math.Float64frombits(b&manMask | uint64(bias)<<expShift)

	// Table point t = 1 + k/128 from the 7 leading mantissa bits.
	k := int((b & manMask) >> 45)
	v := u * float64(int(1)<<uint(p))
	y := cbrtNewton(cbrtPoly(u, k)*tables.CbrtTwo[p], v)

	r := math.Float64bits(y) + uint64(q+adj)<<expShift
	return math.Float64frombits(r | sign)
}

// cbrt(u) for u in [1, 2), k being the index of the table point at or
// just below u.
func cbrtPoly(u float64, k int) float64 {
	t := 1 + float64(k)*0x1p-7
	s := (u - t) / t
	return tables.Cbrt[k] * reduce.Horner(s, cbrtCoeffs)
}

// One Newton step from y ~ cbrt(v), v in [1, 8). The residual y^3 - v
// is computed almost exactly, so that the step leaves only the final
// rounding.
func cbrtNewton(y, v float64) float64 {
	a, alo := twoProd(y, y)
	r := math.FMA(a, y, -v) + float64(alo*y)
	return y - r/(3*a)
}

func floorDiv3(e int) int {
	if e >= 0 {
		return e / 3
	}
	return -((-e + 2) / 3)
}

func cbrtPortable(x float64) float64 {
	ax := absPortable(x)
	fr, e := math.Frexp(ax)

	// ax = 2^(e-1) * u with u = 2*fr in [1, 2).
	u := 2 * fr
	e--
	q := floorDiv3(e)
	p := e - 3*q
	k := int((u - 1) * 128)
	y := cbrtNewton(cbrtPoly(u, k)*tables.CbrtTwo[p], math.Ldexp(u, p))
	y = math.Ldexp(y, q)
	if x < 0 {
		return -y
	}
	return y
}
