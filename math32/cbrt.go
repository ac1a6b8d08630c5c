package math32

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/internal/tables"
	"github.com/ryanmaguire/libtmpl-sub005/reduce"
)

var cbrtCoeffs = []float64{
	1.0,
	0.3333333333333333,
	-0.1111111111111111,
	0.06172839506172839,
}

// Cbrt returns the real cube root of x.
func Cbrt(x float32) float32 {
	if x == 0 || x != x || x-x != 0 {
		return x
	}
	if !config.HasIEEE754 {
		return cbrtPortable(x)
	}

	b := math.Float32bits(x)
	sign := b & signMask
	b &^= signMask
	adj := 0
	if b&expMask == 0 {
		b = math.Float32bits(math.Float32frombits(b) * 0x1p24)
		adj = -8
	}

	e := expo(b)
	q := floorDiv3(e)
	p := e - 3*q
	u := float64(math.Float32frombits(b&manMask | uint32(bias)<<expShift))
	k := int((b & manMask) >> 16)
	y := cbrtNewton(cbrtPoly(u, k)*tables.CbrtTwo[p], u*float64(int(1)<<uint(p)))

	// y is in [1, 2]; its float32 rounding takes the exponent q.
	r := math.Float32bits(float32(y)) + uint32(q+adj)<<expShift
	return math.Float32frombits(r | sign)
}

func cbrtPoly(u float64, k int) float64 {
	t := 1 + float64(k)*0x1p-7
	s := (u - t) / t
	return tables.Cbrt[k] * reduce.Horner(s, cbrtCoeffs)
}

// Newton step in double precision, from an estimate good to 2^-31.
func cbrtNewton(y, v float64) float64 {
	return y + (v/(y*y)-y)/3
}

func floorDiv3(e int) int {
	if e >= 0 {
		return e / 3
	}
	return -((-e + 2) / 3)
}

func cbrtPortable(x float32) float32 {
	ax := absPortable(x)
	fr, e := math.Frexp(float64(ax))
	u := 2 * fr
	e--
	q := floorDiv3(e)
	p := e - 3*q
	k := int((u - 1) * 128)
	y := cbrtNewton(cbrtPoly(u, k)*tables.CbrtTwo[p], math.Ldexp(u, p))
	r := float32(math.Ldexp(y, q))
	if x < 0 {
		return -r
	}
	return r
}
