package math32

import (
	"github.com/ryanmaguire/libtmpl-sub005/internal/tables"
	"github.com/ryanmaguire/libtmpl-sub005/reduce"
)

var sindCoeffs = []float64{
	0.017453292519943295,
	-8.86096155701298e-07,
	1.349601623163255e-11,
}

var cosdCoeffs = []float64{
	1.0,
	-0.0001523087098933543,
	3.866323851562994e-09,
	-3.925831985743095e-14,
}

// SinCosd returns the sine and the cosine of x degrees, exactly at
// multiples of 90. The reduction is done in float32, the evaluation in
// double precision.
func SinCosd(x float32) (float32, float32) {
	if x != x || x-x != 0 {
		return nan(), nan()
	}
	if x == 0 {
		return x, 1
	}
	negS := x < 0
	negC := false
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

	n, t32 := reduce.SplitNearest(r)
	t := float64(t32)
	t2 := t * t
	st := t * reduce.Horner(t2, sindCoeffs)
	ct := reduce.Horner(t2, cosdCoeffs)
	sn := tables.SinDeg[n].Hi
	cn := tables.SinDeg[90-n].Hi
	s := float32(float64(sn*ct) + float64(cn*st))
	c := float32(float64(cn*ct) - float64(sn*st))
	if negS && s != 0 {
		s = -s
	}
	if negC && c != 0 {
		c = -c
	}
	return s, c
}

// Sind returns the sine of x degrees.
func Sind(x float32) float32 {
	s, _ := SinCosd(x)
	return s
}

// Cosd returns the cosine of x degrees.
func Cosd(x float32) float32 {
	_, c := SinCosd(x)
	return c
}
