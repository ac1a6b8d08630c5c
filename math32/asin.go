package math32

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/internal/tables"
	"github.com/ryanmaguire/libtmpl-sub005/reduce"
)

const pio2 = 1.5707963267948966

var asinCoeffs = []float64{
	1.0,
	0.16666666666666666,
	0.075,
	0.044642857142857144,
	0.030381944444444444,
}

// Asin returns the arcsine of x. |x| > 1 and NaN give NaN.
func Asin(x float32) float32 {
	ax := Abs(x)
	switch {
	case x != x || ax > 1:
		return nan()
	case ax < 0x1p-12:
		return x
	}
	var r float64
	if ax <= 0.5 {
		r = asinHalf(float64(ax))
	} else {
		// 1-ax is exact; the double root carries 29 bits more than
		// the result needs.
		s := math.Sqrt(float64(1-ax) * 0.5)
		r = pio2 - 2*asinHalf(s)
	}
	if x < 0 {
		r = -r
	}
	return float32(r)
}

func asinHalf(x float64) float64 {
	if x < 0x1p-6 {
		return x * reduce.Horner(x*x, asinCoeffs)
	}
	n, _ := reduce.SplitNearest(x * 32)
	a := float64(n) * 0x1p-5
	d := (x - a) * (x + a) / (x*tables.AsinSqrt[n].Hi + a*math.Sqrt(1-x*x))
	return tables.Asin[n].Hi + d*reduce.Horner(d*d, asinCoeffs)
}
