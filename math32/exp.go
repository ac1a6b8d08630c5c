package math32

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/internal/tables"
	"github.com/ryanmaguire/libtmpl-sub005/reduce"
)

const (
	// ln(2) split in two: ln2Hi has 32 significant bits.
	ln2Hi  = 6.93147180369123816490e-01
	ln2Lo  = 1.90821492927058770002e-10
	invLn2 = 1.4426950408889634

	// Largest float32 whose exp is finite, and the point below which
	// exp rounds to zero.
	maxLog = 88.72283172607421875
	minLog = -103.97207641601562
)

// 1/n! in double precision; the kernels of this package evaluate in
// double precision and round once to float32.
var expCoeffs = []float64{
	1.0,
	1.0,
	0.5,
	0.16666666666666666,
	0.041666666666666664,
	0.008333333333333333,
}

// exp(x) in double precision, from x = k*ln(2) + n/128 + t.
func expReduce(x float32) float64 {
	xd := float64(x)
	var k int
	if xd < 0 {
		k = -int(-xd*invLn2 + 0.5)
	} else {
		k = int(xd*invLn2 + 0.5)
	}
	fk := float64(k)
	r := (xd - fk*ln2Hi) - fk*ln2Lo
	n, t := reduce.SplitTrunc(r, 128)
	return scale2(tables.Exp[n+45].Hi*reduce.Horner(t, expCoeffs), k)
}

// m * 2^k, written into the double exponent field. Every k reached from
// a float32 argument keeps the double result normal.
func scale2(m float64, k int) float64 {
	if !config.HasIEEE754 {
		return math.Ldexp(m, k)
	}
	return math.Float64frombits(math.Float64bits(m) + uint64(k)<<52)
}

// ExpPosKernel computes exp(x) for x >= 0.
func ExpPosKernel(x float32) float32 {
	switch {
	case x != x:
		return x
	case x > maxLog:
		return inf()
	case x < 0x1p-25:
		return 1 + x
	case x < 0x1p-7:
		return float32(reduce.Horner(float64(x), expCoeffs))
	}
	return float32(expReduce(x))
}

// Exp computes exp(x) for any x. Results below the smallest normal
// float32 are rounded once, from the double value.
func Exp(x float32) float32 {
	switch {
	case x != x:
		return x
	case x > maxLog:
		return inf()
	case x < minLog:
		return 0
	case x >= 0:
		return ExpPosKernel(x)
	case x > -0x1p-25:
		return 1 + x
	case x > -0x1p-7:
		return float32(reduce.Horner(float64(x), expCoeffs))
	}
	return float32(expReduce(x))
}
