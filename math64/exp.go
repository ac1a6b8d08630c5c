package math64

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/internal/tables"
	"github.com/ryanmaguire/libtmpl-sub005/reduce"
)

const (
	// ln(2) split in two: ln2Hi has 32 significant bits, so k*ln2Hi is
	// exact for |k| < 2^21.
	ln2Hi  = 6.93147180369123816490e-01
	ln2Lo  = 1.90821492927058770002e-10
	invLn2 = 1.4426950408889634

	// exp(x) overflows above maxLog and underflows to zero below minLog.
	maxLog = 7.09782712893383973096e+02
	minLog = -7.45133219101941108420e+02
)

// Maclaurin coefficients 1/n! of exp(t), |t| < 1/128.
var expCoeffs = []float64{
	1.0,
	1.0,
	0.5,
	0.16666666666666666,
	0.041666666666666664,
	0.008333333333333333,
	0.001388888888888889,
}

// Reduce x as k*ln(2) + n/128 + t and return 2^-k * exp(x), which lies in
// [0.70, 1.42], together with k.
//
// The low part of k*ln(2) is carried separately from t, and the table
// value exp(n/128) is a hi/lo pair, so that the only sizable error is the
// final addition.
func expReduce(x float64) (float64, int) {
	var k int
	if x < 0 {
		k = -int(-x*invLn2 + 0.5)
	} else {
		k = int(x*invLn2 + 0.5)
	}
	fk := float64(k)
	rhi := x - float64(fk*ln2Hi)
	rlo := -float64(fk * ln2Lo)

	// |r| <= ln(2)/2 < 45/128; t is exact.
	n, t := reduce.SplitTrunc(rhi, 128)
	u := t + rlo

	// exp(u) - 1.
	p := float64(u * reduce.Horner(u, expCoeffs[1:]))
	e := tables.Exp[n+45]
	return e.Hi + (float64(e.Hi*p) + e.Lo), k
}

// ExpPosKernel computes exp(x) for x >= 0. Inputs above the overflow
// threshold give +Inf; NaN is returned unchanged. Negative inputs are
// outside the domain of this kernel (see Exp).
func ExpPosKernel(x float64) float64 {
	switch {
	case x != x:
		return x
	case x > maxLog:
		return math.Inf(1)
	case x < 0x1p-54:
		// exp(x) rounds to 1 + x.
		return 1 + x
	case x < 0x1p-7:
		// No reduction needed.
		return reduce.Horner(x, expCoeffs)
	}
	m, k := expReduce(x)
	return scale2(m, k)
}

// Multiply m, a normal value, by 2^k; the result must be finite.
func scale2(m float64, k int) float64 {
	if !config.HasIEEE754 {
		return math.Ldexp(m, k)
	}
	b := math.Float64bits(m)
	e := expo(b) + k
	if e < -1022 {
		// Subnormal result: let the rounding happen in a multiplication.
		return math.Float64frombits(b+uint64(k+600)<<expShift) * 0x1p-600
	}
	return math.Float64frombits(b + uint64(k)<<expShift)
}

// Exp computes exp(x) over the whole real line.
func Exp(x float64) float64 {
	switch {
	case x != x:
		return x
	case x > maxLog:
		return math.Inf(1)
	case x < minLog:
		return 0
	case x >= 0:
		return ExpPosKernel(x)
	case x > -0x1p-54:
		return 1 + x
	case x > -0x1p-7:
		return reduce.Horner(x, expCoeffs)
	}
	m, k := expReduce(x)
	return scale2(m, k)
}
