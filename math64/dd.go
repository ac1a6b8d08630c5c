package math64

import "math"

// Error-free transformations. Each returns a rounded result together with
// its exact rounding error, so that a pair (hi, lo) carries about 106
// bits. The explicit conversions stop the compiler from fusing a product
// into a neighboring sum, which would break the exactness.

// twoSum returns s = a+b rounded and e such that a+b = s+e exactly.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// fastTwoSum is twoSum for |a| >= |b| (or a == 0).
func fastTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return s, e
}

// twoProd returns p = a*b rounded and e such that a*b = p+e exactly,
// barring underflow.
func twoProd(a, b float64) (p, e float64) {
	p = float64(a * b)
	e = math.FMA(a, b, -p)
	return p, e
}

// sqrtPair returns sqrt(hi+lo), lo being small next to hi. One
// correction with the exact residual hi - r*r leaves the result
// faithfully rounded.
func sqrtPair(hi, lo float64) float64 {
	r := math.Sqrt(hi)
	return r + (math.FMA(-r, r, hi)+lo)/(2*r)
}
