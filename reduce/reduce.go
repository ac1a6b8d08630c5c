// Package reduce holds the range-reduction steps shared by the float32
// and float64 kernels: polynomial evaluation, exact remainders, and the
// split of an argument into a table index and a small remainder.
package reduce

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Horner evaluates c[0] + x*(c[1] + x*(c[2] + ...)).
func Horner[T constraints.Float](x T, c []T) T {
	if len(c) == 0 {
		return 0
	}
	r := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}

// Degrees returns |x| mod 360, exactly, in [0, 360). x must be finite.
//
// Each step subtracts 360*2^k for a decreasing k, and is exact since the
// running value is then between 360*2^k and twice that. Large inputs are
// integers; their exponent is first brought down by a multiple of 12,
// which leaves the remainder unchanged because 2^12 = 1 mod 45 and both
// the input and its scaled version are multiples of 8.
func Degrees[T constraints.Float](x T) T {
	r := float64(x)
	if r < 0 {
		r = -r
	}
	if r < 360 {
		return T(r)
	}
	_, e := math.Frexp(r)
	if e > 70 {
		r = math.Ldexp(r, -12*((e-59)/12))
		_, e = math.Frexp(r)
	}

	// r < 2^e = 360 * 2^(e - log2(360)); start with the largest
	// multiple 360*2^k not above r.
	k := e - 9
	if k < 0 {
		k = 0
	}
	p := math.Ldexp(360, k)
	for p > r {
		p *= 0.5
	}
	for p >= 360 {
		if r >= p {
			r -= p
		}
		p *= 0.5
	}
	return T(r)
}

// ModTwo returns x - 2*trunc(x/2) by subtracting descending powers of
// two from |x|; it only uses comparisons, subtractions and halvings.
// ±Inf and NaN give NaN.
func ModTwo[T constraints.Float](x T) T {
	if x != x || x-x != 0 {
		return T(math.NaN())
	}
	r := float64(x)
	neg := r < 0
	if neg {
		r = -r
	}
	if r < 2 {
		return x
	}
	_, e := math.Frexp(r)
	p := math.Ldexp(1, e-1)
	for p >= 2 {
		if r >= p {
			r -= p
		}
		p *= 0.5
	}
	if neg {
		r = -r
	}
	return T(r)
}

// SplitNearest returns the integer n nearest to x (ties away from zero)
// and the remainder x - n. x must be below 2^31 in absolute value, and
// the remainder is exact whenever |x| is at least 1/2 or n is zero.
func SplitNearest[T constraints.Float](x T) (int, T) {
	var n int
	if x < 0 {
		n = -int(-x + 0.5)
	} else {
		n = int(x + 0.5)
	}
	return n, x - T(n)
}

// SplitTrunc returns n = trunc(x*scale) and x - n/scale. scale must be a
// power of two.
func SplitTrunc[T constraints.Float](x, scale T) (int, T) {
	n := int(x * scale)
	return n, x - T(n)/scale
}
