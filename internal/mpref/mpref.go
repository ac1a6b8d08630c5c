// Package mpref computes float64 reference values of the kernels in
// multiple precision. Each result is the exact value rounded once to
// float64, which makes it the yardstick for measuring errors in units in
// the last place.
package mpref

import (
	"math"
	"math/big"
)

// Working precision in bits. Argument reductions and series lose at most
// a few dozen of them.
const prec = 256

// pi to 100 decimal places.
const piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

var pi, _, _ = big.ParseFloat(piDigits, 10, prec, big.ToNearestEven)

func newFloat(x float64) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

func round(x *big.Float) float64 {
	f, _ := x.Float64()
	return f
}

// Exp returns exp(x) rounded to float64.
func Exp(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 1):
		return x
	case math.IsInf(x, -1):
		return 0
	case x == 0:
		return 1
	}

	// exp(x) = exp(x/2^s)^(2^s) with |x/2^s| < 2^-10.
	_, e := math.Frexp(x)
	s := e + 10
	if s < 0 {
		s = 0
	}
	r := newFloat(math.Ldexp(x, -s))

	sum := newFloat(1)
	term := newFloat(1)
	eps := newFloat(0x1p-270)
	for n := 1; ; n++ {
		term.Mul(term, r)
		term.Quo(term, newFloat(float64(n)))
		sum.Add(sum, term)
		if new(big.Float).Abs(term).Cmp(eps) < 0 {
			break
		}
	}
	for ; s > 0; s-- {
		sum.Mul(sum, sum)
	}
	return round(sum)
}

// Cbrt returns the real cube root of x rounded to float64.
func Cbrt(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v := newFloat(x)
	y := newFloat(math.Cbrt(x))
	three := newFloat(3)
	for i := 0; i < 5; i++ {
		// y -= (y^3 - v) / (3 y^2)
		y2 := new(big.Float).SetPrec(prec).Mul(y, y)
		num := new(big.Float).SetPrec(prec).Mul(y2, y)
		num.Sub(num, v)
		den := new(big.Float).SetPrec(prec).Mul(y2, three)
		y.Sub(y, num.Quo(num, den))
	}
	return round(y)
}

// sinCos returns sin(r) and cos(r) for |r| <= 2 by their Maclaurin series.
func sinCos(r *big.Float) (*big.Float, *big.Float) {
	r2 := new(big.Float).SetPrec(prec).Mul(r, r)
	eps := newFloat(0x1p-280)

	s := new(big.Float).SetPrec(prec).Set(r)
	term := new(big.Float).SetPrec(prec).Set(r)
	for k := 1; ; k++ {
		term.Mul(term, r2)
		term.Quo(term, newFloat(float64(-(2*k)*(2*k+1))))
		s.Add(s, term)
		if new(big.Float).Abs(term).Cmp(eps) < 0 {
			break
		}
	}

	c := newFloat(1)
	term = newFloat(1)
	for k := 1; ; k++ {
		term.Mul(term, r2)
		term.Quo(term, newFloat(float64(-(2*k-1)*(2*k))))
		c.Add(c, term)
		if new(big.Float).Abs(term).Cmp(eps) < 0 {
			break
		}
	}
	return s, c
}

// Asin returns the arcsine of x rounded to float64, NaN outside [-1, 1].
func Asin(x float64) float64 {
	switch {
	case math.IsNaN(x) || x > 1 || x < -1:
		return math.NaN()
	case x == 0:
		return x
	case x == 1 || x == -1:
		h := new(big.Float).SetPrec(prec).SetMantExp(pi, -1)
		return math.Copysign(round(h), x)
	}

	// Newton's method on sin(y) = x, from the float64 arcsine.
	v := newFloat(x)
	y := newFloat(math.Asin(x))
	for i := 0; i < 6; i++ {
		s, c := sinCos(y)
		s.Sub(s, v)
		y.Sub(y, s.Quo(s, c))
	}
	return round(y)
}

// SinCosd returns the sine and the cosine of x degrees rounded to
// float64. Zeros are +0, except Sind(-0).
func SinCosd(x float64) (float64, float64) {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return math.NaN(), math.NaN()
	case x == 0:
		return x, 1
	}

	// math.Mod is exact; so are the folds into [0, 90].
	negS := x < 0
	negC := false
	r := math.Mod(math.Abs(x), 360)
	if r >= 180 {
		r -= 180
		negS = !negS
		negC = true
	}
	if r > 90 {
		r = 180 - r
		negC = !negC
	}

	rad := newFloat(r)
	rad.Mul(rad, pi)
	rad.Quo(rad, newFloat(180))
	sb, cb := sinCos(rad)
	s, c := round(sb), round(cb)
	switch r {
	case 0:
		s, c = 0, 1
	case 90:
		s, c = 1, 0
	}
	if negS && s != 0 {
		s = -s
	}
	if negC && c != 0 {
		c = -c
	}
	return s, c
}

// Sind returns the sine of x degrees rounded to float64.
func Sind(x float64) float64 {
	s, _ := SinCosd(x)
	return s
}

// Cosd returns the cosine of x degrees rounded to float64.
func Cosd(x float64) float64 {
	_, c := SinCosd(x)
	return c
}

// Hypot returns sqrt(x*x + y*y) rounded to float64.
func Hypot(x, y float64) float64 {
	return Hypot3(x, y, 0)
}

// Hypot3 returns sqrt(x*x + y*y + z*z) rounded to float64.
func Hypot3(x, y, z float64) float64 {
	switch {
	case math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsInf(z, 0):
		return math.Inf(1)
	case math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z):
		return math.NaN()
	}
	sum := newFloat(0)
	for _, v := range []float64{x, y, z} {
		b := newFloat(v)
		sum.Add(sum, b.Mul(b, b))
	}
	return round(new(big.Float).SetPrec(prec).Sqrt(sum))
}
