package math64

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/config"
)

// Squares of values with exponents in (-484, 511) neither overflow nor
// lose precision to underflow, and three of them still sum below the
// overflow threshold. Outside that band the arguments are scaled by
// 2^-600 or 2^600 and the result is scaled back.
const (
	hypotEmin = -484
	hypotEmax = 511
)

// Hypot returns sqrt(x*x + y*y), avoiding spurious overflow and
// underflow. An infinite argument gives +Inf, even if the other one is
// NaN.
func Hypot(x, y float64) float64 {
	ax, ay := Abs(x), Abs(y)
	switch {
	case IsInf(ax) || IsInf(ay):
		return math.Inf(1)
	case ax != ax || ay != ay:
		return math.NaN()
	}
	if ax < ay {
		ax, ay = ay, ax
	}
	if ay == 0 {
		return ax
	}
	if !config.HasIEEE754 {
		return hypotPortable(ax, ay, 0)
	}
	return hypotScaled(ax, ay, 0, ax)
}

// Hypot3 returns sqrt(x*x + y*y + z*z), the Euclidean norm of (x, y, z),
// with the same overflow and special-value behavior as Hypot.
func Hypot3(x, y, z float64) float64 {
	ax, ay, az := Abs(x), Abs(y), Abs(z)
	switch {
	case IsInf(ax) || IsInf(ay) || IsInf(az):
		return math.Inf(1)
	case ax != ax || ay != ay || az != az:
		return math.NaN()
	}
	// Largest first, so that Hypot3(x, y, 0) matches Hypot(x, y) bit for
	// bit.
	if ax < ay {
		ax, ay = ay, ax
	}
	if ax < az {
		ax, az = az, ax
	}
	if ay < az {
		ay, az = az, ay
	}
	if ax == 0 {
		return 0
	}
	if !config.HasIEEE754 {
		return hypotPortable(ax, ay, az)
	}
	return hypotScaled(ax, ay, az, ax)
}

// m is the largest of the nonnegative arguments.
func hypotScaled(ax, ay, az, m float64) float64 {
	switch e := expo(math.Float64bits(m)); {
	case e >= hypotEmax:
		const s = 0x1p-600
		return norm(ax*s, ay*s, az*s) * 0x1p600
	case e <= hypotEmin:
		const s = 0x1p600
		return norm(ax*s, ay*s, az*s) * 0x1p-600
	}
	return norm(ax, ay, az)
}

// Scaling by the exponent of the largest argument, found with Frexp
// rather than from the bits.
func hypotPortable(ax, ay, az float64) float64 {
	_, e := math.Frexp(max(ax, ay, az))
	ax, ay, az = math.Ldexp(ax, -e), math.Ldexp(ay, -e), math.Ldexp(az, -e)
	return math.Ldexp(norm(ax, ay, az), e)
}

// sqrt(a^2 + b^2 + c^2) with the squares and their sum carried as a
// hi/lo pair. The square of the largest argument must neither overflow
// nor underflow.
func norm(a, b, c float64) float64 {
	h1, l1 := twoProd(a, a)
	h2, l2 := twoProd(b, b)
	h3, l3 := twoProd(c, c)
	s, e1 := twoSum(h1, h2)
	s, e2 := twoSum(s, h3)
	return sqrtPair(s, e1+e2+l1+l2+l3)
}
