package mathl

import (
	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/math64"
)

// Hypot returns sqrt(x*x + y*y) without spurious overflow or underflow.
// An infinite argument gives +Inf, even if the other one is NaN.
func Hypot(x, y LDouble) LDouble {
	if sharesDouble {
		return FromFloat64(math64.Hypot(Float64(x), Float64(y)))
	}
	ax, ay := Abs(x), Abs(y)
	switch {
	case IsInf(ax) || IsInf(ay):
		return inf
	case IsNaN(ax) || IsNaN(ay):
		return nan
	}
	if Less(ax, ay) {
		ax, ay = ay, ax
	}
	if IsZero(ay) {
		return ax
	}
	return hypotScaled(ax, ay, zero, ax)
}

// Hypot3 returns sqrt(x*x + y*y + z*z), with the same overflow and
// special-value behavior as Hypot.
func Hypot3(x, y, z LDouble) LDouble {
	if sharesDouble {
		return FromFloat64(math64.Hypot3(Float64(x), Float64(y), Float64(z)))
	}
	ax, ay, az := Abs(x), Abs(y), Abs(z)
	switch {
	case IsInf(ax) || IsInf(ay) || IsInf(az):
		return inf
	case IsNaN(ax) || IsNaN(ay) || IsNaN(az):
		return nan
	}
	m := ax
	if Less(m, ay) {
		m = ay
	}
	if Less(m, az) {
		m = az
	}
	if IsZero(m) {
		return zero
	}
	return hypotScaled(ax, ay, az, m)
}

// m is the largest of the nonnegative arguments.
func hypotScaled(ax, ay, az, m LDouble) LDouble {
	if !config.HasIEEE754 {
		ax, ay, az = Div(ax, m), Div(ay, m), Div(az, m)
		return Mul(m, Sqrt(sumSquares(ax, ay, az)))
	}

	// Squares of values with exponents in (hypotEmin, hypotEmax) neither
	// overflow nor underflow.
	e, _ := ilogb(m)
	switch {
	case e >= hypotEmax:
		ax, ay, az = Ldexp(ax, hypotDown), Ldexp(ay, hypotDown), Ldexp(az, hypotDown)
		return Ldexp(Sqrt(sumSquares(ax, ay, az)), -hypotDown)
	case e <= hypotEmin:
		ax, ay, az = Ldexp(ax, hypotUp), Ldexp(ay, hypotUp), Ldexp(az, hypotUp)
		return Ldexp(Sqrt(sumSquares(ax, ay, az)), -hypotUp)
	}
	return Sqrt(sumSquares(ax, ay, az))
}

func sumSquares(a, b, c LDouble) LDouble {
	return Add(Add(Mul(a, a), Mul(b, b)), Mul(c, c))
}
