package mathl

import "github.com/ryanmaguire/libtmpl-sub005/math64"

// Cbrt returns the real cube root of x. ±0, ±Inf and NaN are returned
// unchanged.
func Cbrt(x LDouble) LDouble {
	if sharesDouble {
		return FromFloat64(math64.Cbrt(Float64(x)))
	}
	if IsZero(x) || IsNaN(x) || IsInf(x) {
		return x
	}

	// |x| = 2^(3q+p) * u with u in [1, 2) and p in {0, 1, 2}.
	ax := Abs(x)
	e, _ := ilogb(ax)
	u := Ldexp(ax, -e)
	q := floorDiv3(e)
	p := e - 3*q

	// Table point 1 + k/128 at or just below u.
	k := int((Float64(u) - 1) * 128)
	if k > 127 {
		k = 127
	} else if k < 0 {
		k = 0
	}
	t := Add(one, Ldexp(FromInt(k), -7))
	s := Div(Sub(u, t), t)
	y := Mul(Mul(cbrtTab[k], horner(s, cbrtCoeffs)), cbrtTwoTab[p])

	// One Newton step on v = u*2^p doubles the number of correct bits.
	v := Ldexp(u, p)
	y = Add(y, Div(Sub(Div(v, Mul(y, y)), y), three))

	y = Ldexp(y, q)
	if Signbit(x) {
		return Neg(y)
	}
	return y
}
