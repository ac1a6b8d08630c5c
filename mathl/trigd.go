package mathl

import "github.com/ryanmaguire/libtmpl-sub005/math64"

// SinCosd returns the sine and the cosine of x degrees. Multiples of 90
// degrees give exact results, with +0 for the zeros other than Sind(-0).
// NaN and ±Inf give NaN.
func SinCosd(x LDouble) (LDouble, LDouble) {
	if sharesDouble {
		s, c := math64.SinCosd(Float64(x))
		return FromFloat64(s), FromFloat64(c)
	}
	switch {
	case IsNaN(x) || IsInf(x):
		return nan, nan
	case IsZero(x):
		return x, one
	}
	negS := Signbit(x)
	negC := false

	// Exact reduction to [0, 90].
	r := degrees(x)
	if !Less(r, c180) {
		r = Sub(r, c180)
		negS = !negS
		negC = true
	}
	if Less(c90, r) {
		r = Sub(c180, r)
		negC = !negC
	}

	n := nearest(Float64(r))
	t := Sub(r, FromInt(n))
	t2 := Mul(t, t)
	st := Mul(t, horner(t2, sindCoeffs))
	ct := horner(t2, cosdCoeffs)
	sn := sindTab[n]
	cn := sindTab[90-n]
	s := Add(Mul(sn, ct), Mul(cn, st))
	c := Sub(Mul(cn, ct), Mul(sn, st))

	if negS && !IsZero(s) {
		s = Neg(s)
	}
	if negC && !IsZero(c) {
		c = Neg(c)
	}
	return s, c
}

// Sind returns the sine of x degrees.
func Sind(x LDouble) LDouble {
	s, _ := SinCosd(x)
	return s
}

// Cosd returns the cosine of x degrees.
func Cosd(x LDouble) LDouble {
	_, c := SinCosd(x)
	return c
}
