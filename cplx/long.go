package cplx

import "github.com/ryanmaguire/libtmpl-sub005/mathl"

// Long is a complex number with mathl.LDouble parts.
type Long struct {
	Re, Im mathl.LDouble
}

// AbsL returns the modulus of z.
func AbsL(z Long) mathl.LDouble {
	return mathl.Hypot(z.Re, z.Im)
}

// MulL returns z*w by the schoolbook formula.
func MulL(z, w Long) Long {
	return Long{
		Re: mathl.Sub(mathl.Mul(z.Re, w.Re), mathl.Mul(z.Im, w.Im)),
		Im: mathl.Add(mathl.Mul(z.Re, w.Im), mathl.Mul(z.Im, w.Re)),
	}
}

// DivL returns z/w by Smith's algorithm: both parts are divided through
// by the larger component of w, never by |w|^2.
func DivL(z, w Long) Long {
	if !mathl.Less(mathl.Abs(w.Re), mathl.Abs(w.Im)) {
		// |Re w| >= |Im w|: w = Re w (1 + i q).
		q := mathl.Div(w.Im, w.Re)
		d := mathl.Add(w.Re, mathl.Mul(w.Im, q))
		return Long{
			Re: mathl.Div(mathl.Add(z.Re, mathl.Mul(z.Im, q)), d),
			Im: mathl.Div(mathl.Sub(z.Im, mathl.Mul(z.Re, q)), d),
		}
	}
	q := mathl.Div(w.Re, w.Im)
	d := mathl.Add(w.Im, mathl.Mul(w.Re, q))
	return Long{
		Re: mathl.Div(mathl.Add(mathl.Mul(z.Re, q), z.Im), d),
		Im: mathl.Div(mathl.Sub(mathl.Mul(z.Im, q), z.Re), d),
	}
}
