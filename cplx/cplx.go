// Package cplx implements complex modulus, multiplication, and division
// that avoids overflow in the squared modulus.
//
// Division by w does not check w: a zero, infinite or NaN divisor gives
// an unspecified result.
package cplx

import (
	"github.com/ryanmaguire/libtmpl-sub005/math32"
	"github.com/ryanmaguire/libtmpl-sub005/math64"
)

// Abs64 returns the modulus of z.
func Abs64(z complex64) float32 {
	return math32.Hypot(real(z), imag(z))
}

// Abs128 returns the modulus of z.
func Abs128(z complex128) float64 {
	return math64.Hypot(real(z), imag(z))
}

// Mul64 returns z*w by the schoolbook formula. Each product is rounded
// on its own; no multiply is fused into the sums.
func Mul64(z, w complex64) complex64 {
	re := float32(real(z)*real(w)) - float32(imag(z)*imag(w))
	im := float32(real(z)*imag(w)) + float32(imag(z)*real(w))
	return complex(re, im)
}

// Mul128 returns z*w, as Mul64 does.
func Mul128(z, w complex128) complex128 {
	re := float64(real(z)*real(w)) - float64(imag(z)*imag(w))
	im := float64(real(z)*imag(w)) + float64(imag(z)*real(w))
	return complex(re, im)
}

// Div64 returns z/w. w is first scaled to unit modulus, so that
// z/w = z*conj(w/|w|) / |w| involves no square of w's components.
func Div64(z, w complex64) complex64 {
	r := Abs64(w)
	ur, ui := real(w)/r, imag(w)/r
	zr, zi := real(z), imag(z)
	re := float32(zr*ur) + float32(zi*ui)
	im := float32(zi*ur) - float32(zr*ui)
	return complex(re/r, im/r)
}

// Div128 returns z/w, as Div64 does.
func Div128(z, w complex128) complex128 {
	r := Abs128(w)
	ur, ui := real(w)/r, imag(w)/r
	zr, zi := real(z), imag(z)
	re := float64(zr*ur) + float64(zi*ui)
	im := float64(zi*ur) - float64(zr*ui)
	return complex(re/r, im/r)
}
