package ieee754

import (
	"github.com/ryanmaguire/libtmpl-sub005/config"
)

// Extended is an x87 80-bit extended precision value: one sign bit and
// a 15-bit biased exponent in SignExp, and a 64-bit significand with an
// explicit integer bit in Mant.
type Extended struct {
	SignExp uint16
	Mant    uint64
}

const (
	extSign    = 0x8000
	extExpMask = 0x7FFF
	extIntBit  = 0x8000000000000000
)

// MakeExtended builds a value from its fields.
func MakeExtended(sign uint8, exp uint16, mant uint64) Extended {
	return Extended{SignExp: uint16(sign&1)<<15 | exp&extExpMask, Mant: mant}
}

func (x Extended) Raw() Raw {
	return Raw{Hi: uint64(x.SignExp), Lo: x.Mant}
}

// ExtendedFromRaw ignores bits of r.Hi above bit 15.
func ExtendedFromRaw(r Raw) Extended {
	return Extended{SignExp: uint16(r.Hi), Mant: r.Lo}
}

func (x Extended) Fields() Fields {
	f, _ := Decompose(config.Extended128LE, x.Raw())
	return f
}

func (x Extended) Class() Class {
	return Classify(config.Extended128LE, x.Fields())
}

// Exponent returns the biased exponent field.
func (x Extended) Exponent() uint16 {
	return x.SignExp & extExpMask
}

func (x Extended) Signbit() bool {
	return x.SignExp&extSign != 0
}

func (x Extended) IsNaN() bool {
	return x.Class() == NaN
}

func (x Extended) IsInf() bool {
	return x.Class() == Infinite
}

func (x Extended) IsZero() bool {
	return x.Exponent() == 0 && x.Mant == 0
}

func (x Extended) IsSubnormal() bool {
	return x.Exponent() == 0 && x.Mant != 0
}

// Abs clears the sign bit. Every other bit, NaN payloads included, is
// left untouched.
func (x Extended) Abs() Extended {
	x.SignExp &^= extSign
	return x
}

func (x Extended) Neg() Extended {
	x.SignExp ^= extSign
	return x
}
