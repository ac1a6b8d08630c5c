package ieee754

import (
	"github.com/ryanmaguire/libtmpl-sub005/config"
)

// Quadruple is an IEEE-754 binary128 value. Hi holds the sign, the
// 15-bit biased exponent and the top 48 mantissa bits; Lo holds the low
// 64 mantissa bits.
type Quadruple struct {
	Hi, Lo uint64
}

const (
	quadSign     = 0x8000000000000000
	quadExpMask  = 0x7FFF000000000000
	quadManHi    = 0x0000FFFFFFFFFFFF
	quadExpShift = 48
)

// MakeQuadruple builds a value from its fields; manHi is truncated to 48
// bits.
func MakeQuadruple(sign uint8, exp uint16, manHi, manLo uint64) Quadruple {
	return Quadruple{
		Hi: uint64(sign&1)<<63 | uint64(exp&0x7FFF)<<quadExpShift |
			manHi&quadManHi,
		Lo: manLo,
	}
}

func (x Quadruple) Raw() Raw {
	return Raw{Hi: x.Hi, Lo: x.Lo}
}

func QuadrupleFromRaw(r Raw) Quadruple {
	return Quadruple{Hi: r.Hi, Lo: r.Lo}
}

func (x Quadruple) Fields() Fields {
	f, _ := Decompose(config.Quadruple128LE, x.Raw())
	return f
}

func (x Quadruple) Class() Class {
	return Classify(config.Quadruple128LE, x.Fields())
}

func (x Quadruple) Exponent() uint16 {
	return uint16((x.Hi & quadExpMask) >> quadExpShift)
}

func (x Quadruple) Signbit() bool {
	return x.Hi&quadSign != 0
}

func (x Quadruple) IsNaN() bool {
	return x.Class() == NaN
}

func (x Quadruple) IsInf() bool {
	return x.Class() == Infinite
}

func (x Quadruple) IsZero() bool {
	return x.Hi&^quadSign == 0 && x.Lo == 0
}

func (x Quadruple) IsSubnormal() bool {
	return x.Class() == Subnormal
}

func (x Quadruple) Abs() Quadruple {
	x.Hi &^= quadSign
	return x
}

func (x Quadruple) Neg() Quadruple {
	x.Hi ^= quadSign
	return x
}
