package ieee754

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/config"
)

// DoubleDouble is the unevaluated sum Hi + Lo of two binary64 values,
// with |Lo| <= ulp(Hi)/2 for a normalized value. Sign and exponent of
// the pair are those of Hi.
type DoubleDouble struct {
	Hi, Lo float64
}

func (x DoubleDouble) Raw() Raw {
	return Raw{Hi: math.Float64bits(x.Hi), Lo: math.Float64bits(x.Lo)}
}

func DoubleDoubleFromRaw(r Raw) DoubleDouble {
	return DoubleDouble{
		Hi: math.Float64frombits(r.Hi),
		Lo: math.Float64frombits(r.Lo),
	}
}

// Fields returns the decompositions of the high and low components.
func (x DoubleDouble) Fields() (Fields, Fields) {
	return Decompose(config.DoubleDouble128LE, x.Raw())
}

func (x DoubleDouble) Class() Class {
	return Classify64(x.Hi)
}

func (x DoubleDouble) Signbit() bool {
	return math.Signbit(x.Hi)
}

func (x DoubleDouble) IsNaN() bool {
	return x.Class() == NaN
}

func (x DoubleDouble) IsInf() bool {
	return x.Class() == Infinite
}

func (x DoubleDouble) IsZero() bool {
	return x.Class() == Zero
}

func (x DoubleDouble) IsSubnormal() bool {
	return x.Class() == Subnormal
}

// Abs clears the sign of Hi and sets the sign of Lo to the exclusive or
// of the two original signs, so that |Hi + Lo| = |Hi| + Lo' holds for a
// normalized pair.
func (x DoubleDouble) Abs() DoubleDouble {
	hi := math.Float64bits(x.Hi)
	lo := math.Float64bits(x.Lo)
	lo ^= hi & Binary64SignMask
	hi &^= Binary64SignMask
	return DoubleDouble{Hi: math.Float64frombits(hi), Lo: math.Float64frombits(lo)}
}

func (x DoubleDouble) Neg() DoubleDouble {
	return DoubleDouble{Hi: -x.Hi, Lo: -x.Lo}
}
