package ieee754

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/config"
)

// Raw holds the storage bits of a value. Formats of 64 bits or less use
// Lo only. The x87 extended format keeps its sign and exponent in the
// low 16 bits of Hi and its full 64-bit significand in Lo. Binary128
// uses all 128 bits. A double-double keeps the bits of the high
// component in Hi and of the low component in Lo.
type Raw struct {
	Hi, Lo uint64
}

// Mantissa is a mantissa field of up to 128 bits.
type Mantissa struct {
	Hi, Lo uint64
}

// IsZero reports whether every mantissa bit is clear.
func (m Mantissa) IsZero() bool {
	return m.Hi|m.Lo == 0
}

// Fields is the decomposition of one value. Sign is 0 or 1 and Exponent
// is the biased exponent field.
type Fields struct {
	Sign     uint8
	Exponent uint16
	Mantissa Mantissa
}

// Class is the IEEE-754 category of a value.
type Class uint8

const (
	Zero Class = iota
	Subnormal
	Normal
	Infinite
	NaN
)

func (c Class) String() string {
	switch c {
	case Zero:
		return "zero"
	case Subnormal:
		return "subnormal"
	case Normal:
		return "normal"
	case Infinite:
		return "infinite"
	case NaN:
		return "nan"
	default:
		return "invalid"
	}
}

// Masks of the binary32 and binary64 fields.
const (
	Binary32SignMask     = 0x80000000
	Binary32ExponentMask = 0x7F800000
	Binary32MantissaMask = 0x007FFFFF
	Binary32Bias         = 127

	Binary64SignMask     = 0x8000000000000000
	Binary64ExponentMask = 0x7FF0000000000000
	Binary64MantissaMask = 0x000FFFFFFFFFFFFF
	Binary64Bias         = 1023

	ExtendedBias  = 16383
	QuadrupleBias = 16383
)

// Decompose splits the storage bits of a value of layout l into its
// fields. For a double-double the second result describes the low
// component; for every other layout it is zero.
func Decompose(l config.FloatLayout, r Raw) (Fields, Fields) {
	switch l {
	case config.Binary32:
		v := uint32(r.Lo)
		return Fields{
			Sign:     uint8(v >> 31),
			Exponent: uint16(v>>23) & 0xFF,
			Mantissa: Mantissa{Lo: uint64(v & Binary32MantissaMask)},
		}, Fields{}
	case config.Binary64LE, config.Binary64BE:
		return fields64(r.Lo), Fields{}
	case config.Extended96LE, config.Extended96BE,
		config.Extended128LE, config.Extended128BE:
		return Fields{
			Sign:     uint8(r.Hi>>15) & 1,
			Exponent: uint16(r.Hi) & 0x7FFF,
			Mantissa: Mantissa{Lo: r.Lo},
		}, Fields{}
	case config.Quadruple128LE, config.Quadruple128BE:
		return Fields{
			Sign:     uint8(r.Hi >> 63),
			Exponent: uint16(r.Hi>>48) & 0x7FFF,
			Mantissa: Mantissa{Hi: r.Hi & 0x0000FFFFFFFFFFFF, Lo: r.Lo},
		}, Fields{}
	case config.DoubleDouble128LE, config.DoubleDouble128BE:
		return fields64(r.Hi), fields64(r.Lo)
	default:
		return Fields{}, Fields{}
	}
}

// Reconstruct is the inverse of Decompose. Bits of a field beyond its
// width are ignored.
func Reconstruct(l config.FloatLayout, f, low Fields) Raw {
	switch l {
	case config.Binary32:
		v := uint64(f.Sign&1)<<31 | uint64(f.Exponent&0xFF)<<23 |
			(f.Mantissa.Lo & Binary32MantissaMask)
		return Raw{Lo: v}
	case config.Binary64LE, config.Binary64BE:
		return Raw{Lo: bits64(f)}
	case config.Extended96LE, config.Extended96BE,
		config.Extended128LE, config.Extended128BE:
		return Raw{
			Hi: uint64(f.Sign&1)<<15 | uint64(f.Exponent&0x7FFF),
			Lo: f.Mantissa.Lo,
		}
	case config.Quadruple128LE, config.Quadruple128BE:
		return Raw{
			Hi: uint64(f.Sign&1)<<63 | uint64(f.Exponent&0x7FFF)<<48 |
				(f.Mantissa.Hi & 0x0000FFFFFFFFFFFF),
			Lo: f.Mantissa.Lo,
		}
	case config.DoubleDouble128LE, config.DoubleDouble128BE:
		return Raw{Hi: bits64(f), Lo: bits64(low)}
	default:
		return Raw{}
	}
}

func fields64(v uint64) Fields {
	return Fields{
		Sign:     uint8(v >> 63),
		Exponent: uint16(v>>52) & 0x7FF,
		Mantissa: Mantissa{Lo: v & Binary64MantissaMask},
	}
}

func bits64(f Fields) uint64 {
	return uint64(f.Sign&1)<<63 | uint64(f.Exponent&0x7FF)<<52 |
		(f.Mantissa.Lo & Binary64MantissaMask)
}

// Classify returns the category of a value of layout l given its
// fields. A double-double is classified by its high component. An x87
// value with a non-zero exponent and a clear integer bit (an unnormal)
// is reported as NaN, as the hardware rejects it.
func Classify(l config.FloatLayout, f Fields) Class {
	if l == config.Unknown {
		return NaN
	}
	top := uint16(1)<<uint(l.ExponentBits()) - 1
	frac := f.Mantissa
	if l.ExplicitIntegerBit() {
		if f.Exponent != 0 && f.Exponent != top && frac.Lo>>63 == 0 {
			return NaN
		}
		frac.Lo &= 0x7FFFFFFFFFFFFFFF
	}
	switch f.Exponent {
	case 0:
		if f.Mantissa.IsZero() {
			return Zero
		}
		return Subnormal
	case top:
		if frac.IsZero() {
			return Infinite
		}
		return NaN
	default:
		return Normal
	}
}

// Float64Raw and Float32Raw wrap Go floats.
func Float64Raw(x float64) Raw {
	return Raw{Lo: math.Float64bits(x)}
}

func Float32Raw(x float32) Raw {
	return Raw{Lo: uint64(math.Float32bits(x))}
}

// Classify64 and Classify32 classify Go floats from their bits.
func Classify64(x float64) Class {
	f, _ := Decompose(config.Binary64LE, Float64Raw(x))
	return Classify(config.Binary64LE, f)
}

func Classify32(x float32) Class {
	f, _ := Decompose(config.Binary32, Float32Raw(x))
	return Classify(config.Binary32, f)
}
