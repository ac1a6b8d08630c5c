package config

import (
	"errors"
	"fmt"
)

// FloatLayout names one storage layout for a floating-point value. The
// set is closed: every layout the numeric packages know how to take
// apart is listed here, and Unknown marks a platform for which only the
// portable (arithmetic-only) code paths are usable.
type FloatLayout uint8

const (
	Unknown FloatLayout = iota
	Binary32
	Binary64LE
	Binary64BE
	Extended96LE
	Extended96BE
	Extended128LE
	Extended128BE
	Quadruple128LE
	Quadruple128BE
	DoubleDouble128LE
	DoubleDouble128BE
)

var layoutNames = [...]string{
	Unknown:           "unknown",
	Binary32:          "binary32",
	Binary64LE:        "binary64-le",
	Binary64BE:        "binary64-be",
	Extended96LE:      "extended80-96-le",
	Extended96BE:      "extended80-96-be",
	Extended128LE:     "extended80-128-le",
	Extended128BE:     "extended80-128-be",
	Quadruple128LE:    "quadruple128-le",
	Quadruple128BE:    "quadruple128-be",
	DoubleDouble128LE: "doubledouble128-le",
	DoubleDouble128BE: "doubledouble128-be",
}

// ErrUnknownLayout is returned when parsing a layout name fails.
var ErrUnknownLayout = errors.New("unknown floating-point layout")

func (l FloatLayout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("FloatLayout(%d)", uint8(l))
}

// Valid reports whether l is one of the enumerated layouts other than
// Unknown.
func (l FloatLayout) Valid() bool {
	return l > Unknown && l <= DoubleDouble128BE
}

// ParseLayout is the inverse of String.
func ParseLayout(s string) (FloatLayout, error) {
	for i, name := range layoutNames {
		if name == s {
			return FloatLayout(i), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

func (l FloatLayout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *FloatLayout) UnmarshalText(b []byte) error {
	v, err := ParseLayout(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Width returns the storage size in bytes (padding included).
func (l FloatLayout) Width() int {
	switch l {
	case Binary32:
		return 4
	case Binary64LE, Binary64BE:
		return 8
	case Extended96LE, Extended96BE:
		return 12
	case Extended128LE, Extended128BE, Quadruple128LE, Quadruple128BE,
		DoubleDouble128LE, DoubleDouble128BE:
		return 16
	default:
		return 0
	}
}

// BigEndian reports whether the most significant byte is stored first.
// Binary32 is reported as little-endian; its byte order is the host's.
func (l FloatLayout) BigEndian() bool {
	switch l {
	case Binary64BE, Extended96BE, Extended128BE, Quadruple128BE,
		DoubleDouble128BE:
		return true
	default:
		return false
	}
}

// ExponentBits returns the width of the biased exponent field. For
// double-double this is the field of each binary64 component.
func (l FloatLayout) ExponentBits() int {
	switch l {
	case Binary32:
		return 8
	case Binary64LE, Binary64BE, DoubleDouble128LE, DoubleDouble128BE:
		return 11
	case Unknown:
		return 0
	default:
		return 15
	}
}

// Bias returns the exponent bias (127, 1023 or 16383).
func (l FloatLayout) Bias() int {
	e := l.ExponentBits()
	if e == 0 {
		return 0
	}
	return (1 << (e - 1)) - 1
}

// MantissaBits returns the number of stored mantissa bits. The x87
// extended formats store their integer bit, hence 64; double-double
// reports the mantissa of one component.
func (l FloatLayout) MantissaBits() int {
	switch l {
	case Binary32:
		return 23
	case Binary64LE, Binary64BE, DoubleDouble128LE, DoubleDouble128BE:
		return 52
	case Extended96LE, Extended96BE, Extended128LE, Extended128BE:
		return 64
	case Quadruple128LE, Quadruple128BE:
		return 112
	default:
		return 0
	}
}

// Precision returns the number of significant bits of a normal value,
// leading bit included. For double-double this is the nominal 106 bits
// of the unevaluated sum.
func (l FloatLayout) Precision() int {
	switch l {
	case Binary32:
		return 24
	case Binary64LE, Binary64BE:
		return 53
	case Extended96LE, Extended96BE, Extended128LE, Extended128BE:
		return 64
	case Quadruple128LE, Quadruple128BE:
		return 113
	case DoubleDouble128LE, DoubleDouble128BE:
		return 106
	default:
		return 0
	}
}

// ExplicitIntegerBit reports whether the leading mantissa bit is stored.
func (l FloatLayout) ExplicitIntegerBit() bool {
	return l.MantissaBits() == 64
}

// Compound reports whether values are unevaluated sums of two binary64
// values.
func (l FloatLayout) Compound() bool {
	return l == DoubleDouble128LE || l == DoubleDouble128BE
}
