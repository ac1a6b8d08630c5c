package softfloat

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/ieee754"
)

// All operations below are correctly rounded (roundTiesToEven) and
// follow IEEE-754 for zeros, infinities and subnormals. NaN results are
// the canonical quiet NaN of the format; payloads are not propagated.

// Addition.
func (f *Format) Add(x, y ieee754.Raw) ieee754.Raw {
	a := f.unpack(x)
	b := f.unpack(y)
	switch {
	case a.cls == ieee754.NaN || b.cls == ieee754.NaN:
		return f.nan()
	case a.cls == ieee754.Infinite:
		if b.cls == ieee754.Infinite && a.neg != b.neg {
			return f.nan()
		}
		return f.inf(a.neg)
	case b.cls == ieee754.Infinite:
		return f.inf(b.neg)
	case a.cls == ieee754.Zero:
		if b.cls == ieee754.Zero {
			// -0 only if both operands are -0.
			return f.zero(a.neg && b.neg)
		}
		return f.pack(b)
	case b.cls == ieee754.Zero:
		return f.pack(a)
	}

	// Get the operand with the larger absolute value in a; the result
	// then has the sign of a, except for an exact zero which is +0.
	if a.e < b.e || (a.e == b.e && a.m.less(b.m)) {
		a, b = b, a
	}

	// Mantissas have at most 113 significant bits, hence at least 15
	// trailing zeros: shifting them by 1 bit is exact and leaves room
	// for the carry. The smaller operand is then aligned, with a sticky
	// bit.
	d := uint(a.e - b.e)
	if d > 200 {
		d = 200
	}
	xu := a.m.shr(1)
	yu := b.m.shr(1).shrSticky(d)
	var zu u128
	if a.neg == b.neg {
		zu = xu.add(yu)
	} else {
		zu = xu.sub(yu)
		if zu.isZero() {
			return f.zero(false)
		}
	}

	// Normalize to [2^127, 2^128-1]. A large left shift only happens
	// with d <= 1, in which case no bit was lost during the alignment.
	n := zu.lz()
	return f.roundPack(a.neg, a.e+1-int32(n), zu.shl(n))
}

// Subtraction.
func (f *Format) Sub(x, y ieee754.Raw) ieee754.Raw {
	return f.Add(x, f.Neg(y))
}

// Negation (flips the sign bit, NaN included).
func (f *Format) Neg(x ieee754.Raw) ieee754.Raw {
	s := u128{0, 1}.shl(f.signShift())
	return ieee754.Raw{Hi: x.Hi ^ s.hi, Lo: x.Lo ^ s.lo}
}

// Absolute value (clears the sign bit).
func (f *Format) Abs(x ieee754.Raw) ieee754.Raw {
	s := u128{0, 1}.shl(f.signShift())
	return ieee754.Raw{Hi: x.Hi &^ s.hi, Lo: x.Lo &^ s.lo}
}

// Signbit reports whether the sign bit of x is set.
func (f *Format) Signbit(x ieee754.Raw) bool {
	return u128{x.Hi, x.Lo}.bit(f.signShift()) != 0
}

// Multiplication.
func (f *Format) Mul(x, y ieee754.Raw) ieee754.Raw {
	a := f.unpack(x)
	b := f.unpack(y)
	neg := a.neg != b.neg
	switch {
	case a.cls == ieee754.NaN || b.cls == ieee754.NaN:
		return f.nan()
	case a.cls == ieee754.Infinite || b.cls == ieee754.Infinite:
		if a.cls == ieee754.Zero || b.cls == ieee754.Zero {
			return f.nan()
		}
		return f.inf(neg)
	case a.cls == ieee754.Zero || b.cls == ieee754.Zero:
		return f.zero(neg)
	}

	// Product is in [2^254, 2^256-1]. Keep the top 128 bits, with a
	// sticky bit for the rest.
	hi, lo := mul128(a.m, b.m)
	e := a.e + b.e
	if hi.hi>>63 == 0 {
		hi = hi.shl(1).or(lo.shr(127))
		lo = lo.shl(1)
	} else {
		e++
	}
	if !lo.isZero() {
		hi.lo |= 1
	}
	return f.roundPack(neg, e, hi)
}

// Division.
func (f *Format) Div(x, y ieee754.Raw) ieee754.Raw {
	a := f.unpack(x)
	b := f.unpack(y)
	neg := a.neg != b.neg
	switch {
	case a.cls == ieee754.NaN || b.cls == ieee754.NaN:
		return f.nan()
	case a.cls == ieee754.Infinite:
		if b.cls == ieee754.Infinite {
			return f.nan()
		}
		return f.inf(neg)
	case b.cls == ieee754.Infinite:
		return f.zero(neg)
	case b.cls == ieee754.Zero:
		if a.cls == ieee754.Zero {
			return f.nan()
		}
		return f.inf(neg)
	case a.cls == ieee754.Zero:
		return f.zero(neg)
	}

	// Bit-by-bit division. Both operands are scaled down to [2^125,2^126)
	// (exact, thanks to their trailing zeros) so that the running
	// remainder, which stays below twice the divisor, fits in 128 bits.
	// We produce Precision+3 quotient bits, which is enough for a guard
	// bit and a round bit whatever the leading quotient bit is.
	xu := a.m.shr(2)
	yu := b.m.shr(2)
	n := f.Precision + 3
	var q u128
	for i := uint(0); i < n; i++ {
		q = q.shl(1)
		if !xu.less(yu) {
			xu = xu.sub(yu)
			q.lo |= 1
		}
		xu = xu.shl(1)
	}

	// q = floor((a.m/b.m)*2^(n-1)); the remainder provides the sticky bit.
	lz := q.lz()
	top := int32(127 - lz)
	q = q.shl(lz)
	if !xu.isZero() {
		q.lo |= 1
	}
	return f.roundPack(neg, a.e-b.e+top-int32(n-1), q)
}

// Square root. The square root of -0 is -0; other negative operands
// yield NaN.
func (f *Format) Sqrt(x ieee754.Raw) ieee754.Raw {
	a := f.unpack(x)
	switch {
	case a.cls == ieee754.NaN:
		return f.nan()
	case a.cls == ieee754.Zero:
		return f.zero(a.neg)
	case a.neg:
		return f.nan()
	case a.cls == ieee754.Infinite:
		return f.inf(false)
	}

	// Get the operand as a fixed-point value in [1,4) with 120 fractional
	// bits, and an even exponent.
	e := a.e
	var xu u128
	if e&1 != 0 {
		xu = a.m.shr(6)
		e--
	} else {
		xu = a.m.shr(7)
	}
	e >>= 1

	// We compute the square root bit by bit, as many bits as the
	// precision plus a guard bit and a round bit. The remainder stays
	// below 2^123.
	var q, s u128
	r := u128{0, 1}.shl(120)
	for i := uint(0); i < f.Precision+2; i++ {
		t := s.add(r)
		if !xu.less(t) {
			s = s.add(r.shl(1))
			xu = xu.sub(t)
			q = q.add(r)
		}
		xu = xu.shl(1)
		r = r.shr(1)
	}

	// q is in [2^120, 2^121); realign it and add the sticky bit.
	q = q.shl(7)
	if !xu.isZero() {
		q.lo |= 1
	}
	return f.roundPack(false, e, q)
}

// Ldexp returns x*2^n, correctly rounded.
func (f *Format) Ldexp(x ieee754.Raw, n int) ieee754.Raw {
	a := f.unpack(x)
	if a.cls != ieee754.Normal {
		return f.pack(a)
	}
	if n > 1<<20 {
		n = 1 << 20
	} else if n < -(1 << 20) {
		n = -(1 << 20)
	}
	return f.roundPack(a.neg, a.e+int32(n), a.m)
}

// Ilogb returns the exponent of the leading bit of x (subnormals
// included), and false for zeros, infinities and NaNs.
func (f *Format) Ilogb(x ieee754.Raw) (int, bool) {
	a := f.unpack(x)
	if a.cls != ieee754.Normal {
		return 0, false
	}
	return int(a.e), true
}

// Compare returns -1, 0 or +1 as x is below, equal to or above y, and
// false if either operand is NaN. Both zeros compare equal.
func (f *Format) Compare(x, y ieee754.Raw) (int, bool) {
	a := f.unpack(x)
	b := f.unpack(y)
	if a.cls == ieee754.NaN || b.cls == ieee754.NaN {
		return 0, false
	}
	if a.cls == ieee754.Zero && b.cls == ieee754.Zero {
		return 0, true
	}
	sa, sb := sgn(a), sgn(b)
	if sa != sb {
		if sa < sb {
			return -1, true
		}
		return 1, true
	}
	c := cmpMag(a, b)
	if sa < 0 {
		c = -c
	}
	return c, true
}

func sgn(u unpacked) int {
	switch {
	case u.cls == ieee754.Zero:
		return 0
	case u.neg:
		return -1
	default:
		return 1
	}
}

// Compare magnitudes of two non-NaN, non-zero operands.
func cmpMag(a, b unpacked) int {
	ai := a.cls == ieee754.Infinite
	bi := b.cls == ieee754.Infinite
	switch {
	case ai && bi:
		return 0
	case ai:
		return 1
	case bi:
		return -1
	case a.e != b.e:
		if a.e < b.e {
			return -1
		}
		return 1
	case a.m.less(b.m):
		return -1
	case b.m.less(a.m):
		return 1
	default:
		return 0
	}
}

// Less reports whether x < y; it is false if either is NaN.
func (f *Format) Less(x, y ieee754.Raw) bool {
	c, ok := f.Compare(x, y)
	return ok && c < 0
}

// Equal reports whether x == y; it is false if either is NaN.
func (f *Format) Equal(x, y ieee754.Raw) bool {
	c, ok := f.Compare(x, y)
	return ok && c == 0
}

// Convert rounds x, in format src, to format dst.
func Convert(dst, src *Format, x ieee754.Raw) ieee754.Raw {
	a := src.unpack(x)
	return dst.pack(a)
}

// FromFloat64 converts a float64 exactly (every target format is wider).
func (f *Format) FromFloat64(x float64) ieee754.Raw {
	return Convert(f, Binary64, ieee754.Float64Raw(x))
}

// Float64 rounds x to the nearest float64.
func (f *Format) Float64(x ieee754.Raw) float64 {
	return math.Float64frombits(Convert(Binary64, f, x).Lo)
}

// FromInt64 converts an integer, rounding if the format is narrower.
func (f *Format) FromInt64(i int64) ieee754.Raw {
	if i == 0 {
		return f.zero(false)
	}
	neg := i < 0
	u := uint64(i)
	if neg {
		u = -u
	}
	m := u128{0, u}
	n := m.lz()
	return f.roundPack(neg, 127-int32(n), m.shl(n))
}

// Int64 truncates x toward zero. NaN gives 0; out-of-range values
// saturate.
func (f *Format) Int64(x ieee754.Raw) int64 {
	a := f.unpack(x)
	switch {
	case a.cls == ieee754.NaN || a.cls == ieee754.Zero:
		return 0
	case a.cls == ieee754.Infinite || a.e > 62:
		if a.neg {
			return math.MinInt64
		}
		return math.MaxInt64
	case a.e < 0:
		return 0
	}
	v := int64(a.m.shr(uint(127 - a.e)).lo)
	if a.neg {
		v = -v
	}
	return v
}
