package softfloat

import (
	"github.com/ryanmaguire/libtmpl-sub005/ieee754"
)

// Format describes an IEEE-754 binary interchange-like format: the
// number of significant bits (leading bit included), the width of the
// exponent field, and whether the leading bit is stored (x87 extended)
// or implicit.
type Format struct {
	Name      string
	Precision uint
	ExpBits   uint
	Explicit  bool
}

// Supported formats. Values are carried in ieee754.Raw containers with
// the same bit placement as ieee754 uses: binary64 in Lo, x87 extended
// as sign/exponent in Hi and significand in Lo, binary128 in Hi:Lo.
var (
	Binary64   = &Format{Name: "binary64", Precision: 53, ExpBits: 11}
	Extended80 = &Format{Name: "extended80", Precision: 64, ExpBits: 15, Explicit: true}
	Binary128  = &Format{Name: "binary128", Precision: 113, ExpBits: 15}
)

// Number of stored mantissa bits.
func (f *Format) mantBits() uint {
	if f.Explicit {
		return f.Precision
	}
	return f.Precision - 1
}

func (f *Format) bias() int32 {
	return int32(1)<<(f.ExpBits-1) - 1
}

func (f *Format) expMax() int32 {
	return int32(1)<<f.ExpBits - 1
}

func (f *Format) signShift() uint {
	return f.mantBits() + f.ExpBits
}

// Decoded operand. For a finite non-zero value (cls == ieee754.Normal,
// subnormal inputs included), m has its top bit at position 127 and the
// value is m*2^(e-127), i.e. e is the exponent of the leading bit.
type unpacked struct {
	neg bool
	cls ieee754.Class
	e   int32
	m   u128
}

func (f *Format) unpack(x ieee754.Raw) unpacked {
	v := u128{x.Hi, x.Lo}
	mb := f.mantBits()
	var u unpacked
	u.neg = v.bit(f.signShift()) != 0
	ef := int32(v.shr(mb).lo & uint64(f.expMax()))
	mant := v.and(mask128(mb))
	frac := mant
	if f.Explicit {
		frac = mant.and(mask128(mb - 1))
	}
	switch {
	case ef == f.expMax():
		if frac.isZero() {
			u.cls = ieee754.Infinite
		} else {
			u.cls = ieee754.NaN
		}
		return u
	case ef == 0 && mant.isZero():
		u.cls = ieee754.Zero
		return u
	}

	// Finite non-zero: value is M*2^sc for an integer M.
	fb := int32(f.Precision - 1)
	var sc int32
	if ef == 0 {
		sc = 1 - f.bias() - fb
	} else {
		if !f.Explicit {
			mant = mant.or(u128{0, 1}.shl(uint(fb)))
		}
		sc = ef - f.bias() - fb
	}
	lz := mant.lz()
	u.cls = ieee754.Normal
	u.m = mant.shl(lz)
	u.e = sc + 127 - int32(lz)
	return u
}

func (f *Format) zero(neg bool) ieee754.Raw {
	var v u128
	if neg {
		v = u128{0, 1}.shl(f.signShift())
	}
	return ieee754.Raw{Hi: v.hi, Lo: v.lo}
}

func (f *Format) inf(neg bool) ieee754.Raw {
	v := u128{0, uint64(f.expMax())}.shl(f.mantBits())
	if f.Explicit {
		v = v.or(u128{0, 1}.shl(f.Precision - 1))
	}
	if neg {
		v = v.or(u128{0, 1}.shl(f.signShift()))
	}
	return ieee754.Raw{Hi: v.hi, Lo: v.lo}
}

// Quiet NaN with the top fraction bit set and a positive sign.
func (f *Format) nan() ieee754.Raw {
	v := f.inf(false)
	q := u128{0, 1}.shl(f.Precision - 2)
	v.Hi |= q.hi
	v.Lo |= q.lo
	return v
}

// Round and encode the value (-1)^neg * m * 2^(e-127), where m is non-zero
// with its top bit at position 127; the low bits of m may include a
// sticky bit. Rounding is roundTiesToEven. Exponent overflow yields an
// infinity, underflow yields a subnormal or a zero.
func (f *Format) roundPack(neg bool, e int32, m u128) ieee754.Raw {
	p := f.Precision
	be := e + f.bias()

	// sh is the number of bits to drop; subnormal results drop more.
	sh := int32(128 - p)
	if be < 1 {
		sh += 1 - be
		if sh > 200 {
			sh = 200
		}
	}
	q := m.shr(uint(sh))
	var rb, sticky bool
	if sh <= 128 {
		rb = m.bit(uint(sh-1)) != 0
		sticky = !m.and(mask128(uint(sh - 1))).isZero()
	} else {
		sticky = !m.isZero()
	}
	if rb && (sticky || q.lo&1 != 0) {
		q = q.add(u128{0, 1})
	}

	mb := f.mantBits()
	if be >= 1 {
		// Rounding may have carried into a new top bit.
		if !q.shr(p).isZero() {
			q = q.shr(1)
			be++
		}
		if be >= f.expMax() {
			return f.inf(neg)
		}
	} else {
		be = 0
		if !q.shr(p - 1).isZero() {
			be = 1
		}
	}
	if !f.Explicit {
		q = q.and(mask128(p - 1))
	}
	v := q.or(u128{0, uint64(be)}.shl(mb))
	if neg {
		v = v.or(u128{0, 1}.shl(f.signShift()))
	}
	return ieee754.Raw{Hi: v.hi, Lo: v.lo}
}

// Re-encode a decoded value without loss (it is exact in its own format).
func (f *Format) pack(u unpacked) ieee754.Raw {
	switch u.cls {
	case ieee754.Zero:
		return f.zero(u.neg)
	case ieee754.Infinite:
		return f.inf(u.neg)
	case ieee754.NaN:
		return f.nan()
	default:
		return f.roundPack(u.neg, u.e, u.m)
	}
}

// Classify returns the category of x; subnormals are reported as such.
func (f *Format) Classify(x ieee754.Raw) ieee754.Class {
	v := u128{x.Hi, x.Lo}
	ef := int32(v.shr(f.mantBits()).lo & uint64(f.expMax()))
	u := f.unpack(x)
	if u.cls == ieee754.Normal && ef == 0 {
		return ieee754.Subnormal
	}
	return u.cls
}
