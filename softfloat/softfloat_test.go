package softfloat

import (
	"math"
	"math/big"
	"testing"

	"github.com/ryanmaguire/libtmpl-sub005/ieee754"
	"github.com/ryanmaguire/libtmpl-sub005/prng"
)

func raw64(x float64) ieee754.Raw {
	return ieee754.Float64Raw(x)
}

func eqf(t *testing.T, x ieee754.Raw, rx float64) {
	t.Helper()
	v := x.Lo
	rv := math.Float64bits(rx)
	if math.IsNaN(rx) && Binary64.Classify(x) == ieee754.NaN {
		return
	}
	if v != rv || x.Hi != 0 {
		t.Fatalf("ERR: 0x%016X (%.20g) vs 0x%016X (%.20g)\n",
			v, math.Float64frombits(v), rv, rx)
	}
}

func randFP(r *prng.SHAKE256x4, spread uint64) float64 {
	m := r.Uint64()
	e := (((m >> 52) & 0x7FF) % (2*spread + 1)) + 1023 - spread
	m = (m & 0x800FFFFFFFFFFFFF) | (e << 52)
	return math.Float64frombits(m)
}

func TestBinary64Native(t *testing.T) {
	// The emulated code must agree bit for bit with the hardware, which
	// adheres to strict IEEE 754 as long as every intermediate is forced
	// to float64.
	f := Binary64
	z := 0.0
	nz := math.Copysign(0, -1)
	eqf(t, f.Add(raw64(z), raw64(z)), float64(z+z))
	eqf(t, f.Add(raw64(z), raw64(nz)), float64(z+nz))
	eqf(t, f.Add(raw64(nz), raw64(z)), float64(nz+z))
	eqf(t, f.Add(raw64(nz), raw64(nz)), float64(nz+nz))
	eqf(t, f.Sub(raw64(z), raw64(z)), float64(z-z))
	eqf(t, f.Sub(raw64(z), raw64(nz)), float64(z-nz))
	eqf(t, f.Sub(raw64(nz), raw64(z)), float64(nz-z))
	eqf(t, f.Sub(raw64(nz), raw64(nz)), float64(nz-nz))
	eqf(t, f.Sqrt(raw64(nz)), nz)
	eqf(t, f.Sqrt(raw64(-1)), math.NaN())
	eqf(t, f.Div(raw64(1), raw64(z)), math.Inf(1))
	eqf(t, f.Div(raw64(-1), raw64(z)), math.Inf(-1))
	eqf(t, f.Div(raw64(z), raw64(z)), math.NaN())
	eqf(t, f.Mul(raw64(math.Inf(1)), raw64(z)), math.NaN())
	eqf(t, f.Add(raw64(math.Inf(1)), raw64(math.Inf(-1))), math.NaN())
	eqf(t, f.Mul(raw64(math.MaxFloat64), raw64(2)), math.Inf(1))
	eqf(t, f.Mul(raw64(math.SmallestNonzeroFloat64), raw64(0.5)), z)
	eqf(t, f.Mul(raw64(math.SmallestNonzeroFloat64), raw64(-0.75)),
		-math.SmallestNonzeroFloat64)

	for e := -60; e <= +60; e++ {
		for i := -5; i <= +5; i++ {
			ax := float64(9007199254740992.0 + float64(i))
			a := f.FromInt64((int64(1) << 53) + int64(i))
			eqf(t, a, ax)
			for j := -5; j <= 5; j++ {
				bx := math.Ldexp(float64(9007199254740992.0+float64(j)), e)
				b := raw64(bx)
				eqf(t, f.Ldexp(f.FromInt64((int64(1)<<53)+int64(j)), e), bx)
				eqf(t, f.Add(a, b), float64(ax+bx))
				eqf(t, f.Add(f.Neg(a), b), float64(bx-ax))
				eqf(t, f.Add(f.Neg(a), f.Neg(b)), float64(-bx-ax))
				eqf(t, f.Add(a, f.Neg(b)), float64(ax-bx))
			}
		}
	}

	r := prng.NewString("fpemu")
	for ctr := 1; ctr <= 65536; ctr++ {
		j := int64(r.Uint64()) >> (ctr & 63)
		eqf(t, f.FromInt64(j), float64(j))
		sc := (int(r.Uint16()) & 0xFF) - 128
		eqf(t, f.Ldexp(f.FromInt64(j), sc), math.Ldexp(float64(j), sc))
		jx := math.Ldexp(float64(j), -20)
		if got := f.Int64(raw64(jx)); got != int64(math.Trunc(jx)) {
			t.Fatalf("ERR: Int64(%v) = %d", jx, got)
		}

		// Exponent spread of 80 for most rounds, and the whole range
		// (subnormals and overflows included) for some of them.
		spread := uint64(80)
		if ctr&7 == 0 {
			spread = 1022
		}
		ax := randFP(r, spread)
		bx := randFP(r, spread)
		if ctr&15 == 1 {
			bx = math.Float64frombits(r.Uint64() & 0x800FFFFFFFFFFFFF)
		}
		a := raw64(ax)
		b := raw64(bx)

		eqf(t, f.Add(a, b), float64(ax+bx))
		eqf(t, f.Add(b, a), float64(bx+ax))
		eqf(t, f.Add(a, raw64(z)), float64(ax+z))
		eqf(t, f.Add(raw64(z), a), float64(z+ax))
		eqf(t, f.Add(a, f.Neg(a)), float64(ax+float64(-ax)))

		eqf(t, f.Sub(a, b), float64(ax-bx))
		eqf(t, f.Sub(b, a), float64(bx-ax))
		eqf(t, f.Sub(a, a), float64(ax-ax))

		eqf(t, f.Neg(a), float64(-ax))
		eqf(t, f.Abs(a), math.Abs(ax))

		eqf(t, f.Mul(a, b), float64(ax*bx))
		eqf(t, f.Mul(b, a), float64(bx*ax))
		eqf(t, f.Mul(a, raw64(z)), float64(ax*z))

		eqf(t, f.Div(a, b), float64(ax/bx))
		eqf(t, f.Div(b, a), float64(bx/ax))
		eqf(t, f.Sqrt(f.Abs(a)), math.Sqrt(math.Abs(ax)))
		eqf(t, f.Sqrt(f.Abs(b)), math.Sqrt(math.Abs(bx)))

		if f.Less(a, b) != (ax < bx) || f.Equal(a, b) != (ax == bx) {
			t.Fatalf("ERR: compare %v %v", ax, bx)
		}
	}
}

// Exact value of a finite operand.
func toBig(f *Format, x ieee754.Raw) *big.Float {
	u := f.unpack(x)
	z := new(big.Float).SetPrec(256)
	if u.cls == ieee754.Zero {
		return z
	}
	m := new(big.Int).SetUint64(u.m.hi)
	m.Lsh(m, 64)
	m.Or(m, new(big.Int).SetUint64(u.m.lo))
	z.SetInt(m)
	z.SetMantExp(z, int(u.e)-127)
	if u.neg {
		z.Neg(z)
	}
	return z
}

// Random finite value with its exponent in [-spread, +spread].
func randWide(f *Format, r *prng.SHAKE256x4, spread int) ieee754.Raw {
	m := u128{r.Uint64() | (1 << 63), r.Uint64()}
	e := int32(r.Intn(2*spread+1) - spread)
	return f.roundPack(r.Uint8()&1 == 1, e, m)
}

func TestWideFormats(t *testing.T) {
	for _, f := range []*Format{Extended80, Binary128} {
		r := prng.NewString("wide-" + f.Name)
		for ctr := 0; ctr < 20000; ctr++ {
			a := randWide(f, r, 70)
			b := randWide(f, r, 70)
			ab, bb := toBig(f, a), toBig(f, b)

			want := func() *big.Float {
				return new(big.Float).SetPrec(f.Precision).SetMode(big.ToNearestEven)
			}
			check := func(op string, got ieee754.Raw, w *big.Float) {
				if toBig(f, got).Cmp(w) != 0 {
					t.Fatalf("ERR: %s %s(%v, %v) = %v, want %v", f.Name, op,
						ab.Text('p', 0), bb.Text('p', 0),
						toBig(f, got).Text('p', 0), w.Text('p', 0))
				}
			}
			check("add", f.Add(a, b), want().Add(ab, bb))
			check("sub", f.Sub(a, b), want().Sub(ab, bb))
			check("mul", f.Mul(a, b), want().Mul(ab, bb))
			check("div", f.Div(a, b), want().Quo(ab, bb))

			// The square root is checked through the rounding interval:
			// (s - ulp/2)^2 <= x <= (s + ulp/2)^2.
			x := f.Abs(a)
			s := f.Sqrt(x)
			e, _ := f.Ilogb(s)
			half := new(big.Float).SetPrec(2048).SetMantExp(big.NewFloat(1), e-int(f.Precision))
			sb := new(big.Float).SetPrec(2048).Set(toBig(f, s))
			lo := new(big.Float).SetPrec(2048).Sub(sb, half)
			hi := new(big.Float).SetPrec(2048).Add(sb, half)
			lo.Mul(lo, lo)
			hi.Mul(hi, hi)
			xb := toBig(f, x)
			if lo.Cmp(xb) > 0 || hi.Cmp(xb) < 0 {
				t.Fatalf("ERR: %s sqrt(%v) = %v", f.Name, xb.Text('p', 0),
					sb.Text('p', 0))
			}

			if c, ok := f.Compare(a, b); !ok || c != ab.Cmp(bb) {
				t.Fatalf("ERR: %s compare(%v, %v) = %d", f.Name,
					ab.Text('p', 0), bb.Text('p', 0), c)
			}
		}
	}
}

func TestConversions(t *testing.T) {
	one80 := Extended80.FromFloat64(1)
	if one80 != (ieee754.Raw{Hi: 0x3FFF, Lo: 0x8000000000000000}) {
		t.Fatalf("ERR: extended 1.0 = %+v", one80)
	}
	one128 := Binary128.FromFloat64(1)
	if one128 != (ieee754.Raw{Hi: 0x3FFF000000000000}) {
		t.Fatalf("ERR: binary128 1.0 = %+v", one128)
	}
	if got := Extended80.FromFloat64(-2.5); got != (ieee754.Raw{Hi: 0xC000, Lo: 0xA000000000000000}) {
		t.Fatalf("ERR: extended -2.5 = %+v", got)
	}

	r := prng.NewString("convert")
	for i := 0; i < 20000; i++ {
		x := math.Float64frombits(r.Uint64())
		for _, f := range []*Format{Binary64, Extended80, Binary128} {
			y := f.Float64(f.FromFloat64(x))
			if math.Float64bits(y) != math.Float64bits(x) && !math.IsNaN(x) {
				t.Fatalf("ERR: %s round trip of %v gave %v", f.Name, x, y)
			}
		}
	}

	// Narrowing rounds: 1 + 2^-60 is exact in extended and rounds to 1
	// in binary64.
	v := Extended80.Add(one80, Extended80.FromFloat64(0x1p-60))
	if Extended80.Equal(v, one80) || Extended80.Float64(v) != 1 {
		t.Fatalf("ERR: 1 + 2^-60 in extended")
	}
	third := Binary128.Div(one128, Binary128.FromInt64(3))
	if got := Binary128.Float64(third); got != 1.0/3 {
		t.Fatalf("ERR: binary128 1/3 = %v", got)
	}
	if got := Convert(Extended80, Binary128, third); Extended80.Float64(got) != 1.0/3 {
		t.Fatalf("ERR: narrowing 1/3 = %+v", got)
	}
}

func TestWideEdges(t *testing.T) {
	f := Extended80
	one := f.FromFloat64(1)

	// Smallest subnormal is 2^-16445.
	if got := f.Ldexp(one, -16445); got != (ieee754.Raw{Lo: 1}) {
		t.Fatalf("ERR: extended min subnormal = %+v", got)
	}
	if got := f.Ldexp(one, -16446); got != (ieee754.Raw{}) {
		t.Fatalf("ERR: extended half min subnormal = %+v", got)
	}
	if f.Classify(ieee754.Raw{Lo: 1}) != ieee754.Subnormal {
		t.Fatalf("ERR: extended subnormal class")
	}
	big80 := f.Ldexp(one, 16383)
	if f.Classify(f.Mul(big80, f.FromFloat64(2))) != ieee754.Infinite {
		t.Fatalf("ERR: extended overflow")
	}
	if got := f.Mul(big80, f.FromFloat64(2)); got != (ieee754.Raw{Hi: 0x7FFF, Lo: 0x8000000000000000}) {
		t.Fatalf("ERR: extended infinity = %+v", got)
	}

	q := Binary128
	qone := q.FromFloat64(1)
	if got := q.Ldexp(qone, -16494); got != (ieee754.Raw{Lo: 1}) {
		t.Fatalf("ERR: binary128 min subnormal = %+v", got)
	}
	// Subnormal times a power of two goes back to normal exactly.
	s := q.Ldexp(qone, -16400)
	if got := q.Ldexp(s, 16400); got != qone {
		t.Fatalf("ERR: binary128 subnormal scaling = %+v", got)
	}
	if !q.Less(q.Neg(qone), q.FromFloat64(0)) || q.Less(q.nan(), qone) {
		t.Fatalf("ERR: binary128 ordering")
	}
	if q.Int64(q.FromFloat64(-7.9)) != -7 || q.Int64(q.FromFloat64(1e30)) != math.MaxInt64 {
		t.Fatalf("ERR: binary128 Int64")
	}
	if !q.Signbit(q.Sqrt(q.FromFloat64(math.Copysign(0, -1)))) {
		t.Fatalf("ERR: sqrt(-0)")
	}
}
