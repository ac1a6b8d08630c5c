package ieee754

import (
	"math"
	"testing"

	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/prng"
)

var allLayouts = []config.FloatLayout{
	config.Binary32,
	config.Binary64LE, config.Binary64BE,
	config.Extended96LE, config.Extended96BE,
	config.Extended128LE, config.Extended128BE,
	config.Quadruple128LE, config.Quadruple128BE,
	config.DoubleDouble128LE, config.DoubleDouble128BE,
}

// Keep only the bits a layout stores.
func maskRaw(l config.FloatLayout, r Raw) Raw {
	switch l {
	case config.Binary32:
		return Raw{Lo: r.Lo & 0xFFFFFFFF}
	case config.Binary64LE, config.Binary64BE:
		return Raw{Lo: r.Lo}
	case config.Extended96LE, config.Extended96BE,
		config.Extended128LE, config.Extended128BE:
		return Raw{Hi: r.Hi & 0xFFFF, Lo: r.Lo}
	default:
		return r
	}
}

func TestRoundTrip(t *testing.T) {
	r := prng.NewString("fields")
	for _, l := range allLayouts {
		for i := 0; i < 4096; i++ {
			raw := maskRaw(l, Raw{Hi: r.Uint64(), Lo: r.Uint64()})
			f, low := Decompose(l, raw)
			if back := Reconstruct(l, f, low); back != raw {
				t.Fatalf("ERR: %s: %016X:%016X -> %016X:%016X",
					l, raw.Hi, raw.Lo, back.Hi, back.Lo)
			}

			var buf [16]byte
			if err := PutRaw(buf[:], l, raw); err != nil {
				t.Fatalf("ERR: %s: %v", l, err)
			}
			dec, err := ReadRaw(buf[:], l)
			if err != nil {
				t.Fatalf("ERR: %s: %v", l, err)
			}
			if dec != raw {
				t.Fatalf("ERR: %s: codec %016X:%016X -> %016X:%016X",
					l, raw.Hi, raw.Lo, dec.Hi, dec.Lo)
			}
		}
	}
}

func TestFloat64Fields(t *testing.T) {
	for _, x := range []float64{1, -1, 0.5, 3.75, math.MaxFloat64,
		math.SmallestNonzeroFloat64, math.Inf(-1), math.NaN(), -0.0} {
		f, _ := Decompose(config.Binary64LE, Float64Raw(x))
		bits := math.Float64bits(x)
		if uint64(f.Sign) != bits>>63 ||
			uint64(f.Exponent) != (bits>>52)&0x7FF ||
			f.Mantissa.Lo != bits&Binary64MantissaMask {
			t.Fatalf("ERR: fields of %v: %+v", x, f)
		}
	}
	f, _ := Decompose(config.Binary64BE, Float64Raw(-3))
	if f.Sign != 1 || f.Exponent != 1024 || f.Mantissa.Lo != 1<<51 {
		t.Fatalf("ERR: fields of -3: %+v", f)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		x    float64
		want Class
		f32  bool
	}{
		{0, Zero, true},
		{math.Copysign(0, -1), Zero, true},
		{math.SmallestNonzeroFloat64, Subnormal, false},
		{-0x1p-1023, Subnormal, false},
		{0x1p-1022, Normal, false},
		{-2.5, Normal, true},
		{math.Inf(1), Infinite, true},
		{math.Inf(-1), Infinite, true},
		{math.NaN(), NaN, true},
	}
	for _, tt := range tests {
		if got := Classify64(tt.x); got != tt.want {
			t.Fatalf("ERR: Classify64(%v) = %v, want %v", tt.x, got, tt.want)
		}
		if got := Classify32(float32(tt.x)); tt.f32 && got != tt.want {
			t.Fatalf("ERR: Classify32(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got := Classify32(math.SmallestNonzeroFloat32); got != Subnormal {
		t.Fatalf("ERR: Classify32(min) = %v", got)
	}

	ext := []struct {
		x    Extended
		want Class
	}{
		{MakeExtended(0, 0, 0), Zero},
		{MakeExtended(1, 0, 0), Zero},
		{MakeExtended(0, 0, 1), Subnormal},
		{MakeExtended(0, 16383, extIntBit), Normal},
		{MakeExtended(0, 16383, 1), NaN},
		{MakeExtended(1, 0x7FFF, extIntBit), Infinite},
		{MakeExtended(0, 0x7FFF, extIntBit|1), NaN},
	}
	for _, tt := range ext {
		if got := tt.x.Class(); got != tt.want {
			t.Fatalf("ERR: class of %+v = %v, want %v", tt.x, got, tt.want)
		}
	}

	quad := []struct {
		x    Quadruple
		want Class
	}{
		{MakeQuadruple(1, 0, 0, 0), Zero},
		{MakeQuadruple(0, 0, 0, 1), Subnormal},
		{MakeQuadruple(0, 0, 1, 0), Subnormal},
		{MakeQuadruple(0, 16383, 0, 0), Normal},
		{MakeQuadruple(1, 0x7FFF, 0, 0), Infinite},
		{MakeQuadruple(0, 0x7FFF, 0, 1), NaN},
	}
	for _, tt := range quad {
		if got := tt.x.Class(); got != tt.want {
			t.Fatalf("ERR: class of %+v = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestAbsClearsSignOnly(t *testing.T) {
	r := prng.NewString("abs")
	for i := 0; i < 4096; i++ {
		hi, lo := r.Uint64(), r.Uint64()

		e := Extended{SignExp: uint16(hi), Mant: lo}
		a := e.Abs()
		if a.Signbit() || a.Mant != e.Mant || a.Exponent() != e.Exponent() {
			t.Fatalf("ERR: Extended.Abs(%+v) = %+v", e, a)
		}
		if a.Abs() != a || e.Neg().Neg() != e {
			t.Fatalf("ERR: Extended sign ops on %+v", e)
		}

		q := Quadruple{Hi: hi, Lo: lo}
		b := q.Abs()
		if b.Signbit() || b.Hi != hi&^quadSign || b.Lo != lo {
			t.Fatalf("ERR: Quadruple.Abs(%+v) = %+v", q, b)
		}
		if b.Abs() != b || q.Neg().Neg() != q {
			t.Fatalf("ERR: Quadruple sign ops on %+v", q)
		}
	}

	// NaN payloads survive.
	nan := MakeExtended(1, 0x7FFF, extIntBit|0x1234)
	if got := nan.Abs(); got.Mant != nan.Mant || !got.IsNaN() || got.Signbit() {
		t.Fatalf("ERR: Abs of NaN: %+v", got)
	}
}

func TestDoubleDoubleAbs(t *testing.T) {
	tests := []struct {
		x, want DoubleDouble
	}{
		{DoubleDouble{1, 0x1p-60}, DoubleDouble{1, 0x1p-60}},
		{DoubleDouble{1, -0x1p-60}, DoubleDouble{1, -0x1p-60}},
		{DoubleDouble{-1, 0x1p-60}, DoubleDouble{1, -0x1p-60}},
		{DoubleDouble{-1, -0x1p-60}, DoubleDouble{1, 0x1p-60}},
		{DoubleDouble{-3, 0}, DoubleDouble{3, math.Copysign(0, -1)}},
	}
	for _, tt := range tests {
		got := tt.x.Abs()
		if got.Raw() != tt.want.Raw() {
			t.Fatalf("ERR: Abs(%v) = %v, want %v", tt.x, got, tt.want)
		}
		if got.Abs() != got {
			t.Fatalf("ERR: Abs not idempotent on %v", tt.x)
		}
		// |hi + lo| is exact for these inputs.
		if got.Hi+got.Lo != math.Abs(tt.x.Hi+tt.x.Lo) {
			t.Fatalf("ERR: Abs(%v) changed the magnitude", tt.x)
		}
	}
	if !(DoubleDouble{math.Inf(-1), 0}).IsInf() ||
		!(DoubleDouble{math.NaN(), 0}).IsNaN() ||
		!(DoubleDouble{0, 0}).IsZero() ||
		!(DoubleDouble{0x1p-1030, 0}).IsSubnormal() {
		t.Fatalf("ERR: double-double classification")
	}
	hi, lo := DoubleDouble{-2, 0x1p-70}.Fields()
	if hi.Sign != 1 || hi.Exponent != 1024 || lo.Sign != 0 || lo.Exponent != 1023-70 {
		t.Fatalf("ERR: double-double fields %+v %+v", hi, lo)
	}
}
