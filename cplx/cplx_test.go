package cplx

import (
	"math"
	"testing"

	"github.com/ryanmaguire/libtmpl-sub005/mathl"
	"github.com/ryanmaguire/libtmpl-sub005/prng"
)

func TestAbsNearOverflow(t *testing.T) {
	big := 0.7 * math.MaxFloat64
	a := Abs128(complex(big, -big))
	if math.IsInf(a, 0) || math.IsNaN(a) || a < big {
		t.Fatalf("ERR: Abs128 near overflow: %v", a)
	}

	big32 := float32(0.7 * math.MaxFloat32)
	a32 := Abs64(complex(big32, big32))
	if math.IsInf(float64(a32), 0) || a32 != a32 || a32 < big32 {
		t.Fatalf("ERR: Abs64 near overflow: %v", a32)
	}

	tiny := 3 * math.SmallestNonzeroFloat64
	if a := Abs128(complex(tiny, 4*math.SmallestNonzeroFloat64)); a != 5*math.SmallestNonzeroFloat64 {
		t.Fatalf("ERR: Abs128 of subnormal parts: %v", a)
	}
}

func TestDiv128(t *testing.T) {
	r := prng.NewString("div128")
	for i := 0; i < 10000; i++ {
		z := complex(r.Float64Exp(-40, 40), r.Float64Exp(-40, 40))
		w := complex(r.Float64Exp(-40, 40), r.Float64Exp(-40, 40))
		q := Div128(z, w)
		d := Abs128(q*w - z)
		if d > 1e-14*Abs128(z) {
			t.Fatalf("ERR: (%v / %v) * w = %v", z, w, q*w)
		}
	}

	// |w|^2 overflows: (1 - i) / (1 + i) = -i.
	q := Div128(complex(1e308, -1e308), complex(1e308, 1e308))
	if math.Abs(real(q)) > 1e-15 || math.Abs(imag(q)+1) > 1e-15 {
		t.Fatalf("ERR: Div128 near overflow: %v", q)
	}

	z, w := complex(1, 2), complex(3, -1)
	if Div128(z, w) == Div128(w, z) {
		t.Fatalf("ERR: division commutes on %v, %v", z, w)
	}
}

func TestDiv64(t *testing.T) {
	r := prng.NewString("div64")
	for i := 0; i < 10000; i++ {
		z := complex(r.Float32Exp(-20, 20), r.Float32Exp(-20, 20))
		w := complex(r.Float32Exp(-20, 20), r.Float32Exp(-20, 20))
		q := Div64(z, w)
		d := Abs64(q*w - z)
		if d > 1e-5*Abs64(z) {
			t.Fatalf("ERR: (%v / %v) * w = %v", z, w, q*w)
		}
	}

	q := Div64(complex(2e38, -2e38), complex(2e38, 2e38))
	if math.Abs(float64(real(q))) > 1e-6 || math.Abs(float64(imag(q))+1) > 1e-6 {
		t.Fatalf("ERR: Div64 near overflow: %v", q)
	}
}

func long(re, im float64) Long {
	return Long{Re: mathl.FromFloat64(re), Im: mathl.FromFloat64(im)}
}

func TestDivL(t *testing.T) {
	tol := math.Ldexp(1, -(mathl.Precision - 8))
	r := prng.NewString("divl")
	for i := 0; i < 2000; i++ {
		z := long(r.Float64Exp(-40, 40), r.Float64Exp(-40, 40))
		w := long(r.Float64Exp(-40, 40), r.Float64Exp(-40, 40))
		p := MulL(DivL(z, w), w)
		diff := Long{Re: mathl.Sub(p.Re, z.Re), Im: mathl.Sub(p.Im, z.Im)}
		e := mathl.Float64(AbsL(diff)) / mathl.Float64(AbsL(z))
		if e > tol {
			t.Fatalf("ERR: (z/w)*w - z: relative error %g", e)
		}
	}

	// Smith's algorithm never squares the components of w.
	w := long(1e300, 1e-300)
	q := DivL(w, w)
	if mathl.Float64(q.Re) != 1 || math.Abs(mathl.Float64(q.Im)) > 1e-300 {
		t.Fatalf("ERR: w/w = %v + %vi", mathl.Float64(q.Re), mathl.Float64(q.Im))
	}
	q = DivL(long(1, 0), long(1e-300, 1e300))
	if math.Abs(mathl.Float64(q.Re)) > 1e-299 || math.Abs(mathl.Float64(q.Im)+1e-300) > 1e-314 {
		t.Fatalf("ERR: 1/(1e300 i) = %v + %vi", mathl.Float64(q.Re), mathl.Float64(q.Im))
	}

	z, v := long(1, 2), long(3, -1)
	a, b := DivL(z, v), DivL(v, z)
	if mathl.Equal(a.Re, b.Re) && mathl.Equal(a.Im, b.Im) {
		t.Fatalf("ERR: division commutes")
	}
}

func TestAbsL(t *testing.T) {
	if a := AbsL(long(3, 4)); !mathl.Equal(a, mathl.FromFloat64(5)) {
		t.Fatalf("ERR: |3+4i| = %v", mathl.Float64(a))
	}
	big := 0.7 * math.MaxFloat64
	if a := mathl.Float64(AbsL(long(big, big))); math.IsInf(a, 0) || a < big {
		t.Fatalf("ERR: AbsL near overflow: %v", a)
	}
}

func TestMul(t *testing.T) {
	if p := Mul128(complex(1, 2), complex(3, 4)); p != complex(-5, 10) {
		t.Fatalf("ERR: (1+2i)(3+4i) = %v", p)
	}
	if p := Mul64(complex(1, 2), complex(3, 4)); p != complex(-5, 10) {
		t.Fatalf("ERR: (1+2i)(3+4i) = %v", p)
	}
	if p := Mul128(complex(0, 1), complex(0, 1)); p != -1 {
		t.Fatalf("ERR: i*i = %v", p)
	}

	r := prng.NewString("mul")
	for i := 0; i < 10000; i++ {
		z := complex(r.Float64Exp(-40, 40), r.Float64Exp(-40, 40))
		w := complex(r.Float64Exp(-40, 40), r.Float64Exp(-40, 40))
		p := Mul128(z, w)
		if p != Mul128(w, z) {
			t.Fatalf("ERR: %v * %v does not commute", z, w)
		}
		if d := Abs128(p - z*w); d > 1e-15*Abs128(z)*Abs128(w) {
			t.Fatalf("ERR: %v * %v = %v, want %v", z, w, p, z*w)
		}
		if d := Abs128(Mul128(Div128(z, w), w) - z); d > 1e-14*Abs128(z) {
			t.Fatalf("ERR: (z/w)*w = %v, want %v", Mul128(Div128(z, w), w), z)
		}

		z32 := complex(r.Float32Exp(-20, 20), r.Float32Exp(-20, 20))
		w32 := complex(r.Float32Exp(-20, 20), r.Float32Exp(-20, 20))
		p32 := Mul64(z32, w32)
		want := complex128(z32) * complex128(w32)
		if d := Abs128(complex128(p32) - want); d > 1e-6*Abs128(complex128(z32))*Abs128(complex128(w32)) {
			t.Fatalf("ERR: %v * %v = %v, want %v", z32, w32, p32, want)
		}
	}
}
