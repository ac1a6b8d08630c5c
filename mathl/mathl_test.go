package mathl

import (
	"math"
	"testing"

	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/internal/mpref"
	"github.com/ryanmaguire/libtmpl-sub005/prng"
)

func ulps(a, b float64) uint64 {
	ord := func(x float64) int64 {
		v := math.Float64bits(x)
		if v>>63 != 0 {
			return -int64(v &^ (1 << 63))
		}
		return int64(v)
	}
	d := ord(a) - ord(b)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}

func near(t *testing.T, name string, x float64, got LDouble, want float64, tol uint64) {
	t.Helper()
	g := Float64(got)
	if math.IsNaN(g) && math.IsNaN(want) {
		return
	}
	if d := ulps(g, want); d > tol {
		t.Fatalf("ERR: %s(%v): got %.17g, want %.17g (%d ulps)", name, x, g, want, d)
	}
}

func same(t *testing.T, name string, got, want LDouble) {
	t.Helper()
	if IsNaN(got) && IsNaN(want) {
		return
	}
	if Raw(got) != Raw(want) {
		t.Fatalf("ERR: %s: got %v (%X), want %v (%X)",
			name, Float64(got), Raw(got), Float64(want), Raw(want))
	}
}

// |a - b| <= 2^-(Precision-slack) |b|.
func approx(t *testing.T, name string, a, b LDouble, slack int) {
	t.Helper()
	d := Float64(Abs(Sub(a, b)))
	if d > math.Ldexp(math.Abs(Float64(b)), -(Precision-slack)) {
		t.Fatalf("ERR: %s: %.20g vs %.20g", name, Float64(a), Float64(b))
	}
}

func f(x float64) LDouble {
	return FromFloat64(x)
}

func TestLayout(t *testing.T) {
	if Layout != config.LDoubleLayout {
		t.Fatalf("ERR: layout %s vs %s", Layout, config.LDoubleLayout)
	}
	if Layout.Precision() != Precision {
		t.Fatalf("ERR: precision %d vs %d", Layout.Precision(), Precision)
	}

	// The last significant bit is there, at 2^-(Precision-1).
	if Equal(Add(one, Ldexp(one, -(Precision-1))), one) {
		t.Fatalf("ERR: fewer than %d significant bits", Precision)
	}
}

func TestArithmetic(t *testing.T) {
	r := prng.NewString("arith-l")
	for i := 0; i < 5000; i++ {
		a := r.Float64Exp(-60, 60)
		b := r.Float64Exp(-60, 60)
		if Float64(f(a)) != a {
			t.Fatalf("ERR: round trip of %v", a)
		}
		near(t, "Add", a, Add(f(a), f(b)), a+b, 1)
		near(t, "Sub", a, Sub(f(a), f(b)), a-b, 1)
		near(t, "Mul", a, Mul(f(a), f(b)), a*b, 1)
		near(t, "Div", a, Div(f(a), f(b)), a/b, 1)
		near(t, "Sqrt", a, Sqrt(Abs(f(a))), math.Sqrt(math.Abs(a)), 1)
		if Less(f(a), f(b)) != (a < b) || Equal(f(a), f(b)) != (a == b) {
			t.Fatalf("ERR: comparison of %v and %v", a, b)
		}

		// Division and square root are exact inverses up to rounding.
		approx(t, "Div", Mul(Div(f(a), f(b)), f(b)), f(a), 6)
		s := Sqrt(Abs(f(a)))
		approx(t, "Sqrt", Mul(s, s), Abs(f(a)), 6)
	}
	n := 1<<40 + 12345
	if Float64(FromInt(n)) != float64(n) || Float64(FromInt(-n)) != -float64(n) {
		t.Fatalf("ERR: FromInt(%d)", n)
	}
	if !IsNaN(Sqrt(f(-1))) || !IsInf(Div(one, zero)) {
		t.Fatalf("ERR: Sqrt(-1) or 1/0")
	}
}

func TestClassification(t *testing.T) {
	if !IsNaN(nan) || IsNaN(one) || IsNaN(inf) {
		t.Fatalf("ERR: IsNaN")
	}
	if !IsInf(inf) || !IsInf(Neg(inf)) || IsInf(nan) || IsInf(one) {
		t.Fatalf("ERR: IsInf")
	}
	if !IsZero(zero) || !IsZero(Neg(zero)) || !Signbit(Neg(zero)) {
		t.Fatalf("ERR: signed zeros")
	}

	// Halving 1 reaches the subnormal range before zero, and the
	// smallest positive value is subnormal.
	x, sub := one, false
	for {
		h := Ldexp(x, -1)
		if IsZero(h) {
			break
		}
		if IsSubnormal(h) {
			sub = true
		} else if sub {
			t.Fatalf("ERR: normal value below a subnormal one")
		}
		x = h
	}
	if !IsSubnormal(x) || IsSubnormal(one) {
		t.Fatalf("ERR: IsSubnormal at %v", Float64(x))
	}
}

func TestIntegerKernels(t *testing.T) {
	tab := []struct{ x, floor, trunc, mod2 float64 }{
		{2.5, 2, 2, 0.5},
		{-2.5, -3, -2, -0.5},
		{-0.5, -1, math.Copysign(0, -1), -0.5},
		{5, 5, 5, 1},
		{-5, -5, -5, -1},
		{-4, -4, -4, math.Copysign(0, -1)},
		{0x1p60, 0x1p60, 0x1p60, 0},
	}
	for _, c := range tab {
		same(t, "Floor", Floor(f(c.x)), f(c.floor))
		same(t, "Trunc", Trunc(f(c.x)), f(c.trunc))
		same(t, "ModTwo", ModTwo(f(c.x)), f(c.mod2))
	}
	if !IsNaN(ModTwo(inf)) || !IsNaN(ModTwo(nan)) {
		t.Fatalf("ERR: ModTwo of non-finite value")
	}
	same(t, "Abs", Abs(f(-3)), f(3))
	same(t, "Abs", Abs(Neg(zero)), zero)

	r := prng.NewString("integer-l")
	for i := 0; i < 5000; i++ {
		a := r.Float64Exp(-10, 70)
		near(t, "Floor", a, Floor(f(a)), math.Floor(a), 0)
		near(t, "Trunc", a, Trunc(f(a)), math.Trunc(a), 0)
		near(t, "ModTwo", a, ModTwo(f(a)), math.Mod(a, 2), 0)

		// Values with more bits than a float64 holds, small enough for
		// fl + 1 to be representable.
		b := r.Float64Exp(-10, 40)
		x := Add(f(b), f(r.Float64Exp(-80, -60)*math.Abs(b)))
		fl := Floor(x)
		if Less(x, fl) || !Less(x, Add(fl, one)) || !Equal(Trunc(fl), fl) {
			t.Fatalf("ERR: Floor(%.20g) = %.20g", Float64(x), Float64(fl))
		}
		tr := Trunc(x)
		if Less(Abs(x), Abs(tr)) || !Less(Abs(x), Add(Abs(tr), one)) {
			t.Fatalf("ERR: Trunc(%.20g) = %.20g", Float64(x), Float64(tr))
		}
		m := ModTwo(x)
		h := Ldexp(Sub(x, m), -1)
		if !Less(Abs(m), two) || !Equal(Trunc(h), h) ||
			(!IsZero(m) && Signbit(m) != Signbit(x)) {
			t.Fatalf("ERR: ModTwo(%.20g) = %.20g", Float64(x), Float64(m))
		}
	}
}

// Negative zeros keep their sign through every conversion back to
// float64, including the double-double format, where -0 + +0 would
// round to +0.
func TestSignedZero(t *testing.T) {
	neg0 := math.Copysign(0, -1)
	for _, c := range []struct {
		name string
		got  LDouble
	}{
		{"FromFloat64", FromFloat64(neg0)},
		{"Neg", Neg(zero)},
		{"Cbrt", Cbrt(f(neg0))},
		{"ModTwo", ModTwo(f(-4))},
		{"Trunc", Trunc(f(-0.5))},
		{"Sind", Sind(f(neg0))},
		{"Asin", Asin(f(neg0))},
		{"Copysign", Copysign(zero, f(-1))},
	} {
		if g := Float64(c.got); g != 0 || !math.Signbit(g) {
			t.Fatalf("ERR: %s: got %v, want -0", c.name, g)
		}
	}
	if g := Float64(Floor(f(neg0))); !math.Signbit(g) {
		t.Fatalf("ERR: Floor(-0) lost its sign")
	}
}

func TestCopysign(t *testing.T) {
	if config.HasIEEE754 {
		// Only the sign bit tells -0 from +0.
		same(t, "Copysign", Copysign(f(3), Neg(zero)), f(-3))
	}
	same(t, "Copysign", Copysign(f(-3), f(2)), f(3))
	same(t, "Copysign", Copysign(Neg(inf), one), inf)
	if !Signbit(Copysign(nan, f(-1))) {
		t.Fatalf("ERR: Copysign(NaN, -1) has a positive sign")
	}
	r := prng.NewString("copysign-l")
	for i := 0; i < 2000; i++ {
		x := r.Float64Exp(-1000, 1000)
		y := r.Float64Exp(-1000, 1000)
		near(t, "Copysign", x, Copysign(f(x), f(y)), math.Copysign(x, y), 0)

		// The low half of a wide value follows the sign too.
		w := Add(f(x), f(x*0x1p-70))
		same(t, "Copysign", Copysign(w, f(y)), Copysign(Neg(w), f(y)))
		same(t, "Copysign", Abs(Copysign(w, f(y))), Abs(w))
	}
}

func TestExp(t *testing.T) {
	same(t, "Exp", Exp(zero), one)
	same(t, "Exp", Exp(f(math.Inf(-1))), zero)
	if !IsInf(ExpPosKernel(f(1e5))) || IsInf(ExpPosKernel(maxLog)) {
		t.Fatalf("ERR: ExpPosKernel overflow threshold")
	}
	if !IsNaN(Exp(nan)) {
		t.Fatalf("ERR: Exp(NaN)")
	}

	r := prng.NewString("exp-l")
	for i := 0; i < 3000; i++ {
		x := r.Uniform(-700, 700)
		near(t, "Exp", x, Exp(f(x)), mpref.Exp(x), 1)
		s := math.Abs(r.Float64Exp(-40, 2))
		near(t, "ExpPosKernel", s, ExpPosKernel(f(s)), mpref.Exp(s), 1)
	}

	// exp(a+b) = exp(a) exp(b); a+b is exact.
	for i := 0; i < 1000; i++ {
		a := f(float64(r.Intn(1<<16)) * 0x1p-12)
		b := f(float64(r.Intn(1<<16)) * 0x1p-12)
		approx(t, "Exp", Mul(ExpPosKernel(a), ExpPosKernel(b)), ExpPosKernel(Add(a, b)), 8)
	}
}

func TestCbrt(t *testing.T) {
	same(t, "Cbrt", Cbrt(f(-8)), f(-2))
	same(t, "Cbrt", Cbrt(Neg(zero)), Neg(zero))
	same(t, "Cbrt", Cbrt(inf), inf)

	r := prng.NewString("cbrt-l")
	for i := 0; i < 3000; i++ {
		x := r.Float64Exp(-1000, 1000)
		y := Cbrt(f(x))
		near(t, "Cbrt", x, y, mpref.Cbrt(x), 1)
		approx(t, "Cbrt", Mul(Mul(y, y), y), f(x), 10)
	}
}

func TestAsin(t *testing.T) {
	same(t, "Asin", Asin(one), pio2Hi)
	same(t, "Asin", Asin(f(-1)), Neg(pio2Hi))
	same(t, "Asin", Asin(Neg(zero)), Neg(zero))
	if !IsNaN(Asin(f(1.0000000000000002))) || !IsNaN(Asin(nan)) {
		t.Fatalf("ERR: Asin outside [-1, 1]")
	}
	near(t, "Asin", 1, Ldexp(Asin(one), 1), math.Pi, 0)

	for _, x := range []float64{0.5, 0.50009, 0.5308, 0.9999999, -0.75} {
		near(t, "Asin", x, Asin(f(x)), mpref.Asin(x), 1)
	}

	r := prng.NewString("asin-l")
	for i := 0; i < 2000; i++ {
		w := r.Uniform(0.5, 0.51)
		near(t, "Asin", w, Asin(f(w)), mpref.Asin(w), 1)

		x := r.Uniform(-1, 1)
		y := Asin(f(x))
		near(t, "Asin", x, y, mpref.Asin(x), 1)

		// sin(asin(x)) = x, going through degrees.
		if math.Abs(x) < 0.9 && math.Abs(x) > 1e-3 {
			deg := Div(Mul(y, c90), pio2Hi)
			approx(t, "Asin", Sind(deg), f(x), 12)
		}
	}
}

func TestTrigd(t *testing.T) {
	tab := []struct {
		x    float64
		s, c LDouble
	}{
		{30, sindTab[30], sindTab[60]},
		{90, one, zero},
		{180, zero, Neg(one)},
		{270, Neg(one), zero},
		{-90, Neg(one), zero},
		{0x1p60, sindTab[44], Neg(sindTab[46])},
		{0x1p100, sindTab[16], sindTab[74]},
		{0x1p1000, sindTab[16], sindTab[74]},
	}
	for _, c := range tab {
		s, co := SinCosd(f(c.x))
		same(t, "Sind", s, c.s)
		same(t, "Cosd", co, c.c)
	}
	same(t, "Sind", sindTab[30], f(0.5))
	same(t, "Sind", Sind(Neg(zero)), Neg(zero))
	if s, c := SinCosd(inf); !IsNaN(s) || !IsNaN(c) {
		t.Fatalf("ERR: SinCosd(Inf)")
	}

	r := prng.NewString("trigd-l")
	for i := 0; i < 2000; i++ {
		x := r.Uniform(-10000, 10000)
		s, c := SinCosd(f(x))
		ws, wc := mpref.SinCosd(x)
		near(t, "Sind", x, s, ws, 1)
		near(t, "Cosd", x, c, wc, 1)
		approx(t, "SinCosd", Add(Mul(s, s), Mul(c, c)), one, 8)
	}

	// Period 360 over [-10000, 10000]; multiples of 2^-10 keep z+360 and
	// z+720 exact.
	for i := 0; i < 5000; i++ {
		z := float64(r.Intn(20000*1024)-10000*1024) / 1024
		same(t, "Sind", Sind(f(z+360)), Sind(f(z)))
		same(t, "Cosd", Cosd(f(z+360)), Cosd(f(z)))
		same(t, "Cosd", Cosd(f(z+720)), Cosd(f(z)))
		same(t, "Cosd", Cosd(f(-z)), Cosd(f(z)))
		same(t, "Sind", Sind(f(-z)), Neg(Sind(f(z))))
	}
}

func TestHypot(t *testing.T) {
	same(t, "Hypot", Hypot(f(3), f(-4)), f(5))
	same(t, "Hypot", Hypot(Neg(inf), nan), inf)
	if !IsNaN(Hypot(one, nan)) {
		t.Fatalf("ERR: Hypot(1, NaN)")
	}

	// Largest power of two, and smallest positive value.
	top := one
	for !IsInf(Ldexp(top, 1)) {
		top = Ldexp(top, 1)
	}
	tiny := one
	for !IsZero(Ldexp(tiny, -1)) {
		tiny = Ldexp(tiny, -1)
	}
	big := Mul(top, f(1.4))
	if h := Hypot(big, big); IsInf(h) || !Less(big, h) {
		t.Fatalf("ERR: Hypot near overflow: %v", Float64(h))
	}
	same(t, "Hypot", Hypot(Mul(tiny, f(3)), Mul(tiny, f(4))), Mul(tiny, f(5)))

	r := prng.NewString("hypot-l")
	for i := 0; i < 3000; i++ {
		x := r.Float64Exp(-1000, 1000)
		y := x * r.Float64Exp(-20, 0)
		near(t, "Hypot", x, Hypot(f(x), f(y)), mpref.Hypot(x, y), 1)
	}
}

func TestHypot3(t *testing.T) {
	same(t, "Hypot3", Hypot3(f(2), f(-3), f(6)), f(7))
	same(t, "Hypot3", Hypot3(Neg(zero), zero, Neg(zero)), zero)
	same(t, "Hypot3", Hypot3(nan, one, Neg(inf)), inf)
	if !IsNaN(Hypot3(one, two, nan)) {
		t.Fatalf("ERR: Hypot3(1, 2, NaN)")
	}

	top := one
	for !IsInf(Ldexp(top, 1)) {
		top = Ldexp(top, 1)
	}
	if h := Hypot3(top, top, top); IsInf(h) || !Less(top, h) {
		t.Fatalf("ERR: Hypot3 near overflow: %v", Float64(h))
	}

	r := prng.NewString("hypot3-l")
	for i := 0; i < 3000; i++ {
		x := r.Float64Exp(-1000, 1000)
		y := x * r.Float64Exp(-20, 0)
		z := x * r.Float64Exp(-20, 0)
		near(t, "Hypot3", x, Hypot3(f(x), f(y), f(z)), mpref.Hypot3(x, y, z), 1)
	}
}
