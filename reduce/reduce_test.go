package reduce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorner(t *testing.T) {
	assert.Equal(t, 0.0, Horner(3.0, nil))
	assert.Equal(t, 17.0, Horner(2.0, []float64{1, 2, 3}))
	assert.Equal(t, float32(6), Horner(float32(1), []float32{1, 2, 3}))
}

func TestDegrees(t *testing.T) {
	tab := []struct{ x, r float64 }{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{-30, 30},
		{725.25, 5.25},
		{-1e6, math.Mod(1e6, 360)},
		{0x1p60, 136},
		{0x1p100, math.Mod(0x1p100, 360)},
		{1e300, math.Mod(1e300, 360)},
		{math.MaxFloat64, math.Mod(math.MaxFloat64, 360)},
	}
	for _, c := range tab {
		assert.Equal(t, c.r, Degrees(c.x), "Degrees(%v)", c.x)
	}
	assert.Equal(t, float32(10), Degrees(float32(370)))

	// Above 2^70 the exponent is cut by a multiple of 12 first.
	for k := 0; k < 50; k++ {
		x := math.Ldexp(1, 70+k)
		require.Equal(t, math.Mod(x, 360), Degrees(x), "Degrees(2^%d)", 70+k)
	}
}

func TestModTwo(t *testing.T) {
	assert.Equal(t, 1.0, ModTwo(5.0))
	assert.Equal(t, -1.0, ModTwo(-5.0))
	assert.Equal(t, 0.5, ModTwo(2.5))
	assert.Equal(t, float32(1.25), ModTwo(float32(7.25)))
	assert.True(t, math.Signbit(ModTwo(-4.0)))
	assert.True(t, math.IsNaN(ModTwo(math.Inf(1))))
	assert.True(t, math.IsNaN(ModTwo(math.NaN())))
	assert.Equal(t, math.Mod(1e300, 2), ModTwo(1e300))
}

func TestSplit(t *testing.T) {
	n, r := SplitNearest(3.75)
	assert.Equal(t, 4, n)
	assert.Equal(t, -0.25, r)

	n, r = SplitNearest(-2.5)
	assert.Equal(t, -3, n)
	assert.Equal(t, 0.5, r)

	x := 0.3
	n, r = SplitTrunc(x, 128)
	assert.Equal(t, 38, n)
	assert.Equal(t, x-38.0/128, r)

	n, r = SplitTrunc(-x, 128)
	assert.Equal(t, -38, n)
	assert.Equal(t, -x+38.0/128, r)
}
