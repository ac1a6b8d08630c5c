package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/mathl"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestProfileFormats(t *testing.T) {
	want := config.Profile()

	out, err := run(t, "profile", "--format", "json")
	require.NoError(t, err)
	var pj config.BuildProfile
	require.NoError(t, json.Unmarshal([]byte(out), &pj))
	assert.Equal(t, want, pj)

	out, err = run(t, "profile", "-f", "yaml")
	require.NoError(t, err)
	var py config.BuildProfile
	require.NoError(t, yaml.Unmarshal([]byte(out), &py))
	assert.Equal(t, want, py)

	out, err = run(t, "profile", "-f", "toml")
	require.NoError(t, err)
	var pt config.BuildProfile
	_, err = toml.Decode(out, &pt)
	require.NoError(t, err)
	assert.Equal(t, want, pt)

	out, err = run(t, "profile")
	require.NoError(t, err)
	assert.Contains(t, out, want.LDouble.String())
	assert.Contains(t, out, want.GOARCH)

	_, err = run(t, "profile", "-f", "xml")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "cbrt", "--", "-8")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "float    cbrt(-8) = -2", lines[0])
	assert.Equal(t, "double   cbrt(-8) = -2", lines[1])
	assert.Equal(t, "ldouble  cbrt(-8) = ~-2", lines[2])

	out, err = run(t, "eval", "sind", "30", "--tier", "double")
	require.NoError(t, err)
	assert.Equal(t, "double   sind(30) = 0.5\n", out)

	out, err = run(t, "eval", "exp", "1e6", "-t", "double,float")
	require.NoError(t, err)
	assert.Equal(t, "double   exp(1e6) = +Inf\nfloat    exp(1e6) = +Inf\n", out)

	out, err = run(t, "eval", "abs", "-t", "double", "--bits", "--", "-2")
	require.NoError(t, err)
	want := "0000000000000040"
	if config.BigEndian {
		want = "4000000000000000"
	}
	assert.Contains(t, out, want)
	assert.Contains(t, out, "[normal]")

	out, err = run(t, "eval", "floor", "-t", "ldouble", "--bits", "--", "-0.5")
	require.NoError(t, err)
	assert.Contains(t, out, mathl.Layout.String())
	assert.Contains(t, out, "~-1")

	_, err = run(t, "eval", "tan", "1")
	assert.ErrorIs(t, err, ErrUnknownFunc)
	_, err = run(t, "eval", "exp", "1", "-t", "half")
	assert.ErrorIs(t, err, ErrUnknownTier)
	_, err = run(t, "eval", "exp", "one")
	assert.Error(t, err)
	_, err = run(t, "eval", "exp")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--func", "floor,trunc,modtwo,abs", "-n", "2000", "--max-ulp", "0")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 12)
	assert.Contains(t, out, "2,000 samples")

	out, err = run(t, "check", "--func", "exp,cbrt", "-t", "double,ldouble", "-n", "2000", "--max-ulp", "1")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)

	out, err = run(t, "check", "--func", "asin,sind,cosd", "-n", "1000", "--max-ulp", "1")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 9)

	_, err = run(t, "check", "--func", "gamma")
	assert.ErrorIs(t, err, ErrUnknownFunc)
	_, err = run(t, "check", "-n", "0")
	assert.Error(t, err)
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := runCheck(ctx, &out, checkOptions{
		funcs: []string{"exp"}, tiers: tierNames, samples: 10, seed: "x", maxULP: -1,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReferences(t *testing.T) {
	for _, name := range kernelNames() {
		k := must(lookup(name))
		assert.NotNil(t, k.ref, name)
		assert.True(t, k.lo < k.hi || k.emin < k.emax, name)
	}
	assert.Equal(t, 0.5, must(lookup("sind")).ref(30))
	assert.Equal(t, -1.0, must(lookup("cosd")).ref(180))
	assert.True(t, math.IsNaN(must(lookup("asin")).ref(2)))

	assert.Equal(t, uint64(1), ulps64(1, math.Nextafter(1, 2)))
	assert.Equal(t, uint64(0), ulps64(0, math.Copysign(0, -1)))
	assert.Equal(t, uint64(2), ulps32(math.Float32frombits(1), -math.Float32frombits(1)))
	assert.Equal(t, []string{tierDouble}, must(parseTiers("Double")))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
