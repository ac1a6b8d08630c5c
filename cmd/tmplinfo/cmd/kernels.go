package cmd

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ryanmaguire/libtmpl-sub005/internal/mpref"
	"github.com/ryanmaguire/libtmpl-sub005/math32"
	"github.com/ryanmaguire/libtmpl-sub005/math64"
	"github.com/ryanmaguire/libtmpl-sub005/mathl"
)

var (
	ErrUnknownFunc = errors.New("tmplinfo: unknown function")
	ErrUnknownTier = errors.New("tmplinfo: unknown tier")
	ErrFormat      = errors.New("tmplinfo: unknown output format")
)

// Tier names, in sweep order.
const (
	tierFloat  = "float"
	tierDouble = "double"
	tierLong   = "ldouble"
)

var tierNames = []string{tierFloat, tierDouble, tierLong}

// kernel is one unary function in its three precisions, with a float64
// reference and the interval the check sweep draws from. The references of
// the transcendental kernels are correctly rounded.
type kernel struct {
	f32  func(float32) float32
	f64  func(float64) float64
	long func(mathl.LDouble) mathl.LDouble
	ref  func(float64) float64

	lo, hi float64
	// Inputs are |x| 2^e with e uniform in [emin, emax] when emin < emax.
	emin, emax int
}

var kernels = map[string]kernel{
	"abs": {
		f32: math32.Abs, f64: math64.Abs, long: mathl.Abs, ref: math.Abs,
		emin: -1074, emax: 1023,
	},
	"floor": {
		f32: math32.Floor, f64: math64.Floor, long: mathl.Floor, ref: math.Floor,
		emin: -10, emax: 60,
	},
	"trunc": {
		f32: math32.Trunc, f64: math64.Trunc, long: mathl.Trunc, ref: math.Trunc,
		emin: -10, emax: 60,
	},
	"modtwo": {
		f32: math32.ModTwo, f64: math64.ModTwo, long: mathl.ModTwo,
		ref:  func(x float64) float64 { return math.Mod(x, 2) },
		emin: -10, emax: 60,
	},
	"exp": {
		f32: math32.Exp, f64: math64.Exp, long: mathl.Exp, ref: mpref.Exp,
		lo: -87, hi: 88,
	},
	"cbrt": {
		f32: math32.Cbrt, f64: math64.Cbrt, long: mathl.Cbrt, ref: mpref.Cbrt,
		emin: -120, emax: 120,
	},
	"asin": {
		f32: math32.Asin, f64: math64.Asin, long: mathl.Asin, ref: mpref.Asin,
		lo: -1, hi: 1,
	},
	"sind": {
		f32: math32.Sind, f64: math64.Sind, long: mathl.Sind, ref: mpref.Sind,
		lo: -1e4, hi: 1e4,
	},
	"cosd": {
		f32: math32.Cosd, f64: math64.Cosd, long: mathl.Cosd, ref: mpref.Cosd,
		lo: -1e4, hi: 1e4,
	},
}

func lookup(name string) (kernel, error) {
	k, ok := kernels[strings.ToLower(name)]
	if !ok {
		return kernel{}, fmt.Errorf("%w %q (have %s)", ErrUnknownFunc, name,
			strings.Join(kernelNames(), ", "))
	}
	return k, nil
}

func kernelNames() []string {
	names := make([]string, 0, len(kernels))
	for n := range kernels {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func parseTiers(s string) ([]string, error) {
	if s == "" || s == "all" {
		return tierNames, nil
	}
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(strings.ToLower(t))
		switch t {
		case tierFloat, tierDouble, tierLong:
			out = append(out, t)
		default:
			return nil, fmt.Errorf("%w %q", ErrUnknownTier, t)
		}
	}
	return out, nil
}
