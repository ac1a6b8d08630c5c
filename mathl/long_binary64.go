//go:build tmpl_ldouble_double || tmpl_portable || (!tmpl_ldouble_extended && !tmpl_ldouble_quadruple && !tmpl_ldouble_doubledouble && !((amd64 || 386) && !windows) && !((arm64 && linux) || riscv64 || s390x || loong64) && !(ppc64 || ppc64le))

package mathl

import (
	"math"

	"github.com/ryanmaguire/libtmpl-sub005/ieee754"
	"github.com/ryanmaguire/libtmpl-sub005/math64"
)

// LDouble is the long precision type: binary64 in this build.
type LDouble = float64

// Precision is the number of significant bits of LDouble.
const Precision = 53

const (
	expTerms  = 7
	trigTerms = 4
	asinTerms = 6
	cbrtTerms = 4

	maxLogF = 709.782712893384
	minLogF = -745.1332191019412

	// Squares of values with exponents in (hypotEmin, hypotEmax) neither
	// overflow nor underflow.
	hypotEmin = -484
	hypotEmax = 511
	hypotDown = -600
	hypotUp   = 600
)

func FromFloat64(x float64) LDouble { return x }

func Float64(x LDouble) float64 { return x }

func FromInt(i int) LDouble { return float64(i) }

// The conversions keep every operation rounded on its own, so that
// results do not depend on whether the platform fuses multiply-adds.

func Add(x, y LDouble) LDouble { return float64(x + y) }

func Sub(x, y LDouble) LDouble { return float64(x - y) }

func Mul(x, y LDouble) LDouble { return float64(x * y) }

func Div(x, y LDouble) LDouble { return x / y }

func Sqrt(x LDouble) LDouble { return math.Sqrt(x) }

func Neg(x LDouble) LDouble { return -x }

func Less(x, y LDouble) bool { return x < y }

func Equal(x, y LDouble) bool { return x == y }

func Ldexp(x LDouble, n int) LDouble { return math.Ldexp(x, n) }

func Signbit(x LDouble) bool { return math.Signbit(x) }

func IsZero(x LDouble) bool { return x == 0 }

func IsNaN(x LDouble) bool { return math64.IsNaN(x) }

func IsInf(x LDouble) bool { return math64.IsInf(x) }

func IsSubnormal(x LDouble) bool { return math64.IsSubnormal(x) }

func Abs(x LDouble) LDouble { return math64.Abs(x) }

func Floor(x LDouble) LDouble { return math64.Floor(x) }

func Trunc(x LDouble) LDouble { return math64.Trunc(x) }

func ModTwo(x LDouble) LDouble { return math64.ModTwo(x) }

// Raw returns the bits of x as stored in Layout.
func Raw(x LDouble) ieee754.Raw { return ieee754.Float64Raw(x) }

// Exponent of the leading bit; false for zeros, infinities and NaN.
func ilogb(x LDouble) (int, bool) {
	if x == 0 || x != x || x-x != 0 {
		return 0, false
	}
	_, e := math.Frexp(x)
	return e - 1, true
}
