// Package math64 implements the float64 tier of the numeric kernels:
// bit-level integer kernels (Abs, Floor, Trunc, ModTwo), classification,
// and the table-driven elementary functions ExpPosKernel, Exp, Cbrt,
// Asin, Cosd, Sind and SinCosd, along with an overflow-safe Hypot.
//
// Each kernel has two renditions. The default one reads and writes the
// IEEE-754 fields of its operands directly; the portable one only uses
// arithmetic and comparisons, and is selected when the module is built
// with the tmpl_portable tag. The two agree bit for bit on the integer
// kernels and to within rounding elsewhere.
package math64
