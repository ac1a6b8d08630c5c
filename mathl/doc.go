// Package mathl is the long precision tier of the numeric kernels.
//
// LDouble is one of four formats, chosen at build time the same way
// config.LDoubleLayout is: binary64, x87 80-bit extended, IEEE-754
// binary128, or a double-double pair. The extended and binary128 forms
// are computed with package softfloat; the double-double form with
// error-free transformations on float64.
//
// Every format exposes the same set of functions, so that code built
// on them (the kernels here, package cplx, the command line tool) does
// not depend on the choice. Polynomial lengths, overflow thresholds and
// scaling bands are set per format; tables and coefficients are stored
// with about 159 bits and rounded once at initialization.
package mathl
