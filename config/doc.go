// Package config holds the build-time numeric configuration: the
// storage layout of each precision tier, the byte order of the target,
// and whether the kernels may work on raw bits.
//
// The layout of the long tier is chosen by build tags and is a constant
// for the lifetime of the program:
//
//	tmpl_ldouble_double        binary64
//	tmpl_ldouble_extended      x87 80-bit extended, padded to 12 or 16 bytes
//	tmpl_ldouble_quadruple     IEEE-754 binary128
//	tmpl_ldouble_doubledouble  unevaluated sum of two binary64 values
//	tmpl_portable              binary64, and no direct bit access anywhere;
//	                           it takes precedence over the other tags
//
// Without a tag the layout follows the platform's C long double. Setting
// two of the tmpl_ldouble tags at once fails to compile.
package config
