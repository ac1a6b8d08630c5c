//go:build !tmpl_portable && (tmpl_ldouble_doubledouble || (!tmpl_ldouble_double && !tmpl_ldouble_extended && !tmpl_ldouble_quadruple && (ppc64 || ppc64le)))

package config

// LDoubleLayout is the storage layout of the long precision tier.
const LDoubleLayout = nativeDoubleDouble
