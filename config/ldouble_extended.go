//go:build !tmpl_portable && (tmpl_ldouble_extended || (!tmpl_ldouble_double && !tmpl_ldouble_quadruple && !tmpl_ldouble_doubledouble && (amd64 || 386) && !windows))

package config

// LDoubleLayout is the storage layout of the long precision tier.
const LDoubleLayout = nativeExtended
