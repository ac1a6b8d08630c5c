//go:build !tmpl_portable && (tmpl_ldouble_quadruple || (!tmpl_ldouble_double && !tmpl_ldouble_extended && !tmpl_ldouble_doubledouble && ((arm64 && linux) || riscv64 || s390x || loong64)))

package config

// LDoubleLayout is the storage layout of the long precision tier.
const LDoubleLayout = nativeQuadruple
