//go:build tmpl_ldouble_double || tmpl_portable || (!tmpl_ldouble_extended && !tmpl_ldouble_quadruple && !tmpl_ldouble_doubledouble && !((amd64 || 386) && !windows) && !((arm64 && linux) || riscv64 || s390x || loong64) && !(ppc64 || ppc64le))

package config

// LDoubleLayout is the storage layout of the long precision tier.
const LDoubleLayout = nativeBinary64
