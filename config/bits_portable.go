//go:build tmpl_portable

package config

// HasIEEE754 is true when the kernels may read and write the bits of
// their operands directly. The tmpl_portable tag forces the
// arithmetic-only code paths.
const HasIEEE754 = false
