//go:build !tmpl_portable

package config

// HasIEEE754 is true when the kernels may read and write the bits of
// their operands directly.
const HasIEEE754 = true
