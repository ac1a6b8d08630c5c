// Package softfloat implements IEEE-754 binary floating-point arithmetic
// with integer operations only, for formats that Go has no native type
// for: the x87 80-bit extended format and binary128. Binary64 is also
// provided; it serves as a reference, since its results can be checked
// against the hardware.
//
// Every operation works on ieee754.Raw containers and is correctly
// rounded to nearest, ties to even. Only the default rounding mode is
// supported, and no exception flags are raised.
package softfloat
