// Package ieee754 exposes the bit-level structure of IEEE-754 values in
// every storage layout listed by config.FloatLayout.
//
// A value is carried as a Raw container holding its storage bits,
// right-aligned and without padding. Decompose splits a Raw into sign,
// biased exponent and mantissa fields and Reconstruct puts them back;
// the two are exact inverses for every bit pattern, NaN payloads
// included. PutRaw and ReadRaw convert between a Raw and the byte image
// of a layout, padding and byte order included.
//
// Extended, Quadruple and DoubleDouble are value types for the three
// wide formats; the long precision tier (package mathl) is built on them.
package ieee754
