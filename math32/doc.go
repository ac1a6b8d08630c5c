// Package math32 is the float32 tier of the numeric kernels. It mirrors
// package math64 operation for operation, with its own reduction tables
// and shorter polynomials, and computes in float32 throughout.
package math32
