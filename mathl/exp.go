package mathl

import "github.com/ryanmaguire/libtmpl-sub005/math64"

// ExpPosKernel computes exp(x) for x >= 0. Inputs above the overflow
// threshold give +Inf; NaN is returned unchanged.
func ExpPosKernel(x LDouble) LDouble {
	if sharesDouble {
		return FromFloat64(math64.ExpPosKernel(Float64(x)))
	}
	switch {
	case IsNaN(x):
		return x
	case Less(maxLog, x):
		return inf
	case Less(x, tinyExp):
		return Add(one, x)
	case Less(x, smallArg):
		return horner(x, expCoeffs)
	}
	return expReduced(x)
}

// Exp computes exp(x) over the whole real line.
func Exp(x LDouble) LDouble {
	if sharesDouble {
		return FromFloat64(math64.Exp(Float64(x)))
	}
	switch {
	case IsNaN(x):
		return x
	case Less(maxLog, x):
		return inf
	case Less(x, minLog):
		return zero
	case !Signbit(x):
		return ExpPosKernel(x)
	case Less(Neg(tinyExp), x):
		return Add(one, x)
	case Less(Neg(smallArg), x):
		return horner(x, expCoeffs)
	}
	return expReduced(x)
}

// x = k*ln(2) + n/128 + t with |t| < 1/128, and
// exp(x) = 2^k * exp(n/128) * exp(t).
func expReduced(x LDouble) LDouble {
	k := nearest(Float64(x) * invLn2)
	fk := FromInt(k)
	r := Sub(Sub(x, Mul(fk, ln2Hi)), Mul(fk, ln2Lo))

	// The float64 estimate of r*128 may land on the neighboring integer;
	// t then slightly exceeds 1/128, which the series tolerates.
	n := int(Float64(r) * 128)
	if n > 45 {
		n = 45
	} else if n < -45 {
		n = -45
	}
	t := Sub(r, Ldexp(FromInt(n), -7))
	return Ldexp(Mul(expTab[n+45], horner(t, expCoeffs)), k)
}
