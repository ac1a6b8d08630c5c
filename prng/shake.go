// Package prng provides a deterministic pseudorandom generator for test
// inputs and sweeps. Outputs depend only on the seed, on every platform.
package prng

import (
	"math"

	sha3 "golang.org/x/crypto/sha3"
)

// SHAKE256x4 runs four SHAKE256 instances in parallel and interleaves
// their outputs by 8-byte words. Instance i absorbs the seed followed by
// the byte i.
type SHAKE256x4 struct {
	state [4]sha3.ShakeHash
	buf   [4 * 136]byte
	ptr   int
}

// New creates an instance seeded with the provided bytes.
func New(seed []byte) *SHAKE256x4 {
	r := new(SHAKE256x4)
	for i := 0; i < 4; i++ {
		var tmp [1]byte
		tmp[0] = byte(i)
		r.state[i] = sha3.NewShake256()
		r.state[i].Write(seed)
		r.state[i].Write(tmp[:])
	}
	r.ptr = len(r.buf)
	return r
}

// NewString is New with a string seed.
func NewString(seed string) *SHAKE256x4 {
	return New([]byte(seed))
}

// Uint8 returns the next byte.
func (r *SHAKE256x4) Uint8() uint8 {
	ptr := r.ptr
	if ptr == len(r.buf) {
		r.refill()
		ptr = 0
	}
	r.ptr = ptr + 1
	return r.buf[ptr]
}

// Uint16 returns the next 16-bit value (little-endian decoding).
func (r *SHAKE256x4) Uint16() uint16 {
	ptr := r.ptr
	if ptr >= (len(r.buf) - 1) {
		r.refill()
		ptr = 0
	}
	r.ptr = ptr + 2
	return uint16(r.buf[ptr]) + (uint16(r.buf[ptr+1]) << 8)
}

// Uint64 returns the next 64-bit value (little-endian decoding).
func (r *SHAKE256x4) Uint64() uint64 {
	ptr := r.ptr
	if ptr >= (len(r.buf) - 7) {
		r.refill()
		ptr = 0
	}
	x := uint64(0)
	r.ptr = ptr + 8
	for i := 0; i < 8; i++ {
		x += uint64(r.buf[ptr+i]) << (i << 3)
	}
	return x
}

// Read fills p with output bytes. It never fails.
func (r *SHAKE256x4) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.Uint8()
	}
	return len(p), nil
}

// Refill a SHAKE256x4 instance.
func (r *SHAKE256x4) refill() {
	var tmp [136]byte
	for i := 0; i < 4; i++ {
		r.state[i].Read(tmp[:])
		for j := 0; j < 17; j++ {
			u := (i << 3) + (j << 5)
			v := j << 3
			copy(r.buf[u:u+8], tmp[v:v+8])
		}
	}
	r.ptr = 0
}

// Intn returns a value in [0, n). The bias is below 2^-32 for n < 2^32.
func (r *SHAKE256x4) Intn(n int) int {
	if n <= 0 {
		panic("prng: Intn argument must be positive")
	}
	return int(r.Uint64() % uint64(n))
}

// Float64 returns a value in [0, 1) with 53 random bits.
func (r *SHAKE256x4) Float64() float64 {
	return float64(r.Uint64()>>11) * 0x1p-53
}

// Uniform returns a value in [lo, hi).
func (r *SHAKE256x4) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Float64Exp returns a finite value of random sign whose binary exponent
// is drawn uniformly from [emin, emax] and whose mantissa is uniform.
func (r *SHAKE256x4) Float64Exp(emin, emax int) float64 {
	m := r.Uint64()
	e := emin + int((m>>52)&0x7FF)%(emax-emin+1)
	v := math.Float64frombits(m&0x800FFFFFFFFFFFFF | uint64(1023)<<52)
	return math.Ldexp(v, e)
}

// Float32Exp is Float64Exp for float32. The result is exact in float32.
func (r *SHAKE256x4) Float32Exp(emin, emax int) float32 {
	m := r.Uint64()
	e := emin + int((m>>23)&0xFF)%(emax-emin+1)
	v := math.Float32frombits(uint32(m)&0x807FFFFF | uint32(127)<<23)
	return float32(math.Ldexp(float64(v), e))
}
