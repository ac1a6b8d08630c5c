//go:build 386 || amd64 || amd64p32 || alpha || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || nios2 || ppc64le || riscv || riscv64 || sh || wasm

package config

// BigEndian is true when the target stores the most significant byte of
// a multi-byte value first.
const BigEndian = false

const (
	nativeBinary64     = Binary64LE
	nativeExtended96   = Extended96LE
	nativeExtended128  = Extended128LE
	nativeQuadruple    = Quadruple128LE
	nativeDoubleDouble = DoubleDouble128LE
)
