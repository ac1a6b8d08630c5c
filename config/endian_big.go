//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package config

// BigEndian is true when the target stores the most significant byte of
// a multi-byte value first.
const BigEndian = true

const (
	nativeBinary64     = Binary64BE
	nativeExtended96   = Extended96BE
	nativeExtended128  = Extended128BE
	nativeQuadruple    = Quadruple128BE
	nativeDoubleDouble = DoubleDouble128BE
)
