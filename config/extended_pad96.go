//go:build 386

package config

// The 32-bit x86 ABI aligns the 10-byte x87 value on 4 bytes.
const nativeExtended = nativeExtended96
