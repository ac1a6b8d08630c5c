//go:build !386

package config

const nativeExtended = nativeExtended128
