package config

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Float32Layout and Float64Layout are the layouts of Go's float32 and
// float64 on the target.
const (
	Float32Layout = Binary32
	Float64Layout = nativeBinary64
)

// BuildProfile summarizes the numeric configuration selected at build
// time, together with a few facts about the host CPU.
type BuildProfile struct {
	GOOS    string `json:"goos" yaml:"goos" toml:"goos"`
	GOARCH  string `json:"goarch" yaml:"goarch" toml:"goarch"`
	Runtime string `json:"runtime" yaml:"runtime" toml:"runtime"`

	Float   FloatLayout `json:"float" yaml:"float" toml:"float"`
	Double  FloatLayout `json:"double" yaml:"double" toml:"double"`
	LDouble FloatLayout `json:"ldouble" yaml:"ldouble" toml:"ldouble"`

	// LDoublePrecision is the number of significant bits of the long
	// tier.
	LDoublePrecision int `json:"ldouble_precision" yaml:"ldouble_precision" toml:"ldouble_precision"`

	BigEndian  bool `json:"big_endian" yaml:"big_endian" toml:"big_endian"`
	HasIEEE754 bool `json:"has_ieee754" yaml:"has_ieee754" toml:"has_ieee754"`

	// HostBigEndian is what x/sys/cpu reports; it must agree with
	// BigEndian.
	HostBigEndian bool `json:"host_big_endian" yaml:"host_big_endian" toml:"host_big_endian"`

	// HostFMA reports a hardware fused multiply-add.
	HostFMA bool `json:"host_fma" yaml:"host_fma" toml:"host_fma"`
}

// Profile returns the build profile of the running binary.
func Profile() BuildProfile {
	return BuildProfile{
		GOOS:             runtime.GOOS,
		GOARCH:           runtime.GOARCH,
		Runtime:          runtime.Version(),
		Float:            Float32Layout,
		Double:           Float64Layout,
		LDouble:          LDoubleLayout,
		LDoublePrecision: LDoubleLayout.Precision(),
		BigEndian:        BigEndian,
		HasIEEE754:       HasIEEE754,
		HostBigEndian:    cpu.IsBigEndian,
		HostFMA:          hostFMA(),
	}
}

func hostFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasFMA
	case "arm64":
		return cpu.ARM64.HasFP
	case "s390x":
		return cpu.S390X.HasVX
	case "ppc64", "ppc64le", "riscv64", "loong64":
		return true
	default:
		return false
	}
}
