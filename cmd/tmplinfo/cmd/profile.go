package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ryanmaguire/libtmpl-sub005/config"
)

func newProfileCmd() *cobra.Command {
	var format string
	c := &cobra.Command{
		Use:   "profile",
		Short: "Show the floating-point build profile",
		Long: `Shows the storage layout of each precision tier, the long-double
precision and the host facts reported by golang.org/x/sys/cpu.

Formats: text, json, yaml, toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeProfile(cmd.OutOrStdout(), config.Profile(), format)
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "text", "Output format (text|json|yaml|toml)")
	return c
}

func writeProfile(w io.Writer, p config.BuildProfile, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		return writeProfileText(w, p)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(p)
	}
	return fmt.Errorf("%w %q", ErrFormat, format)
}

func writeProfileText(w io.Writer, p config.BuildProfile) error {
	_, err := fmt.Fprintf(w, `Build profile
=============
Target:      %s/%s (%s)

Tiers:
  float      %-18s %3d-bit significand
  double     %-18s %3d-bit significand
  ldouble    %-18s %3d-bit significand

Byte order:  %s
IEEE-754:    %t
Host:        big-endian=%t fma=%t
`,
		p.GOOS, p.GOARCH, p.Runtime,
		p.Float, p.Float.Precision(),
		p.Double, p.Double.Precision(),
		p.LDouble, p.LDoublePrecision,
		endianName(p.BigEndian), p.HasIEEE754,
		p.HostBigEndian, p.HostFMA)
	return err
}

func endianName(big bool) string {
	if big {
		return "big-endian"
	}
	return "little-endian"
}
