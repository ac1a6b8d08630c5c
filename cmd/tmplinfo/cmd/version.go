package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ryanmaguire/libtmpl-sub005/config"
)

// Version is set at link time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tmplinfo %s (%s, %s/%s, ldouble %s)\n",
				Version, runtime.Version(), runtime.GOOS, runtime.GOARCH, config.LDoubleLayout)
		},
	}
}
