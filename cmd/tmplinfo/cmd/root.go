// Package cmd implements the tmplinfo command line: it reports the
// numeric build profile, evaluates the kernels of each precision tier on
// the command line and sweeps them against the standard library.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "tmplinfo",
		Short: "Inspect the floating-point build profile and numeric kernels",
		Long: `tmplinfo reports the floating-point layouts this binary was built
for and evaluates the numeric kernels at each precision tier.

Tiers:
  float    - binary32 kernels (math32)
  double   - binary64 kernels (math64)
  ldouble  - long-double kernels (mathl), layout fixed by build tags`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(h))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(newProfileCmd(), newEvalCmd(), newCheckCmd(), newVersionCmd())
	return root
}

// Execute runs the command tree on os.Args.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
