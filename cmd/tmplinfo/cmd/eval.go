package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ryanmaguire/libtmpl-sub005/config"
	"github.com/ryanmaguire/libtmpl-sub005/ieee754"
	"github.com/ryanmaguire/libtmpl-sub005/mathl"
)

func newEvalCmd() *cobra.Command {
	var (
		tiers string
		bits  bool
	)
	c := &cobra.Command{
		Use:   "eval <func> <x>",
		Short: "Evaluate a kernel at one point",
		Long: `Evaluates a kernel at x for each selected tier. The long-double
argument is the float64 nearest to x, widened exactly.

Functions: abs, floor, trunc, modtwo, exp, cbrt, asin, sind, cosd.`,
		Example: `  tmplinfo eval cbrt 27
  tmplinfo eval sind --tier double -- -30`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := lookup(args[0])
			if err != nil {
				return err
			}
			ts, err := parseTiers(tiers)
			if err != nil {
				return err
			}
			return runEval(cmd.OutOrStdout(), args[0], k, args[1], ts, bits)
		},
	}
	c.Flags().StringVarP(&tiers, "tier", "t", "all", "Comma-separated tiers (float,double,ldouble) or all")
	c.Flags().BoolVarP(&bits, "bits", "b", false, "Also print the stored bytes and class of each result")
	return c
}

func runEval(w io.Writer, name string, k kernel, arg string, tiers []string, bits bool) error {
	for _, t := range tiers {
		var (
			text string
			l    config.FloatLayout
			raw  ieee754.Raw
		)
		switch t {
		case tierFloat:
			x, err := strconv.ParseFloat(arg, 32)
			if err != nil && !isRange(err) {
				return fmt.Errorf("tmplinfo: malformed number %q: %w", arg, err)
			}
			y := k.f32(float32(x))
			text = strconv.FormatFloat(float64(y), 'g', -1, 32)
			l, raw = config.Float32Layout, ieee754.Float32Raw(y)
		case tierDouble:
			x, err := strconv.ParseFloat(arg, 64)
			if err != nil && !isRange(err) {
				return fmt.Errorf("tmplinfo: malformed number %q: %w", arg, err)
			}
			y := k.f64(x)
			text = strconv.FormatFloat(y, 'g', -1, 64)
			l, raw = config.Float64Layout, ieee754.Float64Raw(y)
		case tierLong:
			x, err := strconv.ParseFloat(arg, 64)
			if err != nil && !isRange(err) {
				return fmt.Errorf("tmplinfo: malformed number %q: %w", arg, err)
			}
			y := k.long(mathl.FromFloat64(x))
			text = "~" + strconv.FormatFloat(mathl.Float64(y), 'g', -1, 64)
			l, raw = mathl.Layout, mathl.Raw(y)
		}
		slog.Debug("eval", "func", name, "tier", t, "layout", l)

		fmt.Fprintf(w, "%-8s %s(%s) = %s\n", t, name, arg, text)
		if !bits {
			continue
		}
		b, err := ieee754.AppendRaw(nil, l, raw)
		if err != nil {
			return err
		}
		hi, _ := ieee754.Decompose(l, raw)
		fmt.Fprintf(w, "%-8s   %s %s [%s]\n", "", l, hex.EncodeToString(b), ieee754.Classify(l, hi))
	}
	return nil
}

// ParseFloat returns ±Inf together with a range error on overflow;
// that value is a valid input.
func isRange(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
