package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ryanmaguire/libtmpl-sub005/mathl"
	"github.com/ryanmaguire/libtmpl-sub005/prng"
)

// ErrTolerance is returned by check when a sweep exceeds --max-ulp.
var ErrTolerance = errors.New("tmplinfo: error above tolerance")

type checkOptions struct {
	funcs   []string
	tiers   []string
	samples int
	seed    string
	maxULP  int64
}

// sweepResult is the worst error one kernel showed at one tier.
type sweepResult struct {
	name, tier string
	samples    int
	worst      uint64
	at         float64
	// nanMismatch counts inputs where exactly one of the kernel and the
	// reference returned NaN.
	nanMismatch int
}

func newCheckCmd() *cobra.Command {
	var (
		funcs, tiers string
		opts         checkOptions
	)
	c := &cobra.Command{
		Use:   "check",
		Short: "Sweep the kernels against the standard library",
		Long: `Evaluates each kernel at deterministic pseudo-random points and
reports the worst disagreement with a float64 reference, in units in the
last place of the tier (ldouble results are compared after rounding to
float64).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if opts.tiers, err = parseTiers(tiers); err != nil {
				return err
			}
			opts.funcs = kernelNames()
			if funcs != "" && funcs != "all" {
				opts.funcs = nil
				for _, f := range strings.Split(funcs, ",") {
					f = strings.TrimSpace(strings.ToLower(f))
					if _, err := lookup(f); err != nil {
						return err
					}
					opts.funcs = append(opts.funcs, f)
				}
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	c.Flags().StringVar(&funcs, "func", "all", "Comma-separated functions or all")
	c.Flags().StringVarP(&tiers, "tier", "t", "all", "Comma-separated tiers (float,double,ldouble) or all")
	c.Flags().IntVarP(&opts.samples, "samples", "n", 100000, "Samples per function and tier")
	c.Flags().StringVar(&opts.seed, "seed", "tmplinfo", "Seed of the input generator")
	c.Flags().Int64Var(&opts.maxULP, "max-ulp", -1, "Fail when a worst error exceeds this many ulps (-1 disables)")
	return c
}

func runCheck(ctx context.Context, w io.Writer, opts checkOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.samples <= 0 {
		return fmt.Errorf("tmplinfo: samples must be positive, got %d", opts.samples)
	}
	start := time.Now()

	results := make([]sweepResult, len(opts.funcs)*len(opts.tiers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range opts.funcs {
		k, err := lookup(name)
		if err != nil {
			return err
		}
		for j, tier := range opts.tiers {
			idx, name, tier := i*len(opts.tiers)+j, name, tier
			g.Go(func() error {
				r, err := sweep(ctx, name, k, tier, opts.samples, opts.seed)
				results[idx] = r
				return err
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	slog.Debug("check done", "sweeps", len(results), "elapsed", time.Since(start))

	p := message.NewPrinter(language.English)
	var failed []string
	for _, r := range results {
		p.Fprintf(w, "%-7s %-8s %9d samples  worst %6d ulp at %-24.17g nan mismatches %d\n",
			r.name, r.tier, r.samples, r.worst, r.at, r.nanMismatch)
		if opts.maxULP >= 0 && (r.worst > uint64(opts.maxULP) || r.nanMismatch > 0) {
			failed = append(failed, r.name+"/"+r.tier)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrTolerance, strings.Join(failed, ", "))
	}
	return nil
}

func sweep(ctx context.Context, name string, k kernel, tier string, n int, seed string) (sweepResult, error) {
	rng := prng.NewString(seed + "/" + name + "/" + tier)
	res := sweepResult{name: name, tier: tier, samples: n}
	for i := 0; i < n; i++ {
		if i&0xFFF == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		x := draw(rng, k)

		var (
			d          uint64
			gotN, refN bool
		)
		switch tier {
		case tierFloat:
			x32 := float32(x)
			x = float64(x32)
			got, want := k.f32(x32), float32(k.ref(x))
			gotN, refN = got != got, want != want
			d = ulps32(got, want)
		case tierDouble:
			got, want := k.f64(x), k.ref(x)
			gotN, refN = math.IsNaN(got), math.IsNaN(want)
			d = ulps64(got, want)
		case tierLong:
			got, want := mathl.Float64(k.long(mathl.FromFloat64(x))), k.ref(x)
			gotN, refN = math.IsNaN(got), math.IsNaN(want)
			d = ulps64(got, want)
		default:
			return res, fmt.Errorf("%w %q", ErrUnknownTier, tier)
		}
		switch {
		case gotN != refN:
			res.nanMismatch++
		case gotN:
		case d > res.worst:
			res.worst, res.at = d, x
		}
	}
	return res, nil
}

func draw(rng *prng.SHAKE256x4, k kernel) float64 {
	if k.emin < k.emax {
		return rng.Float64Exp(k.emin, k.emax)
	}
	return rng.Uniform(k.lo, k.hi)
}

// Distance in representable values; both zeros count as the same point.
func ulps64(a, b float64) uint64 {
	ord := func(x float64) int64 {
		v := math.Float64bits(x)
		if v>>63 != 0 {
			return -int64(v &^ (1 << 63))
		}
		return int64(v)
	}
	d := ord(a) - ord(b)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}

func ulps32(a, b float32) uint64 {
	ord := func(x float32) int64 {
		v := math.Float32bits(x)
		if v>>31 != 0 {
			return -int64(v &^ (1 << 31))
		}
		return int64(v)
	}
	d := ord(a) - ord(b)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}
