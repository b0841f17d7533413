package commands

import (
	"fmt"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/registry"
	"github.com/katalvlaran/stepviz/render"
)

// ErrVerifyFailed is returned by verify when any run breaks a property.
var ErrVerifyFailed = errors.New("verify: property violations found")

func newVerifyCommand(a *app) *cobra.Command {
	var (
		seeds   int
		workers int
		ids     []string
		quiet   bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check trace properties on many random inputs",
		Long: `Verify runs every algorithm (or --algorithms) on --seeds random inputs
and checks each trace: one operation per step, a first step equal to the
input, a sorted stable permutation for sorts, a consistent outcome for
searches and traversals. Algorithms are checked in parallel.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seeds < 1 || workers < 1 {
				return errors.Newf("--seeds and --workers must be positive, got %d and %d", seeds, workers)
			}
			algs := a.reg.List()
			if len(ids) > 0 {
				algs = algs[:0:0]
				for _, id := range ids {
					alg, err := a.reg.Get(id)
					if err != nil {
						return err
					}
					algs = append(algs, alg)
				}
			}

			var bar *progressbar.ProgressBar
			if !quiet {
				bar = progressbar.NewOptions(len(algs)*seeds,
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription("verifying"),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}

			rows := make([]render.Check, len(algs))
			base := input.NewGenerator(a.cfg.Input.Seed)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)
			for i, alg := range algs {
				i, alg := i, alg
				gen := base.Derive(uint64(i))
				g.Go(func() error {
					row := &rows[i]
					row.Algorithm = alg.ID()
					for n := 0; n < seeds; n++ {
						if err := ctx.Err(); err != nil {
							return err
						}
						steps, err := a.check(alg, gen)
						row.Runs++
						row.Steps += steps
						if err != nil {
							row.Failures++
							if row.First == nil {
								row.First = err
							}
						}
						if bar != nil {
							_ = bar.Add(1)
						}
					}

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			if bar != nil {
				_ = bar.Finish()
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.Checks(rows))
			var failures int
			for _, r := range rows {
				failures += r.Failures
			}
			if failures > 0 {
				return errors.Wrapf(ErrVerifyFailed, "%d of %d runs", failures, len(algs)*seeds)
			}

			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&seeds, "seeds", 20, "random inputs per algorithm")
	flags.IntVar(&workers, "workers", runtime.NumCPU(), "algorithms checked in parallel")
	flags.StringSliceVar(&ids, "algorithms", nil, "check only these algorithm IDs")
	flags.BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")

	return cmd
}

// check generates one input for alg, runs it and verifies the trace.
func (a *app) check(alg registry.Algorithm, gen *input.Generator) (int, error) {
	in, err := registry.Generate(alg, gen, alg.Profile())
	if err != nil {
		return 0, err
	}
	tr, err := registry.Run(alg, in)
	if err != nil {
		a.metrics.InputRejected(alg.ID())

		return 0, err
	}
	a.metrics.TraceBuilt(alg.ID(), tr.Len())
	if err = registry.Verify(alg, in, tr); err != nil {
		a.log.WithField("algorithm", alg.ID()).WithError(err).Warn("verify: property violated")

		return tr.Len(), err
	}

	return tr.Len(), nil
}
