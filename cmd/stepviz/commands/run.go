package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/render"
)

func newRunCommand(a *app) *cobra.Command {
	var (
		in     inputFlags
		format string
		all    bool
		plot   bool
	)
	cmd := &cobra.Command{
		Use:   "run <algorithm>",
		Short: "Record one execution and print its trace",
		Long: `Run records one execution of the algorithm on random input, or on
--values, and prints the final step and a per-phase summary. With --all
every step is printed; --format json or yaml exports the whole trace.`,
		Example: `  stepviz run bubble --values 5,3,8,4,2
  stepviz run binary-search --values 1,3,5,7,9 --target 7 --all
  stepviz run radix --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.session(in.options(cmd)...)
			defer s.Close()
			if err := in.load(cmd, s, args[0]); err != nil {
				return err
			}
			tr := s.Trace()
			out := cmd.OutOrStdout()

			if format != "text" {
				data, err := render.Export(tr, format)
				if err != nil {
					return err
				}
				if len(data) > 0 && data[len(data)-1] != '\n' {
					data = append(data, '\n')
				}
				_, err = out.Write(data)

				return err
			}

			if all {
				for i, st := range tr.Steps() {
					fmt.Fprintln(out, a.renderer.Step(st, i, tr.Len()))
				}
			} else {
				fmt.Fprintln(out, a.renderer.Step(tr.Last(), tr.Len()-1, tr.Len()))
			}
			fmt.Fprintln(out, render.Summary(tr))
			if plot {
				if p := a.renderer.Plot(tr.Last().Values); p != "" {
					fmt.Fprintln(out, p)
				}
			}

			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&all, "all", false, "print every step")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot the final values")

	return cmd
}
