package commands

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/registry"
	"github.com/katalvlaran/stepviz/session"
)

// inputFlags are the input selection flags shared by run and play.
type inputFlags struct {
	values  string
	target  float64
	extract int
	buckets int
	length  int
}

func (f *inputFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.values, "values", "", `comma separated input, e.g. "5,3,8" (default: random)`)
	flags.Float64Var(&f.target, "target", 0, "search target, used with --values")
	flags.IntVar(&f.extract, "extract", 1, "heap extractions, used with --values")
	flags.IntVar(&f.buckets, "buckets", 0, "bucket sort bucket count (0 = config)")
	flags.IntVar(&f.length, "length", 0, "random input length (0 = config or algorithm default)")
}

// load selects id on s and, when --values was given, replaces the random
// input with the parsed one.
func (f *inputFlags) load(cmd *cobra.Command, s *session.Session, id string) error {
	if err := s.Select(id); err != nil {
		return err
	}
	if !cmd.Flags().Changed("values") {
		return nil
	}
	values, err := parseValues(f.values)
	if err != nil {
		return err
	}
	in := registry.Input{Values: values, Target: f.target, Buckets: f.buckets}
	if s.Algorithm().ID() != registry.BSTInsert {
		in.Extract = f.extract
	}

	return s.Submit(in)
}

func (f *inputFlags) options(cmd *cobra.Command) []session.Option {
	var opts []session.Option
	if cmd.Flags().Changed("buckets") {
		opts = append(opts, session.WithBuckets(f.buckets))
	}
	if cmd.Flags().Changed("length") {
		opts = append(opts, session.WithLength(f.length))
	}

	return opts
}

// parseValues parses "a,b,c". An empty string is the empty input.
func parseValues(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(input.ErrInvalidInput, "value %d %q is not a number", i, field)
		}
		out = append(out, v)
	}

	return out, nil
}
