// Package distribution provides instrumented distribution sorts: counting,
// radix, bucket and pigeonhole.
package distribution

import "github.com/katalvlaran/stepviz/trace"

// Phases recorded by the adapters in this package.
const (
	PhaseCounting     trace.Phase = "counting"
	PhaseAccumulating trace.Phase = "accumulating"
	PhasePlacing      trace.Phase = "placing"
	PhaseDistribution trace.Phase = "distribution"
	PhaseSorting      trace.Phase = "sorting"
	PhaseCollection   trace.Phase = "collection"
)

// Marks set by the adapters.
const (
	MarkPlace = "place" // radix digit place (1, 10, 100, ...)
	MarkPass  = "pass"
)

// DefaultBuckets is the bucket count of Bucket when no option is given.
const DefaultBuckets = 5

// Options configures Bucket.
type Options struct {
	Buckets int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options{Buckets: DefaultBuckets}.
func DefaultOptions() Options {
	return Options{Buckets: DefaultBuckets}
}

// WithBuckets sets the bucket count used by Bucket. n < 1 is ignored.
func WithBuckets(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Buckets = n
		}
	}
}
