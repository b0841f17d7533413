// Package registry maps algorithm identifiers to instrumented adapters.
//
// Every adapter of the module is exposed through the single Algorithm
// capability interface: ID, presentation metadata, its default input
// Profile and Run(input, recorder). Run (the package function) turns one
// Algorithm and one Input into a finished, validated Trace.
package registry

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/maze"
	"github.com/katalvlaran/stepviz/trace"
)

// Sentinel errors for registry operations.
var (
	// ErrUnknownAlgorithm is returned by Get for an unregistered ID.
	ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")
	// ErrDuplicateAlgorithm is returned by Register for an ID already present.
	ErrDuplicateAlgorithm = errors.New("registry: duplicate algorithm")
	// ErrNilAlgorithm is returned by Register for a nil Algorithm.
	ErrNilAlgorithm = errors.New("registry: algorithm is nil")
)

// Family groups algorithms by the shape of their input and Steps.
type Family int

const (
	// Comparison sorts: Values primary, <= ordering.
	Comparison Family = iota
	// Distribution sorts: Values primary plus Buckets or Counts.
	Distribution
	// Search over a sequence, terminal Outcome.
	Search
	// Structural operations: Tree or heap array primary.
	Structural
	// Traversal of a grid, terminal Outcome.
	Traversal
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Comparison:
		return "comparison"
	case Distribution:
		return "distribution"
	case Search:
		return "search"
	case Structural:
		return "structural"
	case Traversal:
		return "traversal"
	default:
		return "unknown"
	}
}

// Input is the union of every family's input. Fields not used by a family
// are ignored.
type Input struct {
	Values []float64 // sequence families and structural inserts
	Target float64   // Search

	Grid       *maze.Grid // Traversal
	Start, End maze.Point // Traversal

	Extract int // heap extractions after the inserts
	Buckets int // Bucket sort bucket count; 0 selects the default
}

// Algorithm is the capability interface of one instrumented adapter.
type Algorithm interface {
	// ID is the stable registry key, e.g. "bubble" or "binary-search".
	ID() string
	// Name is the display name.
	Name() string
	Family() Family
	// Stable reports whether equal values keep their input order.
	Stable() bool
	// Profile is the default random input shape.
	Profile() input.Profile
	// Run validates in and records the full execution into rec. On error
	// nothing usable has been recorded.
	Run(in Input, rec *trace.Recorder) error
}
