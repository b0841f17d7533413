// Package maze defines the wall grid, options and sentinel errors of the
// depth-first maze search adapter.
package maze

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stepviz/trace"
)

// Sentinel errors for grid construction and search.
var (
	// ErrEmptyGrid indicates the wall mask has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNilGrid is returned when DFS receives a nil *Grid.
	ErrNilGrid = errors.New("maze: grid is nil")
)

// Phases recorded by DFS.
const (
	PhaseExploring    trace.Phase = "exploring"
	PhaseBacktracking trace.Phase = "backtracking"
	PhasePath         trace.Phase = "path"
)

// Point addresses one cell.
type Point struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Option configures DFS.
type Option func(*Options)

// Options holds the configurable parameters of DFS.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on the first visit of every cell.
	// Returning an error aborts the search with that error.
	OnVisit func(p Point) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a first-visit hook.
func WithOnVisit(fn func(p Point) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result summarizes one DFS run.
type Result struct {
	Found   bool
	Path    []Point // start..end inclusive when Found
	Visited int     // cells visited
}
