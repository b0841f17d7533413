package registry

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/maze"
	"github.com/katalvlaran/stepviz/trace"
)

// Registry is an ordered table of algorithms keyed by ID. It is not safe for
// concurrent Register calls; lookups on a fully built Registry are.
type Registry struct {
	byID  map[string]Algorithm
	order []string
}

// New returns a Registry holding algs in order.
//
// Errors: ErrNilAlgorithm, ErrDuplicateAlgorithm.
func New(algs ...Algorithm) (*Registry, error) {
	r := &Registry{byID: make(map[string]Algorithm, len(algs))}
	for _, a := range algs {
		if err := r.Register(a); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register appends a to the table.
func (r *Registry) Register(a Algorithm) error {
	if a == nil {
		return ErrNilAlgorithm
	}
	if _, ok := r.byID[a.ID()]; ok {
		return errors.Wrapf(ErrDuplicateAlgorithm, "%q", a.ID())
	}
	r.byID[a.ID()] = a
	r.order = append(r.order, a.ID())

	return nil
}

// Get returns the algorithm registered under id.
func (r *Registry) Get(id string) (Algorithm, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", id)
	}

	return a, nil
}

// List returns the algorithms in registration order.
func (r *Registry) List() []Algorithm {
	out := make([]Algorithm, len(r.order))
	for i, id := range r.order {
		out[i] = r.byID[id]
	}

	return out
}

// IDs returns the registered IDs in registration order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.order)
}

// Len returns the number of registered algorithms.
func (r *Registry) Len() int {
	return len(r.order)
}

// Run executes alg on in and returns the finished Trace.
//
// Errors: the adapter's validation error (input.ErrInvalidInput and
// friends), or the recorder error when the adapter broke a Step invariant.
func Run(alg Algorithm, in Input) (*trace.Trace, error) {
	rec := trace.NewRecorder(alg.ID())
	if err := alg.Run(in, rec); err != nil {
		return nil, errors.Wrapf(err, "%s", alg.ID())
	}
	tr, err := rec.Finish()
	if err != nil {
		return nil, errors.Wrapf(err, "%s: finish trace", alg.ID())
	}

	return tr, nil
}

// Generate draws a random Input for alg from p (normally alg.Profile(), with
// caller overrides). Search targets are drawn from the generated array;
// traversal runs from the top-left to the bottom-right cell; heap inputs
// extract once.
//
// Errors: input.ErrBadProfile.
func Generate(alg Algorithm, g *input.Generator, p input.Profile) (Input, error) {
	if alg.Family() == Traversal {
		start := maze.Point{}
		end := maze.Point{Row: p.Rows - 1, Col: p.Cols - 1}
		grid, err := maze.Generate(g, p, start, end)
		if err != nil {
			return Input{}, err
		}

		return Input{Grid: grid, Start: start, End: end}, nil
	}

	values, err := g.Values(p)
	if err != nil {
		return Input{}, err
	}
	in := Input{Values: values}
	switch alg.Family() {
	case Search:
		in.Target = g.Pick(values)
	case Structural:
		if alg.ID() != BSTInsert {
			in.Extract = 1
		}
	}

	return in, nil
}
