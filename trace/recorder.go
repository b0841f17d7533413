package trace

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Recorder is the append-only sink an adapter writes Steps into while it runs.
//
// Record deep-copies every slice and map of the Step it receives, so an adapter
// may keep mutating its working storage after recording. The first invariant
// violation is kept as a sticky error and reported by Finish; Record itself
// never fails, which keeps adapter bodies free of error plumbing.
//
// A Recorder is used by one adapter run on one goroutine and is not safe for
// concurrent use.
type Recorder struct {
	algorithm string
	steps     []Step
	err       error
	sealed    bool
}

// NewRecorder returns an empty Recorder. The algorithm label is carried over
// to the finished Trace.
func NewRecorder(algorithm string) *Recorder {
	return &Recorder{algorithm: algorithm}
}

// Record appends a frozen copy of s.
func (r *Recorder) Record(s Step) {
	if r.sealed {
		r.fail(ErrSealed)

		return
	}
	if err := validate(&s); err != nil {
		r.fail(errors.Wrapf(err, "step %d", len(r.steps)))
	}
	r.steps = append(r.steps, s.Clone())
}

// Len returns the number of Steps recorded so far.
func (r *Recorder) Len() int {
	return len(r.steps)
}

// Last returns a copy of the most recently recorded Step.
func (r *Recorder) Last() (Step, bool) {
	if len(r.steps) == 0 {
		return Step{}, false
	}

	return r.steps[len(r.steps)-1].Clone(), true
}

// Err returns the sticky recording error, if any.
func (r *Recorder) Err() error {
	return r.err
}

// Finish seals the recorder and returns the finished Trace.
// Errors:
//   - the sticky error of the first invalid Record
//   - ErrEmptyTrace when nothing was recorded
//   - ErrNotTerminal when the last Step is not PhaseComplete
func (r *Recorder) Finish() (*Trace, error) {
	r.sealed = true
	if r.err != nil {
		return nil, r.err
	}
	if len(r.steps) == 0 {
		return nil, ErrEmptyTrace
	}
	last := r.steps[len(r.steps)-1]
	if !last.Terminal() {
		return nil, errors.Wrapf(ErrNotTerminal, "phase %q", last.Phase)
	}

	return &Trace{algorithm: r.algorithm, steps: slices.Clip(r.steps)}, nil
}

func (r *Recorder) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// validate checks representation exclusivity, origins length and role extents.
func validate(s *Step) error {
	reps := 0
	if s.Values != nil {
		reps++
	}
	if s.Tree != nil {
		reps++
	}
	if s.Grid != nil {
		reps++
	}
	if reps > 1 {
		return ErrRepresentation
	}
	if g := s.Grid; g != nil && (g.Rows < 0 || g.Cols < 0 || len(g.Cells) != g.Rows*g.Cols) {
		return errors.Wrapf(ErrRepresentation, "%d cells for a %dx%d grid", len(g.Cells), g.Rows, g.Cols)
	}
	if s.Origins != nil && len(s.Origins) != len(s.Values) {
		return errors.Wrapf(ErrOrigins, "%d origins for %d values", len(s.Origins), len(s.Values))
	}

	primary := len(s.Values)
	switch {
	case s.Tree != nil:
		primary = len(s.Tree)
	case s.Grid != nil:
		primary = s.Grid.Rows * s.Grid.Cols
	}
	aux := max(len(s.Buckets), len(s.Counts))

	for role, positions := range s.Roles {
		if !slices.Contains(AllRoles, role) {
			return errors.Wrapf(ErrUnknownRole, "%q", role)
		}
		extent := primary
		if role == Bucket {
			extent = aux
		}
		for _, p := range positions {
			if p < 0 || p >= extent {
				return errors.Wrapf(ErrRoleOutOfRange, "%s position %d not in [0,%d)", role, p, extent)
			}
		}
	}

	return nil
}
