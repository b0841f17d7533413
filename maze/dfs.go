package maze

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/trace"
)

// walker encapsulates the state of one DFS run.
type walker struct {
	grid   *Grid
	opts   Options
	rec    *trace.Recorder
	cells  *trace.Grid
	end    Point
	parent map[Point]Point
	found  bool
	visits int
}

// DFS searches a path from start to end depth first, exploring neighbors in
// the order down, right, up, left. The whole search is recorded eagerly:
//
//   - the unmodified grid;
//   - one Step per first visit of a cell (CellVisited);
//   - one Step per dead-end cell left behind (CellBacktracked);
//   - when end is reached, one Step per cell of the reconstructed path,
//     from start to end (CellPath);
//   - a terminal Step whose Outcome carries the row-major index of end,
//     or -1 when no path exists.
//
// Errors:
//
//   - ErrNilGrid if g is nil.
//   - input.ErrInvalidInput if start or end is out of bounds or a wall.
//   - the context error if Options.Ctx is done; the recorder is then incomplete.
//   - any error returned by OnVisit.
//
// Complexity: O(rows·cols) time, recursion depth and memory.
func DFS(rec *trace.Recorder, g *Grid, start, end Point, opts ...Option) (Result, error) {
	// 1. Validate input grid and endpoints
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := g.checkEndpoint("start", start); err != nil {
		return Result{}, err
	}
	if err := g.checkEndpoint("end", end); err != nil {
		return Result{}, err
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Record the unmodified grid
	w := &walker{
		grid:   g,
		opts:   o,
		rec:    rec,
		cells:  g.Snapshot(),
		end:    end,
		parent: make(map[Point]Point),
	}
	w.emit(PhaseExploring, fmt.Sprintf("search %s -> %s", start, end),
		trace.Roles{trace.Active: {g.Index(start)}, trace.Path: {g.Index(end)}})

	// 4. Explore
	if err := w.visit(start); err != nil {
		return Result{}, err
	}

	// 5. Reconstruct and mark the path
	res := Result{Found: w.found, Visited: w.visits}
	out := trace.Outcome{Found: w.found, Index: -1}
	var onPath []int
	if w.found {
		out.Index = g.Index(end)
		res.Path = w.path(start)
		for _, p := range res.Path {
			idx := g.Index(p)
			w.cells.Cells[idx] = trace.CellPath
			onPath = append(onPath, idx)
			w.emit(PhasePath, fmt.Sprintf("path step %d: %s", len(onPath), p),
				trace.Roles{trace.Path: slices.Clone(onPath)})
		}
	}

	// 6. Terminal
	msg := fmt.Sprintf("no path from %s to %s after %d visits", start, end, w.visits)
	if w.found {
		msg = fmt.Sprintf("path of %d cells from %s to %s", len(res.Path), start, end)
	}
	step := trace.Step{Grid: w.cells, Phase: trace.PhaseComplete, Message: msg, Outcome: &out}
	if len(onPath) > 0 {
		step.Roles = trace.Roles{trace.Path: onPath}
	}
	rec.Record(step)

	return res, nil
}

// visit marks p visited and recurses into unvisited open neighbors until end
// is found. A cell whose neighbors are exhausted without reaching end is
// marked backtracked.
func (w *walker) visit(p Point) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return errors.Wrap(w.opts.Ctx.Err(), "maze: dfs")
	default:
	}

	// 2. Mark visited
	idx := w.grid.Index(p)
	w.cells.Cells[idx] = trace.CellVisited
	w.visits++
	w.emit(PhaseExploring, fmt.Sprintf("visit %s", p), trace.Roles{trace.Visited: {idx}})
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(p); err != nil {
			return errors.Wrapf(err, "maze: OnVisit hook for %s", p)
		}
	}
	if p == w.end {
		w.found = true

		return nil
	}

	// 3. Explore neighbors in fixed order
	for _, n := range w.grid.Neighbors(p) {
		if w.cells.Cells[w.grid.Index(n)] != trace.CellOpen {
			continue
		}
		w.parent[n] = p
		if err := w.visit(n); err != nil {
			return err
		}
		if w.found {
			return nil
		}
	}

	// 4. Dead end
	w.cells.Cells[idx] = trace.CellBacktracked
	w.emit(PhaseBacktracking, fmt.Sprintf("dead end at %s, backtrack", p), trace.Roles{trace.Discarded: {idx}})

	return nil
}

func (g *Grid) checkEndpoint(name string, p Point) error {
	if !g.InBounds(p) {
		return errors.Wrapf(input.ErrInvalidInput, "%s %s outside %dx%d grid", name, p, g.rows, g.cols)
	}
	if g.Wall(p) {
		return errors.Wrapf(input.ErrInvalidInput, "%s %s is a wall", name, p)
	}

	return nil
}

// path walks parent links from end back to start and returns start..end.
func (w *walker) path(start Point) []Point {
	out := []Point{w.end}
	for p := w.end; p != start; {
		p = w.parent[p]
		out = append(out, p)
	}
	slices.Reverse(out)

	return out
}

func (w *walker) emit(phase trace.Phase, msg string, roles trace.Roles) {
	w.rec.Record(trace.Step{Grid: w.cells, Roles: roles, Phase: phase, Message: msg})
}
