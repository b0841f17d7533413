// Package trace defines the Step snapshot model, the append-only Recorder
// that algorithm adapters write into, and the immutable Trace handed to playback.
package trace

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for recording and trace construction.
var (
	// ErrEmptyTrace is returned by Finish when no Step was recorded.
	ErrEmptyTrace = errors.New("trace: no steps recorded")

	// ErrNotTerminal is returned by Finish when the last Step is not in PhaseComplete.
	ErrNotTerminal = errors.New("trace: last step is not terminal")

	// ErrSealed is recorded when Record is called after Finish.
	ErrSealed = errors.New("trace: recorder already finished")

	// ErrRepresentation indicates a Step carrying more than one primary
	// representation, or a Grid whose Cells do not fill Rows*Cols.
	ErrRepresentation = errors.New("trace: step has an invalid primary representation")

	// ErrRoleOutOfRange indicates a role position outside the current extent.
	ErrRoleOutOfRange = errors.New("trace: role position out of range")

	// ErrUnknownRole indicates a role tag outside the closed role set.
	ErrUnknownRole = errors.New("trace: unknown role")

	// ErrOrigins indicates Origins and Values of different lengths.
	ErrOrigins = errors.New("trace: origins do not match values")
)

// Role is a presentation hint attached to positions of a Step.
type Role string

// The closed role set. Bucket indexes Step.Buckets (or Step.Counts); every
// other role indexes the primary representation of the Step.
const (
	Comparing Role = "comparing"
	Swapping  Role = "swapping"
	Active    Role = "active"
	Pivot     Role = "pivot"
	Sorted    Role = "sorted"
	Discarded Role = "discarded"
	Visited   Role = "visited"
	Path      Role = "path"
	Bucket    Role = "bucket"
)

// AllRoles lists the closed role set in rendering priority order.
var AllRoles = []Role{Swapping, Comparing, Pivot, Active, Path, Visited, Sorted, Discarded, Bucket}

// Roles maps a role to the positions currently holding it.
type Roles map[Role][]int

// Has reports whether position i holds role r.
func (rs Roles) Has(r Role, i int) bool {
	for _, p := range rs[r] {
		if p == i {
			return true
		}
	}

	return false
}

// Phase identifies the algorithm stage a Step belongs to.
type Phase string

// PhaseComplete is the terminal phase of every trace.
const PhaseComplete Phase = "complete"

// Outcome is attached to terminal steps of search and traversal adapters.
type Outcome struct {
	Found bool `json:"found" yaml:"found"`
	// Index is the found position (sequence index or row-major cell), -1 otherwise.
	Index int `json:"index" yaml:"index"`
}

// Node is one binary tree node in an arena snapshot. ID is its index in Step.Tree.
type Node struct {
	ID    int     `json:"id" yaml:"id"`
	Value float64 `json:"value" yaml:"value"`
	Left  int     `json:"left" yaml:"left"`
	Right int     `json:"right" yaml:"right"`
}

// NoChild marks an absent Left/Right link.
const NoChild = -1

// Cell is the state of one grid cell.
type Cell int

// Cell states.
const (
	CellOpen Cell = iota
	CellWall
	CellVisited
	CellBacktracked
	CellPath
)

// String returns a short name of the cell state.
func (c Cell) String() string {
	switch c {
	case CellOpen:
		return "open"
	case CellWall:
		return "wall"
	case CellVisited:
		return "visited"
	case CellBacktracked:
		return "backtracked"
	case CellPath:
		return "path"
	default:
		return "unknown"
	}
}

// Grid is a row-major snapshot of a traversal grid.
type Grid struct {
	Rows  int    `json:"rows" yaml:"rows"`
	Cols  int    `json:"cols" yaml:"cols"`
	Cells []Cell `json:"cells" yaml:"cells"`
}

// At returns the state of cell (row, col).
func (g *Grid) At(row, col int) Cell {
	return g.Cells[row*g.Cols+col]
}

// Step is one recorded instant of algorithm execution.
//
// Exactly one primary representation is used per algorithm family:
// Values for sequences (with Origins for sort and search adapters),
// Tree for binary search trees, Grid for traversals.
type Step struct {
	Values  []float64   `json:"values,omitempty" yaml:"values,omitempty"`
	Origins []int       `json:"origins,omitempty" yaml:"origins,omitempty"`
	Tree    []Node      `json:"tree,omitempty" yaml:"tree,omitempty"`
	Grid    *Grid       `json:"grid,omitempty" yaml:"grid,omitempty"`
	Buckets [][]float64 `json:"buckets,omitempty" yaml:"buckets,omitempty"`
	Counts  []int       `json:"counts,omitempty" yaml:"counts,omitempty"`
	Output  []float64   `json:"output,omitempty" yaml:"output,omitempty"`

	Roles   Roles          `json:"roles,omitempty" yaml:"roles,omitempty"`
	Marks   map[string]int `json:"marks,omitempty" yaml:"marks,omitempty"`
	Phase   Phase          `json:"phase" yaml:"phase"`
	Message string         `json:"message" yaml:"message"`
	Outcome *Outcome       `json:"outcome,omitempty" yaml:"outcome,omitempty"`
}

// Terminal reports whether s is in PhaseComplete.
func (s Step) Terminal() bool {
	return s.Phase == PhaseComplete
}

// Mark returns the named annotation and whether it is set.
func (s Step) Mark(name string) (int, bool) {
	v, ok := s.Marks[name]

	return v, ok
}

// Item is one element of a working sequence together with the input
// position it originated from.
type Item struct {
	Value  float64
	Origin int
}

// Items wraps values into Items, numbering origins by input position.
func Items(values []float64) []Item {
	out := make([]Item, len(values))
	for i, v := range values {
		out[i] = Item{Value: v, Origin: i}
	}

	return out
}

// Split unzips items into fresh value and origin slices.
func Split(items []Item) ([]float64, []int) {
	vals := make([]float64, len(items))
	origins := make([]int, len(items))
	for i, it := range items {
		vals[i] = it.Value
		origins[i] = it.Origin
	}

	return vals, origins
}

// ItemValues returns the values of items in order.
func ItemValues(items []Item) []float64 {
	vals := make([]float64, len(items))
	for i, it := range items {
		vals[i] = it.Value
	}

	return vals
}
