package maze

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/trace"
)

// neighborOffsets is the fixed exploration order: down, right, up, left.
var neighborOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is an immutable rectangular wall mask.
type Grid struct {
	rows, cols int
	walls      [][]bool
}

// NewGrid builds a Grid from walls[row][col] (true = wall). The input is
// deep-copied.
//
// Errors: ErrEmptyGrid, ErrNonRectangular.
//
// Complexity: O(rows×cols).
func NewGrid(walls [][]bool) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(walls), len(walls[0])
	cp := make([][]bool, rows)
	for r, row := range walls {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrNonRectangular, "row %d has %d cells, want %d", r, len(row), cols)
		}
		cp[r] = make([]bool, cols)
		copy(cp[r], row)
	}

	return &Grid{rows: rows, cols: cols, walls: cp}, nil
}

// Parse builds a Grid from lines of '#' (wall) and '.' (open).
//
// Errors: ErrEmptyGrid, ErrNonRectangular, input.ErrInvalidInput for other characters.
func Parse(s string) (*Grid, error) {
	var walls [][]bool
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, len(line))
		for i, ch := range line {
			switch ch {
			case '#':
				row[i] = true
			case '.':
			default:
				return nil, errors.Wrapf(input.ErrInvalidInput, "maze character %q", ch)
			}
		}
		walls = append(walls, row)
	}

	return NewGrid(walls)
}

// Generate draws a random Grid for a Grid profile; start and end are never walls.
//
// Errors: input.ErrBadProfile.
func Generate(g *input.Generator, p input.Profile, start, end Point) (*Grid, error) {
	walls, err := g.Walls(p, [2]int{start.Row, start.Col}, [2]int{end.Row, end.Col})
	if err != nil {
		return nil, err
	}

	return NewGrid(walls)
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Wall reports whether p is a wall. Out-of-bounds points count as walls.
func (g *Grid) Wall(p Point) bool {
	return !g.InBounds(p) || g.walls[p.Row][p.Col]
}

// Neighbors returns the open in-bounds neighbors of p in the order down,
// right, up, left.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Point{Row: p.Row + d[0], Col: p.Col + d[1]}
		if !g.Wall(n) {
			out = append(out, n)
		}
	}

	return out
}

// Index maps p to its row-major cell index.
func (g *Grid) Index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Point converts a row-major index back to a Point.
func (g *Grid) Point(idx int) Point {
	return Point{Row: idx / g.cols, Col: idx % g.cols}
}

// Walls returns a copy of the wall mask.
func (g *Grid) Walls() [][]bool {
	out := make([][]bool, g.rows)
	for r := range g.walls {
		out[r] = append([]bool(nil), g.walls[r]...)
	}

	return out
}

// Snapshot returns the grid as a trace.Grid with every cell open or wall.
func (g *Grid) Snapshot() *trace.Grid {
	cells := make([]trace.Cell, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.walls[r][c] {
				cells[r*g.cols+c] = trace.CellWall
			}
		}
	}

	return &trace.Grid{Rows: g.rows, Cols: g.cols, Cells: cells}
}

// String renders the grid with '#' for walls and '.' for open cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.walls[r][c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
