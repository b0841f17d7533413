package maze_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/maze"
	"github.com/katalvlaran/stepviz/trace"
)

func mustParse(t *testing.T, s string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(s)
	require.NoError(t, err)

	return g
}

func TestNewGrid_Errors(t *testing.T) {
	_, err := maze.NewGrid(nil)
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)
	_, err = maze.NewGrid([][]bool{{}})
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)
	_, err = maze.NewGrid([][]bool{{false, true}, {false}})
	assert.ErrorIs(t, err, maze.ErrNonRectangular)
	_, err = maze.Parse("..x\n...")
	assert.ErrorIs(t, err, input.ErrInvalidInput)
}

func TestNewGrid_DeepCopy(t *testing.T) {
	walls := [][]bool{{false, false}, {false, false}}
	g, err := maze.NewGrid(walls)
	require.NoError(t, err)
	walls[0][1] = true
	assert.False(t, g.Wall(maze.Point{Row: 0, Col: 1}))
	assert.True(t, g.Wall(maze.Point{Row: -1, Col: 0}), "out of bounds counts as wall")
}

func TestNeighbors_Order(t *testing.T) {
	g := mustParse(t, `
...
...
...`)
	got := g.Neighbors(maze.Point{Row: 1, Col: 1})
	assert.Equal(t, []maze.Point{{Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}, got)
}

func TestDFS_FindsPath(t *testing.T) {
	g := mustParse(t, `
..#
#..
##.`)
	rec := trace.NewRecorder("maze")
	res, err := maze.DFS(rec, g, maze.Point{}, maze.Point{Row: 2, Col: 2})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []maze.Point{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}}, res.Path)

	tr, err := rec.Finish()
	require.NoError(t, err)
	d, _ := tr.MaxChanges()
	assert.LessOrEqual(t, d, 1)

	last := tr.Last()
	require.NotNil(t, last.Outcome)
	assert.Equal(t, trace.Outcome{Found: true, Index: 8}, *last.Outcome)
	assert.Equal(t, trace.CellPath, last.Grid.At(1, 1))
	assert.Equal(t, trace.CellWall, last.Grid.At(0, 2))

	first := tr.First()
	assert.Equal(t, trace.CellOpen, first.Grid.At(0, 0))
}

func TestDFS_BacktracksDeadEnds(t *testing.T) {
	// down from (0,0) leads into a dead end at (2,0) before the path to the right
	g := mustParse(t, `
...
.#.
.#.`)
	rec := trace.NewRecorder("maze")
	res, err := maze.DFS(rec, g, maze.Point{}, maze.Point{Row: 2, Col: 2})
	require.NoError(t, err)
	require.True(t, res.Found)

	tr, err := rec.Finish()
	require.NoError(t, err)
	order, counts := tr.Phases()
	assert.Equal(t, []trace.Phase{maze.PhaseExploring, maze.PhaseBacktracking, maze.PhasePath, trace.PhaseComplete}, order)
	assert.Equal(t, 2, counts[maze.PhaseBacktracking])
	assert.Equal(t, trace.CellBacktracked, tr.Last().Grid.At(2, 0))
	assert.Equal(t, 5, counts[maze.PhasePath])
}

func TestDFS_NoPath(t *testing.T) {
	g := mustParse(t, `
.#.
##.
...`)
	rec := trace.NewRecorder("maze")
	res, err := maze.DFS(rec, g, maze.Point{}, maze.Point{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, 1, res.Visited)

	tr, err := rec.Finish()
	require.NoError(t, err)
	assert.Equal(t, trace.Outcome{Found: false, Index: -1}, *tr.Last().Outcome)
	_, counts := tr.Phases()
	assert.Zero(t, counts[maze.PhasePath])
}

func TestDFS_InvalidEndpoints(t *testing.T) {
	g := mustParse(t, `
.#
..`)
	cases := []struct {
		name       string
		start, end maze.Point
	}{
		{"StartOutside", maze.Point{Row: -1}, maze.Point{Row: 1, Col: 1}},
		{"EndOutside", maze.Point{}, maze.Point{Row: 5, Col: 5}},
		{"EndWall", maze.Point{}, maze.Point{Row: 0, Col: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := trace.NewRecorder(tc.name)
			_, err := maze.DFS(rec, g, tc.start, tc.end)
			assert.ErrorIs(t, err, input.ErrInvalidInput)
			assert.Zero(t, rec.Len())
		})
	}
	_, err := maze.DFS(trace.NewRecorder("nil"), nil, maze.Point{}, maze.Point{})
	assert.ErrorIs(t, err, maze.ErrNilGrid)
}

func TestDFS_ContextAndHook(t *testing.T) {
	g := mustParse(t, `
...
...`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := maze.DFS(trace.NewRecorder("ctx"), g, maze.Point{}, maze.Point{Row: 1, Col: 2}, maze.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))

	boom := errors.New("boom")
	var seen []maze.Point
	_, err = maze.DFS(trace.NewRecorder("hook"), g, maze.Point{}, maze.Point{Row: 1, Col: 2},
		maze.WithOnVisit(func(p maze.Point) error {
			seen = append(seen, p)
			if len(seen) == 2 {
				return boom
			}

			return nil
		}))
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []maze.Point{{0, 0}, {1, 0}}, seen)
}

func TestGenerate(t *testing.T) {
	start, end := maze.Point{}, maze.Point{Row: 9, Col: 9}
	g, err := maze.Generate(input.NewGenerator(4), input.MazeProfile, start, end)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Rows())
	assert.Equal(t, 10, g.Cols())
	assert.False(t, g.Wall(start))
	assert.False(t, g.Wall(end))

	again, err := maze.Generate(input.NewGenerator(4), input.MazeProfile, start, end)
	require.NoError(t, err)
	assert.Equal(t, g.String(), again.String())
}

func TestAdjacency(t *testing.T) {
	g := mustParse(t, `
.#
..`)
	assert.Equal(t, [][]int{{2}, nil, {3, 0}, {2}}, g.AdjacencyList())
	m := g.AdjacencyMatrix()
	assert.Equal(t, []int{0, 0, 1, 0}, m[0])
	assert.Equal(t, []int{0, 0, 0, 0}, m[1])
	assert.Equal(t, 2, g.Edges())
}
