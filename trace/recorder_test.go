package trace_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/trace"
)

func TestRecorder_SnapshotsValues(t *testing.T) {
	rec := trace.NewRecorder("test")
	work := []float64{3, 1, 2}
	buckets := [][]float64{{1}, {}}

	rec.Record(trace.Step{Values: work, Buckets: buckets, Phase: "sorting", Roles: trace.Roles{trace.Active: {0}}})
	// mutate backing storage after recording
	work[0] = 99
	buckets[0][0] = 42
	rec.Record(trace.Step{Values: work, Phase: trace.PhaseComplete})

	tr, err := rec.Finish()
	require.NoError(t, err)
	require.Equal(t, 2, tr.Len())
	assert.Equal(t, []float64{3, 1, 2}, tr.First().Values)
	assert.Equal(t, [][]float64{{1}, {}}, tr.First().Buckets)
	assert.Equal(t, []float64{99, 1, 2}, tr.Last().Values)
	assert.Equal(t, "test", tr.Algorithm())
}

func TestRecorder_FinishErrors(t *testing.T) {
	rec := trace.NewRecorder("empty")
	_, err := rec.Finish()
	assert.ErrorIs(t, err, trace.ErrEmptyTrace)

	rec = trace.NewRecorder("open")
	rec.Record(trace.Step{Values: []float64{1}, Phase: "sorting"})
	_, err = rec.Finish()
	assert.ErrorIs(t, err, trace.ErrNotTerminal)
}

func TestRecorder_StickyErrors(t *testing.T) {
	cases := []struct {
		name string
		step trace.Step
		err  error
	}{
		{"TwoRepresentations", trace.Step{Values: []float64{1}, Grid: &trace.Grid{Rows: 1, Cols: 1, Cells: []trace.Cell{trace.CellOpen}}}, trace.ErrRepresentation},
		{"GridTooFewCells", trace.Step{Grid: &trace.Grid{Rows: 2, Cols: 2, Cells: make([]trace.Cell, 3)}}, trace.ErrRepresentation},
		{"GridTooManyCells", trace.Step{Grid: &trace.Grid{Rows: 1, Cols: 1, Cells: make([]trace.Cell, 2)}}, trace.ErrRepresentation},
		{"GridNegativeSize", trace.Step{Grid: &trace.Grid{Rows: -1, Cols: -1, Cells: make([]trace.Cell, 1)}}, trace.ErrRepresentation},
		{"OriginsMismatch", trace.Step{Values: []float64{1, 2}, Origins: []int{0}}, trace.ErrOrigins},
		{"RoleOutOfRange", trace.Step{Values: []float64{1, 2}, Roles: trace.Roles{trace.Comparing: {0, 2}}}, trace.ErrRoleOutOfRange},
		{"NegativeRole", trace.Step{Values: []float64{1, 2}, Roles: trace.Roles{trace.Active: {-1}}}, trace.ErrRoleOutOfRange},
		{"BucketRole", trace.Step{Values: []float64{1}, Buckets: [][]float64{{}}, Roles: trace.Roles{trace.Bucket: {1}}}, trace.ErrRoleOutOfRange},
		{"UnknownRole", trace.Step{Values: []float64{1}, Roles: trace.Roles{"glowing": {0}}}, trace.ErrUnknownRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := trace.NewRecorder(tc.name)
			tc.step.Phase = trace.PhaseComplete
			rec.Record(tc.step)
			require.Error(t, rec.Err())

			_, err := rec.Finish()
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

func TestRecorder_SealedAfterFinish(t *testing.T) {
	rec := trace.NewRecorder("sealed")
	rec.Record(trace.Step{Values: []float64{}, Phase: trace.PhaseComplete})
	_, err := rec.Finish()
	require.NoError(t, err)

	rec.Record(trace.Step{Values: []float64{}, Phase: trace.PhaseComplete})
	assert.ErrorIs(t, rec.Err(), trace.ErrSealed)
	assert.Equal(t, 1, rec.Len())
}

func TestRecorder_TreeAndGridExtents(t *testing.T) {
	rec := trace.NewRecorder("extents")
	rec.Record(trace.Step{
		Tree:  []trace.Node{{ID: 0, Value: 5, Left: 1, Right: trace.NoChild}, {ID: 1, Value: 3, Left: trace.NoChild, Right: trace.NoChild}},
		Roles: trace.Roles{trace.Path: {0, 1}},
		Phase: "descending",
	})
	rec.Record(trace.Step{
		Grid:  &trace.Grid{Rows: 2, Cols: 2, Cells: make([]trace.Cell, 4)},
		Roles: trace.Roles{trace.Visited: {3}},
		Phase: trace.PhaseComplete,
	})
	require.NoError(t, rec.Err())

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, trace.CellOpen, last.Grid.At(1, 1))
}
