package registry_test

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/maze"
	"github.com/katalvlaran/stepviz/registry"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/trace"
)

// stableSorts lists every sort adapter that must keep equal values in input order.
var stableSorts = map[string]bool{
	registry.Bubble: true, registry.Insertion: true, registry.Merge: true,
	registry.ThreeWayMerge: true, registry.Tim: true, registry.Counting: true,
	registry.Radix: true, registry.Bucket: true, registry.Pigeonhole: true,
}

func TestDefault_Table(t *testing.T) {
	r := registry.Default()
	assert.Equal(t, 21, r.Len())

	ids := r.IDs()
	assert.Equal(t, registry.Bubble, ids[0])
	assert.Equal(t, registry.MazeDFS, ids[len(ids)-1])

	for _, a := range r.List() {
		got, err := r.Get(a.ID())
		require.NoError(t, err)
		assert.Equal(t, a.ID(), got.ID())
		assert.NotEmpty(t, a.Name())
		assert.NoError(t, a.Profile().Validate(), a.ID())
		if a.Family() == registry.Comparison || a.Family() == registry.Distribution {
			assert.Equal(t, stableSorts[a.ID()], a.Stable(), a.ID())
		}
	}
}

func TestRegistry_Errors(t *testing.T) {
	r := registry.Default()
	_, err := r.Get("bogo")
	assert.ErrorIs(t, err, registry.ErrUnknownAlgorithm)

	algs := registry.Algorithms()
	_, err = registry.New(algs[0], algs[0])
	assert.ErrorIs(t, err, registry.ErrDuplicateAlgorithm)

	_, err = registry.New(nil)
	assert.ErrorIs(t, err, registry.ErrNilAlgorithm)

	// IDs returns a copy
	ids := r.IDs()
	ids[0] = "mutated"
	assert.Equal(t, registry.Bubble, r.IDs()[0])
}

func TestFamily_String(t *testing.T) {
	assert.Equal(t, "comparison", registry.Comparison.String())
	assert.Equal(t, "traversal", registry.Traversal.String())
	assert.Equal(t, "unknown", registry.Family(42).String())
}

func TestRun_InvalidInputRecordsNothing(t *testing.T) {
	r := registry.Default()
	cases := []struct {
		id string
		in registry.Input
	}{
		{registry.Bubble, registry.Input{Values: []float64{1, nan(), 2}}},
		{registry.Counting, registry.Input{Values: []float64{1, -2}}},
		{registry.Radix, registry.Input{Values: []float64{1.5, 2}}},
		{registry.Bucket, registry.Input{Values: []float64{0.5, 1}}},
		{registry.BinarySearch, registry.Input{Values: []float64{3, 1, 2}, Target: 1}},
		{registry.LinearSearch, registry.Input{Values: []float64{1, 2}, Target: nan()}},
		{registry.MaxHeap, registry.Input{Values: []float64{1}, Extract: -1}},
		{registry.MazeDFS, registry.Input{}},
	}
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			alg, err := r.Get(tc.id)
			require.NoError(t, err)
			rec := trace.NewRecorder(tc.id)
			err = alg.Run(tc.in, rec)
			assert.True(t, errors.Is(err, input.ErrInvalidInput), "got %v", err)
			assert.Zero(t, rec.Len())

			tr, err := registry.Run(alg, tc.in)
			assert.Nil(t, tr)
			assert.True(t, errors.Is(err, input.ErrInvalidInput))
		})
	}
}

func TestRun_EmptyInputIsTrivial(t *testing.T) {
	r := registry.Default()
	for _, a := range r.List() {
		if a.Family() == registry.Traversal {
			continue
		}
		t.Run(a.ID(), func(t *testing.T) {
			tr, err := registry.Run(a, registry.Input{})
			require.NoError(t, err)
			assert.Equal(t, 2, tr.Len())
			assert.True(t, tr.Last().Terminal())
			if a.Family() == registry.Search {
				require.NotNil(t, tr.Last().Outcome)
				assert.False(t, tr.Last().Outcome.Found)
			}
		})
	}
}

// TestRun_Properties runs every algorithm over generated inputs and checks
// the invariants shared by all traces.
func TestRun_Properties(t *testing.T) {
	r := registry.Default()
	for _, a := range r.List() {
		t.Run(a.ID(), func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				g := input.NewGenerator(seed)
				in, err := registry.Generate(a, g, a.Profile())
				require.NoError(t, err)
				tr, err := registry.Run(a, in)
				require.NoError(t, err, "seed %d", seed)
				assert.Equal(t, a.ID(), tr.Algorithm())

				d, at := tr.MaxChanges()
				require.LessOrEqual(t, d, 1, "seed %d: steps %d and %d", seed, at, at+1)
				assert.Equal(t, trace.PhaseComplete, tr.Last().Phase)

				switch a.Family() {
				case registry.Comparison, registry.Distribution:
					checkSorted(t, a, in.Values, tr.Last())
				case registry.Search:
					out := tr.Last().Outcome
					require.NotNil(t, out)
					require.True(t, out.Found, "target is drawn from the array")
					assert.Equal(t, in.Target, in.Values[out.Index])
				case registry.Traversal:
					require.NotNil(t, tr.Last().Outcome)
					require.NotNil(t, tr.Last().Grid)
				}
			}
		})
	}
}

func checkSorted(t *testing.T, a registry.Algorithm, in []float64, last trace.Step) {
	t.Helper()
	want := slices.Clone(in)
	slices.Sort(want)
	require.Equal(t, want, last.Values, "sorted permutation of the input")
	if !a.Stable() {
		return
	}
	require.Len(t, last.Origins, len(last.Values))
	for i := 1; i < len(last.Values); i++ {
		if last.Values[i] == last.Values[i-1] {
			assert.Less(t, last.Origins[i-1], last.Origins[i], "equal values out of input order at %d", i)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	r := registry.Default()
	for _, id := range []string{registry.Bubble, registry.BinarySearch, registry.MaxHeap, registry.MazeDFS} {
		a, err := r.Get(id)
		require.NoError(t, err)
		x, err := registry.Generate(a, input.NewGenerator(7), a.Profile())
		require.NoError(t, err)
		y, err := registry.Generate(a, input.NewGenerator(7), a.Profile())
		require.NoError(t, err)
		assert.Equal(t, x.Values, y.Values, id)
		assert.Equal(t, x.Target, y.Target, id)
		if id == registry.MazeDFS {
			assert.Equal(t, x.Grid.String(), y.Grid.String())
			assert.Equal(t, maze.Point{Row: 9, Col: 9}, x.End)
		}
		if id == registry.MaxHeap {
			assert.Equal(t, 1, x.Extract)
		}
	}
}

// TestDataDriven replays the scenarios in testdata/run.
//
//	run alg=<id> [target=<v>] [extract=<n>] [buckets=<k>] [start=<r,c>] [end=<r,c>]
//	<values separated by spaces, or a maze in '#'/'.' rows>
func TestDataDriven(t *testing.T) {
	r := registry.Default()
	datadriven.RunTest(t, "testdata/run", func(t *testing.T, d *datadriven.TestData) string {
		if d.Cmd != "run" {
			d.Fatalf(t, "unknown command %q", d.Cmd)
		}
		var in registry.Input
		var id string
		for _, arg := range d.CmdArgs {
			if len(arg.Vals) == 0 {
				d.Fatalf(t, "argument %s has no value", arg.Key)
			}
			v := arg.Vals[0]
			switch arg.Key {
			case "alg":
				id = v
			case "target":
				in.Target = parseFloat(t, d, v)
			case "extract":
				in.Extract = int(parseFloat(t, d, v))
			case "buckets":
				in.Buckets = int(parseFloat(t, d, v))
			case "start":
				in.Start = parsePoint(t, d, arg.Vals)
			case "end":
				in.End = parsePoint(t, d, arg.Vals)
			default:
				d.Fatalf(t, "unknown argument %s", arg.Key)
			}
		}
		a, err := r.Get(id)
		if err != nil {
			d.Fatalf(t, "%v", err)
		}
		if a.Family() == registry.Traversal {
			if in.Grid, err = maze.Parse(d.Input); err != nil {
				d.Fatalf(t, "%v", err)
			}
		} else {
			for _, f := range strings.Fields(d.Input) {
				in.Values = append(in.Values, parseFloat(t, d, f))
			}
		}

		tr, err := registry.Run(a, in)
		if err != nil {
			return fmt.Sprintf("invalid input: %t\n", errors.Is(err, input.ErrInvalidInput))
		}

		return describe(tr)
	})
}

func describe(tr *trace.Trace) string {
	var b strings.Builder
	last := tr.Last()
	switch {
	case last.Grid != nil:
		fmt.Fprintf(&b, "grid: %dx%d\n", last.Grid.Rows, last.Grid.Cols)
	case last.Tree != nil:
		fmt.Fprintf(&b, "nodes: %d\n", len(last.Tree))
	default:
		fmt.Fprintf(&b, "result: %v\n", last.Values)
	}
	if last.Outcome != nil {
		if last.Outcome.Found {
			fmt.Fprintf(&b, "outcome: found at %d\n", last.Outcome.Index)
		} else {
			b.WriteString("outcome: not found\n")
		}
	}
	var probes []string
	for _, s := range tr.Steps() {
		mid, ok := s.Mark(search.MarkMid)
		if !ok {
			continue
		}
		lo, _ := s.Mark(search.MarkLeft)
		hi, _ := s.Mark(search.MarkRight)
		probes = append(probes, fmt.Sprintf("[%d,%d] mid=%d", lo, hi, mid))
	}
	if len(probes) > 0 {
		fmt.Fprintf(&b, "probes: %s\n", strings.Join(probes, " -> "))
	}
	order, _ := tr.Phases()
	names := make([]string, len(order))
	for i, p := range order {
		names[i] = string(p)
	}
	fmt.Fprintf(&b, "phases: %s\n", strings.Join(names, " -> "))
	fmt.Fprintf(&b, "steps: %d\n", tr.Len())
	d, _ := tr.MaxChanges()
	fmt.Fprintf(&b, "atomic: %t\n", d <= 1)

	return b.String()
}

func parseFloat(t *testing.T, d *datadriven.TestData, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		d.Fatalf(t, "%v", err)
	}

	return v
}

func parsePoint(t *testing.T, d *datadriven.TestData, vals []string) maze.Point {
	t.Helper()
	if len(vals) != 2 {
		d.Fatalf(t, "point needs (row, col), got %v", vals)
	}

	return maze.Point{Row: int(parseFloat(t, d, vals[0])), Col: int(parseFloat(t, d, vals[1]))}
}

func nan() float64 {
	v, _ := strconv.ParseFloat("NaN", 64)

	return v
}

func TestVerify(t *testing.T) {
	r := registry.Default()
	bubble, err := r.Get(registry.Bubble)
	require.NoError(t, err)
	in := registry.Input{Values: []float64{3, 1, 2}}
	tr, err := registry.Run(bubble, in)
	require.NoError(t, err)
	assert.NoError(t, registry.Verify(bubble, in, tr))

	// the same trace against a different input
	assert.ErrorIs(t, registry.Verify(bubble, registry.Input{Values: []float64{3, 1, 9}}, tr), registry.ErrInputChanged)

	// a hand-built trace that jumps straight to the result
	rec := trace.NewRecorder("jump")
	rec.Record(trace.Step{Values: []float64{3, 1, 2}, Phase: "sorting"})
	rec.Record(trace.Step{Values: []float64{1, 2, 3}, Phase: trace.PhaseComplete})
	jump, err := rec.Finish()
	require.NoError(t, err)
	assert.ErrorIs(t, registry.Verify(bubble, in, jump), registry.ErrNotAtomic)

	lin, err := r.Get(registry.LinearSearch)
	require.NoError(t, err)
	sin := registry.Input{Values: []float64{4, 2}, Target: 2}
	str, err := registry.Run(lin, sin)
	require.NoError(t, err)
	assert.NoError(t, registry.Verify(lin, sin, str))
	sin.Target = 5
	assert.ErrorIs(t, registry.Verify(lin, sin, str), registry.ErrBadOutcome)
}

// terminal finishes a one-step trace holding s.
func terminal(t *testing.T, s trace.Step) *trace.Trace {
	t.Helper()
	s.Phase = trace.PhaseComplete
	rec := trace.NewRecorder("terminal")
	rec.Record(s)
	tr, err := rec.Finish()
	require.NoError(t, err)

	return tr
}

func TestVerify_Structural(t *testing.T) {
	r := registry.Default()
	for _, id := range []string{registry.MaxHeap, registry.MinHeap, registry.BSTInsert} {
		alg, err := r.Get(id)
		require.NoError(t, err)
		in := registry.Input{Values: []float64{5, 3, 8, 1, 3}, Extract: 2}
		if id == registry.BSTInsert {
			in.Extract = 0
		}
		tr, err := registry.Run(alg, in)
		require.NoError(t, err)
		assert.NoError(t, registry.Verify(alg, in, tr), id)
	}

	maxHeap, err := r.Get(registry.MaxHeap)
	require.NoError(t, err)
	minHeap, err := r.Get(registry.MinHeap)
	require.NoError(t, err)
	bst, err := r.Get(registry.BSTInsert)
	require.NoError(t, err)

	tests := []struct {
		name string
		alg  registry.Algorithm
		in   registry.Input
		step trace.Step
		want error
	}{
		{"MaxHeapOrder", maxHeap, registry.Input{Values: []float64{1, 5}},
			trace.Step{Values: []float64{1, 5}}, registry.ErrHeapOrder},
		{"MinHeapOrder", minHeap, registry.Input{Values: []float64{1, 5, 0}},
			trace.Step{Values: []float64{1, 5, 0}}, registry.ErrHeapOrder},
		{"HeapLostValue", maxHeap, registry.Input{Values: []float64{5, 1}},
			trace.Step{Values: []float64{5}}, registry.ErrNotPermutation},
		{"TreeOrder", bst, registry.Input{Values: []float64{50, 70}},
			trace.Step{Tree: []trace.Node{
				{ID: 0, Value: 50, Left: 1, Right: trace.NoChild},
				{ID: 1, Value: 70, Left: trace.NoChild, Right: trace.NoChild},
			}}, registry.ErrTreeOrder},
		{"TreeLostNode", bst, registry.Input{Values: []float64{50, 70}},
			trace.Step{Tree: []trace.Node{{ID: 0, Value: 50, Left: trace.NoChild, Right: trace.NoChild}}},
			registry.ErrNotPermutation},
		{"TreeUnlinkedNode", bst, registry.Input{Values: []float64{50, 70}},
			trace.Step{Tree: []trace.Node{
				{ID: 0, Value: 50, Left: trace.NoChild, Right: trace.NoChild},
				{ID: 1, Value: 70, Left: trace.NoChild, Right: trace.NoChild},
			}}, registry.ErrNotPermutation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, registry.Verify(tc.alg, tc.in, terminal(t, tc.step)), tc.want)
		})
	}
}
