// Package sorting provides instrumented comparison sorts.
package sorting

import "github.com/katalvlaran/stepviz/trace"

// Func is the shape shared by every comparison sort adapter.
// It validates values, records the full run into rec and returns the sorted
// copy. values is never modified.
type Func func(rec *trace.Recorder, values []float64) ([]float64, error)

// Phases recorded by the adapters in this package.
const (
	PhaseSorting       trace.Phase = "sorting"
	PhasePartitioning  trace.Phase = "partitioning"
	PhaseDividing      trace.Phase = "dividing"
	PhaseMerging       trace.Phase = "merging"
	PhaseBuildHeap     trace.Phase = "build-heap"
	PhaseExtractMax    trace.Phase = "extract-max"
	PhaseFindingRuns   trace.Phase = "finding-runs"
	PhaseInsertionSort trace.Phase = "insertion-sort"
	PhaseQuickSort     trace.Phase = "quicksort"
	PhaseHeapSort      trace.Phase = "heapsort"
)

// Marks set by the adapters.
const (
	MarkPass     = "pass"
	MarkGap      = "gap"
	MarkWrites   = "writes"
	MarkMinRun   = "minrun"
	MarkRunStart = "run_start"
	MarkRunEnd   = "run_end"
	MarkWidth    = "width"
	MarkDepth    = "depth"
	MarkLo       = "lo"
	MarkHi       = "hi"
)

const (
	// minMerge is the Tim sort threshold below which n itself is the run length.
	minMerge = 32

	// introInsertionMax is the largest Intro sort sub-range finished by insertion sort.
	introInsertionMax = 16
)
