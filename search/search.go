// Package search provides instrumented linear and binary search.
//
// Both adapters record the unmodified array first, one Step per comparison
// against the target, and a terminal Step whose Outcome reports the found
// index or not-found. An empty array yields the two-step trivial trace.
package search

import (
	"fmt"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/trace"
)

// PhaseSearching is the only non-terminal phase of both adapters.
const PhaseSearching trace.Phase = "searching"

// Marks set by the adapters.
const (
	MarkIndex = "index"
	MarkLeft  = "left"
	MarkRight = "right"
	MarkMid   = "mid"
)

var notFound = trace.Outcome{Found: false, Index: -1}

// Linear scans indices 0..n-1, recording each comparison, and stops at the
// first element equal to target.
//
// Errors: ErrInvalidInput for NaN/Inf elements or target.
//
// Complexity: O(n).
func Linear(rec *trace.Recorder, values []float64, target float64) (trace.Outcome, error) {
	if err := validate(values, target, input.CheckValues); err != nil {
		return notFound, err
	}
	values = clone(values)
	rec.Record(trace.Step{Values: values, Phase: PhaseSearching,
		Message: fmt.Sprintf("search %g in %d values", target, len(values))})

	var scanned []int
	for i, v := range values {
		rec.Record(trace.Step{
			Values:  values,
			Roles:   roles(trace.Comparing, []int{i}, scanned),
			Marks:   map[string]int{MarkIndex: i},
			Phase:   PhaseSearching,
			Message: fmt.Sprintf("compare a[%d]=%g with %g", i, v, target),
		})
		if v == target {
			return done(rec, values, trace.Outcome{Found: true, Index: i}, scanned, target), nil
		}
		scanned = append(scanned, i)
	}

	return done(rec, values, notFound, scanned, target), nil
}

// Binary searches a non-decreasing array. Each iteration records the
// comparison at mid = left + (right-left)/2 with the current bounds in Marks,
// then narrows to [mid+1,right] or [left,mid-1]. The search reports
// not-found once left > right.
//
// Errors: ErrInvalidInput for NaN/Inf elements or target, or unsorted input.
//
// Complexity: O(log n).
func Binary(rec *trace.Recorder, values []float64, target float64) (trace.Outcome, error) {
	if err := validate(values, target, input.CheckSorted); err != nil {
		return notFound, err
	}
	values = clone(values)
	rec.Record(trace.Step{Values: values, Phase: PhaseSearching,
		Message: fmt.Sprintf("search %g in %d sorted values", target, len(values))})

	var (
		left, right = 0, len(values) - 1
		mid         int
		discarded   []int
	)
	for left <= right {
		mid = left + (right-left)/2
		rec.Record(trace.Step{
			Values:  values,
			Roles:   roles(trace.Comparing, []int{mid}, discarded),
			Marks:   map[string]int{MarkLeft: left, MarkRight: right, MarkMid: mid},
			Phase:   PhaseSearching,
			Message: fmt.Sprintf("compare a[%d]=%g with %g in [%d,%d]", mid, values[mid], target, left, right),
		})
		switch {
		case values[mid] == target:
			return done(rec, values, trace.Outcome{Found: true, Index: mid}, discarded, target), nil
		case values[mid] < target:
			for i := left; i <= mid; i++ {
				discarded = append(discarded, i)
			}
			left = mid + 1
		default:
			for i := mid; i <= right; i++ {
				discarded = append(discarded, i)
			}
			right = mid - 1
		}
	}

	return done(rec, values, notFound, discarded, target), nil
}

func validate(values []float64, target float64, check func([]float64) error) error {
	if err := check(values); err != nil {
		return err
	}

	return input.CheckTarget(target)
}

// clone keeps the recorded array non-nil so empty inputs still carry a primary.
func clone(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	return out
}

func roles(r trace.Role, at, discarded []int) trace.Roles {
	rs := trace.Roles{r: at}
	if len(discarded) > 0 {
		rs[trace.Discarded] = discarded
	}

	return rs
}

func done(rec *trace.Recorder, values []float64, out trace.Outcome, discarded []int, target float64) trace.Outcome {
	step := trace.Step{
		Values:  values,
		Phase:   trace.PhaseComplete,
		Outcome: &out,
		Message: fmt.Sprintf("%g not found", target),
	}
	if out.Found {
		step.Roles = trace.Roles{trace.Path: {out.Index}}
		step.Message = fmt.Sprintf("found %g at index %d", target, out.Index)
	} else if len(discarded) > 0 {
		step.Roles = trace.Roles{trace.Discarded: discarded}
	}
	rec.Record(step)

	return out
}
