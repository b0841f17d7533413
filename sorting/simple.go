package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepviz/trace"
)

// Bubble sorts by repeated adjacent compare-and-swap passes. A pass that
// performs no swap ends the run early.
//
// Complexity: O(n²) comparisons, O(n) for sorted input.
func Bubble(rec *trace.Recorder, values []float64) ([]float64, error) {
	return run(rec, values, PhaseSorting, func(s *sorter) {
		var (
			n       = len(s.a)
			pass, j int
			swapped bool
		)
		for pass = 0; pass < n-1; pass++ {
			s.marks[MarkPass] = pass
			swapped = false
			for j = 0; j < n-1-pass; j++ {
				s.compare(j, j+1)
				if s.less(j+1, j) {
					s.swap(j, j+1)
					swapped = true
				}
			}
			s.settle(n - 1 - pass)
			if !swapped {
				break
			}
		}
	})
}

// Insertion is the stable insertion sort.
//
// Complexity: O(n²) worst case, O(n) for sorted input.
func Insertion(rec *trace.Recorder, values []float64) ([]float64, error) {
	return run(rec, values, PhaseSorting, func(s *sorter) {
		s.insertRange(0, len(s.a)-1)
	})
}

// Selection swaps the minimum of the unsorted suffix into place, one swap per pass.
// Not stable.
//
// Complexity: O(n²) comparisons, O(n) swaps.
func Selection(rec *trace.Recorder, values []float64) ([]float64, error) {
	return run(rec, values, PhaseSorting, func(s *sorter) {
		var (
			n          = len(s.a)
			i, j, best int
		)
		for i = 0; i < n-1; i++ {
			s.marks[MarkPass] = i
			best = i
			for j = i + 1; j < n; j++ {
				s.emit(fmt.Sprintf("compare a[%d]=%g with minimum a[%d]=%g", j, s.a[j].Value, best, s.a[best].Value),
					trace.Roles{trace.Comparing: {j}, trace.Pivot: {best}, trace.Active: {i}})
				if s.less(j, best) {
					best = j
				}
			}
			s.swap(i, best)
			s.settle(i)
		}
	})
}

// Comb sorts with a shrinking gap: gap = max(1, gap*10/13) before every pass,
// stopping once a pass with gap 1 makes no swap. Not stable.
//
// Complexity: O(n²) worst case.
func Comb(rec *trace.Recorder, values []float64) ([]float64, error) {
	return run(rec, values, PhaseSorting, func(s *sorter) {
		var (
			n       = len(s.a)
			gap     = n
			swapped = true
			i       int
		)
		for gap > 1 || swapped {
			gap = max(1, gap*10/13)
			s.marks[MarkGap] = gap
			swapped = false
			for i = 0; i+gap < n; i++ {
				s.compare(i, i+gap)
				if s.less(i+gap, i) {
					s.swap(i, i+gap)
					swapped = true
				}
			}
		}
	})
}

// Cycle sorts by rotating every cycle of the permutation into place, writing
// each element at most once. The running write count is kept in Marks["writes"].
// An element already at its final position costs zero writes.
//
// Complexity: O(n²) comparisons, at most n writes.
func Cycle(rec *trace.Recorder, values []float64) ([]float64, error) {
	return run(rec, values, PhaseSorting, func(s *sorter) {
		var (
			n        = len(s.a)
			start    int
			pos      int
			item     trace.Item
			position = func(start int, item trace.Item) int {
				p := start
				for i := start + 1; i < n; i++ {
					s.emit(fmt.Sprintf("compare a[%d]=%g with held %g", i, s.a[i].Value, item.Value),
						trace.Roles{trace.Comparing: {i}, trace.Active: {start}})
					if s.a[i].Value < item.Value {
						p++
					}
				}

				return p
			}
			place = func(pos int, item trace.Item) (int, trace.Item) {
				for item.Value == s.a[pos].Value {
					pos++
				}
				held := s.a[pos]
				s.a[pos] = item
				s.marks[MarkWrites]++
				s.emit(fmt.Sprintf("write %g to a[%d], hold %g", item.Value, pos, held.Value),
					trace.Roles{trace.Active: {pos}})

				return pos, held
			}
		)
		s.marks[MarkWrites] = 0
		for start = 0; start < n-1; start++ {
			item = s.a[start]
			pos = position(start, item)
			if pos == start {
				s.settle(start)
				continue
			}
			pos, item = place(pos, item)
			for pos != start {
				pos = position(start, item)
				pos, item = place(pos, item)
			}
			s.settle(start)
		}
	})
}
