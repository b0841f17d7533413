package sorting

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/stepviz/trace"
)

// Quick is quicksort with the Lomuto partition scheme, pivot = last element.
// Settled pivots carry the Sorted role. Not stable.
//
// Complexity: O(n log n) average, O(n²) worst case.
func Quick(rec *trace.Recorder, values []float64) ([]float64, error) {
	return run(rec, values, PhasePartitioning, func(s *sorter) {
		s.quick(0, len(s.a)-1)
	})
}

func (s *sorter) quick(lo, hi int) {
	if lo >= hi {
		if lo == hi {
			s.settle(lo)
		}

		return
	}
	s.marks[MarkLo], s.marks[MarkHi] = lo, hi
	p := s.partition(lo, hi)
	s.quick(lo, p-1)
	s.quick(p+1, hi)
}

// Merge is the stable top-down merge sort; ties take the left element.
//
// Complexity: O(n log n) time, O(n) extra memory.
func Merge(rec *trace.Recorder, values []float64) ([]float64, error) {
	return run(rec, values, PhaseDividing, func(s *sorter) {
		s.mergeSort(0, len(s.a))
	})
}

func (s *sorter) mergeSort(lo, hi int) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	s.phase = PhaseDividing
	s.emit(fmt.Sprintf("split [%d,%d) at %d", lo, hi, mid), trace.Roles{trace.Active: s.span(lo, hi-1)})
	s.mergeSort(lo, mid)
	s.mergeSort(mid, hi)
	s.phase = PhaseMerging
	s.merge2(lo, mid, hi)
}

// Heap sorts by building a max-heap in place, then repeatedly swapping the
// maximum behind the heap. Not stable.
//
// Complexity: O(n log n), O(1) extra memory.
func Heap(rec *trace.Recorder, values []float64) ([]float64, error) {
	return run(rec, values, PhaseBuildHeap, func(s *sorter) {
		s.heapRange(0, len(s.a)-1, PhaseBuildHeap, PhaseExtractMax)
	})
}

// ThreeWayMerge splits every range into thirds, sorts them recursively and
// merges the three runs stably.
//
// Complexity: O(n log₃ n) time, O(n) extra memory.
func ThreeWayMerge(rec *trace.Recorder, values []float64) ([]float64, error) {
	return run(rec, values, PhaseDividing, func(s *sorter) {
		s.threeWay(0, len(s.a))
	})
}

func (s *sorter) threeWay(lo, hi int) {
	if hi-lo < 2 {
		return
	}
	mid1 := lo + (hi-lo)/3
	mid2 := lo + 2*((hi-lo)/3) + 1
	s.phase = PhaseDividing
	s.emit(fmt.Sprintf("split [%d,%d) into [%d,%d) [%d,%d) [%d,%d)", lo, hi, lo, mid1, mid1, mid2, mid2, hi),
		trace.Roles{trace.Active: s.span(lo, hi-1)})
	s.threeWay(lo, mid1)
	s.threeWay(mid1, mid2)
	s.threeWay(mid2, hi)
	s.phase = PhaseMerging
	s.merge3(lo, mid1, mid2, hi)
}

// merge3 stably merges a[lo:mid1], a[mid1:mid2] and a[mid2:hi].
func (s *sorter) merge3(lo, mid1, mid2, hi int) {
	runs := [3][]trace.Item{
		slices.Clone(s.a[lo:mid1]),
		slices.Clone(s.a[mid1:mid2]),
		slices.Clone(s.a[mid2:hi]),
	}
	starts := [3]int{lo, mid1, mid2}
	var heads [3]int

	for k := lo; k < hi; k++ {
		best := -1
		var cmp []int
		for r := range runs {
			if heads[r] == len(runs[r]) {
				continue
			}
			cmp = append(cmp, starts[r]+heads[r])
			// strict less keeps the earliest run on ties
			if best < 0 || runs[r][heads[r]].Value < runs[best][heads[best]].Value {
				best = r
			}
		}
		if len(cmp) > 1 {
			s.emit(fmt.Sprintf("compare heads of %d runs", len(cmp)), trace.Roles{trace.Comparing: cmp})
		}
		s.write(k, runs[best][heads[best]])
		heads[best]++
	}
}

// minRun is the Tim sort run length: n is halved while n >= 32, OR-ing in
// every dropped low bit.
func minRun(n int) int {
	r := 0
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}

	return n + r
}

// Tim insertion sorts runs of minRun(n) elements, then merges them bottom-up,
// doubling the merge width each pass. Stable.
//
// Complexity: O(n log n).
func Tim(rec *trace.Recorder, values []float64) ([]float64, error) {
	return run(rec, values, PhaseFindingRuns, func(s *sorter) {
		var (
			n     = len(s.a)
			size  = minRun(n)
			start int
			end   int
			width int
			lo    int
			mid   int
			hi    int
		)
		s.marks[MarkMinRun] = size
		for start = 0; start < n; start += size {
			end = min(start+size, n) - 1
			s.phase = PhaseFindingRuns
			s.marks[MarkRunStart], s.marks[MarkRunEnd] = start, end
			s.emit(fmt.Sprintf("run [%d,%d]", start, end), trace.Roles{trace.Active: s.span(start, end)})
			s.phase = PhaseInsertionSort
			s.insertRange(start, end)
		}
		delete(s.marks, MarkRunStart)
		delete(s.marks, MarkRunEnd)

		s.phase = PhaseMerging
		for width = size; width < n; width *= 2 {
			s.marks[MarkWidth] = width
			for lo = 0; lo < n; lo += 2 * width {
				mid = min(lo+width, n)
				hi = min(lo+2*width, n)
				if mid < hi {
					s.merge2(lo, mid, hi)
				}
			}
		}
	})
}

// Intro runs Lomuto quicksort with a depth budget of floor(2*log2(n)),
// switching to heap sort when the budget is exhausted and to insertion sort
// for ranges of at most 16 elements. Not stable.
//
// Complexity: O(n log n) worst case.
func Intro(rec *trace.Recorder, values []float64) ([]float64, error) {
	phase := PhaseQuickSort
	if len(values) <= introInsertionMax {
		phase = PhaseInsertionSort
	}

	return run(rec, values, phase, func(s *sorter) {
		depth := int(math.Floor(2 * math.Log2(float64(len(s.a)))))
		s.intro(0, len(s.a)-1, depth)
	})
}

func (s *sorter) intro(lo, hi, depth int) {
	if lo >= hi {
		return
	}
	s.marks[MarkLo], s.marks[MarkHi], s.marks[MarkDepth] = lo, hi, depth
	switch {
	case hi-lo+1 <= introInsertionMax:
		s.phase = PhaseInsertionSort
		s.insertRange(lo, hi)
	case depth == 0:
		s.heapRange(lo, hi, PhaseHeapSort, PhaseHeapSort)
	default:
		s.phase = PhaseQuickSort
		p := s.partition(lo, hi)
		s.intro(lo, p-1, depth-1)
		s.intro(p+1, hi, depth-1)
	}
}
