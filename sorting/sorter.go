package sorting

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/trace"
)

// sorter holds the private working copy of one adapter run and emits Steps
// from it. Every mutating helper changes at most one position (or exchanges
// two) before recording, so consecutive Steps are one atomic operation apart.
type sorter struct {
	rec     *trace.Recorder
	a       []trace.Item
	phase   trace.Phase
	marks   map[string]int
	settled []bool
}

// begin validates values, copies them and records the initial Step.
// It returns a nil sorter and the validation error on bad input.
func begin(rec *trace.Recorder, values []float64, phase trace.Phase) (*sorter, error) {
	if err := input.CheckValues(values); err != nil {
		return nil, err
	}
	s := &sorter{
		rec:     rec,
		a:       trace.Items(values),
		phase:   phase,
		marks:   make(map[string]int),
		settled: make([]bool, len(values)),
	}
	s.emit(fmt.Sprintf("input of %d values", len(values)), nil)

	return s, nil
}

// emit records the current working state.
func (s *sorter) emit(msg string, roles trace.Roles) {
	vals, origins := trace.Split(s.a)
	if roles == nil {
		roles = trace.Roles{}
	}
	var done []int
	for i, ok := range s.settled {
		if ok {
			done = append(done, i)
		}
	}
	if len(done) > 0 {
		roles[trace.Sorted] = done
	}
	var marks map[string]int
	if len(s.marks) > 0 {
		marks = s.marks
	}
	s.rec.Record(trace.Step{
		Values:  vals,
		Origins: origins,
		Roles:   roles,
		Marks:   marks,
		Phase:   s.phase,
		Message: msg,
	})
}

// finish records the terminal Step and returns the sorted values.
func (s *sorter) finish() []float64 {
	for i := range s.settled {
		s.settled[i] = true
	}
	s.phase = trace.PhaseComplete
	s.emit("sorted", nil)

	return trace.ItemValues(s.a)
}

// compare records a comparison of positions i and j.
func (s *sorter) compare(i, j int) {
	s.emit(fmt.Sprintf("compare a[%d]=%g with a[%d]=%g", i, s.a[i].Value, j, s.a[j].Value),
		trace.Roles{trace.Comparing: {i, j}})
}

// swap exchanges positions i and j and records it. i == j records nothing.
func (s *sorter) swap(i, j int) {
	if i == j {
		return
	}
	s.a[i], s.a[j] = s.a[j], s.a[i]
	s.emit(fmt.Sprintf("swap a[%d] and a[%d]", i, j), trace.Roles{trace.Swapping: {i, j}})
}

// write stores it at position k and records it.
func (s *sorter) write(k int, it trace.Item) {
	s.a[k] = it
	s.emit(fmt.Sprintf("write %g to a[%d]", it.Value, k), trace.Roles{trace.Active: {k}})
}

// settle marks position i as final.
func (s *sorter) settle(i int) {
	s.settled[i] = true
}

// less reports a[i] < a[j].
func (s *sorter) less(i, j int) bool {
	return s.a[i].Value < s.a[j].Value
}

// span lists lo..hi inclusive, clipped to the working array.
func (s *sorter) span(lo, hi int) []int {
	hi = min(hi, len(s.a)-1)
	if lo > hi {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}

	return out
}

// insertRange insertion sorts a[lo..hi] (inclusive). The key is lifted out,
// larger elements shift right one write at a time, then the key is written
// into the hole. Ties stop the shift, so the sort is stable.
func (s *sorter) insertRange(lo, hi int) {
	var (
		i, j int
		key  trace.Item
	)
	for i = lo + 1; i <= hi; i++ {
		key = s.a[i]
		s.emit(fmt.Sprintf("take key %g from a[%d]", key.Value, i), trace.Roles{trace.Active: {i}})
		j = i - 1
		for j >= lo {
			s.emit(fmt.Sprintf("compare a[%d]=%g with key %g", j, s.a[j].Value, key.Value),
				trace.Roles{trace.Comparing: {j}, trace.Active: {j + 1}})
			if s.a[j].Value <= key.Value {
				break
			}
			s.a[j+1] = s.a[j]
			s.emit(fmt.Sprintf("shift a[%d] right", j), trace.Roles{trace.Active: {j + 1}})
			j--
		}
		if j+1 != i {
			s.write(j+1, key)
		}
	}
}

// partition is a Lomuto partition of a[lo..hi] around the last element.
// It returns the final pivot position.
func (s *sorter) partition(lo, hi int) int {
	pivot := s.a[hi].Value
	i := lo
	for j := lo; j < hi; j++ {
		s.emit(fmt.Sprintf("compare a[%d]=%g with pivot %g", j, s.a[j].Value, pivot),
			trace.Roles{trace.Comparing: {j}, trace.Pivot: {hi}})
		if s.a[j].Value <= pivot {
			s.swap(i, j)
			i++
		}
	}
	s.swap(i, hi)
	s.settle(i)

	return i
}

// siftDown restores the max-heap property of the heap rooted at root in
// a[lo:lo+size], indices relative to lo.
func (s *sorter) siftDown(lo, root, size int) {
	var largest, l, r int
	for {
		largest = root
		l = 2*root + 1
		r = l + 1
		if l < size {
			s.compare(lo+largest, lo+l)
			if s.less(lo+largest, lo+l) {
				largest = l
			}
		}
		if r < size {
			s.compare(lo+largest, lo+r)
			if s.less(lo+largest, lo+r) {
				largest = r
			}
		}
		if largest == root {
			return
		}
		s.swap(lo+root, lo+largest)
		root = largest
	}
}

// heapRange heap sorts a[lo..hi] (inclusive).
func (s *sorter) heapRange(lo, hi int, build, extract trace.Phase) {
	size := hi - lo + 1
	if size < 2 {
		return
	}
	s.phase = build
	for i := size/2 - 1; i >= 0; i-- {
		s.siftDown(lo, i, size)
	}
	s.phase = extract
	for end := size - 1; end > 0; end-- {
		s.swap(lo, lo+end)
		s.settle(lo + end)
		s.siftDown(lo, 0, end)
	}
	s.settle(lo)
}

// merge2 stably merges the sorted half-open runs a[lo:mid] and a[mid:hi].
func (s *sorter) merge2(lo, mid, hi int) {
	left := slices.Clone(s.a[lo:mid])
	right := slices.Clone(s.a[mid:hi])
	s.emit(fmt.Sprintf("merge [%d,%d) with [%d,%d)", lo, mid, mid, hi),
		trace.Roles{trace.Active: s.span(lo, hi-1)})

	// Writes stay below k < mid+j, so only the right head is still in place;
	// the left head lives in the scratch copy and is shown through k.
	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		s.emit(fmt.Sprintf("compare %g with %g", left[i].Value, right[j].Value),
			trace.Roles{trace.Comparing: {mid + j}, trace.Active: {k}})
		if left[i].Value <= right[j].Value {
			s.write(k, left[i])
			i++
		} else {
			s.write(k, right[j])
			j++
		}
		k++
	}
	for ; i < len(left); i++ {
		s.write(k, left[i])
		k++
	}
	for ; j < len(right); j++ {
		s.write(k, right[j])
		k++
	}
}

// run wraps the shared begin/body/finish sequence of every adapter.
// Inputs of fewer than two elements skip body.
func run(rec *trace.Recorder, values []float64, phase trace.Phase, body func(s *sorter)) ([]float64, error) {
	s, err := begin(rec, values, phase)
	if err != nil {
		return nil, err
	}
	if len(s.a) > 1 {
		body(s)
	}

	return s.finish(), nil
}
