package distribution

import (
	"fmt"

	"github.com/katalvlaran/stepviz/trace"
)

// board is the working state of one distribution sort: the primary array,
// optional buckets (FIFO queues) and optional count and output arrays.
// Each helper moves at most one element before recording.
type board struct {
	rec     *trace.Recorder
	a       []trace.Item
	buckets [][]trace.Item
	counts  []int
	output  []trace.Item
	phase   trace.Phase
	marks   map[string]int
}

func newBoard(rec *trace.Recorder, values []float64, phase trace.Phase) *board {
	return &board{
		rec:   rec,
		a:     trace.Items(values),
		phase: phase,
		marks: make(map[string]int),
	}
}

// emit records the current state.
func (b *board) emit(msg string, roles trace.Roles) {
	vals, origins := trace.Split(b.a)
	step := trace.Step{
		Values:  vals,
		Origins: origins,
		Counts:  b.counts,
		Roles:   roles,
		Phase:   b.phase,
		Message: msg,
	}
	if b.buckets != nil {
		step.Buckets = make([][]float64, len(b.buckets))
		for i, q := range b.buckets {
			step.Buckets[i] = trace.ItemValues(q)
		}
	}
	if b.output != nil {
		step.Output = trace.ItemValues(b.output)
	}
	if len(b.marks) > 0 {
		step.Marks = b.marks
	}
	b.rec.Record(step)
}

// push appends a[i] to bucket q.
func (b *board) push(i, q int) {
	b.buckets[q] = append(b.buckets[q], b.a[i])
	b.emit(fmt.Sprintf("move %g from a[%d] into bucket %d", b.a[i].Value, i, q),
		trace.Roles{trace.Active: {i}, trace.Bucket: {q}})
}

// drain pops the buckets front to back, in bucket order, into a[0..n-1].
func (b *board) drain() {
	b.phase = PhaseCollection
	k := 0
	for q := range b.buckets {
		for len(b.buckets[q]) > 0 {
			it := b.buckets[q][0]
			b.buckets[q] = b.buckets[q][1:]
			b.a[k] = it
			b.emit(fmt.Sprintf("collect %g from bucket %d into a[%d]", it.Value, q, k),
				trace.Roles{trace.Active: {k}, trace.Bucket: {q}})
			k++
		}
	}
}

// finish records the terminal Step and returns the final values.
func (b *board) finish() []float64 {
	b.phase = trace.PhaseComplete
	all := make([]int, len(b.a))
	for i := range all {
		all[i] = i
	}
	b.emit("sorted", trace.Roles{trace.Sorted: all})

	return trace.ItemValues(b.a)
}

// trivial records the two-step trace of an input with fewer than two elements.
func trivial(rec *trace.Recorder, values []float64, phase trace.Phase) []float64 {
	b := newBoard(rec, values, phase)
	b.emit(fmt.Sprintf("input of %d values", len(values)), nil)

	return b.finish()
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return lo, hi
}

func emptyBuckets(n int) [][]trace.Item {
	out := make([][]trace.Item, n)
	for i := range out {
		out[i] = []trace.Item{}
	}

	return out
}
