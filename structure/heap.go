package structure

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/trace"
)

// Heap is an array backed binary heap, max or min ordered.
type Heap struct {
	kind Kind
	a    []float64
}

// NewHeap returns an empty heap of the given kind.
func NewHeap(kind Kind) *Heap {
	return &Heap{kind: kind, a: []float64{}}
}

// Kind returns the heap order.
func (h *Heap) Kind() Kind {
	return h.kind
}

// Len returns the element count.
func (h *Heap) Len() int {
	return len(h.a)
}

// Values returns a copy of the backing array.
func (h *Heap) Values() []float64 {
	return slices.Clone(h.a)
}

// above reports whether a[i] may sit above a[j].
func (h *Heap) above(i, j int) bool {
	if h.kind == MinHeap {
		return h.a[i] <= h.a[j]
	}

	return h.a[i] >= h.a[j]
}

// Valid reports whether the heap order holds at every index.
func (h *Heap) Valid() bool {
	for i := 1; i < len(h.a); i++ {
		if !h.above((i-1)/2, i) {
			return false
		}
	}

	return true
}

func (h *Heap) emit(rec *trace.Recorder, phase trace.Phase, msg string, roles trace.Roles) {
	rec.Record(trace.Step{Values: h.a, Roles: roles, Phase: phase, Message: msg})
}

func (h *Heap) swap(rec *trace.Recorder, phase trace.Phase, i, j int) {
	h.a[i], h.a[j] = h.a[j], h.a[i]
	h.emit(rec, phase, fmt.Sprintf("swap a[%d] and a[%d]", i, j), trace.Roles{trace.Swapping: {i, j}})
}

// Insert appends v and sifts it up, recording the push, every parent
// comparison and every swap.
//
// Errors: ErrInvalidInput for NaN/Inf.
//
// Complexity: O(log n).
func (h *Heap) Insert(rec *trace.Recorder, v float64) error {
	if err := input.CheckValues([]float64{v}); err != nil {
		return err
	}
	h.a = append(h.a, v)
	i := len(h.a) - 1
	h.emit(rec, PhaseInsert, fmt.Sprintf("push %g at a[%d]", v, i), trace.Roles{trace.Active: {i}})

	var p int
	for i > 0 {
		p = (i - 1) / 2
		h.emit(rec, PhaseInsert, fmt.Sprintf("compare a[%d]=%g with parent a[%d]=%g", i, h.a[i], p, h.a[p]),
			trace.Roles{trace.Comparing: {i, p}})
		if h.above(p, i) {
			break
		}
		h.swap(rec, PhaseInsert, i, p)
		i = p
	}

	return nil
}

// Extract removes the root. It records the root selection, the swap of root
// and last element, the removal of the last slot and the sift-down.
// An empty heap records nothing and returns ok == false.
//
// Complexity: O(log n).
func (h *Heap) Extract(rec *trace.Recorder) (v float64, ok bool) {
	if len(h.a) == 0 {
		return 0, false
	}
	v = h.a[0]
	last := len(h.a) - 1
	h.emit(rec, PhaseExtract, fmt.Sprintf("take %s %g", h.kind.rootName(), v), trace.Roles{trace.Active: {0}})
	if last > 0 {
		h.swap(rec, PhaseExtract, 0, last)
	}
	h.a = h.a[:last]
	h.emit(rec, PhaseExtract, fmt.Sprintf("remove %g from the end", v), nil)

	var (
		i, l, r, top int
		n            = len(h.a)
	)
	for {
		top = i
		l = 2*i + 1
		r = l + 1
		if l < n {
			h.emit(rec, PhaseExtract, fmt.Sprintf("compare a[%d]=%g with child a[%d]=%g", top, h.a[top], l, h.a[l]),
				trace.Roles{trace.Comparing: {top, l}})
			if !h.above(top, l) {
				top = l
			}
		}
		if r < n {
			h.emit(rec, PhaseExtract, fmt.Sprintf("compare a[%d]=%g with child a[%d]=%g", top, h.a[top], r, h.a[r]),
				trace.Roles{trace.Comparing: {top, r}})
			if !h.above(top, r) {
				top = r
			}
		}
		if top == i {
			break
		}
		h.swap(rec, PhaseExtract, i, top)
		i = top
	}

	return v, true
}

// HeapOps inserts values into an empty heap of the given kind, then performs
// extracts extractions, recording everything into one trace. Extracting past
// the end is a no-op, so an empty input yields the two-step trivial trace.
//
// Errors: ErrInvalidInput for NaN/Inf values or extracts < 0.
func HeapOps(rec *trace.Recorder, kind Kind, values []float64, extracts int) (*Heap, []float64, error) {
	if err := input.CheckValues(values); err != nil {
		return nil, nil, err
	}
	if extracts < 0 {
		return nil, nil, errors.Wrapf(input.ErrInvalidInput, "negative extract count %d", extracts)
	}
	h := NewHeap(kind)
	h.emit(rec, PhaseInsert, fmt.Sprintf("empty %s, %d inserts, %d extracts", kind, len(values), extracts), nil)
	for _, v := range values {
		if err := h.Insert(rec, v); err != nil {
			return nil, nil, err
		}
	}
	var out []float64
	for i := 0; i < extracts; i++ {
		v, ok := h.Extract(rec)
		if !ok {
			break
		}
		out = append(out, v)
	}
	h.emit(rec, trace.PhaseComplete, fmt.Sprintf("%s holds %d values", kind, h.Len()), nil)

	return h, out, nil
}
