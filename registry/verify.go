package registry

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stepviz/trace"
)

// Property violations reported by Verify.
var (
	ErrNotAtomic      = errors.New("registry: consecutive steps differ by more than one operation")
	ErrNotPermutation = errors.New("registry: result is not a permutation of the input")
	ErrNotSorted      = errors.New("registry: result is not sorted")
	ErrUnstable       = errors.New("registry: equal values changed relative order")
	ErrBadOutcome     = errors.New("registry: terminal outcome does not match the input")
	ErrInputChanged   = errors.New("registry: first step differs from the input")
	ErrHeapOrder      = errors.New("registry: heap order violated")
	ErrTreeOrder      = errors.New("registry: tree in-order traversal is not sorted")
)

// Verify checks the properties every trace of alg on in must satisfy:
// single-operation steps, a first Step equal to the input and, per family,
// a sorted permutation (stable where alg is), a consistent search Outcome,
// heap order or a sorted in-order tree, or a traversal Outcome on a grid.
//
// Errors: one of the property sentinels above, wrapped with details.
func Verify(alg Algorithm, in Input, tr *trace.Trace) error {
	if d, at := tr.MaxChanges(); d > 1 {
		return errors.Wrapf(ErrNotAtomic, "steps %d and %d differ by %d", at, at+1, d)
	}
	first, last := tr.First(), tr.Last()

	switch alg.Family() {
	case Comparison, Distribution:
		if !slices.Equal(first.Values, in.Values) {
			return errors.Wrapf(ErrInputChanged, "got %v, want %v", first.Values, in.Values)
		}
		want := slices.Clone(in.Values)
		slices.Sort(want)
		got := slices.Clone(last.Values)
		if !slices.IsSorted(got) {
			return errors.Wrapf(ErrNotSorted, "%v", got)
		}
		slices.Sort(got)
		if !slices.Equal(got, want) {
			return errors.Wrapf(ErrNotPermutation, "got %v, want %v", last.Values, want)
		}
		if alg.Stable() && len(last.Origins) == len(last.Values) {
			for i := 1; i < len(last.Values); i++ {
				if last.Values[i] == last.Values[i-1] && last.Origins[i-1] > last.Origins[i] {
					return errors.Wrapf(ErrUnstable, "value %g at %d", last.Values[i], i)
				}
			}
		}
	case Search:
		out := last.Outcome
		if out == nil {
			return errors.Wrap(ErrBadOutcome, "missing outcome")
		}
		present := slices.Contains(in.Values, in.Target)
		if out.Found != present {
			return errors.Wrapf(ErrBadOutcome, "found=%t, target present=%t", out.Found, present)
		}
		if out.Found && in.Values[out.Index] != in.Target {
			return errors.Wrapf(ErrBadOutcome, "index %d holds %g, not %g", out.Index, in.Values[out.Index], in.Target)
		}
	case Structural:
		if last.Tree != nil || alg.ID() == BSTInsert {
			return verifyTree(last.Tree, in.Values)
		}
		switch alg.ID() {
		case MaxHeap:
			return verifyHeap(last.Values, in, func(parent, child float64) bool { return parent >= child })
		case MinHeap:
			return verifyHeap(last.Values, in, func(parent, child float64) bool { return parent <= child })
		}
	case Traversal:
		if last.Outcome == nil || last.Grid == nil {
			return errors.Wrap(ErrBadOutcome, "traversal without outcome or grid")
		}
		if last.Outcome.Found && last.Grid.Cells[last.Outcome.Index] != trace.CellPath {
			return errors.Wrapf(ErrBadOutcome, "end cell %d is not on the path", last.Outcome.Index)
		}
	}

	return nil
}

// verifyHeap checks that every parent of heap is ordered before its children
// under above and that the heap kept every value not extracted.
func verifyHeap(heap []float64, in Input, above func(parent, child float64) bool) error {
	want := len(in.Values) - min(max(in.Extract, 0), len(in.Values))
	if len(heap) != want {
		return errors.Wrapf(ErrNotPermutation, "heap holds %d values, want %d", len(heap), want)
	}
	for i := 1; i < len(heap); i++ {
		if p := (i - 1) / 2; !above(heap[p], heap[i]) {
			return errors.Wrapf(ErrHeapOrder, "parent %d (%g) and child %d (%g)", p, heap[p], i, heap[i])
		}
	}

	return nil
}

// verifyTree walks nodes in order from the root (node 0) and checks the walk
// is a sorted permutation of values.
func verifyTree(nodes []trace.Node, values []float64) error {
	if len(nodes) != len(values) {
		return errors.Wrapf(ErrNotPermutation, "tree holds %d nodes, want %d", len(nodes), len(values))
	}
	walk := make([]float64, 0, len(nodes))
	seen := make([]bool, len(nodes))
	var stack []int
	id := 0
	if len(nodes) == 0 {
		id = trace.NoChild
	}
	for id != trace.NoChild || len(stack) > 0 {
		for id != trace.NoChild {
			if id < 0 || id >= len(nodes) || seen[id] {
				return errors.Wrapf(ErrTreeOrder, "bad or repeated link to node %d", id)
			}
			seen[id] = true
			stack = append(stack, id)
			id = nodes[id].Left
		}
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		walk = append(walk, nodes[id].Value)
		id = nodes[id].Right
	}
	if !slices.IsSorted(walk) {
		return errors.Wrapf(ErrTreeOrder, "%v", walk)
	}
	want := slices.Clone(values)
	slices.Sort(want)
	if !slices.Equal(walk, want) {
		return errors.Wrapf(ErrNotPermutation, "in-order %v, want %v", walk, want)
	}

	return nil
}
