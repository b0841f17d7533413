// Package structure provides instrumented structural operations: binary
// search tree insertion and binary heap insert/extract.
//
// Tree Steps carry the node arena in Step.Tree; heap Steps carry the backing
// array in Step.Values. Creating a tree node or pushing/popping a heap slot
// is one atomic operation, as is every heap swap.
package structure

import "github.com/katalvlaran/stepviz/trace"

// Phases recorded by the structural adapters.
const (
	PhaseInsert  trace.Phase = "insert"
	PhaseExtract trace.Phase = "extract"
)

// Kind selects heap order.
type Kind int

const (
	// MaxHeap keeps the largest value at the root.
	MaxHeap Kind = iota
	// MinHeap keeps the smallest value at the root.
	MinHeap
)

// String returns "max-heap" or "min-heap".
func (k Kind) String() string {
	if k == MinHeap {
		return "min-heap"
	}

	return "max-heap"
}

func (k Kind) rootName() string {
	if k == MinHeap {
		return "minimum"
	}

	return "maximum"
}
