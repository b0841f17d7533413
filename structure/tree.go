package structure

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/trace"
)

// Tree is an unbalanced binary search tree stored as a node arena; node 0 is
// the root and a node's ID is its arena index. Values smaller than a node go
// left, everything else (duplicates included) goes right.
type Tree struct {
	nodes []trace.Node
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{nodes: []trace.Node{}}
}

// Len returns the node count.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Nodes returns a copy of the node arena.
func (t *Tree) Nodes() []trace.Node {
	return slices.Clone(t.nodes)
}

// Insert descends from the root recording one Step per node compared, then
// records the creation of the new leaf linked under its parent. It returns
// the new node ID. Insert records neither an initial nor a terminal Step.
//
// Errors: ErrInvalidInput for NaN/Inf.
//
// Complexity: O(height).
func (t *Tree) Insert(rec *trace.Recorder, v float64) (int, error) {
	if err := input.CheckValues([]float64{v}); err != nil {
		return -1, err
	}
	id := len(t.nodes)
	leaf := trace.Node{ID: id, Value: v, Left: trace.NoChild, Right: trace.NoChild}
	if id == 0 {
		t.nodes = append(t.nodes, leaf)
		t.emit(rec, fmt.Sprintf("create root %g", v), trace.Roles{trace.Active: {id}})

		return id, nil
	}

	var (
		cur  = 0
		path []int
		next *int
	)
	for {
		path = append(path, cur)
		node := &t.nodes[cur]
		dir := "right"
		next = &node.Right
		if v < node.Value {
			dir = "left"
			next = &node.Left
		}
		t.emit(rec, fmt.Sprintf("compare %g with %g: go %s", v, node.Value, dir),
			trace.Roles{trace.Comparing: {cur}, trace.Path: slices.Clone(path)})
		if *next == trace.NoChild {
			break
		}
		cur = *next
	}
	*next = id
	t.nodes = append(t.nodes, leaf)
	t.emit(rec, fmt.Sprintf("create %g under %g", v, t.nodes[cur].Value),
		trace.Roles{trace.Active: {id}, trace.Path: path})

	return id, nil
}

// InOrder returns the values in sorted order.
func (t *Tree) InOrder() []float64 {
	out := make([]float64, 0, len(t.nodes))
	if len(t.nodes) == 0 {
		return out
	}
	var walk func(id int)
	walk = func(id int) {
		if id == trace.NoChild {
			return
		}
		walk(t.nodes[id].Left)
		out = append(out, t.nodes[id].Value)
		walk(t.nodes[id].Right)
	}
	walk(0)

	return out
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	var h func(id int) int
	h = func(id int) int {
		if id == trace.NoChild {
			return 0
		}

		return 1 + max(h(t.nodes[id].Left), h(t.nodes[id].Right))
	}
	if len(t.nodes) == 0 {
		return 0
	}

	return h(0)
}

func (t *Tree) emit(rec *trace.Recorder, msg string, roles trace.Roles) {
	rec.Record(trace.Step{Tree: t.nodes, Roles: roles, Phase: PhaseInsert, Message: msg})
}

// BuildTree inserts values in order into an empty Tree, recording the empty
// tree first and a terminal Step last.
//
// Errors: ErrInvalidInput for NaN/Inf; nothing is recorded then.
func BuildTree(rec *trace.Recorder, values []float64) (*Tree, error) {
	if err := input.CheckValues(values); err != nil {
		return nil, err
	}
	t := NewTree()
	t.emit(rec, fmt.Sprintf("insert %d values into an empty tree", len(values)), nil)
	for _, v := range values {
		if _, err := t.Insert(rec, v); err != nil {
			return nil, errors.Wrap(err, "structure: insert")
		}
	}
	rec.Record(trace.Step{Tree: t.nodes, Phase: trace.PhaseComplete,
		Message: fmt.Sprintf("tree of %d nodes, height %d", t.Len(), t.Height())})

	return t, nil
}
