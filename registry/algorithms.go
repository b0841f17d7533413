package registry

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stepviz/distribution"
	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/maze"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/structure"
	"github.com/katalvlaran/stepviz/trace"
)

// IDs of the default algorithms.
const (
	Bubble        = "bubble"
	Insertion     = "insertion"
	Selection     = "selection"
	Quick         = "quick"
	Merge         = "merge"
	HeapSort      = "heap"
	Comb          = "comb"
	Cycle         = "cycle"
	ThreeWayMerge = "three-way-merge"
	Tim           = "tim"
	Intro         = "intro"
	Counting      = "counting"
	Radix         = "radix"
	Bucket        = "bucket"
	Pigeonhole    = "pigeonhole"
	LinearSearch  = "linear-search"
	BinarySearch  = "binary-search"
	BSTInsert     = "bst-insert"
	MaxHeap       = "max-heap"
	MinHeap       = "min-heap"
	MazeDFS       = "maze-dfs"
)

// adapter is the Algorithm implementation behind every default entry.
type adapter struct {
	id      string
	name    string
	family  Family
	stable  bool
	profile input.Profile
	run     func(in Input, rec *trace.Recorder) error
}

func (a *adapter) ID() string                              { return a.id }
func (a *adapter) Name() string                            { return a.name }
func (a *adapter) Family() Family                          { return a.family }
func (a *adapter) Stable() bool                            { return a.stable }
func (a *adapter) Profile() input.Profile                  { return a.profile }
func (a *adapter) Run(in Input, rec *trace.Recorder) error { return a.run(in, rec) }

// sortAdapter wraps a sequence sort.
func sortAdapter(id, name string, family Family, stable bool, p input.Profile, fn sorting.Func) *adapter {
	return &adapter{id: id, name: name, family: family, stable: stable, profile: p,
		run: func(in Input, rec *trace.Recorder) error {
			_, err := fn(rec, in.Values)

			return err
		}}
}

func searchAdapter(id, name string, fn func(*trace.Recorder, []float64, float64) (trace.Outcome, error)) *adapter {
	return &adapter{id: id, name: name, family: Search, profile: input.SearchProfile,
		run: func(in Input, rec *trace.Recorder) error {
			_, err := fn(rec, in.Values, in.Target)

			return err
		}}
}

func heapAdapter(id, name string, kind structure.Kind) *adapter {
	return &adapter{id: id, name: name, family: Structural, profile: input.StructureProfile,
		run: func(in Input, rec *trace.Recorder) error {
			_, _, err := structure.HeapOps(rec, kind, in.Values, in.Extract)

			return err
		}}
}

// Algorithms returns fresh instances of every built-in algorithm in
// presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{
		sortAdapter(Bubble, "Bubble sort", Comparison, true, input.BubbleProfile, sorting.Bubble),
		sortAdapter(Insertion, "Insertion sort", Comparison, true, input.SmallProfile, sorting.Insertion),
		sortAdapter(Selection, "Selection sort", Comparison, false, input.SmallProfile, sorting.Selection),
		sortAdapter(Quick, "Quick sort", Comparison, false, input.SmallProfile, sorting.Quick),
		sortAdapter(Merge, "Merge sort", Comparison, true, input.SmallProfile, sorting.Merge),
		sortAdapter(HeapSort, "Heap sort", Comparison, false, input.HeapSortProfile, sorting.Heap),
		sortAdapter(Comb, "Comb sort", Comparison, false, input.LargeProfile, sorting.Comb),
		sortAdapter(Cycle, "Cycle sort", Comparison, false, input.SmallProfile, sorting.Cycle),
		sortAdapter(ThreeWayMerge, "3-way merge sort", Comparison, true, input.ThreeWayProfile, sorting.ThreeWayMerge),
		sortAdapter(Tim, "Tim sort", Comparison, true, input.LargeProfile, sorting.Tim),
		sortAdapter(Intro, "Intro sort", Comparison, false, input.LargeProfile, sorting.Intro),

		sortAdapter(Counting, "Counting sort", Distribution, true, input.CountingProfile, distribution.Counting),
		sortAdapter(Radix, "Radix sort", Distribution, true, input.RadixProfile, distribution.Radix),
		&adapter{id: Bucket, name: "Bucket sort", family: Distribution, stable: true, profile: input.BucketProfile,
			run: func(in Input, rec *trace.Recorder) error {
				var opts []distribution.Option
				if in.Buckets > 0 {
					opts = append(opts, distribution.WithBuckets(in.Buckets))
				}
				_, err := distribution.Bucket(rec, in.Values, opts...)

				return err
			}},
		sortAdapter(Pigeonhole, "Pigeonhole sort", Distribution, true, input.PigeonholeProfile, distribution.Pigeonhole),

		searchAdapter(LinearSearch, "Linear search", search.Linear),
		searchAdapter(BinarySearch, "Binary search", search.Binary),

		&adapter{id: BSTInsert, name: "Binary search tree", family: Structural, profile: input.StructureProfile,
			run: func(in Input, rec *trace.Recorder) error {
				_, err := structure.BuildTree(rec, in.Values)

				return err
			}},
		heapAdapter(MaxHeap, "Max heap", structure.MaxHeap),
		heapAdapter(MinHeap, "Min heap", structure.MinHeap),

		&adapter{id: MazeDFS, name: "Maze depth-first search", family: Traversal, profile: input.MazeProfile,
			run: func(in Input, rec *trace.Recorder) error {
				if in.Grid == nil {
					return errors.Wrap(input.ErrInvalidInput, "maze input has no grid")
				}
				_, err := maze.DFS(rec, in.Grid, in.Start, in.End)

				return err
			}},
	}
}

// Default returns a Registry of every built-in algorithm.
func Default() *Registry {
	r, err := New(Algorithms()...)
	if err != nil {
		// built-in IDs are unique constants
		panic(err)
	}

	return r
}
