package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/trace"
)

// ExampleQuick records a quick sort and inspects the finished Trace.
// The first Step is always the untouched input and the last one is the
// terminal "complete" Step holding the sorted values.
func ExampleQuick() {
	rec := trace.NewRecorder("quick")

	// Quick validates first; on error nothing is recorded.
	out, err := sorting.Quick(rec, []float64{5, 2, 9, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tr, err := rec.Finish()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(out)
	fmt.Println(tr.First().Values, tr.Last().Phase)

	// Every Step differs from the previous one by at most one operation.
	d, _ := tr.MaxChanges()
	fmt.Println(d <= 1)

	// Output:
	// [1 2 5 9]
	// [5 2 9 1] complete
	// true
}

// ExampleMerge shows that merge sort keeps equal values in input order:
// Origins maps every position back to its index in the input.
func ExampleMerge() {
	rec := trace.NewRecorder("merge")
	if _, err := sorting.Merge(rec, []float64{2, 1, 2, 1}); err != nil {
		fmt.Println("error:", err)
		return
	}
	tr, _ := rec.Finish()
	last := tr.Last()
	fmt.Println(last.Values, last.Origins)

	// Output:
	// [1 1 2 2] [1 3 0 2]
}
