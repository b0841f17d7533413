package search_test

import (
	"testing"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/trace"
)

// BenchmarkBinary_4096 searches the largest generated sorted array for its
// last element: O(log n) Steps of O(n) each.
func BenchmarkBinary_4096(b *testing.B) {
	values, err := input.NewGenerator(1).SortedInts(input.MaxLength, 1, 1_000_000)
	if err != nil {
		b.Fatal(err)
	}
	target := values[len(values)-1]
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = search.Binary(trace.NewRecorder("binary-search"), values, target); err != nil {
			b.Fatal(err)
		}
	}
}
