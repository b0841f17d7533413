package registry_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/registry"
)

// ExampleRun looks an algorithm up by ID and records it on explicit input.
func ExampleRun() {
	reg := registry.Default()
	alg, err := reg.Get(registry.Bubble)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	in := registry.Input{Values: []float64{5, 3, 8, 4, 2}}
	tr, err := registry.Run(alg, in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(alg.Name(), alg.Family(), tr.Len())
	fmt.Println(tr.Last().Values)
	fmt.Println(registry.Verify(alg, in, tr))

	// Output:
	// Bubble sort comparison 19
	// [2 3 4 5 8]
	// <nil>
}
