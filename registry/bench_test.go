package registry_test

import (
	"testing"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/registry"
)

// BenchmarkDefault_GenerateRun draws default-profile input for every
// built-in algorithm and records it, the work behind one Select.
func BenchmarkDefault_GenerateRun(b *testing.B) {
	reg := registry.Default()
	for _, alg := range reg.List() {
		b.Run(alg.ID(), func(b *testing.B) {
			gen := input.NewGenerator(1)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				in, err := registry.Generate(alg, gen, alg.Profile())
				if err != nil {
					b.Fatal(err)
				}
				if _, err = registry.Run(alg, in); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
