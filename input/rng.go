package input

import (
	"math"
	"math/rand"
	"slices"

	"github.com/cockroachdb/errors"
)

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Generator produces deterministic random input. The same seed yields the same
// sequence of inputs on every platform.
//
// A Generator wraps a *rand.Rand and is NOT safe for concurrent use; derive one
// Generator per goroutine with Derive.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// NewGenerator returns a Generator. Policy: seed==0 ⇒ defaultSeed.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = defaultSeed
	}

	return &Generator{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the effective seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Derive returns an independent Generator for stream id. Derivation consumes
// one value of g so that reusing a stream id still yields a fresh stream.
//
// Complexity: O(1).
func (g *Generator) Derive(stream uint64) *Generator {
	return NewGenerator(mixSeed(g.rng.Int63(), stream))
}

// mixSeed is a SplitMix64 finalizer over parent and stream.
func mixSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 1
	}

	return int64(x)
}

// Values generates a sequence for a sequence profile.
//
// Errors: ErrBadProfile.
func (g *Generator) Values(p Profile) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch p.Kind {
	case Integers:
		return g.Ints(p.Length, p.Min, p.Max)
	case SortedIntegers:
		return g.SortedInts(p.Length, p.Min, p.Max)
	case Fractions:
		return g.Fractions(p.Length)
	default:
		return nil, errors.Wrapf(ErrBadProfile, "%s profile has no values", p.Kind)
	}
}

// Ints returns n integers drawn uniformly from [lo, hi].
//
// Complexity: O(n).
func (g *Generator) Ints(n, lo, hi int) ([]float64, error) {
	if n < 0 || n > MaxLength || lo > hi {
		return nil, errors.Wrapf(ErrBadProfile, "ints n=%d range [%d,%d]", n, lo, hi)
	}
	out := make([]float64, n)
	span := hi - lo + 1
	for i := range out {
		out[i] = float64(lo + g.rng.Intn(span))
	}

	return out, nil
}

// SortedInts returns Ints(n, lo, hi) sorted non-decreasing.
func (g *Generator) SortedInts(n, lo, hi int) ([]float64, error) {
	out, err := g.Ints(n, lo, hi)
	if err != nil {
		return nil, err
	}
	slices.Sort(out)

	return out, nil
}

// Fractions returns n values in [0,1) truncated to two decimals.
func (g *Generator) Fractions(n int) ([]float64, error) {
	if n < 0 || n > MaxLength {
		return nil, errors.Wrapf(ErrBadProfile, "fractions n=%d", n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Floor(g.rng.Float64()*100) / 100
	}

	return out, nil
}

// Pick returns a uniformly chosen element of values, or 0 for an empty slice.
func (g *Generator) Pick(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return values[g.rng.Intn(len(values))]
}

// Walls returns a rows x cols wall mask where each cell is a wall with
// probability density. Cells listed in open are always cleared.
//
// Errors: ErrBadProfile.
func (g *Generator) Walls(p Profile, open ...[2]int) ([][]bool, error) {
	if p.Kind != Grid {
		return nil, errors.Wrapf(ErrBadProfile, "%s profile has no grid", p.Kind)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	walls := make([][]bool, p.Rows)
	for r := range walls {
		walls[r] = make([]bool, p.Cols)
		for c := range walls[r] {
			walls[r][c] = g.rng.Float64() < p.Density
		}
	}
	for _, rc := range open {
		if rc[0] >= 0 && rc[0] < p.Rows && rc[1] >= 0 && rc[1] < p.Cols {
			walls[rc[0]][rc[1]] = false
		}
	}

	return walls, nil
}
