package input

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidInput is the InvalidInput class: non-finite, out-of-domain or
	// otherwise malformed input. Adapters refuse to run and record nothing.
	ErrInvalidInput = errors.New("input: invalid input")

	// ErrBadProfile indicates generator bounds that cannot produce valid input.
	ErrBadProfile = errors.New("input: invalid generator profile")
)

// MaxLength bounds every generated sequence.
const MaxLength = 1 << 12

// MaxDomain bounds the auxiliary storage of distribution sorts (counts or holes).
const MaxDomain = 1 << 16

// Kind selects the shape of generated input.
type Kind int

const (
	// Integers are uniformly drawn integers in [Min, Max].
	Integers Kind = iota
	// Fractions are values in [0,1) rounded down to two decimals.
	Fractions
	// SortedIntegers are Integers sorted non-decreasing.
	SortedIntegers
	// Grid is a rectangular wall grid.
	Grid
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Integers:
		return "integers"
	case Fractions:
		return "fractions"
	case SortedIntegers:
		return "sorted"
	case Grid:
		return "grid"
	default:
		return "unknown"
	}
}

// Profile describes the default random input of one algorithm.
type Profile struct {
	Kind   Kind
	Length int // sequence kinds only
	Min    int // Integers, SortedIntegers
	Max    int // Integers, SortedIntegers

	Rows    int     // Grid only
	Cols    int     // Grid only
	Density float64 // Grid only: probability of a wall
}

// WithLength returns a copy of p generating n elements. n <= 0 keeps the default.
func (p Profile) WithLength(n int) Profile {
	if n > 0 && p.Kind != Grid {
		p.Length = n
	}

	return p
}

// Validate checks that p can be generated.
func (p Profile) Validate() error {
	switch p.Kind {
	case Integers, SortedIntegers:
		if p.Min > p.Max {
			return errors.Wrapf(ErrBadProfile, "min %d > max %d", p.Min, p.Max)
		}
		fallthrough
	case Fractions:
		if p.Length < 0 || p.Length > MaxLength {
			return errors.Wrapf(ErrBadProfile, "length %d not in [0,%d]", p.Length, MaxLength)
		}
	case Grid:
		if p.Rows <= 0 || p.Cols <= 0 || p.Rows*p.Cols > MaxLength*MaxLength/64 {
			return errors.Wrapf(ErrBadProfile, "grid %dx%d", p.Rows, p.Cols)
		}
		if p.Density < 0 || p.Density >= 1 {
			return errors.Wrapf(ErrBadProfile, "wall density %v not in [0,1)", p.Density)
		}
	default:
		return errors.Wrapf(ErrBadProfile, "kind %d", int(p.Kind))
	}

	return nil
}

// Default profiles of the registered algorithms.
var (
	BubbleProfile     = Profile{Kind: Integers, Length: 8, Min: 1, Max: 15}
	SmallProfile      = Profile{Kind: Integers, Length: 8, Min: 1, Max: 20}
	HeapSortProfile   = Profile{Kind: Integers, Length: 10, Min: 1, Max: 20}
	ThreeWayProfile   = Profile{Kind: Integers, Length: 9, Min: 1, Max: 20}
	LargeProfile      = Profile{Kind: Integers, Length: 16, Min: 1, Max: 100}
	CountingProfile   = Profile{Kind: Integers, Length: 8, Min: 1, Max: 9}
	RadixProfile      = Profile{Kind: Integers, Length: 8, Min: 1, Max: 999}
	BucketProfile     = Profile{Kind: Fractions, Length: 8}
	PigeonholeProfile = Profile{Kind: Integers, Length: 16, Min: 0, Max: 9}
	SearchProfile     = Profile{Kind: SortedIntegers, Length: 9, Min: 1, Max: 100}
	StructureProfile  = Profile{Kind: Integers, Length: 7, Min: 1, Max: 99}
	MazeProfile       = Profile{Kind: Grid, Rows: 10, Cols: 10, Density: 0.3}
)
