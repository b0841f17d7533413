package input_test

import (
	"math"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/input"
)

func TestGenerator_SeedDeterminism(t *testing.T) {
	a, err := input.NewGenerator(42).Values(input.LargeProfile)
	require.NoError(t, err)
	b, err := input.NewGenerator(42).Values(input.LargeProfile)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Equal(t, int64(1), input.NewGenerator(0).Seed())
	z1, _ := input.NewGenerator(0).Ints(8, 1, 20)
	z2, _ := input.NewGenerator(1).Ints(8, 1, 20)
	assert.Equal(t, z1, z2, "seed 0 must map to the default seed")
}

func TestGenerator_Derive(t *testing.T) {
	base := input.NewGenerator(7)
	x := base.Derive(1)
	y := base.Derive(1)
	assert.NotEqual(t, x.Seed(), y.Seed())
}

func TestGenerator_Profiles(t *testing.T) {
	cases := []struct {
		name string
		p    input.Profile
	}{
		{"Bubble", input.BubbleProfile},
		{"Small", input.SmallProfile},
		{"HeapSort", input.HeapSortProfile},
		{"ThreeWay", input.ThreeWayProfile},
		{"Large", input.LargeProfile},
		{"Counting", input.CountingProfile},
		{"Radix", input.RadixProfile},
		{"Pigeonhole", input.PigeonholeProfile},
		{"Search", input.SearchProfile},
		{"Structure", input.StructureProfile},
	}
	g := input.NewGenerator(3)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vals, err := g.Values(tc.p)
			require.NoError(t, err)
			require.Len(t, vals, tc.p.Length)
			for _, v := range vals {
				assert.GreaterOrEqual(t, v, float64(tc.p.Min))
				assert.LessOrEqual(t, v, float64(tc.p.Max))
				assert.Equal(t, math.Trunc(v), v)
			}
			if tc.p.Kind == input.SortedIntegers {
				assert.True(t, slices.IsSorted(vals))
			}
		})
	}
}

func TestGenerator_Fractions(t *testing.T) {
	vals, err := input.NewGenerator(9).Values(input.BucketProfile)
	require.NoError(t, err)
	require.Len(t, vals, 8)
	require.NoError(t, input.CheckUnit(vals))
}

func TestGenerator_Walls(t *testing.T) {
	walls, err := input.NewGenerator(5).Walls(input.MazeProfile, [2]int{0, 0}, [2]int{9, 9})
	require.NoError(t, err)
	require.Len(t, walls, 10)
	assert.False(t, walls[0][0])
	assert.False(t, walls[9][9])

	_, err = input.NewGenerator(5).Walls(input.SmallProfile)
	assert.ErrorIs(t, err, input.ErrBadProfile)
}

func TestProfile_Validate(t *testing.T) {
	bad := []input.Profile{
		{Kind: input.Integers, Length: 3, Min: 5, Max: 1},
		{Kind: input.Integers, Length: -1},
		{Kind: input.Fractions, Length: input.MaxLength + 1},
		{Kind: input.Grid, Rows: 0, Cols: 3},
		{Kind: input.Grid, Rows: 3, Cols: 3, Density: 1},
		{Kind: input.Kind(99)},
	}
	for _, p := range bad {
		assert.ErrorIs(t, p.Validate(), input.ErrBadProfile, "%+v", p)
	}
	assert.Equal(t, 12, input.SmallProfile.WithLength(12).Length)
	assert.Equal(t, 8, input.SmallProfile.WithLength(0).Length)
}

func TestChecks(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name  string
		err   error
		valid bool
	}{
		{"ValuesOK", input.CheckValues([]float64{1, -2.5, 0}), true},
		{"ValuesNaN", input.CheckValues([]float64{1, nan, math.Inf(1)}), false},
		{"NonNegIntsOK", input.CheckNonNegativeIntegers([]float64{0, 3, 9}), true},
		{"NonNegIntsFrac", input.CheckNonNegativeIntegers([]float64{1.5}), false},
		{"NonNegIntsNeg", input.CheckNonNegativeIntegers([]float64{-1}), false},
		{"IntsNeg", input.CheckIntegers([]float64{-3, 2}), true},
		{"UnitOK", input.CheckUnit([]float64{0, 0.99}), true},
		{"UnitOne", input.CheckUnit([]float64{1}), false},
		{"SortedOK", input.CheckSorted([]float64{1, 1, 2}), true},
		{"SortedDescent", input.CheckSorted([]float64{2, 1}), false},
		{"TargetNaN", input.CheckTarget(nan), false},
		{"SpanHuge", input.CheckSpan(0, input.MaxDomain), false},
		{"Empty", input.CheckValues(nil), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.valid {
				assert.NoError(t, tc.err)

				return
			}
			require.Error(t, tc.err)
			assert.ErrorIs(t, tc.err, input.ErrInvalidInput)
			assert.True(t, errors.Is(tc.err, input.ErrInvalidInput))
		})
	}
}

func TestChecks_ReportsEveryElement(t *testing.T) {
	err := input.CheckValues([]float64{math.NaN(), 1, math.Inf(-1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors")
	assert.Contains(t, err.Error(), "index 0")
	assert.Contains(t, err.Error(), "index 2")
}
