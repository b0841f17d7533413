package distribution

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/trace"
)

// maxRadixValue keeps radix digit places inside int range.
const maxRadixValue = 1e15

// Counting sorts non-negative integers with a count array of max+1 slots.
//
// Steps:
//  1. counting: one increment of counts[v] per element.
//  2. accumulating: prefix sums, one slot per step.
//  3. placing: from the right, write v to output[counts[v]-1], then
//     decrement counts[v] as its own step (stable).
//  4. collection: copy output back into the primary array.
//
// Errors: ErrInvalidInput for non-integers, negatives, NaN/Inf or
// max+1 > input.MaxDomain.
//
// Complexity: O(n + max) time and memory.
func Counting(rec *trace.Recorder, values []float64) ([]float64, error) {
	// 1. Validate input
	if err := input.CheckNonNegativeIntegers(values); err != nil {
		return nil, err
	}
	if len(values) < 2 {
		return trivial(rec, values, PhaseCounting), nil
	}
	_, hi := bounds(values)
	if err := input.CheckSpan(0, hi); err != nil {
		return nil, err
	}

	// 2. Count
	b := newBoard(rec, values, PhaseCounting)
	b.counts = make([]int, int(hi)+1)
	b.output = make([]trace.Item, len(values))
	b.emit(fmt.Sprintf("input of %d values, %d counters", len(values), len(b.counts)), nil)
	var i, v int
	for i = range b.a {
		v = int(b.a[i].Value)
		b.counts[v]++
		b.emit(fmt.Sprintf("count %d: counts[%d]=%d", v, v, b.counts[v]),
			trace.Roles{trace.Active: {i}, trace.Bucket: {v}})
	}

	// 3. Prefix sums
	b.phase = PhaseAccumulating
	for v = 1; v < len(b.counts); v++ {
		b.counts[v] += b.counts[v-1]
		b.emit(fmt.Sprintf("counts[%d] += counts[%d] -> %d", v, v-1, b.counts[v]),
			trace.Roles{trace.Bucket: {v}})
	}

	// 4. Place from the right
	b.phase = PhasePlacing
	var pos int
	for i = len(b.a) - 1; i >= 0; i-- {
		v = int(b.a[i].Value)
		pos = b.counts[v] - 1
		b.output[pos] = b.a[i]
		b.emit(fmt.Sprintf("place %d at output[%d]", v, pos), trace.Roles{trace.Active: {i}, trace.Bucket: {v}})
		b.counts[v]--
		b.emit(fmt.Sprintf("decrement counts[%d] -> %d", v, b.counts[v]), trace.Roles{trace.Bucket: {v}})
	}

	// 5. Collect
	b.phase = PhaseCollection
	for i = range b.output {
		b.a[i] = b.output[i]
		b.emit(fmt.Sprintf("copy output[%d]=%g into a[%d]", i, b.output[i].Value, i), trace.Roles{trace.Active: {i}})
	}

	return b.finish(), nil
}

// Radix is the least-significant-digit radix sort over 10 buckets. One pass
// per digit of the maximum; buckets are drained FIFO, so it is stable.
//
// Errors: ErrInvalidInput for non-integers, negatives, NaN/Inf or values
// beyond 1e15.
//
// Complexity: O(d·(n + 10)) for d digits.
func Radix(rec *trace.Recorder, values []float64) ([]float64, error) {
	if err := input.CheckNonNegativeIntegers(values); err != nil {
		return nil, err
	}
	if len(values) < 2 {
		return trivial(rec, values, PhaseDistribution), nil
	}
	_, hi := bounds(values)
	if hi > maxRadixValue {
		return nil, errors.Wrapf(input.ErrInvalidInput, "radix value %g exceeds %g", hi, maxRadixValue)
	}

	b := newBoard(rec, values, PhaseDistribution)
	b.buckets = emptyBuckets(10)
	b.emit(fmt.Sprintf("input of %d values, max %g", len(values), hi), nil)

	maxVal := int(hi)
	pass := 0
	for place := 1; maxVal/place > 0; place *= 10 {
		b.marks[MarkPlace], b.marks[MarkPass] = place, pass
		b.phase = PhaseDistribution
		for i := range b.a {
			b.push(i, int(b.a[i].Value)/place%10)
		}
		b.drain()
		pass++
	}

	return b.finish(), nil
}

// Bucket sorts values in [0,1) with Options.Buckets buckets evenly spanning
// the interval; value v goes to bucket floor(v*k). Each bucket is insertion
// sorted by adjacent swaps (stable), then buckets are drained in order.
//
// Errors: ErrInvalidInput for values outside [0,1) or more than
// input.MaxDomain buckets.
//
// Complexity: O(n + k) average, O(n²) when all values share a bucket.
func Bucket(rec *trace.Recorder, values []float64, opts ...Option) ([]float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Buckets > input.MaxDomain {
		return nil, errors.Wrapf(input.ErrInvalidInput, "%d buckets exceed %d", o.Buckets, input.MaxDomain)
	}
	if err := input.CheckUnit(values); err != nil {
		return nil, err
	}
	if len(values) < 2 {
		return trivial(rec, values, PhaseDistribution), nil
	}

	b := newBoard(rec, values, PhaseDistribution)
	b.buckets = emptyBuckets(o.Buckets)
	b.emit(fmt.Sprintf("input of %d values, %d buckets", len(values), o.Buckets), nil)
	k := float64(o.Buckets)
	for i := range b.a {
		b.push(i, int(math.Floor(b.a[i].Value*k)))
	}

	b.phase = PhaseSorting
	for q := range b.buckets {
		bucket := b.buckets[q]
		for i := 1; i < len(bucket); i++ {
			for j := i; j > 0; j-- {
				b.emit(fmt.Sprintf("bucket %d: compare %g with %g", q, bucket[j-1].Value, bucket[j].Value),
					trace.Roles{trace.Bucket: {q}})
				if bucket[j-1].Value <= bucket[j].Value {
					break
				}
				bucket[j-1], bucket[j] = bucket[j], bucket[j-1]
				b.emit(fmt.Sprintf("bucket %d: swap %g and %g", q, bucket[j].Value, bucket[j-1].Value),
					trace.Roles{trace.Bucket: {q}})
			}
		}
	}
	b.drain()

	return b.finish(), nil
}

// Pigeonhole sorts integers with max-min+1 holes, visited in ascending order,
// FIFO within a hole (stable).
//
// Errors: ErrInvalidInput for non-integers, NaN/Inf or a span beyond
// input.MaxDomain holes.
//
// Complexity: O(n + span).
func Pigeonhole(rec *trace.Recorder, values []float64) ([]float64, error) {
	if err := input.CheckIntegers(values); err != nil {
		return nil, err
	}
	if len(values) < 2 {
		return trivial(rec, values, PhaseDistribution), nil
	}
	lo, hi := bounds(values)
	if err := input.CheckSpan(lo, hi); err != nil {
		return nil, err
	}

	b := newBoard(rec, values, PhaseDistribution)
	b.buckets = emptyBuckets(int(hi-lo) + 1)
	b.emit(fmt.Sprintf("input of %d values, %d holes from %g", len(values), len(b.buckets), lo), nil)
	for i := range b.a {
		b.push(i, int(b.a[i].Value-lo))
	}
	b.drain()

	return b.finish(), nil
}
