package trace

// Changes returns the number of atomic mutations separating Step a from Step b.
//
// Counting rules:
//   - an exchange of two sequence positions counts once;
//   - elements pushed or popped at either end of a sequence count once each;
//   - a newly created tree node counts once together with the link to it;
//   - a grid cell changing state counts once;
//   - moving one element between primary and auxiliary storage counts once,
//     so the result is max(primary, auxiliary) distance.
//
// Roles, Marks, Phase, Message and Outcome are ignored.
//
// Complexity: O(size of both Steps).
func Changes(a, b Step) int {
	primary := seqDiff(a.Values, b.Values) + treeDiff(a.Tree, b.Tree) + gridDiff(a.Grid, b.Grid)

	aux := seqDiff(a.Counts, b.Counts) + seqDiff(a.Output, b.Output)
	n := max(len(a.Buckets), len(b.Buckets))
	for i := 0; i < n; i++ {
		var x, y []float64
		if i < len(a.Buckets) {
			x = a.Buckets[i]
		}
		if i < len(b.Buckets) {
			y = b.Buckets[i]
		}
		aux += seqDiff(x, y)
	}

	return max(primary, aux)
}

// seqDiff counts mutations between two sequences under the rules of Changes.
func seqDiff[T comparable](x, y []T) int {
	if len(x) == len(y) {
		var diff []int
		for i := range x {
			if x[i] != y[i] {
				diff = append(diff, i)
			}
		}
		if len(diff) == 2 && x[diff[0]] == y[diff[1]] && x[diff[1]] == y[diff[0]] {
			return 1 // exchange
		}

		return len(diff)
	}

	short, long := x, y
	if len(short) > len(long) {
		short, long = long, short
	}
	d := len(long) - len(short)
	if isPrefix(short, long) || isPrefix(short, long[d:]) {
		return d
	}

	n := d
	for i := range short {
		if short[i] != long[i] {
			n++
		}
	}

	return n
}

func isPrefix[T comparable](short, long []T) bool {
	for i := range short {
		if short[i] != long[i] {
			return false
		}
	}

	return true
}

func treeDiff(x, y []Node) int {
	n := len(x) - len(y)
	if n < 0 {
		n = -n
	}
	for i := 0; i < min(len(x), len(y)); i++ {
		if x[i].Value != y[i].Value {
			n++
		}
	}

	return n
}

func gridDiff(x, y *Grid) int {
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return len(y.Cells)
	case y == nil:
		return len(x.Cells)
	}

	return seqDiff(x.Cells, y.Cells)
}
