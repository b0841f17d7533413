package trace

// Trace is the finite, ordered, immutable sequence of Steps produced by one
// adapter run. It always holds at least one Step and ends in PhaseComplete.
//
// A Trace never hands out references to its internal Steps: every accessor
// returns deep copies, so a Trace is safe to share across goroutines.
type Trace struct {
	algorithm string
	steps     []Step
}

// Algorithm returns the label of the adapter that produced the trace.
func (t *Trace) Algorithm() string {
	return t.algorithm
}

// Len returns the number of Steps.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}

	return len(t.steps)
}

// At returns a copy of Step i. i is clamped to [0, Len()-1].
func (t *Trace) At(i int) Step {
	return t.steps[t.Clamp(i)].Clone()
}

// Clamp limits i to the valid index range of t.
func (t *Trace) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(t.steps) {
		return len(t.steps) - 1
	}

	return i
}

// First returns a copy of the initial Step (the unmodified input).
func (t *Trace) First() Step {
	return t.At(0)
}

// Last returns a copy of the terminal Step.
func (t *Trace) Last() Step {
	return t.At(len(t.steps) - 1)
}

// Steps returns copies of all Steps in order.
func (t *Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	for i := range t.steps {
		out[i] = t.steps[i].Clone()
	}

	return out
}

// Phases returns the number of Steps per phase, in order of first appearance.
func (t *Trace) Phases() ([]Phase, map[Phase]int) {
	order := make([]Phase, 0, 4)
	counts := make(map[Phase]int, 4)
	for _, s := range t.steps {
		if _, seen := counts[s.Phase]; !seen {
			order = append(order, s.Phase)
		}
		counts[s.Phase]++
	}

	return order, counts
}

// MaxChanges returns the largest Changes distance between consecutive Steps
// and the index of the first Step of that pair.
func (t *Trace) MaxChanges() (distance, at int) {
	for i := 0; i+1 < len(t.steps); i++ {
		if d := Changes(t.steps[i], t.steps[i+1]); d > distance {
			distance, at = d, i
		}
	}

	return distance, at
}
