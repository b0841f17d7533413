package trace

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of s sharing no memory with it.
func (s Step) Clone() Step {
	out := s
	out.Values = slices.Clone(s.Values)
	out.Origins = slices.Clone(s.Origins)
	out.Tree = slices.Clone(s.Tree)
	out.Counts = slices.Clone(s.Counts)
	out.Output = slices.Clone(s.Output)
	out.Marks = maps.Clone(s.Marks)

	if s.Grid != nil {
		g := *s.Grid
		g.Cells = slices.Clone(s.Grid.Cells)
		out.Grid = &g
	}
	if s.Buckets != nil {
		out.Buckets = make([][]float64, len(s.Buckets))
		for i, b := range s.Buckets {
			out.Buckets[i] = slices.Clone(b)
			if out.Buckets[i] == nil {
				out.Buckets[i] = []float64{}
			}
		}
	}
	if s.Roles != nil {
		out.Roles = make(Roles, len(s.Roles))
		for r, ps := range s.Roles {
			out.Roles[r] = slices.Clone(ps)
		}
	}
	if s.Outcome != nil {
		o := *s.Outcome
		out.Outcome = &o
	}

	return out
}
