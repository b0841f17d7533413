package maze

// AdjacencyMatrix returns the open-cell graph of g as a (rows·cols)² 0/1
// matrix indexed by row-major cell index. Wall cells have empty rows and
// columns.
//
// Complexity: O((rows·cols)²) memory.
func (g *Grid) AdjacencyMatrix() [][]int {
	n := g.rows * g.cols
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		p := g.Point(i)
		if g.Wall(p) {
			continue
		}
		for _, q := range g.Neighbors(p) {
			m[i][g.Index(q)] = 1
		}
	}

	return m
}

// AdjacencyList returns, for every row-major cell index, the indices of its
// open neighbors in exploration order (down, right, up, left). Wall cells
// have nil lists.
//
// Complexity: O(rows·cols).
func (g *Grid) AdjacencyList() [][]int {
	n := g.rows * g.cols
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		p := g.Point(i)
		if g.Wall(p) {
			continue
		}
		nbs := g.Neighbors(p)
		out[i] = make([]int, len(nbs))
		for j, q := range nbs {
			out[i][j] = g.Index(q)
		}
	}

	return out
}

// Edges returns the number of undirected edges between open cells.
func (g *Grid) Edges() int {
	total := 0
	for _, l := range g.AdjacencyList() {
		total += len(l)
	}

	return total / 2
}
