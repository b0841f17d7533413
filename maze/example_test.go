package maze_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/maze"
	"github.com/katalvlaran/stepviz/trace"
)

// ExampleDFS solves a 3x3 maze from the top-left to the bottom-right cell.
// Neighbors are explored down, right, up, left.
//
//	. . #
//	# . .
//	# # .
func ExampleDFS() {
	g, err := maze.Parse("..#\n#..\n##.")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rec := trace.NewRecorder("maze-dfs")
	res, err := maze.DFS(rec, g, maze.Point{Row: 0, Col: 0}, maze.Point{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Path)

	// Output:
	// true [(0,0) (0,1) (1,1) (1,2) (2,2)]
}

// ExampleGrid_AdjacencyList lists the open neighbors of every open cell by
// row-major index. The wall cell 1 has no entry.
func ExampleGrid_AdjacencyList() {
	g, _ := maze.Parse(".#\n..")
	for i, nbs := range g.AdjacencyList() {
		if nbs != nil {
			fmt.Println(i, nbs)
		}
	}

	// Output:
	// 0 [2]
	// 2 [3 0]
	// 3 [2]
}
