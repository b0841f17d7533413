package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/maze"
	"github.com/katalvlaran/stepviz/registry"
	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/session"
)

// Maze views.
const (
	viewGrid   = "grid"
	viewMatrix = "matrix"
	viewList   = "list"
)

func newMazeCommand(a *app) *cobra.Command {
	var (
		rows, cols int
		density    float64
		file       string
		view       string
		all        bool
	)
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate or load a maze and solve it depth-first",
		Long: `Maze builds a random wall grid (or reads one from --file, '#' for
walls and '.' for open cells), searches it depth-first from the top-left
to the bottom-right cell and prints the solved grid. The matrix and list
views print the open-cell graph instead.`,
		Example: `  stepviz maze --rows 8 --cols 12 --density 0.25
  stepviz maze --file maze.txt --view list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch view {
			case viewGrid, viewMatrix, viewList:
			default:
				return errors.Newf("unknown view %q, want grid, matrix or list", view)
			}
			r, c, d := a.cfg.Maze.Rows, a.cfg.Maze.Cols, a.cfg.Maze.WallDensity
			if cmd.Flags().Changed("rows") {
				r = rows
			}
			if cmd.Flags().Changed("cols") {
				c = cols
			}
			if cmd.Flags().Changed("density") {
				d = density
			}
			s := a.session(session.WithMaze(r, c, d))
			defer s.Close()
			if err := s.Select(registry.MazeDFS); err != nil {
				return err
			}
			if file != "" {
				g, err := readMaze(file)
				if err != nil {
					return err
				}
				end := maze.Point{Row: g.Rows() - 1, Col: g.Cols() - 1}
				if err = s.Submit(registry.Input{Grid: g, Start: maze.Point{}, End: end}); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			g := s.Input().Grid
			switch view {
			case viewMatrix:
				writeMatrix(out, g.AdjacencyMatrix())
			case viewList:
				writeList(out, g.AdjacencyList())
			default:
				tr := s.Trace()
				if all {
					for i, st := range tr.Steps() {
						fmt.Fprintln(out, a.renderer.Step(st, i, tr.Len()))
					}
				} else {
					fmt.Fprintln(out, a.renderer.Step(tr.Last(), tr.Len()-1, tr.Len()))
				}
				fmt.Fprintln(out, render.Summary(tr))
			}
			fmt.Fprintf(out, "%dx%d grid, %d open edges\n", g.Rows(), g.Cols(), g.Edges())

			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&rows, "rows", 0, "grid rows (default from config)")
	flags.IntVar(&cols, "cols", 0, "grid columns (default from config)")
	flags.Float64Var(&density, "density", 0, "wall density in [0,1) (default from config)")
	flags.StringVar(&file, "file", "", "read the grid from a file instead of generating it")
	flags.StringVar(&view, "view", viewGrid, "output: grid, matrix or list")
	flags.BoolVar(&all, "all", false, "print every step of the search")

	return cmd
}

func readMaze(path string) (*maze.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read maze %s", path)
	}
	g, err := maze.Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parse maze %s", path)
	}

	return g, nil
}

func writeMatrix(w io.Writer, m [][]int) {
	for _, row := range m {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.Itoa(v)
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}

func writeList(w io.Writer, adj [][]int) {
	for i, nbs := range adj {
		if nbs == nil {
			continue
		}
		ids := make([]string, len(nbs))
		for j, v := range nbs {
			ids[j] = strconv.Itoa(v)
		}
		fmt.Fprintf(w, "%d: %s\n", i, strings.Join(ids, " "))
	}
}
