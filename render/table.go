package render

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/registry"
	"github.com/katalvlaran/stepviz/trace"
)

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}

// Algorithms renders the registry listing: id, name, family, stability and
// default input.
func Algorithms(algs []registry.Algorithm) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"ID", "Name", "Family", "Stable", "Default input"})
	for _, a := range algs {
		stable := ""
		if a.Stable() {
			stable = "yes"
		}
		tbl.AppendRow(table.Row{a.ID(), a.Name(), a.Family(), stable, Profile(a.Profile())})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d algorithms", len(algs))})

	return tbl.Render()
}

// Summary renders the Steps per phase of tr, in order of first appearance.
func Summary(tr *trace.Trace) string {
	order, counts := tr.Phases()
	total := tr.Len()
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Phase", "Steps", "Share"})
	for _, p := range order {
		tbl.AppendRow(table.Row{p, humanize.Comma(int64(counts[p])), fmt.Sprintf("%.1f%%", 100*float64(counts[p])/float64(total))})
	}
	tbl.AppendFooter(table.Row{tr.Algorithm(), humanize.Comma(int64(total)), ""})

	return tbl.Render()
}

// Profile describes a generator profile in a few words.
func Profile(p input.Profile) string {
	switch p.Kind {
	case input.Integers:
		return fmt.Sprintf("%d integers in %d..%d", p.Length, p.Min, p.Max)
	case input.SortedIntegers:
		return fmt.Sprintf("%d sorted integers in %d..%d", p.Length, p.Min, p.Max)
	case input.Fractions:
		return fmt.Sprintf("%d fractions in [0,1)", p.Length)
	case input.Grid:
		return fmt.Sprintf("%dx%d grid, %.0f%% walls", p.Rows, p.Cols, 100*p.Density)
	default:
		return p.Kind.String()
	}
}

// Check is one row of a property check report.
type Check struct {
	Algorithm string
	Runs      int
	Steps     int
	Failures  int
	First     error // first failure, if any
}

// Checks renders a property check report with a totals footer.
func Checks(rows []Check) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Algorithm", "Runs", "Steps", "Failures", "First failure"})
	var runs, steps, failures int
	for _, c := range rows {
		first := ""
		if c.First != nil {
			first = c.First.Error()
		}
		tbl.AppendRow(table.Row{c.Algorithm, c.Runs, humanize.Comma(int64(c.Steps)), c.Failures, first})
		runs += c.Runs
		steps += c.Steps
		failures += c.Failures
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d algorithms", len(rows)), runs, humanize.Comma(int64(steps)), failures, ""})

	return tbl.Render()
}
