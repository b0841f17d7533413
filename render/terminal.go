package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/stepviz/trace"
)

// roleLetters are the plain-mode markers of each role.
var roleLetters = map[trace.Role]byte{
	trace.Swapping:  'S',
	trace.Comparing: 'C',
	trace.Pivot:     'P',
	trace.Active:    'A',
	trace.Path:      '*',
	trace.Visited:   'v',
	trace.Sorted:    '=',
	trace.Discarded: 'x',
}

// cellGlyphs draws grid cells.
var cellGlyphs = map[trace.Cell]byte{
	trace.CellOpen:        '.',
	trace.CellWall:        '#',
	trace.CellVisited:     'o',
	trace.CellBacktracked: 'x',
	trace.CellPath:        '*',
}

// Options configures a Renderer.
type Options struct {
	Color      bool
	PlotHeight int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns colored output and a 10-row plot.
func DefaultOptions() Options {
	return Options{Color: true, PlotHeight: 10}
}

// WithColor enables or disables ANSI colors.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// WithPlotHeight sets the plot height in rows. Non-positive values are ignored.
func WithPlotHeight(h int) Option {
	return func(o *Options) {
		if h > 0 {
			o.PlotHeight = h
		}
	}
}

// Renderer draws Steps. It holds no state besides its palette and is safe
// for concurrent use.
type Renderer struct {
	opts    Options
	palette map[trace.Role]*color.Color
	cells   map[trace.Cell]*color.Color
	header  *color.Color
}

// New returns a Renderer.
func New(opts ...Option) *Renderer {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	r := &Renderer{
		opts: o,
		palette: map[trace.Role]*color.Color{
			trace.Swapping:  color.New(color.FgRed, color.Bold),
			trace.Comparing: color.New(color.FgYellow, color.Bold),
			trace.Pivot:     color.New(color.FgMagenta, color.Bold),
			trace.Active:    color.New(color.FgCyan, color.Bold),
			trace.Path:      color.New(color.FgGreen, color.Bold),
			trace.Visited:   color.New(color.FgBlue),
			trace.Sorted:    color.New(color.FgGreen),
			trace.Discarded: color.New(color.FgHiBlack),
			trace.Bucket:    color.New(color.FgCyan),
		},
		cells: map[trace.Cell]*color.Color{
			trace.CellOpen:        color.New(color.Reset),
			trace.CellWall:        color.New(color.FgHiBlack),
			trace.CellVisited:     color.New(color.FgBlue),
			trace.CellBacktracked: color.New(color.FgRed),
			trace.CellPath:        color.New(color.FgGreen, color.Bold),
		},
		header: color.New(color.Bold),
	}
	for _, c := range r.palette {
		r.toggle(c)
	}
	for _, c := range r.cells {
		r.toggle(c)
	}
	r.toggle(r.header)

	return r
}

func (r *Renderer) toggle(c *color.Color) {
	if r.opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// Step renders s under a "cursor/total [phase] message" header.
func (r *Renderer) Step(s trace.Step, cursor, total int) string {
	var b strings.Builder
	b.WriteString(r.header.Sprintf("%d/%d [%s] %s", cursor+1, total, s.Phase, s.Message))
	b.WriteByte('\n')

	switch {
	case s.Grid != nil:
		r.grid(&b, s)
	case s.Tree != nil:
		r.tree(&b, s)
	default:
		r.values(&b, s)
	}
	if s.Buckets != nil {
		r.buckets(&b, s)
	}
	if s.Counts != nil {
		fmt.Fprintf(&b, "counts: %v\n", s.Counts)
	}
	if s.Output != nil {
		fmt.Fprintf(&b, "output: %v\n", s.Output)
	}
	if len(s.Marks) > 0 {
		keys := make([]string, 0, len(s.Marks))
		for k := range s.Marks {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%d", k, s.Marks[k])
		}
		fmt.Fprintf(&b, "marks: %s\n", strings.Join(parts, " "))
	}
	if s.Outcome != nil {
		if s.Outcome.Found {
			fmt.Fprintf(&b, "found at %d\n", s.Outcome.Index)
		} else {
			b.WriteString("not found\n")
		}
	}

	return b.String()
}

// roleAt returns the highest priority non-bucket role of position i.
func roleAt(roles trace.Roles, i int) (trace.Role, bool) {
	for _, role := range trace.AllRoles {
		if role != trace.Bucket && roles.Has(role, i) {
			return role, true
		}
	}

	return "", false
}

func (r *Renderer) values(b *strings.Builder, s trace.Step) {
	if len(s.Values) == 0 {
		b.WriteString("(empty)\n")

		return
	}
	cols := make([]string, len(s.Values))
	width := 1
	for i, v := range s.Values {
		cols[i] = fmt.Sprintf("%g", v)
		width = max(width, len(cols[i]))
	}
	var (
		marks  strings.Builder
		marked bool
	)
	for i, text := range cols {
		if i > 0 {
			b.WriteByte(' ')
			marks.WriteByte(' ')
		}
		cell := fmt.Sprintf("%*s", width, text)
		mark := byte(' ')
		if role, ok := roleAt(s.Roles, i); ok {
			cell = r.palette[role].Sprint(cell)
			mark = roleLetters[role]
			marked = true
		}
		b.WriteString(cell)
		marks.WriteString(strings.Repeat(" ", width-1))
		marks.WriteByte(mark)
	}
	b.WriteByte('\n')
	if marked && !r.opts.Color {
		b.WriteString(strings.TrimRight(marks.String(), " "))
		b.WriteByte('\n')
	}
}

func (r *Renderer) buckets(b *strings.Builder, s trace.Step) {
	for q, bucket := range s.Buckets {
		line := fmt.Sprintf("bucket %d: %v", q, bucket)
		if s.Roles.Has(trace.Bucket, q) {
			line = r.palette[trace.Bucket].Sprint(line)
			if !r.opts.Color {
				line += " <"
			}
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// tree draws the arena sideways, one node per line, right subtree above.
func (r *Renderer) tree(b *strings.Builder, s trace.Step) {
	if len(s.Tree) == 0 {
		b.WriteString("(empty tree)\n")

		return
	}
	var walk func(id, depth int)
	walk = func(id, depth int) {
		if id == trace.NoChild {
			return
		}
		n := s.Tree[id]
		walk(n.Right, depth+1)
		text := fmt.Sprintf("%g", n.Value)
		if role, ok := roleAt(s.Roles, id); ok {
			text = r.palette[role].Sprint(text)
			if !r.opts.Color {
				text += " " + string(roleLetters[role])
			}
		}
		b.WriteString(strings.Repeat("    ", depth))
		b.WriteString(text)
		b.WriteByte('\n')
		walk(n.Left, depth+1)
	}
	walk(0, 0)
}

func (r *Renderer) grid(b *strings.Builder, s trace.Step) {
	g := s.Grid
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := g.At(row, col)
			b.WriteString(r.cells[cell].Sprint(string(cellGlyphs[cell])))
		}
		b.WriteByte('\n')
	}
}

// Plot draws values as an ascii line graph. It returns "" for fewer than
// two values.
func (r *Renderer) Plot(values []float64) string {
	if len(values) < 2 {
		return ""
	}

	return asciigraph.Plot(values, asciigraph.Height(r.opts.PlotHeight))
}
