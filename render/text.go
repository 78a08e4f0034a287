package render

import (
	"bufio"
	"io"
	"time"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/grid"
	"github.com/katalvlaran/gridbfs/route"
)

var _ bfs.Renderer = (*Text)(nil)

// Glyph returns the ASCII character Text uses for s.
func Glyph(s grid.CellState) byte {
	switch s {
	case grid.Start:
		return 'S'
	case grid.End:
		return 'E'
	case grid.Wall:
		return '#'
	case grid.Visited:
		return 'o'
	case grid.Path:
		return '*'
	default:
		return '.'
	}
}

// Arrow returns the ASCII arrow Text uses for d.
func Arrow(d route.Direction) byte {
	switch d {
	case route.Up:
		return '^'
	case route.Down:
		return 'v'
	case route.Left:
		return '<'
	default:
		return '>'
	}
}

// Text prints frames as ASCII art separated by blank lines.
type Text struct {
	w     *bufio.Writer
	every int
	delay time.Duration
	calls int
	err   error
}

// TextOption configures a Text sink.
type TextOption func(*Text)

// WithEvery prints only every n-th RenderGrid frame. The overlay frame,
// which shows the finished grid, is always printed. n < 1 is ignored.
func WithEvery(n int) TextOption {
	return func(t *Text) {
		if n > 0 {
			t.every = n
		}
	}
}

// WithDelay sleeps d after every printed frame.
func WithDelay(d time.Duration) TextOption {
	return func(t *Text) { t.delay = d }
}

// NewText returns a Text sink writing to w.
func NewText(w io.Writer, opts ...TextOption) *Text {
	t := &Text{w: bufio.NewWriter(w), every: 1}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RenderGrid implements bfs.Renderer.
func (t *Text) RenderGrid(g *grid.Grid) {
	t.calls++
	if t.calls%t.every != 0 {
		return
	}
	t.frame(g.Snapshot(), nil)
}

// RenderPath implements bfs.Renderer.
func (t *Text) RenderPath(g *grid.Grid, overlay []route.Step) {
	t.frame(g.Snapshot(), overlay)
}

// Err returns the first write error, if any.
func (t *Text) Err() error {
	return t.err
}

func (t *Text) frame(cells [][]grid.CellState, overlay []route.Step) {
	if t.err != nil {
		return
	}
	lines := make([][]byte, len(cells))
	for r, row := range cells {
		lines[r] = make([]byte, len(row))
		for c, s := range row {
			lines[r][c] = Glyph(s)
		}
	}
	for _, st := range overlay {
		lines[st.Cell.Row][st.Cell.Col] = Arrow(st.Dir)
	}
	for _, line := range lines {
		t.w.Write(line)
		t.w.WriteByte('\n')
	}
	t.w.WriteByte('\n')
	t.err = t.w.Flush()
	if t.delay > 0 {
		time.Sleep(t.delay)
	}
}
