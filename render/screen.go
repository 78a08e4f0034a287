package render

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/grid"
	"github.com/katalvlaran/gridbfs/route"
)

var _ bfs.Renderer = (*Screen)(nil)

// CellWidth is the number of terminal columns per grid cell.
const CellWidth = 2

var palette = map[grid.CellState]tcell.Color{
	grid.Start:   tcell.ColorDarkBlue,
	grid.End:     tcell.ColorDarkRed,
	grid.Empty:   tcell.ColorGray,
	grid.Wall:    tcell.ColorBlack,
	grid.Visited: tcell.ColorOrange,
	grid.Path:    tcell.ColorGreen,
}

var arrows = map[route.Direction]rune{
	route.Up:    '↑',
	route.Down:  '↓',
	route.Left:  '←',
	route.Right: '→',
}

// CellColor returns the background color Screen paints for s.
func CellColor(s grid.CellState) tcell.Color {
	if c, ok := palette[s]; ok {
		return c
	}
	return tcell.ColorDefault
}

// Screen is a terminal sink. Each grid cell is CellWidth columns wide;
// the row below the grid holds a status line.
type Screen struct {
	screen  tcell.Screen
	delay   time.Duration
	running atomic.Bool
	rows    int
}

// OpenScreen initializes the controlling terminal and wraps it.
func OpenScreen(delay time.Duration) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return NewScreen(s, delay), nil
}

// NewScreen wraps an initialized tcell.Screen. delay is slept after every
// frame so the search is slow enough to watch.
func NewScreen(s tcell.Screen, delay time.Duration) *Screen {
	sc := &Screen{screen: s, delay: delay}
	sc.running.Store(true)
	return sc
}

// Running reports whether the viewer still wants the search to go on.
// Pass it to bfs.WithRunning.
func (s *Screen) Running() bool {
	return s.running.Load()
}

// Stop flips Running to false.
func (s *Screen) Stop() {
	s.running.Store(false)
}

// Watch polls terminal events on its own goroutine until the screen is
// closed. Esc, Ctrl-C and 'q' call Stop; resizes trigger a full redraw.
// It returns a channel closed when polling ends.
func (s *Screen) Watch() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					s.Stop()
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		}
	}()
	return done
}

// RenderGrid implements bfs.Renderer.
func (s *Screen) RenderGrid(g *grid.Grid) {
	rows, cols := g.Dimensions()
	s.rows = rows
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			st := tcell.StyleDefault.Background(CellColor(g.At(grid.C(r, c))))
			for i := 0; i < CellWidth; i++ {
				s.screen.SetContent(c*CellWidth+i, r, ' ', nil, st)
			}
		}
	}
	s.show()
}

// RenderPath implements bfs.Renderer.
func (s *Screen) RenderPath(_ *grid.Grid, overlay []route.Step) {
	st := tcell.StyleDefault.Background(CellColor(grid.Path)).Foreground(tcell.ColorWhite).Bold(true)
	for _, step := range overlay {
		s.screen.SetContent(step.Cell.Col*CellWidth, step.Cell.Row, arrows[step.Dir], nil, st)
	}
	s.show()
}

// Status writes msg on the line below the grid.
func (s *Screen) Status(msg string) {
	w, _ := s.screen.Size()
	st := tcell.StyleDefault
	x := 0
	for _, r := range msg {
		if x >= w {
			break
		}
		s.screen.SetContent(x, s.rows, r, nil, st)
		x++
	}
	for ; x < w; x++ {
		s.screen.SetContent(x, s.rows, ' ', nil, st)
	}
	s.screen.Show()
}

// Close restores the terminal. Watch goroutines exit afterwards.
func (s *Screen) Close() {
	s.screen.Fini()
}

func (s *Screen) show() {
	s.screen.Show()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}
