// Package bfs provides tunable options, result types and error definitions
// for the animated grid search.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridbfs/grid"
	"github.com/katalvlaran/gridbfs/route"
)

// Sentinel errors for engine construction and execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrReentrant is returned when FindShortestPath is called while the
	// same engine is already searching, e.g. from inside a render callback.
	ErrReentrant = errors.New("bfs: search already in progress")
)

// DefaultNeighborOrder is the fixed expansion order: down, up, right, left.
// It only decides which of several equally short paths is reported.
var DefaultNeighborOrder = []route.Direction{route.Down, route.Up, route.Right, route.Left}

// Renderer is the display port the engine drives.
//
// Both methods are synchronous: the engine does not take its next step until
// the call returns. Implementations must not retain g beyond the call; use
// g.Snapshot or g.Clone to keep a frame.
type Renderer interface {
	// RenderGrid presents the grid's current state. Called once per dequeued
	// cell and once more after the path has been painted.
	RenderGrid(g *grid.Grid)
	// RenderPath draws direction markers over the last grid frame. Called
	// exactly once, and only when a path was found.
	RenderPath(g *grid.Grid, overlay []route.Step)
}

// Option configures engine behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds the collaborators and hooks of a search.
type Options struct {
	// Renderer receives a frame per step and the final overlay.
	Renderer Renderer

	// Running is polled once per loop iteration; false cancels the search.
	Running func() bool

	// Ctx is an additional cancellation channel; a done context counts as
	// "not running".
	Ctx context.Context

	// Order is the neighbor expansion order, a permutation of the four directions.
	Order []route.Direction

	// OnEnqueue is called after a cell is recorded and enqueued.
	OnEnqueue func(node, from grid.Coord)

	// OnDequeue is called right after a cell leaves the frontier, with its
	// distance in edges from the start.
	OnDequeue func(node grid.Coord, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - a no-op Renderer
//   - Running always true
//   - context.Background()
//   - DefaultNeighborOrder
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Renderer:  NopRenderer{},
		Running:   func() bool { return true },
		Ctx:       context.Background(),
		Order:     DefaultNeighborOrder,
		OnEnqueue: func(grid.Coord, grid.Coord) {},
		OnDequeue: func(grid.Coord, int) {},
	}
}

// WithRenderer sets the render sink.
func WithRenderer(r Renderer) Option {
	return func(o *Options) {
		if r != nil {
			o.Renderer = r
		}
	}
}

// WithRunning sets the cooperative cancellation signal.
func WithRunning(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Running = fn
		}
	}
}

// WithContext sets a context whose cancellation also stops the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNeighborOrder overrides the expansion order. The slice must contain
// each of the four directions exactly once; anything else is an
// ErrOptionViolation.
func WithNeighborOrder(order []route.Direction) Option {
	return func(o *Options) {
		if len(order) != len(route.Directions) {
			o.err = fmt.Errorf("%w: neighbor order needs %d directions, got %d",
				ErrOptionViolation, len(route.Directions), len(order))
			return
		}
		seen := make(map[route.Direction]bool, len(order))
		for _, d := range order {
			if int(d) >= len(route.Directions) || seen[d] {
				o.err = fmt.Errorf("%w: neighbor order %v is not a permutation", ErrOptionViolation, order)
				return
			}
			seen[d] = true
		}
		o.Order = append([]route.Direction(nil), order...)
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(node, from grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(node grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// NopRenderer discards every frame.
type NopRenderer struct{}

// RenderGrid implements Renderer.
func (NopRenderer) RenderGrid(*grid.Grid) {}

// RenderPath implements Renderer.
func (NopRenderer) RenderPath(*grid.Grid, []route.Step) {}

// State is the engine's lifecycle state.
type State int

const (
	// Idle: no search has started yet.
	Idle State = iota
	// Running: a search is in progress, or was cancelled and left suspended.
	Running
	// Succeeded: the last search reached the end cell.
	Succeeded
	// Exhausted: the last search emptied its frontier without reaching the end.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Outcome is how a search ended. None of the outcomes is an error.
type Outcome int

const (
	// Found: a shortest path was painted and rendered.
	Found Outcome = iota
	// NoPath: start and end are disconnected.
	NoPath
	// Cancelled: the running signal went false before the search finished.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NoPath:
		return "no_path"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalText encodes o by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name produced by MarshalText.
func (o *Outcome) UnmarshalText(b []byte) error {
	for _, v := range []Outcome{Found, NoPath, Cancelled} {
		if v.String() == string(b) {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("bfs: unknown outcome %q", b)
}

// Result holds the outcome of one search:
//   - Outcome: Found, NoPath or Cancelled.
//   - Path: start..end inclusive, only when Found.
//   - Overlay: goal-to-start direction markers, only when Found.
//   - Visited: cells in dequeue order.
//   - Depth: edge distance from start for every discovered cell.
//   - Predecessors: the discovery tree, read-only once returned.
type Result struct {
	Outcome      Outcome
	Path         []grid.Coord
	Overlay      []route.Step
	Visited      []grid.Coord
	Depth        map[grid.Coord]int
	Predecessors route.Predecessors
}

// Len returns the number of edges on Path, or -1 when no path was found.
func (r *Result) Len() int {
	if r.Outcome != Found {
		return -1
	}
	return len(r.Path) - 1
}
