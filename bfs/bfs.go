package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridbfs/grid"
	"github.com/katalvlaran/gridbfs/route"
)

// Engine drives searches and tracks the State of the most recent one.
// An Engine may be reused for consecutive searches but not re-entered.
type Engine struct {
	opts      Options
	state     State
	searching bool
}

// New builds an Engine from functional Options.
// Returns ErrOptionViolation for an invalid option.
func New(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Engine{opts: o, state: Idle}, nil
}

// Search is a one-shot convenience: New(opts...) then FindShortestPath.
func Search(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return e.FindShortestPath(g, start, end)
}

// State returns the state of the most recent search.
func (e *Engine) State() State {
	return e.state
}

// walker encapsulates mutable search state.
type walker struct {
	g          *grid.Grid
	opts       Options
	start, end grid.Coord
	queue      []grid.Coord
	res        *Result
}

// FindShortestPath searches g from start to end, mutating g in place:
// dequeued cells become Visited and, on success, intermediate path cells
// become Path. Start and End are never overwritten.
//
// Outcomes (Found, NoPath, Cancelled) are reported through Result; the
// returned error is reserved for faults: ErrGridNil, a *grid.BoundsError for
// an out-of-grid start or end, ErrReentrant, or a corrupt predecessor chain.
//
// Time O(m×n), memory O(m×n).
func (e *Engine) FindShortestPath(g *grid.Grid, start, end grid.Coord) (*Result, error) {
	if e.searching {
		return nil, ErrReentrant
	}
	if g == nil {
		return nil, ErrGridNil
	}
	for _, c := range []grid.Coord{start, end} {
		if _, err := g.Get(c); err != nil {
			return nil, err
		}
	}

	e.searching = true
	defer func() { e.searching = false }()
	e.state = Running

	rows, cols := g.Dimensions()
	w := &walker{
		g:     g,
		opts:  e.opts,
		start: start,
		end:   end,
		queue: make([]grid.Coord, 0, rows+cols),
		res: &Result{
			Depth:        map[grid.Coord]int{start: 0},
			Predecessors: route.NewPredecessors(start),
		},
	}
	w.queue = append(w.queue, start)

	res, err := w.loop()
	if err != nil {
		return nil, err
	}
	switch res.Outcome {
	case Found:
		e.state = Succeeded
	case NoPath:
		e.state = Exhausted
	}
	// Cancelled leaves the engine suspended in Running.
	return res, nil
}

// running reports whether the search may take another step.
func (w *walker) running() bool {
	if w.opts.Ctx.Err() != nil {
		return false
	}
	return w.opts.Running()
}

// loop processes the frontier until the goal, exhaustion or cancellation.
func (w *walker) loop() (*Result, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		if !w.running() {
			w.res.Outcome = Cancelled
			return w.res, nil
		}

		node := w.dequeue()
		if node == w.end {
			return w.res, w.finish()
		}
		if node != w.start {
			if err := w.g.Set(node, grid.Visited); err != nil {
				return nil, fmt.Errorf("bfs: mark %v visited: %w", node, err)
			}
		}
		w.opts.Renderer.RenderGrid(w.g)
		w.enqueueNeighbors(node)
	}
	w.res.Outcome = NoPath
	return w.res, nil
}

// dequeue pops the front cell, records it and invokes OnDequeue.
func (w *walker) dequeue() grid.Coord {
	node := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Visited = append(w.res.Visited, node)
	w.opts.OnDequeue(node, w.res.Depth[node])
	return node
}

// enqueueNeighbors records and enqueues every in-bounds, non-wall,
// undiscovered neighbor of node in the configured order. Recording the
// predecessor at enqueue time keeps each cell in the queue at most once.
func (w *walker) enqueueNeighbors(node grid.Coord) {
	for _, d := range w.opts.Order {
		nbr := node.Add(d.Offset())
		if !w.g.InBounds(nbr) || w.g.At(nbr) == grid.Wall {
			continue
		}
		if w.res.Predecessors.Has(nbr) {
			continue
		}
		w.res.Predecessors[nbr] = node
		w.res.Depth[nbr] = w.res.Depth[node] + 1
		w.queue = append(w.queue, nbr)
		w.opts.OnEnqueue(nbr, node)
	}
}

// finish reconstructs the path, paints it, and emits the final frame and
// the overlay.
func (w *walker) finish() error {
	paint, overlay, err := route.Reconstruct(w.res.Predecessors, w.end)
	if err != nil {
		return err
	}
	path, err := route.Trace(w.res.Predecessors, w.end)
	if err != nil {
		return err
	}
	for _, c := range paint {
		if err := w.g.Set(c, grid.Path); err != nil {
			return fmt.Errorf("bfs: paint %v: %w", c, err)
		}
	}
	w.res.Outcome = Found
	w.res.Path = path
	w.res.Overlay = overlay
	w.opts.Renderer.RenderGrid(w.g)
	w.opts.Renderer.RenderPath(w.g, overlay)
	return nil
}
