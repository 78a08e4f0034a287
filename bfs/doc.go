// Package bfs animates an unweighted shortest-path search on a grid.Grid.
//
// What
//
//   - Explore cells in non-decreasing distance (edge count) from a start cell,
//     moving only between orthogonal neighbors that are not walls.
//   - Mark every dequeued cell Visited and hand the grid to a Renderer once
//     per step; this is the animation's frame cadence.
//   - On reaching the end cell, paint the intermediate path cells Path,
//     render one last frame, then render a direction overlay.
//   - Return a Result: the Outcome (Found, NoPath or Cancelled), the
//     start..end Path, the goal-to-start Overlay of (cell, direction)
//     markers, and Visited, Depth and Predecessors for inspection.
//
// Why
//
//   - Show how BFS floods a board and why the path it reports is shortest.
//   - Keep the search headless: rendering and cancellation are injected, so
//     tests drive it with a recording sink and no display.
//
// State machine
//
//	Idle ──FindShortestPath──▶ Running ──goal dequeued──▶ Succeeded
//	                              │
//	                              ├──frontier empty──▶ Exhausted
//	                              └──not running────▶ (stays Running, Outcome=Cancelled)
//
// Concurrency
//
//	The engine is single-threaded: it never starts goroutines and only yields
//	at render callbacks and the once-per-iteration running check. Calling
//	FindShortestPath from inside a callback returns ErrReentrant.
//
// Determinism
//
//	Neighbors are expanded in a fixed order (DefaultNeighborOrder: down, up,
//	right, left), so the same grid always yields the same predecessor map
//	and the same path.
//
// Complexity (m×n grid)
//
//   - Time:   O(m×n)   (each cell enqueued at most once, 4 neighbors each)
//   - Memory: O(m×n)   (queue, predecessor map, depth map)
//
// Usage
//
//	g, _ := grid.Classic().Build()
//	res, err := bfs.Search(g, grid.C(2, 2), grid.C(17, 11),
//	    bfs.WithRenderer(sink),
//	    bfs.WithRunning(running.Load),
//	)
//	if err != nil {
//	    // ErrGridNil, *grid.BoundsError, ErrReentrant, ErrOptionViolation,
//	    // or a corrupt chain from package route
//	}
//	switch res.Outcome {
//	case bfs.Found:     // res.Path, res.Overlay
//	case bfs.NoPath:    // start and end are disconnected
//	case bfs.Cancelled: // running went false; grid left part-explored
//	}
//
// Options
//
//   - DefaultOptions():         no-op renderer, always running, default order.
//   - WithRenderer(r):          set the render sink.
//   - WithRunning(fn):          cooperative cancellation signal.
//   - WithContext(ctx):         cancellation via context.
//   - WithNeighborOrder(order): permutation of the four directions.
//   - WithOnEnqueue(fn):        hook after a cell is enqueued.
//   - WithOnDequeue(fn):        hook right after a cell is dequeued.
package bfs
