// Package gridbfs is a step-by-step breadth-first search over a rectangular
// board of cells, built to be watched.
//
// 🚀 What is gridbfs?
//
//	A small engine plus the sinks that display it:
//		• grid/  : cell states, coordinates, the Grid itself and board layouts (ASCII or YAML)
//		• route/ : directions between neighbors and path reconstruction from predecessors
//		• bfs/   : the engine: one frame per dequeued cell, cooperative cancellation
//		• render/: frame recorder, ASCII text sink and a tcell terminal sink
//		• server/: gin HTTP API that runs a search and returns its frames
//
// ✨ Why gridbfs?
//
//   - Deterministic – fixed neighbor order, identical frames on every run
//   - Observable – every step is pushed to a Renderer before the next one starts
//   - Interruptible – a running flag or a context stops the search between steps
//
// Quick ASCII example (S start, E end, # wall, o explored, arrows = path):
//
//	S o # > > > v
//	v o # ^ # # v
//	> > > ^ # E <
//
// Run the classic demonstration board in a terminal:
//
//	go run ./cmd/gridbfs
//
// or print frames instead of animating them:
//
//	go run ./cmd/gridbfs -mode text -every 25
package gridbfs
