package render

import (
	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/grid"
	"github.com/katalvlaran/gridbfs/route"
)

var _ bfs.Renderer = (*Recorder)(nil)

// Recorder keeps every frame and overlay it is handed.
// The zero value is ready to use.
type Recorder struct {
	// CountOnly counts frames without storing snapshots.
	CountOnly bool
	// OnFrame, if set, runs after each RenderGrid with the 1-based frame number.
	OnFrame func(frame int)

	frames   [][][]grid.CellState
	count    int
	overlays [][]route.Step
}

// RenderGrid implements bfs.Renderer.
func (r *Recorder) RenderGrid(g *grid.Grid) {
	r.count++
	if !r.CountOnly {
		r.frames = append(r.frames, g.Snapshot())
	}
	if r.OnFrame != nil {
		r.OnFrame(r.count)
	}
}

// RenderPath implements bfs.Renderer.
func (r *Recorder) RenderPath(_ *grid.Grid, overlay []route.Step) {
	r.overlays = append(r.overlays, append([]route.Step(nil), overlay...))
}

// FrameCount returns the number of RenderGrid calls.
func (r *Recorder) FrameCount() int { return r.count }

// Frames returns the stored snapshots, oldest first.
func (r *Recorder) Frames() [][][]grid.CellState { return r.frames }

// Last returns the most recent snapshot, or nil.
func (r *Recorder) Last() [][]grid.CellState {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

// Overlays returns every overlay received; a correct search produces at most one.
func (r *Recorder) Overlays() [][]route.Step { return r.overlays }

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.frames, r.overlays, r.count = nil, nil, 0
}
