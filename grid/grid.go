package grid

import "fmt"

// Grid is a fixed-size, row-major board of cell states.
// A Grid is not safe for concurrent mutation; during a search the engine
// is its only writer.
type Grid struct {
	rows, cols int
	cells      []CellState
}

// MaxCells bounds rows×cols of any Grid.
const MaxCells = 1 << 28

// New returns a rows×cols grid with every cell Empty.
// Returns ErrEmptyGrid if either dimension is not positive and ErrTooLarge
// if rows×cols exceeds MaxCells.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
	}, nil
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns the state at c, or a *BoundsError.
func (g *Grid) Get(c Coord) (CellState, error) {
	if !g.InBounds(c) {
		return Empty, g.boundsError(c)
	}
	return g.cells[g.index(c)], nil
}

// At is Get for callers that have already bounds-checked c.
// It panics on an out-of-bounds coordinate.
func (g *Grid) At(c Coord) CellState {
	if !g.InBounds(c) {
		panic(g.boundsError(c))
	}
	return g.cells[g.index(c)]
}

// Set stores s at c.
// Placing a marker on a non-marker cell is allowed (initialization);
// replacing an existing Start or End with a different state returns
// ErrProtectedCell and leaves the grid unchanged.
func (g *Grid) Set(c Coord, s CellState) error {
	if !g.InBounds(c) {
		return g.boundsError(c)
	}
	i := g.index(c)
	if cur := g.cells[i]; cur.IsMarker() && cur != s {
		return ErrProtectedCell
	}
	g.cells[i] = s
	return nil
}

// Snapshot returns a deep copy of the cells as [row][col].
// Complexity: O(rows×cols).
func (g *Grid) Snapshot() [][]CellState {
	out := make([][]CellState, g.rows)
	for r := range out {
		out[r] = make([]CellState, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Reset turns every Visited and Path cell back into Empty so the grid can
// host another search. Markers and walls are kept.
func (g *Grid) Reset() {
	for i, s := range g.cells {
		if s == Visited || s == Path {
			g.cells[i] = Empty
		}
	}
}

// Count returns how many cells hold s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, v := range g.cells {
		if v == s {
			n++
		}
	}
	return n
}

// Find returns the first coordinate (row-major) holding s.
func (g *Grid) Find(s CellState) (Coord, bool) {
	for i, v := range g.cells {
		if v == s {
			return g.coordinate(i), true
		}
	}
	return Coord{}, false
}

// index maps c to a row-major offset: Row*cols + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// coordinate converts a row-major offset back to a Coord.
func (g *Grid) coordinate(i int) Coord {
	return Coord{Row: i / g.cols, Col: i % g.cols}
}

func (g *Grid) boundsError(c Coord) *BoundsError {
	return &BoundsError{Coord: c, Rows: g.rows, Cols: g.cols}
}

// checkDimensions divides instead of multiplying so huge inputs cannot
// overflow int.
func checkDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrEmptyGrid
	}
	if rows > MaxCells/cols {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrTooLarge, rows, cols, MaxCells)
	}
	return nil
}
