package grid

import "fmt"

// CellState is the visual state of a single cell.
type CellState uint8

const (
	// Empty is an unexplored, walkable cell.
	Empty CellState = iota
	// Start marks the search origin.
	Start
	// End marks the search goal.
	End
	// Wall is never entered by the search.
	Wall
	// Visited marks a cell the search has dequeued.
	Visited
	// Path marks an intermediate cell of the reported shortest path.
	Path
)

var stateNames = [...]string{
	Empty:   "empty",
	Start:   "start",
	End:     "end",
	Wall:    "wall",
	Visited: "visited",
	Path:    "path",
}

// String returns the lower-case state name.
func (s CellState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// IsMarker reports whether s is Start or End.
func (s CellState) IsMarker() bool {
	return s == Start || s == End
}

// Coord is a 0-indexed (Row, Col) grid coordinate.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
