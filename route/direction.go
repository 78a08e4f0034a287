package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridbfs/grid"
)

// ErrInvalidAdjacency is matched by every *AdjacencyError.
var ErrInvalidAdjacency = errors.New("route: coordinates are not adjacent")

// AdjacencyError reports a direction request between non-neighbors.
type AdjacencyError struct {
	From, To grid.Coord
}

// Error implements error.
func (e *AdjacencyError) Error() string {
	return fmt.Sprintf("route: %v and %v are not adjacent", e.From, e.To)
}

// Is lets errors.Is(err, ErrInvalidAdjacency) match any *AdjacencyError.
func (e *AdjacencyError) Is(target error) bool {
	return target == ErrInvalidAdjacency
}

// Direction is one of the four cardinal moves on a grid.
type Direction uint8

// The four moves, in row-then-column order.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every Direction once.
var Directions = [...]Direction{Up, Down, Left, Right}

var (
	dirNames   = [...]string{Up: "up", Down: "down", Left: "left", Right: "right"}
	dirOffsets = [...]grid.Coord{Up: {Row: -1}, Down: {Row: 1}, Left: {Col: -1}, Right: {Col: 1}}
)

// String returns "up", "down", "left" or "right".
func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Offset returns the unit coordinate delta for d.
// An out-of-range Direction has the zero offset.
func (d Direction) Offset() grid.Coord {
	if int(d) < len(dirOffsets) {
		return dirOffsets[d]
	}
	return grid.Coord{}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// ParseDirection parses a case-insensitive direction name.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, dirNames[d]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("route: unknown direction %q", s)
}

// MarshalText encodes d by name.
func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= len(dirNames) {
		return nil, fmt.Errorf("route: invalid direction %d", uint8(d))
	}
	return []byte(dirNames[d]), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Resolve returns the direction of the single step from -> to.
// from and to must be at Manhattan distance exactly 1; anything else yields
// an *AdjacencyError.
func Resolve(from, to grid.Coord) (Direction, error) {
	switch {
	case to.Col == from.Col && to.Row == from.Row+1:
		return Down, nil
	case to.Col == from.Col && to.Row == from.Row-1:
		return Up, nil
	case to.Row == from.Row && to.Col == from.Col+1:
		return Right, nil
	case to.Row == from.Row && to.Col == from.Col-1:
		return Left, nil
	}
	return 0, &AdjacencyError{From: from, To: to}
}
