package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrTooLarge indicates a grid with more than MaxCells cells.
	ErrTooLarge = errors.New("grid: grid has too many cells")
	// ErrOutOfBounds is matched by every *BoundsError.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrProtectedCell indicates an attempt to overwrite a Start or End marker.
	ErrProtectedCell = errors.New("grid: start and end cells cannot be overwritten")
	// ErrInvalidLayout indicates a layout that cannot be turned into a grid.
	ErrInvalidLayout = errors.New("grid: invalid layout")
)

// BoundsError reports an access outside a Rows×Cols grid.
type BoundsError struct {
	Coord      Coord
	Rows, Cols int
}

// Error implements error.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid: coordinate %v out of bounds for %dx%d grid", e.Coord, e.Rows, e.Cols)
}

// Is lets errors.Is(err, ErrOutOfBounds) match any *BoundsError.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
