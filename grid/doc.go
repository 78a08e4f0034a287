// Package grid models the 2D board a breadth-first search animates over.
//
// What:
//
//   - Grid holds an m×n row-major array of CellState values.
//   - Coord is a comparable (Row, Col) pair, usable as a map key.
//   - Layout describes an initial board (dimensions, start, end, walls) and
//     can be parsed from ASCII art, decoded from YAML, or taken from Classic().
//
// Why:
//
//   - A closed CellState enum keeps rendering and search in agreement on
//     what every cell means.
//   - Start and End are markers: once placed, Set refuses to overwrite them,
//     so neither the search nor path painting can erase them by accident.
//
// Complexity:
//
//   - Get, Set, InBounds: O(1).
//   - Snapshot, Clone, Reset, Count: O(m×n).
//   - Layout.Build: O(m×n + |walls|).
//
// Errors:
//
//   - ErrEmptyGrid:      rows or cols not positive.
//   - ErrOutOfBounds:    matched by *BoundsError for any access outside the grid.
//   - ErrProtectedCell:  Set would overwrite a Start or End marker.
//   - ErrInvalidLayout:  Layout failed validation (overlapping or missing markers, bad glyphs).
package grid
