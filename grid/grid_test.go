package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridbfs/grid"
)

//----------------------------------------------------------------------------//
// New, InBounds and Dimensions
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive and oversized
// dimensions, including products that would overflow int.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		err        error
	}{
		{"ZeroRows", 0, 3, grid.ErrEmptyGrid},
		{"ZeroCols", 3, 0, grid.ErrEmptyGrid},
		{"Negative", -1, 2, grid.ErrEmptyGrid},
		{"OverMax", grid.MaxCells + 1, 1, grid.ErrTooLarge},
		{"ProductWraps", math.MaxInt/2 + 1, 2, grid.ErrTooLarge},
		{"ProductWrapsSmall", 3, math.MaxInt/3 + 1, grid.ErrTooLarge},
		{"MaxInt", math.MaxInt, 2, grid.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows, tc.cols)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, g)
		})
	}

	// exactly MaxCells is allowed; checked via Validate to avoid the allocation
	edge := grid.Layout{Rows: grid.MaxCells, Cols: 1, Start: grid.C(0, 0), End: grid.C(1, 0)}
	require.NoError(t, edge.Validate())
}

// TestInBounds checks corners and each side just outside a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)

	rows, cols := g.Dimensions()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)

	for _, c := range []grid.Coord{grid.C(0, 0), grid.C(2, 1), grid.C(1, 0)} {
		require.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []grid.Coord{grid.C(-1, 0), grid.C(3, 0), grid.C(0, 2), grid.C(0, -1)} {
		require.False(t, g.InBounds(c), "InBounds(%v)", c)
	}
}

//----------------------------------------------------------------------------//
// Get / Set
//----------------------------------------------------------------------------//

// TestGetSet_OutOfBounds ensures both accessors return a *BoundsError.
func TestGetSet_OutOfBounds(t *testing.T) {
	g, _ := grid.New(2, 2)

	_, err := g.Get(grid.C(2, 0))
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	var be *grid.BoundsError
	require.True(t, errors.As(err, &be))
	require.Equal(t, grid.C(2, 0), be.Coord)
	require.Equal(t, 2, be.Rows)

	err = g.Set(grid.C(0, -1), grid.Wall)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	require.Panics(t, func() { g.At(grid.C(5, 5)) })
}

// TestSet_ProtectsMarkers verifies that Start and End survive any overwrite.
func TestSet_ProtectsMarkers(t *testing.T) {
	g, _ := grid.New(1, 3)
	require.NoError(t, g.Set(grid.C(0, 0), grid.Start))
	require.NoError(t, g.Set(grid.C(0, 2), grid.End))

	for _, s := range []grid.CellState{grid.Visited, grid.Path, grid.Empty, grid.Wall, grid.End} {
		require.ErrorIs(t, g.Set(grid.C(0, 0), s), grid.ErrProtectedCell, "overwrite start with %v", s)
	}
	require.ErrorIs(t, g.Set(grid.C(0, 2), grid.Path), grid.ErrProtectedCell)

	// Re-asserting the same marker is a no-op, not an error.
	require.NoError(t, g.Set(grid.C(0, 0), grid.Start))
	require.Equal(t, grid.Start, g.At(grid.C(0, 0)))
	require.Equal(t, grid.End, g.At(grid.C(0, 2)))
}

//----------------------------------------------------------------------------//
// Snapshot, Clone, Reset, Count, Find
//----------------------------------------------------------------------------//

// TestSnapshotIsDeepCopy ensures mutating a snapshot or clone leaves g intact.
func TestSnapshotIsDeepCopy(t *testing.T) {
	g, _ := grid.New(2, 3)
	require.NoError(t, g.Set(grid.C(1, 2), grid.Wall))

	snap := g.Snapshot()
	require.Len(t, snap, 2)
	require.Len(t, snap[0], 3)
	require.Equal(t, grid.Wall, snap[1][2])
	snap[0][0] = grid.Path
	require.Equal(t, grid.Empty, g.At(grid.C(0, 0)))

	cl := g.Clone()
	require.NoError(t, cl.Set(grid.C(0, 1), grid.Visited))
	require.Equal(t, grid.Empty, g.At(grid.C(0, 1)))
}

// TestResetKeepsMarkersAndWalls clears search residue only.
func TestResetKeepsMarkersAndWalls(t *testing.T) {
	l, err := grid.ParseLayout([]string{
		"S.#",
		"..E",
	})
	require.NoError(t, err)
	b, err := l.Build()
	require.NoError(t, err)

	require.NoError(t, b.Set(grid.C(0, 1), grid.Visited))
	require.NoError(t, b.Set(grid.C(1, 0), grid.Path))
	require.Equal(t, 1, b.Count(grid.Visited))

	b.Reset()
	require.Zero(t, b.Count(grid.Visited))
	require.Zero(t, b.Count(grid.Path))
	require.Equal(t, 1, b.Count(grid.Wall))

	start, ok := b.Find(grid.Start)
	require.True(t, ok)
	require.Equal(t, grid.C(0, 0), start)
	end, ok := b.Find(grid.End)
	require.True(t, ok)
	require.Equal(t, grid.C(1, 2), end)
}

// TestCellStateString covers names and the fallback format.
func TestCellStateString(t *testing.T) {
	require.Equal(t, "visited", grid.Visited.String())
	require.Equal(t, "start", grid.Start.String())
	require.Equal(t, "CellState(42)", grid.CellState(42).String())
	require.True(t, grid.End.IsMarker())
	require.False(t, grid.Wall.IsMarker())
}

// TestCoordHelpers covers Add, Manhattan and String.
func TestCoordHelpers(t *testing.T) {
	a := grid.C(2, 2)
	require.Equal(t, grid.C(3, 1), a.Add(grid.C(1, -1)))
	require.Equal(t, 8, a.Manhattan(grid.C(5, 7)))
	require.Equal(t, "(2,2)", a.String())
}
