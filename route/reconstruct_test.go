package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridbfs/grid"
	"github.com/katalvlaran/gridbfs/route"
)

// ReconstructSuite exercises Reconstruct and Trace on hand-built chains.
type ReconstructSuite struct {
	suite.Suite
}

// chain links cells[i] -> cells[i+1], with cells[0] as start.
func chain(cells ...grid.Coord) route.Predecessors {
	p := route.NewPredecessors(cells[0])
	for i := 1; i < len(cells); i++ {
		p[cells[i]] = cells[i-1]
	}
	return p
}

// TestStraightRow is the (0,0)→(0,4) corridor.
func (s *ReconstructSuite) TestStraightRow() {
	p := chain(grid.C(0, 0), grid.C(0, 1), grid.C(0, 2), grid.C(0, 3), grid.C(0, 4))

	paint, overlay, err := route.Reconstruct(p, grid.C(0, 4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []grid.Coord{grid.C(0, 3), grid.C(0, 2), grid.C(0, 1)}, paint)
	require.Equal(s.T(), []route.Step{
		{Cell: grid.C(0, 3), Dir: route.Right},
		{Cell: grid.C(0, 2), Dir: route.Right},
		{Cell: grid.C(0, 1), Dir: route.Right},
	}, overlay)
}

// TestTurnPointsTowardGoal checks that a corner cell's marker points at the
// next cell, not back at where the path came from.
func (s *ReconstructSuite) TestTurnPointsTowardGoal() {
	// (0,0) → (1,0) → (2,0) → (2,1) → (2,2)
	p := chain(grid.C(0, 0), grid.C(1, 0), grid.C(2, 0), grid.C(2, 1), grid.C(2, 2))

	_, overlay, err := route.Reconstruct(p, grid.C(2, 2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []route.Step{
		{Cell: grid.C(2, 1), Dir: route.Right},
		{Cell: grid.C(2, 0), Dir: route.Right},
		{Cell: grid.C(1, 0), Dir: route.Down},
	}, overlay)
}

// TestExcludesEndpoints guarantees neither marker is painted.
func (s *ReconstructSuite) TestExcludesEndpoints() {
	start, goal := grid.C(1, 1), grid.C(1, 4)
	p := chain(start, grid.C(1, 2), grid.C(1, 3), goal)
	paint, _, err := route.Reconstruct(p, goal)
	require.NoError(s.T(), err)
	require.NotContains(s.T(), paint, start)
	require.NotContains(s.T(), paint, goal)
}

// TestAdjacentGoal has no intermediate cells.
func (s *ReconstructSuite) TestAdjacentGoal() {
	p := chain(grid.C(0, 0), grid.C(0, 1))
	paint, overlay, err := route.Reconstruct(p, grid.C(0, 1))
	require.NoError(s.T(), err)
	require.Empty(s.T(), paint)
	require.Empty(s.T(), overlay)
}

// TestStartIsGoal terminates immediately without a self-loop.
func (s *ReconstructSuite) TestStartIsGoal() {
	p := route.NewPredecessors(grid.C(3, 3))
	paint, overlay, err := route.Reconstruct(p, grid.C(3, 3))
	require.NoError(s.T(), err)
	require.Empty(s.T(), paint)
	require.Empty(s.T(), overlay)

	path, err := route.Trace(p, grid.C(3, 3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []grid.Coord{grid.C(3, 3)}, path)
}

// TestCorruptChains covers the three failure modes.
func (s *ReconstructSuite) TestCorruptChains() {
	// unknown goal
	_, _, err := route.Reconstruct(route.NewPredecessors(grid.C(0, 0)), grid.C(4, 4))
	require.ErrorIs(s.T(), err, route.ErrUnreachable)

	// non-adjacent link
	bad := chain(grid.C(0, 0), grid.C(0, 1))
	bad[grid.C(5, 7)] = grid.C(0, 1)
	bad[grid.C(5, 8)] = grid.C(5, 7)
	_, _, err = route.Reconstruct(bad, grid.C(5, 8))
	require.ErrorIs(s.T(), err, route.ErrInvalidAdjacency)

	// missing link
	missing := route.Predecessors{grid.C(0, 1): grid.C(0, 0)}
	_, _, err = route.Reconstruct(missing, grid.C(0, 1))
	require.ErrorIs(s.T(), err, route.ErrBrokenChain)
	_, err = route.Trace(missing, grid.C(0, 1))
	require.ErrorIs(s.T(), err, route.ErrBrokenChain)

	// cycle
	loop := route.Predecessors{
		grid.C(0, 0): grid.C(0, 1),
		grid.C(0, 1): grid.C(1, 1),
		grid.C(1, 1): grid.C(1, 0),
		grid.C(1, 0): grid.C(0, 0),
	}
	_, _, err = route.Reconstruct(loop, grid.C(0, 0))
	require.ErrorIs(s.T(), err, route.ErrBrokenChain)
	_, err = route.Trace(loop, grid.C(0, 0))
	require.ErrorIs(s.T(), err, route.ErrBrokenChain)
}

// TestTrace returns the full chain in start→goal order.
func (s *ReconstructSuite) TestTrace() {
	cells := []grid.Coord{grid.C(0, 0), grid.C(1, 0), grid.C(1, 1)}
	path, err := route.Trace(chain(cells...), grid.C(1, 1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), cells, path)

	_, err = route.Trace(chain(cells...), grid.C(9, 9))
	require.ErrorIs(s.T(), err, route.ErrUnreachable)
}

func TestReconstructSuite(t *testing.T) {
	suite.Run(t, new(ReconstructSuite))
}
