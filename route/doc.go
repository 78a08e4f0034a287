// Package route turns a breadth-first predecessor map into a drawable path.
//
// What:
//
//   - Resolve maps two grid-adjacent coordinates to a cardinal Direction.
//   - Reconstruct walks a Predecessors map back from the goal and returns
//     the intermediate cells to paint plus a goal-to-start overlay of
//     (cell, direction) steps, each direction pointing at the next cell
//     toward the goal.
//   - Trace returns the full start..goal chain.
//
// Both endpoints are excluded from Reconstruct's output so the start and
// end markers are never repainted.
//
// Errors:
//
//   - ErrInvalidAdjacency: matched by *AdjacencyError; two linked cells are
//     not neighbors, so the predecessor chain is corrupt.
//   - ErrUnreachable: the goal has no entry in the map.
//   - ErrBrokenChain: a link is missing or the chain loops.
//
// All three indicate a bug upstream and should be propagated, not defaulted.
package route
