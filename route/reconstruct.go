package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridbfs/grid"
)

var (
	// ErrUnreachable is returned when the goal was never discovered.
	ErrUnreachable = errors.New("route: goal not in predecessor map")
	// ErrBrokenChain is returned when a link is missing or the chain loops.
	ErrBrokenChain = errors.New("route: broken predecessor chain")
)

// NoPredecessor is the sentinel recorded for the start node.
// It lies outside every grid, so it never collides with a real cell.
var NoPredecessor = grid.Coord{Row: -1, Col: -1}

// Predecessors maps each discovered cell to the cell it was discovered from.
type Predecessors map[grid.Coord]grid.Coord

// NewPredecessors returns a map seeded with start -> NoPredecessor.
func NewPredecessors(start grid.Coord) Predecessors {
	return Predecessors{start: NoPredecessor}
}

// Has reports whether c has been discovered.
func (p Predecessors) Has(c grid.Coord) bool {
	_, ok := p[c]
	return ok
}

// Step is one overlay entry: draw a marker at Cell pointing Dir, toward
// the next cell on the path to the goal.
type Step struct {
	Cell grid.Coord `json:"cell"`
	Dir  Direction  `json:"dir"`
}

// Reconstruct walks pred back from goal.
//
// paint holds every cell strictly between start and goal, goal side first.
// overlay pairs each of those cells with the direction of the next hop
// toward goal, in the same goal-to-start order. When goal is the start
// both are empty.
//
// Every link on the chain is checked with Resolve, so a corrupt map
// surfaces as an *AdjacencyError rather than a wrong picture.
// Complexity: O(L) for a path of L cells.
func Reconstruct(pred Predecessors, goal grid.Coord) (paint []grid.Coord, overlay []Step, err error) {
	node, ok := pred[goal]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnreachable, goal)
	}
	next := goal
	for hops := 0; node != NoPredecessor; hops++ {
		if hops > len(pred) {
			return nil, nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, node)
		}
		before, ok := pred[node]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %v has no predecessor", ErrBrokenChain, node)
		}
		dir, err := Resolve(node, next)
		if err != nil {
			return nil, nil, err
		}
		if before == NoPredecessor {
			// node is the start
			break
		}
		paint = append(paint, node)
		overlay = append(overlay, Step{Cell: node, Dir: dir})
		next, node = node, before
	}
	return paint, overlay, nil
}

// Trace returns the chain from the start to goal, both inclusive.
func Trace(pred Predecessors, goal grid.Coord) ([]grid.Coord, error) {
	if !pred.Has(goal) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, goal)
	}
	var chain []grid.Coord
	for cur := goal; cur != NoPredecessor; {
		if len(chain) > len(pred) {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, cur)
		}
		chain = append(chain, cur)
		prev, ok := pred[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v has no predecessor", ErrBrokenChain, cur)
		}
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
