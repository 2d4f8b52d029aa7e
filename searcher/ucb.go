package searcher

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultExploration is the UCB1 exploration parameter used when the caller
// doesn't supply one.
const DefaultExploration = math.Sqrt2

// ErrZeroVisits reports a UCB computation against an unvisited node. By
// construction every node reached by selection has been backpropagated
// through at least once, so hitting this means the tree invariants broke.
var ErrZeroVisits = errors.New("searcher: ucb1 on a node with zero visits")

// ucb1 scores child relative to parent:
//
//	value/visits + c * sqrt(ln(parent.visits) / visits)
//
// The first term favors historically rewarding branches, the second decays
// as the child soaks up visits.
func ucb1(child, parent *node, c float64) (float64, error) {
	if child.visits == 0 {
		return 0, errors.Wrap(ErrZeroVisits, "child")
	}
	if parent.visits == 0 {
		return 0, errors.Wrap(ErrZeroVisits, "parent")
	}

	exploitation := child.value / float64(child.visits)
	exploration := c * math.Sqrt(math.Log(float64(parent.visits))/float64(child.visits))
	return exploitation + exploration, nil
}
