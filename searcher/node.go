package searcher

import (
	"mcts/game"
)

// node is one vertex of the search tree. The parent pointer is only walked
// upward during selection and backpropagation; children own their subtrees.
// ucb is scratch output of the current selection pass and carries no meaning
// outside it.
type node struct {
	state        game.State
	parent       *node
	children     []*node
	actionsTaken []game.Action
	visits       int
	value        float64
	ucb          float64
}

func newNode(state game.State, parent *node) *node {
	return &node{
		state:  state,
		parent: parent,
	}
}

// addChild records action as explored and appends a child wrapping state.
// Insertion order is the expansion order and is what tie-breaking keys on.
func (n *node) addChild(action game.Action, state game.State) *node {
	child := newNode(state, n)
	n.actionsTaken = append(n.actionsTaken, action)
	n.children = append(n.children, child)
	return child
}

// exhausted reports whether every legal action from this node has a child.
func (n *node) exhausted() bool {
	return n.state.StateExhausted(len(n.children))
}

// bestChild returns the most-visited child, ties keeping the first one in
// insertion order. Nil when the node has no children.
func (n *node) bestChild() *node {
	var best *node
	for _, child := range n.children {
		if best == nil || child.visits > best.visits {
			best = child
		}
	}
	return best
}
