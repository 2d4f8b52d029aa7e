package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mcts/game"
)

func TestAddChild(t *testing.T) {
	root := newNode(mockState{branching: 3, maxDepth: 2}, nil)

	c1 := root.addChild(0, mockState{depth: 1, branching: 3, maxDepth: 2})
	c2 := root.addChild(2, mockState{depth: 1, branching: 3, maxDepth: 2})

	require.Equal(t, []*node{c1, c2}, root.children, "children keep insertion order")
	require.Equal(t, []game.Action{0, 2}, root.actionsTaken, "actions mirror children")
	require.Equal(t, root, c1.parent, "child points back at its owner")
	require.Equal(t, root, c2.parent, "child points back at its owner")
	require.Zero(t, c1.visits, "fresh child starts unvisited")
	require.Zero(t, c1.value, "fresh child starts unscored")
}

func TestExhausted(t *testing.T) {
	root := newNode(mockState{branching: 2, maxDepth: 2}, nil)

	require.False(t, root.exhausted(), "no children yet")
	root.addChild(0, mockState{depth: 1, branching: 2, maxDepth: 2})
	require.False(t, root.exhausted(), "one of two actions explored")
	root.addChild(1, mockState{depth: 1, branching: 2, maxDepth: 2})
	require.True(t, root.exhausted(), "all actions explored")
}

func TestBestChild(t *testing.T) {
	t.Run("no children", func(t *testing.T) {
		root := newNode(mockState{branching: 1, maxDepth: 1}, nil)
		require.Nil(t, root.bestChild())
	})

	t.Run("most visits wins", func(t *testing.T) {
		root := newNode(mockState{branching: 3, maxDepth: 2}, nil)
		root.addChild(0, mockState{}).visits = 3
		best := root.addChild(1, mockState{})
		best.visits = 7
		root.addChild(2, mockState{}).visits = 5

		require.Equal(t, best, root.bestChild())
	})

	t.Run("tie keeps insertion order", func(t *testing.T) {
		root := newNode(mockState{branching: 2, maxDepth: 2}, nil)
		first := root.addChild(0, mockState{})
		first.visits = 4
		second := root.addChild(1, mockState{})
		second.visits = 4
		second.value = 100 // value must not sway the pick

		require.Equal(t, first, root.bestChild(), "first expanded child wins ties")
	})
}
