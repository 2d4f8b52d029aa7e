package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/searcher"
)

func newAgent(t *testing.T, iterations int, seed uint64) *SearchAgent {
	t.Helper()
	collector := metrics.NewCollector()
	m, err := searcher.New(
		searcher.WithIterations(iterations),
		searcher.WithSeed(seed),
		searcher.WithMetrics(collector),
	)
	require.NoError(t, err)
	return NewSearchAgent(m, collector)
}

func TestLocal(t *testing.T) {
	t.Run("requires at least one agent", func(t *testing.T) {
		_, err := Local(game.NewTicTacToe())
		require.Error(t, err)
	})

	t.Run("plays a full game to termination", func(t *testing.T) {
		e, err := Local(game.NewTicTacToe(), newAgent(t, 100, 1), newAgent(t, 100, 2))
		require.NoError(t, err)

		final, moves, err := e.Run()
		require.NoError(t, err)
		require.True(t, final.Terminated(), "loop only stops on a terminal state")

		board := final.(game.TicTacToe)
		require.GreaterOrEqual(t, len(moves), 5, "tic-tac-toe cannot end before 5 moves")
		require.LessOrEqual(t, len(moves), game.BoardSize)
		require.NotEqual(t, game.Open, board.Outcome())
	})

	t.Run("records per-move search metrics", func(t *testing.T) {
		e, err := Local(game.NewTicTacToe(), newAgent(t, 64, 3), newAgent(t, 32, 4))
		require.NoError(t, err)

		_, moves, err := e.Run()
		require.NoError(t, err)

		for i, move := range moves {
			require.Equal(t, i+1, move.Step)
			require.Equal(t, i%2, move.Agent, "agents alternate")
			if move.Agent == 0 {
				require.Equal(t, 64, move.Iterations)
			} else {
				require.Equal(t, 32, move.Iterations)
			}
			require.Greater(t, move.TreeSize, 1, "every search grows the tree")
		}
	})
}
