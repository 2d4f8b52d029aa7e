package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCB1(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		parent := &node{visits: 10}
		child := &node{visits: 2, value: 1}

		got, err := ucb1(child, parent, math.Sqrt2)
		require.NoError(t, err)

		want := 0.5 + math.Sqrt2*math.Sqrt(math.Log(10)/2)
		require.InDelta(t, want, got, 1e-12)
	})

	t.Run("zero-visit child is a contract violation", func(t *testing.T) {
		parent := &node{visits: 10}
		child := &node{visits: 0}

		_, err := ucb1(child, parent, math.Sqrt2)
		require.ErrorIs(t, err, ErrZeroVisits)
	})

	t.Run("zero-visit parent is a contract violation", func(t *testing.T) {
		parent := &node{visits: 0}
		child := &node{visits: 1}

		_, err := ucb1(child, parent, math.Sqrt2)
		require.ErrorIs(t, err, ErrZeroVisits)
	})

	t.Run("monotonically increasing in value", func(t *testing.T) {
		parent := &node{visits: 50}
		prev := math.Inf(-1)
		for value := -10.0; value <= 10; value++ {
			score, err := ucb1(&node{visits: 5, value: value}, parent, math.Sqrt2)
			require.NoError(t, err)
			require.Greater(t, score, prev, "score must grow with value at fixed visits")
			prev = score
		}
	})

	t.Run("strictly decreasing in visits", func(t *testing.T) {
		parent := &node{visits: 10000}
		prev := math.Inf(1)
		for visits := 1; visits <= 100; visits++ {
			score, err := ucb1(&node{visits: visits, value: 1}, parent, math.Sqrt2)
			require.NoError(t, err)
			require.Less(t, score, prev, "score must shrink as visits accumulate")
			prev = score
		}
	})

	t.Run("exploration parameter scales the bonus", func(t *testing.T) {
		parent := &node{visits: 10}
		child := &node{visits: 2, value: 1}

		low, err := ucb1(child, parent, 0.1)
		require.NoError(t, err)
		high, err := ucb1(child, parent, 10)
		require.NoError(t, err)
		require.Greater(t, high, low)
	})
}
