package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(500)
	c.AddNode()
	c.AddNode()
	c.ObserveDepth(2)
	c.ObserveDepth(5)
	c.ObserveDepth(3)

	metric := c.Complete()
	require.Equal(t, 500, metric.Iterations)
	require.Equal(t, 3, metric.TreeSize, "root plus two expansions")
	require.Equal(t, 5, metric.MaxDepth, "deepest observation wins")
	require.GreaterOrEqual(t, metric.Duration.Nanoseconds(), int64(0))
}

func TestCollectorRestart(t *testing.T) {
	c := NewCollector()
	c.Start(10)
	c.AddNode()
	c.ObserveDepth(7)

	c.Start(20)
	metric := c.Complete()
	require.Equal(t, 20, metric.Iterations)
	require.Equal(t, 1, metric.TreeSize, "restart resets to just the root")
	require.Zero(t, metric.MaxDepth)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(100)
	c.AddNode()
	c.ObserveDepth(9)

	require.Equal(t, SearchMetric{}, c.Complete(), "dummy records nothing")
}
