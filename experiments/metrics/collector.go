package metrics

import (
	"time"
)

// SearchMetric describes one completed search call.
type SearchMetric struct {
	Iterations int
	Duration   time.Duration
	TreeSize   int // nodes created, root included
	MaxDepth   int // deepest node touched by selection+expansion
}

// MoveMetric ties a search to its position in a game.
type MoveMetric struct {
	Step  int
	Agent int // AgentConfig.ID
	SearchMetric
}

// GameMetric describes one completed game.
type GameMetric struct {
	Winner   string // "agent1", "agent2" or "draw"
	Moves    int
	Duration time.Duration
}

// Collector accumulates statistics for a single search call. The search is
// single-threaded, so a plain struct suffices.
type Collector interface {
	Start(iterations int)
	AddNode()
	ObserveDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	iterations int
	startTime  time.Time
	treeSize   int
	maxDepth   int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(iterations int) {
	c.startTime = time.Now()
	c.iterations = iterations
	c.treeSize = 1 // the root
	c.maxDepth = 0
}

func (c *collector) AddNode() {
	c.treeSize++
}

func (c *collector) ObserveDepth(depth int) {
	if depth > c.maxDepth {
		c.maxDepth = depth
	}
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Iterations: c.iterations,
		Duration:   time.Since(c.startTime),
		TreeSize:   c.treeSize,
		MaxDepth:   c.maxDepth,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for searches
// that don't need metrics.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(iterations int)   {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) ObserveDepth(depth int) {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
