package searcher

import (
	"github.com/rs/zerolog"
)

// NodeStats is a read-only copy of one node's counters. UCB holds whatever
// the last selection pass wrote; it is zero for nodes that pass never scored.
type NodeStats struct {
	Visits int
	Value  float64
	UCB    float64
}

// TreeStats snapshots the root and its immediate children. Snapshots are
// plain copies: an Observer can hold or mutate them without touching the
// tree.
type TreeStats struct {
	Root     NodeStats
	Children []NodeStats
}

// Observer receives diagnostics from a running search. Implementations must
// not rely on being called from more than one goroutine; the search is
// single-threaded. Observers cannot affect the search outcome.
type Observer interface {
	// OnIteration fires after each completed
	// selection/expansion/simulation/backpropagation cycle, 0-based.
	OnIteration(iteration int, stats TreeStats)
	// OnComplete fires once with the final tree and the insertion index
	// of the chosen child.
	OnComplete(stats TreeStats, bestChild int)
}

type nopObserver struct{}

func (nopObserver) OnIteration(int, TreeStats) {}
func (nopObserver) OnComplete(TreeStats, int)  {}

func stats(n *node) NodeStats {
	return NodeStats{Visits: n.visits, Value: n.value, UCB: n.ucb}
}

func snapshot(root *node) TreeStats {
	ts := TreeStats{
		Root:     stats(root),
		Children: make([]NodeStats, len(root.children)),
	}
	for i, child := range root.children {
		ts.Children[i] = stats(child)
	}
	return ts
}

// LogObserver logs root and child statistics through zerolog, reporting the
// first MaxIterations cycles and the final pick.
type LogObserver struct {
	Logger        zerolog.Logger
	MaxIterations int // cycles to report from the start, 10 when zero
}

func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{Logger: logger, MaxIterations: 10}
}

func (o *LogObserver) OnIteration(iteration int, ts TreeStats) {
	limit := o.MaxIterations
	if limit == 0 {
		limit = 10
	}
	if iteration >= limit {
		return
	}

	o.logTree(o.Logger.Debug().Int("iteration", iteration), ts)
}

func (o *LogObserver) OnComplete(ts TreeStats, bestChild int) {
	o.logTree(o.Logger.Info().Int("best_child", bestChild), ts)
}

func (o *LogObserver) logTree(ev *zerolog.Event, ts TreeStats) {
	ev = ev.
		Int("root_visits", ts.Root.Visits).
		Float64("root_value", ts.Root.Value)
	children := zerolog.Arr()
	for _, child := range ts.Children {
		children = children.Dict(zerolog.Dict().
			Int("visits", child.Visits).
			Float64("value", child.Value).
			Float64("ucb", child.UCB))
	}
	ev.Array("children", children).Msg("search stats")
}
