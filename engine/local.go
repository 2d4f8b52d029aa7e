package engine

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/searcher"
)

// Agent produces the next state of a running game.
type Agent interface {
	NextState(state game.State) (game.State, error)
}

// SearchAgent answers with the result of a Monte Carlo tree search.
type SearchAgent struct {
	mcts      *searcher.MCTS
	collector metrics.Collector
}

func NewSearchAgent(mcts *searcher.MCTS, collector metrics.Collector) *SearchAgent {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &SearchAgent{mcts: mcts, collector: collector}
}

func (a *SearchAgent) NextState(state game.State) (game.State, error) {
	return a.mcts.Search(state)
}

// LastSearch reports the metrics of the most recent search, when the agent
// was built with a recording collector.
func (a *SearchAgent) LastSearch() metrics.SearchMetric {
	return a.collector.Complete()
}

// Engine drives agents in turn from an initial state until termination.
type Engine struct {
	state  game.State
	agents []Agent
}

// Local builds an in-process engine. At least one agent is required; agents
// act in round-robin order.
func Local(initial game.State, agents ...Agent) (*Engine, error) {
	if len(agents) == 0 {
		return nil, errors.New("engine: need at least one agent")
	}
	return &Engine{state: initial, agents: agents}, nil
}

// Run executes the game loop until the state terminates. It returns the
// terminal state, the number of moves played and the per-move metrics of
// SearchAgents.
func (e *Engine) Run() (game.State, []metrics.MoveMetric, error) {
	start := time.Now()
	var moves []metrics.MoveMetric

	for turn := 0; !e.state.Terminated(); turn++ {
		idx := turn % len(e.agents)
		next, err := e.agents[idx].NextState(e.state)
		if err != nil {
			return nil, moves, errors.Wrapf(err, "agent %d on move %d", idx, turn+1)
		}
		e.state = next

		move := metrics.MoveMetric{Step: turn + 1, Agent: idx}
		if sa, ok := e.agents[idx].(*SearchAgent); ok {
			move.SearchMetric = sa.LastSearch()
		}
		moves = append(moves, move)

		log.Debug().
			Int("move", turn+1).
			Int("agent", idx).
			Msgf("state:\n%s", e.state)
	}

	log.Info().
		Int("moves", len(moves)).
		Dur("duration", time.Since(start)).
		Msg("game over")
	return e.state, moves, nil
}
