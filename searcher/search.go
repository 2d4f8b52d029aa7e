package searcher

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"mcts/experiments/metrics"
	"mcts/game"
)

// ErrTerminalRoot is returned when the initial state is already terminated:
// the root never grows a child, so there is no next state to return.
var ErrTerminalRoot = errors.New("searcher: initial state is terminal")

type Option func(m *MCTS)

// MCTS runs single-threaded Monte Carlo tree searches. Each Search call
// builds a fresh tree and discards it; the struct only carries settings, so
// one instance can serve many calls.
type MCTS struct {
	iterations  int
	exploration float64
	rng         *rand.Rand
	observer    Observer
	metrics     metrics.Collector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		m.iterations = iterations
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		m.exploration = c
	}
}

// WithSeed fixes the random source, making the search reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source directly. When combined with WithSeed,
// the later option wins.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(m *MCTS) {
		if observer != nil {
			m.observer = observer
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func New(options ...Option) (*MCTS, error) {
	m := &MCTS{ // Default values
		iterations:  DefaultConfig().Iterations,
		exploration: DefaultExploration,
		observer:    nopObserver{},
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}

	if m.iterations < 1 {
		return nil, errors.Wrapf(ErrInvalidIterations, "got %d", m.iterations)
	}
	if m.exploration <= 0 {
		return nil, errors.Wrapf(ErrInvalidExploration, "got %v", m.exploration)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m, nil
}

// Search runs the configured number of
// selection/expansion/simulation/backpropagation cycles from initial and
// returns the state of the most-visited immediate child of the root. Any
// contract violation by the State implementation aborts the call; the
// partial tree is discarded.
func (m *MCTS) Search(initial game.State) (game.State, error) {
	root := newNode(initial, nil)
	if err := m.run(root); err != nil {
		return nil, err
	}

	best := root.bestChild()
	if best == nil {
		return nil, errors.Wrapf(ErrTerminalRoot, "%s", initial)
	}
	m.observer.OnComplete(snapshot(root), childIndex(root, best))
	return best.state, nil
}

// run grows the tree below root for the configured number of iterations.
func (m *MCTS) run(root *node) error {
	m.metrics.Start(m.iterations)

	for i := 0; i < m.iterations; i++ {
		selected, depth, err := m.selectNode(root)
		if err != nil {
			return err
		}

		expanded, err := m.expand(selected)
		if err != nil {
			return errors.Wrapf(err, "expansion on iteration %d", i)
		}
		if expanded != selected {
			depth++
		}
		m.metrics.ObserveDepth(depth)

		terminal, err := m.simulate(expanded.state)
		if err != nil {
			return errors.Wrapf(err, "simulation on iteration %d", i)
		}

		backpropagate(expanded, terminal)

		m.observer.OnIteration(i, snapshot(root))
	}
	return nil
}

// selectNode descends from the root while the current node has children and
// is fully expanded, moving to the child with the strictly greatest UCB
// score. Ties keep the earliest child in insertion order. Every child's ucb
// scratch field is refreshed as a side effect.
func (m *MCTS) selectNode(root *node) (*node, int, error) {
	current := root
	depth := 0
	for len(current.children) > 0 && current.exhausted() {
		best := current.children[0]
		for _, child := range current.children {
			score, err := ucb1(child, current, m.exploration)
			if err != nil {
				return nil, 0, errors.Wrap(err, "selection")
			}
			child.ucb = score
			if child.ucb > best.ucb {
				best = child
			}
		}
		current = best
		depth++
	}
	return current, depth, nil
}

// expand grows one child from selected by taking a previously unexplored
// action. Terminal nodes don't expand; the selected node itself is handed to
// simulation.
func (m *MCTS) expand(selected *node) (*node, error) {
	if selected.state.Terminated() {
		return selected, nil
	}

	action, next, err := selected.state.RandomAction(m.rng, selected.actionsTaken)
	if err != nil {
		return nil, err
	}
	m.metrics.AddNode()
	return selected.addChild(action, next), nil
}

// simulate plays random actions from state until termination and returns the
// terminal state. No tree nodes are created.
func (m *MCTS) simulate(state game.State) (game.State, error) {
	for !state.Terminated() {
		_, next, err := state.RandomAction(m.rng, nil)
		if err != nil {
			return nil, err
		}
		state = next
	}
	return state, nil
}

// backpropagate folds the rollout outcome into every node on the chain from
// expanded up to the root. Nodes below the root accrue reward from their own
// state's perspective plus a visit; the root only counts the visit, having
// no incoming action to score.
func backpropagate(expanded *node, terminal game.State) {
	current := expanded
	for current.parent != nil {
		current.value += current.state.UpdateValue(terminal)
		current.visits++
		current = current.parent
	}
	current.visits++
}

func childIndex(parent *node, child *node) int {
	for i, c := range parent.children {
		if c == child {
			return i
		}
	}
	return -1
}
