package game

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Action identifies one move choice of a State. The engine never interprets
// it beyond equality; implementations pick the encoding.
type Action int

// ErrNoActions is returned by RandomAction when every legal action is
// excluded or none exist. The searcher treats it as a contract violation:
// the state claimed it was neither terminated nor exhausted.
var ErrNoActions = errors.New("game: no legal actions available")

// State is the capability set a domain must implement to be searchable.
// Implementations should be value types or otherwise cheap to copy: the
// searcher takes ownership of every State it is handed and never mutates it.
type State interface {
	// Terminated reports whether no further actions are meaningful from
	// this state.
	Terminated() bool

	// RandomAction picks uniformly at random among the legal actions not
	// present in excluded and returns the action together with the
	// successor state. A nil excluded slice means a free choice over all
	// legal actions. Returns ErrNoActions when nothing remains to pick.
	RandomAction(rng *rand.Rand, excluded []Action) (Action, State, error)

	// UpdateValue scores a terminal state from the perspective of the
	// side whose action produced this state: positive when the outcome
	// favors that side, negative when it favors the opponent.
	UpdateValue(terminal State) float64

	// StateExhausted reports whether children already covers every legal
	// action from this state, i.e. the node wrapping it is fully expanded.
	StateExhausted(children int) bool

	fmt.Stringer
}
