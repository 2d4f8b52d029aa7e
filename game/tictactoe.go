package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Mark is the content of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	Cross
	Nought
)

func (m Mark) String() string {
	switch m {
	case Cross:
		return "X"
	case Nought:
		return "O"
	}
	return "."
}

// Opponent returns the other playing side.
func (m Mark) Opponent() Mark {
	if m == Cross {
		return Nought
	}
	return Cross
}

// Outcome is the result of a finished (or still open) game.
type Outcome int

const (
	Open Outcome = iota
	CrossWins
	NoughtWins
	Draw
)

// BoardSize is the number of cells on a tic-tac-toe board.
const BoardSize = 9

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// TicTacToe is the reference State implementation: a 3x3 board plus the side
// whose action produced this position. Rewards are scored from that side's
// perspective, so sign alternates naturally between plies. The zero board
// with mover=Nought means Cross is about to open.
type TicTacToe struct {
	board [BoardSize]Mark
	mover Mark
}

// NewTicTacToe returns an empty board with Cross to open.
func NewTicTacToe() TicTacToe {
	return TicTacToe{mover: Nought}
}

// Cell returns the mark at board index i.
func (t TicTacToe) Cell(i int) Mark { return t.board[i] }

// Mover returns the side whose action produced this state.
func (t TicTacToe) Mover() Mark { return t.mover }

// Place puts the next side's mark on the given cell and returns the
// resulting state. The receiver is not modified.
func (t TicTacToe) Place(cell int) (TicTacToe, error) {
	if cell < 0 || cell >= BoardSize {
		return t, errors.Errorf("cell %d out of range", cell)
	}
	if t.board[cell] != Empty {
		return t, errors.Errorf("cell %d already holds %s", cell, t.board[cell])
	}
	next := t
	next.mover = t.mover.Opponent()
	next.board[cell] = next.mover
	return next, nil
}

// Outcome scans all winning lines and reports the game result.
func (t TicTacToe) Outcome() Outcome {
	for _, l := range lines {
		m := t.board[l[0]]
		if m != Empty && m == t.board[l[1]] && m == t.board[l[2]] {
			if m == Cross {
				return CrossWins
			}
			return NoughtWins
		}
	}
	if len(t.freeCells()) == 0 {
		return Draw
	}
	return Open
}

// Winner returns the winning mark, or Empty for an open game or a draw.
func (t TicTacToe) Winner() Mark {
	switch t.Outcome() {
	case CrossWins:
		return Cross
	case NoughtWins:
		return Nought
	}
	return Empty
}

func (t TicTacToe) freeCells() []Action {
	free := make([]Action, 0, BoardSize)
	for i, m := range t.board {
		if m == Empty {
			free = append(free, Action(i))
		}
	}
	return free
}

// Terminated implements State.
func (t TicTacToe) Terminated() bool {
	return t.Outcome() != Open
}

// RandomAction implements State: the opponent of the recorded mover places a
// mark on a uniformly chosen free cell outside excluded.
func (t TicTacToe) RandomAction(rng *rand.Rand, excluded []Action) (Action, State, error) {
	free := t.freeCells()
	candidates := make([]Action, 0, len(free))
	for _, a := range free {
		if !slices.Contains(excluded, a) {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return 0, nil, errors.Wrapf(ErrNoActions, "board %q with %d excluded", t.compact(), len(excluded))
	}

	action := candidates[rng.Intn(len(candidates))]
	next, err := t.Place(int(action))
	if err != nil {
		return 0, nil, err
	}
	return action, next, nil
}

// UpdateValue implements State: +1 when the terminal outcome favors the side
// that moved into this state, -1 when it favors the opponent, 0 for a draw.
func (t TicTacToe) UpdateValue(terminal State) float64 {
	switch terminal.(TicTacToe).Outcome() {
	case CrossWins:
		if t.mover == Cross {
			return 1
		}
		return -1
	case NoughtWins:
		if t.mover == Nought {
			return 1
		}
		return -1
	}
	return 0
}

// StateExhausted implements State.
func (t TicTacToe) StateExhausted(children int) bool {
	return children >= len(t.freeCells())
}

func (t TicTacToe) compact() string {
	var sb strings.Builder
	for _, m := range t.board {
		sb.WriteString(m.String())
	}
	return sb.String()
}

func (t TicTacToe) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(t.board[3*row+col].String())
			if col < 2 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var _ State = TicTacToe{}

// Diff returns the single cell on which next differs from t, for callers
// that need the move behind a state transition. Returns an error when the
// states differ on zero cells or more than one.
func Diff(t, next TicTacToe) (int, error) {
	changed := -1
	for i := 0; i < BoardSize; i++ {
		if t.board[i] == next.board[i] {
			continue
		}
		if changed >= 0 {
			return -1, fmt.Errorf("states differ on cells %d and %d", changed, i)
		}
		changed = i
	}
	if changed < 0 {
		return -1, fmt.Errorf("states are identical")
	}
	return changed, nil
}
