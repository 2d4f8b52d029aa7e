package main

import (
	"os"
	"strings"

	"github.com/muesli/termenv"

	"mcts/game"
)

var output = termenv.NewOutput(os.Stdout)

// renderBoard draws the board with colored marks and 1-9 cell hints on the
// free squares.
func renderBoard(t game.TicTacToe) string {
	profile := output.ColorProfile()
	cross := profile.Color("1")  // red
	nought := profile.Color("4") // blue
	hint := profile.Color("8")   // dim gray

	var sb strings.Builder
	for row := 0; row < 3; row++ {
		sb.WriteString(" ")
		for col := 0; col < 3; col++ {
			i := 3*row + col
			var cell termenv.Style
			switch t.Cell(i) {
			case game.Cross:
				cell = output.String("X").Foreground(cross).Bold()
			case game.Nought:
				cell = output.String("O").Foreground(nought).Bold()
			default:
				cell = output.String(string(rune('1' + i))).Foreground(hint)
			}
			sb.WriteString(cell.String())
			if col < 2 {
				sb.WriteString(" | ")
			}
		}
		sb.WriteString("\n")
		if row < 2 {
			sb.WriteString("---+---+---\n")
		}
	}
	return sb.String()
}

func renderOutcome(t game.TicTacToe, human game.Mark) string {
	switch t.Winner() {
	case human:
		return output.String("You win!").Bold().String()
	case human.Opponent():
		return output.String("You lose!").Bold().String()
	}
	return "Draw."
}
