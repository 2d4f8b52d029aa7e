package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcts/engine"
	"mcts/experiments/metrics"
	"mcts/game"
)

var (
	selfplayConfigPath string
	selfplayIterations int
	selfplayDebug      bool
)

var selfplayCmd = &cobra.Command{
	Use:   "selfplay",
	Short: "Watch the engine play itself",
	RunE:  runSelfplay,
}

func init() {
	selfplayCmd.Flags().StringVar(&selfplayConfigPath, "config", "", "yaml search config file")
	selfplayCmd.Flags().IntVarP(&selfplayIterations, "iterations", "n", 0, "search iterations per move (overrides config)")
	selfplayCmd.Flags().BoolVar(&selfplayDebug, "debug", false, "log per-iteration search statistics")
	rootCmd.AddCommand(selfplayCmd)
}

func runSelfplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSearchConfig(selfplayConfigPath, selfplayIterations, selfplayDebug)
	if err != nil {
		return err
	}

	agents := make([]engine.Agent, 2)
	for i := range agents {
		m, err := newSearcher(cfg)
		if err != nil {
			return err
		}
		agents[i] = engine.NewSearchAgent(m, metrics.NewDummyCollector())
	}

	e, err := engine.Local(game.NewTicTacToe(), agents...)
	if err != nil {
		return err
	}
	final, moves, err := e.Run()
	if err != nil {
		return err
	}

	board := final.(game.TicTacToe)
	fmt.Println(renderBoard(board))
	if winner := board.Winner(); winner != game.Empty {
		fmt.Printf("%s wins in %d moves.\n", winner, len(moves))
	} else {
		fmt.Printf("Draw after %d moves.\n", len(moves))
	}
	return nil
}
