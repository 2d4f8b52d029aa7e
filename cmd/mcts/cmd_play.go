package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mcts/game"
	"mcts/searcher"
)

var (
	playConfigPath string
	playIterations int
	playDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play tic-tac-toe against the engine (you are X)",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playConfigPath, "config", "", "yaml search config file")
	playCmd.Flags().IntVarP(&playIterations, "iterations", "n", 0, "search iterations per engine move (overrides config)")
	playCmd.Flags().BoolVar(&playDebug, "debug", false, "log per-iteration search statistics")
	rootCmd.AddCommand(playCmd)
}

func loadSearchConfig(path string, iterations int, debug bool) (searcher.Config, error) {
	cfg := searcher.DefaultConfig()
	if path != "" {
		loaded, err := searcher.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if iterations > 0 {
		cfg.Iterations = iterations
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}

func newSearcher(cfg searcher.Config) (*searcher.MCTS, error) {
	opts := cfg.Options()
	if cfg.Debug {
		opts = append(opts, searcher.WithObserver(searcher.NewLogObserver(log.Logger)))
	}
	return searcher.New(opts...)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSearchConfig(playConfigPath, playIterations, playDebug)
	if err != nil {
		return err
	}
	m, err := newSearcher(cfg)
	if err != nil {
		return err
	}

	state := game.NewTicTacToe()
	reader := bufio.NewReader(os.Stdin)

	fmt.Println(renderBoard(state))
	for !state.Terminated() {
		state, err = humanMove(reader, state)
		if err != nil {
			return err
		}
		fmt.Println(renderBoard(state))
		if state.Terminated() {
			break
		}

		next, err := m.Search(state)
		if err != nil {
			return err
		}
		state = next.(game.TicTacToe)
		fmt.Println("Engine plays:")
		fmt.Println(renderBoard(state))
	}

	fmt.Println(renderOutcome(state, game.Cross))
	return nil
}

// humanMove reads cells 1-9 from the reader until a legal one comes in.
func humanMove(reader *bufio.Reader, state game.TicTacToe) (game.TicTacToe, error) {
	for {
		fmt.Print("Your move (1-9): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return state, err
		}

		cell, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("Enter a number between 1 and 9.")
			continue
		}
		next, err := state.Place(cell - 1)
		if err != nil {
			fmt.Printf("Illegal move: %v\n", err)
			continue
		}
		return next, nil
	}
}
