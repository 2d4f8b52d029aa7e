// Package experiments measures playing strength of the searcher across
// iteration budgets by self-play on the reference game, recording per-game
// and per-move statistics to CSV.
package experiments

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"mcts/engine"
	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/searcher"
)

// Config drives one strength experiment: every budget plays Games games
// against the baseline budget, alternating which side opens.
type Config struct {
	Games       int     `yaml:"games"`
	Baseline    int     `yaml:"baseline"` // iterations of the reference agent
	Budgets     []int   `yaml:"budgets"`  // iteration budgets under test
	Exploration float64 `yaml:"exploration"`
	Seed        uint64  `yaml:"seed"`
	OutDir      string  `yaml:"out_dir"`
}

func DefaultConfig() Config {
	return Config{
		Games:       30,
		Baseline:    100,
		Budgets:     []int{10, 100, 500, 1000},
		Exploration: searcher.DefaultExploration,
		Seed:        1,
		OutDir:      "experiments",
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Games < 1 || cfg.Baseline < 1 || len(cfg.Budgets) == 0 {
		return cfg, errors.Errorf("config %s: games, baseline and budgets must be set", path)
	}
	return cfg, nil
}

// RunStrengthExperiment plays every budget against the baseline and writes
// agent, game and move records under cfg.OutDir.
func RunStrengthExperiment(cfg Config) error {
	baseline := metrics.AgentConfig{ID: 0, Iterations: cfg.Baseline, Exploration: cfg.Exploration}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, budget := range cfg.Budgets {
		config := metrics.AgentConfig{ID: i + 1, Iterations: budget, Exploration: cfg.Exploration}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	writer, err := metrics.NewWriter(cfg.OutDir, "strength")
	if err != nil {
		return err
	}
	log.Info().Str("dir", writer.BaseDir()).Msg("starting strength experiment")

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	gameID := 0
	seed := cfg.Seed

	for _, matchUp := range matchUps {
		for i := 0; i < cfg.Games; i++ {
			// Alternate the opening side for fairness
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}

			record, moves, err := runGame(gameID, first, second, seed)
			if err != nil {
				return err
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
			gameID++
			seed += 2 // distinct streams per game and per agent
		}

		summarize(matchUp, gameRecords)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}

func runGame(id int, first, second metrics.AgentConfig, seed uint64) (metrics.GameRecord, []metrics.MoveRecord, error) {
	start := time.Now()

	agents := make([]engine.Agent, 2)
	for i, config := range []metrics.AgentConfig{first, second} {
		collector := metrics.NewCollector()
		m, err := searcher.New(
			searcher.WithIterations(config.Iterations),
			searcher.WithExploration(config.Exploration),
			searcher.WithSeed(seed+uint64(i)),
			searcher.WithMetrics(collector),
		)
		if err != nil {
			return metrics.GameRecord{}, nil, err
		}
		agents[i] = engine.NewSearchAgent(m, collector)
	}

	e, err := engine.Local(game.NewTicTacToe(), agents...)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	final, moves, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:     id,
		Agent1: first.ID,
		Agent2: second.ID,
		GameMetric: metrics.GameMetric{
			Winner:   winnerLabel(final.(game.TicTacToe), first, second),
			Moves:    len(moves),
			Duration: time.Since(start),
		},
	}

	moveRecords := make([]metrics.MoveRecord, len(moves))
	ids := [2]int{first.ID, second.ID}
	for i, move := range moves {
		move.Agent = ids[move.Agent]
		moveRecords[i] = metrics.MoveRecord{Game: id, MoveMetric: move}
	}
	return record, moveRecords, nil
}

// winnerLabel maps the terminal board to the agent config that won. The
// first agent always plays Cross.
func winnerLabel(final game.TicTacToe, first, second metrics.AgentConfig) string {
	switch final.Winner() {
	case game.Cross:
		return agentLabel(first)
	case game.Nought:
		return agentLabel(second)
	}
	return "draw"
}

func agentLabel(config metrics.AgentConfig) string {
	return "agent" + strconv.Itoa(config.ID)
}

// summarize logs win rates and game-length statistics for one matchup.
func summarize(matchUp [2]metrics.AgentConfig, records []metrics.GameRecord) {
	var wins, draws, games float64
	lengths := []float64{}
	label := agentLabel(matchUp[1])

	for _, record := range records {
		pair := [2]int{record.Agent1, record.Agent2}
		if pair != [2]int{matchUp[0].ID, matchUp[1].ID} &&
			pair != [2]int{matchUp[1].ID, matchUp[0].ID} {
			continue
		}
		games++
		lengths = append(lengths, float64(record.Moves))
		switch record.Winner {
		case label:
			wins++
		case "draw":
			draws++
		}
	}
	if games == 0 {
		return
	}

	mean, std := stat.MeanStdDev(lengths, nil)
	log.Info().
		Int("baseline_iterations", matchUp[0].Iterations).
		Int("iterations", matchUp[1].Iterations).
		Float64("win_rate", wins/games).
		Float64("draw_rate", draws/games).
		Float64("mean_moves", mean).
		Float64("stddev_moves", std).
		Msg("matchup summary")
}
