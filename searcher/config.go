package searcher

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Hyperparameter and input errors, surfaced at construction time.
var (
	ErrInvalidIterations  = errors.New("searcher: iterations must be >= 1")
	ErrInvalidExploration = errors.New("searcher: exploration must be > 0")
)

// Config is the file-loadable search configuration.
type Config struct {
	Iterations  int     `yaml:"iterations"`
	Exploration float64 `yaml:"exploration"`
	Seed        uint64  `yaml:"seed"`  // 0 means seed from the clock
	Debug       bool    `yaml:"debug"` // attach a logging observer
}

// DefaultConfig returns the settings used when a field is left unset.
func DefaultConfig() Config {
	return Config{
		Iterations:  1000,
		Exploration: DefaultExploration,
	}
}

func (c Config) Validate() error {
	if c.Iterations < 1 {
		return errors.Wrapf(ErrInvalidIterations, "got %d", c.Iterations)
	}
	if c.Exploration <= 0 {
		return errors.Wrapf(ErrInvalidExploration, "got %v", c.Exploration)
	}
	return nil
}

// LoadConfig reads a yaml config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Options translates the config into searcher options.
func (c Config) Options() []Option {
	opts := []Option{
		WithIterations(c.Iterations),
		WithExploration(c.Exploration),
	}
	if c.Seed != 0 {
		opts = append(opts, WithSeed(c.Seed))
	}
	return opts
}
