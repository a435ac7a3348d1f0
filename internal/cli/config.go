package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/knapsolver/solver"
)

// Algorithm names accepted by --algorithm and [solver].algorithm.
const (
	AlgorithmPrimalDual = "primal-dual"
	AlgorithmBellman    = "bellman"
	AlgorithmGreedy     = "greedy"
	AlgorithmDantzig    = "dantzig"
)

// Report formats accepted by --output and [output].format.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the solve configuration. A TOML file fills it first; flags
// that were set explicitly override the file.
//
//	[solver]
//	algorithm = "primal-dual"
//	partial_solution_size = 64
//	pairing = false
//	time_limit = "30s"
//	seed = 0
//
//	[output]
//	format = "json"
//	certificate = "out.cert"
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Output OutputConfig `toml:"output"`
}

// SolverConfig selects and tunes the algorithm.
type SolverConfig struct {
	Algorithm           string        `toml:"algorithm" validate:"oneof=primal-dual bellman greedy dantzig"`
	PartialSolutionSize int           `toml:"partial_solution_size" validate:"gte=1,lte=64"`
	Pairing             bool          `toml:"pairing"`
	TimeLimit           time.Duration `toml:"time_limit" validate:"gte=0s"`
	Seed                int64         `toml:"seed"`
}

// OutputConfig controls what is written after solving.
type OutputConfig struct {
	Format      string `toml:"format" validate:"oneof=text json yaml"`
	Certificate string `toml:"certificate"`
}

var configValidate = validator.New()

// defaultConfig mirrors solver.DefaultOptions.
func defaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			Algorithm:           AlgorithmPrimalDual,
			PartialSolutionSize: solver.DefaultPartialSolutionSize,
		},
		Output: OutputConfig{Format: OutputText},
	}
}

// loadConfig decodes path over the defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// validate checks every field against its tag.
func (cfg Config) validate() error {
	if err := configValidate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// solverOptions translates the configuration into solver options.
func (cfg Config) solverOptions() []solver.Option {
	return []solver.Option{
		solver.WithPartialSolutionSize(cfg.Solver.PartialSolutionSize),
		solver.WithPairing(cfg.Solver.Pairing),
		solver.WithTimeLimit(cfg.Solver.TimeLimit),
		solver.WithSeed(cfg.Solver.Seed),
	}
}
