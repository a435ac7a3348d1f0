package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsolver/solver"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.validate())
	assert.Equal(t, AlgorithmPrimalDual, cfg.Solver.Algorithm)
	assert.Equal(t, solver.DefaultPartialSolutionSize, cfg.Solver.PartialSolutionSize)
	assert.Equal(t, OutputText, cfg.Output.Format)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[solver]
pairing = true
time_limit = "1m30s"
seed = 7
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.validate())
	assert.True(t, cfg.Solver.Pairing)
	assert.Equal(t, 90*time.Second, cfg.Solver.TimeLimit)
	assert.Equal(t, int64(7), cfg.Solver.Seed)
	// Untouched keys keep their defaults.
	assert.Equal(t, AlgorithmPrimalDual, cfg.Solver.Algorithm)
	assert.Len(t, cfg.solverOptions(), 4)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[solver\n"), 0o644))
	_, err = loadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigValidate_Ranges(t *testing.T) {
	cases := map[string]func(*Config){
		"window zero":    func(c *Config) { c.Solver.PartialSolutionSize = 0 },
		"window 65":      func(c *Config) { c.Solver.PartialSolutionSize = 65 },
		"negative limit": func(c *Config) { c.Solver.TimeLimit = -time.Second },
		"algorithm":      func(c *Config) { c.Solver.Algorithm = "simplex" },
		"output":         func(c *Config) { c.Output.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.validate(), ErrInvalidConfig)
		})
	}
}

func TestWriteReport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, writeReport(&buf, Report{}, "xml"), ErrInvalidConfig)
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, LogInfo))
	p.done("Solved", "value", 16)
	assert.Contains(t, buf.String(), "Solved")
	assert.Contains(t, buf.String(), "value=16")
	assert.Contains(t, buf.String(), "elapsed=")
}
