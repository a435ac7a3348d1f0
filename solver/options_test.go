package solver_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/knapsolver/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions checks the documented defaults.
func TestDefaultOptions(t *testing.T) {
	o := solver.DefaultOptions()
	assert.NotNil(t, o.Ctx)
	assert.Equal(t, solver.DefaultPartialSolutionSize, o.PartialSolutionSize)
	assert.False(t, o.Pairing)
	assert.Zero(t, o.TimeLimit)
	assert.NotNil(t, o.OnUpdate)
	assert.NotNil(t, o.Logger)
}

// TestWithLogger_ReceivesImprovements routes debug records to a buffer.
func TestWithLogger_ReceivesImprovements(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	res, err := solver.DynamicProgrammingPrimalDual(scenario(t), solver.WithLogger(logger))
	require.NoError(t, err)
	assert.True(t, res.Optimal())
	assert.Contains(t, buf.String(), "greedy")
	assert.Contains(t, buf.String(), "dantzig upper bound")
}

// TestOptions_NilArgumentsKeepDefaults ignores nil hooks, loggers and contexts.
func TestOptions_NilArgumentsKeepDefaults(t *testing.T) {
	res, err := solver.DynamicProgrammingPrimalDual(scenario(t),
		solver.WithContext(nil), solver.WithOnUpdate(nil), solver.WithLogger(nil),
		solver.WithTimeLimit(time.Minute))
	require.NoError(t, err)
	assert.True(t, res.Optimal())
}

// TestUpdateKind_String names every kind.
func TestUpdateKind_String(t *testing.T) {
	assert.Equal(t, "value", solver.UpdateValue.String())
	assert.Equal(t, "bound", solver.UpdateBound.String())
	assert.Equal(t, "solution", solver.UpdateSolution.String())
	assert.Equal(t, "unknown", solver.UpdateKind(9).String())
}
