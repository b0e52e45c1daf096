package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoch/gbm"
	"github.com/katalvlaran/stoch/scenario"
)

const fullScenario = `
initial: 100
drift: 0.05
volatility: 0.2
horizon: 1.0
steps: 252
scheme: milstein
paths: 500
seed: 42
`

// TestParse_Full verifies a complete scenario maps onto Run field by field.
func TestParse_Full(t *testing.T) {
	run, err := scenario.Parse([]byte(fullScenario))
	require.NoError(t, err)

	assert.Equal(t, 100.0, run.Config.Initial)
	assert.Equal(t, 0.05, run.Config.Drift)
	assert.Equal(t, 0.2, run.Config.Volatility)
	assert.Equal(t, 1.0, run.Config.Horizon)
	assert.Equal(t, 252, run.Config.Steps)
	assert.True(t, run.Config.Seeded)
	assert.Equal(t, uint64(42), run.Config.Seed)
	assert.Equal(t, gbm.SchemeMilstein, run.Scheme)
	assert.Equal(t, 500, run.Paths)
}

// TestParse_Defaults verifies scheme defaults to exact, paths to 1, and an
// absent seed leaves the run unseeded.
func TestParse_Defaults(t *testing.T) {
	run, err := scenario.Parse([]byte(`
initial: 50
drift: 0.01
volatility: 0.1
horizon: 2.0
steps: 100
`))
	require.NoError(t, err)

	assert.Equal(t, gbm.SchemeExact, run.Scheme)
	assert.Equal(t, 1, run.Paths)
	assert.False(t, run.Config.Seeded)
}

// TestParse_ZeroSeedIsSeeded verifies `seed: 0` is an explicit deterministic seed.
func TestParse_ZeroSeedIsSeeded(t *testing.T) {
	run, err := scenario.Parse([]byte(`
initial: 50
drift: 0.01
volatility: 0.1
horizon: 2.0
steps: 100
seed: 0
`))
	require.NoError(t, err)

	assert.True(t, run.Config.Seeded)
	assert.Equal(t, uint64(0), run.Config.Seed)
}

// TestParse_MalformedYAML verifies broken YAML fails with ErrMalformed.
func TestParse_MalformedYAML(t *testing.T) {
	_, err := scenario.Parse([]byte("initial: [not: closed"))
	assert.ErrorIs(t, err, scenario.ErrMalformed)
}

// TestParse_UnknownScheme verifies scheme validation uses the gbm sentinel.
func TestParse_UnknownScheme(t *testing.T) {
	_, err := scenario.Parse([]byte(`
initial: 100
drift: 0.05
volatility: 0.2
horizon: 1.0
steps: 252
scheme: runge-kutta
`))
	assert.ErrorIs(t, err, gbm.ErrUnknownScheme)
}

// TestParse_InvalidParameters verifies process invariants are enforced at parse time.
func TestParse_InvalidParameters(t *testing.T) {
	cases := map[string]string{
		"non-positive initial": "initial: -5\ndrift: 0\nvolatility: 0.1\nhorizon: 1\nsteps: 10",
		"negative volatility":  "initial: 5\ndrift: 0\nvolatility: -0.1\nhorizon: 1\nsteps: 10",
		"zero steps":           "initial: 5\ndrift: 0\nvolatility: 0.1\nhorizon: 1\nsteps: 0",
		"negative paths":       "initial: 5\ndrift: 0\nvolatility: 0.1\nhorizon: 1\nsteps: 10\npaths: -2",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(doc))
			assert.ErrorIs(t, err, gbm.ErrInvalidParameter)
		})
	}
}

// TestLoad_File verifies the file path round-trip and the missing-file sentinel.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullScenario), 0o644))

	run, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, gbm.SchemeMilstein, run.Scheme)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, scenario.ErrUnreadable)
}

// TestLoad_DrivesSimulator verifies a loaded run produces the same ensemble
// as a hand-built config with identical parameters.
func TestLoad_DrivesSimulator(t *testing.T) {
	run, err := scenario.Parse([]byte(fullScenario))
	require.NoError(t, err)

	fromFile, err := gbm.New(run.Config)
	require.NoError(t, err)
	byHand, err := gbm.New(gbm.Config{
		Initial: 100, Drift: 0.05, Volatility: 0.2,
		Horizon: 1.0, Steps: 252, Seed: 42, Seeded: true,
	})
	require.NoError(t, err)

	resA, err := fromFile.Simulate(run.Scheme, 4)
	require.NoError(t, err)
	resB, err := byHand.SimulateMilstein(4)
	require.NoError(t, err)
	assert.Equal(t, resB.Paths, resA.Paths)
}
