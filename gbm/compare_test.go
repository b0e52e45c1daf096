package gbm_test

import (
	"testing"

	"github.com/katalvlaran/stoch/gbm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompare_SharedGrid verifies all three paths live on the same grid and
// start at the initial value.
func TestCompare_SharedGrid(t *testing.T) {
	sim, err := gbm.New(validConfig())
	require.NoError(t, err)

	cmp := sim.Compare()
	require.Equal(t, cmp.Exact.Len(), cmp.EulerMaruyama.Len())
	require.Equal(t, cmp.Exact.Len(), cmp.Milstein.Len())
	assert.Equal(t, cmp.Exact.Times, cmp.EulerMaruyama.Times)
	assert.Equal(t, cmp.Exact.Times, cmp.Milstein.Times)
	assert.Equal(t, 100.0, cmp.Exact.Values[0])
	assert.Equal(t, 100.0, cmp.EulerMaruyama.Values[0])
	assert.Equal(t, 100.0, cmp.Milstein.Values[0])
}

// TestCompare_MilsteinTighterThanEuler verifies the correction term earns its
// keep: on a fine grid with shared noise, Milstein tracks the exact path at
// least as closely as Euler–Maruyama.
func TestCompare_MilsteinTighterThanEuler(t *testing.T) {
	cfg := validConfig()
	cfg.Steps = 1000
	sim, err := gbm.New(cfg)
	require.NoError(t, err)

	cmp := sim.Compare()
	assert.Greater(t, cmp.EulerMaruyamaDeviation, 0.0)
	assert.Greater(t, cmp.MilsteinDeviation, 0.0)
	assert.LessOrEqual(t, cmp.MilsteinDeviation, cmp.EulerMaruyamaDeviation)
}

// TestCompare_Reproducible verifies seeded comparisons are bit-identical
// across fresh simulators.
func TestCompare_Reproducible(t *testing.T) {
	simA, err := gbm.New(validConfig())
	require.NoError(t, err)
	simB, err := gbm.New(validConfig())
	require.NoError(t, err)

	assert.Equal(t, simA.Compare(), simB.Compare())
}

// TestCompare_ZeroVolatility verifies sigma=0 leaves only the O(dt) drift
// discretization gap between the schemes and the exponential curve.
func TestCompare_ZeroVolatility(t *testing.T) {
	cfg := validConfig()
	cfg.Volatility = 0
	cfg.Steps = 10000
	sim, err := gbm.New(cfg)
	require.NoError(t, err)

	cmp := sim.Compare()
	assert.Equal(t, cmp.EulerMaruyama.Values, cmp.Milstein.Values)
	assert.InDelta(t, 0.0, cmp.EulerMaruyamaDeviation, 0.05)
}
