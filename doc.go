// Package stoch is your in-memory playground for stochastic-process
// simulation — reproducible sample paths and honest numerics.
//
// 🚀 What is stoch?
//
//	A small, focused library for Geometric Brownian Motion:
//		• Three schemes: exact (closed-form), Euler–Maruyama, Milstein
//		• Seeded, bit-reproducible ensembles with per-path sub-streams
//		• Terminal-value statistics: mean, variance, empirical quantiles
//		• Shared-noise scheme comparison exposing discretization error
//		• YAML scenario files and a CLI (cmd/stoch) on top of it all
//
// ✨ Why choose stoch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – a seed pins every draw, serial or parallel
//   - Honest numerics – discretized schemes keep their real weaknesses;
//     nothing is clamped behind your back
//
// Everything is organized under two packages plus the CLI:
//
//	gbm/      — Config, Simulator, schemes, statistics
//	scenario/ — YAML scenario files → validated runs
//	cmd/stoch — simulate, compare, version
//
// Quick sketch:
//
//	cfg := gbm.Config{Initial: 100, Drift: 0.05, Volatility: 0.2,
//		Horizon: 1, Steps: 252, Seed: 42, Seeded: true}
//	sim, _ := gbm.New(cfg)
//	res, _ := sim.SimulateExact(1000)
//	sum, _ := gbm.Summarize(res)
//
// Next up: correlated multi-asset processes and variance-reduction schemes.
//
//	go get github.com/katalvlaran/stoch
package stoch
