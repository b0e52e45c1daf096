// Package scenario loads GBM simulation scenarios from YAML files.
//
// What:
//
//   - Scenario mirrors the YAML layout: process parameters, scheme name,
//     path count, optional seed.
//   - Parse / Load turn YAML into a validated Run (gbm.Config + Scheme +
//     path count) ready to hand to a gbm.Simulator.
//
// Why:
//
//   - Keeps the CLI thin: a scenario file describes a whole run, so flags
//     and files share one validation path.
//   - Scenarios are reviewable artifacts: a seeded file reproduces a run
//     exactly on any machine.
//
// Example scenario file:
//
//	initial: 100
//	drift: 0.05
//	volatility: 0.2
//	horizon: 1.0
//	steps: 252
//	scheme: exact
//	paths: 1000
//	seed: 42
//
// Errors:
//
//   - ErrUnreadable: the file cannot be read.
//   - ErrMalformed: the YAML does not parse.
//   - gbm.ErrInvalidParameter / gbm.ErrUnknownScheme: the parsed values
//     violate the process invariants or name an unsupported scheme.
package scenario
