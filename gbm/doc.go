// Package gbm simulates sample paths of Geometric Brownian Motion,
// the workhorse model for asset prices and other multiplicative-noise
// processes: dS = mu·S·dt + sigma·S·dW.
//
// What:
//
//   - Config holds the validated process parameters (S0, mu, sigma, T, N)
//     and an optional seed for reproducible runs.
//   - Simulator generates path ensembles under three numerical schemes:
//     exact (closed-form, the reference), Euler–Maruyama, and Milstein.
//   - Summarize / TerminalQuantiles derive terminal-value statistics
//     from a generated ensemble.
//   - Compare drives all three schemes with one shared Brownian path,
//     exposing each scheme's discretization error directly.
//
// Why:
//
//   - Option pricing and risk: Monte Carlo estimates of terminal-value
//     distributions.
//   - Teaching and testing SDE integrators: the exact scheme gives a
//     ground truth the discretized schemes can be measured against.
//   - Synthetic market data: cheap, reproducible price series.
//
// Complexity:
//
//   - Simulate:  O(numPaths·N) time, O(numPaths·N) memory.
//   - Summarize: O(numPaths) time.
//   - Compare:   O(N) time.
//
// Determinism:
//
//   - A seeded Config makes every run bit-identical: each path draws from
//     an independent SplitMix64-derived sub-stream, so the ensemble does
//     not depend on how many workers generated it.
//   - Under the exact scheme every value is strictly positive. Under the
//     discretized schemes a value may go non-positive for large
//     sigma·sqrt(dt); that is the scheme's honest weakness and is
//     propagated rather than clamped.
//
// Errors:
//
//   - ErrInvalidParameter: a Config invariant or call argument is violated.
//   - ErrUnknownScheme: scheme name or value outside the supported set.
//   - ErrEmptyResult: a statistic was asked of a result with zero paths.
package gbm
