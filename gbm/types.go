// Package gbm defines core types, configuration, and sentinel errors
// for Geometric Brownian Motion simulation.
package gbm

import "fmt"

// Scheme selects the numerical method used to discretize the GBM SDE.
//
// The set is closed: every scheme is implemented inside this package and
// dispatched through Simulator.Simulate. String-driven selection exists only
// at the boundary via ParseScheme.
type Scheme int

const (
	// SchemeExact samples the closed-form solution at the grid points.
	// No discretization error; the reference method.
	SchemeExact Scheme = iota

	// SchemeEulerMaruyama applies the first-order Euler–Maruyama recursion.
	// Carries O(dt) bias; values may go non-positive for large sigma·sqrt(dt).
	SchemeEulerMaruyama

	// SchemeMilstein applies Euler–Maruyama plus the second-order
	// 0.5·sigma²·S·(dB²−dt) correction term.
	SchemeMilstein
)

// String returns the canonical name of the scheme, as accepted by ParseScheme.
func (s Scheme) String() string {
	switch s {
	case SchemeExact:
		return "exact"
	case SchemeEulerMaruyama:
		return "euler-maruyama"
	case SchemeMilstein:
		return "milstein"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// ParseScheme maps a scheme name to its Scheme value.
// Accepted names: "exact", "euler-maruyama" (alias "euler"), "milstein".
// Unknown names return ErrUnknownScheme.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "exact":
		return SchemeExact, nil
	case "euler-maruyama", "euler":
		return SchemeEulerMaruyama, nil
	case "milstein":
		return SchemeMilstein, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}

// Config parameterizes a GBM process dS = mu·S·dt + sigma·S·dW on [0, Horizon].
//
// Initial    – process value at t=0; must be > 0.
// Drift      – expected instantaneous rate of change (mu); any real.
// Volatility – instantaneous noise scale (sigma); must be ≥ 0.
// Horizon    – total simulated time span (T); must be > 0.
// Steps      – number of grid steps (N); must be ≥ 1. Step size dt = Horizon/Steps.
// Seed       – base seed for the random source; consulted only when Seeded is true.
// Seeded     – if true, path generation is deterministic and repeatable;
//              if false, each Simulator draws fresh entropy at construction.
//
// A Config is read-only once handed to New; the Simulator copies it.
type Config struct {
	Initial    float64
	Drift      float64
	Volatility float64
	Horizon    float64
	Steps      int
	Seed       uint64
	Seeded     bool
}

// StepSize returns dt = Horizon / Steps.
func (c Config) StepSize() float64 {
	return c.Horizon / float64(c.Steps)
}

// Validate checks the Config invariants and reports the first violation by
// wrapping ErrInvalidParameter with the offending field and value.
func (c Config) Validate() error {
	if c.Initial <= 0 {
		return fmt.Errorf("%w: Initial must be positive, got %g", ErrInvalidParameter, c.Initial)
	}
	if c.Volatility < 0 {
		return fmt.Errorf("%w: Volatility must be non-negative, got %g", ErrInvalidParameter, c.Volatility)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: Horizon must be positive, got %g", ErrInvalidParameter, c.Horizon)
	}
	if c.Steps < 1 {
		return fmt.Errorf("%w: Steps must be at least 1, got %d", ErrInvalidParameter, c.Steps)
	}
	return nil
}

// Path is one discretized sample path: Times[k] is the k-th grid point,
// Values[k] the process value there. Both slices have length Steps+1,
// Times[0] = 0 and Values[0] = Initial.
type Path struct {
	Times  []float64
	Values []float64
}

// Len returns the number of grid points in the path.
func (p Path) Len() int { return len(p.Values) }

// Terminal returns the process value at the final grid point, S(Horizon).
func (p Path) Terminal() float64 { return p.Values[len(p.Values)-1] }

// Result is the outcome of one Simulate call: the ensemble of paths produced
// under a single Config and a single Scheme. The caller owns it exclusively;
// the Simulator keeps no reference after returning.
type Result struct {
	Scheme Scheme
	Config Config
	Paths  []Path
}

// Summary holds terminal-value statistics across the paths of a Result.
//
// Variance is the sample variance (n−1 denominator); for a single path it is
// NaN, matching the convention of gonum's stat.Variance.
type Summary struct {
	NumPaths int
	Mean     float64
	Variance float64
	Min      float64
	Max      float64
}
