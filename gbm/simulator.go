package gbm

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/exp/rand"
)

// Simulator — Geometric Brownian Motion path generation
//
// Description:
//
//	A Simulator owns a validated Config and a base seed. Each requested path
//	draws its Brownian increments from an independent sub-stream whose seed
//	is derived from (base seed, stream index) via SplitMix64. The stream
//	index advances monotonically across calls, so repeated Simulate calls on
//	one Simulator produce fresh ensembles, while two Simulators built from
//	the same seeded Config reproduce each other bit for bit.
//
// Algorithm Outline (per path):
//  1. Draw N increments dB_k ~ N(0, dt) from the path's sub-stream.
//  2. Dispatch on the Scheme:
//     exact          — S(t_k) = S0·exp((mu − sigma²/2)·t_k + sigma·W(t_k)),
//     W(t_k) = dB_1 + … + dB_k.
//     euler-maruyama — S_{k+1} = S_k + mu·S_k·dt + sigma·S_k·dB_k.
//     milstein       — Euler–Maruyama + 0.5·sigma²·S_k·(dB_k² − dt).
//  3. Record (t_k, S_k) for k = 0..N with t_k = k·dt.
//
// Paths within one call are generated by a bounded worker pool; because each
// path owns its sub-stream and its slot in the ensemble, the output does not
// depend on the number of workers.
//
// Complexity:
//
//	Time   = O(numPaths · Steps)
//	Memory = O(numPaths · Steps)
//
// Errors:
//   - ErrInvalidParameter — Config invariant violated at construction,
//     or numPaths < 1 at call time.
//   - ErrUnknownScheme    — Scheme value outside the supported set.
type Simulator struct {
	cfg  Config
	base uint64 // seed all sub-streams derive from
	next uint64 // index of the next unused sub-stream
}

// New builds a Simulator from cfg. It fails with ErrInvalidParameter if any
// Config invariant is violated. When cfg.Seeded is false the base seed is
// drawn from fresh entropy, making every Simulator's output distinct.
func New(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := cfg.Seed
	if !cfg.Seeded {
		base = entropySeed()
	}
	return &Simulator{cfg: cfg, base: base}, nil
}

// Config returns a copy of the simulator's configuration.
func (s *Simulator) Config() Config { return s.cfg }

// Simulate generates numPaths sample paths under the given scheme.
// A Simulator is not safe for concurrent use: each call consumes numPaths
// sub-streams of the random source.
func (s *Simulator) Simulate(scheme Scheme, numPaths int) (Result, error) {
	if scheme < SchemeExact || scheme > SchemeMilstein {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownScheme, scheme)
	}
	if numPaths < 1 {
		return Result{}, fmt.Errorf("%w: numPaths must be at least 1, got %d", ErrInvalidParameter, numPaths)
	}

	offset := s.next
	s.next += uint64(numPaths)

	paths := make([]Path, numPaths)
	workers := runtime.GOMAXPROCS(0)
	if workers > numPaths {
		workers = numPaths
	}

	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				src := rand.NewSource(subSeed(s.base, offset+uint64(i)))
				paths[i] = s.generate(scheme, src)
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return Result{Scheme: scheme, Config: s.cfg, Paths: paths}, nil
}

// SimulateExact generates numPaths paths with the closed-form scheme.
func (s *Simulator) SimulateExact(numPaths int) (Result, error) {
	return s.Simulate(SchemeExact, numPaths)
}

// SimulateEulerMaruyama generates numPaths paths with the Euler–Maruyama scheme.
func (s *Simulator) SimulateEulerMaruyama(numPaths int) (Result, error) {
	return s.Simulate(SchemeEulerMaruyama, numPaths)
}

// SimulateMilstein generates numPaths paths with the Milstein scheme.
func (s *Simulator) SimulateMilstein(numPaths int) (Result, error) {
	return s.Simulate(SchemeMilstein, numPaths)
}

// generate draws one path's increments from src and runs the scheme recursion.
func (s *Simulator) generate(scheme Scheme, src rand.Source) Path {
	dB := increments(s.cfg.Steps, s.cfg.StepSize(), src)
	switch scheme {
	case SchemeEulerMaruyama:
		return eulerMaruyamaPath(s.cfg, dB)
	case SchemeMilstein:
		return milsteinPath(s.cfg, dB)
	default:
		return exactPath(s.cfg, dB)
	}
}
