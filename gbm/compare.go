package gbm

import (
	"math"

	"golang.org/x/exp/rand"
)

// Comparison holds one path per scheme, all driven by the SAME Brownian
// increments, so the difference between paths is pure discretization error.
//
// EulerMaruyamaDeviation and MilsteinDeviation are the maximum absolute
// deviations of the respective discretized path from the exact path over
// the whole grid.
type Comparison struct {
	Exact         Path
	EulerMaruyama Path
	Milstein      Path

	EulerMaruyamaDeviation float64
	MilsteinDeviation      float64
}

// Compare runs all three schemes over one shared Brownian path and measures
// how far each discretized scheme strays from the closed-form reference.
// It consumes one sub-stream of the simulator's random source.
func (s *Simulator) Compare() Comparison {
	src := rand.NewSource(subSeed(s.base, s.next))
	s.next++

	dB := increments(s.cfg.Steps, s.cfg.StepSize(), src)
	exact := exactPath(s.cfg, dB)
	euler := eulerMaruyamaPath(s.cfg, dB)
	milstein := milsteinPath(s.cfg, dB)

	return Comparison{
		Exact:                  exact,
		EulerMaruyama:          euler,
		Milstein:               milstein,
		EulerMaruyamaDeviation: maxDeviation(exact, euler),
		MilsteinDeviation:      maxDeviation(exact, milstein),
	}
}

// maxDeviation returns max_k |a.Values[k] − b.Values[k]|.
func maxDeviation(a, b Path) float64 {
	d := 0.0
	for k := range a.Values {
		if dev := math.Abs(a.Values[k] - b.Values[k]); dev > d {
			d = dev
		}
	}
	return d
}
