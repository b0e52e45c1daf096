package gbm

import "math"

// exactPath samples the closed-form GBM solution at the grid points:
//
//	S(t_k) = S0 · exp((mu − sigma²/2)·t_k + sigma·W(t_k))
//
// where W(t_k) is the running sum of the Brownian increments. Exact at the
// grid points — no discretization error — and strictly positive everywhere,
// since exp never reaches zero.
func exactPath(cfg Config, dB []float64) Path {
	dt := cfg.StepSize()
	n := cfg.Steps
	times := make([]float64, n+1)
	values := make([]float64, n+1)
	values[0] = cfg.Initial

	adj := cfg.Drift - 0.5*cfg.Volatility*cfg.Volatility
	w := 0.0
	for k := 1; k <= n; k++ {
		t := float64(k) * dt
		w += dB[k-1]
		times[k] = t
		values[k] = cfg.Initial * math.Exp(adj*t+cfg.Volatility*w)
	}
	return Path{Times: times, Values: values}
}
