package gbm

// eulerMaruyamaPath runs the first-order Euler–Maruyama recursion:
//
//	S_{k+1} = S_k + mu·S_k·dt + sigma·S_k·dB_k
//
// Discretization bias is O(dt). Unlike true GBM the recursion is not
// confined to positive values: for large sigma·sqrt(dt) a step can cross
// zero, and the now-negative value keeps propagating through subsequent
// steps. That weakness is the scheme's observable behavior — values are
// never clamped or rejected here.
func eulerMaruyamaPath(cfg Config, dB []float64) Path {
	dt := cfg.StepSize()
	n := cfg.Steps
	times := make([]float64, n+1)
	values := make([]float64, n+1)
	values[0] = cfg.Initial

	v := cfg.Initial
	for k := 1; k <= n; k++ {
		v += cfg.Drift*v*dt + cfg.Volatility*v*dB[k-1]
		times[k] = float64(k) * dt
		values[k] = v
	}
	return Path{Times: times, Values: values}
}
