package gbm

// milsteinPath runs the Milstein recursion, Euler–Maruyama plus the
// second-order correction from the Itô–Taylor expansion:
//
//	S_{k+1} = S_k + mu·S_k·dt + sigma·S_k·dB_k + 0.5·sigma²·S_k·(dB_k² − dt)
//
// Better strong-order accuracy than Euler–Maruyama from the same increments.
// Shares its edge-case policy too: a non-positive intermediate value
// propagates untouched.
func milsteinPath(cfg Config, dB []float64) Path {
	dt := cfg.StepSize()
	n := cfg.Steps
	times := make([]float64, n+1)
	values := make([]float64, n+1)
	values[0] = cfg.Initial

	sig2 := cfg.Volatility * cfg.Volatility
	v := cfg.Initial
	for k := 1; k <= n; k++ {
		db := dB[k-1]
		v += cfg.Drift*v*dt + cfg.Volatility*v*db + 0.5*sig2*v*(db*db-dt)
		times[k] = float64(k) * dt
		values[k] = v
	}
	return Path{Times: times, Values: values}
}
