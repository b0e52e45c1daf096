package gbm

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes terminal-value statistics across the paths of res:
// sample mean, sample variance (n−1 denominator, NaN for a single path),
// minimum and maximum. It fails with ErrEmptyResult on zero paths and never
// mutates res.
func Summarize(res Result) (Summary, error) {
	if len(res.Paths) == 0 {
		return Summary{}, ErrEmptyResult
	}
	term := terminals(res)
	return Summary{
		NumPaths: len(term),
		Mean:     stat.Mean(term, nil),
		Variance: stat.Variance(term, nil),
		Min:      floats.Min(term),
		Max:      floats.Max(term),
	}, nil
}

// TerminalQuantiles returns the empirical quantiles of the terminal values
// of res at the given probabilities. Each probability must lie in [0, 1];
// otherwise ErrInvalidParameter is returned. Zero paths is ErrEmptyResult.
func TerminalQuantiles(res Result, probs []float64) ([]float64, error) {
	if len(res.Paths) == 0 {
		return nil, ErrEmptyResult
	}
	for _, p := range probs {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%w: quantile probability must be in [0,1], got %g", ErrInvalidParameter, p)
		}
	}
	term := terminals(res)
	sort.Float64s(term)
	qs := make([]float64, len(probs))
	for i, p := range probs {
		qs[i] = stat.Quantile(p, stat.Empirical, term, nil)
	}
	return qs, nil
}

// terminals collects S(Horizon) of every path into a fresh slice.
func terminals(res Result) []float64 {
	term := make([]float64, len(res.Paths))
	for i, p := range res.Paths {
		term[i] = p.Terminal()
	}
	return term
}
