package gbm

import "errors"

// Sentinel errors for gbm operations. Parameter violations wrap
// ErrInvalidParameter with the offending field and value; check with errors.Is.
var (
	// ErrInvalidParameter indicates a Config invariant or a call argument was violated.
	ErrInvalidParameter = errors.New("gbm: invalid parameter")

	// ErrUnknownScheme indicates a scheme name or value outside the supported set.
	ErrUnknownScheme = errors.New("gbm: unknown scheme")

	// ErrEmptyResult indicates a Result with zero paths was given to a statistic.
	ErrEmptyResult = errors.New("gbm: result contains no paths")
)
