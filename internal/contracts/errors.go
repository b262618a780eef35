package contracts

import "errors"

// Analysis failure taxonomy. Every analytic component surfaces one of these
// sentinels (wrapped with context) instead of silently coercing a result.
var (
	// ErrInsufficientData indicates the aligned date intersection has fewer
	// observations than the configured minimum.
	ErrInsufficientData = errors.New("insufficient aligned observations")

	// ErrSingularDesign indicates the factor matrix is rank-deficient
	// (duplicate or perfectly collinear factors).
	ErrSingularDesign = errors.New("singular design matrix")

	// ErrInsufficientDegreesOfFreedom indicates n - k - 1 <= 0 for the
	// requested model.
	ErrInsufficientDegreesOfFreedom = errors.New("insufficient degrees of freedom")

	// ErrDegenerateDistribution indicates a zero-variance or single-point
	// series that cannot support a normal fit.
	ErrDegenerateDistribution = errors.New("degenerate distribution")

	// ErrUnknownTicker indicates the requested symbol is not in the registry
	// or the store.
	ErrUnknownTicker = errors.New("unknown ticker")

	// ErrUnknownFactor indicates the requested factor has no series loaded.
	ErrUnknownFactor = errors.New("unknown factor")
)
