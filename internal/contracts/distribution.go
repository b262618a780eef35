package contracts

// DistributionFit holds the fitted normal parameters for a return series.
// Std uses the unbiased n-1 estimator. Immutable once computed.
type DistributionFit struct {
	Symbol     string  `json:"symbol"`
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
	SampleSize int     `json:"sample_size"`

	// Source value range, for histogram binning in the presentation layer
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Variance returns the fitted variance
func (f *DistributionFit) Variance() float64 {
	return f.Std * f.Std
}

// CDFPoint is one step of an empirical CDF: the fraction of the sample at
// or below Value.
type CDFPoint struct {
	Value float64 `json:"value"`
	Prob  float64 `json:"prob"`
}

// EmpiricalCDF is a monotonically non-decreasing step function from return
// value to cumulative probability in [0,1]. Points follow the i/n
// convention with i = 1..n, so Prob at the minimum is 1/n and at the
// maximum exactly 1.
type EmpiricalCDF struct {
	Symbol string     `json:"symbol"`
	Points []CDFPoint `json:"points"`
}

// Len returns the sample size behind the CDF
func (c *EmpiricalCDF) Len() int {
	return len(c.Points)
}

// CDFPair holds two empirical CDFs evaluated on a shared grid for
// apples-to-apples comparison. Immutable once computed.
type CDFPair struct {
	A EmpiricalCDF `json:"a"`
	B EmpiricalCDF `json:"b"`

	// Shared evaluation grid (sorted union of both samples' distinct
	// values) with both CDFs evaluated at every grid point.
	Grid  []float64 `json:"grid"`
	ProbA []float64 `json:"prob_a"`
	ProbB []float64 `json:"prob_b"`
}
