// Package distribution fits a normal distribution to a return series and
// exposes the fitted density for histogram overlays.
package distribution

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/wonny/factorlens/internal/contracts"
)

// Fitter estimates normal parameters from sample returns. Stateless.
type Fitter struct{}

// NewFitter creates a new distribution fitter
func NewFitter() *Fitter {
	return &Fitter{}
}

// Fit computes the sample mean and the unbiased (n-1) standard deviation.
// Fails with ErrDegenerateDistribution for constant or single-point series.
func (f *Fitter) Fit(series *contracts.ReturnSeries) (*contracts.DistributionFit, error) {
	n := series.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: %d observations", contracts.ErrDegenerateDistribution, n)
	}

	values := series.Values()
	mean := stat.Mean(values, nil)
	std := stat.StdDev(values, nil)

	if std == 0 {
		return nil, fmt.Errorf("%w: constant series %s", contracts.ErrDegenerateDistribution, series.Symbol)
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return &contracts.DistributionFit{
		Symbol:     series.Symbol,
		Mean:       mean,
		Std:        std,
		SampleSize: n,
		Min:        min,
		Max:        max,
	}, nil
}

// Density evaluates the fitted normal PDF at x. Purely a function of
// (mean, std, x).
func Density(fit *contracts.DistributionFit, x float64) float64 {
	normal := distuv.Normal{Mu: fit.Mean, Sigma: fit.Std}
	return normal.Prob(x)
}

// DensityCurve evaluates the fitted PDF on points linearly spaced across
// [fit.Min, fit.Max], for overlay plotting against a histogram.
func DensityCurve(fit *contracts.DistributionFit, points int) ([]float64, []float64) {
	if points < 2 {
		points = 2
	}

	xs := make([]float64, points)
	ys := make([]float64, points)
	step := (fit.Max - fit.Min) / float64(points-1)
	normal := distuv.Normal{Mu: fit.Mean, Sigma: fit.Std}

	for i := 0; i < points; i++ {
		x := fit.Min + float64(i)*step
		xs[i] = x
		ys[i] = normal.Prob(x)
	}
	return xs, ys
}
