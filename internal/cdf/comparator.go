// Package cdf builds empirical cumulative distribution functions and
// aligns two of them on a shared grid for comparison.
package cdf

import (
	"fmt"
	"sort"

	"github.com/wonny/factorlens/internal/contracts"
)

// Comparator builds and compares empirical CDFs. Stateless.
type Comparator struct{}

// NewComparator creates a new CDF comparator
func NewComparator() *Comparator {
	return &Comparator{}
}

// Build sorts the observations ascending and assigns observation i
// (1-based) the cumulative probability i/n. With this convention the
// minimum maps to 1/n and the maximum to exactly 1.0. Equal values keep
// their sorted adjacency and receive distinct but adjacent probabilities.
func (c *Comparator) Build(series *contracts.ReturnSeries) (*contracts.EmpiricalCDF, error) {
	n := series.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty series %s", contracts.ErrInsufficientData, series.Symbol)
	}

	values := series.Values()
	sort.Float64s(values)

	points := make([]contracts.CDFPoint, n)
	for i, v := range values {
		points[i] = contracts.CDFPoint{
			Value: v,
			Prob:  float64(i+1) / float64(n),
		}
	}

	return &contracts.EmpiricalCDF{Symbol: series.Symbol, Points: points}, nil
}

// Compare evaluates both CDFs on a shared grid: the sorted union of the
// two samples' distinct values. The grid is deterministic given the two
// inputs.
func (c *Comparator) Compare(a, b *contracts.EmpiricalCDF) (*contracts.CDFPair, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return nil, fmt.Errorf("%w: empty CDF", contracts.ErrInsufficientData)
	}

	grid := unionGrid(a, b)

	pair := &contracts.CDFPair{
		A:     *a,
		B:     *b,
		Grid:  grid,
		ProbA: make([]float64, len(grid)),
		ProbB: make([]float64, len(grid)),
	}
	for i, x := range grid {
		pair.ProbA[i] = Evaluate(a, x)
		pair.ProbB[i] = Evaluate(b, x)
	}
	return pair, nil
}

// Evaluate returns the step function value at x: the fraction of the
// sample at or below x. Below the minimum it is 0, at or above the
// maximum 1.
func Evaluate(c *contracts.EmpiricalCDF, x float64) float64 {
	n := len(c.Points)

	// First index with value > x; everything before it is <= x.
	idx := sort.Search(n, func(i int) bool { return c.Points[i].Value > x })
	if idx == 0 {
		return 0.0
	}
	return c.Points[idx-1].Prob
}

// unionGrid merges the distinct values of both samples, ascending
func unionGrid(a, b *contracts.EmpiricalCDF) []float64 {
	merged := make([]float64, 0, a.Len()+b.Len())
	for _, p := range a.Points {
		merged = append(merged, p.Value)
	}
	for _, p := range b.Points {
		merged = append(merged, p.Value)
	}
	sort.Float64s(merged)

	grid := merged[:0]
	for i, v := range merged {
		if i == 0 || v != merged[i-1] {
			grid = append(grid, v)
		}
	}
	return grid
}
