// Package regression fits ordinary least squares models of stock returns
// against market-factor benchmarks.
package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/wonny/factorlens/internal/contracts"
)

// rankTolerance is the SVD singular value cutoff used to detect a
// rank-deficient design matrix.
const rankTolerance = 1e-12

// Engine fits OLS models. It is stateless; the same inputs always yield
// bit-identical results.
type Engine struct{}

// NewEngine creates a new regression engine
func NewEngine() *Engine {
	return &Engine{}
}

// Fit regresses the stock series on an intercept plus the model's factors.
//
// The solve goes through an SVD of the design matrix rather than an
// explicit (X'X)^-1, which keeps near-collinear factor sets from losing
// precision. Standard errors come from the residual variance and the
// (X'X)^-1 diagonal reconstructed from the same decomposition.
func (e *Engine) Fit(fs *contracts.FactorSet, spec contracts.ModelSpec) (*contracts.RegressionResult, error) {
	n := fs.Len()
	k := len(spec.Factors)
	df := n - k - 1

	if df <= 0 {
		return nil, fmt.Errorf("%w: n=%d, k=%d", contracts.ErrInsufficientDegreesOfFreedom, n, k)
	}

	// Design matrix: intercept column followed by the factors in model order
	cols := k + 1
	X := mat.NewDense(n, cols, nil)
	y := make([]float64, n)

	for i, obs := range fs.Stock.Observations {
		y[i] = obs.Return
		X.Set(i, 0, 1.0)
	}
	for j, name := range spec.Factors {
		factor := fs.Factor(name)
		if factor == nil || factor.Len() != n {
			return nil, fmt.Errorf("%w: %s not aligned", contracts.ErrUnknownFactor, name)
		}
		for i, obs := range factor.Observations {
			X.Set(i, j+1, obs.Return)
		}
	}

	var svd mat.SVD
	if !svd.Factorize(X, mat.SVDFullU|mat.SVDFullV) {
		return nil, fmt.Errorf("%w: SVD factorization failed", contracts.ErrSingularDesign)
	}

	rank := svd.Rank(rankTolerance)
	if rank < cols {
		return nil, fmt.Errorf("%w: rank %d < %d regressors", contracts.ErrSingularDesign, rank, cols)
	}

	// beta = argmin ||y - X b||
	yMat := mat.NewDense(n, 1, y)
	var B mat.Dense
	svd.SolveTo(&B, yMat, rank)

	beta := make([]float64, cols)
	for j := 0; j < cols; j++ {
		beta[j] = B.At(j, 0)
	}

	// Residuals and sums of squares
	var yHat mat.Dense
	yHat.Mul(X, &B)

	var ssr, sst float64
	yMean := mean(y)
	for i := 0; i < n; i++ {
		r := y[i] - yHat.At(i, 0)
		ssr += r * r
		d := y[i] - yMean
		sst += d * d
	}

	rSquared := 0.0
	if sst > 0 {
		rSquared = 1.0 - ssr/sst
	}

	sigma2 := ssr / float64(df)

	// (X'X)^-1 diagonal via V * S^-2 * V'
	var V mat.Dense
	svd.VTo(&V)
	values := svd.Values(nil)

	covDiag := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var sum float64
		for m := 0; m < cols; m++ {
			v := V.At(j, m) / values[m]
			sum += v * v
		}
		covDiag[j] = sum
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}

	coefs := make([]contracts.Coefficient, cols)
	for j := 0; j < cols; j++ {
		se := math.Sqrt(sigma2 * covDiag[j])
		coefs[j] = coefficient(beta[j], se, tDist)
	}
	for j, name := range spec.Factors {
		coefs[j+1].Factor = name
	}

	return &contracts.RegressionResult{
		Model:       spec.ID,
		Symbol:      fs.Stock.Symbol,
		Intercept:   coefs[0],
		Factors:     coefs[1:],
		RSquared:    rSquared,
		ResidualSE:  math.Sqrt(sigma2),
		SampleSize:  n,
		DegreesFree: df,
	}, nil
}

// FitAll runs every fixed model configuration against the aligned set,
// in report order.
func (e *Engine) FitAll(fs *contracts.FactorSet) ([]*contracts.RegressionResult, error) {
	results := make([]*contracts.RegressionResult, 0, len(contracts.Models))
	for _, spec := range contracts.Models {
		result, err := e.Fit(fs, spec)
		if err != nil {
			return nil, fmt.Errorf("model %d: %w", spec.ID, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// coefficient assembles one estimate with its inference fields
func coefficient(estimate, se float64, tDist distuv.StudentsT) contracts.Coefficient {
	var tStat, pValue float64
	switch {
	case se > 0:
		tStat = estimate / se
		pValue = 2.0 * (1.0 - tDist.CDF(math.Abs(tStat)))
	case estimate != 0:
		// Perfect fit: zero residual variance, the estimate is exact
		tStat = math.Inf(sign(estimate))
		pValue = 0.0
	default:
		tStat = 0.0
		pValue = 1.0
	}

	// Clamp for floating point noise in the CDF tail
	if pValue < 0 {
		pValue = 0
	}
	if pValue > 1 {
		pValue = 1
	}

	return contracts.Coefficient{
		Estimate: estimate,
		StdError: se,
		TStat:    tStat,
		PValue:   pValue,
		Tier:     contracts.TierForPValue(pValue),
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
