// Package analysis orchestrates one analysis request: alignment, the five
// regressions, the normal fit, and the CDF comparison.
package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/wonny/factorlens/internal/cdf"
	"github.com/wonny/factorlens/internal/contracts"
	"github.com/wonny/factorlens/internal/distribution"
	"github.com/wonny/factorlens/internal/regression"
	"github.com/wonny/factorlens/internal/series"
	"github.com/wonny/factorlens/pkg/logger"
)

// Result bundles the independent outputs of one analysis request.
// Each field is a plain structured value safe to hand to any
// presentation or report layer.
type Result struct {
	Symbol      string                        `json:"symbol"`
	From        time.Time                     `json:"from"`
	To          time.Time                     `json:"to"`
	SampleSize  int                           `json:"sample_size"`
	Regressions []*contracts.RegressionResult `json:"regressions"`
	StockFit    *contracts.DistributionFit    `json:"stock_fit"`
	BenchFit    *contracts.DistributionFit    `json:"bench_fit"`
	CDF         *contracts.CDFPair            `json:"cdf"`
}

// Analyzer runs the three analytic components against an aligned factor
// set. The components have no data dependency on each other and run
// concurrently; every invocation is deterministic.
type Analyzer struct {
	engine     *regression.Engine
	fitter     *distribution.Fitter
	comparator *cdf.Comparator
	logger     *logger.Logger
}

// New creates a new analyzer
func New(log *logger.Logger) *Analyzer {
	return &Analyzer{
		engine:     regression.NewEngine(),
		fitter:     distribution.NewFitter(),
		comparator: cdf.NewComparator(),
		logger:     log,
	}
}

// Run aligns the stock against all factors and computes regressions,
// distribution fits, and the CDF comparison against the market benchmark.
// No partial results: the first failure fails the request.
func (a *Analyzer) Run(ctx context.Context, store *series.Store, symbol string, from, to time.Time) (*Result, error) {
	stock, err := store.GetSeries(symbol, from, to)
	if err != nil {
		return nil, err
	}

	factors := make(map[contracts.FactorName]*contracts.ReturnSeries, len(contracts.AllFactors))
	for _, name := range contracts.AllFactors {
		f, err := store.GetFactor(name, from, to)
		if err != nil {
			return nil, err
		}
		factors[name] = f
	}

	fs, err := store.AlignAll(stock, factors)
	if err != nil {
		return nil, err
	}

	a.logger.WithFields(map[string]interface{}{
		"symbol":       symbol,
		"observations": fs.Len(),
	}).Debug("Aligned factor set")

	result := &Result{
		Symbol:     symbol,
		From:       from,
		To:         to,
		SampleSize: fs.Len(),
	}

	// The three components are pure functions of fs and independent of
	// each other.
	var wg sync.WaitGroup
	var regErr, fitErr, cdfErr error

	wg.Add(3)

	go func() {
		defer wg.Done()
		result.Regressions, regErr = a.engine.FitAll(fs)
	}()

	go func() {
		defer wg.Done()
		if result.StockFit, fitErr = a.fitter.Fit(fs.Stock); fitErr != nil {
			return
		}
		result.BenchFit, fitErr = a.fitter.Fit(fs.Factor(contracts.FactorMarket))
	}()

	go func() {
		defer wg.Done()
		var stockCDF, benchCDF *contracts.EmpiricalCDF
		if stockCDF, cdfErr = a.comparator.Build(fs.Stock); cdfErr != nil {
			return
		}
		if benchCDF, cdfErr = a.comparator.Build(fs.Factor(contracts.FactorMarket)); cdfErr != nil {
			return
		}
		result.CDF, cdfErr = a.comparator.Compare(stockCDF, benchCDF)
	}()

	wg.Wait()

	for _, err := range []error{regErr, fitErr, cdfErr} {
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
