package analysis

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/factorlens/internal/contracts"
	"github.com/wonny/factorlens/internal/series"
	"github.com/wonny/factorlens/pkg/config"
	"github.com/wonny/factorlens/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "development", LogLevel: "error"})
}

// seededStore builds a store with 252 daily observations where the stock
// follows a known single-factor model against MARKET.
func seededStore(t *testing.T) (*series.Store, time.Time, time.Time) {
	t.Helper()

	rng := rand.New(rand.NewSource(42))
	n := 252
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	stock := &contracts.ReturnSeries{Symbol: "TXN"}
	market := &contracts.ReturnSeries{Symbol: string(contracts.FactorMarket)}
	vw := &contracts.ReturnSeries{Symbol: string(contracts.FactorVWMarket)}
	rf := &contracts.ReturnSeries{Symbol: string(contracts.FactorRiskFree)}

	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		m := rng.NormFloat64() * 0.012
		v := 0.9*m + rng.NormFloat64()*0.004
		r := 0.0001 + rng.NormFloat64()*0.0005
		s := 0.0004 + 1.15*m + rng.NormFloat64()*0.006

		stock.Observations = append(stock.Observations, contracts.Observation{Date: d, Return: s})
		market.Observations = append(market.Observations, contracts.Observation{Date: d, Return: m})
		vw.Observations = append(vw.Observations, contracts.Observation{Date: d, Return: v})
		rf.Observations = append(rf.Observations, contracts.Observation{Date: d, Return: r})
	}

	store := series.NewStore(10)
	require.NoError(t, store.PutStock(stock))
	require.NoError(t, store.PutFactor(contracts.FactorMarket, market))
	require.NoError(t, store.PutFactor(contracts.FactorVWMarket, vw))
	require.NoError(t, store.PutFactor(contracts.FactorRiskFree, rf))

	return store, start, start.AddDate(0, 0, n-1)
}

func TestAnalyzer_Run(t *testing.T) {
	store, from, to := seededStore(t)
	analyzer := New(testLogger())

	result, err := analyzer.Run(context.Background(), store, "TXN", from, to)
	require.NoError(t, err)

	assert.Equal(t, "TXN", result.Symbol)
	assert.Equal(t, 252, result.SampleSize)
	require.Len(t, result.Regressions, 5)

	// The market-only model recovers the simulated beta
	marketOnly := result.Regressions[0]
	assert.Equal(t, contracts.ModelMarket, marketOnly.Model)
	assert.InDelta(t, 1.15, marketOnly.Factors[0].Estimate, 0.1)
	assert.Equal(t, contracts.Tier1Pct, marketOnly.Factors[0].Tier)
	assert.Greater(t, marketOnly.RSquared, 0.5)

	require.NotNil(t, result.StockFit)
	require.NotNil(t, result.BenchFit)
	assert.Equal(t, "TXN", result.StockFit.Symbol)
	assert.Equal(t, 252, result.StockFit.SampleSize)
	assert.Greater(t, result.StockFit.Std, 0.0)

	require.NotNil(t, result.CDF)
	assert.NotEmpty(t, result.CDF.Grid)
	last := len(result.CDF.Grid) - 1
	assert.Equal(t, 1.0, result.CDF.ProbA[last])
	assert.Equal(t, 1.0, result.CDF.ProbB[last])
}

func TestAnalyzer_Run_Deterministic(t *testing.T) {
	store, from, to := seededStore(t)
	analyzer := New(testLogger())

	first, err := analyzer.Run(context.Background(), store, "TXN", from, to)
	require.NoError(t, err)
	second, err := analyzer.Run(context.Background(), store, "TXN", from, to)
	require.NoError(t, err)

	for i := range first.Regressions {
		assert.Equal(t, first.Regressions[i].Factors, second.Regressions[i].Factors)
		assert.Equal(t, first.Regressions[i].RSquared, second.Regressions[i].RSquared)
	}
	assert.Equal(t, first.StockFit, second.StockFit)
	assert.Equal(t, first.CDF.Grid, second.CDF.Grid)
}

func TestAnalyzer_Run_UnknownTicker(t *testing.T) {
	store, from, to := seededStore(t)
	analyzer := New(testLogger())

	_, err := analyzer.Run(context.Background(), store, "NOPE", from, to)
	require.Error(t, err)
	assert.True(t, errors.Is(err, contracts.ErrUnknownTicker))
}

func TestAnalyzer_Run_NarrowWindow(t *testing.T) {
	store, from, _ := seededStore(t)
	analyzer := New(testLogger())

	// Only 3 observations fall in the window; minObs is 10
	_, err := analyzer.Run(context.Background(), store, "TXN", from, from.AddDate(0, 0, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, contracts.ErrInsufficientData))
}

func TestAnalyzer_Run_CancelledContext(t *testing.T) {
	store, from, to := seededStore(t)
	analyzer := New(testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := analyzer.Run(ctx, store, "TXN", from, to)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
