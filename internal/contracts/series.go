package contracts

import (
	"fmt"
	"time"
)

// FactorName identifies a benchmark return series used as a regression
// predictor.
type FactorName string

const (
	// FactorMarket is the market index (S&P 500).
	FactorMarket FactorName = "MARKET"
	// FactorVWMarket is the value-weighted market (Wilshire 5000).
	FactorVWMarket FactorName = "VW_MARKET"
	// FactorRiskFree is the risk-free proxy (30-year treasury yield).
	FactorRiskFree FactorName = "RISK_FREE"
)

// AllFactors lists every factor in display order.
var AllFactors = []FactorName{FactorMarket, FactorVWMarket, FactorRiskFree}

// Observation is a single dated periodic return, expressed as a fraction
// (0.01 = 1%).
type Observation struct {
	Date   time.Time `json:"date"`
	Return float64   `json:"return"`
}

// ReturnSeries is an ordered sequence of dated returns for one symbol.
// Dates are strictly increasing with no duplicates.
type ReturnSeries struct {
	Symbol       string        `json:"symbol"`
	Observations []Observation `json:"observations"`
}

// Len returns the number of observations
func (s *ReturnSeries) Len() int {
	return len(s.Observations)
}

// Values returns the return values in date order
func (s *ReturnSeries) Values() []float64 {
	values := make([]float64, len(s.Observations))
	for i, obs := range s.Observations {
		values[i] = obs.Return
	}
	return values
}

// Validate checks the ordering invariant: strictly increasing dates,
// no duplicates.
func (s *ReturnSeries) Validate() error {
	for i := 1; i < len(s.Observations); i++ {
		prev := s.Observations[i-1].Date
		cur := s.Observations[i].Date
		if !cur.After(prev) {
			return fmt.Errorf("series %s: date %s not after %s",
				s.Symbol, cur.Format("2006-01-02"), prev.Format("2006-01-02"))
		}
	}
	return nil
}

// FactorSet holds a stock series and its factor series aligned to an
// identical date index (the intersection of available dates).
type FactorSet struct {
	Stock   *ReturnSeries                `json:"stock"`
	Factors map[FactorName]*ReturnSeries `json:"factors"`
	Dates   []time.Time                  `json:"dates"`
}

// Len returns the number of aligned observations
func (fs *FactorSet) Len() int {
	return len(fs.Dates)
}

// Factor returns the aligned series for a factor, or nil if absent
func (fs *FactorSet) Factor(name FactorName) *ReturnSeries {
	return fs.Factors[name]
}
