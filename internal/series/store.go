// Package series holds aligned periodic return series for stocks and
// factors and produces the aligned FactorSet the analytic components
// consume.
package series

import (
	"fmt"
	"time"

	"github.com/wonny/factorlens/internal/contracts"
)

// Store holds return series keyed by symbol plus one series per factor.
// It is populated once per analysis request and read-only afterwards.
type Store struct {
	stocks  map[string]*contracts.ReturnSeries
	factors map[contracts.FactorName]*contracts.ReturnSeries
	minObs  int
}

// NewStore creates an empty store. minObs is the smallest aligned
// intersection accepted by AlignAll.
func NewStore(minObs int) *Store {
	return &Store{
		stocks:  make(map[string]*contracts.ReturnSeries),
		factors: make(map[contracts.FactorName]*contracts.ReturnSeries),
		minObs:  minObs,
	}
}

// PutStock adds or replaces a stock series. The series must satisfy the
// ordering invariant.
func (s *Store) PutStock(series *contracts.ReturnSeries) error {
	if err := series.Validate(); err != nil {
		return fmt.Errorf("invalid stock series: %w", err)
	}
	s.stocks[series.Symbol] = series
	return nil
}

// PutFactor adds or replaces a factor series
func (s *Store) PutFactor(name contracts.FactorName, series *contracts.ReturnSeries) error {
	if err := series.Validate(); err != nil {
		return fmt.Errorf("invalid factor series %s: %w", name, err)
	}
	s.factors[name] = series
	return nil
}

// GetSeries returns the stock series restricted to [from, to] inclusive.
func (s *Store) GetSeries(symbol string, from, to time.Time) (*contracts.ReturnSeries, error) {
	src, ok := s.stocks[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", contracts.ErrUnknownTicker, symbol)
	}
	return slice(src, from, to), nil
}

// GetFactor returns the factor series restricted to [from, to] inclusive.
func (s *Store) GetFactor(name contracts.FactorName, from, to time.Time) (*contracts.ReturnSeries, error) {
	src, ok := s.factors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", contracts.ErrUnknownFactor, name)
	}
	return slice(src, from, to), nil
}

// AlignAll intersects the stock series with every factor series on dates,
// dropping any date not present in all inputs. Fails with
// ErrInsufficientData when the intersection is smaller than the store's
// minimum.
func (s *Store) AlignAll(stock *contracts.ReturnSeries, factors map[contracts.FactorName]*contracts.ReturnSeries) (*contracts.FactorSet, error) {
	// Count date occurrences across stock + factors; a date survives only
	// if present in every series.
	needed := 1 + len(factors)
	counts := make(map[time.Time]int, stock.Len())
	for _, obs := range stock.Observations {
		counts[obs.Date.UTC()]++
	}
	for _, f := range factors {
		for _, obs := range f.Observations {
			counts[obs.Date.UTC()]++
		}
	}

	var dates []time.Time
	for _, obs := range stock.Observations {
		if counts[obs.Date.UTC()] == needed {
			dates = append(dates, obs.Date)
		}
	}

	if len(dates) < s.minObs {
		return nil, fmt.Errorf("%w: %d aligned observations, need %d",
			contracts.ErrInsufficientData, len(dates), s.minObs)
	}

	fs := &contracts.FactorSet{
		Stock:   project(stock, dates),
		Factors: make(map[contracts.FactorName]*contracts.ReturnSeries, len(factors)),
		Dates:   dates,
	}
	for name, f := range factors {
		fs.Factors[name] = project(f, dates)
	}
	return fs, nil
}

// slice returns the sub-series within [from, to] inclusive
func slice(src *contracts.ReturnSeries, from, to time.Time) *contracts.ReturnSeries {
	out := &contracts.ReturnSeries{Symbol: src.Symbol}
	for _, obs := range src.Observations {
		if obs.Date.Before(from) || obs.Date.After(to) {
			continue
		}
		out.Observations = append(out.Observations, obs)
	}
	return out
}

// project restricts a series to the given dates, preserving order.
// Dates must be a subset of the series' own date index.
func project(src *contracts.ReturnSeries, dates []time.Time) *contracts.ReturnSeries {
	keep := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		keep[d.UTC()] = true
	}

	out := &contracts.ReturnSeries{Symbol: src.Symbol}
	for _, obs := range src.Observations {
		if keep[obs.Date.UTC()] {
			out.Observations = append(out.Observations, obs)
		}
	}
	return out
}
