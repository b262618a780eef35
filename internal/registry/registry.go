// Package registry holds the immutable ticker and factor universe.
// It is loaded once at process start and passed explicitly to components
// that need it; nothing reads it as ambient global state.
package registry

import (
	"sort"

	"github.com/wonny/factorlens/internal/contracts"
)

// Ticker is one analyzable stock.
type Ticker struct {
	Name   string `json:"name"`   // display name
	Symbol string `json:"symbol"` // exchange symbol
}

// Registry is the immutable ticker/factor universe.
type Registry struct {
	tickers map[string]Ticker // keyed by symbol
	factors map[contracts.FactorName]string
}

// Default builds the registry with the supported stock universe and the
// factor symbol mapping.
func Default() *Registry {
	tickers := []Ticker{
		{Name: "PCG", Symbol: "PCG"},
		{Name: "WABTEC", Symbol: "WAB"},
		{Name: "ETR", Symbol: "ETR"},
		{Name: "DOV", Symbol: "DOV"},
		{Name: "General Dynamics", Symbol: "GD"},
		{Name: "PAR", Symbol: "PAR"},
		{Name: "OKE", Symbol: "OKE"},
		{Name: "LVS", Symbol: "LVS"},
		{Name: "MCO", Symbol: "MCO"},
		{Name: "LMT", Symbol: "LMT"},
		{Name: "EIX", Symbol: "EIX"},
		{Name: "SYK", Symbol: "SYK"},
		{Name: "HOLX", Symbol: "HOLX"},
		{Name: "MHK", Symbol: "MHK"},
		{Name: "NOC", Symbol: "NOC"},
		{Name: "IFF", Symbol: "IFF"},
		{Name: "AZO", Symbol: "AZO"},
		{Name: "Southern Company", Symbol: "SO"},
		{Name: "TTWO", Symbol: "TTWO"},
		{Name: "Kimberly Clark", Symbol: "KMB"},
		{Name: "CHD", Symbol: "CHD"},
		{Name: "EXR", Symbol: "EXR"},
		{Name: "CRL", Symbol: "CRL"},
		{Name: "Texas Instruments", Symbol: "TXN"},
	}

	bySymbol := make(map[string]Ticker, len(tickers))
	for _, t := range tickers {
		bySymbol[t.Symbol] = t
	}

	return &Registry{
		tickers: bySymbol,
		factors: map[contracts.FactorName]string{
			contracts.FactorMarket:   "^GSPC",
			contracts.FactorVWMarket: "^W5000",
			contracts.FactorRiskFree: "^TYX",
		},
	}
}

// Lookup returns the ticker for a symbol
func (r *Registry) Lookup(symbol string) (Ticker, bool) {
	t, ok := r.tickers[symbol]
	return t, ok
}

// Tickers returns all tickers sorted by symbol
func (r *Registry) Tickers() []Ticker {
	out := make([]Ticker, 0, len(r.tickers))
	for _, t := range r.tickers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// FactorSymbol returns the data-source symbol for a factor
func (r *Registry) FactorSymbol(name contracts.FactorName) (string, bool) {
	s, ok := r.factors[name]
	return s, ok
}

// Factors returns the supported factor names in display order
func (r *Registry) Factors() []contracts.FactorName {
	return append([]contracts.FactorName(nil), contracts.AllFactors...)
}
