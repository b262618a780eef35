// Package report shapes analysis results into the structured payload a
// presentation or document layer consumes. It owns no page layout.
package report

import (
	"fmt"

	"github.com/wonny/factorlens/internal/analysis"
	"github.com/wonny/factorlens/internal/contracts"
)

// TableRow is one regression rendered in the classic comparison-table
// format: each cell is "coefficient<stars> (std error)".
type TableRow struct {
	Model     contracts.ModelID `json:"model"`
	Intercept string            `json:"intercept"`
	Market    string            `json:"market"`
	VWMarket  string            `json:"vw_market"`
	RiskFree  string            `json:"risk_free"`
	// Residual standard error and R-squared, "S, R²" in the rendered table
	Summary string `json:"summary"`
}

// SummaryStats mirrors the statistics block shown beneath the CDF figure.
type SummaryStats struct {
	Symbol string  `json:"symbol"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Payload is the full report-facing value for one analysis.
type Payload struct {
	Symbol      string                        `json:"symbol"`
	From        string                        `json:"from"`
	To          string                        `json:"to"`
	SampleSize  int                           `json:"sample_size"`
	Table       []TableRow                    `json:"table"`
	Legend      string                        `json:"legend"`
	Regressions []*contracts.RegressionResult `json:"regressions"`
	StockFit    *contracts.DistributionFit    `json:"stock_fit"`
	BenchFit    *contracts.DistributionFit    `json:"bench_fit"`
	StockStats  SummaryStats                  `json:"stock_stats"`
	BenchStats  SummaryStats                  `json:"bench_stats"`
	CDF         *contracts.CDFPair            `json:"cdf"`
}

// Assemble builds the report payload from an analysis result.
func Assemble(result *analysis.Result) *Payload {
	table := make([]TableRow, 0, len(result.Regressions))
	for _, reg := range result.Regressions {
		table = append(table, buildRow(reg))
	}

	return &Payload{
		Symbol:      result.Symbol,
		From:        result.From.Format("2006-01-02"),
		To:          result.To.Format("2006-01-02"),
		SampleSize:  result.SampleSize,
		Table:       table,
		Legend:      contracts.SignificanceLegend,
		Regressions: result.Regressions,
		StockFit:    result.StockFit,
		BenchFit:    result.BenchFit,
		StockStats:  summaryStats(result.StockFit),
		BenchStats:  summaryStats(result.BenchFit),
		CDF:         result.CDF,
	}
}

// buildRow renders one regression into table cells. Factors absent from
// the model render as empty cells.
func buildRow(reg *contracts.RegressionResult) TableRow {
	return TableRow{
		Model:     reg.Model,
		Intercept: Cell(&reg.Intercept),
		Market:    Cell(reg.FactorCoefficient(contracts.FactorMarket)),
		VWMarket:  Cell(reg.FactorCoefficient(contracts.FactorVWMarket)),
		RiskFree:  Cell(reg.FactorCoefficient(contracts.FactorRiskFree)),
		Summary:   fmt.Sprintf("%.4f, %.4f", reg.ResidualSE, reg.RSquared),
	}
}

// Cell formats one coefficient as "estimate<stars> (se)", or an empty
// string when the term is not in the model.
func Cell(c *contracts.Coefficient) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%.4f%s (%.4f)", c.Estimate, c.Tier, c.StdError)
}

func summaryStats(fit *contracts.DistributionFit) SummaryStats {
	if fit == nil {
		return SummaryStats{}
	}
	return SummaryStats{
		Symbol: fit.Symbol,
		Mean:   fit.Mean,
		Std:    fit.Std,
		Min:    fit.Min,
		Max:    fit.Max,
	}
}
