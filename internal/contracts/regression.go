package contracts

// SignificanceTier is the categorical label derived from a two-sided p-value.
type SignificanceTier string

const (
	Tier1Pct  SignificanceTier = "***" // p < 0.01
	Tier5Pct  SignificanceTier = "**"  // p < 0.05
	Tier10Pct SignificanceTier = "*"   // p < 0.10
	TierNone  SignificanceTier = ""
)

// SignificanceLegend must accompany any rendering of a RegressionResult.
const SignificanceLegend = "*** p<0.01, ** p<0.05, * p<0.10"

// TierForPValue maps a two-sided p-value to its significance tier.
// Boundaries are exclusive: p = 0.01 earns **, not ***.
func TierForPValue(p float64) SignificanceTier {
	switch {
	case p < 0.01:
		return Tier1Pct
	case p < 0.05:
		return Tier5Pct
	case p < 0.10:
		return Tier10Pct
	default:
		return TierNone
	}
}

// ModelID identifies one of the five fixed regression configurations.
type ModelID int

const (
	ModelMarket         ModelID = iota + 1 // stock ~ MARKET
	ModelVWMarket                          // stock ~ VW_MARKET
	ModelRiskFree                          // stock ~ RISK_FREE
	ModelMarketVW                          // stock ~ MARKET + VW_MARKET
	ModelMarketVWRisk                      // stock ~ MARKET + VW_MARKET + RISK_FREE
)

// ModelSpec names a fixed subset of factors regressed against the stock.
// All five models share one OLS routine; only the factor list differs.
type ModelSpec struct {
	ID      ModelID      `json:"id"`
	Factors []FactorName `json:"factors"`
}

// Models is the fixed set of regression configurations, in report order.
var Models = []ModelSpec{
	{ID: ModelMarket, Factors: []FactorName{FactorMarket}},
	{ID: ModelVWMarket, Factors: []FactorName{FactorVWMarket}},
	{ID: ModelRiskFree, Factors: []FactorName{FactorRiskFree}},
	{ID: ModelMarketVW, Factors: []FactorName{FactorMarket, FactorVWMarket}},
	{ID: ModelMarketVWRisk, Factors: []FactorName{FactorMarket, FactorVWMarket, FactorRiskFree}},
}

// Coefficient holds one estimated regression term.
type Coefficient struct {
	Factor   FactorName       `json:"factor,omitempty"` // empty for the intercept
	Estimate float64          `json:"estimate"`
	StdError float64          `json:"std_error"`
	TStat    float64          `json:"t_stat"`
	PValue   float64          `json:"p_value"`
	Tier     SignificanceTier `json:"tier"`
}

// RegressionResult holds one fitted (stock, model) pair. Immutable once
// computed.
type RegressionResult struct {
	Model       ModelID       `json:"model"`
	Symbol      string        `json:"symbol"`
	Intercept   Coefficient   `json:"intercept"`
	Factors     []Coefficient `json:"factors"` // in ModelSpec order
	RSquared    float64       `json:"r_squared"`
	ResidualSE  float64       `json:"residual_se"` // sqrt(SSR / (n-k-1))
	SampleSize  int           `json:"sample_size"`
	DegreesFree int           `json:"degrees_free"` // n - k - 1
}

// FactorCoefficient returns the coefficient for a factor, or nil if the
// factor is not part of the model.
func (r *RegressionResult) FactorCoefficient(name FactorName) *Coefficient {
	for i := range r.Factors {
		if r.Factors[i].Factor == name {
			return &r.Factors[i]
		}
	}
	return nil
}
