package series

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/factorlens/internal/contracts"
	"github.com/wonny/factorlens/internal/registry"
)

// Repository loads periodic return series from PostgreSQL. The table is
// populated by the data-collection collaborator; this side is read-only.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new return series repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetBySymbolAndDateRange retrieves returns for a symbol within a date range
func (r *Repository) GetBySymbolAndDateRange(ctx context.Context, symbol string, from, to time.Time) (*contracts.ReturnSeries, error) {
	query := `
		SELECT period_date, return_value
		FROM analysis.periodic_returns
		WHERE symbol = $1 AND period_date BETWEEN $2 AND $3
		ORDER BY period_date ASC
	`

	rows, err := r.pool.Query(ctx, query, symbol, from, to)
	if err != nil {
		return nil, fmt.Errorf("query returns for %s: %w", symbol, err)
	}
	defer rows.Close()

	series := &contracts.ReturnSeries{Symbol: symbol}
	for rows.Next() {
		var obs contracts.Observation
		if err := rows.Scan(&obs.Date, &obs.Return); err != nil {
			return nil, fmt.Errorf("scan return row for %s: %w", symbol, err)
		}
		series.Observations = append(series.Observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return series, nil
}

// LoadStore fetches the stock series and every registered factor series
// for a date range and returns a populated Store.
func (r *Repository) LoadStore(ctx context.Context, reg *registry.Registry, symbol string, from, to time.Time, minObs int) (*Store, error) {
	if _, ok := reg.Lookup(symbol); !ok {
		return nil, fmt.Errorf("%w: %s", contracts.ErrUnknownTicker, symbol)
	}

	store := NewStore(minObs)

	stock, err := r.GetBySymbolAndDateRange(ctx, symbol, from, to)
	if err != nil {
		return nil, err
	}
	if err := store.PutStock(stock); err != nil {
		return nil, err
	}

	for _, name := range reg.Factors() {
		factorSymbol, ok := reg.FactorSymbol(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", contracts.ErrUnknownFactor, name)
		}

		factor, err := r.GetBySymbolAndDateRange(ctx, factorSymbol, from, to)
		if err != nil {
			return nil, err
		}
		factor.Symbol = string(name)
		if err := store.PutFactor(name, factor); err != nil {
			return nil, err
		}
	}

	return store, nil
}
