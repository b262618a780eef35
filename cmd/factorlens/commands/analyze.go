package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/factorlens/internal/analysis"
	"github.com/wonny/factorlens/internal/registry"
	"github.com/wonny/factorlens/internal/report"
	"github.com/wonny/factorlens/internal/series"
	"github.com/wonny/factorlens/pkg/config"
	"github.com/wonny/factorlens/pkg/database"
	"github.com/wonny/factorlens/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [symbol]",
	Short: "Run the full analysis for one ticker",
	Long: `Runs the five factor regressions, the normal distribution fit,
and the CDF comparison for one ticker, and prints the regression table.

Flags:
  --from   start date (YYYY-MM-DD, default from config)
  --to     end date (YYYY-MM-DD, default from config)

Example:
  go run ./cmd/factorlens analyze TXN
  go run ./cmd/factorlens analyze LMT --from 2010-01-01 --to 2020-12-31`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeFrom string
	analyzeTo   string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Flags
	analyzeCmd.Flags().StringVar(&analyzeFrom, "from", "", "start date (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeTo, "to", "", "end date (YYYY-MM-DD)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	symbol := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	from := cfg.Analysis.DefaultFrom
	to := cfg.Analysis.DefaultTo
	if analyzeFrom != "" {
		if from, err = time.Parse("2006-01-02", analyzeFrom); err != nil {
			return fmt.Errorf("invalid --from date: %w", err)
		}
	}
	if analyzeTo != "" {
		if to, err = time.Parse("2006-01-02", analyzeTo); err != nil {
			return fmt.Errorf("invalid --to date: %w", err)
		}
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	reg := registry.Default()
	repo := series.NewRepository(db.Pool)
	analyzer := analysis.New(log)

	ctx := context.Background()
	store, err := repo.LoadStore(ctx, reg, symbol, from, to, cfg.Analysis.MinObservations)
	if err != nil {
		return fmt.Errorf("load series: %w", err)
	}

	result, err := analyzer.Run(ctx, store, symbol, from, to)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	payload := report.Assemble(result)
	printPayload(payload)
	return nil
}

func printPayload(p *report.Payload) {
	fmt.Printf("=== %s Return Regressions (%s to %s, n=%d) ===\n\n",
		p.Symbol, p.From, p.To, p.SampleSize)

	fmt.Printf("%-6s %-22s %-22s %-22s %-22s %-18s\n",
		"Model", "Int.", "S&P 500", "Val.-Wgtd", "30 Yr Treas.", "S, R²")
	for _, row := range p.Table {
		fmt.Printf("(%d)    %-22s %-22s %-22s %-22s %-18s\n",
			row.Model, row.Intercept, row.Market, row.VWMarket, row.RiskFree, row.Summary)
	}
	fmt.Printf("\n%s\n", p.Legend)

	fmt.Printf("\nNormal fit %s: mean=%.4f std=%.4f (n=%d, range [%.4f, %.4f])\n",
		p.StockFit.Symbol, p.StockFit.Mean, p.StockFit.Std,
		p.StockFit.SampleSize, p.StockFit.Min, p.StockFit.Max)

	fmt.Printf("\n%s stats:    mean=%.4f std=%.4f min=%.4f max=%.4f\n",
		p.StockStats.Symbol, p.StockStats.Mean, p.StockStats.Std, p.StockStats.Min, p.StockStats.Max)
	fmt.Printf("%s stats: mean=%.4f std=%.4f min=%.4f max=%.4f\n",
		p.BenchStats.Symbol, p.BenchStats.Mean, p.BenchStats.Std, p.BenchStats.Min, p.BenchStats.Max)
}
