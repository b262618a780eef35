package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	env     string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "factorlens",
	Short: "factorlens - stock return factor analysis",
	Long: `factorlens CLI

Analyzes historical stock returns against market-factor benchmarks:
five OLS regressions with significance annotation, a normal
distribution fit, and an empirical CDF comparison against the S&P 500.

Usage:
  go run ./cmd/factorlens [command]

Examples:
  go run ./cmd/factorlens api
  go run ./cmd/factorlens analyze TXN --from 2005-01-01 --to 2025-01-30
  go run ./cmd/factorlens tickers`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
