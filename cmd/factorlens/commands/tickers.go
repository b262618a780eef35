package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/factorlens/internal/registry"
)

// tickersCmd represents the tickers command
var tickersCmd = &cobra.Command{
	Use:   "tickers",
	Short: "List the analyzable stock universe",
	RunE:  runTickers,
}

func init() {
	rootCmd.AddCommand(tickersCmd)
}

func runTickers(cmd *cobra.Command, args []string) error {
	reg := registry.Default()

	fmt.Printf("%-8s %s\n", "Symbol", "Name")
	for _, t := range reg.Tickers() {
		fmt.Printf("%-8s %s\n", t.Symbol, t.Name)
	}

	fmt.Println("\nFactors:")
	for _, name := range reg.Factors() {
		symbol, _ := reg.FactorSymbol(name)
		fmt.Printf("%-12s %s\n", name, symbol)
	}
	return nil
}
