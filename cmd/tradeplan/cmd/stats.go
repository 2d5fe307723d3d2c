package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate closed trades into performance KPIs",
	Long: `Compute win rate, average win/loss, profit factor, average R, realized
PnL, and the equity curve with maximum drawdown over all closed trades.

Examples:
  tradeplan stats
  tradeplan stats --curve`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var statsCurve bool

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsCurve, "curve", false, "also print the equity curve points")
}

func runStats(cmd *cobra.Command, args []string) error {
	set, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	store, err := journal.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	trades, err := store.List()
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	summary := stats.Aggregate(trades, set.Equity)
	stats.WriteSummary(os.Stdout, summary, set.Currency)

	if statsCurve {
		fmt.Println("Equity Curve")
		fmt.Println("--------------------------------------------------")
		stats.WriteCurve(os.Stdout, summary)
	}
	return nil
}
