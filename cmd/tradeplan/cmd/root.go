package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/config"
)

var rootCmd = &cobra.Command{
	Use:   "tradeplan",
	Short: "A trade-planning and journaling tool for discretionary traders",
	Long: `Tradeplan scores candidate trades against a weighted checklist, sizes
positions within a fixed risk budget, and journals the results.

It provides tools for:
  - Scoring trade setups against trend and rebound checklists
  - Risk-based position sizing with transaction-cost adjustment
  - Journaling trades with entry, stop, and exit
  - Aggregating closed trades into win rate, profit factor, R, and drawdown
  - Exporting and importing the full journal as JSON, CSV, or Org`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
	},
}

var (
	dbPath       string
	settingsPath string
	verbose      bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "./tradeplan.sqlite", "path to SQLite journal DB")
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", "./tradeplan.yaml", "path to settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadSettings reads the settings file, falling back to defaults when the
// file does not exist yet.
func loadSettings() (config.Settings, error) {
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.LoadFromFile(settingsPath)
}
