package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate, validate, or display settings",
	Long: `Manage the settings file that new trades snapshot their risk context from.

Subcommands:
  init     - Generate a default settings file
  validate - Validate an existing settings file
  show     - Display the active settings

Examples:
  tradeplan config init
  tradeplan config validate
  tradeplan config show`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default settings file",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the settings file",
	RunE:  runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the active settings",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(settingsPath); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	fmt.Printf("✓ Created default settings: %s\n", settingsPath)
	fmt.Println("\nEdit the file, then plan a trade with:")
	fmt.Println("  tradeplan trade new --symbol ACME --entry 10 --stop 9")
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(settingsPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Settings valid: %s\n", settingsPath)
	fmt.Printf("  Equity: %.2f %s (max risk %.2f%% per trade)\n", cfg.Equity, cfg.Currency, cfg.MaxRiskPct)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	fmt.Printf("Equity:            %.2f %s\n", cfg.Equity, cfg.Currency)
	fmt.Printf("Max Risk:          %.2f%%\n", cfg.MaxRiskPct)
	fmt.Printf("Lot Size:          %.0f\n", cfg.LotSize)
	fmt.Printf("Default Model:     %s\n", cfg.DefaultModel)
	fmt.Printf("Default Timeframe: %s\n", cfg.DefaultTimeframe)
	fmt.Printf("Fee:               %.3f%%\n", cfg.FeePct)
	fmt.Printf("Exit Fee:          %.3f%%\n", cfg.ExitFeePct)
	fmt.Printf("Slippage:          %.4f per unit\n", cfg.Slippage)
	return nil
}
