package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/state"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal and settings",
	Long: `Write the full journal to a file or stdout.

Formats:
  json - the canonical {settings, trades} document (round-trips via import)
  csv  - trades only, spreadsheet-friendly
  org  - trades only, Org-mode blocks for a written journal

Examples:
  tradeplan export --out backup.json
  tradeplan export --format csv --out trades.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported journal",
	Long: `Replace the journal and settings with an exported JSON document.

Malformed fields are repaired with defaults; a structurally invalid document
(missing settings, trades not an array) is rejected and nothing changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var (
	exportFormat string
	exportOut    string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format: json, csv, or org")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch exportFormat {
	case "json":
		data, err := state.Export(state.State{Settings: set, Trades: trades})
		if err != nil {
			return fmt.Errorf("marshal state: %w", err)
		}
		if _, err := out.Write(append(data, '\n')); err != nil {
			return err
		}
	case "csv":
		if err := journal.WriteCSV(out, trades); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	case "org":
		if _, err := fmt.Fprintln(out, journal.FormatTradesOrg(trades)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want json, csv, or org)", exportFormat)
	}

	if exportOut != "" {
		fmt.Fprintf(os.Stderr, "✓ Exported %d trades to %s\n", len(trades), exportOut)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	st, err := state.Load(args[0])
	if err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}

	store, err := journal.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	if err := store.ReplaceAll(st.Trades); err != nil {
		return fmt.Errorf("replace journal: %w", err)
	}
	if err := st.Settings.SaveToFile(settingsPath); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	fmt.Printf("✓ Imported %d trades and settings from %s\n", len(st.Trades), args[0])
	return nil
}
