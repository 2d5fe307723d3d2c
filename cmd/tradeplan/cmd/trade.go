package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/checklist"
	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/risk"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Plan, close, and review trades",
	Long: `Manage the trade journal.

Subcommands:
  new       - Score, size, and record a new trade plan
  close     - Close an open trade at an exit price
  reprice   - Fix the exit price of a closed trade
  delete    - Remove a trade permanently
  list      - List trades, optionally by status
  show      - Show one trade as an Org-mode block
  checklist - Print a model's checklist items

Examples:
  tradeplan trade new --symbol ACME --entry 10 --stop 9 --check htf_trend,ma_stack
  tradeplan trade close 01J8... 12.50
  tradeplan trade list --status open`,
}

var (
	newSymbol    string
	newName      string
	newIndustry  string
	newModel     string
	newSide      string
	newTimeframe string
	newEntry     float64
	newStop      float64
	newTarget    float64
	newUnits     float64
	newPosPct    float64
	newChecks    []string
	newTags      []string
	newNotes     string
	listStatus   string
)

var tradeNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Score, size, and record a new trade plan",
	Args:  cobra.NoArgs,
	RunE:  runTradeNew,
}

var tradeCloseCmd = &cobra.Command{
	Use:   "close <trade-id> <exit-price>",
	Short: "Close an open trade at an exit price",
	Args:  cobra.ExactArgs(2),
	RunE:  runTradeClose,
}

var tradeRepriceCmd = &cobra.Command{
	Use:   "reprice <trade-id> <exit-price>",
	Short: "Fix the exit price of a closed trade",
	Args:  cobra.ExactArgs(2),
	RunE:  runTradeReprice,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Remove a trade permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeShowCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show one trade as an Org-mode block",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeShow,
}

var tradeChecklistCmd = &cobra.Command{
	Use:   "checklist [model]",
	Short: "Print a model's checklist items",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTradeChecklist,
}

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeNewCmd)
	tradeCmd.AddCommand(tradeCloseCmd)
	tradeCmd.AddCommand(tradeRepriceCmd)
	tradeCmd.AddCommand(tradeDeleteCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeShowCmd)
	tradeCmd.AddCommand(tradeChecklistCmd)

	tradeNewCmd.Flags().StringVar(&newSymbol, "symbol", "", "ticker symbol (required)")
	tradeNewCmd.Flags().StringVar(&newName, "name", "", "instrument name")
	tradeNewCmd.Flags().StringVar(&newIndustry, "industry", "", "industry / sector")
	tradeNewCmd.Flags().StringVar(&newModel, "model", "", "trading model: trend or rebound (default from settings)")
	tradeNewCmd.Flags().StringVar(&newSide, "side", "long", "trade side: long or short")
	tradeNewCmd.Flags().StringVar(&newTimeframe, "timeframe", "", "trade timeframe (default from settings)")
	tradeNewCmd.Flags().Float64Var(&newEntry, "entry", 0, "planned entry price (required)")
	tradeNewCmd.Flags().Float64Var(&newStop, "stop", 0, "stop price (required; no stop, no trade)")
	tradeNewCmd.Flags().Float64Var(&newTarget, "target", 0, "optional target price")
	tradeNewCmd.Flags().Float64Var(&newUnits, "units", 0, "override the suggested size (pins the value)")
	tradeNewCmd.Flags().Float64Var(&newPosPct, "position-pct", 0, "override the position percentage (pins the value)")
	tradeNewCmd.Flags().StringSliceVar(&newChecks, "check", nil, "checklist keys that are satisfied")
	tradeNewCmd.Flags().StringSliceVar(&newTags, "tag", nil, "free-text labels")
	tradeNewCmd.Flags().StringVar(&newNotes, "notes", "", "trade notes")
	tradeNewCmd.MarkFlagRequired("symbol")
	tradeNewCmd.MarkFlagRequired("entry")
	tradeNewCmd.MarkFlagRequired("stop")

	tradeListCmd.Flags().StringVar(&listStatus, "status", "", "filter by status: open or closed")
}

func runTradeNew(cmd *cobra.Command, args []string) error {
	set, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	model := checklist.Model(newModel)
	if newModel == "" {
		model = set.DefaultModel
	} else if model != checklist.ModelTrend && model != checklist.ModelRebound {
		return fmt.Errorf("unknown model %q (want trend or rebound)", newModel)
	}

	side := risk.Side(newSide)
	if side != risk.SideLong && side != risk.SideShort {
		return fmt.Errorf("unknown side %q (want long or short)", newSide)
	}

	draft := risk.Draft{
		Symbol:    newSymbol,
		Name:      newName,
		Industry:  newIndustry,
		Timeframe: newTimeframe,
		Side:      side,
		Entry:     newEntry,
		Stop:      newStop,
		Target:    newTarget,
		Tags:      newTags,
		Notes:     newNotes,
	}
	draft.SetModel(model)
	for _, key := range newChecks {
		if _, ok := draft.Checked[key]; !ok {
			return fmt.Errorf("unknown checklist key %q for model %s", key, model)
		}
		draft.Checked[key] = true
	}
	if cmd.Flags().Changed("units") {
		draft.Units = newUnits
		draft.UnitsPinned = true
	}
	if cmd.Flags().Changed("position-pct") {
		draft.PositionPct = newPosPct
		draft.PositionPctPinned = true
	}

	t, err := journal.New(draft, set, time.Now().UTC())
	if err != nil {
		return err
	}

	store, err := journal.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	if err := store.Put(t); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	v := checklist.Evaluate(t.Model, t.Score)
	fmt.Printf("✓ Trade recorded: %s\n\n", t.ID)
	fmt.Printf("Score:    %d/100 — %s [%s]\n", t.Score, v.Label, v.Tone)
	if rr := risk.RR(t.Entry, t.Stop, t.Target); rr > 0 {
		fmt.Printf("R:R:      %.2f\n", rr)
	}
	fmt.Printf("Size:     %.0f units (%.2f%% of equity)\n", t.Units, t.PositionPct)
	return nil
}

func runTradeClose(cmd *cobra.Command, args []string) error {
	exit, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("exit price: %w", err)
	}

	store, err := journal.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	t, err := store.Get(args[0])
	if err != nil {
		return err
	}
	if err := t.Close(exit, time.Now().UTC()); err != nil {
		if errors.Is(err, journal.ErrClosed) {
			return fmt.Errorf("trade %s already closed; use 'trade reprice' to fix the exit", shortID(t.ID))
		}
		return err
	}
	if err := store.Put(t); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Printf("✓ Closed %s %s at %.4f\n", t.Symbol, shortID(t.ID), t.Exit)
	fmt.Printf("PnL: %.2f   R: %.2f\n", t.PnL, t.R)
	return nil
}

func runTradeReprice(cmd *cobra.Command, args []string) error {
	exit, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("exit price: %w", err)
	}

	store, err := journal.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	t, err := store.Get(args[0])
	if err != nil {
		return err
	}
	if err := t.Reprice(exit, time.Now().UTC()); err != nil {
		return err
	}
	if err := store.Put(t); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Printf("✓ Repriced %s %s to %.4f (PnL %.2f, R %.2f)\n",
		t.Symbol, shortID(t.ID), t.Exit, t.PnL, t.R)
	return nil
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	store, err := journal.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	if err := store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted trade %s\n", args[0])
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	store, err := journal.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	var trades []journal.Trade
	switch listStatus {
	case "":
		trades, err = store.List()
	case string(journal.StatusOpen), string(journal.StatusClosed):
		trades, err = store.ListByStatus(journal.Status(listStatus))
	default:
		return fmt.Errorf("unknown status %q (want open or closed)", listStatus)
	}
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	if len(trades) == 0 {
		fmt.Println("No trades.")
		return nil
	}

	fmt.Printf("%-10s %-8s %-8s %-6s %5s %10s %10s %8s %10s %8s\n",
		"ID", "SYMBOL", "MODEL", "SIDE", "SCORE", "ENTRY", "STOP", "SIZE", "PNL", "STATUS")
	for _, t := range trades {
		fmt.Printf("%-10s %-8s %-8s %-6s %5d %10.4f %10.4f %8.0f %10.2f %8s\n",
			shortID(t.ID), t.Symbol, t.Model, t.Side, t.Score,
			t.Entry, t.Stop, t.Units, t.PnL, t.Status)
	}
	return nil
}

func runTradeShow(cmd *cobra.Command, args []string) error {
	store, err := journal.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	t, err := store.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Println(journal.FormatTradeOrg(t))
	return nil
}

func runTradeChecklist(cmd *cobra.Command, args []string) error {
	set, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	model := set.DefaultModel
	if len(args) == 1 {
		model = checklist.Model(args[0])
		if model != checklist.ModelTrend && model != checklist.ModelRebound {
			return fmt.Errorf("unknown model %q (want trend or rebound)", args[0])
		}
	}

	fmt.Printf("Checklist for %s:\n", model)
	for _, it := range checklist.Items(model) {
		fmt.Printf("  %-16s %3d  %s\n", it.Key, it.Weight, it.Label)
	}
	return nil
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
