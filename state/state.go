// Package state defines the exported journal layout and its import
// normalization. Export/import round-trips {settings, trades} as JSON. A
// structurally broken document (missing settings, trades not an array) is
// rejected outright; anything field-level is repaired with defaults rather
// than failing the whole import over one bad value.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rustyeddy/tradeplan/checklist"
	"github.com/rustyeddy/tradeplan/config"
	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/pkg/id"
	"github.com/rustyeddy/tradeplan/risk"
)

// State is the full persisted document.
type State struct {
	Settings config.Settings `json:"settings"`
	Trades   []journal.Trade `json:"trades"`
}

var (
	ErrNoSettings = errors.New("missing settings object")
	ErrBadTrades  = errors.New("trades is not an array")
)

// Export marshals the state for backup or transfer.
func Export(s State) ([]byte, error) {
	if s.Trades == nil {
		s.Trades = []journal.Trade{}
	}
	return json.MarshalIndent(s, "", "  ")
}

// Import parses an exported document, rejecting structural violations and
// normalizing everything else field by field.
func Import(data []byte) (State, error) {
	var raw struct {
		Settings *json.RawMessage `json:"settings"`
		Trades   *json.RawMessage `json:"trades"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return State{}, fmt.Errorf("parse state: %w", err)
	}
	if raw.Settings == nil {
		return State{}, ErrNoSettings
	}

	var s State
	if err := json.Unmarshal(*raw.Settings, &s.Settings); err != nil {
		return State{}, fmt.Errorf("parse settings: %w", err)
	}
	if raw.Trades != nil {
		if err := json.Unmarshal(*raw.Trades, &s.Trades); err != nil {
			return State{}, ErrBadTrades
		}
	}

	Normalize(&s)
	log.Debug().Int("trades", len(s.Trades)).Msg("state imported")
	return s, nil
}

// Save writes the state to a file.
func Save(path string, s State) error {
	data, err := Export(s)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Load reads and normalizes a state file.
func Load(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("read state: %w", err)
	}
	return Import(data)
}

// Normalize repairs field-level damage in place: unknown enums fall back to
// their defaults, out-of-range numerics are clamped, nil collections become
// empty, and trades missing identity get one.
func Normalize(s *State) {
	def := config.Default()

	if s.Settings.Equity <= 0 {
		s.Settings.Equity = def.Equity
	}
	if s.Settings.MaxRiskPct <= 0 || s.Settings.MaxRiskPct > 100 {
		s.Settings.MaxRiskPct = def.MaxRiskPct
	}
	if s.Settings.LotSize < 1 {
		s.Settings.LotSize = def.LotSize
	}
	if s.Settings.DefaultTimeframe == "" {
		s.Settings.DefaultTimeframe = def.DefaultTimeframe
	}
	s.Settings.DefaultModel = normModel(s.Settings.DefaultModel)
	if s.Settings.Currency == "" {
		s.Settings.Currency = def.Currency
	}
	s.Settings.FeePct = clampNonNeg(s.Settings.FeePct)
	s.Settings.ExitFeePct = clampNonNeg(s.Settings.ExitFeePct)
	s.Settings.Slippage = clampNonNeg(s.Settings.Slippage)

	if s.Trades == nil {
		s.Trades = []journal.Trade{}
	}
	now := time.Now().UTC()
	for i := range s.Trades {
		normalizeTrade(&s.Trades[i], s.Settings, now)
	}
}

func normalizeTrade(t *journal.Trade, set config.Settings, now time.Time) {
	if t.ID == "" {
		t.ID = id.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}

	t.Model = normModel(t.Model)
	if t.Side != risk.SideShort {
		t.Side = risk.SideLong
	}
	if t.Status != journal.StatusClosed {
		t.Status = journal.StatusOpen
	}

	t.Entry = clampNonNeg(t.Entry)
	t.Stop = clampNonNeg(t.Stop)
	t.Target = clampNonNeg(t.Target)
	t.Units = clampNonNeg(t.Units)
	t.Exit = clampNonNeg(t.Exit)

	if t.Equity <= 0 {
		t.Equity = set.Equity
	}
	if t.MaxRiskPct <= 0 {
		t.MaxRiskPct = set.MaxRiskPct
	}
	if t.LotSize < 1 {
		t.LotSize = set.LotSize
	}
	t.FeePct = clampNonNeg(t.FeePct)
	t.ExitFeePct = clampNonNeg(t.ExitFeePct)
	t.Slippage = clampNonNeg(t.Slippage)

	if t.Checklist == nil {
		t.Checklist = checklist.Reset(t.Model)
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}

	// Open trades never carry realized results.
	if t.Status == journal.StatusOpen {
		t.Exit = 0
		t.PnL = 0
		t.R = 0
	}
}

func normModel(m checklist.Model) checklist.Model {
	if m == checklist.ModelRebound {
		return m
	}
	return checklist.ModelTrend
}

func clampNonNeg(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
