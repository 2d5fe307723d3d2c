package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/tradeplan/checklist"
	"gopkg.in/yaml.v3"
)

// Settings holds the account and cost parameters every new trade snapshots.
// The key names match the exported state layout, and the yaml tags must use
// the same keys as the json tags: JSON is valid YAML, so the YAML-first load
// path parses JSON files too and needs the keys to line up.
type Settings struct {
	Equity           float64         `json:"equity" yaml:"equity"`
	MaxRiskPct       float64         `json:"maxRiskPct" yaml:"maxRiskPct"`
	LotSize          float64         `json:"lotSize" yaml:"lotSize"`
	DefaultTimeframe string          `json:"defaultTimeframe" yaml:"defaultTimeframe"`
	DefaultModel     checklist.Model `json:"defaultModel" yaml:"defaultModel"`
	Currency         string          `json:"currency" yaml:"currency"`
	FeePct           float64         `json:"feePct" yaml:"feePct"`
	ExitFeePct       float64         `json:"exitFeePct" yaml:"exitFeePct"`
	Slippage         float64         `json:"slippage" yaml:"slippage"`
}

// Default returns settings suitable for a fresh journal.
func Default() Settings {
	return Settings{
		Equity:           100000,
		MaxRiskPct:       1.0,
		LotSize:          100,
		DefaultTimeframe: "daily",
		DefaultModel:     checklist.ModelTrend,
		Currency:         "USD",
		FeePct:           0.03,
		ExitFeePct:       0.0,
		Slippage:         0.01,
	}
}

// Validate checks the settings are usable for sizing new trades.
func (s Settings) Validate() error {
	if s.Equity <= 0 {
		return fmt.Errorf("equity must be positive")
	}
	if s.MaxRiskPct <= 0 || s.MaxRiskPct > 100 {
		return fmt.Errorf("maxRiskPct must be in (0, 100]")
	}
	if s.LotSize < 1 {
		return fmt.Errorf("lotSize must be at least 1")
	}
	if s.DefaultModel != checklist.ModelTrend && s.DefaultModel != checklist.ModelRebound {
		return fmt.Errorf("unknown defaultModel: %s", s.DefaultModel)
	}
	if s.FeePct < 0 || s.ExitFeePct < 0 || s.Slippage < 0 {
		return fmt.Errorf("cost parameters must not be negative")
	}
	return nil
}

// LoadFromFile reads settings from a YAML or JSON file.
func LoadFromFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		if jerr := json.Unmarshal(data, &s); jerr != nil {
			return Settings{}, fmt.Errorf("parse settings (tried YAML and JSON): %w", err)
		}
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// SaveToFile writes settings to a file, YAML or JSON by extension.
func (s Settings) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
