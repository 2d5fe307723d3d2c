package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradeplan/checklist"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsBadSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero equity", func(s *Settings) { s.Equity = 0 }},
		{"negative equity", func(s *Settings) { s.Equity = -100 }},
		{"zero risk", func(s *Settings) { s.MaxRiskPct = 0 }},
		{"risk above 100", func(s *Settings) { s.MaxRiskPct = 150 }},
		{"lot below one", func(s *Settings) { s.LotSize = 0 }},
		{"unknown model", func(s *Settings) { s.DefaultModel = "scalp" }},
		{"negative fee", func(s *Settings) { s.FeePct = -0.1 }},
		{"negative slippage", func(s *Settings) { s.Slippage = -0.01 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := Default()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestSaveLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	s := Default()
	s.Equity = 250000
	s.DefaultModel = checklist.ModelRebound
	s.Currency = "EUR"
	require.NoError(t, s.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSaveLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")

	s := Default()
	s.MaxRiskPct = 0.5
	require.NoError(t, s.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestLoadJSONDocument(t *testing.T) {
	t.Parallel()

	// JSON parses as YAML, so the camelCase keys must land in the right
	// fields rather than leaving everything zero.
	doc := `{"equity": 50000, "maxRiskPct": 2, "lotSize": 10,
		"defaultTimeframe": "weekly", "defaultModel": "rebound",
		"currency": "EUR", "feePct": 0.1, "exitFeePct": 0.05, "slippage": 0.02}`

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 50000.0, got.Equity, 1e-9)
	assert.InDelta(t, 2.0, got.MaxRiskPct, 1e-9)
	assert.InDelta(t, 10.0, got.LotSize, 1e-9)
	assert.Equal(t, "weekly", got.DefaultTimeframe)
	assert.Equal(t, checklist.ModelRebound, got.DefaultModel)
	assert.Equal(t, "EUR", got.Currency)
	assert.InDelta(t, 0.1, got.FeePct, 1e-9)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("equity: -5\n"), 0644))

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid settings")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
