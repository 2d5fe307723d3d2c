package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradeplan/checklist"
)

func validDraft() Draft {
	return Draft{
		Symbol: "ACME",
		Model:  checklist.ModelTrend,
		Side:   SideLong,
		Entry:  10,
		Stop:   9,
		Target: 12,
	}
}

func codes(d Decision) []string {
	out := make([]string, 0, len(d.Violations))
	for _, v := range d.Violations {
		out = append(out, v.Code)
	}
	return out
}

func TestEvaluateAllowsValidDraft(t *testing.T) {
	t.Parallel()

	d := Evaluate(validDraft(), 100000)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Violations)
}

func TestEvaluateViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Draft)
		equity float64
		code   string
	}{
		{"missing symbol", func(d *Draft) { d.Symbol = "" }, 100000, "NO_SYMBOL"},
		{"missing entry", func(d *Draft) { d.Entry = 0 }, 100000, "NO_ENTRY"},
		{"missing stop", func(d *Draft) { d.Stop = 0 }, 100000, "NO_STOP"},
		{"negative stop", func(d *Draft) { d.Stop = -1 }, 100000, "NO_STOP"},
		{"long stop above entry", func(d *Draft) { d.Stop = 11 }, 100000, "STOP_NOT_BELOW_ENTRY"},
		{"long stop at entry", func(d *Draft) { d.Stop = 10 }, 100000, "STOP_NOT_BELOW_ENTRY"},
		{"short stop below entry", func(d *Draft) { d.Side = SideShort }, 100000, "STOP_NOT_ABOVE_ENTRY"},
		{"zero equity", func(d *Draft) {}, 0, "NO_EQUITY"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			draft := validDraft()
			tt.mutate(&draft)

			d := Evaluate(draft, tt.equity)
			assert.False(t, d.Allowed)
			assert.Contains(t, codes(d), tt.code)
		})
	}
}

func TestEvaluateShortDraft(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.Side = SideShort
	draft.Stop = 11
	draft.Target = 7

	d := Evaluate(draft, 100000)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Violations)
}

func TestSetModelResetsChecklist(t *testing.T) {
	t.Parallel()

	d := validDraft()
	d.SetModel(checklist.ModelTrend)
	d.Checked["htf_trend"] = true
	assert.Equal(t, 20, checklist.Score(d.Model, d.Checked))

	d.SetModel(checklist.ModelRebound)
	assert.Equal(t, checklist.ModelRebound, d.Model)
	assert.Equal(t, 0, checklist.Score(d.Model, d.Checked))
	for _, v := range d.Checked {
		assert.False(t, v)
	}
}

func TestResizeRespectsPins(t *testing.T) {
	t.Parallel()

	in := SizeInputs{Equity: 100000, MaxRiskPct: 1, LotSize: 100}

	d := validDraft()
	d.Resize(in)
	assert.InDelta(t, 1000.0, d.Units, 1e-9)
	assert.InDelta(t, 10.0, d.PositionPct, 1e-9)

	d.Units = 500
	d.UnitsPinned = true
	res := d.Resize(in)
	assert.InDelta(t, 500.0, d.Units, 1e-9, "pinned units must survive recompute")
	assert.InDelta(t, 1000.0, res.Units, 1e-9, "suggestion still reported")
	assert.InDelta(t, 10.0, d.PositionPct, 1e-9)
}
