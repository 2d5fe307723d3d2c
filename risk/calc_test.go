package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_LongNoCosts(t *testing.T) {
	t.Parallel()

	got := Calculate(SizeInputs{
		Equity:     100000,
		MaxRiskPct: 1,
		Entry:      10,
		Stop:       9,
		LotSize:    100,
		Side:       SideLong,
	})

	assert.InDelta(t, 1.0, got.RiskPerUnit, 1e-9)
	assert.InDelta(t, 1000.0, got.RiskBudget, 1e-9)
	assert.InDelta(t, 1000.0, got.Units, 1e-9)
	assert.InDelta(t, 10.0, got.PositionPct, 1e-9)
}

func TestCalculate_ShortNoCosts(t *testing.T) {
	t.Parallel()

	got := Calculate(SizeInputs{
		Equity:     50000,
		MaxRiskPct: 2,
		Entry:      20,
		Stop:       22,
		LotSize:    10,
		Side:       SideShort,
	})

	assert.InDelta(t, 2.0, got.RiskPerUnit, 1e-9)
	assert.InDelta(t, 1000.0, got.RiskBudget, 1e-9)
	assert.InDelta(t, 500.0, got.Units, 1e-9)
	assert.InDelta(t, 20.0, got.PositionPct, 1e-9)
}

func TestCalculate_CostsShrinkSize(t *testing.T) {
	t.Parallel()

	// costRisk = 10*0.1/100 + 9*0.1/100 + 9*0.05/100 + 2*0.02
	// = 0.01 + 0.009 + 0.0045 + 0.04 = 0.0635
	got := Calculate(SizeInputs{
		Equity:          100000,
		MaxRiskPct:      1,
		Entry:           10,
		Stop:            9,
		LotSize:         100,
		Side:            SideLong,
		FeePct:          0.1,
		ExitFeePct:      0.05,
		SlippagePerUnit: 0.02,
	})

	assert.InDelta(t, 1.0635, got.RiskPerUnit, 1e-9)
	// floor(1000/1.0635) = 940, lot-floored to 900
	assert.InDelta(t, 900.0, got.Units, 1e-9)
	assert.InDelta(t, 9.0, got.PositionPct, 1e-9)
}

func TestCalculate_LotRounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   SizeInputs
		want float64
	}{
		{
			"exact lots",
			SizeInputs{Equity: 100000, MaxRiskPct: 1, Entry: 10, Stop: 9, LotSize: 100},
			1000,
		},
		{
			"rounds down",
			SizeInputs{Equity: 100000, MaxRiskPct: 1, Entry: 10, Stop: 9.7, LotSize: 100},
			3300, // floor(1000/0.3)=3333 -> 3300
		},
		{
			"lot of one",
			SizeInputs{Equity: 10000, MaxRiskPct: 1, Entry: 10, Stop: 9.7, LotSize: 1},
			333,
		},
		{
			"zero lot treated as one",
			SizeInputs{Equity: 10000, MaxRiskPct: 1, Entry: 10, Stop: 9.7},
			333,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Calculate(tt.in)
			assert.InDelta(t, tt.want, got.Units, 1e-9)

			lot := tt.in.LotSize
			if lot < 1 {
				lot = 1
			}
			assert.Zero(t, math.Mod(got.Units, lot), "units must be a lot multiple")
		})
	}
}

func TestCalculate_DegenerateInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   SizeInputs
	}{
		{"stop above entry long", SizeInputs{Equity: 100000, MaxRiskPct: 1, Entry: 10, Stop: 11, LotSize: 100, Side: SideLong}},
		{"stop below entry short", SizeInputs{Equity: 100000, MaxRiskPct: 1, Entry: 10, Stop: 9, LotSize: 100, Side: SideShort}},
		{"stop equals entry", SizeInputs{Equity: 100000, MaxRiskPct: 1, Entry: 10, Stop: 10, LotSize: 100}},
		{"zero equity", SizeInputs{MaxRiskPct: 1, Entry: 10, Stop: 9, LotSize: 100}},
		{"all zero", SizeInputs{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Calculate(tt.in)
			assert.Zero(t, got.Units)
			assert.Zero(t, got.PositionPct)
			assert.GreaterOrEqual(t, got.RiskPerUnit, 0.0)
		})
	}
}

func TestRR(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 2.0, RR(10, 9, 12), 1e-9)
	assert.InDelta(t, 1.5, RR(20, 22, 17), 1e-9) // short: risk 2, reward 3
	assert.Zero(t, RR(10, 10, 12))
	assert.Zero(t, RR(10, 9, 0))
}
