package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradeplan/checklist"
	"github.com/rustyeddy/tradeplan/config"
	"github.com/rustyeddy/tradeplan/risk"
)

var now = time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)

func testSettings() config.Settings {
	return config.Settings{
		Equity:           100000,
		MaxRiskPct:       1,
		LotSize:          100,
		DefaultTimeframe: "daily",
		DefaultModel:     checklist.ModelTrend,
		Currency:         "USD",
	}
}

func testDraft() risk.Draft {
	d := risk.Draft{
		Symbol: "ACME",
		Side:   risk.SideLong,
		Entry:  10,
		Stop:   9,
		Target: 12,
	}
	d.SetModel(checklist.ModelTrend)
	return d
}

func TestNewTrade(t *testing.T) {
	t.Parallel()

	draft := testDraft()
	draft.Checked["htf_trend"] = true

	tr, err := New(draft, testSettings(), now)
	require.NoError(t, err)

	assert.NotEmpty(t, tr.ID)
	assert.Equal(t, now, tr.CreatedAt)
	assert.Equal(t, now, tr.UpdatedAt)
	assert.Equal(t, StatusOpen, tr.Status)
	assert.Equal(t, "daily", tr.Timeframe, "timeframe defaults from settings")
	assert.Equal(t, 20, tr.Score)
	assert.InDelta(t, 1000.0, tr.Units, 1e-9)
	assert.InDelta(t, 10.0, tr.PositionPct, 1e-9)

	// risk context is snapshotted
	assert.InDelta(t, 100000.0, tr.Equity, 1e-9)
	assert.InDelta(t, 1.0, tr.MaxRiskPct, 1e-9)
	assert.InDelta(t, 100.0, tr.LotSize, 1e-9)

	// open trades carry no realized results
	assert.Zero(t, tr.Exit)
	assert.Zero(t, tr.PnL)
	assert.Zero(t, tr.R)
}

func TestNewTradeRejectsInvalidDraft(t *testing.T) {
	t.Parallel()

	draft := testDraft()
	draft.Stop = 0

	_, err := New(draft, testSettings(), now)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.NotEmpty(t, verr.Violations)
	assert.Contains(t, err.Error(), "NO_STOP")
}

func TestNewTradeKeepsPinnedUnits(t *testing.T) {
	t.Parallel()

	draft := testDraft()
	draft.Units = 300
	draft.UnitsPinned = true

	tr, err := New(draft, testSettings(), now)
	require.NoError(t, err)
	assert.InDelta(t, 300.0, tr.Units, 1e-9)
}

func TestNewTradeKeepsPinnedPositionPct(t *testing.T) {
	t.Parallel()

	draft := testDraft()
	draft.PositionPct = 2.5
	draft.PositionPctPinned = true

	tr, err := New(draft, testSettings(), now)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, tr.PositionPct, 1e-9)
	assert.InDelta(t, 1000.0, tr.Units, 1e-9, "unpinned units still auto-size")
}

func TestCloseTrade(t *testing.T) {
	t.Parallel()

	tr, err := New(testDraft(), testSettings(), now)
	require.NoError(t, err)

	closeAt := now.Add(48 * time.Hour)
	require.NoError(t, tr.Close(12, closeAt))

	assert.Equal(t, StatusClosed, tr.Status)
	assert.Equal(t, closeAt, tr.UpdatedAt)
	assert.InDelta(t, 12.0, tr.Exit, 1e-9)
	assert.InDelta(t, 2000.0, tr.PnL, 1e-9)
	assert.InDelta(t, 2.0, tr.R, 1e-9)
}

func TestCloseRejectsReclose(t *testing.T) {
	t.Parallel()

	tr, err := New(testDraft(), testSettings(), now)
	require.NoError(t, err)
	require.NoError(t, tr.Close(12, now.Add(time.Hour)))

	assert.ErrorIs(t, tr.Close(13, now.Add(2*time.Hour)), ErrClosed)
	assert.InDelta(t, 12.0, tr.Exit, 1e-9, "failed reclose must not touch the exit")
}

func TestCloseRejectsBadExit(t *testing.T) {
	t.Parallel()

	tr, err := New(testDraft(), testSettings(), now)
	require.NoError(t, err)

	assert.Error(t, tr.Close(0, now))
	assert.Error(t, tr.Close(-1, now))
	assert.Equal(t, StatusOpen, tr.Status)
}

func TestRepriceRecomputes(t *testing.T) {
	t.Parallel()

	tr, err := New(testDraft(), testSettings(), now)
	require.NoError(t, err)
	require.NoError(t, tr.Close(12, now.Add(time.Hour)))

	require.NoError(t, tr.Reprice(8.5, now.Add(2*time.Hour)))
	assert.InDelta(t, -1500.0, tr.PnL, 1e-9)
	assert.InDelta(t, -1.5, tr.R, 1e-9)
}

func TestRepriceRequiresClosed(t *testing.T) {
	t.Parallel()

	tr, err := New(testDraft(), testSettings(), now)
	require.NoError(t, err)

	assert.ErrorIs(t, tr.Reprice(12, now), ErrNotOpen)
}

func TestCloseShortTrade(t *testing.T) {
	t.Parallel()

	draft := testDraft()
	draft.Side = risk.SideShort
	draft.Stop = 11
	draft.Target = 7

	tr, err := New(draft, testSettings(), now)
	require.NoError(t, err)
	require.NoError(t, tr.Close(8, now.Add(time.Hour)))

	assert.Positive(t, tr.PnL)
	assert.InDelta(t, 2.0, tr.R, 1e-9)
}
