// Package journal holds the persisted trade record and its lifecycle. A
// trade is created open from a validated draft, mutated only by explicit
// edit or close operations, and removed permanently on delete. The risk
// context captured at creation (equity, fees, lot size) is a snapshot:
// later settings changes never retroactively alter a stored trade.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradeplan/checklist"
	"github.com/rustyeddy/tradeplan/config"
	"github.com/rustyeddy/tradeplan/outcome"
	"github.com/rustyeddy/tradeplan/pkg/id"
	"github.com/rustyeddy/tradeplan/risk"
)

// Status is the trade lifecycle state.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

var (
	ErrNotFound = errors.New("trade not found")
	ErrClosed   = errors.New("trade already closed")
	ErrNotOpen  = errors.New("trade is not closed")
)

// Trade is the persisted record. PnL and R stay zero while the trade is
// open; they are derived and frozen when it closes.
type Trade struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Industry string `json:"industry"`

	Model     checklist.Model `json:"model"`
	Timeframe string          `json:"timeframe"`
	Side      risk.Side       `json:"side"`

	Entry  float64 `json:"entry"`
	Stop   float64 `json:"stop"`
	Target float64 `json:"target,omitempty"`

	// Risk context snapshot at creation time.
	Equity     float64 `json:"equity"`
	MaxRiskPct float64 `json:"maxRiskPct"`
	LotSize    float64 `json:"lotSize"`
	FeePct     float64 `json:"feePct"`
	ExitFeePct float64 `json:"exitFeePct"`
	Slippage   float64 `json:"slippage"`

	Units       float64 `json:"size"`
	PositionPct float64 `json:"positionPct"`

	Score     int             `json:"score"`
	Checklist map[string]bool `json:"checklist"`
	Tags      []string        `json:"tags"`

	Status Status  `json:"status"`
	Exit   float64 `json:"exit,omitempty"`
	PnL    float64 `json:"pnl,omitempty"`
	R      float64 `json:"r,omitempty"`

	Notes string `json:"notes"`
}

// ValidationError reports why a draft was rejected. The attempted mutation
// is not applied; no partial state is written.
type ValidationError struct {
	Violations []risk.Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Code, v.Msg))
	}
	return "invalid trade: " + strings.Join(msgs, "; ")
}

// New validates a draft against the settings and builds an open trade with
// a fresh ID, the checklist score, and the suggested sizing. Pinned sizing
// fields on the draft survive as typed.
func New(d risk.Draft, set config.Settings, now time.Time) (Trade, error) {
	dec := risk.Evaluate(d, set.Equity)
	if !dec.Allowed {
		return Trade{}, &ValidationError{Violations: dec.Violations}
	}

	d.Resize(risk.SizeInputs{
		Equity:          set.Equity,
		MaxRiskPct:      set.MaxRiskPct,
		LotSize:         set.LotSize,
		FeePct:          set.FeePct,
		ExitFeePct:      set.ExitFeePct,
		SlippagePerUnit: set.Slippage,
	})

	timeframe := d.Timeframe
	if timeframe == "" {
		timeframe = set.DefaultTimeframe
	}

	checked := d.Checked
	if checked == nil {
		checked = checklist.Reset(d.Model)
	}

	t := Trade{
		ID:        id.New(),
		CreatedAt: now,
		UpdatedAt: now,

		Symbol:   d.Symbol,
		Name:     d.Name,
		Industry: d.Industry,

		Model:     d.Model,
		Timeframe: timeframe,
		Side:      d.Side,

		Entry:  d.Entry,
		Stop:   d.Stop,
		Target: d.Target,

		Equity:     set.Equity,
		MaxRiskPct: set.MaxRiskPct,
		LotSize:    set.LotSize,
		FeePct:     set.FeePct,
		ExitFeePct: set.ExitFeePct,
		Slippage:   set.Slippage,

		Units:       d.Units,
		PositionPct: d.PositionPct,

		Score:     checklist.Score(d.Model, checked),
		Checklist: checked,
		Tags:      d.Tags,

		Status: StatusOpen,
		Notes:  d.Notes,
	}
	if t.Side == "" {
		t.Side = risk.SideLong
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t, nil
}

// Close fills the exit and derives PnL and R from the snapshot cost
// parameters. Re-closing is not supported; edit the exit instead.
func (t *Trade) Close(exit float64, now time.Time) error {
	if t.Status == StatusClosed {
		return ErrClosed
	}
	if exit <= 0 {
		return fmt.Errorf("close price must be positive, got %v", exit)
	}

	t.Exit = exit
	t.PnL = outcome.PnL(t.Entry, exit, t.Units, t.Side, t.FeePct, t.ExitFeePct, t.Slippage)
	t.R = outcome.RMultiple(t.Entry, t.Stop, exit, t.Side, t.FeePct, t.ExitFeePct, t.Slippage)
	t.Status = StatusClosed
	t.UpdatedAt = now
	return nil
}

// Reprice changes the exit of an already-closed trade and recomputes its
// PnL and R.
func (t *Trade) Reprice(exit float64, now time.Time) error {
	if t.Status != StatusClosed {
		return ErrNotOpen
	}
	if exit <= 0 {
		return fmt.Errorf("close price must be positive, got %v", exit)
	}

	t.Exit = exit
	t.PnL = outcome.PnL(t.Entry, exit, t.Units, t.Side, t.FeePct, t.ExitFeePct, t.Slippage)
	t.R = outcome.RMultiple(t.Entry, t.Stop, exit, t.Side, t.FeePct, t.ExitFeePct, t.Slippage)
	t.UpdatedAt = now
	return nil
}
