package risk

import (
	"fmt"

	"github.com/rustyeddy/tradeplan/checklist"
)

// Draft is a trade plan under construction. Sizing fields carry per-field
// pinned flags: once a user types a value by hand, auto-recompute must not
// overwrite it.
type Draft struct {
	Symbol    string
	Name      string
	Industry  string
	Model     checklist.Model
	Timeframe string
	Side      Side

	Entry  float64
	Stop   float64
	Target float64

	Checked map[string]bool
	Tags    []string
	Notes   string

	Units             float64
	PositionPct       float64
	UnitsPinned       bool
	PositionPctPinned bool
}

// SetModel switches the draft to another model and resets its checklist.
// Scores are not comparable across models, so checks never carry over.
func (d *Draft) SetModel(m checklist.Model) {
	d.Model = m
	d.Checked = checklist.Reset(m)
}

// Resize recomputes the suggested sizing for the draft, leaving any pinned
// field untouched.
func (d *Draft) Resize(in SizeInputs) SizeResult {
	in.Entry = d.Entry
	in.Stop = d.Stop
	in.Side = d.Side

	res := Calculate(in)
	if !d.UnitsPinned {
		d.Units = res.Units
	}
	if !d.PositionPctPinned {
		d.PositionPct = res.PositionPct
	}
	return res
}

// Violation is one reason a draft cannot become a trade.
type Violation struct {
	Code string
	Msg  string
}

// Decision is the outcome of validating a draft before creation. A draft
// with any violation is rejected outright: no partial state is written.
type Decision struct {
	Allowed    bool
	Violations []Violation
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate runs the create-time checks on a draft. No stop, no trade; the
// stop must also sit on the correct side of entry for the trade direction.
func Evaluate(draft Draft, equity float64) Decision {
	d := Decision{Allowed: true}

	if draft.Symbol == "" {
		d.add("NO_SYMBOL", "symbol must be set")
	}
	if draft.Entry <= 0 {
		d.add("NO_ENTRY", "entry price must be positive")
	}
	if draft.Stop <= 0 {
		d.add("NO_STOP", "a positive stop is required before a trade can be created")
	}

	if draft.Entry > 0 && draft.Stop > 0 {
		switch draft.Side {
		case SideShort:
			if draft.Stop <= draft.Entry {
				d.add("STOP_NOT_ABOVE_ENTRY",
					fmt.Sprintf("short stop %.4f must be above entry %.4f", draft.Stop, draft.Entry))
			}
		default:
			if draft.Stop >= draft.Entry {
				d.add("STOP_NOT_BELOW_ENTRY",
					fmt.Sprintf("long stop %.4f must be below entry %.4f", draft.Stop, draft.Entry))
			}
		}
	}

	if equity <= 0 {
		d.add("NO_EQUITY", "account equity must be positive")
	}

	return d
}
