// Package stats folds the trade collection into portfolio KPIs. The fold is
// a full recompute on every call: journals are personal-scale, linear cost
// is nothing, and incremental bookkeeping is not worth the state.
package stats

import (
	"math"
	"sort"

	"github.com/rustyeddy/tradeplan/journal"
)

// Point is one step of the equity curve. Index 0 is the starting equity.
type Point struct {
	Index  int     `json:"index"`
	Equity float64 `json:"equity"`
}

// Summary holds the portfolio KPIs over all closed trades.
type Summary struct {
	ClosedCount  int     `json:"closedCount"`
	WinRate      float64 `json:"winRate"`
	RealizedPnL  float64 `json:"realizedPnl"`
	AvgWin       float64 `json:"avgWin"`
	AvgLoss      float64 `json:"avgLoss"`
	WinLossRatio float64 `json:"winLossRatio"` // +Inf when there are wins but no losses
	ProfitFactor float64 `json:"profitFactor"` // +Inf when there is gross win but no gross loss
	AvgR         float64 `json:"avgR"`

	Curve          []Point `json:"equityCurve"`
	MaxDrawdownPct float64 `json:"maxDrawdownPct"` // fraction of peak, in [0,1]
}

// Aggregate computes the summary for a trade collection and a starting
// equity. Only closed trades with positive entry, exit, and size count;
// they are walked in close-time order for the equity curve.
func Aggregate(trades []journal.Trade, startingEquity float64) Summary {
	closed := make([]journal.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Status != journal.StatusClosed {
			continue
		}
		if t.Entry <= 0 || t.Exit <= 0 || t.Units <= 0 {
			continue
		}
		closed = append(closed, t)
	}
	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].UpdatedAt.Before(closed[j].UpdatedAt)
	})

	var (
		wins, losses        int
		grossWin, grossLoss float64 // grossLoss kept as a magnitude
		sumPnL, sumR        float64
	)
	for _, t := range closed {
		sumPnL += t.PnL
		sumR += t.R
		switch {
		case t.PnL > 0:
			wins++
			grossWin += t.PnL
		case t.PnL < 0:
			losses++
			grossLoss += -t.PnL
		}
	}

	s := Summary{
		ClosedCount: len(closed),
		RealizedPnL: sumPnL,
	}
	if len(closed) > 0 {
		s.WinRate = float64(wins) / float64(len(closed))
		s.AvgR = sumR / float64(len(closed))
	}
	if wins > 0 {
		s.AvgWin = grossWin / float64(wins)
	}
	if losses > 0 {
		s.AvgLoss = -grossLoss / float64(losses)
	}

	s.WinLossRatio = ratio(s.AvgWin, math.Abs(s.AvgLoss))
	s.ProfitFactor = ratio(grossWin, grossLoss)

	// Equity curve with running peak and max drawdown.
	equity := startingEquity
	peak := equity
	s.Curve = append(s.Curve, Point{Index: 0, Equity: equity})
	for i, t := range closed {
		equity += t.PnL
		if equity > peak {
			peak = equity
		}
		if peak > 0 {
			dd := (peak - equity) / peak
			if dd > 1 {
				// equity below zero; a drawdown is still at most the
				// whole peak
				dd = 1
			}
			if dd > s.MaxDrawdownPct {
				s.MaxDrawdownPct = dd
			}
		}
		s.Curve = append(s.Curve, Point{Index: i + 1, Equity: equity})
	}

	return s
}

// ratio is favorable/opposing with the degenerate cases pinned: +Inf when
// the opposing side is zero but the favorable one is positive, 0 when both
// are zero.
func ratio(favorable, opposing float64) float64 {
	if opposing == 0 {
		if favorable > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return math.Abs(favorable / opposing)
}
