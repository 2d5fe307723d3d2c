// Package outcome computes realized results for closed trades: round-trip
// transaction cost, cost-adjusted PnL, and the R-multiple. All functions are
// pure and total; degenerate inputs yield zero rather than an error. The
// long-only, zero-cost form some journals use is just the degenerate call
// with side=long and zero cost parameters.
package outcome

import (
	"math"

	"github.com/rustyeddy/tradeplan/risk"
)

// Cost is the round-trip transaction cost for a filled and exited position:
// the fee rate on entry and exit notional, the exit-only fee on exit
// notional, and slippage paid once each way.
func Cost(entry, exit, units, feePct, exitFeePct, slippagePerUnit float64) float64 {
	return (entry*units+exit*units)*feePct/100 +
		exit*units*exitFeePct/100 +
		2*math.Abs(slippagePerUnit)*units
}

// PnL is the cost-adjusted realized profit or loss. Zero when any of
// entry, exit, or units is zero: the trade never completed a round trip.
func PnL(entry, exit, units float64, side risk.Side, feePct, exitFeePct, slippagePerUnit float64) float64 {
	if entry == 0 || exit == 0 || units == 0 {
		return 0
	}

	gross := (exit - entry) * units
	if side == risk.SideShort {
		gross = (entry - exit) * units
	}
	return gross - Cost(entry, exit, units, feePct, exitFeePct, slippagePerUnit)
}

// RMultiple expresses the result as a multiple of the initial per-unit risk.
// It is independent of position size: the per-unit cost-adjusted PnL divided
// by the entry-to-stop distance. When the risk basis is non-positive the
// trade had no defined risk and R cannot be expressed, so the result is 0.
func RMultiple(entry, stop, exit float64, side risk.Side, feePct, exitFeePct, slippagePerUnit float64) float64 {
	riskPerUnit := entry - stop
	if side == risk.SideShort {
		riskPerUnit = stop - entry
	}
	if riskPerUnit <= 0 {
		return 0
	}
	return PnL(entry, exit, 1, side, feePct, exitFeePct, slippagePerUnit) / riskPerUnit
}
