package risk

import "math"

// Side is the direction of a planned trade. It flips the sign conventions in
// sizing and outcome math.
type Side string

const (
	SideLong  Side = "long"
	SideShort Side = "short"
)

// SizeInputs carries everything the sizer needs. Cost parameters model the
// round trip paid if the stop is hit: FeePct on entry and exit notional,
// ExitFeePct on exit notional only, SlippagePerUnit once each way.
type SizeInputs struct {
	Equity          float64
	MaxRiskPct      float64 // percentage points, e.g. 1.0 for 1%
	Entry           float64
	Stop            float64
	LotSize         float64 // minimum unit increment, >= 1
	Side            Side
	FeePct          float64
	ExitFeePct      float64
	SlippagePerUnit float64
}

// SizeResult is the recommended position for the given risk budget.
type SizeResult struct {
	RiskPerUnit float64 // price risk plus round-trip cost per unit
	RiskBudget  float64 // equity * maxRiskPct/100
	Units       float64 // whole multiple of LotSize, sized within budget
	PositionPct float64 // units*entry as a percentage of equity
}

// Calculate sizes a position so the loss at the stop, costs included, stays
// within the risk budget. Units always round DOWN to a whole number of lots.
// Degenerate inputs (stop on the wrong side, zero risk) produce a zero-size
// result rather than an error: the caller keeps live-recomputing as the user
// types and partial input is the normal case.
func Calculate(in SizeInputs) SizeResult {
	var res SizeResult

	priceRisk := in.Entry - in.Stop
	if in.Side == SideShort {
		priceRisk = in.Stop - in.Entry
	}

	costRisk := in.Entry*(in.FeePct/100) +
		in.Stop*(in.FeePct/100) +
		in.Stop*(in.ExitFeePct/100) +
		2*in.SlippagePerUnit

	res.RiskPerUnit = math.Max(0, priceRisk+costRisk)
	res.RiskBudget = in.Equity * in.MaxRiskPct / 100

	lot := in.LotSize
	if lot < 1 {
		lot = 1
	}

	if res.RiskPerUnit > 0 && res.RiskBudget > 0 && priceRisk > 0 {
		raw := math.Floor(res.RiskBudget / res.RiskPerUnit)
		res.Units = math.Floor(raw/lot) * lot
	}

	if in.Equity > 0 {
		res.PositionPct = res.Units * in.Entry / in.Equity * 100
	}

	return res
}

// RR returns the planned reward-to-risk multiple for an entry/stop/target
// triple, or 0 when the risk leg is degenerate or no target is set.
func RR(entry, stop, target float64) float64 {
	risk := math.Abs(entry - stop)
	if risk == 0 || target == 0 {
		return 0
	}
	return math.Abs(target-entry) / risk
}
