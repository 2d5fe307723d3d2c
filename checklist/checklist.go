package checklist

import "math"

// Model selects which checklist and verdict thresholds apply to a trade plan.
type Model string

const (
	ModelTrend   Model = "trend"
	ModelRebound Model = "rebound"
)

// Item is one weighted entry-criteria line on a model's checklist.
type Item struct {
	Key    string
	Label  string
	Weight int
}

var trendItems = []Item{
	{Key: "htf_trend", Label: "Higher timeframe trend aligned", Weight: 20},
	{Key: "ma_stack", Label: "Moving averages stacked in trend direction", Weight: 15},
	{Key: "breakout_volume", Label: "Volume expands on the breakout", Weight: 15},
	{Key: "base_quality", Label: "Clean base or consolidation before entry", Weight: 10},
	{Key: "rel_strength", Label: "Relative strength vs the index", Weight: 10},
	{Key: "catalyst", Label: "Fresh catalyst or sector tailwind", Weight: 10},
	{Key: "rr_ok", Label: "Planned reward at least twice the risk", Weight: 10},
	{Key: "regime", Label: "Market regime favors new longs", Weight: 10},
}

var reboundItems = []Item{
	{Key: "oversold", Label: "Stretched or oversold on the trade timeframe", Weight: 20},
	{Key: "major_support", Label: "Price sitting at major support", Weight: 20},
	{Key: "reversal_signal", Label: "Reversal bar or candle signal printed", Weight: 15},
	{Key: "capitulation", Label: "Selling volume shows capitulation", Weight: 15},
	{Key: "downtrend_pause", Label: "Downtrend momentum clearly pausing", Weight: 10},
	{Key: "news_absorbed", Label: "Bad news out and absorbed", Weight: 10},
	{Key: "tight_stop", Label: "A tight, logical stop is available", Weight: 10},
}

// Items returns the ordered checklist for a model. Unrecognized models fall
// back to the trend checklist.
func Items(m Model) []Item {
	if m == ModelRebound {
		return reboundItems
	}
	return trendItems
}

// Reset returns a fresh all-false checklist state for a model. Switching a
// draft's model must go through Reset: scores are not comparable across
// models, so nothing is carried over.
func Reset(m Model) map[string]bool {
	checked := make(map[string]bool, len(Items(m)))
	for _, it := range Items(m) {
		checked[it.Key] = false
	}
	return checked
}

// Score converts a checklist state into a 0-100 integer. Only keys defined
// for the model count; missing or extra keys are ignored.
func Score(m Model, checked map[string]bool) int {
	var total, got int
	for _, it := range Items(m) {
		total += it.Weight
		if checked[it.Key] {
			got += it.Weight
		}
	}
	if total == 0 {
		return 0
	}

	s := int(math.Round(100 * float64(got) / float64(total)))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
