package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a trade as an Org-mode block for pasting into a
// written journal: structured facts in a PROPERTIES drawer, narrative
// placeholders below for the review.
func FormatTradeOrg(t Trade) string {
	var b strings.Builder

	fmt.Fprintf(&b, "** Trade: %s (%s)\n", t.Symbol, shortID(t.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":TRADE_ID: %s\n", t.ID)
	fmt.Fprintf(&b, ":SYMBOL: %s\n", t.Symbol)
	fmt.Fprintf(&b, ":MODEL: %s\n", t.Model)
	fmt.Fprintf(&b, ":TIMEFRAME: %s\n", t.Timeframe)
	fmt.Fprintf(&b, ":SIDE: %s\n", t.Side)
	fmt.Fprintf(&b, ":SCORE: %d\n", t.Score)
	fmt.Fprintf(&b, ":ENTRY: %.4f\n", t.Entry)
	fmt.Fprintf(&b, ":STOP: %.4f\n", t.Stop)
	if t.Target > 0 {
		fmt.Fprintf(&b, ":TARGET: %.4f\n", t.Target)
	}
	fmt.Fprintf(&b, ":SIZE: %.0f\n", t.Units)
	fmt.Fprintf(&b, ":POSITION_PCT: %.2f\n", t.PositionPct)
	fmt.Fprintf(&b, ":STATUS: %s\n", t.Status)
	fmt.Fprintf(&b, ":CREATED: %s\n", t.CreatedAt.UTC().Format(time.RFC3339))
	if t.Status == StatusClosed {
		fmt.Fprintf(&b, ":CLOSED: %s\n", t.UpdatedAt.UTC().Format(time.RFC3339))
		fmt.Fprintf(&b, ":EXIT: %.4f\n", t.Exit)
		fmt.Fprintf(&b, ":PNL: %.2f\n", t.PnL)
		fmt.Fprintf(&b, ":R: %.2f\n", t.R)
	}
	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, ":TAGS: %s\n", strings.Join(t.Tags, " "))
	}
	b.WriteString(":END:\n")

	if t.Notes != "" {
		b.WriteString("\n*** Notes\n")
		fmt.Fprintf(&b, "%s\n", t.Notes)
	}
	b.WriteString("\n*** Thesis\n- \n\n*** Execution\n- \n\n*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
