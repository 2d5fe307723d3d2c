package stats

import (
	"fmt"
	"io"
	"math"
)

// WriteSummary prints a human-readable KPI report.
func WriteSummary(w io.Writer, s Summary, currency string) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Journal Performance")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Closed Trades: %d\n", s.ClosedCount)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", s.WinRate*100)
	fmt.Fprintf(w, "Realized PnL:  %.2f %s\n", s.RealizedPnL, currency)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Per-Trade Averages")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Avg Win:       %.2f\n", s.AvgWin)
	fmt.Fprintf(w, "Avg Loss:      %.2f\n", s.AvgLoss)
	fmt.Fprintf(w, "Win/Loss:      %s\n", formatRatio(s.WinLossRatio))
	fmt.Fprintf(w, "Profit Factor: %s\n", formatRatio(s.ProfitFactor))
	fmt.Fprintf(w, "Avg R:         %.2f\n", s.AvgR)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Equity")
	fmt.Fprintln(w, "--------------------------------------------------")
	if n := len(s.Curve); n > 0 {
		fmt.Fprintf(w, "Start:         %.2f\n", s.Curve[0].Equity)
		fmt.Fprintf(w, "End:           %.2f\n", s.Curve[n-1].Equity)
	}
	fmt.Fprintf(w, "Max Drawdown:  %.2f%%\n", s.MaxDrawdownPct*100)
	fmt.Fprintln(w)
}

// WriteCurve prints the equity curve one point per line.
func WriteCurve(w io.Writer, s Summary) {
	for _, p := range s.Curve {
		fmt.Fprintf(w, "%4d  %.2f\n", p.Index, p.Equity)
	}
}

func formatRatio(x float64) string {
	if math.IsInf(x, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", x)
}
