package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"
)

var csvHeader = []string{
	"id", "created_at", "updated_at", "symbol", "model", "timeframe", "side",
	"entry", "stop", "target", "size", "position_pct", "score", "status",
	"exit", "pnl", "r", "tags",
}

// WriteCSV writes the trades as a spreadsheet-friendly export.
func WriteCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range trades {
		row := []string{
			t.ID,
			t.CreatedAt.Format(time.RFC3339),
			t.UpdatedAt.Format(time.RFC3339),
			t.Symbol,
			string(t.Model),
			t.Timeframe,
			string(t.Side),
			f(t.Entry),
			f(t.Stop),
			f(t.Target),
			f(t.Units),
			f(t.PositionPct),
			strconv.Itoa(t.Score),
			string(t.Status),
			f(t.Exit),
			f(t.PnL),
			f(t.R),
			strings.Join(t.Tags, "|"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
