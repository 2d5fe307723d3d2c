package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/rustyeddy/tradeplan/checklist"
	"github.com/rustyeddy/tradeplan/risk"
)

// Store persists trades in a local SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the journal database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug().Str("path", path).Msg("journal store opened")
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const tradeColumns = `id, created_at, updated_at, symbol, name, industry,
	model, timeframe, side, entry, stop, target,
	equity, max_risk_pct, lot_size, fee_pct, exit_fee_pct, slippage,
	size, position_pct, score, checklist, tags, status, exit, pnl, r, notes`

// Put inserts or replaces a trade. Create, edit, and close all funnel
// through here: the trade struct is the source of truth.
func (s *Store) Put(t Trade) error {
	checked, err := json.Marshal(t.Checklist)
	if err != nil {
		return fmt.Errorf("marshal checklist: %w", err)
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO trades (`+tradeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.CreatedAt, t.UpdatedAt, t.Symbol, t.Name, t.Industry,
		string(t.Model), t.Timeframe, string(t.Side), t.Entry, t.Stop, t.Target,
		t.Equity, t.MaxRiskPct, t.LotSize, t.FeePct, t.ExitFeePct, t.Slippage,
		t.Units, t.PositionPct, t.Score, string(checked), string(tagsJSON),
		string(t.Status), t.Exit, t.PnL, t.R, t.Notes,
	)
	if err != nil {
		return err
	}

	log.Debug().Str("id", t.ID).Str("symbol", t.Symbol).Str("status", string(t.Status)).Msg("trade saved")
	return nil
}

// Get returns a single trade by ID.
func (s *Store) Get(tradeID string) (Trade, error) {
	row := s.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE id = ?`, tradeID)

	t, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Trade{}, fmt.Errorf("trade %q: %w", tradeID, ErrNotFound)
		}
		return Trade{}, err
	}
	return t, nil
}

// Delete removes a trade permanently. There is no soft delete.
func (s *Store) Delete(tradeID string) error {
	res, err := s.db.Exec(`DELETE FROM trades WHERE id = ?`, tradeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q: %w", tradeID, ErrNotFound)
	}

	log.Debug().Str("id", tradeID).Msg("trade deleted")
	return nil
}

// List returns all trades in creation order.
func (s *Store) List() ([]Trade, error) {
	return s.list(`SELECT ` + tradeColumns + ` FROM trades ORDER BY created_at ASC, id ASC`)
}

// ListByStatus returns trades with the given lifecycle status, open trades
// in creation order, closed trades in close order.
func (s *Store) ListByStatus(status Status) ([]Trade, error) {
	order := "created_at"
	if status == StatusClosed {
		order = "updated_at"
	}
	return s.list(
		`SELECT `+tradeColumns+` FROM trades WHERE status = ? ORDER BY `+order+` ASC, id ASC`,
		string(status))
}

// ReplaceAll swaps the whole collection in one transaction. Used by import:
// either every trade lands or none do.
func (s *Store) ReplaceAll(trades []Trade) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trades`); err != nil {
		return err
	}
	for _, t := range trades {
		checked, err := json.Marshal(t.Checklist)
		if err != nil {
			return fmt.Errorf("marshal checklist: %w", err)
		}
		tags := t.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("marshal tags: %w", err)
		}
		if _, err := tx.Exec(`
			INSERT INTO trades (`+tradeColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.CreatedAt, t.UpdatedAt, t.Symbol, t.Name, t.Industry,
			string(t.Model), t.Timeframe, string(t.Side), t.Entry, t.Stop, t.Target,
			t.Equity, t.MaxRiskPct, t.LotSize, t.FeePct, t.ExitFeePct, t.Slippage,
			t.Units, t.PositionPct, t.Score, string(checked), string(tagsJSON),
			string(t.Status), t.Exit, t.PnL, t.R, t.Notes,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Debug().Int("trades", len(trades)).Msg("journal replaced")
	return nil
}

func (s *Store) list(query string, args ...any) ([]Trade, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Trade{}
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(row scanner) (Trade, error) {
	var (
		t        Trade
		model    string
		side     string
		status   string
		checked  string
		tagsJSON string
	)

	err := row.Scan(
		&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.Symbol, &t.Name, &t.Industry,
		&model, &t.Timeframe, &side, &t.Entry, &t.Stop, &t.Target,
		&t.Equity, &t.MaxRiskPct, &t.LotSize, &t.FeePct, &t.ExitFeePct, &t.Slippage,
		&t.Units, &t.PositionPct, &t.Score, &checked, &tagsJSON,
		&status, &t.Exit, &t.PnL, &t.R, &t.Notes,
	)
	if err != nil {
		return Trade{}, err
	}

	t.Model = checklist.Model(model)
	t.Side = risk.Side(side)
	t.Status = Status(status)

	if err := json.Unmarshal([]byte(checked), &t.Checklist); err != nil {
		return Trade{}, fmt.Errorf("unmarshal checklist: %w", err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &t.Tags); err != nil {
		return Trade{}, fmt.Errorf("unmarshal tags: %w", err)
	}
	return t, nil
}
