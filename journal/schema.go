// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	symbol TEXT NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	industry TEXT NOT NULL DEFAULT '',
	model TEXT NOT NULL,
	timeframe TEXT NOT NULL DEFAULT '',
	side TEXT NOT NULL,
	entry REAL NOT NULL,
	stop REAL NOT NULL,
	target REAL NOT NULL DEFAULT 0,
	equity REAL NOT NULL,
	max_risk_pct REAL NOT NULL,
	lot_size REAL NOT NULL,
	fee_pct REAL NOT NULL,
	exit_fee_pct REAL NOT NULL,
	slippage REAL NOT NULL,
	size REAL NOT NULL,
	position_pct REAL NOT NULL,
	score INTEGER NOT NULL,
	checklist TEXT NOT NULL DEFAULT '{}',
	tags TEXT NOT NULL DEFAULT '[]',
	status TEXT NOT NULL,
	exit REAL NOT NULL DEFAULT 0,
	pnl REAL NOT NULL DEFAULT 0,
	r REAL NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_status ON trades(status);
CREATE INDEX IF NOT EXISTS idx_trades_updated ON trades(updated_at);
`
