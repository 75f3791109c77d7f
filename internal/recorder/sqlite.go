package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockScope/internal/model"
	"StockScope/internal/strategy"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the analyzer writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			symbol           TEXT NOT NULL,
			rsi              REAL,
			macd             REAL,
			macd_signal      REAL,
			stoch_k          REAL,
			stoch_d          REAL,
			sma50            REAL,
			sma200           REAL,
			cross_type       TEXT,
			macd_cross       TEXT,
			sentiment_avg    REAL,
			sentiment_label  TEXT,
			technical_signal TEXT,
			overall          TEXT,
			option_suggested INTEGER,
			change_pct       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_ts ON analysis_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_symbol ON analysis_snapshots(symbol)`,

		`CREATE TABLE IF NOT EXISTS quality_verdicts (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			symbol            TEXT NOT NULL,
			periods_evaluated INTEGER,
			periods_passing   INTEGER,
			overall_pass      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quality_ts ON quality_verdicts(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(a *strategy.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changePct *float64
	if a.Movement != nil {
		changePct = &a.Movement.ChangePct
	}
	var sentimentLabel *string
	if a.Sentiment.Average != nil {
		label := string(a.Sentiment.Label)
		sentimentLabel = &label
	}

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, symbol, rsi, macd, macd_signal, stoch_k, stoch_d, sma50, sma200,
		 cross_type, macd_cross, sentiment_avg, sentiment_label,
		 technical_signal, overall, option_suggested, change_pct)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), a.Symbol,
		model.LastDefined(a.Indicators.RSI),
		model.LastDefined(a.Indicators.MACD),
		model.LastDefined(a.Indicators.Signal),
		model.LastDefined(a.Indicators.StochK),
		model.LastDefined(a.Indicators.StochD),
		model.LastDefined(a.Indicators.SMA50),
		model.LastDefined(a.Indicators.SMA200),
		string(a.Crossovers.Cross), string(a.Crossovers.MACD),
		a.Sentiment.Average, sentimentLabel,
		string(a.Recommendation.Technical), string(a.Recommendation.Overall),
		a.Recommendation.CallOptionSuggested, changePct,
	)
	return err
}

func (r *SQLiteRecorder) RecordQuality(symbol string, verdict model.QualityVerdict) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO quality_verdicts
		(timestamp, symbol, periods_evaluated, periods_passing, overall_pass)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), symbol,
		verdict.PeriodsEvaluated, verdict.PeriodsPassing, verdict.OverallPass,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
