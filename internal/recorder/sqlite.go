package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists parse history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, logger zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so a watcher can write while another process reads the history.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: logger}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS parse_runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			path        TEXT NOT NULL,
			hash        TEXT,
			trigger_by  TEXT,
			title       TEXT,
			symbol      TEXT,
			bars        INTEGER,
			drawings    INTEGER,
			indicators  INTEGER,
			duration_us INTEGER,
			error       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_parse_runs_ts ON parse_runs(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_parse_runs_path ON parse_runs(path)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordParse(evt *ParseEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := evt.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.Exec(`INSERT INTO parse_runs
		(timestamp, path, hash, trigger_by, title, symbol, bars, drawings, indicators, duration_us, error)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		ts.UnixMicro(), evt.Path, evt.Hash, evt.Trigger, evt.Title, evt.Symbol,
		evt.Bars, evt.Drawings, evt.Indicators, evt.Duration.Microseconds(), evt.Error,
	)
	return err
}

// Recent returns up to limit parse runs, newest first.
func (r *SQLiteRecorder) Recent(limit int) ([]ParseEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT timestamp, path, hash, trigger_by, title, symbol,
		bars, drawings, indicators, duration_us, error
		FROM parse_runs ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query parse runs: %w", err)
	}
	defer rows.Close()

	var out []ParseEvent
	for rows.Next() {
		var (
			evt        ParseEvent
			ts, micros int64
		)
		if err := rows.Scan(&ts, &evt.Path, &evt.Hash, &evt.Trigger, &evt.Title, &evt.Symbol,
			&evt.Bars, &evt.Drawings, &evt.Indicators, &micros, &evt.Error); err != nil {
			return nil, fmt.Errorf("scan parse run: %w", err)
		}
		evt.Timestamp = time.UnixMicro(ts)
		evt.Duration = time.Duration(micros) * time.Microsecond
		out = append(out, evt)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
