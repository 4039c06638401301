// Package store persists export runs to SQLite. The database is an output
// artifact; nothing in urbanpulse reads it back for analysis.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
	"github.com/KaramelBytes/urbanpulse-cli/internal/logging"
	"github.com/KaramelBytes/urbanpulse-cli/internal/utils"
)

// Store is a SQLite-backed run archive.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Run is one row of the runs table.
type Run struct {
	ID        string
	Source    string
	CreatedAt time.Time
	Records   int
	Profiles  int
}

// Open opens (creating if needed) the database at path and ensures the schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if err := utils.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	s := &Store{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

func indicatorColumns() string {
	cols := make([]string, len(dataset.Fields))
	for i, f := range dataset.Fields {
		cols[i] = f.Name() + " REAL"
	}
	return strings.Join(cols, ",\n\t\t")
}

func (s *Store) migrate() error {
	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT,
		created_at DATETIME,
		record_count INTEGER,
		profile_count INTEGER
	);
	`
	recordTable := `
	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		country TEXT NOT NULL,
		year INTEGER NOT NULL,
		cluster_label TEXT,
		` + indicatorColumns() + `
	);
	`
	profileTable := `
	CREATE TABLE IF NOT EXISTS profiles (
		run_id TEXT NOT NULL REFERENCES runs(id),
		country TEXT NOT NULL,
		years INTEGER NOT NULL,
		cluster INTEGER NOT NULL,
		cluster_label TEXT NOT NULL,
		` + indicatorColumns() + `,
		PRIMARY KEY (run_id, country)
	);
	`
	for _, stmt := range []string{runTable, recordTable, profileTable} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

func insertSQL(table string, fixed []string) string {
	cols := append([]string{}, fixed...)
	for _, f := range dataset.Fields {
		cols = append(cols, f.Name())
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), marks)
}

// Save writes the snapshot in a single transaction.
func (s *Store) Save(ctx context.Context, snap *Snapshot) error {
	start := time.Now()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, created_at, record_count, profile_count) VALUES (?, ?, ?, ?, ?)`,
		snap.RunID, snap.Source, snap.CreatedAt, len(snap.Records), len(snap.Profiles)); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	recStmt, err := tx.PrepareContext(ctx, insertSQL("records", []string{"run_id", "country", "year", "cluster_label"}))
	if err != nil {
		return fmt.Errorf("prepare records: %w", err)
	}
	defer recStmt.Close()
	for i := range snap.Records {
		r := &snap.Records[i]
		args := []any{snap.RunID, r.Country, r.Year, r.ClusterLabel}
		for _, f := range dataset.Fields {
			if v := r.Value(f); v != nil {
				args = append(args, *v)
			} else {
				args = append(args, nil)
			}
		}
		if _, err := recStmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert record %s/%d: %w", r.Country, r.Year, err)
		}
	}

	profStmt, err := tx.PrepareContext(ctx, insertSQL("profiles", []string{"run_id", "country", "years", "cluster", "cluster_label"}))
	if err != nil {
		return fmt.Errorf("prepare profiles: %w", err)
	}
	defer profStmt.Close()
	for _, p := range snap.Profiles {
		args := []any{snap.RunID, p.Country, p.Years, p.Cluster, p.ClusterLabel}
		for _, f := range dataset.Fields {
			args = append(args, p.Value(f))
		}
		if _, err := profStmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert profile %s: %w", p.Country, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	logging.LogOperation(s.logger, "run_saved",
		slog.String("run_id", snap.RunID),
		slog.Int("records", len(snap.Records)),
		slog.Int("profiles", len(snap.Profiles)),
		slog.Duration("duration", time.Since(start)))
	return nil
}

// ListRuns returns all archived runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, created_at, record_count, profile_count FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Source, &r.CreatedAt, &r.Records, &r.Profiles); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// CountRows returns how many records and profiles were stored for runID.
func (s *Store) CountRows(ctx context.Context, runID string) (records, profiles int, err error) {
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE run_id = ?`, runID).Scan(&records); err != nil {
		return 0, 0, fmt.Errorf("count records: %w", err)
	}
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles WHERE run_id = ?`, runID).Scan(&profiles); err != nil {
		return 0, 0, fmt.Errorf("count profiles: %w", err)
	}
	return records, profiles, nil
}
