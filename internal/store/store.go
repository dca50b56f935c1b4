// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store writes dataset snapshots to a SQLite database so that the
// filtered records and their aggregates can be queried with plain SQL by
// downstream tooling. A snapshot is a full replacement: re-running it
// against the same file yields the same contents.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/scholardash/internal/analysis"
	"github.com/pdiddy/scholardash/pkg/types"
)

// Store manages the snapshot SQLite database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the snapshot database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			country TEXT NOT NULL,
			year INTEGER NOT NULL,
			documents INTEGER NOT NULL,
			times_cited INTEGER NOT NULL,
			cnci REAL NOT NULL,
			collab_cnci REAL NOT NULL,
			top_pct_1 REAL NOT NULL,
			top_pct_10 REAL NOT NULL,
			collab_advantage REAL NOT NULL,
			PRIMARY KEY (country, year)
		)`,
		`CREATE TABLE IF NOT EXISTS country_aggregates (
			country TEXT PRIMARY KEY,
			total_docs INTEGER NOT NULL,
			total_citations INTEGER NOT NULL,
			avg_cnci REAL NOT NULL,
			avg_top1 REAL NOT NULL,
			avg_top10 REAL NOT NULL,
			avg_collab_cnci REAL NOT NULL,
			years_tracked INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS year_aggregates (
			year INTEGER PRIMARY KEY,
			total_docs INTEGER NOT NULL,
			total_citations INTEGER NOT NULL,
			avg_cnci REAL NOT NULL,
			avg_top1 REAL NOT NULL,
			avg_top10 REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_year ON records(year)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Summary holds row counts from a snapshot write.
type Summary struct {
	Records   int
	Countries int
	Years     int
}

// Write replaces the snapshot contents with the given records and their
// aggregates, in one transaction.
func (s *Store) Write(ctx context.Context, records []types.Record, countries []analysis.CountryAggregate, years []analysis.YearAggregate) (Summary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"records", "country_aggregates", "year_aggregates"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return Summary{}, fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	recStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (country, year, documents, times_cited, cnci, collab_cnci, top_pct_1, top_pct_10, collab_advantage)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Summary{}, fmt.Errorf("preparing record insert: %w", err)
	}
	defer recStmt.Close()

	for _, r := range records {
		_, err := recStmt.ExecContext(ctx,
			r.Country, r.Year, r.Documents, r.TimesCited,
			r.CNCI, r.CollabCNCI, r.TopPct1, r.TopPct10, r.CollabAdvantage(),
		)
		if err != nil {
			return Summary{}, fmt.Errorf("inserting record %s/%d: %w", r.Country, r.Year, err)
		}
	}

	for _, c := range countries {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO country_aggregates (country, total_docs, total_citations, avg_cnci, avg_top1, avg_top10, avg_collab_cnci, years_tracked)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Country, c.TotalDocs, c.TotalCitations,
			c.AvgCNCI, c.AvgTop1, c.AvgTop10, c.AvgCollabCNCI, c.YearsTracked,
		)
		if err != nil {
			return Summary{}, fmt.Errorf("inserting country aggregate %s: %w", c.Country, err)
		}
	}

	for _, y := range years {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO year_aggregates (year, total_docs, total_citations, avg_cnci, avg_top1, avg_top10)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			y.Year, y.TotalDocs, y.TotalCitations, y.AvgCNCI, y.AvgTop1, y.AvgTop10,
		)
		if err != nil {
			return Summary{}, fmt.Errorf("inserting year aggregate %d: %w", y.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Summary{}, fmt.Errorf("committing snapshot: %w", err)
	}

	return Summary{
		Records:   len(records),
		Countries: len(countries),
		Years:     len(years),
	}, nil
}

// Snapshot opens the database at path, writes the snapshot, and closes it.
func Snapshot(ctx context.Context, path string, records []types.Record, countries []analysis.CountryAggregate, years []analysis.YearAggregate) (Summary, error) {
	s, err := Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer s.Close()
	return s.Write(ctx, records, countries, years)
}
