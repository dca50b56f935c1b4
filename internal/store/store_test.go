// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholardash/internal/analysis"
	"github.com/pdiddy/scholardash/pkg/types"
)

func sampleData() ([]types.Record, []analysis.CountryAggregate, []analysis.YearAggregate) {
	records := []types.Record{
		{Country: "Spain", Year: 2020, Documents: 1000, TimesCited: 15000, CNCI: 1.5, CollabCNCI: 1.3, TopPct1: 2.1, TopPct10: 12.0},
		{Country: "Spain", Year: 2021, Documents: 1100, TimesCited: 16000, CNCI: 1.4, CollabCNCI: 1.6, TopPct1: 1.9, TopPct10: 11.5},
		{Country: "Japan", Year: 2020, Documents: 2000, TimesCited: 20000, CNCI: 0.9, CollabCNCI: 1.1, TopPct1: 1.2, TopPct10: 9.0},
	}
	return records, analysis.AggregateByCountry(records), analysis.AggregateByYear(records)
}

func TestSnapshotWriteAndQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.db")
	records, countries, years := sampleData()

	summary, err := Snapshot(context.Background(), path, records, countries, years)
	require.NoError(t, err)
	assert.Equal(t, Summary{Records: 3, Countries: 2, Years: 2}, summary)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM records`).Scan(&n))
	assert.Equal(t, 3, n)

	var adv float64
	require.NoError(t, db.QueryRow(
		`SELECT collab_advantage FROM records WHERE country = 'Spain' AND year = 2021`,
	).Scan(&adv))
	assert.InDelta(t, 0.2, adv, 1e-9)

	var avgCNCI float64
	require.NoError(t, db.QueryRow(
		`SELECT avg_cnci FROM country_aggregates WHERE country = 'Spain'`,
	).Scan(&avgCNCI))
	assert.InDelta(t, 1.45, avgCNCI, 1e-9)

	var totalDocs int64
	require.NoError(t, db.QueryRow(
		`SELECT total_docs FROM year_aggregates WHERE year = 2020`,
	).Scan(&totalDocs))
	assert.Equal(t, int64(3000), totalDocs)
}

// A second snapshot replaces the first instead of accumulating rows.
func TestSnapshotIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.db")
	records, countries, years := sampleData()

	_, err := Snapshot(context.Background(), path, records, countries, years)
	require.NoError(t, err)

	// Second write with a subset.
	subset := records[:1]
	summary, err := Snapshot(context.Background(), path, subset,
		analysis.AggregateByCountry(subset), analysis.AggregateByYear(subset))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Records)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM records`).Scan(&n))
	assert.Equal(t, 1, n)
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM country_aggregates`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSnapshotEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.db")
	summary, err := Snapshot(context.Background(), path, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
}
