// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads the publications CSV into an immutable in-memory
// table and answers filtered views over it. The Dataset handle is built
// once at startup and shared read-only for the process lifetime, so it is
// safe for concurrent readers without locking.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/scholardash/pkg/types"
)

// ErrDataUnavailable marks a missing or malformed source CSV. It is fatal:
// there is nothing to retry and no degraded mode without data.
var ErrDataUnavailable = errors.New("dataset unavailable")

// Source CSV column headers, as exported from Web of Science.
const (
	colCountry    = "Name"
	colYear       = "year"
	colDocuments  = "Web of Science Documents"
	colTimesCited = "Times Cited"
	colCNCI       = "Category Normalized Citation Impact"
	colCollabCNCI = "Collab-CNCI"
	colTopPct1    = "% Documents in Top 1%"
	colTopPct10   = "% Documents in Top 10%"
)

var requiredColumns = []string{
	colCountry, colYear, colDocuments, colTimesCited,
	colCNCI, colCollabCNCI, colTopPct1, colTopPct10,
}

// Dataset is the read-only loaded table plus precomputed bounds.
type Dataset struct {
	records   []types.Record
	countries []string
	minYear   int
	maxYear   int
}

// Load reads the publications CSV at path. Column order is taken from the
// header, so extra columns are tolerated and order does not matter. Any
// missing column, unparseable cell, out-of-range percentage, or duplicate
// (country, year) pair fails the whole load with an error wrapping
// ErrDataUnavailable.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrDataUnavailable, path, err)
	}
	defer f.Close()

	ds, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrDataUnavailable, path, err)
	}
	return ds, nil
}

func parse(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var records []types.Record
	seen := make(map[string]bool)
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line++

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		key := rec.Country + "\x00" + strconv.Itoa(rec.Year)
		if seen[key] {
			return nil, fmt.Errorf("line %d: duplicate record for %s/%d", line, rec.Country, rec.Year)
		}
		seen[key] = true
		records = append(records, rec)
	}

	ds := &Dataset{records: records}
	countrySet := make(map[string]bool)
	for i, rec := range records {
		if i == 0 || rec.Year < ds.minYear {
			ds.minYear = rec.Year
		}
		if rec.Year > ds.maxYear {
			ds.maxYear = rec.Year
		}
		countrySet[rec.Country] = true
	}
	for c := range countrySet {
		ds.countries = append(ds.countries, c)
	}
	sort.Strings(ds.countries)

	return ds, nil
}

func parseRow(row []string, cols map[string]int) (types.Record, error) {
	cell := func(name string) string {
		return strings.TrimSpace(row[cols[name]])
	}

	var rec types.Record
	var err error

	rec.Country = cell(colCountry)
	if rec.Country == "" {
		return rec, fmt.Errorf("empty %s", colCountry)
	}

	if rec.Year, err = strconv.Atoi(cell(colYear)); err != nil {
		return rec, fmt.Errorf("parsing %s: %w", colYear, err)
	}
	if rec.Documents, err = parseCount(cell(colDocuments)); err != nil {
		return rec, fmt.Errorf("parsing %s: %w", colDocuments, err)
	}
	if rec.TimesCited, err = parseCount(cell(colTimesCited)); err != nil {
		return rec, fmt.Errorf("parsing %s: %w", colTimesCited, err)
	}
	if rec.CNCI, err = strconv.ParseFloat(cell(colCNCI), 64); err != nil {
		return rec, fmt.Errorf("parsing %s: %w", colCNCI, err)
	}
	if rec.CollabCNCI, err = strconv.ParseFloat(cell(colCollabCNCI), 64); err != nil {
		return rec, fmt.Errorf("parsing %s: %w", colCollabCNCI, err)
	}
	if rec.TopPct1, err = parsePercent(cell(colTopPct1)); err != nil {
		return rec, fmt.Errorf("parsing %s: %w", colTopPct1, err)
	}
	if rec.TopPct10, err = parsePercent(cell(colTopPct10)); err != nil {
		return rec, fmt.Errorf("parsing %s: %w", colTopPct10, err)
	}

	return rec, nil
}

// parseCount accepts plain integers, with or without thousands separators
// ("12,345" appears in some WoS exports).
func parseCount(s string) (int64, error) {
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("percentage %v out of range", v)
	}
	return v, nil
}

// Len returns the number of loaded records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns the full loaded table. Callers must treat the slice as
// read-only.
func (d *Dataset) Records() []types.Record {
	return d.records
}

// Countries returns the distinct country names in sorted order.
func (d *Dataset) Countries() []string {
	return d.countries
}

// YearBounds returns the minimum and maximum year present in the data.
// Both are zero for an empty dataset.
func (d *Dataset) YearBounds() (min, max int) {
	return d.minYear, d.maxYear
}

// Filter returns the records matching every predicate in params, in load
// order. An empty result is a valid outcome, not an error.
func (d *Dataset) Filter(params types.FilterParams) []types.Record {
	var out []types.Record
	for _, rec := range d.records {
		if params.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}
