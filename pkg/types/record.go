// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds data structures shared across scholardash packages.
package types

// Record is one country-year observation from the publications dataset.
// Records are read-only after load; derived quantities are computed on
// demand and never persisted.
type Record struct {
	// Country is the country name as it appears in the source data.
	Country string `json:"country" yaml:"country"`

	// Year is the observation year.
	Year int `json:"year" yaml:"year"`

	// Documents is the Web of Science publication count.
	Documents int64 `json:"documents" yaml:"documents"`

	// TimesCited is the total citation count for the year's documents.
	TimesCited int64 `json:"times_cited" yaml:"times_cited"`

	// CNCI is the Category Normalized Citation Impact (1.0 = world average).
	CNCI float64 `json:"cnci" yaml:"cnci"`

	// CollabCNCI is the CNCI restricted to internationally co-authored output.
	CollabCNCI float64 `json:"collab_cnci" yaml:"collab_cnci"`

	// TopPct1 is the percentage of documents in the global top 1% by citations.
	TopPct1 float64 `json:"top_pct_1" yaml:"top_pct_1"`

	// TopPct10 is the percentage of documents in the global top 10% by citations.
	TopPct10 float64 `json:"top_pct_10" yaml:"top_pct_10"`
}

// CollabAdvantage is the impact gained (or lost) by international
// collaboration: Collab-CNCI minus overall CNCI.
func (r Record) CollabAdvantage() float64 {
	return r.CollabCNCI - r.CNCI
}

// CollabHelps reports whether collaboration raised impact for this record.
func (r Record) CollabHelps() bool {
	return r.CollabAdvantage() > 0
}

// FilterParams selects a subset of the dataset. The zero value selects
// everything: MaxYear == 0 means no upper bound.
type FilterParams struct {
	// Country restricts to a single country; empty means all countries.
	Country string `json:"country,omitempty" yaml:"country,omitempty"`

	// MinYear is the inclusive lower year bound.
	MinYear int `json:"min_year" yaml:"min_year"`

	// MaxYear is the inclusive upper year bound; 0 means unbounded.
	MaxYear int `json:"max_year" yaml:"max_year"`

	// MinCNCI excludes records whose CNCI falls below the threshold.
	MinCNCI float64 `json:"min_cnci" yaml:"min_cnci"`
}

// Matches reports whether the record satisfies every predicate.
func (p FilterParams) Matches(r Record) bool {
	if r.Year < p.MinYear {
		return false
	}
	if p.MaxYear > 0 && r.Year > p.MaxYear {
		return false
	}
	if r.CNCI < p.MinCNCI {
		return false
	}
	if p.Country != "" && r.Country != p.Country {
		return false
	}
	return true
}
