// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analysis computes the descriptive aggregations of the dashboard:
// per-country and per-year reductions, collaboration advantage,
// excellence concentration, consistency of performance, and period trends.
// All functions are pure over a record slice produced by dataset.Filter and
// handle zero rows without error.
package analysis

import (
	"sort"

	"github.com/pdiddy/scholardash/pkg/types"
)

// CountryAggregate is the per-country reduction over the filtered records.
type CountryAggregate struct {
	Country        string  `json:"country"`
	TotalDocs      int64   `json:"total_docs"`
	TotalCitations int64   `json:"total_citations"`
	AvgCNCI        float64 `json:"avg_cnci"`
	AvgTop1        float64 `json:"avg_top1"`
	AvgTop10       float64 `json:"avg_top10"`
	AvgCollabCNCI  float64 `json:"avg_collab_cnci"`
	YearsTracked   int     `json:"years_tracked"`
}

// AggregateByCountry groups records by country and reduces each group.
// The result is sorted by country name; ranking orders are applied by the
// callers that need them.
func AggregateByCountry(records []types.Record) []CountryAggregate {
	groups := make(map[string][]types.Record)
	for _, rec := range records {
		groups[rec.Country] = append(groups[rec.Country], rec)
	}

	out := make([]CountryAggregate, 0, len(groups))
	for country, recs := range groups {
		agg := CountryAggregate{Country: country, YearsTracked: len(recs)}
		var cnci, top1, top10, collab []float64
		for _, r := range recs {
			agg.TotalDocs += r.Documents
			agg.TotalCitations += r.TimesCited
			cnci = append(cnci, r.CNCI)
			top1 = append(top1, r.TopPct1)
			top10 = append(top10, r.TopPct10)
			collab = append(collab, r.CollabCNCI)
		}
		agg.AvgCNCI = Mean(cnci)
		agg.AvgTop1 = Mean(top1)
		agg.AvgTop10 = Mean(top10)
		agg.AvgCollabCNCI = Mean(collab)
		out = append(out, agg)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}

// YearAggregate is the per-year reduction over the filtered records.
type YearAggregate struct {
	Year           int     `json:"year"`
	TotalDocs      int64   `json:"total_docs"`
	TotalCitations int64   `json:"total_citations"`
	AvgCNCI        float64 `json:"avg_cnci"`
	AvgTop1        float64 `json:"avg_top1"`
	AvgTop10       float64 `json:"avg_top10"`
}

// AggregateByYear groups records by year and reduces each group.
// The result is sorted by year ascending.
func AggregateByYear(records []types.Record) []YearAggregate {
	groups := make(map[int][]types.Record)
	for _, rec := range records {
		groups[rec.Year] = append(groups[rec.Year], rec)
	}

	out := make([]YearAggregate, 0, len(groups))
	for year, recs := range groups {
		agg := YearAggregate{Year: year}
		var cnci, top1, top10 []float64
		for _, r := range recs {
			agg.TotalDocs += r.Documents
			agg.TotalCitations += r.TimesCited
			cnci = append(cnci, r.CNCI)
			top1 = append(top1, r.TopPct1)
			top10 = append(top10, r.TopPct10)
		}
		agg.AvgCNCI = Mean(cnci)
		agg.AvgTop1 = Mean(top1)
		agg.AvgTop10 = Mean(top10)
		out = append(out, agg)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// CollaborationSummary describes how often international collaboration
// raised impact across the filtered records.
type CollaborationSummary struct {
	Records       int     `json:"records"`
	Helped        int     `json:"helped"`
	SuccessRate   float64 `json:"success_rate"` // percent of records with positive advantage
	MeanAdvantage float64 `json:"mean_advantage"`
}

// Collaboration reduces the per-record collaboration advantage.
func Collaboration(records []types.Record) CollaborationSummary {
	s := CollaborationSummary{Records: len(records)}
	var adv []float64
	for _, r := range records {
		adv = append(adv, r.CollabAdvantage())
		if r.CollabHelps() {
			s.Helped++
		}
	}
	s.SuccessRate = SafePercent(float64(s.Helped), float64(s.Records))
	s.MeanAdvantage = Mean(adv)
	return s
}

// CountryAdvantage is the mean collaboration advantage for one country.
type CountryAdvantage struct {
	Country       string  `json:"country"`
	MeanAdvantage float64 `json:"mean_advantage"`
}

// AdvantageByCountry returns the mean collaboration advantage per country,
// sorted ascending so the biggest losers come first.
func AdvantageByCountry(records []types.Record) []CountryAdvantage {
	groups := make(map[string][]float64)
	for _, rec := range records {
		groups[rec.Country] = append(groups[rec.Country], rec.CollabAdvantage())
	}

	out := make([]CountryAdvantage, 0, len(groups))
	for country, adv := range groups {
		out = append(out, CountryAdvantage{Country: country, MeanAdvantage: Mean(adv)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanAdvantage != out[j].MeanAdvantage {
			return out[i].MeanAdvantage < out[j].MeanAdvantage
		}
		return out[i].Country < out[j].Country
	})
	return out
}

// ConsistencyRow scores one country's stability of CNCI over time.
type ConsistencyRow struct {
	Country string  `json:"country"`
	AvgCNCI float64 `json:"avg_cnci"`
	StdDev  float64 `json:"std_dev"`
	Records int     `json:"records"`
	Score   float64 `json:"score"`
}

// Consistency ranks countries by CNCI stability. Countries with fewer than
// minRecords qualifying rows are excluded; the score is mean/(stddev+epsilon),
// a heuristic where the additive epsilon only guards against a zero
// denominator. The result is sorted ascending by standard deviation, most
// consistent first.
func Consistency(records []types.Record, epsilon float64, minRecords int) []ConsistencyRow {
	groups := make(map[string][]float64)
	for _, rec := range records {
		groups[rec.Country] = append(groups[rec.Country], rec.CNCI)
	}

	var out []ConsistencyRow
	for country, cnci := range groups {
		if len(cnci) < minRecords {
			continue
		}
		row := ConsistencyRow{
			Country: country,
			AvgCNCI: Mean(cnci),
			StdDev:  SampleStdDev(cnci),
			Records: len(cnci),
		}
		row.Score = row.AvgCNCI / (row.StdDev + epsilon)
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StdDev != out[j].StdDev {
			return out[i].StdDev < out[j].StdDev
		}
		return out[i].Country < out[j].Country
	})
	return out
}

// ExcellenceSummary concentrates the top-percentile metrics of the filtered set.
type ExcellenceSummary struct {
	AvgTop1  float64 `json:"avg_top1"`
	MaxTop1  float64 `json:"max_top1"`
	AvgTop10 float64 `json:"avg_top10"`
	MaxTop10 float64 `json:"max_top10"`

	// EliteRecords counts records whose top-1% share exceeds the threshold.
	EliteRecords int     `json:"elite_records"`
	EliteShare   float64 `json:"elite_share"` // percent of filtered records

	// Leaders is the per-country ranking by mean top-1% share, best first,
	// truncated to the configured length.
	Leaders []CountryAggregate `json:"leaders"`

	// LeaderMultiplier is the top country's mean top-1% share divided by the
	// overall record mean (zero when either side is zero).
	LeaderMultiplier float64 `json:"leader_multiplier"`
}

// Excellence reduces the top-percentile metrics. countries must be the
// AggregateByCountry result for the same record set.
func Excellence(records []types.Record, countries []CountryAggregate, eliteThreshold float64, topN int) ExcellenceSummary {
	var s ExcellenceSummary
	var top1, top10 []float64
	for _, r := range records {
		top1 = append(top1, r.TopPct1)
		top10 = append(top10, r.TopPct10)
		if r.TopPct1 > s.MaxTop1 {
			s.MaxTop1 = r.TopPct1
		}
		if r.TopPct10 > s.MaxTop10 {
			s.MaxTop10 = r.TopPct10
		}
		if r.TopPct1 > eliteThreshold {
			s.EliteRecords++
		}
	}
	s.AvgTop1 = Mean(top1)
	s.AvgTop10 = Mean(top10)
	s.EliteShare = SafePercent(float64(s.EliteRecords), float64(len(records)))

	leaders := make([]CountryAggregate, len(countries))
	copy(leaders, countries)
	sort.Slice(leaders, func(i, j int) bool {
		if leaders[i].AvgTop1 != leaders[j].AvgTop1 {
			return leaders[i].AvgTop1 > leaders[j].AvgTop1
		}
		return leaders[i].Country < leaders[j].Country
	})
	if topN > 0 && len(leaders) > topN {
		leaders = leaders[:topN]
	}
	s.Leaders = leaders

	if len(leaders) > 0 {
		s.LeaderMultiplier = SafeRatio(leaders[0].AvgTop1, s.AvgTop1)
	}
	return s
}

// TrendSummary compares the early and recent windows of the yearly series.
type TrendSummary struct {
	EarlyYears  int `json:"early_years"`
	RecentYears int `json:"recent_years"`

	// OutputChangePct is the percentage change in mean yearly document output
	// between the two windows. Valid only when both windows are populated.
	OutputChangePct float64 `json:"output_change_pct"`

	// CNCIDelta is recent mean CNCI minus early mean CNCI.
	CNCIDelta float64 `json:"cnci_delta"`
}

// Comparable reports whether both trend windows contain data.
func (t TrendSummary) Comparable() bool {
	return t.EarlyYears > 0 && t.RecentYears > 0
}

// Trends compares mean output and quality between the years up to earlyEnd
// and the years from recentStart on.
func Trends(years []YearAggregate, earlyEnd, recentStart int) TrendSummary {
	var earlyDocs, earlyCNCI, recentDocs, recentCNCI []float64
	for _, y := range years {
		if y.Year <= earlyEnd {
			earlyDocs = append(earlyDocs, float64(y.TotalDocs))
			earlyCNCI = append(earlyCNCI, y.AvgCNCI)
		}
		if y.Year >= recentStart {
			recentDocs = append(recentDocs, float64(y.TotalDocs))
			recentCNCI = append(recentCNCI, y.AvgCNCI)
		}
	}

	s := TrendSummary{EarlyYears: len(earlyDocs), RecentYears: len(recentDocs)}
	if !s.Comparable() {
		return s
	}
	s.OutputChangePct = (SafeRatio(Mean(recentDocs), Mean(earlyDocs)) - 1) * 100
	s.CNCIDelta = Mean(recentCNCI) - Mean(earlyCNCI)
	return s
}

// AboveWorldAverageShare returns the percentage of records whose CNCI
// exceeds the world average of 1.0.
func AboveWorldAverageShare(records []types.Record) float64 {
	above := 0
	for _, r := range records {
		if r.CNCI > 1.0 {
			above++
		}
	}
	return SafePercent(float64(above), float64(len(records)))
}
