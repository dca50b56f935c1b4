// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package view turns a filtered dataset into a renderer-independent
// ViewModel: summary metrics, ranking tables, narrative insights, and chart
// specifications. Compute is the single request/response seam between the
// data pipeline and every presentation surface (HTTP, terminal, export).
package view

import (
	"fmt"
	"sort"

	"github.com/pdiddy/scholardash/internal/analysis"
	"github.com/pdiddy/scholardash/internal/chart"
	"github.com/pdiddy/scholardash/internal/dataset"
	"github.com/pdiddy/scholardash/pkg/types"
)

// Metric is one scalar summary card.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
}

// Table is a pre-formatted ranking table.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Insight is one narrative panel: a heading plus formatted findings.
type Insight struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// CountryDetail is the deep-dive section shown when a single country is
// selected.
type CountryDetail struct {
	Country        string                   `json:"country"`
	TotalDocs      int64                    `json:"total_docs"`
	TotalCitations int64                    `json:"total_citations"`
	AvgCNCI        float64                  `json:"avg_cnci"`
	YearsTracked   int                      `json:"years_tracked"`
	Timeline       []analysis.YearAggregate `json:"timeline"`
	Strengths      []string                 `json:"strengths"`
	Weaknesses     []string                 `json:"weaknesses"`
}

// ViewModel is everything a presentation surface needs to render one
// filtered view of the dataset.
type ViewModel struct {
	Params       types.FilterParams `json:"params"`
	RecordsShown int                `json:"records_shown"`
	RecordsTotal int                `json:"records_total"`

	// Empty is true when the filters exclude every record. All other fields
	// remain valid zero/"n/a" values.
	Empty bool `json:"empty"`

	Summary []Metric `json:"summary"`

	VolumeLeaders        Table `json:"volume_leaders"`
	QualityLeaders       Table `json:"quality_leaders"`
	ExcellenceLeaders    Table `json:"excellence_leaders"`
	ConsistencyChampions Table `json:"consistency_champions"`

	Countries     []analysis.CountryAggregate   `json:"countries"`
	Years         []analysis.YearAggregate      `json:"years"`
	Collaboration analysis.CollaborationSummary `json:"collaboration"`
	Excellence    analysis.ExcellenceSummary    `json:"excellence"`
	Consistency   []analysis.ConsistencyRow     `json:"consistency"`
	Trends        analysis.TrendSummary         `json:"trends"`

	// AboveAverageShare is the percentage of shown records with CNCI > 1.0.
	AboveAverageShare float64 `json:"above_average_share"`

	Insights []Insight    `json:"insights"`
	Charts   []chart.Spec `json:"charts"`

	// Country is set only when the filter selects a single country that has
	// matching records.
	Country *CountryDetail `json:"country_detail,omitempty"`
}

// Compute runs the full filter-aggregate pass and assembles the ViewModel.
// It is synchronous, side-effect free, and never fails: an empty filter
// result produces a zero-valued model with Empty set.
func Compute(ds *dataset.Dataset, params types.FilterParams, cfg types.AnalysisConfig) ViewModel {
	cfg = cfg.Normalized()
	params = normalizeParams(ds, params)

	records := ds.Filter(params)
	countries := analysis.AggregateByCountry(records)
	years := analysis.AggregateByYear(records)

	vm := ViewModel{
		Params:            params,
		RecordsShown:      len(records),
		RecordsTotal:      ds.Len(),
		Empty:             len(records) == 0,
		Countries:         countries,
		Years:             years,
		Collaboration:     analysis.Collaboration(records),
		Excellence:        analysis.Excellence(records, countries, cfg.EliteTop1Threshold, cfg.ExcellenceTopN),
		Consistency:       analysis.Consistency(records, cfg.ConsistencyEpsilon, cfg.ConsistencyMinRecords),
		Trends:            analysis.Trends(years, cfg.EarlyPeriodEnd, cfg.RecentPeriodStart),
		AboveAverageShare: analysis.AboveWorldAverageShare(records),
	}

	advantages := analysis.AdvantageByCountry(records)

	vm.Summary = buildSummary(vm, years)
	vm.VolumeLeaders = volumeLeaders(countries, cfg.TopN)
	vm.QualityLeaders = qualityLeaders(countries, cfg.TopN)
	vm.ExcellenceLeaders = excellenceLeaders(vm.Excellence)
	vm.ConsistencyChampions = consistencyChampions(vm.Consistency, cfg.TopN)

	if params.Country != "" && !vm.Empty {
		vm.Country = countryDetail(ds, params.Country, records, years)
	}

	vm.Insights = buildInsights(vm, advantages)
	vm.Charts = buildCharts(vm, advantages)
	return vm
}

// normalizeParams fills unset year bounds from the dataset so that the
// params echoed back to the UI always describe a concrete range.
func normalizeParams(ds *dataset.Dataset, params types.FilterParams) types.FilterParams {
	minYear, maxYear := ds.YearBounds()
	if params.MinYear == 0 {
		params.MinYear = minYear
	}
	if params.MaxYear == 0 {
		params.MaxYear = maxYear
	}
	return params
}

func buildSummary(vm ViewModel, years []analysis.YearAggregate) []Metric {
	var totalDocs, totalCitations int64
	for _, c := range vm.Countries {
		totalDocs += c.TotalDocs
		totalCitations += c.TotalCitations
	}

	aboveAvg := notAvailable
	successRate := notAvailable
	meanAdvantage := ""
	if !vm.Empty {
		aboveAvg = pct(vm.AboveAverageShare)
		successRate = pct(vm.Collaboration.SuccessRate)
		meanAdvantage = signed3(vm.Collaboration.MeanAdvantage) + " CNCI"
	}

	return []Metric{
		{
			Label: "Countries analyzed",
			Value: fmt.Sprintf("%d", len(vm.Countries)),
			Delta: fmt.Sprintf("%d years tracked", len(years)),
		},
		{
			Label: "Records shown",
			Value: fmt.Sprintf("%d of %d", vm.RecordsShown, vm.RecordsTotal),
		},
		{
			Label: "Total publications",
			Value: comma(totalDocs),
			Delta: comma(totalCitations) + " citations",
		},
		{
			Label: "Above world average",
			Value: aboveAvg,
			Delta: "CNCI > 1.0",
		},
		{
			Label: "Collaboration success rate",
			Value: successRate,
			Delta: meanAdvantage,
		},
	}
}

func volumeLeaders(countries []analysis.CountryAggregate, topN int) Table {
	ranked := topCountries(countries, topN, func(a, b analysis.CountryAggregate) bool {
		return a.TotalCitations > b.TotalCitations
	})
	t := Table{
		Title:   "Volume champions (total citations)",
		Columns: []string{"Country", "Total citations", "Avg CNCI"},
	}
	for _, c := range ranked {
		t.Rows = append(t.Rows, []string{c.Country, comma(c.TotalCitations), f3(c.AvgCNCI)})
	}
	return t
}

func qualityLeaders(countries []analysis.CountryAggregate, topN int) Table {
	ranked := topCountries(countries, topN, func(a, b analysis.CountryAggregate) bool {
		return a.AvgCNCI > b.AvgCNCI
	})
	t := Table{
		Title:   "Quality masters (average CNCI)",
		Columns: []string{"Country", "Avg CNCI", "Total publications"},
	}
	for _, c := range ranked {
		t.Rows = append(t.Rows, []string{c.Country, f3(c.AvgCNCI), comma(c.TotalDocs)})
	}
	return t
}

func excellenceLeaders(s analysis.ExcellenceSummary) Table {
	t := Table{
		Title:   "Excellence ranking (share of top-tier output)",
		Columns: []string{"Country", "Avg % in top 1%", "Avg % in top 10%"},
	}
	for _, c := range s.Leaders {
		t.Rows = append(t.Rows, []string{c.Country, fmt.Sprintf("%.2f", c.AvgTop1), fmt.Sprintf("%.2f", c.AvgTop10)})
	}
	return t
}

func consistencyChampions(rows []analysis.ConsistencyRow, topN int) Table {
	t := Table{
		Title:   "Most consistent performers",
		Columns: []string{"Country", "Avg CNCI", "Std dev", "Years"},
	}
	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Country, f3(r.AvgCNCI), f3(r.StdDev), fmt.Sprintf("%d", r.Records)})
	}
	return t
}

// topCountries returns a sorted copy truncated to n.
func topCountries(countries []analysis.CountryAggregate, n int, less func(a, b analysis.CountryAggregate) bool) []analysis.CountryAggregate {
	ranked := make([]analysis.CountryAggregate, len(countries))
	copy(ranked, countries)
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func countryDetail(ds *dataset.Dataset, country string, records []types.Record, years []analysis.YearAggregate) *CountryDetail {
	d := &CountryDetail{
		Country:      country,
		Timeline:     years,
		YearsTracked: len(years),
	}

	var cnci, top1, adv []float64
	for _, r := range records {
		d.TotalDocs += r.Documents
		d.TotalCitations += r.TimesCited
		cnci = append(cnci, r.CNCI)
		top1 = append(top1, r.TopPct1)
		adv = append(adv, r.CollabAdvantage())
	}
	d.AvgCNCI = analysis.Mean(cnci)

	// Strengths and weaknesses are judged against the unfiltered dataset.
	var allCNCI, allTop1 []float64
	for _, r := range ds.Records() {
		allCNCI = append(allCNCI, r.CNCI)
		allTop1 = append(allTop1, r.TopPct1)
	}

	if d.AvgCNCI > analysis.Mean(allCNCI) {
		d.Strengths = append(d.Strengths, "Above global average CNCI")
	} else {
		d.Weaknesses = append(d.Weaknesses, "Below global average CNCI")
	}
	if analysis.Mean(top1) > analysis.Mean(allTop1) {
		d.Strengths = append(d.Strengths, "Above average excellence rate")
	} else {
		d.Weaknesses = append(d.Weaknesses, "Below average excellence rate")
	}
	if analysis.Mean(adv) > 0 {
		d.Strengths = append(d.Strengths, "Benefits from international collaboration")
	} else {
		d.Weaknesses = append(d.Weaknesses, "Collaboration reduces impact")
	}

	return d
}
