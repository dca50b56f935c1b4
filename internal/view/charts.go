// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"fmt"

	"github.com/pdiddy/scholardash/internal/analysis"
	"github.com/pdiddy/scholardash/internal/chart"
)

// buildCharts assembles the chart specifications for the computed view.
// An empty view produces no charts; surfaces render a "no data" placeholder
// instead.
func buildCharts(vm ViewModel, advantages []analysis.CountryAdvantage) []chart.Spec {
	if vm.Empty {
		return nil
	}

	specs := []chart.Spec{
		volumeQualityChart(vm.Countries),
		collabEffectChart(vm.Collaboration),
		collabAdvantageChart(advantages),
		outputTrendChart(vm.Years),
		qualityTrendChart(vm.Years),
		excellenceChart(vm.Excellence),
	}
	if len(vm.Consistency) > 0 {
		specs = append(specs, consistencyChart(vm.Consistency))
	}
	if vm.Country != nil {
		specs = append(specs, countryTimelineCharts(vm.Country)...)
	}
	return specs
}

func volumeQualityChart(countries []analysis.CountryAggregate) chart.Spec {
	s := chart.Series{Name: "Countries"}
	for _, c := range countries {
		s.X = append(s.X, float64(c.TotalDocs))
		s.Y = append(s.Y, c.AvgCNCI)
		s.Sizes = append(s.Sizes, float64(c.TotalCitations))
		s.Text = append(s.Text, c.Country)
	}
	return chart.Spec{
		ID:     "volume-quality",
		Kind:   chart.KindScatter,
		Title:  "Quality vs quantity: the research performance matrix",
		XTitle: "Total publications",
		YTitle: "Average CNCI (quality)",
		Series: []chart.Series{s},
		RefLines: []chart.RefLine{
			{Axis: "y", Value: 1.0, Label: "World average (CNCI=1.0)", Color: "red"},
		},
	}
}

func collabEffectChart(c analysis.CollaborationSummary) chart.Spec {
	hurt := c.Records - c.Helped
	return chart.Spec{
		ID:         "collab-effect",
		Kind:       chart.KindDonut,
		Title:      "When does collaboration help?",
		Labels:     []string{"Collaboration hurts", "Collaboration helps"},
		Hole:       0.4,
		CenterText: fmt.Sprintf("%.1f%% success", c.SuccessRate),
		Series: []chart.Series{
			{Values: []float64{float64(hurt), float64(c.Helped)}},
		},
	}
}

func collabAdvantageChart(advantages []analysis.CountryAdvantage) chart.Spec {
	spec := chart.Spec{
		ID:     "collab-advantage",
		Kind:   chart.KindHBar,
		Title:  "Collaboration impact by country",
		XTitle: "CNCI advantage (collab − solo)",
		RefLines: []chart.RefLine{
			{Axis: "x", Value: 0, Color: "black"},
		},
	}
	var s chart.Series
	for _, a := range advantages {
		spec.Labels = append(spec.Labels, a.Country)
		s.X = append(s.X, a.MeanAdvantage)
	}
	spec.Series = []chart.Series{s}
	return spec
}

func outputTrendChart(years []analysis.YearAggregate) chart.Spec {
	docs := chart.Series{Name: "Publications", Color: "#1f77b4"}
	cited := chart.Series{Name: "Citations", Color: "#ff7f0e", SecondaryAxis: true}
	for _, y := range years {
		docs.X = append(docs.X, float64(y.Year))
		docs.Y = append(docs.Y, float64(y.TotalDocs))
		cited.X = append(cited.X, float64(y.Year))
		cited.Y = append(cited.Y, float64(y.TotalCitations))
	}
	return chart.Spec{
		ID:     "output-trend",
		Kind:   chart.KindLine,
		Title:  "Research output and citations over time",
		XTitle: "Year",
		YTitle: "Publications",
		Series: []chart.Series{docs, cited},
	}
}

func qualityTrendChart(years []analysis.YearAggregate) chart.Spec {
	cnci := chart.Series{Name: "Avg CNCI", Color: "#2ca02c"}
	top10 := chart.Series{Name: "% in top 10%", Color: "#d62728", SecondaryAxis: true}
	for _, y := range years {
		cnci.X = append(cnci.X, float64(y.Year))
		cnci.Y = append(cnci.Y, y.AvgCNCI)
		top10.X = append(top10.X, float64(y.Year))
		top10.Y = append(top10.Y, y.AvgTop10)
	}
	return chart.Spec{
		ID:     "quality-trend",
		Kind:   chart.KindLine,
		Title:  "Quality metrics over time",
		XTitle: "Year",
		YTitle: "CNCI",
		Series: []chart.Series{cnci, top10},
		RefLines: []chart.RefLine{
			{Axis: "y", Value: 1.0, Label: "World average", Color: "gray"},
		},
	}
}

func excellenceChart(s analysis.ExcellenceSummary) chart.Spec {
	top1 := chart.Series{Name: "% in top 1%", Color: "gold"}
	top10 := chart.Series{Name: "% in top 10%", Color: "silver"}
	spec := chart.Spec{
		ID:     "excellence",
		Kind:   chart.KindBar,
		Title:  "Research excellence: top-tier publication rates",
		XTitle: "Country",
		YTitle: "Percentage (%)",
	}
	for _, c := range s.Leaders {
		spec.Labels = append(spec.Labels, c.Country)
		top1.Y = append(top1.Y, c.AvgTop1)
		top10.Y = append(top10.Y, c.AvgTop10)
	}
	spec.Series = []chart.Series{top1, top10}
	return spec
}

func consistencyChart(rows []analysis.ConsistencyRow) chart.Spec {
	var s chart.Series
	for _, r := range rows {
		s.X = append(s.X, r.AvgCNCI)
		s.Y = append(s.Y, r.StdDev)
		s.Sizes = append(s.Sizes, float64(r.Records))
		s.Text = append(s.Text, r.Country)
	}
	return chart.Spec{
		ID:     "consistency",
		Kind:   chart.KindScatter,
		Title:  "Consistency matrix: high quality + low variability",
		XTitle: "Average CNCI (quality)",
		YTitle: "Standard deviation (variability)",
		Series: []chart.Series{s},
	}
}

func countryTimelineCharts(d *CountryDetail) []chart.Spec {
	cnci := chart.Series{Name: "CNCI", Color: "blue"}
	docs := chart.Series{Name: "Publications", Color: "lightblue"}
	top10 := chart.Series{Name: "% top 10%", Color: "orange", SecondaryAxis: true}
	for _, y := range d.Timeline {
		year := float64(y.Year)
		cnci.X = append(cnci.X, year)
		cnci.Y = append(cnci.Y, y.AvgCNCI)
		docs.X = append(docs.X, year)
		docs.Y = append(docs.Y, float64(y.TotalDocs))
		top10.X = append(top10.X, year)
		top10.Y = append(top10.Y, y.AvgTop10)
	}

	return []chart.Spec{
		{
			ID:     "country-cnci",
			Kind:   chart.KindLine,
			Title:  d.Country + ": CNCI over time",
			XTitle: "Year",
			YTitle: "CNCI",
			Series: []chart.Series{cnci},
			RefLines: []chart.RefLine{
				{Axis: "y", Value: 1.0, Color: "red"},
			},
		},
		{
			ID:     "country-output",
			Kind:   chart.KindBar,
			Title:  d.Country + ": output and excellence",
			XTitle: "Year",
			YTitle: "Publications",
			Series: []chart.Series{docs, top10},
		},
	}
}
