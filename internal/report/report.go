// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders a ViewModel as a colored terminal report with
// ranking tables. It is the CLI counterpart of the HTML dashboard.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/pdiddy/scholardash/internal/view"
)

// Render writes the full report to w.
func Render(w io.Writer, vm view.ViewModel) {
	title := color.New(color.FgCyan, color.Bold)
	section := color.New(color.FgYellow)

	title.Fprintln(w, "Global Research Performance")
	fmt.Fprintf(w, "Filters: %s, years %d-%d, min CNCI %.1f\n",
		countryLabel(vm), vm.Params.MinYear, vm.Params.MaxYear, vm.Params.MinCNCI)
	fmt.Fprintln(w)

	section.Fprintln(w, "Summary")
	renderSummary(w, vm)
	fmt.Fprintln(w)

	if vm.Empty {
		color.New(color.FgRed).Fprintln(w, "No records match the current filters.")
		return
	}

	for _, tbl := range []view.Table{
		vm.VolumeLeaders,
		vm.QualityLeaders,
		vm.ExcellenceLeaders,
		vm.ConsistencyChampions,
	} {
		if len(tbl.Rows) == 0 {
			continue
		}
		section.Fprintln(w, tbl.Title)
		renderTable(w, tbl)
		fmt.Fprintln(w)
	}

	if vm.Country != nil {
		section.Fprintf(w, "Deep dive: %s\n", vm.Country.Country)
		renderCountryDetail(w, vm.Country)
		fmt.Fprintln(w)
	}

	section.Fprintln(w, "Insights")
	for _, ins := range vm.Insights {
		fmt.Fprintf(w, "%s:\n", ins.Title)
		for _, line := range ins.Lines {
			fmt.Fprintf(w, "  - %s\n", line)
		}
	}
}

func countryLabel(vm view.ViewModel) string {
	if vm.Params.Country == "" {
		return "all countries"
	}
	return vm.Params.Country
}

func renderSummary(w io.Writer, vm view.ViewModel) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value", "Note"})
	for _, m := range vm.Summary {
		table.Append([]string{m.Label, m.Value, m.Delta})
	}
	table.Render()
}

func renderTable(w io.Writer, tbl view.Table) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(tbl.Columns)
	for _, row := range tbl.Rows {
		table.Append(row)
	}
	table.Render()
}

func renderCountryDetail(w io.Writer, d *view.CountryDetail) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Total publications", fmt.Sprintf("%d", d.TotalDocs)})
	table.Append([]string{"Total citations", fmt.Sprintf("%d", d.TotalCitations)})
	table.Append([]string{"Avg CNCI", fmt.Sprintf("%.3f", d.AvgCNCI)})
	table.Append([]string{"Years tracked", fmt.Sprintf("%d", d.YearsTracked)})
	table.Render()

	for _, s := range d.Strengths {
		color.New(color.FgGreen).Fprintf(w, "  + %s\n", s)
	}
	for _, s := range d.Weaknesses {
		color.New(color.FgRed).Fprintf(w, "  - %s\n", s)
	}
}
