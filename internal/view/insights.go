// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"fmt"
	"strings"

	"github.com/pdiddy/scholardash/internal/analysis"
)

// buildInsights renders the narrative panels from the computed aggregates.
// Each line is a complete sentence with the numbers already formatted, so
// presentation surfaces can print them verbatim.
func buildInsights(vm ViewModel, advantages []analysis.CountryAdvantage) []Insight {
	if vm.Empty {
		return []Insight{{
			Title: "No data",
			Lines: []string{"No records match the current filters. Widen the year range or lower the CNCI threshold."},
		}}
	}

	out := []Insight{
		volumeQualityInsight(vm),
		collaborationInsight(vm, advantages),
		trendInsight(vm.Trends),
		excellenceInsight(vm.Excellence),
	}
	if len(vm.Consistency) > 0 {
		out = append(out, consistencyInsight(vm.Consistency))
	}
	return out
}

func volumeQualityInsight(vm ViewModel) Insight {
	ins := Insight{Title: "The giants vs the masters"}
	if len(vm.VolumeLeaders.Rows) > 0 {
		ins.Lines = append(ins.Lines, fmt.Sprintf(
			"%s leads in total citations (%s).",
			vm.VolumeLeaders.Rows[0][0], vm.VolumeLeaders.Rows[0][1]))
	}
	if len(vm.QualityLeaders.Rows) > 0 {
		ins.Lines = append(ins.Lines, fmt.Sprintf(
			"%s leads in normalized impact with an average CNCI of %s.",
			vm.QualityLeaders.Rows[0][0], vm.QualityLeaders.Rows[0][1]))
	}
	ins.Lines = append(ins.Lines, fmt.Sprintf(
		"%s of records exceed the world-average impact of CNCI 1.0.",
		pct(vm.AboveAverageShare)))
	return ins
}

func collaborationInsight(vm ViewModel, advantages []analysis.CountryAdvantage) Insight {
	c := vm.Collaboration
	ins := Insight{Title: "The collaboration paradox"}
	ins.Lines = append(ins.Lines, fmt.Sprintf(
		"Only %s of records show a positive collaboration effect (mean advantage %s CNCI).",
		pct(c.SuccessRate), signed3(c.MeanAdvantage)))

	if n := len(advantages); n > 0 {
		best := advantages[n-1]
		worst := advantages[0]
		if best.MeanAdvantage > 0 {
			ins.Lines = append(ins.Lines, fmt.Sprintf(
				"%s gains the most from international partnerships (%s CNCI).",
				best.Country, signed3(best.MeanAdvantage)))
		}
		if worst.MeanAdvantage < 0 {
			ins.Lines = append(ins.Lines, fmt.Sprintf(
				"%s loses the most impact when collaborating (%s CNCI).",
				worst.Country, signed3(worst.MeanAdvantage)))
		}
	}
	return ins
}

func trendInsight(t analysis.TrendSummary) Insight {
	ins := Insight{Title: "Two decades of evolution"}
	if !t.Comparable() {
		ins.Lines = append(ins.Lines,
			"Not enough data in the early and recent periods to compare trends.")
		return ins
	}

	direction := "increased"
	if t.OutputChangePct < 0 {
		direction = "decreased"
	}
	ins.Lines = append(ins.Lines, fmt.Sprintf(
		"Mean yearly output %s by %.1f%% between the early and recent periods.",
		direction, abs(t.OutputChangePct)))

	switch {
	case t.CNCIDelta > 0:
		ins.Lines = append(ins.Lines, fmt.Sprintf("Average CNCI improved (%s).", signed3(t.CNCIDelta)))
	case t.CNCIDelta < 0:
		ins.Lines = append(ins.Lines, fmt.Sprintf("Average CNCI declined (%s).", signed3(t.CNCIDelta)))
	default:
		ins.Lines = append(ins.Lines, "Average CNCI remained stable.")
	}
	return ins
}

func excellenceInsight(s analysis.ExcellenceSummary) Insight {
	ins := Insight{Title: "The excellence hierarchy"}
	if len(s.Leaders) > 0 {
		names := make([]string, 0, 3)
		for i, c := range s.Leaders {
			if i == 3 {
				break
			}
			names = append(names, c.Country)
		}
		ins.Lines = append(ins.Lines, "Top excellence leaders: "+strings.Join(names, ", ")+".")
		ins.Lines = append(ins.Lines, fmt.Sprintf(
			"The leader holds %.2f%% of output in the top 1%%, a %.1fx multiplier over the %.2f%% average.",
			s.Leaders[0].AvgTop1, s.LeaderMultiplier, s.AvgTop1))
	}
	ins.Lines = append(ins.Lines, fmt.Sprintf(
		"%d records (%s) exceed the high-excellence threshold.",
		s.EliteRecords, pct(s.EliteShare)))
	return ins
}

func consistencyInsight(rows []analysis.ConsistencyRow) Insight {
	top := rows[0]
	return Insight{
		Title: "Consistency champions",
		Lines: []string{
			fmt.Sprintf("%s is the most consistent performer (std dev %s over %d years).",
				top.Country, f3(top.StdDev), top.Records),
			"Low variability with high average CNCI signals sustainable research infrastructure.",
		},
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
