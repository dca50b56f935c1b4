// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholardash/internal/dataset"
	"github.com/pdiddy/scholardash/pkg/types"
)

const testCSV = `Name,year,Web of Science Documents,Times Cited,Category Normalized Citation Impact,Collab-CNCI,% Documents in Top 1%,% Documents in Top 10%
Spain,2020,1000,15000,1.5,1.3,2.1,12.0
Spain,2021,1100,16000,1.4,1.6,1.9,11.5
Japan,2020,2000,20000,0.9,1.1,1.2,9.0
Japan,2021,2100,21000,0.95,0.9,1.3,9.5
Brazil,2020,400,3500,0.85,0.95,0.4,6.5
Brazil,2021,500,4000,0.8,1.0,0.5,7.0
`

func loadTestDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "publications.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))
	ds, err := dataset.Load(path)
	require.NoError(t, err)
	return ds
}

func TestComputeFullView(t *testing.T) {
	ds := loadTestDataset(t)
	vm := Compute(ds, types.FilterParams{}, types.AnalysisConfig{})

	assert.False(t, vm.Empty)
	assert.Equal(t, 6, vm.RecordsShown)
	assert.Equal(t, 6, vm.RecordsTotal)

	// Unset bounds are normalized to the data range.
	assert.Equal(t, 2020, vm.Params.MinYear)
	assert.Equal(t, 2021, vm.Params.MaxYear)

	// One aggregate row per distinct country.
	assert.Len(t, vm.Countries, 3)
	assert.Len(t, vm.Years, 2)

	// Japan has the most citations, Spain the best CNCI.
	require.NotEmpty(t, vm.VolumeLeaders.Rows)
	assert.Equal(t, "Japan", vm.VolumeLeaders.Rows[0][0])
	require.NotEmpty(t, vm.QualityLeaders.Rows)
	assert.Equal(t, "Spain", vm.QualityLeaders.Rows[0][0])

	// 2 of 6 records have CNCI > 1.0.
	assert.InDelta(t, 100.0/3, vm.AboveAverageShare, 1e-9)

	assert.NotEmpty(t, vm.Insights)
	assert.NotEmpty(t, vm.Charts)
	assert.Nil(t, vm.Country)
}

func TestComputeEmptyView(t *testing.T) {
	ds := loadTestDataset(t)
	vm := Compute(ds, types.FilterParams{MinYear: 2026}, types.AnalysisConfig{})

	assert.True(t, vm.Empty)
	assert.Zero(t, vm.RecordsShown)
	assert.Empty(t, vm.Countries)
	assert.Empty(t, vm.Charts)
	assert.Empty(t, vm.VolumeLeaders.Rows)

	// Ratio metrics degrade to "n/a", counts to zero.
	byLabel := map[string]Metric{}
	for _, m := range vm.Summary {
		byLabel[m.Label] = m
	}
	assert.Equal(t, "0 of 6", byLabel["Records shown"].Value)
	assert.Equal(t, notAvailable, byLabel["Above world average"].Value)
	assert.Equal(t, notAvailable, byLabel["Collaboration success rate"].Value)
	assert.Equal(t, "0", byLabel["Total publications"].Value)

	require.Len(t, vm.Insights, 1)
	assert.Equal(t, "No data", vm.Insights[0].Title)
}

func TestComputeCountryDeepDive(t *testing.T) {
	ds := loadTestDataset(t)
	vm := Compute(ds, types.FilterParams{Country: "Spain"}, types.AnalysisConfig{})

	require.NotNil(t, vm.Country)
	d := vm.Country
	assert.Equal(t, "Spain", d.Country)
	assert.Equal(t, int64(2100), d.TotalDocs)
	assert.Equal(t, int64(31000), d.TotalCitations)
	assert.InDelta(t, 1.45, d.AvgCNCI, 1e-9)
	assert.Equal(t, 2, d.YearsTracked)
	assert.Len(t, d.Timeline, 2)

	// Spain is above the global CNCI and excellence means.
	assert.Contains(t, d.Strengths, "Above global average CNCI")
	assert.Contains(t, d.Strengths, "Above average excellence rate")

	// The country timeline charts are appended for a single-country view.
	ids := map[string]bool{}
	for _, spec := range vm.Charts {
		ids[spec.ID] = true
	}
	assert.True(t, ids["country-cnci"])
	assert.True(t, ids["country-output"])
}

func TestComputeChartSpecs(t *testing.T) {
	ds := loadTestDataset(t)
	vm := Compute(ds, types.FilterParams{}, types.AnalysisConfig{})

	byID := map[string]int{}
	for i, spec := range vm.Charts {
		byID[spec.ID] = i
	}

	scatter := vm.Charts[byID["volume-quality"]]
	require.Len(t, scatter.Series, 1)
	assert.Len(t, scatter.Series[0].X, 3)
	assert.Len(t, scatter.Series[0].Text, 3)
	require.Len(t, scatter.RefLines, 1)
	assert.Equal(t, 1.0, scatter.RefLines[0].Value)

	donut := vm.Charts[byID["collab-effect"]]
	require.Len(t, donut.Series, 1)
	// helped + hurt = records shown.
	assert.Equal(t, 6.0, donut.Series[0].Values[0]+donut.Series[0].Values[1])

	trend := vm.Charts[byID["output-trend"]]
	require.Len(t, trend.Series, 2)
	assert.True(t, trend.Series[1].SecondaryAxis)
}

// The consistency section only appears once countries have enough history.
func TestConsistencyRequiresMinimumRecords(t *testing.T) {
	ds := loadTestDataset(t)

	// Default threshold of 10 excludes everything in the 2-year fixture.
	vm := Compute(ds, types.FilterParams{}, types.AnalysisConfig{})
	assert.Empty(t, vm.Consistency)
	assert.Empty(t, vm.ConsistencyChampions.Rows)

	// Lowering the threshold brings all three countries in.
	vm = Compute(ds, types.FilterParams{}, types.AnalysisConfig{ConsistencyMinRecords: 2})
	assert.Len(t, vm.Consistency, 3)
	assert.Len(t, vm.ConsistencyChampions.Rows, 3)
}

func TestCommaFormatting(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-9876543, "-9,876,543"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, comma(tt.in))
	}
}
