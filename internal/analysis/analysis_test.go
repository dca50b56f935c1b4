// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholardash/pkg/types"
)

func rec(country string, year int, docs, cited int64, cnci, collab, top1, top10 float64) types.Record {
	return types.Record{
		Country: country, Year: year,
		Documents: docs, TimesCited: cited,
		CNCI: cnci, CollabCNCI: collab,
		TopPct1: top1, TopPct10: top10,
	}
}

// The worked Spain example: two years, mean CNCI 1.45, one record helped by
// collaboration and one hurt, advantage ±0.2, success rate 50%.
func TestSpainExample(t *testing.T) {
	records := []types.Record{
		rec("Spain", 2020, 100, 1000, 1.5, 1.3, 2.0, 12.0),
		rec("Spain", 2021, 110, 1100, 1.4, 1.6, 1.8, 11.0),
	}

	countries := AggregateByCountry(records)
	require.Len(t, countries, 1)
	assert.InDelta(t, 1.45, countries[0].AvgCNCI, 1e-9)
	assert.Equal(t, int64(210), countries[0].TotalDocs)
	assert.Equal(t, 2, countries[0].YearsTracked)

	assert.InDelta(t, -0.2, records[0].CollabAdvantage(), 1e-9)
	assert.InDelta(t, 0.2, records[1].CollabAdvantage(), 1e-9)

	collab := Collaboration(records)
	assert.Equal(t, 1, collab.Helped)
	assert.InDelta(t, 50.0, collab.SuccessRate, 1e-9)
	assert.InDelta(t, 0.0, collab.MeanAdvantage, 1e-9)
}

func TestAggregateByCountryCountsDistinctCountries(t *testing.T) {
	records := []types.Record{
		rec("Spain", 2020, 1, 1, 1, 1, 1, 1),
		rec("Spain", 2021, 1, 1, 1, 1, 1, 1),
		rec("Japan", 2020, 1, 1, 1, 1, 1, 1),
		rec("Brazil", 2020, 1, 1, 1, 1, 1, 1),
	}
	countries := AggregateByCountry(records)
	require.Len(t, countries, 3)
	// Sorted by name.
	assert.Equal(t, "Brazil", countries[0].Country)
	assert.Equal(t, "Japan", countries[1].Country)
	assert.Equal(t, "Spain", countries[2].Country)
}

func TestAggregateByYear(t *testing.T) {
	records := []types.Record{
		rec("Spain", 2020, 100, 1000, 1.5, 1.3, 2.0, 12.0),
		rec("Japan", 2020, 200, 2000, 0.9, 1.0, 1.0, 9.0),
		rec("Spain", 2021, 110, 1100, 1.4, 1.6, 1.8, 11.0),
	}
	years := AggregateByYear(records)
	require.Len(t, years, 2)
	assert.Equal(t, 2020, years[0].Year)
	assert.Equal(t, int64(300), years[0].TotalDocs)
	assert.InDelta(t, 1.2, years[0].AvgCNCI, 1e-9)
	assert.Equal(t, 2021, years[1].Year)
}

func TestAdvantageByCountrySortedAscending(t *testing.T) {
	records := []types.Record{
		rec("Up", 2020, 1, 1, 1.0, 1.5, 0, 0),
		rec("Down", 2020, 1, 1, 1.5, 1.0, 0, 0),
		rec("Flat", 2020, 1, 1, 1.0, 1.0, 0, 0),
	}
	adv := AdvantageByCountry(records)
	require.Len(t, adv, 3)
	assert.Equal(t, "Down", adv[0].Country)
	assert.Equal(t, "Flat", adv[1].Country)
	assert.Equal(t, "Up", adv[2].Country)
	assert.InDelta(t, -0.5, adv[0].MeanAdvantage, 1e-9)
}

func TestConsistencyExcludesSmallGroups(t *testing.T) {
	var records []types.Record
	// Steady has 10 qualifying rows, Sparse only 9.
	for y := 2010; y < 2020; y++ {
		records = append(records, rec("Steady", y, 1, 1, 1.2, 1.0, 0, 0))
	}
	for y := 2010; y < 2019; y++ {
		records = append(records, rec("Sparse", y, 1, 1, 1.0, 1.0, 0, 0))
	}

	rows := Consistency(records, 0.01, 10)
	require.Len(t, rows, 1)
	assert.Equal(t, "Steady", rows[0].Country)
	assert.Equal(t, 10, rows[0].Records)
}

func TestConsistencyScoreAndOrder(t *testing.T) {
	var records []types.Record
	// Stable: constant CNCI, stddev 0 → score = mean/epsilon.
	for y := 2010; y < 2020; y++ {
		records = append(records, rec("Stable", y, 1, 1, 1.5, 1.0, 0, 0))
	}
	// Volatile: alternating CNCI.
	for y := 2010; y < 2020; y++ {
		cnci := 0.5
		if y%2 == 0 {
			cnci = 2.5
		}
		records = append(records, rec("Volatile", y, 1, 1, cnci, 1.0, 0, 0))
	}

	rows := Consistency(records, 0.01, 10)
	require.Len(t, rows, 2)
	assert.Equal(t, "Stable", rows[0].Country)
	assert.InDelta(t, 0, rows[0].StdDev, 1e-9)
	assert.InDelta(t, 150.0, rows[0].Score, 1e-9)
	assert.Equal(t, "Volatile", rows[1].Country)
	assert.Greater(t, rows[1].StdDev, rows[0].StdDev)
}

func TestExcellence(t *testing.T) {
	records := []types.Record{
		rec("Elite", 2020, 1, 1, 1.0, 1.0, 3.0, 20.0),
		rec("Elite", 2021, 1, 1, 1.0, 1.0, 2.5, 18.0),
		rec("Mid", 2020, 1, 1, 1.0, 1.0, 1.0, 10.0),
		rec("Low", 2020, 1, 1, 1.0, 1.0, 0.5, 5.0),
	}
	countries := AggregateByCountry(records)

	s := Excellence(records, countries, 2.0, 2)
	assert.Equal(t, 2, s.EliteRecords)
	assert.InDelta(t, 50.0, s.EliteShare, 1e-9)
	assert.InDelta(t, 3.0, s.MaxTop1, 1e-9)
	assert.InDelta(t, 1.75, s.AvgTop1, 1e-9)
	require.Len(t, s.Leaders, 2)
	assert.Equal(t, "Elite", s.Leaders[0].Country)
	assert.InDelta(t, 2.75/1.75, s.LeaderMultiplier, 1e-9)
}

func TestTrends(t *testing.T) {
	years := []YearAggregate{
		{Year: 2005, TotalDocs: 100, AvgCNCI: 1.0},
		{Year: 2006, TotalDocs: 120, AvgCNCI: 1.1},
		{Year: 2015, TotalDocs: 500, AvgCNCI: 1.5},
		{Year: 2021, TotalDocs: 90, AvgCNCI: 1.2},
		{Year: 2022, TotalDocs: 110, AvgCNCI: 1.4},
	}

	s := Trends(years, 2007, 2021)
	require.True(t, s.Comparable())
	// Early mean 110, recent mean 100 → −9.09...%.
	assert.InDelta(t, -9.0909, s.OutputChangePct, 1e-3)
	assert.InDelta(t, 0.25, s.CNCIDelta, 1e-9)
	assert.Equal(t, 2, s.EarlyYears)
	assert.Equal(t, 2, s.RecentYears)
}

func TestTrendsNotComparableWithoutEarlyWindow(t *testing.T) {
	years := []YearAggregate{{Year: 2022, TotalDocs: 100, AvgCNCI: 1.0}}
	s := Trends(years, 2007, 2021)
	assert.False(t, s.Comparable())
	assert.Zero(t, s.OutputChangePct)
	assert.Zero(t, s.CNCIDelta)
}

// Every reduction must tolerate zero rows without NaN or panic.
func TestEmptyInputDegradesToZero(t *testing.T) {
	assert.Empty(t, AggregateByCountry(nil))
	assert.Empty(t, AggregateByYear(nil))
	assert.Empty(t, AdvantageByCountry(nil))
	assert.Empty(t, Consistency(nil, 0.01, 10))

	collab := Collaboration(nil)
	assert.Zero(t, collab.SuccessRate)
	assert.Zero(t, collab.MeanAdvantage)

	s := Excellence(nil, nil, 2.0, 15)
	assert.Zero(t, s.AvgTop1)
	assert.Zero(t, s.EliteShare)
	assert.Zero(t, s.LeaderMultiplier)

	assert.Zero(t, AboveWorldAverageShare(nil))
}

func TestSafeRatio(t *testing.T) {
	assert.Equal(t, 0.0, SafeRatio(5, 0))
	assert.Equal(t, 2.5, SafeRatio(5, 2))
	assert.Equal(t, 50.0, SafePercent(1, 2))
	assert.Equal(t, 0.0, SafePercent(1, 0))
}

func TestSampleStdDev(t *testing.T) {
	assert.Equal(t, 0.0, SampleStdDev(nil))
	assert.Equal(t, 0.0, SampleStdDev([]float64{1.5}))
	// {1,2,3}: sample variance 1.
	assert.InDelta(t, 1.0, SampleStdDev([]float64{1, 2, 3}), 1e-9)
}

func TestAboveWorldAverageShare(t *testing.T) {
	records := []types.Record{
		rec("A", 2020, 1, 1, 1.2, 1, 0, 0),
		rec("A", 2021, 1, 1, 0.8, 1, 0, 0),
		rec("B", 2020, 1, 1, 1.0, 1, 0, 0), // exactly world average does not count
		rec("B", 2021, 1, 1, 1.5, 1, 0, 0),
	}
	assert.InDelta(t, 50.0, AboveWorldAverageShare(records), 1e-9)
}
