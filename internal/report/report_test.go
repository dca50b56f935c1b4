// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholardash/internal/dataset"
	"github.com/pdiddy/scholardash/internal/view"
	"github.com/pdiddy/scholardash/pkg/types"
)

const testCSV = `Name,year,Web of Science Documents,Times Cited,Category Normalized Citation Impact,Collab-CNCI,% Documents in Top 1%,% Documents in Top 10%
Spain,2020,1000,15000,1.5,1.3,2.1,12.0
Spain,2021,1100,16000,1.4,1.6,1.9,11.5
Japan,2020,2000,20000,0.9,1.1,1.2,9.0
`

func init() {
	color.NoColor = true
}

func computeView(t *testing.T, params types.FilterParams) view.ViewModel {
	t.Helper()
	path := filepath.Join(t.TempDir(), "publications.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))
	ds, err := dataset.Load(path)
	require.NoError(t, err)
	return view.Compute(ds, params, types.AnalysisConfig{})
}

func TestRenderFullReport(t *testing.T) {
	vm := computeView(t, types.FilterParams{})

	var buf bytes.Buffer
	Render(&buf, vm)
	out := buf.String()

	assert.Contains(t, out, "Global Research Performance")
	assert.Contains(t, out, "all countries")
	assert.Contains(t, out, "Volume champions")
	assert.Contains(t, out, "Quality masters")
	assert.Contains(t, out, "Spain")
	assert.Contains(t, out, "Japan")
	assert.Contains(t, out, "Insights")
	assert.Contains(t, out, "collaboration")
}

func TestRenderEmptyReport(t *testing.T) {
	vm := computeView(t, types.FilterParams{MinYear: 2026})

	var buf bytes.Buffer
	Render(&buf, vm)
	out := buf.String()

	assert.Contains(t, out, "No records match the current filters.")
	assert.NotContains(t, out, "Volume champions")
	assert.Contains(t, out, "n/a")
}

func TestRenderCountryDetail(t *testing.T) {
	vm := computeView(t, types.FilterParams{Country: "Spain"})

	var buf bytes.Buffer
	Render(&buf, vm)
	out := buf.String()

	assert.Contains(t, out, "Deep dive: Spain")
	assert.Contains(t, out, "Total publications")
	assert.Contains(t, out, "Above global average CNCI")
}
