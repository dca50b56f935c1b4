// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chart defines declarative chart specifications. A Spec carries
// labels, series, and styling hints only; rendering is left to whatever
// consumes the JSON (the embedded dashboard page hands specs to plotly.js).
package chart

// Kind identifies the visualization a Spec describes.
type Kind string

const (
	KindScatter Kind = "scatter" // bubble scatter, optional point labels
	KindBar     Kind = "bar"     // vertical bars, grouped per series
	KindHBar    Kind = "hbar"    // horizontal bars
	KindDonut   Kind = "donut"   // pie with a hole
	KindLine    Kind = "line"    // time series, optional secondary axis
)

// Series is one labeled run of data inside a Spec. Which fields are set
// depends on the Kind: scatter uses X/Y/Text/Sizes, bar and line use X/Y,
// hbar uses X (values) with the Spec labels as categories, donut uses Values.
type Series struct {
	Name   string    `json:"name,omitempty"`
	X      []float64 `json:"x,omitempty"`
	Y      []float64 `json:"y,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Text   []string  `json:"text,omitempty"`
	Sizes  []float64 `json:"sizes,omitempty"`
	Color  string    `json:"color,omitempty"`

	// SecondaryAxis plots this series against a second y axis.
	SecondaryAxis bool `json:"secondary_axis,omitempty"`
}

// RefLine is a dashed reference line drawn across one axis.
type RefLine struct {
	Axis  string  `json:"axis"` // "x" or "y"
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
	Color string  `json:"color,omitempty"`
}

// Spec is a renderer-independent chart description.
type Spec struct {
	ID       string    `json:"id"`
	Kind     Kind      `json:"kind"`
	Title    string    `json:"title"`
	XTitle   string    `json:"x_title,omitempty"`
	YTitle   string    `json:"y_title,omitempty"`
	Labels   []string  `json:"labels,omitempty"`
	Series   []Series  `json:"series"`
	RefLines []RefLine `json:"ref_lines,omitempty"`

	// Hole is the donut hole fraction for KindDonut.
	Hole float64 `json:"hole,omitempty"`

	// CenterText is drawn inside the donut hole.
	CenterText string `json:"center_text,omitempty"`
}
