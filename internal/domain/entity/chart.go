package entity

// ChartKind identifies how a series is drawn.
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// Orientation of a bar series.
type Orientation string

const (
	Vertical   Orientation = "v"
	Horizontal Orientation = "h"
)

// ChartSeries is a single data series. Categories and Values have the same length;
// for horizontal bars Categories go on the y axis.
type ChartSeries struct {
	Name        string      `json:"name"`
	Kind        ChartKind   `json:"kind"`
	Orientation Orientation `json:"orientation,omitempty"`
	Categories  []string    `json:"categories"`
	Values      []float64   `json:"values"`
	Color       string      `json:"color,omitempty"`
	Dashed      bool        `json:"dashed,omitempty"`
	Markers     bool        `json:"markers,omitempty"`
}

// ChartSpec describes a chart independently of the rendering library.
type ChartSpec struct {
	ID         string        `json:"id"`
	Title      string        `json:"title,omitempty"`
	XAxisTitle string        `json:"x_axis_title,omitempty"`
	YAxisTitle string        `json:"y_axis_title,omitempty"`
	Series     []ChartSeries `json:"series"`
	Height     int           `json:"height,omitempty"`
	// Placeholder charts carry only Annotation, centred in the plot area.
	Placeholder bool   `json:"placeholder"`
	Annotation  string `json:"annotation,omitempty"`
}
