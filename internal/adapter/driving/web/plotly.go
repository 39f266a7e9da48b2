package web

import (
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

// Tipos mínimos do formato de figura do Plotly.js ({data, layout}).

type plotlyFigure struct {
	Data   []plotlyTrace `json:"data"`
	Layout plotlyLayout  `json:"layout"`
	Config plotlyConfig  `json:"config"`
}

type plotlyConfig struct {
	Responsive  bool `json:"responsive"`
	DisplayLogo bool `json:"displaylogo"`
}

type plotlyTrace struct {
	Type        string        `json:"type"`
	Name        string        `json:"name,omitempty"`
	X           interface{}   `json:"x"`
	Y           interface{}   `json:"y"`
	Orientation string        `json:"orientation,omitempty"`
	Mode        string        `json:"mode,omitempty"`
	Marker      *plotlyMarker `json:"marker,omitempty"`
	Line        *plotlyLine   `json:"line,omitempty"`
}

type plotlyMarker struct {
	Color string `json:"color,omitempty"`
	Size  int    `json:"size,omitempty"`
}

type plotlyLine struct {
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
	Dash  string `json:"dash,omitempty"`
}

type plotlyText struct {
	Text string `json:"text"`
}

type plotlyAxis struct {
	Title     *plotlyText `json:"title,omitempty"`
	Visible   *bool       `json:"visible,omitempty"`
	GridColor string      `json:"gridcolor,omitempty"`
}

type plotlyAnnotation struct {
	Text      string  `json:"text"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	ShowArrow bool    `json:"showarrow"`
}

type plotlyLayout struct {
	Title        *plotlyText        `json:"title,omitempty"`
	XAxis        plotlyAxis         `json:"xaxis"`
	YAxis        plotlyAxis         `json:"yaxis"`
	Height       int                `json:"height,omitempty"`
	PaperBGColor string             `json:"paper_bgcolor"`
	PlotBGColor  string             `json:"plot_bgcolor"`
	Annotations  []plotlyAnnotation `json:"annotations,omitempty"`
}

const gridColor = "#ebf0f8"

func titleOf(s string) *plotlyText {
	if s == "" {
		return nil
	}
	return &plotlyText{Text: s}
}

// toPlotly converte um ChartSpec na figura consumida por Plotly.newPlot.
func toPlotly(spec entity.ChartSpec) plotlyFigure {
	layout := plotlyLayout{
		Title:        titleOf(spec.Title),
		XAxis:        plotlyAxis{Title: titleOf(spec.XAxisTitle), GridColor: gridColor},
		YAxis:        plotlyAxis{Title: titleOf(spec.YAxisTitle), GridColor: gridColor},
		Height:       spec.Height,
		PaperBGColor: "white",
		PlotBGColor:  "white",
	}

	if spec.Placeholder {
		hidden := false
		layout.XAxis = plotlyAxis{Visible: &hidden}
		layout.YAxis = plotlyAxis{Visible: &hidden}
		layout.Annotations = []plotlyAnnotation{{
			Text: spec.Annotation,
			XRef: "paper",
			YRef: "paper",
			X:    0.5,
			Y:    0.5,
		}}
		return plotlyFigure{Data: []plotlyTrace{}, Layout: layout, Config: plotlyConfig{Responsive: true}}
	}

	traces := make([]plotlyTrace, 0, len(spec.Series))
	for _, s := range spec.Series {
		traces = append(traces, toTrace(s))
	}
	return plotlyFigure{Data: traces, Layout: layout, Config: plotlyConfig{Responsive: true}}
}

func toTrace(s entity.ChartSeries) plotlyTrace {
	switch s.Kind {
	case entity.ChartLine:
		t := plotlyTrace{
			Type: "scatter",
			Name: s.Name,
			X:    s.Categories,
			Y:    s.Values,
			Mode: "lines",
			Line: &plotlyLine{Color: s.Color, Width: 3},
		}
		if s.Markers {
			t.Mode = "lines+markers"
			t.Marker = &plotlyMarker{Size: 8}
		}
		if s.Dashed {
			t.Line.Dash = "dash"
		}
		return t
	default:
		t := plotlyTrace{
			Type:   "bar",
			Name:   s.Name,
			X:      s.Categories,
			Y:      s.Values,
			Marker: &plotlyMarker{Color: s.Color},
		}
		if s.Orientation == entity.Horizontal {
			t.Orientation = string(entity.Horizontal)
			t.X, t.Y = s.Values, s.Categories
		}
		return t
	}
}
