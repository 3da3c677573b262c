// Package plot renders a decay run as a PNG or SVG line chart, or as a
// terminal preview.
package plot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/mycodecay/internal/decay"
)

const (
	DefaultPath = "degradation_plot.png"

	// The raster is a 10x6 inch figure at DPI dots per inch.
	DPI    = 300
	Width  = 10 * DPI
	Height = 6 * DPI
)

// px converts a length in typographic points to pixels at DPI.
func px(pt float64) float64 {
	return pt * DPI / 72
}

var (
	lineColor = drawing.ColorFromHex("1f77b4")
	gridColor = drawing.ColorFromHex("000000").WithAlpha(77)
)

// Title is the chart heading annotated with the run's summary metrics.
func Title(run *decay.Run) string {
	return fmt.Sprintf("Asbestos Fiber Degradation: %s (%.2f%% reduction, risk %.3f)",
		run.Strain.DisplayName, run.FinalReductionPercent, run.RiskScore)
}

func days(run *decay.Run) []float64 {
	xs := make([]float64, len(run.Series))
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// Chart builds the line chart for run.
func Chart(run *decay.Run) chart.Chart {
	grid := chart.Style{StrokeColor: gridColor, StrokeWidth: px(0.8)}

	graph := chart.Chart{
		Title:  Title(run),
		Width:  Width,
		Height: Height,
		DPI:    DPI,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    int(px(36)),
				Left:   int(px(14)),
				Right:  int(px(14)),
				Bottom: int(px(14)),
			},
		},
		XAxis: chart.XAxis{
			Name:           "Days",
			GridMajorStyle: grid,
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:           "Fibers Remaining",
			GridMajorStyle: grid,
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: run.InitialFibers,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    run.Strain.DisplayName,
				XValues: days(run),
				YValues: run.Series,
				Style:   chart.Style{StrokeColor: lineColor, StrokeWidth: px(2.5)},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// RenderPNG writes the chart for run to w as PNG.
func RenderPNG(run *decay.Run, w io.Writer) error {
	graph := Chart(run)
	return graph.Render(chart.PNG, w)
}

// RenderSVG writes the chart for run to w as SVG.
func RenderSVG(run *decay.Run, w io.Writer) error {
	graph := Chart(run)
	return graph.Render(chart.SVG, w)
}

// Save renders run to path, overwriting any existing file. A ".svg"
// extension selects SVG output; anything else is written as PNG.
func Save(run *decay.Run, path string) error {
	render := RenderPNG
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		render = RenderSVG
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := render(run, f); err != nil {
		return fmt.Errorf("render plot: %w", err)
	}
	return f.Close()
}

// Preview draws the decay curve as a terminal line graph.
func Preview(run *decay.Run, width, height int) string {
	return asciigraph.Plot(run.Series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.Caption(fmt.Sprintf("%s: fibers remaining vs days (0-%d)", run.Strain.DisplayName, run.Days)),
	)
}
