// Package chart renders the outcome donut with go-chart.
package chart

import (
	"bytes"
	"fmt"
	"html/template"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// go-chart sizes slices from the canvas half-width: a lone value is a circle
// of half/1.1, several values are wedges of half/1.1/1.25.
const (
	singleScale = 1.1
	wedgeScale  = 1.1 * 1.25
)

// Datum is one input value for the donut.
type Datum struct {
	Label string
	Value int
	Color string
}

// Options sizes the chart. Radii are fractions of half the chart size.
type Options struct {
	Size        int
	InnerRadius float64
	OuterRadius float64
}

// DefaultOptions matches the dashboard's chart: 40%/70% radii.
func DefaultOptions() Options {
	return Options{Size: 300, InnerRadius: 0.4, OuterRadius: 0.7}
}

// Arc is one drawn slice.
type Arc struct {
	Label   string
	Color   string
	Value   int
	Percent float64
}

// LegendEntry is one row of the vertical legend.
type LegendEntry struct {
	Label string
	Color string
	Value int
}

// Chart is the rendered donut plus the legend for every datum.
type Chart struct {
	Size   int
	SVG    template.HTML
	Arcs   []Arc
	Legend []LegendEntry
	Empty  bool
}

// Donut renders the non-zero data as a go-chart donut, slices clockwise from
// 3 o'clock in input order. Legend entries keep zero-valued data. All-zero
// input renders nothing and sets Empty.
func Donut(data []Datum, opts Options) (Chart, error) {
	opts = withDefaults(opts)
	c := Chart{Size: opts.Size, Legend: make([]LegendEntry, 0, len(data))}

	total := 0
	for _, d := range data {
		c.Legend = append(c.Legend, LegendEntry{Label: d.Label, Color: d.Color, Value: d.Value})
		if d.Value > 0 {
			total += d.Value
		}
	}
	if total == 0 {
		c.Empty = true
		return c, nil
	}

	var (
		values []gochart.Value
		colors palette
	)
	for _, d := range data {
		if d.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{Value: float64(d.Value)})
		colors = append(colors, drawing.ColorFromHex(d.Color))
		c.Arcs = append(c.Arcs, Arc{
			Label:   d.Label,
			Color:   d.Color,
			Value:   d.Value,
			Percent: float64(d.Value) / float64(total) * 100,
		})
	}

	half := float64(opts.Size) / 2
	scale := wedgeScale
	if len(values) == 1 {
		scale = singleScale
	}
	pad := int(math.Ceil(half - half*opts.OuterRadius*scale))

	donut := gochart.DonutChart{
		Width:        opts.Size,
		Height:       opts.Size,
		ColorPalette: colors,
		Background: gochart.Style{
			Padding: gochart.Box{Top: pad, Left: pad, Right: pad, Bottom: pad, IsSet: true},
		},
		Values:   values,
		Elements: []gochart.Renderable{hole(half * opts.InnerRadius)},
	}

	var buf bytes.Buffer
	if err := donut.Render(gochart.SVG, &buf); err != nil {
		return Chart{}, fmt.Errorf("render donut: %w", err)
	}
	c.SVG = template.HTML(buf.String())
	return c, nil
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Size <= 0 {
		opts.Size = def.Size
	}
	if opts.OuterRadius <= 0 || opts.OuterRadius > 1 {
		opts.OuterRadius = def.OuterRadius
	}
	if opts.InnerRadius < 0 || opts.InnerRadius >= opts.OuterRadius {
		opts.InnerRadius = def.InnerRadius
	}
	return opts
}

// hole covers the library's own center cut-out with one at the requested radius.
func hole(radius float64) gochart.Renderable {
	return func(r gochart.Renderer, canvasBox gochart.Box, _ gochart.Style) {
		cx, cy := canvasBox.Center()
		gochart.Style{
			FillColor:   gochart.ColorWhite,
			StrokeColor: gochart.ColorWhite,
			StrokeWidth: 1,
		}.WriteToRenderer(r)
		r.Circle(radius, cx, cy)
	}
}

// palette hands go-chart the slice colors in order on a white page.
type palette []drawing.Color

func (p palette) BackgroundColor() drawing.Color       { return gochart.ColorWhite }
func (p palette) BackgroundStrokeColor() drawing.Color { return gochart.ColorWhite }
func (p palette) CanvasColor() drawing.Color           { return gochart.ColorWhite }
func (p palette) CanvasStrokeColor() drawing.Color     { return gochart.ColorWhite }
func (p palette) AxisStrokeColor() drawing.Color       { return gochart.ColorWhite }
func (p palette) TextColor() drawing.Color             { return gochart.ColorBlack }

func (p palette) GetSeriesColor(index int) drawing.Color {
	return p[index%len(p)]
}
