// Package export renders category tables into static files. SVG is
// generated directly, PNG by screenshotting that SVG in a headless
// browser, and PDF through a PDF content stream.
package export

import "git.sr.ht/~whereswaldon/stepchart/render"

// Options configure one exported chart.
type Options struct {
	// Width and Height are the output dimensions in pixels (points for
	// PDF). Zero falls back to 800x500.
	Width, Height int

	Orientation render.Orientation
	Stagger     bool
	Labels      bool
}

func (o Options) size() (w, h float64) {
	w, h = float64(o.Width), float64(o.Height)
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 500
	}
	return w, h
}

const (
	chartMargin  = 16
	legendHeight = 24
	swatchSize   = 10
	labelSize    = 12
)

// plotFor assembles the plot every output format shares. The value
// axis is inverted in portrait so larger values sit nearer the top of
// a surface whose y axis grows downward.
func plotFor(d render.Dataset, o Options) *render.Plot {
	r := render.NewStepRenderer(o.Stagger)
	r.Style.ItemLabels = o.Labels
	axis := render.FitLinearAxis(d)
	axis.Inverted = o.Orientation == render.Portrait
	return &render.Plot{
		Dataset:     d,
		Category:    render.BandAxis{Margin: 0.1},
		Value:       axis,
		Renderer:    r,
		Orientation: o.Orientation,
	}
}

// chartArea insets the output surface to leave room for the margin and
// the legend strip along the top.
func chartArea(o Options) render.Rect {
	w, h := o.size()
	return render.Rect{
		X: chartMargin,
		Y: chartMargin + legendHeight,
		W: w - 2*chartMargin,
		H: h - 2*chartMargin - legendHeight,
	}
}
