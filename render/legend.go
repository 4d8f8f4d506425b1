package render

import "image/color"

// LabelGenerator produces legend text for one series of a dataset.
type LabelGenerator func(d Dataset, series int) string

// LegendEntry describes one series in the legend: its text, marker, and
// a back-reference to the series identity so legend interactions (like
// click-to-toggle) can find their way back to the data.
type LegendEntry struct {
	Label   string
	Tooltip string
	URL     string

	Shape Shape
	Paint color.NRGBA
	Font  Font
	// TextPaint's zero value means unset; consumers fall back to their
	// theme's text color.
	TextPaint color.NRGBA

	SeriesKey    string
	SeriesIndex  int
	Dataset      Dataset
	DatasetIndex int
}
