package render

import (
	"image/color"
	"maps"
	"slices"
)

// Shape is the marker drawn for a series in the legend.
type Shape uint8

const (
	ShapeSquare Shape = iota
	ShapeCircle
	ShapeLine
)

// Font carries the text attributes a legend entry requests. The
// consumer maps them onto whatever text system it uses.
type Font struct {
	SizeSp int
	Bold   bool
}

// DefaultPalette is the series paint cycle used when a StyleSheet does
// not provide its own.
var DefaultPalette = []color.NRGBA{
	{R: 0xa4, G: 0x63, B: 0x3a, A: 0xff},
	{R: 0x85, G: 0x76, B: 0x25, A: 0xff},
	{R: 0x51, G: 0x85, B: 0x4d, A: 0xff},
	{R: 0x2b, G: 0x7f, B: 0xa8, A: 0xff},
	{R: 0x72, G: 0x6c, B: 0xae, A: 0xff},
	{R: 0x97, G: 0x5f, B: 0x91, A: 0xff},
}

// A cell key for per-item overrides.
type itemKey struct {
	Row, Column int
}

// StyleSheet resolves the per-series and per-item attributes the
// renderer and legend consult. The zero value yields the package
// defaults: every series visible, one-pixel strokes, DefaultPalette
// paints, no item labels.
type StyleSheet struct {
	// Palette is cycled by series index.
	Palette []color.NRGBA
	// StrokeWidth applies to every step segment; zero means one pixel.
	StrokeWidth float64
	// SeriesHidden is indexed by series; series beyond its length are
	// visible. Hidden series draw nothing and produce no legend entry.
	SeriesHidden []bool
	// LegendHidden excludes otherwise-visible series from the legend.
	LegendHidden []bool
	// HiddenItems suppresses individual cells.
	HiddenItems map[itemKey]bool
	// ItemLabels turns on value labels at each step's middle.
	ItemLabels bool

	LegendShape     Shape
	LegendFont      Font
	LegendTextPaint color.NRGBA // zero value means unset
}

// HideItem suppresses a single cell.
func (s *StyleSheet) HideItem(row, column int) {
	if s.HiddenItems == nil {
		s.HiddenItems = make(map[itemKey]bool)
	}
	s.HiddenItems[itemKey{row, column}] = true
}

func (s *StyleSheet) SeriesVisible(series int) bool {
	return series >= len(s.SeriesHidden) || !s.SeriesHidden[series]
}

func (s *StyleSheet) SeriesVisibleInLegend(series int) bool {
	return series >= len(s.LegendHidden) || !s.LegendHidden[series]
}

func (s *StyleSheet) ItemVisible(row, column int) bool {
	return s.SeriesVisible(row) && !s.HiddenItems[itemKey{row, column}]
}

func (s *StyleSheet) LabelVisible(row, column int) bool {
	return s.ItemLabels
}

func (s *StyleSheet) Paint(series, column int) color.NRGBA {
	p := s.Palette
	if len(p) == 0 {
		p = DefaultPalette
	}
	return p[series%len(p)]
}

func (s *StyleSheet) Stroke(series, column int) float64 {
	if s.StrokeWidth <= 0 {
		return 1
	}
	return s.StrokeWidth
}

func (s *StyleSheet) legendFont() Font {
	if s.LegendFont == (Font{}) {
		return Font{SizeSp: 12}
	}
	return s.LegendFont
}

func (s *StyleSheet) equal(o *StyleSheet) bool {
	return slices.Equal(s.Palette, o.Palette) &&
		s.StrokeWidth == o.StrokeWidth &&
		slices.Equal(s.SeriesHidden, o.SeriesHidden) &&
		slices.Equal(s.LegendHidden, o.LegendHidden) &&
		maps.Equal(s.HiddenItems, o.HiddenItems) &&
		s.ItemLabels == o.ItemLabels &&
		s.LegendShape == o.LegendShape &&
		s.LegendFont == o.LegendFont &&
		s.LegendTextPaint == o.LegendTextPaint
}
