package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type label struct {
	Text  string
	X, Y  float64
	Below bool
}

// recordingCanvas captures draw calls for assertions.
type recordingCanvas struct {
	segments []Segment
	labels   []label
	paints   []color.NRGBA
	strokes  []float64
}

func (r *recordingCanvas) SetPaint(p color.NRGBA) { r.paints = append(r.paints, p) }
func (r *recordingCanvas) SetStroke(w float64)    { r.strokes = append(r.strokes, w) }

func (r *recordingCanvas) DrawLine(x0, y0, x1, y1 float64) {
	r.segments = append(r.segments, Segment{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

func (r *recordingCanvas) DrawLabel(text string, x, y float64, below bool) {
	r.labels = append(r.labels, label{Text: text, X: x, Y: y, Below: below})
}

// testPlot draws a 100x100 area with marginless bands and a 0-10 value
// axis so coordinates stay easy to reason about.
func testPlot(d Dataset, r Renderer, o Orientation) *Plot {
	return &Plot{
		Dataset:     d,
		Category:    BandAxis{Margin: 0.1},
		Value:       LinearAxis{Min: 0, Max: 10},
		Renderer:    r,
		Orientation: o,
	}
}

var testArea = Rect{X: 0, Y: 0, W: 100, H: 100}

func TestDrawGapSeries(t *testing.T) {
	d := NewTable("jan", "feb", "mar")
	d.AddSeries("power", 10, Absent, 30)

	r := NewStepRenderer(false)
	var c recordingCanvas
	var entities EntityCollection

	perColumn := make([]int, d.ColumnCount())
	for col := 0; col < d.ColumnCount(); col++ {
		before := len(c.segments)
		st := r.NewState(Portrait, &entities)
		r.DrawItem(&c, st, testArea, BandAxis{}, LinearAxis{Min: 0, Max: 30}, d, 0, col, 0)
		perColumn[col] = len(c.segments) - before
	}

	if diff := cmp.Diff([]int{1, 0, 1}, perColumn); diff != "" {
		t.Errorf("segments per column (-want +got):\n%s", diff)
	}
	// Column 1 is absent: no hit region either.
	if entities.Len() != 2 {
		t.Errorf("expected 2 entities, got %d", entities.Len())
	}
}

func TestDrawHiddenSeries(t *testing.T) {
	d := NewTable("a", "b")
	d.AddSeries("s0", 1, 2)

	r := NewStepRenderer(false)
	r.Style.SeriesHidden = []bool{true}
	var c recordingCanvas
	var entities EntityCollection
	testPlot(d, r, Portrait).Draw(&c, testArea, &entities)

	if len(c.segments) != 0 || entities.Len() != 0 {
		t.Errorf("hidden series drew %d segments and %d entities", len(c.segments), entities.Len())
	}
}

func TestDrawHiddenItem(t *testing.T) {
	d := NewTable("a", "b")
	d.AddSeries("s0", 1, 2)

	r := NewStepRenderer(false)
	r.Style.HideItem(0, 1)
	var c recordingCanvas
	testPlot(d, r, Portrait).Draw(&c, testArea, nil)

	// Only column 0's flat bar survives.
	if len(c.segments) != 1 {
		t.Errorf("expected 1 segment, got %d", len(c.segments))
	}
}

func TestStaggerBetweenSeries(t *testing.T) {
	d := NewTable("a", "b")
	d.AddSeries("s0", 2, 5)
	d.AddSeries("s1", 2, 5)

	r := NewStepRenderer(true)
	axis := BandAxis{Margin: 0.1}
	val := LinearAxis{Min: 0, Max: 10}

	// Band geometry in a 100px area with two columns: band 0 spans
	// 5..45, band 1 spans 55..95, so the gap is 10px.
	riser := func(row int) Segment {
		var c recordingCanvas
		st := r.NewState(Portrait, nil)
		r.DrawItem(&c, st, testArea, axis, val, d, row, 1, 0)
		if len(c.segments) != 3 {
			t.Fatalf("row %d: expected 3 segments, got %d", row, len(c.segments))
		}
		return c.segments[1]
	}

	r0, r1 := riser(0), riser(1)
	if r0.X0 != 45 {
		t.Errorf("series 0 riser at %v, want 45 (previous trailing edge)", r0.X0)
	}
	if r1.X0-r0.X0 != StaggerWidth {
		t.Errorf("series 1 riser offset %v from series 0, want %d", r1.X0-r0.X0, StaggerWidth)
	}
}

func TestStaggerClampAtGap(t *testing.T) {
	d := NewTable("a", "b")
	d.AddSeries("s0", 2, 5)
	d.AddSeries("s1", 2, 5)
	d.AddSeries("s2", 2, 5)
	d.AddSeries("s3", 2, 5)

	r := NewStepRenderer(true)
	// Marginless bands touch, so the available gap is zero and every
	// series' riser clamps to the shared band boundary.
	axis := BandAxis{}
	val := LinearAxis{Min: 0, Max: 10}
	for row := 0; row < d.RowCount(); row++ {
		var c recordingCanvas
		st := r.NewState(Portrait, nil)
		r.DrawItem(&c, st, testArea, axis, val, d, row, 1, 0)
		if got := c.segments[1].X0; got != 50 {
			t.Errorf("series %d riser at %v, want 50", row, got)
		}
	}
}

func TestOrientationSymmetry(t *testing.T) {
	d := NewTable("a", "b", "c")
	d.AddSeries("s0", 1, Absent, 7)
	d.AddSeries("s1", 3, 4, 2)

	r := NewStepRenderer(true)
	var portrait, landscape recordingCanvas
	testPlot(d, r, Portrait).Draw(&portrait, testArea, nil)
	testPlot(d, r, Landscape).Draw(&landscape, testArea, nil)

	swapped := make([]Segment, len(portrait.segments))
	for i, s := range portrait.segments {
		swapped[i] = Segment{X0: s.Y0, Y0: s.X0, X1: s.Y1, Y1: s.X1}
	}
	if diff := cmp.Diff(swapped, landscape.segments); diff != "" {
		t.Errorf("landscape is not the axis swap of portrait (-want +got):\n%s", diff)
	}
}

func TestEntityRegion(t *testing.T) {
	d := NewTable("a")
	d.AddSeries("s0", 5)

	r := NewStepRenderer(false)
	axis := BandAxis{Margin: 0.1}
	val := LinearAxis{Min: 0, Max: 10}

	var c recordingCanvas
	var entities EntityCollection
	st := r.NewState(Portrait, &entities)
	r.DrawItem(&c, st, testArea, axis, val, d, 0, 0, 0)

	e, ok := entities.At(50, 50)
	if !ok {
		t.Fatal("no entity under the flat bar's midpoint")
	}
	want := Rect{X: 10, Y: 48, W: 80, H: 4}
	if diff := cmp.Diff(want, e.Rect); diff != "" {
		t.Errorf("hit region (-want +got):\n%s", diff)
	}
	if e.Row != 0 || e.Column != 0 || e.Dataset != Dataset(d) {
		t.Errorf("entity reference mismatch: %+v", e)
	}

	// Landscape swaps the region's axes.
	entities.Reset()
	st = r.NewState(Landscape, &entities)
	r.DrawItem(&c, st, testArea, axis, val, d, 0, 0, 0)
	e, ok = entities.At(50, 50)
	if !ok {
		t.Fatal("no entity in landscape orientation")
	}
	wantL := Rect{X: 48, Y: 10, W: 4, H: 80}
	if diff := cmp.Diff(wantL, e.Rect); diff != "" {
		t.Errorf("landscape hit region (-want +got):\n%s", diff)
	}
}

func TestItemLabels(t *testing.T) {
	d := NewTable("a", "b")
	d.AddSeries("s0", 5, -3)

	r := NewStepRenderer(false)
	r.Style.ItemLabels = true
	var c recordingCanvas
	testPlot(d, r, Portrait).Draw(&c, testArea, nil)

	if len(c.labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(c.labels))
	}
	if c.labels[0].Text != "5" || c.labels[0].Below {
		t.Errorf("positive label placed wrong: %+v", c.labels[0])
	}
	if c.labels[1].Text != "-3" || !c.labels[1].Below {
		t.Errorf("negative label should sit below its anchor: %+v", c.labels[1])
	}
}

func TestRendererEqual(t *testing.T) {
	a := NewStepRenderer(true)
	b := NewStepRenderer(true)
	if !a.Equal(b) {
		t.Error("identically configured renderers should compare equal")
	}
	if !a.Equal(a) {
		t.Error("equality must be reflexive")
	}
	b.SetStagger(false)
	if a.Equal(b) || b.Equal(a) {
		t.Error("renderers differing only in stagger should compare unequal")
	}
	b.SetStagger(true)
	b.Style.StrokeWidth = 2
	if a.Equal(b) {
		t.Error("renderers differing in style should compare unequal")
	}
}

func TestSetStaggerNotifies(t *testing.T) {
	r := NewStepRenderer(false)
	fired := 0
	r.OnChange(func() { fired++ })
	r.SetStagger(true)
	if fired != 1 {
		t.Errorf("expected 1 change notification, got %d", fired)
	}
	if !r.Stagger() {
		t.Error("stagger flag not updated")
	}
}

func TestLegendEntries(t *testing.T) {
	d := NewTable("a")
	d.AddSeries("cpu", 1)
	d.AddSeries("gpu", 2)
	d.AddSeries("ram", 3)

	r := NewStepRenderer(false)
	r.Style.SeriesHidden = []bool{false, true}
	r.Style.LegendHidden = []bool{false, false, true}
	r.TooltipFor = func(d Dataset, series int) string { return d.SeriesKey(series) + " usage" }

	entries := testPlot(d, r, Portrait).LegendEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 legend entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Label != "cpu" || e.SeriesKey != "cpu" || e.SeriesIndex != 0 {
		t.Errorf("unexpected entry identity: %+v", e)
	}
	if e.Tooltip != "cpu usage" {
		t.Errorf("tooltip generator not applied: %q", e.Tooltip)
	}
	if e.Dataset != Dataset(d) {
		t.Error("entry must reference its owning dataset")
	}
	if e.Paint != DefaultPalette[0] {
		t.Errorf("entry paint %v, want palette color %v", e.Paint, DefaultPalette[0])
	}
}
