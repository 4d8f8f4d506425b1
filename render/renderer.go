package render

import "strconv"

// Renderer is the capability set the owning plot invokes: drawing one
// cell, creating per-pass state, and synthesizing legend entries.
type Renderer interface {
	DrawItem(c Canvas, st *State, area Rect, category CategoryAxis, value ValueAxis, d Dataset, row, column, pass int)
	NewState(o Orientation, entities *EntityCollection) *State
	LegendEntry(datasetIndex int, d Dataset, series int) (LegendEntry, bool)
}

// StepRenderer draws each series as a stair-step line: successive data
// points are joined by right-angle segments rather than diagonals.
type StepRenderer struct {
	// Style supplies every per-series and per-item attribute lookup.
	Style StyleSheet

	// LabelFor generates legend labels; nil falls back to the series
	// key. TooltipFor and URLFor are optional the same way and leave
	// their fields empty when nil.
	LabelFor   LabelGenerator
	TooltipFor LabelGenerator
	URLFor     LabelGenerator

	stagger   bool
	listeners []func()
}

var _ Renderer = (*StepRenderer)(nil)

// NewStepRenderer returns a renderer with the given stagger setting and
// default styling.
func NewStepRenderer(stagger bool) *StepRenderer {
	return &StepRenderer{stagger: stagger}
}

// Stagger reports whether successive series' risers are offset from one
// another to stay distinguishable where series overlap.
func (r *StepRenderer) Stagger() bool { return r.stagger }

// SetStagger updates the stagger flag and synchronously notifies every
// registered change listener.
func (r *StepRenderer) SetStagger(stagger bool) {
	r.stagger = stagger
	for _, fn := range r.listeners {
		fn()
	}
}

// OnChange registers a callback invoked whenever renderer configuration
// changes.
func (r *StepRenderer) OnChange(fn func()) {
	r.listeners = append(r.listeners, fn)
}

// Equal compares renderer configuration: the stagger flag plus the
// style sheet. Listeners and generators do not participate.
func (r *StepRenderer) Equal(o *StepRenderer) bool {
	if r == o {
		return true
	}
	if r == nil || o == nil {
		return false
	}
	return r.stagger == o.stagger && r.Style.equal(&o.Style)
}

// NewState returns fresh scratch for one render pass. Pass nil entities
// to disable interaction tracking.
func (r *StepRenderer) NewState(o Orientation, entities *EntityCollection) *State {
	return &State{Orientation: o, Entities: entities}
}

func (r *StepRenderer) band(a CategoryAxis, v ValueAxis, area Rect, column, columns int, datum float64, catEdge, valEdge Edge) Band {
	b := Band{
		Start:  a.BandStart(column, columns, area, catEdge),
		Middle: a.BandMiddle(column, columns, area, catEdge),
	}
	// Bands are symmetric about their middle.
	b.End = 2*b.Middle - b.Start
	b.Value = v.Coordinate(datum, area, valEdge)
	return b
}

// DrawItem draws the step for one (series, category) cell. Invisible
// cells and absent values draw nothing; an absent predecessor skips the
// connecting bars so a gap appears. When the state carries an entity
// collection, a hit region spanning the cell's flat bar is registered.
func (r *StepRenderer) DrawItem(c Canvas, st *State, area Rect, category CategoryAxis, value ValueAxis, d Dataset, row, column, pass int) {
	if !r.Style.ItemVisible(row, column) {
		return
	}
	datum, ok := d.Value(row, column)
	if !ok {
		return
	}
	o := st.Orientation
	catEdge, valEdge := o.axisEdges()
	columns := d.ColumnCount()

	cur := r.band(category, value, area, column, columns, datum, catEdge, valEdge)
	c.SetPaint(r.Style.Paint(row, column))
	c.SetStroke(r.Style.Stroke(row, column))

	var prev *Band
	if column > 0 {
		if pv, ok := d.Value(row, column-1); ok {
			pb := r.band(category, value, area, column-1, columns, pv, catEdge, valEdge)
			prev = &pb
		}
	}

	st.segments = AppendStepPath(st.segments[:0], o, cur, prev, r.stagger, row)
	for _, seg := range st.segments {
		st.draw(c, seg)
	}

	if r.Style.LabelVisible(row, column) {
		lx, ly := o.Adapt(cur.Middle, cur.Value)
		c.DrawLabel(strconv.FormatFloat(datum, 'f', -1, 64), lx, ly, datum < 0)
	}

	if st.Entities != nil {
		start := stepStart(cur, prev, r.stagger, row)
		var hot Rect
		if o == Landscape {
			hot = Rect{X: cur.Value - 2, Y: start, W: 4, H: cur.End - start}
		} else {
			hot = Rect{X: start, Y: cur.Value - 2, W: cur.End - start, H: 4}
		}
		st.Entities.Add(Entity{Rect: hot, Dataset: d, Row: row, Column: column})
	}
}

// LegendEntry builds the legend entry for one series, or reports false
// when the series is hidden from the plot or excluded from the legend.
func (r *StepRenderer) LegendEntry(datasetIndex int, d Dataset, series int) (LegendEntry, bool) {
	if d == nil {
		return LegendEntry{}, false
	}
	if !r.Style.SeriesVisible(series) || !r.Style.SeriesVisibleInLegend(series) {
		return LegendEntry{}, false
	}
	label := d.SeriesKey(series)
	if r.LabelFor != nil {
		label = r.LabelFor(d, series)
	}
	e := LegendEntry{
		Label:        label,
		Shape:        r.Style.LegendShape,
		Paint:        r.Style.Paint(series, 0),
		Font:         r.Style.legendFont(),
		TextPaint:    r.Style.LegendTextPaint,
		SeriesKey:    d.SeriesKey(series),
		SeriesIndex:  series,
		Dataset:      d,
		DatasetIndex: datasetIndex,
	}
	if r.TooltipFor != nil {
		e.Tooltip = r.TooltipFor(d, series)
	}
	if r.URLFor != nil {
		e.URL = r.URLFor(d, series)
	}
	return e, true
}
