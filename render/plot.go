package render

// Plot owns a dataset, its axes, and a renderer, and runs render
// passes over every (series, category) cell in a fixed order: by pass,
// then series, then category. Rendering is synchronous and
// single-threaded; one call to Draw is one complete redraw.
type Plot struct {
	Dataset     Dataset
	Category    CategoryAxis
	Value       ValueAxis
	Renderer    Renderer
	Orientation Orientation
	// Passes defaults to one. Renderers drawing multiple visual layers
	// can request more.
	Passes int
}

// Draw renders every visible cell into area through c. A non-nil
// entities collection receives the hit regions registered during the
// pass.
func (p *Plot) Draw(c Canvas, area Rect, entities *EntityCollection) {
	if p.Dataset == nil || p.Renderer == nil {
		return
	}
	passes := p.Passes
	if passes < 1 {
		passes = 1
	}
	for pass := 0; pass < passes; pass++ {
		st := p.Renderer.NewState(p.Orientation, entities)
		for row := 0; row < p.Dataset.RowCount(); row++ {
			for col := 0; col < p.Dataset.ColumnCount(); col++ {
				p.Renderer.DrawItem(c, st, area, p.Category, p.Value, p.Dataset, row, col, pass)
			}
		}
	}
}

// LegendEntries collects the legend entry of every series that wants
// one, in series order.
func (p *Plot) LegendEntries() []LegendEntry {
	if p.Dataset == nil || p.Renderer == nil {
		return nil
	}
	var out []LegendEntry
	for row := 0; row < p.Dataset.RowCount(); row++ {
		if e, ok := p.Renderer.LegendEntry(0, p.Dataset, row); ok {
			out = append(out, e)
		}
	}
	return out
}
