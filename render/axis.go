package render

// Edge identifies which side of the draw area an axis is laid out
// against, and therefore which dimension of the area its coordinates
// span.
type Edge uint8

const (
	EdgeBottom Edge = iota
	EdgeLeft
	EdgeTop
	EdgeRight
)

func (e Edge) horizontal() bool {
	return e == EdgeBottom || e == EdgeTop
}

// span returns the origin and length of the draw-area dimension an axis
// on edge e maps onto.
func span(area Rect, e Edge) (origin, length float64) {
	if e.horizontal() {
		return area.X, area.W
	}
	return area.Y, area.H
}

// CategoryAxis maps a category index onto pixel positions along the
// category dimension. The renderer derives the band end symmetrically
// as 2*middle - start.
type CategoryAxis interface {
	BandStart(column, columns int, area Rect, edge Edge) float64
	BandMiddle(column, columns int, area Rect, edge Edge) float64
}

// ValueAxis maps a datum onto a pixel position along the value
// dimension.
type ValueAxis interface {
	Coordinate(value float64, area Rect, edge Edge) float64
}

// BandAxis is a CategoryAxis that allocates every category an equal
// band, reserving Margin (a fraction of the band, per side) as the gap
// between adjacent bands.
type BandAxis struct {
	Margin float64
}

func (a BandAxis) band(column, columns int, area Rect, edge Edge) (start, width float64) {
	if columns < 1 {
		columns = 1
	}
	origin, length := span(area, edge)
	width = length / float64(columns)
	return origin + float64(column)*width, width
}

func (a BandAxis) BandStart(column, columns int, area Rect, edge Edge) float64 {
	start, width := a.band(column, columns, area, edge)
	return start + a.Margin*width
}

func (a BandAxis) BandMiddle(column, columns int, area Rect, edge Edge) float64 {
	start, width := a.band(column, columns, area, edge)
	return start + width/2
}

// LinearAxis is a ValueAxis mapping [Min, Max] linearly onto the value
// dimension. Inverted flips the direction, which the viewer uses in
// portrait so larger values sit higher on screen.
type LinearAxis struct {
	Min, Max float64
	Inverted bool
}

func (a LinearAxis) Coordinate(value float64, area Rect, edge Edge) float64 {
	origin, length := span(area, edge)
	interval := a.Max - a.Min
	if interval == 0 {
		interval = 1
	}
	t := (value - a.Min) / interval
	if a.Inverted {
		t = 1 - t
	}
	return origin + t*length
}

// FitLinearAxis sizes a LinearAxis to hold every present value in the
// dataset. The axis includes zero so flat bars keep a visible baseline.
func FitLinearAxis(d Dataset) LinearAxis {
	var a LinearAxis
	for row := 0; row < d.RowCount(); row++ {
		for col := 0; col < d.ColumnCount(); col++ {
			v, ok := d.Value(row, col)
			if !ok {
				continue
			}
			a.Min = min(a.Min, v)
			a.Max = max(a.Max, v)
		}
	}
	if a.Min == a.Max {
		a.Max = a.Min + 1
	}
	return a
}
