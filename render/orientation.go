package render

// Orientation selects which drawing-surface axis the category dimension
// occupies. Every segment, label anchor, and hit region passes through
// Adapt exactly once, so the rest of the renderer is written in
// (category, value) coordinates and never branches on orientation.
type Orientation uint8

const (
	// Portrait lays categories out along the horizontal axis.
	Portrait Orientation = iota
	// Landscape swaps the axes: categories run vertically.
	Landscape
)

// Adapt maps a (category, value) coordinate pair onto the drawing
// surface's (x, y) axes.
func (o Orientation) Adapt(cat, val float64) (x, y float64) {
	if o == Landscape {
		return val, cat
	}
	return cat, val
}

// axisEdges reports which edge of the draw area each axis sits on.
func (o Orientation) axisEdges() (category, value Edge) {
	if o == Landscape {
		return EdgeLeft, EdgeBottom
	}
	return EdgeBottom, EdgeLeft
}

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}
