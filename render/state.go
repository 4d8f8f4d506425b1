package render

// Line is a mutable pair of endpoints. One Line per State is reused for
// every segment drawn in a pass so that redraws allocate nothing per
// segment.
type Line struct {
	X0, Y0, X1, Y1 float64
}

func (l *Line) Set(x0, y0, x1, y1 float64) {
	l.X0, l.Y0, l.X1, l.Y1 = x0, y0, x1, y1
}

// State is the scratch for a single render pass. Create one per pass
// via Renderer.NewState and discard it afterwards; a State must never
// be shared between concurrent passes. The Line is overwritten by every
// segment draw and must not be retained.
type State struct {
	Orientation Orientation
	// Entities is nil when interaction tracking is disabled for the
	// pass.
	Entities *EntityCollection

	Line Line

	segments []Segment
}

// draw loads the reusable line with the segment's endpoints and strokes
// it immediately.
func (st *State) draw(c Canvas, s Segment) {
	st.Line.Set(s.X0, s.Y0, s.X1, s.Y1)
	c.DrawLine(st.Line.X0, st.Line.Y0, st.Line.X1, st.Line.Y1)
}
