package render

import "image/color"

// Rect is an axis-aligned rectangle in drawing-surface coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Canvas is the drawing surface the renderer draws through. Paint and
// stroke are stateful: a call to SetPaint or SetStroke applies to every
// subsequent primitive until changed.
type Canvas interface {
	SetPaint(p color.NRGBA)
	SetStroke(width float64)
	DrawLine(x0, y0, x1, y1 float64)
	// DrawLabel draws text horizontally centered on x. The label sits
	// above the anchor unless below is set, which is used for negative
	// values so the text does not cross the step line.
	DrawLabel(text string, x, y float64, below bool)
}
