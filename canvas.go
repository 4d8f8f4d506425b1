package main

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"git.sr.ht/~whereswaldon/stepchart/render"
)

// gioCanvas adapts one frame's operation list to the renderer's canvas.
// It is rebuilt every frame; only paint and stroke state persist
// between primitives within a frame.
type gioCanvas struct {
	gtx    C
	th     *material.Theme
	paint  color.NRGBA
	stroke float64
}

var _ render.Canvas = (*gioCanvas)(nil)

func newGioCanvas(gtx C, th *material.Theme) *gioCanvas {
	return &gioCanvas{gtx: gtx, th: th, paint: color.NRGBA{A: 0xff}, stroke: 1}
}

func (c *gioCanvas) SetPaint(p color.NRGBA) { c.paint = p }

func (c *gioCanvas) SetStroke(width float64) { c.stroke = width }

func (c *gioCanvas) DrawLine(x0, y0, x1, y1 float64) {
	var p clip.Path
	p.Begin(c.gtx.Ops)
	p.MoveTo(f32.Pt(float32(x0), float32(y0)))
	p.LineTo(f32.Pt(float32(x1), float32(y1)))
	paint.FillShape(c.gtx.Ops, c.paint, clip.Stroke{
		Path:  p.End(),
		Width: float32(max(c.stroke, 1)),
	}.Op())
}

func (c *gioCanvas) DrawLabel(text string, x, y float64, below bool) {
	l := material.Body2(c.th, text)
	l.Color = c.paint
	// Measure first so the label can be centered on x and offset clear
	// of the anchor.
	origConstraints := c.gtx.Constraints
	c.gtx.Constraints.Min = image.Point{}
	macro := op.Record(c.gtx.Ops)
	dims := l.Layout(c.gtx)
	call := macro.Stop()
	c.gtx.Constraints = origConstraints

	pos := image.Pt(int(x)-dims.Size.X/2, int(y)-dims.Size.Y-2)
	if below {
		pos.Y = int(y) + 2
	}
	transform := op.Offset(pos).Push(c.gtx.Ops)
	call.Add(c.gtx.Ops)
	transform.Pop()
}
