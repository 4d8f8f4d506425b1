package main

import (
	"fmt"
	"image"
	"strconv"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"golang.org/x/exp/constraints"

	"git.sr.ht/~whereswaldon/stepchart/render"
)

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// ChartData holds the interactive state of the chart: the current
// table, the renderer configuration widgets, and hover tracking.
type ChartData struct {
	table    *render.Table
	renderer *render.StepRenderer
	entities render.EntityCollection

	Enabled   []*widget.Bool
	Stagger   widget.Bool
	Landscape widget.Bool
	Labels    widget.Bool
	keyTable  component.GridState

	// hover gesture state
	pos       f32.Point
	isHovered bool
}

func NewChart() *ChartData {
	c := &ChartData{
		renderer: render.NewStepRenderer(true),
		Stagger:  widget.Bool{Value: true},
	}
	return c
}

// SetTable swaps in a freshly loaded table. Per-series visibility
// survives reloads so a watched file doesn't reset the key.
func (c *ChartData) SetTable(t *render.Table) {
	c.table = t
}

// HasData reports whether a loaded table is available to draw. A
// failed reload keeps the last good table on screen.
func (c *ChartData) HasData() bool {
	return c.table != nil && c.table.RowCount() > 0
}

func (c *ChartData) Update(gtx C) {
	if c.table == nil {
		return
	}
	for len(c.Enabled) < c.table.RowCount() {
		c.Enabled = append(c.Enabled, &widget.Bool{Value: true})
	}
	c.Stagger.Update(gtx)
	c.Landscape.Update(gtx)
	c.Labels.Update(gtx)
	if c.Stagger.Value != c.renderer.Stagger() {
		c.renderer.SetStagger(c.Stagger.Value)
	}
	c.renderer.Style.ItemLabels = c.Labels.Value
	hidden := c.renderer.Style.SeriesHidden
	for len(hidden) < len(c.Enabled) {
		hidden = append(hidden, false)
	}
	for i, enabled := range c.Enabled {
		hidden[i] = !enabled.Value
	}
	c.renderer.Style.SeriesHidden = hidden
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: c,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Move,
		})
		if !ok {
			break
		}
		switch ev := ev.(type) {
		case pointer.Event:
			switch ev.Kind {
			case pointer.Enter:
				c.isHovered = true
				c.pos = ev.Position
			case pointer.Leave, pointer.Cancel:
				c.isHovered = false
			case pointer.Move:
				c.pos = ev.Position
			}
		}
	}
}

func (c *ChartData) Layout(gtx C, th *material.Theme) D {
	c.Update(gtx)
	if c.table == nil || c.table.RowCount() == 0 {
		return D{Size: gtx.Constraints.Max}
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return c.layoutToggles(gtx, th)
		}),
		layout.Flexed(1, func(gtx C) D {
			return c.layoutPlot(gtx, th)
		}),
		layout.Rigid(func(gtx C) D {
			return c.layoutKey(gtx, th)
		}),
	)
}

func (c *ChartData) layoutToggles(gtx C, th *material.Theme) D {
	return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
		return layout.Flex{}.Layout(gtx,
			layout.Rigid(material.CheckBox(th, &c.Stagger, "Stagger").Layout),
			layout.Rigid(layout.Spacer{Width: 8}.Layout),
			layout.Rigid(material.CheckBox(th, &c.Landscape, "Landscape").Layout),
			layout.Rigid(layout.Spacer{Width: 8}.Layout),
			layout.Rigid(material.CheckBox(th, &c.Labels, "Values").Layout),
		)
	})
}

// categoryStrip reserves room along the category axis for its labels.
func (c *ChartData) categoryStrip(gtx C) float64 {
	return float64(gtx.Sp(18))
}

func (c *ChartData) layoutPlot(gtx C, th *material.Theme) D {
	return layout.UniformInset(8).Layout(gtx, func(gtx C) D {
		defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
		event.Op(gtx.Ops, c)

		area := render.Rect{
			W: float64(gtx.Constraints.Max.X),
			H: float64(gtx.Constraints.Max.Y),
		}
		strip := c.categoryStrip(gtx)
		orientation := render.Portrait
		axis := render.FitLinearAxis(c.table)
		if c.Landscape.Value {
			orientation = render.Landscape
			labelW := c.widestCategory(gtx, th)
			area.X = labelW
			area.W -= labelW
		} else {
			axis.Inverted = true
			area.H -= strip
		}
		plot := render.Plot{
			Dataset:     c.table,
			Category:    render.BandAxis{Margin: 0.1},
			Value:       axis,
			Renderer:    c.renderer,
			Orientation: orientation,
		}
		c.entities.Reset()
		canvas := newGioCanvas(gtx, th)
		plot.Draw(canvas, area, &c.entities)
		c.layoutCategoryLabels(gtx, th, canvas, area, orientation)

		if c.isHovered {
			if e, ok := c.entities.At(float64(c.pos.X), float64(c.pos.Y)); ok {
				c.layoutTooltip(gtx, th, e)
			}
		}
		return D{Size: gtx.Constraints.Max}
	})
}

// widestCategory measures the widest category label so landscape mode
// can reserve exactly enough room at the left edge.
func (c *ChartData) widestCategory(gtx C, th *material.Theme) float64 {
	origConstraints := gtx.Constraints
	gtx.Constraints.Min = image.Point{}
	widest := 0
	for col := 0; col < c.table.ColumnCount(); col++ {
		macro := op.Record(gtx.Ops)
		dims := material.Body2(th, c.table.Category(col)).Layout(gtx)
		_ = macro.Stop()
		widest = max(widest, dims.Size.X)
	}
	gtx.Constraints = origConstraints
	return float64(widest + gtx.Dp(4))
}

func (c *ChartData) layoutCategoryLabels(gtx C, th *material.Theme, canvas *gioCanvas, area render.Rect, o render.Orientation) {
	axis := render.BandAxis{Margin: 0.1}
	columns := c.table.ColumnCount()
	canvas.SetPaint(th.Fg)
	for col := 0; col < columns; col++ {
		label := c.table.Category(col)
		if o == render.Landscape {
			mid := axis.BandMiddle(col, columns, area, render.EdgeLeft)
			canvas.DrawLabel(label, area.X/2, mid+float64(gtx.Sp(7)), false)
		} else {
			mid := axis.BandMiddle(col, columns, area, render.EdgeBottom)
			canvas.DrawLabel(label, mid, area.Y+area.H, true)
		}
	}
}

// layoutTooltip draws the hovered step's identity beside the cursor,
// nudged back on screen when the cursor is near an edge.
func (c *ChartData) layoutTooltip(gtx C, th *material.Theme, e render.Entity) {
	value, _ := e.Dataset.Value(e.Row, e.Column)
	origConstraints := gtx.Constraints
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := layout.Background{}.Layout(gtx,
		func(gtx C) D {
			paint.FillShape(gtx.Ops, th.Bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.UniformInset(8).Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(material.Body2(th, e.Dataset.SeriesKey(e.Row)).Layout),
					layout.Rigid(material.Body2(th, e.Dataset.Category(e.Column)).Layout),
					layout.Rigid(material.Body2(th, strconv.FormatFloat(value, 'f', -1, 64)).Layout),
				)
			})
		},
	)
	call := macro.Stop()
	gtx.Constraints = origConstraints

	pos := image.Pt(int(c.pos.X)+gtx.Dp(8), int(c.pos.Y)+gtx.Dp(8))
	if pos.X+dims.Size.X > gtx.Constraints.Max.X {
		pos.X = max(pos.X-dims.Size.X-gtx.Dp(16), 0)
	}
	pos.Y = clamp(pos.Y, 0, max(gtx.Constraints.Max.Y-dims.Size.Y, 0))
	transform := op.Offset(pos).Push(gtx.Ops)
	call.Add(gtx.Ops)
	transform.Pop()
}

// seriesExtent scans one series for its smallest and largest present
// values.
func seriesExtent(d render.Dataset, row int) (lo, hi float64, ok bool) {
	for col := 0; col < d.ColumnCount(); col++ {
		v, present := d.Value(row, col)
		if !present {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, ok
}

func (c *ChartData) layoutKey(gtx C, th *material.Theme) D {
	table := component.Table(th, &c.keyTable)
	table.HScrollbarStyle.Indicator.MinorWidth = 0
	table.HScrollbarStyle.Track.MinorPadding = 0
	table.VScrollbarStyle.Indicator.MinorWidth = 0
	table.VScrollbarStyle.Track.MinorPadding = 0
	colorColWidth := gtx.Dp(50)
	extentColWidth := gtx.Dp(100)
	nameColWidth := gtx.Constraints.Max.X - colorColWidth - 2*extentColWidth - gtx.Dp(table.VScrollbarStyle.Width())
	rowHeight := gtx.Sp(20)
	const (
		colorCol = iota
		seriesNameCol
		minCol
		maxCol
		numCols
	)
	return table.Layout(gtx, c.table.RowCount(), numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			var size int
			switch index {
			case colorCol:
				size = colorColWidth
			case seriesNameCol:
				size = nameColWidth
			case minCol, maxCol:
				size = extentColWidth
			}
			return min(size, constraint)
		},
		func(gtx C, index int) D {
			var l material.LabelStyle
			switch index {
			case colorCol:
				l = material.Body1(th, "Show")
			case seriesNameCol:
				l = material.Body1(th, "Series")
				l.Alignment = text.Middle
			case minCol:
				l = material.Body1(th, "Min")
				l.Alignment = text.End
			case maxCol:
				l = material.Body1(th, "Max")
				l.Alignment = text.End
			}
			l.Color = th.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					paint.FillShape(gtx.Ops, th.ContrastBg, clip.Rect{Max: gtx.Constraints.Max}.Op())
					return D{Size: gtx.Constraints.Min}
				},
				l.Layout,
			)
		},
		func(gtx C, row, col int) (dims D) {
			defer func() {
				dims.Size = gtx.Constraints.Constrain(dims.Size)
			}()
			c.Enabled[row].Update(gtx)
			enabled := c.Enabled[row].Value
			lo, hi, _ := seriesExtent(c.table, row)
			dims = layout.UniformInset(2).Layout(gtx, func(gtx C) D {
				switch col {
				case colorCol:
					return c.Enabled[row].Layout(gtx, func(gtx C) D {
						return layout.Center.Layout(gtx, func(gtx C) D {
							sideLen := gtx.Dp(10)
							sz := image.Pt(sideLen, sideLen)
							fullColor := seriesColor(row)
							if !enabled {
								fullColor = dimmed(fullColor)
							}
							paint.FillShape(gtx.Ops, fullColor, clip.Rect{Max: sz}.Op())
							return D{Size: sz}
						})
					})
				case seriesNameCol:
					l := material.Body2(th, c.table.SeriesKey(row))
					if !enabled {
						l.Color.A = disabledAlpha
					}
					return l.Layout(gtx)
				case minCol, maxCol:
					v := lo
					if col == maxCol {
						v = hi
					}
					l := material.Body2(th, fmt.Sprintf("%.2f", v))
					if !enabled {
						l.Color.A = disabledAlpha
					}
					l.Alignment = text.End
					return l.Layout(gtx)
				default:
					return D{Size: gtx.Constraints.Max}
				}
			})
			if row&1 != 0 {
				stripe := dimmed(seriesColor(row))
				stripe.A = 50
				paint.FillShape(gtx.Ops, stripe, clip.Rect{Max: gtx.Constraints.Max}.Op())
			}
			return dims
		})
}
