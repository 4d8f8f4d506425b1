package export

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"git.sr.ht/~whereswaldon/stepchart/render"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func svgColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

// SVGCanvas accumulates drawing operations as SVG markup. Finish wraps
// the accumulated body in a complete document.
type SVGCanvas struct {
	body   bytes.Buffer
	w, h   float64
	paint  color.NRGBA
	stroke float64
}

var _ render.Canvas = (*SVGCanvas)(nil)

func NewSVGCanvas(width, height float64) *SVGCanvas {
	return &SVGCanvas{w: width, h: height, paint: color.NRGBA{A: 0xff}, stroke: 1}
}

func (c *SVGCanvas) SetPaint(p color.NRGBA) { c.paint = p }

func (c *SVGCanvas) SetStroke(width float64) { c.stroke = width }

func (c *SVGCanvas) DrawLine(x0, y0, x1, y1 float64) {
	fmt.Fprintf(&c.body, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="square"/>`+"\n",
		x0, y0, x1, y1, svgColor(c.paint), c.stroke)
}

func (c *SVGCanvas) DrawLabel(text string, x, y float64, below bool) {
	// dominant-baseline keeps the offset meaning the same in both
	// directions: the text block sits entirely on one side of y.
	baseline, offset := "text-after-edge", -4.0
	if below {
		baseline, offset = "text-before-edge", 4.0
	}
	fmt.Fprintf(&c.body, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%d" fill="%s" text-anchor="middle" dominant-baseline="%s">%s</text>`+"\n",
		x, y+offset, labelSize, svgColor(c.paint), baseline, xmlEscaper.Replace(text))
}

func (c *SVGCanvas) fillRect(x, y, w, h float64, p color.NRGBA) {
	fmt.Fprintf(&c.body, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		x, y, w, h, svgColor(p))
}

// Finish returns the complete SVG document.
func (c *SVGCanvas) Finish() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n", c.w, c.h, c.w, c.h)
	fmt.Fprintf(&out, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")
	out.Write(c.body.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

// SVG renders the table as a standalone SVG chart with a legend strip
// along the top edge.
func SVG(d render.Dataset, o Options) ([]byte, error) {
	w, _ := o.size()
	canvas := NewSVGCanvas(o.size())
	plot := plotFor(d, o)
	plot.Draw(canvas, chartArea(o), nil)

	x := float64(chartMargin)
	for _, entry := range plot.LegendEntries() {
		canvas.fillRect(x, chartMargin, swatchSize, swatchSize, entry.Paint)
		x += swatchSize + 4
		canvas.SetPaint(color.NRGBA{A: 0xff})
		canvas.DrawLabel(entry.Label, x+float64(len(entry.Label))*labelSize/4, chartMargin+swatchSize+2, false)
		x += float64(len(entry.Label))*labelSize/2 + 12
		if x > w {
			break
		}
	}
	return canvas.Finish(), nil
}
