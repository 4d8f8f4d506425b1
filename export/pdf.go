package export

import (
	"fmt"
	gocolor "image/color"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/gofont"
	"seehuhn.de/go/pdf/graphics/color"

	"git.sr.ht/~whereswaldon/stepchart/render"
)

func deviceRGB(c gocolor.NRGBA) color.Color {
	return color.DeviceRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// PDFCanvas draws through a PDF page content stream. PDF's y axis
// grows upward, so every incoming coordinate is flipped against the
// page height.
type PDFCanvas struct {
	page *document.Page
	face font.Layouter
	h    float64
}

var _ render.Canvas = (*PDFCanvas)(nil)

// NewPDFCanvas starts a single-page document of the given size on w.
// Close finalizes the document.
func NewPDFCanvas(w io.Writer, width, height float64) (*PDFCanvas, error) {
	page, err := document.WriteSinglePage(w, &pdf.Rectangle{URx: width, URy: height}, pdf.V2_0, nil)
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	face, err := gofont.Regular.New(nil)
	if err != nil {
		return nil, fmt.Errorf("loading label font: %w", err)
	}
	return &PDFCanvas{page: page, face: face, h: height}, nil
}

func (c *PDFCanvas) flip(y float64) float64 { return c.h - y }

func (c *PDFCanvas) SetPaint(p gocolor.NRGBA) {
	c.page.SetStrokeColor(deviceRGB(p))
	c.page.SetFillColor(deviceRGB(p))
}

func (c *PDFCanvas) SetStroke(width float64) {
	c.page.SetLineWidth(width)
}

func (c *PDFCanvas) DrawLine(x0, y0, x1, y1 float64) {
	c.page.MoveTo(x0, c.flip(y0))
	c.page.LineTo(x1, c.flip(y1))
	c.page.Stroke()
}

func (c *PDFCanvas) DrawLabel(text string, x, y float64, below bool) {
	c.page.TextSetFont(c.face, labelSize)
	c.page.TextBegin()
	seq := c.page.TextLayout(nil, text)
	// The baseline sits above the anchor unless the label is flagged to
	// hang below it.
	baseline := c.flip(y) + 4
	if below {
		baseline = c.flip(y) - 4 - labelSize
	}
	c.page.TextFirstLine(x-seq.TotalWidth()/2, baseline)
	c.page.TextShowGlyphs(seq)
	c.page.TextEnd()
}

func (c *PDFCanvas) fillRect(x, y, w, h float64, p gocolor.NRGBA) {
	c.page.SetFillColor(deviceRGB(p))
	c.page.Rectangle(x, c.flip(y+h), w, h)
	c.page.Fill()
}

// Close flushes the content stream and writes out the document.
func (c *PDFCanvas) Close() error {
	return c.page.Close()
}

// PDF renders the table as a single-page PDF chart with a legend strip
// along the top edge.
func PDF(w io.Writer, d render.Dataset, o Options) error {
	width, height := o.size()
	canvas, err := NewPDFCanvas(w, width, height)
	if err != nil {
		return err
	}
	plot := plotFor(d, o)
	plot.Draw(canvas, chartArea(o), nil)

	x := float64(chartMargin)
	for _, entry := range plot.LegendEntries() {
		canvas.fillRect(x, chartMargin, swatchSize, swatchSize, entry.Paint)
		x += swatchSize + 4
		canvas.SetPaint(gocolor.NRGBA{A: 0xff})
		canvas.DrawLabel(entry.Label, x+float64(len(entry.Label))*labelSize/4, chartMargin+swatchSize+2, false)
		x += float64(len(entry.Label))*labelSize/2 + 12
		if x > width {
			break
		}
	}
	return canvas.Close()
}
