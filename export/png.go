package export

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/chromedp/chromedp"

	"git.sr.ht/~whereswaldon/stepchart/render"
)

// PNG renders the chart to SVG and screenshots it in a headless
// browser, yielding PNG bytes. It requires a chrome binary on PATH.
func PNG(ctx context.Context, d render.Dataset, o Options) ([]byte, error) {
	svg, err := SVG(d, o)
	if err != nil {
		return nil, err
	}
	return RasterizeSVG(ctx, svg)
}

// RasterizeSVG screenshots an SVG document in headless chrome. The
// document is handed over as a data URI so nothing touches disk.
func RasterizeSVG(ctx context.Context, svg []byte) ([]byte, error) {
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var shot []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &shot, chromedp.ByQuery),
	}
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return nil, fmt.Errorf("rasterizing chart: %w", err)
	}
	if len(shot) == 0 {
		return nil, fmt.Errorf("rasterizing chart: empty screenshot")
	}
	return shot, nil
}
