package main

import (
	"image/color"

	"git.sr.ht/~whereswaldon/stepchart/render"
)

// seriesColor cycles the shared palette. The plot and the key table
// must agree on series colors, so both go through here.
func seriesColor(i int) color.NRGBA {
	return render.DefaultPalette[i%len(render.DefaultPalette)]
}

const disabledAlpha = 100

func dimmed(c color.NRGBA) color.NRGBA {
	c.A = disabledAlpha
	return c
}
