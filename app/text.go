package app

import (
	"image/color"

	"bitcube/render"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var hudFont = &proggy.TinySZ8pt7b

const hudLineHeight = 9

// pageDisplayer lets tinyfont draw onto an indexed surface. tinyfont only
// sets foreground pixels, so every SetPixel is painted in ink.
type pageDisplayer struct {
	s    render.Surface
	w, h int16
	ink  uint8
}

var _ drivers.Displayer = (*pageDisplayer)(nil)

func (d *pageDisplayer) Size() (x, y int16) { return d.w, d.h }

func (d *pageDisplayer) SetPixel(x, y int16, _ color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.s.DrawPoint(int(x), int(y), d.ink)
}

func (d *pageDisplayer) Display() error { return nil }

// writeLines draws lines top-down starting at (x, y), one per row of text,
// and stops at the bottom of the surface.
func writeLines(d *pageDisplayer, x, y int16, lines []string) {
	for _, line := range lines {
		if y+hudLineHeight > d.h {
			return
		}
		tinyfont.WriteLine(d, hudFont, x, y+hudLineHeight-2, line, color.RGBA{A: 0xFF})
		y += hudLineHeight
	}
}
