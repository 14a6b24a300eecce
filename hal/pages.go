package hal

import (
	"image"
	"sync"

	"bitcube/render"
)

// Pages is a double-buffered 8-bit indexed display held in memory.
//
// Backends that own a real panel set a present hook; host runners read the
// front page back with FrontRGBA.
type Pages struct {
	mu      sync.Mutex
	w, h    int
	page    [2]*render.Bitmap
	back    int
	palette [256]uint16
	flips   uint64

	present func(front *render.Bitmap, palette *[256]uint16)
}

// NewPages returns two cleared w x h pages and an all-black palette.
func NewPages(w, h int) *Pages {
	return &Pages{
		w:    w,
		h:    h,
		page: [2]*render.Bitmap{render.NewBitmap(w, h), render.NewBitmap(w, h)},
	}
}

func (p *Pages) Width() int  { return p.w }
func (p *Pages) Height() int { return p.h }

// Surface returns the back page.
func (p *Pages) Surface() render.Surface { return p.Back() }

func (p *Pages) Back() *render.Bitmap {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page[p.back]
}

func (p *Pages) Front() *render.Bitmap {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page[p.back^1]
}

func (p *Pages) SetPaletteEntry(index uint8, bgr555 uint16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.palette[index] = bgr555
}

func (p *Pages) PaletteEntry(index uint8) uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.palette[index]
}

// FlipPage swaps front and back and hands the new front page to the present
// hook, if any.
func (p *Pages) FlipPage() {
	p.mu.Lock()
	p.back ^= 1
	p.flips++
	front := p.page[p.back^1]
	present := p.present
	p.mu.Unlock()

	if present != nil {
		present(front, &p.palette)
	}
}

// Flips returns the number of FlipPage calls so far.
func (p *Pages) Flips() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flips
}

// FrontRGBA converts the front page through the palette into dst, allocating
// a new image when dst is nil or has the wrong size.
func (p *Pages) FrontRGBA(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != p.w || dst.Bounds().Dy() != p.h {
		dst = image.NewRGBA(image.Rect(0, 0, p.w, p.h))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var lut [256][3]uint8
	for i, c := range p.palette {
		lut[i][0], lut[i][1], lut[i][2] = rgb888FromBGR555(c)
	}

	src := p.page[p.back^1].Pix
	for y := 0; y < p.h; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < p.w; x++ {
			c := lut[src[y*p.w+x]]
			j := x * 4
			row[j+0] = c[0]
			row[j+1] = c[1]
			row[j+2] = c[2]
			row[j+3] = 0xFF
		}
	}
	return dst
}
