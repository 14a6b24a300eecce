package render

// Surface is an indexed-color drawing target.
//
// DrawPoint may receive coordinates outside the surface; implementations must
// ignore them.
type Surface interface {
	Clear(c uint8)
	DrawPoint(x, y int, c uint8)
	// DrawWidePoint paints (x, y) and (x+1, y).
	DrawWidePoint(x, y int, c uint8)
}

// Bitmap is an 8-bit indexed pixel buffer.
//
// This type is intentionally simple; callers that need presentation wrap it.
type Bitmap struct {
	W   int
	H   int
	Pix []uint8 // row-major, len W*H
}

func NewBitmap(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{W: w, H: h, Pix: make([]uint8, w*h)}
}

func (b *Bitmap) Size() (w, h int) { return b.W, b.H }

func (b *Bitmap) Clear(c uint8) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

func (b *Bitmap) DrawPoint(x, y int, c uint8) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	b.Pix[y*b.W+x] = c
}

func (b *Bitmap) DrawWidePoint(x, y int, c uint8) {
	b.DrawPoint(x, y, c)
	b.DrawPoint(x+1, y, c)
}

// At returns the palette index at (x, y), or 0 outside the bitmap.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return 0
	}
	return b.Pix[y*b.W+x]
}

// CopyFrom copies src into b. Both bitmaps must have the same size.
func (b *Bitmap) CopyFrom(src *Bitmap) {
	copy(b.Pix, src.Pix)
}
