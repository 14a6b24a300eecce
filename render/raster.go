package render

import (
	"fmt"

	"bitcube/fix"
)

// edge walks the integer digital line between two pixels, one pixel per step.
type edge struct {
	x, y     int
	dx1, dy1 int // step taken when the error term overflows
	dx2, dy2 int // step along the long axis only
	long     int
	short    int
	num      int
}

func newEdge(x0, y0, x1, y1 int) edge {
	w := x1 - x0
	h := y1 - y0
	e := edge{
		x:     x0,
		y:     y0,
		dx1:   signInt(w),
		dy1:   signInt(h),
		long:  absInt(w),
		short: absInt(h),
	}
	e.dx2 = e.dx1
	if e.long <= e.short {
		e.long, e.short = e.short, e.long
		e.dx2 = 0
		e.dy2 = e.dy1
	}
	e.num = e.long >> 1
	return e
}

// steps is the number of pixels on the edge, both ends included.
func (e *edge) steps() int { return e.long + 1 }

func (e *edge) next() {
	e.num += e.short
	if e.num >= e.long {
		e.num -= e.long
		e.x += e.dx1
		e.y += e.dy1
		return
	}
	e.x += e.dx2
	e.y += e.dy2
}

// DrawLine plots the pixels from a to b, both endpoints included. Endpoints
// are truncated to pixels. The line is not clipped; the surface must discard
// out-of-range points.
func DrawLine(s Surface, a, b fix.Vec2, c uint8) {
	ax, ay := a.Trunc()
	bx, by := b.Trunc()
	e := newEdge(ax, ay, bx, by)
	for i := 0; i < e.steps(); i++ {
		s.DrawPoint(e.x, e.y, c)
		e.next()
	}
}

// Rasterizer scan-fills triangles onto surfaces of a fixed size.
//
// It owns the per-row boundary cache used during a fill, so a Rasterizer must
// not be shared between goroutines.
type Rasterizer struct {
	w, h   int
	bounds []int // x reached by the short edges, indexed by row
}

// NewRasterizer returns a rasterizer for w x h surfaces.
func NewRasterizer(w, h int) *Rasterizer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Rasterizer{w: w, h: h, bounds: make([]int, h)}
}

func (r *Rasterizer) Size() (w, h int) { return r.w, r.h }

func (r *Rasterizer) row(y int) *int {
	if y < 0 || y >= len(r.bounds) {
		panic(fmt.Sprintf("render: boundary row %d outside [0, %d)", y, len(r.bounds)))
	}
	return &r.bounds[y]
}

// DrawTriangle fills tri with one horizontal span per covered row.
//
// The vertex whose y lies between the other two splits the triangle into two
// short edges and one long edge. The short edges record, per row, the x they
// reach; walking the long edge then closes each row's span against that
// record. Rows outside the surface are skipped and every x is clamped to the
// surface before drawing.
func (r *Rasterizer) DrawTriangle(s Surface, tri fix.Triangle2D, c uint8) {
	var px, py [3]int
	for i, v := range tri {
		px[i], py[i] = v.Trunc()
	}

	mid := middleVertex(py)
	o0, o1 := outerVertices(mid)
	edges := [3]edge{
		newEdge(px[mid], py[mid], px[o0], py[o0]),
		newEdge(px[mid], py[mid], px[o1], py[o1]),
		newEdge(px[o0], py[o0], px[o1], py[o1]),
	}

	for i := 0; i < 2; i++ {
		e := &edges[i]
		for n := e.steps(); n > 0; n-- {
			if e.y >= 0 && e.y < r.h {
				*r.row(e.y) = clampInt(e.x, 0, r.w-1)
			}
			e.next()
		}
	}

	e := &edges[2]
	prevY := -1
	for n := e.steps(); n > 0; n-- {
		if e.y != prevY && e.y >= 0 && e.y < r.h {
			r.span(s, e.x, *r.row(e.y), e.y, c)
			prevY = e.y
		}
		e.next()
	}
}

func (r *Rasterizer) span(s Surface, x0, x1, y int, c uint8) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = clampInt(x0, 0, r.w-1)
	x1 = clampInt(x1, 0, r.w-1)

	s.DrawPoint(x0, y, c)
	for x := x0 + x0&1; x < x1; x += 2 {
		s.DrawWidePoint(x, y, c)
	}
	s.DrawPoint(x1, y, c)
}

// middleVertex returns the index of the vertex whose y lies between the
// other two (ties resolve to any valid median).
func middleVertex(y [3]int) int {
	if y[0] > y[1] {
		switch {
		case y[1] > y[2]:
			return 1
		case y[0] > y[2]:
			return 2
		default:
			return 0
		}
	}
	switch {
	case y[0] > y[2]:
		return 0
	case y[1] > y[2]:
		return 2
	default:
		return 1
	}
}

func outerVertices(mid int) (int, int) {
	switch mid {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

func signInt(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
