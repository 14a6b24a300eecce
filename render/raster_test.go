package render

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"bitcube/fix"
)

type point struct{ x, y int }

// recorder is a Surface that keeps every write, in order, without clipping.
type recorder struct {
	points []point
}

func (r *recorder) Clear(uint8) { r.points = r.points[:0] }

func (r *recorder) DrawPoint(x, y int, _ uint8) {
	r.points = append(r.points, point{x, y})
}

func (r *recorder) DrawWidePoint(x, y int, c uint8) {
	r.DrawPoint(x, y, c)
	r.DrawPoint(x+1, y, c)
}

func px(x, y int) fix.Vec2 { return fix.V2(fix.FromInt(x), fix.FromInt(y)) }

func TestDrawLineEndpointsAndCount(t *testing.T) {
	cases := []struct{ ax, ay, bx, by int }{
		{0, 0, 0, 0},
		{0, 0, 10, 0},
		{0, 0, 0, 10},
		{3, 4, 20, 9},
		{20, 9, 3, 4},
		{5, 5, -7, 30},
		{0, 0, 10, 10},
		{100, 2, 98, 50},
	}
	for _, tc := range cases {
		var r recorder
		DrawLine(&r, px(tc.ax, tc.ay), px(tc.bx, tc.by), 1)

		want := max(absInt(tc.bx-tc.ax), absInt(tc.by-tc.ay)) + 1
		if len(r.points) != want {
			t.Fatalf("line %+v: %d points, want %d", tc, len(r.points), want)
		}
		if first := r.points[0]; first != (point{tc.ax, tc.ay}) {
			t.Fatalf("line %+v: first=%v", tc, first)
		}
		if last := r.points[len(r.points)-1]; last != (point{tc.bx, tc.by}) {
			t.Fatalf("line %+v: last=%v", tc, last)
		}
	}
}

func TestDrawLineTruncatesEndpoints(t *testing.T) {
	var r recorder
	a := fix.V2(fix.FromFraction(39, 10), fix.FromFraction(-9, 10))
	b := fix.V2(fix.FromFraction(71, 10), fix.FromFraction(19, 10))
	DrawLine(&r, a, b, 1)
	if r.points[0] != (point{3, 0}) || r.points[len(r.points)-1] != (point{7, 1}) {
		t.Fatalf("points=%v", r.points)
	}
}

func TestDrawLineSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		ax, ay := rng.Intn(350)-50, rng.Intn(250)-50
		bx, by := rng.Intn(350)-50, rng.Intn(250)-50

		var fwd, back recorder
		DrawLine(&fwd, px(ax, ay), px(bx, by), 1)
		DrawLine(&back, px(bx, by), px(ax, ay), 1)
		if len(fwd.points) != len(back.points) {
			t.Fatalf("(%d,%d)-(%d,%d): %d vs %d points", ax, ay, bx, by, len(fwd.points), len(back.points))
		}

		xMajor := absInt(bx-ax) >= absInt(by-ay)
		minor := func(pts []point) map[int]int {
			m := make(map[int]int, len(pts))
			for _, p := range pts {
				if xMajor {
					m[p.x] = p.y
				} else {
					m[p.y] = p.x
				}
			}
			return m
		}
		f, b := minor(fwd.points), minor(back.points)
		if len(f) != len(fwd.points) {
			t.Fatalf("(%d,%d)-(%d,%d): more than one pixel per major step", ax, ay, bx, by)
		}
		for k, v := range f {
			if d := absInt(v - b[k]); d > 1 {
				t.Fatalf("(%d,%d)-(%d,%d): directions differ by %d at %d", ax, ay, bx, by, d, k)
			}
		}
	}
}

func TestDrawLineDoesNotClip(t *testing.T) {
	var r recorder
	DrawLine(&r, px(-5, -5), px(5, 5), 1)
	if r.points[0] != (point{-5, -5}) {
		t.Fatalf("first=%v", r.points[0])
	}
}

func TestMiddleVertex(t *testing.T) {
	cases := []struct {
		y    [3]int
		want int
	}{
		{[3]int{0, 5, 10}, 1},
		{[3]int{10, 5, 0}, 1},
		{[3]int{5, 0, 10}, 0},
		{[3]int{5, 10, 0}, 0},
		{[3]int{0, 10, 5}, 2},
		{[3]int{10, 0, 5}, 2},
	}
	for _, tc := range cases {
		if got := middleVertex(tc.y); got != tc.want {
			t.Fatalf("middleVertex(%v)=%d, want %d", tc.y, got, tc.want)
		}
	}
}

// edgeDistance returns the signed distances of (x, y) from the three edges
// of tri, positive on the interior side.
func edgeDistance(tri [3]point, x, y float64) (d [3]float64, ok bool) {
	area := float64((tri[1].x-tri[0].x)*(tri[2].y-tri[0].y) - (tri[1].y-tri[0].y)*(tri[2].x-tri[0].x))
	if area == 0 {
		return d, false
	}
	for i := range tri {
		a, b := tri[i], tri[(i+1)%3]
		ex, ey := float64(b.x-a.x), float64(b.y-a.y)
		cross := ex*(y-float64(a.y)) - ey*(x-float64(a.x))
		d[i] = cross / math.Hypot(ex, ey)
		if area < 0 {
			d[i] = -d[i]
		}
	}
	return d, true
}

func TestDrawTriangleCoverage(t *testing.T) {
	const w, h = 240, 160
	const margin = 1.5

	rng := rand.New(rand.NewSource(7))
	rast := NewRasterizer(w, h)
	bmp := NewBitmap(w, h)

	for i := 0; i < 300; i++ {
		var tri [3]point
		var screen fix.Triangle2D
		for k := range tri {
			tri[k] = point{rng.Intn(w), rng.Intn(h)}
			screen[k] = px(tri[k].x, tri[k].y)
		}

		bmp.Clear(0)
		rast.DrawTriangle(bmp, screen, 1)

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				d, ok := edgeDistance(tri, float64(x), float64(y))
				if !ok {
					continue
				}
				inside := d[0] > margin && d[1] > margin && d[2] > margin
				outside := d[0] < -margin || d[1] < -margin || d[2] < -margin
				got := bmp.At(x, y) == 1
				if inside && !got {
					t.Fatalf("triangle %v: interior pixel (%d,%d) not filled", tri, x, y)
				}
				if outside && got {
					t.Fatalf("triangle %v: exterior pixel (%d,%d) filled", tri, x, y)
				}
			}
		}
	}
}

func TestDrawTriangleCoversEveryRow(t *testing.T) {
	rast := NewRasterizer(240, 160)
	var r recorder
	rast.DrawTriangle(&r, fix.Triangle2D{px(10, 10), px(100, 40), px(30, 90)}, 1)

	rows := map[int]bool{}
	for _, p := range r.points {
		rows[p.y] = true
	}
	for y := 10; y <= 90; y++ {
		if !rows[y] {
			t.Fatalf("row %d not covered", y)
		}
	}
	if rows[9] || rows[91] {
		t.Fatal("span drawn outside the triangle's rows")
	}
}

func TestDrawTriangleClampsToSurface(t *testing.T) {
	const w, h = 240, 160
	rast := NewRasterizer(w, h)
	var r recorder
	tri := fix.Triangle2D{px(-500, -300), px(900, 80), px(-200, 700)}
	rast.DrawTriangle(&r, tri, 1)

	if len(r.points) == 0 {
		t.Fatal("nothing drawn for a triangle covering the surface")
	}
	for _, p := range r.points {
		if p.x < 0 || p.x >= w || p.y < 0 || p.y >= h {
			t.Fatalf("point %v outside %dx%d", p, w, h)
		}
	}
}

func TestDrawTriangleFullyOffscreen(t *testing.T) {
	rast := NewRasterizer(240, 160)
	var r recorder
	rast.DrawTriangle(&r, fix.Triangle2D{px(10, -50), px(60, -20), px(30, -90)}, 1)
	rast.DrawTriangle(&r, fix.Triangle2D{px(10, 200), px(60, 170), px(30, 400)}, 1)
	if len(r.points) != 0 {
		t.Fatalf("drew %d points for offscreen triangles", len(r.points))
	}
}

func TestDrawTriangleDegenerate(t *testing.T) {
	bmp := NewBitmap(240, 160)
	rast := NewRasterizer(240, 160)

	rast.DrawTriangle(bmp, fix.Triangle2D{px(50, 50), px(50, 50), px(50, 50)}, 3)
	if bmp.At(50, 50) != 3 {
		t.Fatal("single-point triangle not drawn")
	}

	bmp.Clear(0)
	rast.DrawTriangle(bmp, fix.Triangle2D{px(10, 20), px(40, 20), px(70, 20)}, 3)
	for x := 10; x <= 70; x++ {
		if bmp.At(x, 20) != 3 {
			t.Fatalf("flat triangle: (%d,20) not filled", x)
		}
	}
}

func TestRasterizerRowPanics(t *testing.T) {
	rast := NewRasterizer(8, 4)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, "boundary row 4") {
			t.Fatalf("panic=%v", r)
		}
	}()
	rast.row(4)
}
