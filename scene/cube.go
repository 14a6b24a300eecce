package scene

import "bitcube/fix"

// Palette indices used by the cube faces.
const (
	ColorRed    uint8 = 1
	ColorYellow uint8 = 4
	ColorGreen  uint8 = 28
	ColorBlue   uint8 = 125
	ColorCyan   uint8 = 128
	ColorWhite  uint8 = 100
	ColorBlack  uint8 = 0
)

// CubeHalfSize is the distance from the cube center to each face.
const CubeHalfSize = 24

func tri(color uint8, a, b, c [3]int) Polygon {
	return Polygon{
		Color: color,
		Vertices: fix.Triangle3D{
			fix.V3i(a[0], a[1], a[2]),
			fix.V3i(b[0], b[1], b[2]),
			fix.V3i(c[0], c[1], c[2]),
		},
	}
}

// Cube returns the 12-triangle cube mesh. Two triangles share each color.
// Every triangle is wound so that it faces the viewer when its projected
// signed area is negative.
func Cube() Mesh {
	const p, n = CubeHalfSize, -CubeHalfSize
	return Mesh{
		Polygons: []Polygon{
			tri(ColorRed, [3]int{p, n, p}, [3]int{n, n, p}, [3]int{n, n, n}),
			tri(ColorRed, [3]int{n, p, n}, [3]int{n, p, p}, [3]int{p, p, p}),
			tri(ColorYellow, [3]int{p, p, n}, [3]int{p, p, p}, [3]int{p, n, p}),
			tri(ColorYellow, [3]int{p, p, p}, [3]int{n, p, p}, [3]int{n, n, p}),
			tri(ColorGreen, [3]int{n, n, p}, [3]int{n, p, p}, [3]int{n, p, n}),
			tri(ColorGreen, [3]int{p, n, n}, [3]int{n, n, n}, [3]int{n, p, n}),
			tri(ColorBlue, [3]int{p, n, n}, [3]int{p, n, p}, [3]int{n, n, n}),
			tri(ColorBlue, [3]int{p, p, n}, [3]int{n, p, n}, [3]int{p, p, p}),
			tri(ColorCyan, [3]int{p, n, n}, [3]int{p, p, n}, [3]int{p, n, p}),
			tri(ColorCyan, [3]int{p, n, p}, [3]int{p, p, p}, [3]int{n, n, p}),
			tri(ColorWhite, [3]int{n, n, n}, [3]int{n, n, p}, [3]int{n, p, n}),
			tri(ColorWhite, [3]int{p, p, n}, [3]int{p, n, n}, [3]int{n, p, n}),
		},
		Pos: fix.V3i(0, 0, -32),
	}
}
