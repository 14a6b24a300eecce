package render

import (
	"bitcube/fix"
	"bitcube/scene"
)

// RotationMatrix returns the 3x3 matrix that rotates a row vector by rot,
// composed in closed form from the six sines and cosines.
func RotationMatrix(rot fix.Vec3) fix.Matrix {
	sx, cx := rot.X.Sin(), rot.X.Cos()
	sy, cy := rot.Y.Sin(), rot.Y.Cos()
	sz, cz := rot.Z.Sin(), rot.Z.Cos()

	return fix.MatrixOf(
		[]fix.Scalar{
			cx.Mul(cy),
			cx.Mul(sy).Mul(sz) - sx.Mul(cz),
			cx.Mul(sy).Mul(cz) + sx.Mul(sz),
		},
		[]fix.Scalar{
			sx.Mul(cy),
			sx.Mul(sy).Mul(sz) + cx.Mul(cz),
			sx.Mul(sy).Mul(cz) - cx.Mul(sz),
		},
		[]fix.Scalar{
			-sy,
			cy.Mul(sz),
			cy.Mul(cz),
		},
	)
}

// TransformTriangle rotates each vertex of tri by m.
func TransformTriangle(m fix.Matrix, tri fix.Triangle3D) fix.Triangle3D {
	var out fix.Triangle3D
	for i, v := range tri {
		out[i] = fix.FromVertex(v).Mul(m).Vertex()
	}
	return out
}

// Project drops z and moves the origin to center.
func Project(tri fix.Triangle3D, center fix.Vec2) fix.Triangle2D {
	var out fix.Triangle2D
	for i, v := range tri {
		out[i] = v.XY().Add(center)
	}
	return out
}

// SignedArea returns twice the signed area of tri. It is negative when the
// vertices run counter-clockwise on screen (y down).
func SignedArea(tri fix.Triangle2D) fix.Scalar {
	p0, p1, p2 := tri[0], tri[1], tri[2]
	return (p0.X - p1.X).Mul(p0.Y-p2.Y) - (p0.X - p2.X).Mul(p0.Y-p1.Y)
}

// FacesViewer reports whether a projected triangle of a convex mesh with
// outward winding is on the near side.
func FacesViewer(tri fix.Triangle2D) bool {
	return SignedArea(tri) < 0
}

// Face is one polygon after projection.
type Face struct {
	Screen  fix.Triangle2D
	Color   uint8
	Visible bool
}

// Stats describes one rendered frame.
type Stats struct {
	Faces   int // polygons transformed
	Visible int // polygons drawn
}

// Renderer draws a convex mesh with an orthographic camera and no depth
// buffer. It is not safe for concurrent use.
type Renderer struct {
	Center fix.Vec2

	// Outline is the palette index used for edges when Outlines is set.
	Outline  uint8
	Outlines bool

	raster *Rasterizer
	faces  []Face
}

// NewRenderer returns a renderer for a w x h surface. Outlines are on and
// drawn in palette index 0.
func NewRenderer(w, h int) *Renderer {
	return &Renderer{
		Center:   fix.V2(fix.FromInt(w/2), fix.FromInt(h/2)),
		Outlines: true,
		raster:   NewRasterizer(w, h),
	}
}

// Transform rotates and projects every polygon of m and marks the ones that
// face the viewer. The returned slice is reused by the next call.
func (r *Renderer) Transform(m *scene.Mesh) []Face {
	rot := RotationMatrix(m.Rot)
	r.faces = r.faces[:0]
	for _, p := range m.Polygons {
		screen := Project(TransformTriangle(rot, p.Vertices), r.Center)
		r.faces = append(r.faces, Face{
			Screen:  screen,
			Color:   p.Color,
			Visible: FacesViewer(screen),
		})
	}
	return r.faces
}

// Render draws the visible polygons of m onto s in mesh order. It does not
// clear s.
func (r *Renderer) Render(s Surface, m *scene.Mesh) Stats {
	faces := r.Transform(m)
	st := Stats{Faces: len(faces)}
	for _, f := range faces {
		if !f.Visible {
			continue
		}
		st.Visible++
		r.raster.DrawTriangle(s, f.Screen, f.Color)
		if r.Outlines {
			DrawLine(s, f.Screen[0], f.Screen[1], r.Outline)
			DrawLine(s, f.Screen[1], f.Screen[2], r.Outline)
			DrawLine(s, f.Screen[2], f.Screen[0], r.Outline)
		}
	}
	return st
}
