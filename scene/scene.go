// Package scene holds the renderable state: one mesh, one camera, and a
// free-running clock. A Scene is built once and mutated in place every frame;
// only the mesh rotation and the clock change after construction.
package scene

import "bitcube/fix"

// Polygon is a flat-colored triangle in mesh-local space.
type Polygon struct {
	Color    uint8 // palette index
	Vertices fix.Triangle3D
}

// Axis names one of the three rotation angles of a Mesh.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Mesh is an ordered list of polygons with a position and an Euler rotation.
//
// Rot holds angles in turns (fix.One is a full revolution).
type Mesh struct {
	Polygons []Polygon
	Pos      fix.Vec3
	Rot      fix.Vec3
}

// Turn adds delta to one rotation angle. Angles are kept in [0, 1) turn;
// the trig functions are periodic, so wrapping does not change the result.
func (m *Mesh) Turn(a Axis, delta fix.Scalar) {
	switch a {
	case AxisX:
		m.Rot.X = (m.Rot.X + delta).Frac()
	case AxisY:
		m.Rot.Y = (m.Rot.Y + delta).Frac()
	case AxisZ:
		m.Rot.Z = (m.Rot.Z + delta).Frac()
	}
}

// Camera is carried in the scene but not consulted by the renderer.
type Camera struct {
	Pos fix.Vec3
	Rot fix.Vec3
}

// Scene owns the camera and the mesh.
type Scene struct {
	Camera Camera
	Mesh   Mesh

	// Clock advances by a fixed step each frame and resets after passing
	// one. Nothing reads it.
	Clock fix.Scalar
}

// New returns a scene holding the cube mesh at rest.
func New() *Scene {
	return &Scene{Mesh: Cube()}
}

// Tick advances the clock by step.
func (s *Scene) Tick(step fix.Scalar) {
	s.Clock += step
	if s.Clock > fix.One {
		s.Clock = 0
	}
}
