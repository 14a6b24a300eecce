package fix

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y Scalar
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z Scalar
}

// Triangle2D is a projected triangle. Vertex order defines winding.
type Triangle2D [3]Vec2

// Triangle3D is a triangle in 3D space. Vertex order defines winding.
type Triangle3D [3]Vec3

func V2(x, y Scalar) Vec2    { return Vec2{X: x, Y: y} }
func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// V3i builds a Vec3 from integer coordinates.
func V3i(x, y, z int) Vec3 { return Vec3{X: FromInt(x), Y: FromInt(y), Z: FromInt(z)} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Trunc returns the pixel coordinates of v.
func (v Vec2) Trunc() (x, y int) { return v.X.Trunc(), v.Y.Trunc() }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// XY drops the z component.
func (v Vec3) XY() Vec2 { return Vec2{X: v.X, Y: v.Y} }
