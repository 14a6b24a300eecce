// Package fix provides the fixed-point numeric core: a Q20.12 Scalar with
// total arithmetic and turn-based trigonometry, 2D/3D vectors and triangles,
// and a small dense Matrix with a fixed 4x4 backing store.
//
// Nothing in this package allocates or uses floating point on the render
// path. Float conversions exist only for constants, logging, and tests.
package fix
