// Package render turns a scene mesh into pixels.
//
// Pipeline (fixed, once per frame):
//
//	Rotation matrix → Transform → Orthographic projection → Convex cull → Fill → Outline.
//
// Everything runs on fix.Scalar; there is no floating point, no depth buffer,
// and no allocation in the frame path once a Renderer has seen its mesh.
// Drawing goes through the Surface interface, so any indexed-color page can be
// a target.
package render
