// Package tracer is a small real-time recursive ray tracer for an indexed
// (palette) framebuffer.
//
// The scene is fixed: a handful of spheres, an infinite checkerboard floor, one
// point light and a gradient sky. Every primary ray is shaded with diffuse,
// Blinn-Phong specular, a hard partial shadow and a Fresnel-weighted mirror
// reflection, then mapped into a per-surface palette band.
//
// Pipeline (fixed):
//
//	Camera → View → RayDir → Tracer.Sample → Band.Index → Target.SetPixel.
//
// The renderer is single threaded and allocation free in the hot path. A frame
// always renders from one View snapshot; camera changes apply between frames.
//
// Math is float32 throughout (github.com/chewxy/math32).
package tracer
