package tracer

import "github.com/chewxy/math32"

const (
	// hitEpsilon rejects self-intersections at the ray origin.
	hitEpsilon float32 = 0.001
	// floorFar is the floor's far cutoff along the ray.
	floorFar float32 = 100
)

// Sphere is an immutable sphere primitive.
//
// Use NewSphere; the squared and inverse radius are derived from the radius
// once at construction.
type Sphere struct {
	center Vec3
	radius float32
	r2     float32
	invR   float32

	albedo     Color
	reflection float32
	specPower  float32
	band       Band
}

// SphereMaterial describes how a sphere is shaded and quantized.
type SphereMaterial struct {
	Albedo       Color
	Reflectivity float32 // 0..1
	SpecPower    float32
	Band         Band
}

// NewSphere builds a sphere. Non-positive radii are clamped to a tiny radius.
func NewSphere(center Vec3, radius float32, m SphereMaterial) Sphere {
	if radius <= 0 {
		radius = 1e-3
	}
	return Sphere{
		center:     center,
		radius:     radius,
		r2:         radius * radius,
		invR:       1 / radius,
		albedo:     m.Albedo,
		reflection: clampF32(m.Reflectivity, 0, 1),
		specPower:  m.SpecPower,
		band:       m.Band,
	}
}

func (s *Sphere) Center() Vec3           { return s.center }
func (s *Sphere) Radius() float32        { return s.radius }
func (s *Sphere) Albedo() Color          { return s.albedo }
func (s *Sphere) Reflectivity() float32  { return s.reflection }
func (s *Sphere) SpecularPower() float32 { return s.specPower }
func (s *Sphere) Band() Band             { return s.band }

// Normal returns the outward unit normal at a point on the surface.
func (s *Sphere) Normal(p Vec3) Vec3 {
	return p.Sub(s.center).Mul(s.invR)
}

// IntersectSphere returns the nearest distance t > hitEpsilon where the ray
// meets the sphere. dir must be unit length.
//
// The far root is used when the near one lies behind the origin, so rays
// starting inside or on the sphere find their exit point.
func IntersectSphere(origin, dir Vec3, s *Sphere) (float32, bool) {
	oc := origin.Sub(s.center)
	b := Dot(oc, dir)
	c := Dot(oc, oc) - s.r2
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	if t := -b - sq; t > hitEpsilon {
		return t, true
	}
	if t := -b + sq; t > hitEpsilon {
		return t, true
	}
	return 0, false
}

// IntersectFloor intersects the horizontal plane y = floorY.
//
// Only downward rays can hit; hits beyond floorFar are discarded.
func IntersectFloor(origin, dir Vec3, floorY float32) (float32, bool) {
	if dir.Y >= 0 {
		return 0, false
	}
	t := (floorY - origin.Y) / dir.Y
	if t > hitEpsilon && t < floorFar {
		return t, true
	}
	return 0, false
}

// CheckerParity returns 0 or 1 for the floor tile containing (x, z).
func CheckerParity(x, z float32) int {
	return (floorInt(x) + floorInt(z)) & 1
}
