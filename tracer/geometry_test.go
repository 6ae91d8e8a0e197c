package tracer

import "testing"

func testSphere(center Vec3, r float32) Sphere {
	return NewSphere(center, r, SphereMaterial{Albedo: Gray(1), Band: BandFloor})
}

func TestIntersectSphereHit(t *testing.T) {
	s := testSphere(V3(0, 0, 5), 1)
	got, ok := IntersectSphere(V3(0, 0, 0), V3(0, 0, 1), &s)
	if !ok || !approx(got, 4, 1e-5) {
		t.Fatalf("got t=%v ok=%v, want 4", got, ok)
	}
}

func TestIntersectSphereMiss(t *testing.T) {
	s := testSphere(V3(0, 0, 5), 1)
	if got, ok := IntersectSphere(V3(0, 0, 0), V3(1, 0, 0), &s); ok {
		t.Fatalf("expected miss, got t=%v", got)
	}
	// Sphere behind the origin.
	if got, ok := IntersectSphere(V3(0, 0, 0), V3(0, 0, -1), &s); ok {
		t.Fatalf("expected miss behind origin, got t=%v", got)
	}
}

func TestIntersectSphereFromInside(t *testing.T) {
	s := testSphere(V3(0, 0, 0), 2)
	got, ok := IntersectSphere(V3(0, 0, 0), V3(0, 1, 0), &s)
	if !ok || !approx(got, 2, 1e-5) {
		t.Fatalf("got t=%v ok=%v, want exit at 2", got, ok)
	}

	// A ray leaving the surface outward must not re-hit its own origin.
	if got, ok := IntersectSphere(V3(0, 2, 0), V3(0, 1, 0), &s); ok {
		t.Fatalf("outward ray from surface hit at t=%v", got)
	}
}

func TestNewSphereDerivesRadiusTerms(t *testing.T) {
	r := float32(0.7)
	m := SphereMaterial{Albedo: RGB(0.1, 0.2, 0.3), Reflectivity: 3, SpecPower: 24, Band: BandGreen}
	s := NewSphere(V3(1, 2, 3), r, m)
	if s.Center() != V3(1, 2, 3) || s.Albedo() != m.Albedo || s.SpecularPower() != 24 || s.Band() != BandGreen {
		t.Fatalf("material not kept: %+v", s)
	}
	if s.Radius() != r || s.r2 != r*r {
		t.Fatalf("r2=%v", s.r2)
	}
	if s.invR != 1/r {
		t.Fatalf("invR=%v", s.invR)
	}
	if s.Reflectivity() != 1 {
		t.Fatalf("reflectivity should clamp to 1, got %v", s.Reflectivity())
	}
	if n := s.Normal(V3(1.7, 2, 3)); !approxV3(n, V3(1, 0, 0), 1e-5) {
		t.Fatalf("normal=%v", n)
	}
}

func TestNewSceneSkipsZeroSpheres(t *testing.T) {
	s := NewScene(V3(0, 5, 0), Sphere{}, NewSphere(V3(0, 0, 3), 1, SphereMaterial{Band: BandRed}), Sphere{})
	if len(s.Spheres) != 1 || s.Spheres[0].Band() != BandRed {
		t.Fatalf("spheres=%+v", s.Spheres)
	}
	if s.FloorY != DefaultFloorY || s.FloorBand != BandFloor || s.SkyBand != BandSky {
		t.Fatalf("defaults=%+v", s)
	}

	// A degenerate radius still goes through NewSphere and is kept.
	tiny := NewSphere(V3(0, 0, 3), 0, SphereMaterial{})
	if got := NewScene(V3(0, 5, 0), tiny); len(got.Spheres) != 1 || got.Spheres[0].Radius() <= 0 {
		t.Fatalf("tiny sphere dropped: %+v", got.Spheres)
	}
}

func TestIntersectFloor(t *testing.T) {
	got, ok := IntersectFloor(V3(0, 0.5, 0), V3(0, -1, 0), -1)
	if !ok || !approx(got, 1.5, 1e-6) {
		t.Fatalf("got t=%v ok=%v, want 1.5", got, ok)
	}

	for _, d := range []Vec3{V3(0, 0, 1), V3(0, 1, 0), Normalize(V3(1, 0.01, 0))} {
		if got, ok := IntersectFloor(V3(0, 0.5, 0), d, -1); ok {
			t.Fatalf("dir %v: expected no hit, got t=%v", d, got)
		}
	}

	// Beyond the far cutoff.
	if got, ok := IntersectFloor(V3(0, 0.5, 0), Normalize(V3(1, -0.01, 0)), -1); ok {
		t.Fatalf("expected far cutoff, got t=%v", got)
	}
	// Origin below the floor looking down: t is negative.
	if got, ok := IntersectFloor(V3(0, -2, 0), V3(0, -1, 0), -1); ok {
		t.Fatalf("expected no hit from below, got t=%v", got)
	}
}

func TestCheckerParity(t *testing.T) {
	if CheckerParity(-0.5, 0.5) == CheckerParity(0.5, 0.5) {
		t.Fatalf("tiles across x=0 share parity")
	}
	if CheckerParity(0.5, -0.5) == CheckerParity(0.5, 0.5) {
		t.Fatalf("tiles across z=0 share parity")
	}

	pts := [][2]float32{{-0.5, -0.5}, {0.5, 0.5}, {-3.2, 1.7}, {4.9, -7.1}, {-0.01, -0.99}}
	for _, p := range pts {
		base := CheckerParity(p[0], p[1])
		if got := CheckerParity(p[0]+2, p[1]); got != base {
			t.Fatalf("parity changed under x+2 at %v", p)
		}
		if got := CheckerParity(p[0], p[1]-2); got != base {
			t.Fatalf("parity changed under z-2 at %v", p)
		}
		if got := CheckerParity(p[0]+1, p[1]); got == base {
			t.Fatalf("parity kept under x+1 at %v", p)
		}
	}
}
