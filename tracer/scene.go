package tracer

// DefaultFloorY is the height of the checkerboard floor.
const DefaultFloorY float32 = -1

// Scene is the static world: spheres, floor, sky and a single point light.
//
// A scene is read-only once built. Spheres are scanned in order; on equal
// distances the earlier sphere wins, and any sphere wins over the floor.
type Scene struct {
	// Spheres must come from NewSphere. NewScene drops zero values.
	Spheres []Sphere
	Light   Vec3

	FloorY    float32
	FloorBand Band
	SkyBand   Band
}

// NewScene builds a scene on the default floor with the default floor and
// sky bands. Spheres that did not come from NewSphere are skipped.
func NewScene(light Vec3, spheres ...Sphere) *Scene {
	s := &Scene{
		Light:     light,
		FloorY:    DefaultFloorY,
		FloorBand: BandFloor,
		SkyBand:   BandSky,
	}
	for _, sp := range spheres {
		if sp.invR == 0 {
			continue
		}
		s.Spheres = append(s.Spheres, sp)
	}
	return s
}

// DefaultScene returns the three-sphere demo scene.
func DefaultScene() *Scene {
	return NewScene(V3(5, 8, -2),
		// Red, chrome-like.
		NewSphere(V3(0, 0, 5), 1.0, SphereMaterial{
			Albedo:       RGB(0.9, 0.2, 0.15),
			Reflectivity: 0.65,
			SpecPower:    64,
			Band:         BandRed,
		}),
		// Green, glossy.
		NewSphere(V3(-2.5, 0.5, 7), 1.5, SphereMaterial{
			Albedo:       RGB(0.15, 0.85, 0.25),
			Reflectivity: 0.55,
			SpecPower:    48,
			Band:         BandGreen,
		}),
		// Blue, mirror-like.
		NewSphere(V3(1.8, -0.3, 3.5), 0.7, SphereMaterial{
			Albedo:       RGB(0.2, 0.35, 0.95),
			Reflectivity: 0.75,
			SpecPower:    96,
			Band:         BandBlue,
		}),
	)
}
