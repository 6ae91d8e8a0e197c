package tracer

// Stats counts rays cast by a Tracer.
type Stats struct {
	PrimaryRays    uint64
	ReflectionRays uint64
	ShadowRays     uint64
}

func (s Stats) Total() uint64 { return s.PrimaryRays + s.ReflectionRays + s.ShadowRays }

type hitKind uint8

const (
	hitNone hitKind = iota
	hitSphere
	hitFloor
)

type hit struct {
	kind   hitKind
	t      float32
	sphere int
}

// Tracer shades rays against a Scene.
//
// A Tracer is not safe for concurrent use: it keeps ray counters.
type Tracer struct {
	scene *Scene
	stats Stats

	// reflect traces a mirror ray one level down. It is Trace unless replaced
	// by tests.
	reflect func(origin, dir Vec3, depth int) Color
}

// NewTracer returns a tracer for s. A nil scene selects DefaultScene.
func NewTracer(s *Scene) *Tracer {
	if s == nil {
		s = DefaultScene()
	}
	t := &Tracer{scene: s}
	t.reflect = t.Trace
	return t
}

func (t *Tracer) Scene() *Scene { return t.scene }

func (t *Tracer) Stats() Stats { return t.stats }

func (t *Tracer) ResetStats() { t.stats = Stats{} }

// nearest scans every primitive and returns the closest hit.
func (t *Tracer) nearest(origin, dir Vec3) hit {
	best := hit{kind: hitNone, t: 1e10, sphere: -1}
	for i := range t.scene.Spheres {
		d, ok := IntersectSphere(origin, dir, &t.scene.Spheres[i])
		if ok && d < best.t {
			best = hit{kind: hitSphere, t: d, sphere: i}
		}
	}
	if d, ok := IntersectFloor(origin, dir, t.scene.FloorY); ok && d < best.t {
		best = hit{kind: hitFloor, t: d, sphere: -1}
	}
	return best
}

func (t *Tracer) shade(origin, dir Vec3, h hit, depth int) Color {
	switch h.kind {
	case hitSphere:
		return t.shadeSphere(origin, dir, h.t, h.sphere, depth)
	case hitFloor:
		return t.shadeFloor(origin, dir, h.t, depth)
	default:
		return SkyColor(dir)
	}
}

// Trace returns the color seen along a ray. depth is the number of further
// reflection bounces allowed; depth 0 shades locally only.
func (t *Tracer) Trace(origin, dir Vec3, depth int) Color {
	return t.shade(origin, dir, t.nearest(origin, dir), depth)
}

// Sample traces a primary ray and also reports the palette band of the
// surface it hit first.
func (t *Tracer) Sample(origin, dir Vec3, depth int) (Color, Band) {
	t.stats.PrimaryRays++

	h := t.nearest(origin, dir)
	c := t.shade(origin, dir, h, depth)
	switch h.kind {
	case hitSphere:
		return c, t.scene.Spheres[h.sphere].band
	case hitFloor:
		return c, t.scene.FloorBand
	default:
		return c, t.scene.SkyBand
	}
}

// SampleIndex traces a primary ray and quantizes it to a palette index.
func (t *Tracer) SampleIndex(origin, dir Vec3, depth int) uint8 {
	c, band := t.Sample(origin, dir, depth)
	return band.Index(c)
}

func (t *Tracer) traceReflection(origin, dir Vec3, depth int) Color {
	t.stats.ReflectionRays++
	return t.reflect(origin, dir, depth)
}
