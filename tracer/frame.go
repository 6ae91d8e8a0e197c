package tracer

// Quality pairs the sample step (pixels per sample along each axis) with the
// maximum reflection depth.
type Quality struct {
	Step     int
	MaxDepth int
}

// Quality presets.
var (
	QualityLow    = Quality{Step: 4, MaxDepth: 2}
	QualityMedium = Quality{Step: 2, MaxDepth: 3}
	QualityHigh   = Quality{Step: 1, MaxDepth: 4}
)

// QualityPreset returns preset n (1 = low, 2 = medium, 3 = high).
func QualityPreset(n int) (Quality, bool) {
	switch n {
	case 1:
		return QualityLow, true
	case 2:
		return QualityMedium, true
	case 3:
		return QualityHigh, true
	default:
		return Quality{}, false
	}
}

// fovScale is tan(30°): half the vertical field of view on the z = 1 plane.
const fovScale float32 = 0.5773503

// Renderer scans frames through a Tracer.
type Renderer struct {
	tr *Tracer
}

func NewRenderer(tr *Tracer) *Renderer {
	if tr == nil {
		tr = NewTracer(nil)
	}
	return &Renderer{tr: tr}
}

func (r *Renderer) Tracer() *Tracer { return r.tr }

// ScreenOffset maps pixel (x, y) of a w×h target onto the image plane.
func ScreenOffset(x, y, w, h int) (dx, dy float32) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	aspect := float32(w) / float32(h)
	dx = (2*float32(x)/float32(w) - 1) * aspect * fovScale
	dy = (1 - 2*float32(y)/float32(h)) * fovScale
	return dx, dy
}

// RenderFrame renders one frame from v into t and returns the rays it cast.
//
// With q.Step > 1 each sample fills a Step×Step block, clipped to the target.
func (r *Renderer) RenderFrame(t Target, v View, q Quality) Stats {
	if t == nil {
		return Stats{}
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return Stats{}
	}
	step := q.Step
	if step < 1 {
		step = 1
	}
	depth := q.MaxDepth
	if depth < 0 {
		depth = 0
	}

	before := r.tr.Stats()
	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			dx, dy := ScreenOffset(x, y, w, h)
			idx := r.tr.SampleIndex(v.Origin, v.RayDir(dx, dy), depth)
			fillBlock(t, x, y, step, w, h, idx)
		}
	}

	after := r.tr.Stats()
	return Stats{
		PrimaryRays:    after.PrimaryRays - before.PrimaryRays,
		ReflectionRays: after.ReflectionRays - before.ReflectionRays,
		ShadowRays:     after.ShadowRays - before.ShadowRays,
	}
}

func fillBlock(t Target, x, y, step, w, h int, idx uint8) {
	if step == 1 {
		t.SetPixel(x, y, idx)
		return
	}
	for by := 0; by < step && y+by < h; by++ {
		for bx := 0; bx < step && x+bx < w; bx++ {
			t.SetPixel(x+bx, y+by, idx)
		}
	}
}
