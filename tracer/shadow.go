package tracer

import "github.com/chewxy/math32"

const (
	// shadowEpsilon is the minimum occluder distance along a shadow ray.
	shadowEpsilon float32 = 0.01
	// shadowFactor is the light that still reaches an occluded point.
	shadowFactor float32 = 0.15
)

// Occlusion returns 1 when p sees the light and shadowFactor when any sphere
// other than skip sits between p and the light. skip < 0 tests every sphere.
func (t *Tracer) Occlusion(p Vec3, skip int) float32 {
	t.stats.ShadowRays++

	l := t.scene.Light.Sub(p)
	dist := math32.Sqrt(Dot(l, l))
	if dist <= 0 {
		return 1
	}
	l = l.Mul(1 / dist)

	for i := range t.scene.Spheres {
		if i == skip {
			continue
		}
		hit, ok := IntersectSphere(p, l, &t.scene.Spheres[i])
		if ok && hit > shadowEpsilon && hit < dist {
			return shadowFactor
		}
	}
	return 1
}
