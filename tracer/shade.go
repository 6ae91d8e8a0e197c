package tracer

import "github.com/chewxy/math32"

// Sphere shading constants.
const (
	sphereAmbient    float32 = 0.12
	sphereDiffuse    float32 = 0.68
	sphereSpecular   float32 = 0.8
	shadowSpecular   float32 = 0.1
	sphereFresnelMax float32 = 0.95
	fresnelMin       float32 = 0.01
)

// Floor shading constants.
const (
	floorAmbient    float32 = 0.25
	floorDiffuse    float32 = 0.75
	floorFresnel0   float32 = 0.15
	floorFresnelK   float32 = 0.35
	floorFresnelMax float32 = 0.5
	fogStart        float32 = 20
	fogRange        float32 = 30
)

var (
	floorLight = RGB(0.7, 0.7, 0.75)
	floorDark  = RGB(0.2, 0.2, 0.25)
	fogColor   = RGB(0.4, 0.5, 0.7)
	worldUp    = V3(0, 1, 0)
)

func (t *Tracer) shadeSphere(origin, dir Vec3, dist float32, id, depth int) Color {
	sp := &t.scene.Spheres[id]

	p := origin.Add(dir.Mul(dist))
	n := sp.Normal(p)
	l := Normalize(t.scene.Light.Sub(p))

	diff := Dot(n, l)
	if diff < 0 {
		diff = 0
	}

	// Blinn-Phong.
	spec := Dot(n, Normalize(l.Sub(dir)))
	if spec < 0 {
		spec = 0
	}
	spec = math32.Pow(spec, sp.specPower)

	shadow := t.Occlusion(p, id)
	diff *= shadow
	if shadow < 0.5 {
		spec *= shadowSpecular
	}

	lit := Gray(sphereAmbient + sphereDiffuse*diff)
	c := sp.albedo.Modulate(lit).Add(Gray(spec * sphereSpecular))

	ndotv := -Dot(n, dir)
	if ndotv < 0 {
		ndotv = 0
	}
	k := 1 - ndotv
	fresnel := sp.reflection + (1-sp.reflection)*k*k*k
	if fresnel > sphereFresnelMax {
		fresnel = sphereFresnelMax
	}

	if depth > 0 && fresnel > fresnelMin {
		rc := t.traceReflection(p, Reflect(dir, n), depth-1)
		c = Lerp(c, rc, fresnel)
	}
	return c.Clamp()
}

func (t *Tracer) shadeFloor(origin, dir Vec3, dist float32, depth int) Color {
	p := origin.Add(dir.Mul(dist))
	n := worldUp

	base := floorDark
	if CheckerParity(p.X, p.Z) == 1 {
		base = floorLight
	}

	l := Normalize(t.scene.Light.Sub(p))
	diff := Dot(n, l)
	if diff < 0 {
		diff = 0
	}
	shadow := t.Occlusion(p, -1)
	diff *= shadow

	c := base.Mul(floorAmbient + floorDiffuse*diff*shadow)

	if depth > 0 {
		k := 1 + Dot(dir, n)
		fresnel := floorFresnel0 + floorFresnelK*k*k
		if fresnel > floorFresnelMax {
			fresnel = floorFresnelMax
		}
		rc := t.traceReflection(p, Reflect(dir, n), depth-1)
		c = Lerp(c, rc, fresnel)
	}

	if dist > fogStart {
		fade := (dist - fogStart) / fogRange
		if fade > 1 {
			fade = 1
		}
		c = Lerp(c, fogColor, fade)
	}
	return c.Clamp()
}

// SkyColor is the background gradient. It depends only on dir.Y and brightens
// toward the zenith.
func SkyColor(dir Vec3) Color {
	g := 0.5 + 0.5*dir.Y
	return Color{
		R: 0.3 + 0.2*g,
		G: 0.4 + 0.3*g,
		B: 0.6 + 0.35*g,
	}
}
