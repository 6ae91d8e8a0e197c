package tracer

// Color is a linear RGB color. Channels are unbounded until Clamp.
type Color struct {
	R, G, B float32
}

func RGB(r, g, b float32) Color { return Color{R: r, G: g, B: b} }

// Gray returns an achromatic color with all channels set to v.
func Gray(v float32) Color { return Color{R: v, G: v, B: v} }

func (c Color) Add(o Color) Color      { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c Color) Mul(s float32) Color    { return Color{c.R * s, c.G * s, c.B * s} }
func (c Color) Modulate(o Color) Color { return Color{c.R * o.R, c.G * o.G, c.B * o.B} }

// Clamp limits every channel to [0,1].
func (c Color) Clamp() Color {
	return Color{
		R: clampF32(c.R, 0, 1),
		G: clampF32(c.G, 0, 1),
		B: clampF32(c.B, 0, 1),
	}
}

// Luminance is the Rec. 601 luma of c.
func (c Color) Luminance() float32 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Lerp blends a toward b by t. t is not clamped.
func Lerp(a, b Color, t float32) Color {
	u := 1 - t
	return Color{
		R: a.R*u + b.R*t,
		G: a.G*u + b.G*t,
		B: a.B*u + b.B*t,
	}
}
