package tracer

import "rayvga/internal/vga"

// Channel selects a dominant color channel for band biasing.
type Channel uint8

const (
	ChannelNone Channel = iota
	ChannelR
	ChannelG
	ChannelB
)

// Band is a contiguous run of palette indices for one surface class, ordered
// from darkest to brightest.
type Band struct {
	Base   uint8
	Shades uint8
	Bias   Channel
}

// Palette layout.
const (
	PalBlack = 0
	PalSky   = 1
	PalRed   = 32
	PalGreen = 48
	PalBlue  = 64
	PalGray  = 80
	PalWhite = 96

	bandShades = 16
	skyShades  = 31
)

var (
	BandSky   = Band{Base: PalSky, Shades: skyShades}
	BandRed   = Band{Base: PalRed, Shades: bandShades, Bias: ChannelR}
	BandGreen = Band{Base: PalGreen, Shades: bandShades, Bias: ChannelG}
	BandBlue  = Band{Base: PalBlue, Shades: bandShades, Bias: ChannelB}
	BandFloor = Band{Base: PalGray, Shades: bandShades}
	BandWhite = Band{Base: PalWhite, Shades: bandShades}
)

// Index maps a color into the band.
//
// The color is clamped, reduced to luminance (biased 60/40 toward the band's
// dominant channel when set) and truncated into one of the band's shades.
func (b Band) Index(c Color) uint8 {
	if b.Shades == 0 {
		return b.Base
	}
	c = c.Clamp()
	lum := c.Luminance()
	switch b.Bias {
	case ChannelR:
		lum = c.R*0.6 + lum*0.4
	case ChannelG:
		lum = c.G*0.6 + lum*0.4
	case ChannelB:
		lum = c.B*0.6 + lum*0.4
	}

	top := int(b.Shades) - 1
	shade := int(lum * float32(top))
	if shade > top {
		shade = top
	}
	if shade < 0 {
		shade = 0
	}
	return b.Base + uint8(shade)
}

// Last returns the brightest index of the band.
func (b Band) Last() uint8 {
	if b.Shades == 0 {
		return b.Base
	}
	return b.Base + b.Shades - 1
}

// Contains reports whether idx lies inside the band.
func (b Band) Contains(idx uint8) bool {
	return b.Shades > 0 && idx >= b.Base && idx <= b.Last()
}

// BuildPalette returns the color table matching the band layout.
func BuildPalette() *vga.Palette {
	var p vga.Palette
	cap63 := func(v int) uint8 {
		if v > 63 {
			return 63
		}
		return uint8(v)
	}

	for i := 1; i <= skyShades; i++ {
		p[PalSky+i-1] = vga.RGB6{R: uint8(i / 3), G: uint8(i/2 + 8), B: cap63(20 + i)}
	}
	for i := 0; i < bandShades; i++ {
		p[PalRed+i] = vga.RGB6{R: cap63(10 + i*3), G: uint8(i), B: uint8(i / 2)}
		p[PalGreen+i] = vga.RGB6{R: uint8(i / 2), G: cap63(10 + i*3), B: uint8(i)}
		p[PalBlue+i] = vga.RGB6{R: uint8(i / 2), G: uint8(i/2 + 6), B: cap63(12 + i*3)}

		v := 4 + i*3
		p[PalGray+i] = vga.RGB6{R: cap63(v), G: cap63(v + 2), B: cap63(v + 4)}

		w := cap63(32 + i*2)
		p[PalWhite+i] = vga.RGB6{R: w, G: w, B: w}
	}
	return &p
}
