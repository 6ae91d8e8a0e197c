// Package vga holds the 6-bit DAC palette shared by the tracer and the HAL.
package vga

// RGB6 is a palette entry with 6-bit channels (0..63).
type RGB6 struct {
	R, G, B uint8
}

// RGB8 widens the entry to 8-bit channels.
func (c RGB6) RGB8() (r, g, b uint8) {
	return Widen(c.R), Widen(c.G), Widen(c.B)
}

// Palette maps the 256 pixel indices to colors.
type Palette [256]RGB6

// Widen maps a 6-bit DAC channel to 8 bits, 63 to 255. Bits above the low
// six are ignored.
func Widen(v uint8) uint8 {
	v &= 0x3F
	return v<<2 | v>>4
}
