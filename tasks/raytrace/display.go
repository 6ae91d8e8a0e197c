package raytrace

import (
	"image/color"

	"rayvga/hal"
	"rayvga/tracer"

	"tinygo.org/x/drivers"
)

// fbTarget writes palette indices straight into an indexed framebuffer.
type fbTarget struct {
	fb hal.Framebuffer
}

func (d fbTarget) Size() (w, h int) {
	if d.fb == nil {
		return 0, 0
	}
	return d.fb.Width(), d.fb.Height()
}

func (d fbTarget) SetPixel(x, y int, index uint8) {
	if d.fb == nil {
		return
	}
	buf := d.fb.Buffer()
	if x < 0 || y < 0 || x >= d.fb.Width() || y >= d.fb.Height() {
		return
	}
	off := y*d.fb.StrideBytes() + x
	if off < 0 || off >= len(buf) {
		return
	}
	buf[off] = index
}

var _ tracer.Target = fbTarget{}

// fbDisplay adapts the indexed framebuffer to drivers.Displayer for tinyfont.
//
// Colors are quantized into the white band by luminance; pure black maps to
// palette index 0 and transparent pixels are skipped.
type fbDisplay struct {
	t fbTarget
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{t: fbTarget{fb: fb}}
}

func (d *fbDisplay) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if c.A == 0 {
		return
	}
	d.t.SetPixel(int(x), int(y), indexFor(c))
}

// Display is a no-op; the task presents once per frame.
func (d *fbDisplay) Display() error { return nil }

// FillRectangle fills a clipped rectangle.
func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	idx := indexFor(c)
	for py := int(y); py < int(y)+int(height); py++ {
		for px := int(x); px < int(x)+int(width); px++ {
			d.t.SetPixel(px, py, idx)
		}
	}
	return nil
}

func indexFor(c color.RGBA) uint8 {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return tracer.PalBlack
	}
	return tracer.BandWhite.Index(tracer.RGB(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255))
}
