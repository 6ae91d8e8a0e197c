package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"rayvga/hal"
	"rayvga/tracer"

	"tinygo.org/x/tinyfont"
)

const (
	panicBG = tracer.PalWhite + 15
	panicFG = tracer.PalBlack
)

// reportPanic logs a recovered panic with its stack and paints it onto the
// framebuffer. The caller restores the video mode afterwards.
func reportPanic(h hal.HAL, value any, stack []byte) {
	lines := []string{
		"rayvga panic:",
		fmt.Sprintf("panic: %v", value),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatIndexed8 {
		return
	}
	drawPanicScreen(fb, lines)
}

func drawPanicScreen(fb hal.Framebuffer, lines []string) {
	fb.Clear(panicBG)

	font := &tinyfont.TomThumb
	fontHeight, fontOffset := int16(6), int16(5)
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = fb.Present()
		return
	}

	d := panicDisplay{fb: fb, index: panicFG}
	fg := color.RGBA{A: 255}

	y := int16(0)
	maxW, maxH := fb.Width(), fb.Height()
	cols := int16(maxW) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > int16(maxH) {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, fontOffset, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func drawTextLine(
	d panicDisplay,
	font tinyfont.Fonter,
	fontWidth, fontOffset int16,
	x0, y0 int16,
	s string,
	fg color.RGBA,
) {
	drawX := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, drawX, y0+fontOffset, r, fg)
		drawX += fontWidth
	}
}

// panicDisplay draws every lit glyph pixel with a fixed palette index.
type panicDisplay struct {
	fb    hal.Framebuffer
	index uint8
}

func (d panicDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || c.A == 0 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix
	if off < 0 || off >= len(buf) {
		return
	}
	buf[off] = d.index
}

func (d panicDisplay) Display() error { return nil }

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
