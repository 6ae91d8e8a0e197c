package raytrace

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
)

const (
	hudHeight   = 8
	hudBaseline = 6
)

var (
	hudBG = color.RGBA{A: 0xff}
	hudFG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

type hud struct {
	d    *fbDisplay
	font tinyfont.Fonter
}

func newHUD(d *fbDisplay) *hud {
	return &hud{d: d, font: &tinyfont.TomThumb}
}

func hudText(preset, depth int, frameMs uint64, fps float64) string {
	return fmt.Sprintf("Q%d D%d %dms %.1ffps", preset, depth, frameMs, fps)
}

// draw paints a status bar over the top rows of the current frame.
func (h *hud) draw(s string) {
	w, _ := h.d.Size()
	_ = h.d.FillRectangle(0, 0, w, hudHeight, hudBG)
	tinyfont.WriteLine(h.d, h.font, 2, hudBaseline, s, hudFG)
}
