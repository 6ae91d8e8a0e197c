package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"rayvga/internal/vga"
	"rayvga/tracer"

	"github.com/fogleman/gg"
)

type shotOptions struct {
	Camera  tracer.Camera
	Quality tracer.Quality
	Width   int
	Height  int
	Scale   int
	Caption string
}

func (o shotOptions) scale() int {
	if o.Scale < 1 {
		return 1
	}
	return o.Scale
}

func autoCaption(o shotOptions, preset int) string {
	p := o.Camera.Position
	return fmt.Sprintf("Q%d (%.1f, %.1f, %.1f) yaw %.2f pitch %.2f", preset, p.X, p.Y, p.Z, o.Camera.Yaw, o.Camera.Pitch)
}

// renderShot traces one frame and returns it as a paletted image using the
// renderer's palette.
func renderShot(o shotOptions) (*image.Paletted, tracer.Stats, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, tracer.Stats{}, fmt.Errorf("invalid size %dx%d", o.Width, o.Height)
	}
	img := tracer.NewIndexedImage(o.Width, o.Height)
	st := tracer.NewRenderer(nil).RenderFrame(img, o.Camera.View(), o.Quality)
	return toPaletted(img, tracer.BuildPalette(), o.scale()), st, nil
}

func toPaletted(src *tracer.IndexedImage, pal *vga.Palette, scale int) *image.Paletted {
	cp := make(color.Palette, len(pal))
	for i, e := range pal {
		r, g, b := e.RGB8()
		cp[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	w, h := src.Size()
	dst := image.NewPaletted(image.Rect(0, 0, w*scale, h*scale), cp)
	for y := 0; y < h*scale; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < w*scale; x++ {
			row[x] = src.At(x/scale, y/scale)
		}
	}
	return dst
}

// captioned draws text on a dark strip along the bottom edge.
func captioned(img image.Image, text string) image.Image {
	dc := gg.NewContextForImage(img)
	w, h := float64(dc.Width()), float64(dc.Height())
	_, th := dc.MeasureString(text)
	pad := 3.0
	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(0, h-th-2*pad, w, th+2*pad)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawString(text, pad, h-pad)
	return dc.Image()
}

func writeShot(path string, o shotOptions) (tracer.Stats, error) {
	if path == "" {
		return tracer.Stats{}, errors.New("missing output path")
	}
	pimg, st, err := renderShot(o)
	if err != nil {
		return st, err
	}
	var out image.Image = pimg
	if o.Caption != "" {
		out = captioned(pimg, o.Caption)
	}
	if err := gg.SavePNG(path, out); err != nil {
		return st, fmt.Errorf("save %s: %w", path, err)
	}
	return st, nil
}
