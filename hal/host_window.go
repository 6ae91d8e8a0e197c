//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"
	"os"

	"rayvga/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or a step returns ErrQuit, then closes
// the app.
func RunWindow(newApp func(HAL) App) (err error) {
	h := newHost(os.Stdout)
	app := newApp(h)
	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	g := &hostGame{h: h, step: app.Step}
	ebiten.SetWindowTitle("rayvga (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.disp.fb.width*2, h.disp.fb.height*2)
	ebiten.SetTPS(60)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return g.err
	}
	if err != nil {
		return err
	}
	return g.err
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error

	// err is the step failure; the window stays open on its last frame
	// until closed.
	err error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			g.err = err
			g.step = nil
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.disp.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGBA(g.img.Pix)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.disp.fb.width, g.h.disp.fb.height
}
