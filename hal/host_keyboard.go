//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type keyBinding struct {
	key    ebiten.Key
	code   KeyCode
	r      rune
	repeat bool
}

// Movement keys repeat while held; mode keys fire once per press.
var hostKeyBindings = []keyBinding{
	{key: ebiten.KeyW, r: 'w', repeat: true},
	{key: ebiten.KeyS, r: 's', repeat: true},
	{key: ebiten.KeyA, r: 'a', repeat: true},
	{key: ebiten.KeyD, r: 'd', repeat: true},
	{key: ebiten.KeyQ, r: 'q', repeat: true},
	{key: ebiten.KeyE, r: 'e', repeat: true},
	{key: ebiten.KeyH, r: 'h'},
	{key: ebiten.KeyDigit1, r: '1'},
	{key: ebiten.KeyDigit2, r: '2'},
	{key: ebiten.KeyDigit3, r: '3'},
	{key: ebiten.KeyArrowUp, code: KeyUp, repeat: true},
	{key: ebiten.KeyArrowDown, code: KeyDown, repeat: true},
	{key: ebiten.KeyArrowLeft, code: KeyLeft, repeat: true},
	{key: ebiten.KeyArrowRight, code: KeyRight, repeat: true},
	{key: ebiten.KeyEscape, code: KeyEscape},
}

func (k *hostKeyboard) poll() {
	for _, b := range hostKeyBindings {
		ev := KeyEvent{Code: b.code, Rune: b.r}
		switch {
		case inpututil.IsKeyJustPressed(b.key):
			ev.Press = true
			k.emit(ev)
		case b.repeat && repeating(inpututil.KeyPressDuration(b.key)):
			ev.Press = true
			k.emit(ev)
		case inpututil.IsKeyJustReleased(b.key):
			k.emit(ev)
		}
	}
}
