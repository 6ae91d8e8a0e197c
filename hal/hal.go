package hal

import (
	"errors"

	"rayvga/internal/vga"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrQuit is returned by a step function to end the runner cleanly.
	ErrQuit = errors.New("quit")

	// ErrNoFramebuffer reports a display without a pixel buffer.
	ErrNoFramebuffer = errors.New("no framebuffer")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatIndexed8 is 8bpp: one palette index per pixel.
	PixelFormatIndexed8 PixelFormat = iota + 1
)

// RGB6 is a palette entry with 6-bit channels (0..63).
type RGB6 = vga.RGB6

// Palette maps the 256 pixel indices to colors.
type Palette = vga.Palette

// Framebuffer is an indexed pixel buffer plus a palette and a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Clear(index uint8)
	SetPalette(p *Palette)
	Present() error
}

// VideoMode selects what the display shows.
type VideoMode uint8

const (
	// ModeText is the initial mode. The host has no text console and keeps
	// showing the last presented frame.
	ModeText VideoMode = iota
	// ModeIndexed320x200 shows the framebuffer through the palette.
	ModeIndexed320x200
)

func (m VideoMode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeIndexed320x200:
		return "indexed 320x200"
	default:
		return "unknown"
	}
}

// Display provides access to the framebuffer and the video mode.
type Display interface {
	Framebuffer() Framebuffer
	// SetMode switches modes and returns the mode that was active before.
	SetMode(m VideoMode) (VideoMode, error)
}

// KeyCode identifies extended keys. Plain keys arrive as runes.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream.
//
// The host backend ticks once per millisecond.
type Time interface {
	Ticks() <-chan uint64
}

// App is what the host runners drive. Step runs once per tick. Close runs
// exactly once when the runner exits, whatever the reason.
type App interface {
	Step() error
	Close() error
}

// StepFunc adapts a step function that holds nothing to release.
type StepFunc func() error

func (f StepFunc) Step() error { return f() }
func (StepFunc) Close() error  { return nil }

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
