//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hostWidth  = 320
	hostHeight = 200
)

type hostHAL struct {
	logger *hostLogger
	disp   *hostDisplay
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation.
func New() HAL {
	return newHost(os.Stdout)
}

func newHost(w io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: w},
		disp:   &hostDisplay{fb: newHostFramebuffer(hostWidth, hostHeight)},
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	mu   sync.Mutex
	mode VideoMode
	fb   *hostFramebuffer
}

func (d *hostDisplay) Framebuffer() Framebuffer { return d.fb }

func (d *hostDisplay) SetMode(m VideoMode) (VideoMode, error) {
	switch m {
	case ModeText, ModeIndexed320x200:
	default:
		return d.Mode(), fmt.Errorf("set mode %d: %w", m, ErrNotImplemented)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	prev := d.mode
	d.mode = m
	if m == ModeIndexed320x200 && prev != m {
		d.fb.Clear(0)
	}
	return prev, nil
}

func (d *hostDisplay) Mode() VideoMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
