//go:build !tinygo

package hal

import "sync"

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	pal    Palette

	// frame is the last presented buffer; the window draws from it so a
	// half-rendered frame never reaches the screen.
	frame    []byte
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: width,
		buf:    make([]byte, width*height),
		frame:  make([]byte, width*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatIndexed8 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Clear(index uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.buf {
		f.buf[i] = index
	}
}

func (f *hostFramebuffer) SetPalette(p *Palette) {
	if p == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pal = *p
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.frame, f.buf)
	f.presents++
	return nil
}

// snapshotRGBA expands the last presented frame through the palette into dst
// (4 bytes per pixel).
func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var lut [256][3]uint8
	for i, e := range f.pal {
		r, g, b := e.RGB8()
		lut[i] = [3]uint8{r, g, b}
	}
	for i, idx := range f.frame {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		c := lut[idx]
		dst[j+0] = c[0]
		dst[j+1] = c[1]
		dst[j+2] = c[2]
		dst[j+3] = 0xFF
	}
}
