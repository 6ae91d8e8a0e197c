package raytrace

import (
	"errors"
	"strings"
	"testing"

	"rayvga/hal"
	"rayvga/tracer"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	pal      *hal.Palette
	presents int
}

func newFakeFB(w, h int) *fakeFB { return &fakeFB{w: w, h: h, buf: make([]byte, w*h)} }

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatIndexed8 }
func (f *fakeFB) StrideBytes() int        { return f.w }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) SetPalette(p *hal.Palette) {
	cp := *p
	f.pal = &cp
}
func (f *fakeFB) Present() error { f.presents++; return nil }
func (f *fakeFB) Clear(index uint8) {
	for i := range f.buf {
		f.buf[i] = index
	}
}

type fakeDisplay struct {
	fb    hal.Framebuffer
	mode  hal.VideoMode
	modes []hal.VideoMode
}

func (d *fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }
func (d *fakeDisplay) SetMode(m hal.VideoMode) (hal.VideoMode, error) {
	prev := d.mode
	d.mode = m
	d.modes = append(d.modes, m)
	return prev, nil
}

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeInput struct{ kbd fakeKeyboard }

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }

type fakeTime struct{ ch chan uint64 }

func (t fakeTime) Ticks() <-chan uint64 { return t.ch }

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeHAL struct {
	log  *fakeLogger
	disp *fakeDisplay
	in   fakeInput
	time fakeTime
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		log:  &fakeLogger{},
		disp: &fakeDisplay{fb: newFakeFB(w, h)},
		in:   fakeInput{kbd: fakeKeyboard{ch: make(chan hal.KeyEvent, 16)}},
		time: fakeTime{ch: make(chan uint64, 16)},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h.disp }
func (h *fakeHAL) Input() hal.Input     { return h.in }
func (h *fakeHAL) Time() hal.Time       { return h.time }

func (h *fakeHAL) fb() *fakeFB { return h.disp.fb.(*fakeFB) }

func (h *fakeHAL) press(r rune) { h.in.kbd.ch <- hal.KeyEvent{Press: true, Rune: r} }

func (h *fakeHAL) pressCode(c hal.KeyCode) { h.in.kbd.ch <- hal.KeyEvent{Press: true, Code: c} }

func TestStepEntersModeAndLoadsPalette(t *testing.T) {
	h := newFakeHAL(32, 20)
	task := New(h, Config{})
	if err := task.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if h.disp.mode != hal.ModeIndexed320x200 {
		t.Fatalf("mode=%v", h.disp.mode)
	}
	fb := h.fb()
	if fb.pal == nil {
		t.Fatalf("palette not loaded")
	}
	want := tracer.BuildPalette()
	if fb.pal[tracer.PalRed+15] != want[tracer.PalRed+15] {
		t.Fatalf("palette mismatch: %+v", fb.pal[tracer.PalRed+15])
	}
	if fb.presents != 1 || task.Frames() != 1 {
		t.Fatalf("presents=%d frames=%d", fb.presents, task.Frames())
	}
	if task.Quality() != tracer.QualityMedium {
		t.Fatalf("default quality=%+v", task.Quality())
	}
	if !tracer.BandRed.Contains(fb.buf[10*32+16]) {
		t.Fatalf("center pixel %d not red", fb.buf[10*32+16])
	}
}

func TestEscapeRestoresModeAndQuits(t *testing.T) {
	h := newFakeHAL(16, 10)
	task := New(h, Config{})
	h.pressCode(hal.KeyEscape)
	if err := task.Step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("err=%v want ErrQuit", err)
	}
	if h.disp.mode != hal.ModeText {
		t.Fatalf("mode not restored: %v", h.disp.mode)
	}
	if h.fb().presents != 1 {
		t.Fatalf("frame before escape not presented")
	}
	if err := task.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	if len(h.disp.modes) != 2 {
		t.Fatalf("mode changes=%v", h.disp.modes)
	}
}

func TestInputAppliesAfterFrame(t *testing.T) {
	h := newFakeHAL(16, 10)
	task := New(h, Config{})
	if err := task.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	before := append([]byte(nil), h.fb().buf...)

	h.press('W')
	h.press('d')
	if err := task.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	// The frame rendered with the keys queued still shows the old camera.
	for i := range before {
		if h.fb().buf[i] != before[i] {
			t.Fatalf("pixel %d changed before input was applied", i)
		}
	}
	want := tracer.DefaultCamera()
	want.MoveForward(moveSpeed)
	want.Strafe(moveSpeed)
	if got := task.Camera(); got != want {
		t.Fatalf("camera=%+v want %+v", got, want)
	}
}

func TestCameraKeys(t *testing.T) {
	h := newFakeHAL(8, 5)
	task := New(h, Config{})
	h.press('Q')
	h.pressCode(hal.KeyRight)
	h.pressCode(hal.KeyUp)
	h.press('x')
	h.in.kbd.ch <- hal.KeyEvent{Rune: 'w'} // release
	if err := task.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	c := task.Camera()
	if c.Position.Y != tracer.DefaultCamera().Position.Y+moveSpeed {
		t.Fatalf("y=%v", c.Position.Y)
	}
	if c.Position.Z != tracer.DefaultCamera().Position.Z {
		t.Fatalf("release moved the camera: %+v", c.Position)
	}
	if c.Yaw != rotSpeed || c.Pitch != rotSpeed {
		t.Fatalf("yaw=%v pitch=%v", c.Yaw, c.Pitch)
	}
}

func TestQualityKeys(t *testing.T) {
	h := newFakeHAL(12, 8)
	task := New(h, Config{Quality: 1})
	if task.Quality() != tracer.QualityLow {
		t.Fatalf("initial quality=%+v", task.Quality())
	}
	h.press('3')
	if err := task.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if task.Quality() != tracer.QualityHigh {
		t.Fatalf("quality=%+v", task.Quality())
	}
	found := false
	for _, l := range h.log.lines {
		if strings.HasPrefix(l, "rt: quality 3") {
			found = true
		}
	}
	if !found {
		t.Fatalf("quality change not logged: %q", h.log.lines)
	}
}

func TestHUDToggle(t *testing.T) {
	h := newFakeHAL(64, 20)
	task := New(h, Config{HUD: true})
	if err := task.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	fb := h.fb()
	text := 0
	for y := 0; y < hudHeight; y++ {
		for x := 0; x < 64; x++ {
			idx := fb.buf[y*64+x]
			switch {
			case idx == tracer.PalBlack:
			case tracer.BandWhite.Contains(idx):
				text++
			default:
				t.Fatalf("hud pixel (%d,%d)=%d", x, y, idx)
			}
		}
	}
	if text == 0 {
		t.Fatalf("hud drew no text")
	}

	h.press('h')
	if err := task.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if task.HUDVisible() {
		t.Fatalf("hud still visible")
	}
	if err := task.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if tracer.BandWhite.Contains(fb.buf[0]) {
		t.Fatalf("hud drawn while hidden")
	}
}

func TestStatsLogAndFrameTime(t *testing.T) {
	h := newFakeHAL(8, 6)
	task := New(h, Config{StatsEvery: 2})
	h.time.ch <- 10
	if err := task.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	h.time.ch <- 20
	h.time.ch <- 26
	if err := task.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if task.frameMs != 16 {
		t.Fatalf("frameMs=%d", task.frameMs)
	}
	var stats []string
	for _, l := range h.log.lines {
		if strings.HasPrefix(l, "rt: frame ") {
			stats = append(stats, l)
		}
	}
	if len(stats) != 1 || !strings.Contains(stats[0], "frame 2: 8ms avg") {
		t.Fatalf("stats lines=%q", stats)
	}
}

func TestStartWithoutFramebuffer(t *testing.T) {
	h := newFakeHAL(8, 8)
	h.disp.fb = nil
	task := New(h, Config{})
	if err := task.Step(); !errors.Is(err, hal.ErrNoFramebuffer) {
		t.Fatalf("err=%v", err)
	}
	if h.disp.mode != hal.ModeText {
		t.Fatalf("mode changed without a framebuffer")
	}
}

func TestActionFor(t *testing.T) {
	cases := []struct {
		ev   hal.KeyEvent
		want action
	}{
		{hal.KeyEvent{Press: true, Rune: 'w'}, actForward},
		{hal.KeyEvent{Press: true, Rune: 'S'}, actBack},
		{hal.KeyEvent{Press: true, Rune: 'a'}, actStrafeLeft},
		{hal.KeyEvent{Press: true, Rune: 'D'}, actStrafeRight},
		{hal.KeyEvent{Press: true, Rune: 'q'}, actUp},
		{hal.KeyEvent{Press: true, Rune: 'e'}, actDown},
		{hal.KeyEvent{Press: true, Rune: '2'}, actQualityMedium},
		{hal.KeyEvent{Press: true, Rune: 'H'}, actToggleHUD},
		{hal.KeyEvent{Press: true, Rune: 0x1b}, actQuit},
		{hal.KeyEvent{Press: true, Code: hal.KeyLeft}, actYawLeft},
		{hal.KeyEvent{Press: true, Code: hal.KeyDown}, actPitchDown},
		{hal.KeyEvent{Press: true, Code: hal.KeyEscape}, actQuit},
		{hal.KeyEvent{Press: false, Code: hal.KeyEscape}, actNone},
		{hal.KeyEvent{Press: true, Rune: 'z'}, actNone},
	}
	for _, tc := range cases {
		if got := actionFor(tc.ev); got != tc.want {
			t.Fatalf("%+v: action=%d want %d", tc.ev, got, tc.want)
		}
	}
}
