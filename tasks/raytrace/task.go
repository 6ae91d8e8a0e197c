// Package raytrace drives the ray tracer on the HAL display.
//
// Each Step renders one frame from a camera snapshot, presents it and then
// applies queued key presses, so input never changes a frame in flight.
package raytrace

import (
	"fmt"

	"rayvga/hal"
	"rayvga/tracer"
)

// Config selects the initial presentation.
type Config struct {
	// Quality is the starting preset (1..3); 0 selects medium.
	Quality int
	// HUD starts with the status bar visible.
	HUD bool
	// StatsEvery logs frame statistics every N frames; 0 disables.
	StatsEvery int
}

// DefaultStatsEvery is the frame-statistics logging period.
const DefaultStatsEvery = 60

type Task struct {
	disp  hal.Display
	kbd   hal.Keyboard
	ticks <-chan uint64
	log   hal.Logger
	cfg   Config

	fb     hal.Framebuffer
	target fbTarget
	hud    *hud

	r       *tracer.Renderer
	cam     tracer.Camera
	preset  int
	quality tracer.Quality
	showHUD bool

	started  bool
	prevMode hal.VideoMode

	frame   uint64
	lastSeq uint64
	frameMs uint64

	window      tracer.Stats
	windowMs    uint64
	windowFrame int
}

func New(h hal.HAL, cfg Config) *Task {
	t := &Task{
		log: h.Logger(),
		cfg: cfg,
		r:   tracer.NewRenderer(nil),
		cam: tracer.DefaultCamera(),
	}
	t.disp = h.Display()
	if in := h.Input(); in != nil {
		t.kbd = in.Keyboard()
	}
	if ht := h.Time(); ht != nil {
		t.ticks = ht.Ticks()
	}
	if !t.setQuality(cfg.Quality) {
		t.setQuality(2)
	}
	t.showHUD = cfg.HUD
	return t
}

func (t *Task) Camera() tracer.Camera   { return t.cam }
func (t *Task) Quality() tracer.Quality { return t.quality }
func (t *Task) Frames() uint64          { return t.frame }
func (t *Task) HUDVisible() bool        { return t.showHUD }

// Start enters the indexed video mode and loads the palette.
func (t *Task) Start() error {
	if t.started {
		return nil
	}
	if t.disp == nil {
		return hal.ErrNoFramebuffer
	}
	fb := t.disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatIndexed8 {
		return hal.ErrNoFramebuffer
	}

	prev, err := t.disp.SetMode(hal.ModeIndexed320x200)
	if err != nil {
		return fmt.Errorf("raytrace: enter video mode: %w", err)
	}
	t.prevMode = prev
	t.started = true

	t.fb = fb
	t.target = fbTarget{fb: fb}
	t.hud = newHUD(newFBDisplay(fb))
	fb.SetPalette(tracer.BuildPalette())
	fb.Clear(tracer.PalBlack)

	t.logf("mode %v, %dx%d, quality %d", hal.ModeIndexed320x200, fb.Width(), fb.Height(), t.preset)
	return nil
}

// Stop restores the video mode that was active before Start.
func (t *Task) Stop() error {
	if !t.started {
		return nil
	}
	t.started = false
	if _, err := t.disp.SetMode(t.prevMode); err != nil {
		return fmt.Errorf("raytrace: restore video mode: %w", err)
	}
	t.logf("mode %v restored after %d frames", t.prevMode, t.frame)
	return nil
}

// Step renders and presents one frame, then applies pending input.
//
// It returns hal.ErrQuit after Escape, with the video mode already restored.
func (t *Task) Step() error {
	if err := t.Start(); err != nil {
		return err
	}
	t.drainTicks()

	view := t.cam.View()
	st := t.r.RenderFrame(t.target, view, t.quality)
	if t.showHUD {
		t.hud.draw(hudText(t.preset, t.quality.MaxDepth, t.frameMs, fps(t.frameMs)))
	}
	if err := t.fb.Present(); err != nil {
		return fmt.Errorf("raytrace: present: %w", err)
	}
	t.frame++
	t.account(st)

	if t.drainInput() {
		if err := t.Stop(); err != nil {
			return err
		}
		return hal.ErrQuit
	}
	return nil
}

// drainTicks consumes the tick stream and records the time since the last frame.
func (t *Task) drainTicks() {
	if t.ticks == nil {
		return
	}
	seq := t.lastSeq
	for done := false; !done; {
		select {
		case s, ok := <-t.ticks:
			if !ok {
				t.ticks = nil
				done = true
				break
			}
			seq = s
		default:
			done = true
		}
	}
	t.setFrameTime(seq)
}

func (t *Task) setFrameTime(seq uint64) {
	if t.lastSeq != 0 && seq >= t.lastSeq {
		t.frameMs = seq - t.lastSeq
	}
	t.lastSeq = seq
}

// drainInput applies queued key presses without blocking and reports whether
// Escape was pressed.
func (t *Task) drainInput() (quit bool) {
	if t.kbd == nil {
		return false
	}
	ch := t.kbd.Events()
	for {
		select {
		case ev := <-ch:
			if t.apply(actionFor(ev)) {
				quit = true
			}
		default:
			return quit
		}
	}
}

func (t *Task) apply(a action) (quit bool) {
	switch a {
	case actForward:
		t.cam.MoveForward(moveSpeed)
	case actBack:
		t.cam.MoveForward(-moveSpeed)
	case actStrafeLeft:
		t.cam.Strafe(-moveSpeed)
	case actStrafeRight:
		t.cam.Strafe(moveSpeed)
	case actUp:
		t.cam.Rise(moveSpeed)
	case actDown:
		t.cam.Rise(-moveSpeed)
	case actPitchUp:
		t.cam.Look(rotSpeed)
	case actPitchDown:
		t.cam.Look(-rotSpeed)
	case actYawLeft:
		t.cam.Turn(-rotSpeed)
	case actYawRight:
		t.cam.Turn(rotSpeed)
	case actQualityLow, actQualityMedium, actQualityHigh:
		n := int(a-actQualityLow) + 1
		if n != t.preset && t.setQuality(n) {
			t.logf("quality %d: step %d, depth %d", n, t.quality.Step, t.quality.MaxDepth)
		}
	case actToggleHUD:
		t.showHUD = !t.showHUD
	case actQuit:
		return true
	}
	return false
}

func (t *Task) setQuality(n int) bool {
	q, ok := tracer.QualityPreset(n)
	if !ok {
		return false
	}
	t.preset = n
	t.quality = q
	return true
}

func (t *Task) account(st tracer.Stats) {
	every := t.cfg.StatsEvery
	if every <= 0 {
		return
	}
	t.window.PrimaryRays += st.PrimaryRays
	t.window.ReflectionRays += st.ReflectionRays
	t.window.ShadowRays += st.ShadowRays
	t.windowMs += t.frameMs
	t.windowFrame++
	if t.windowFrame < every {
		return
	}
	n := uint64(t.windowFrame)
	t.logf("frame %d: %dms avg, rays/frame primary=%d reflect=%d shadow=%d",
		t.frame, t.windowMs/n, t.window.PrimaryRays/n, t.window.ReflectionRays/n, t.window.ShadowRays/n)
	t.window = tracer.Stats{}
	t.windowMs = 0
	t.windowFrame = 0
}

func (t *Task) logf(format string, args ...any) {
	if t.log == nil {
		return
	}
	t.log.WriteLineString("rt: " + fmt.Sprintf(format, args...))
}

func fps(frameMs uint64) float64 {
	if frameMs == 0 {
		return 0
	}
	return 1000 / float64(frameMs)
}
