package app

import (
	"fmt"
	"runtime/debug"

	"rayvga/hal"
	"rayvga/internal/buildinfo"
	"rayvga/tasks/raytrace"
)

type Config struct {
	// Quality is the starting preset: 1 low, 2 medium, 3 high.
	Quality int
	// HUD shows the status bar from the first frame.
	HUD bool
	// Stats logs frame statistics periodically.
	Stats bool
}

// System owns the ray tracer task and implements hal.App.
type System struct {
	h    hal.HAL
	task *raytrace.Task
	err  error
}

var _ hal.App = (*System)(nil)

// New returns the system with default config.
func New(h hal.HAL) *System {
	return NewWithConfig(h, Config{})
}

// NewWithConfig returns the system. Each Step renders one frame.
//
// A panic inside a step is reported, the video mode is restored and the panic
// comes back as an error; later calls return the same error.
func NewWithConfig(h hal.HAL, cfg Config) *System {
	tc := raytrace.Config{Quality: cfg.Quality, HUD: cfg.HUD}
	if cfg.Stats {
		tc.StatsEvery = raytrace.DefaultStatsEvery
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString("rayvga " + buildinfo.Long())
	}
	return &System{h: h, task: raytrace.New(h, tc)}
}

func (s *System) Step() (err error) {
	if s.err != nil {
		return s.err
	}
	defer func() {
		if r := recover(); r != nil {
			reportPanic(s.h, r, debug.Stack())
			if stopErr := s.task.Stop(); stopErr != nil {
				if l := s.h.Logger(); l != nil {
					l.WriteLineString(stopErr.Error())
				}
			}
			s.err = fmt.Errorf("app: panic: %v", r)
			err = s.err
		}
	}()
	return s.task.Step()
}

// Close restores the video mode the task entered. It is safe to call after
// Escape or a panic already did.
func (s *System) Close() error {
	return s.task.Stop()
}
