//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int

	// Keys is a scripted key sequence fed one press per tick, before the
	// step runs. See ParseKeys.
	Keys string
}

// RunHeadless runs the app without opening a window.
//
// It returns nil when the tick limit is reached or a step returns ErrQuit.
// The app is closed on every exit path, including cancellation.
func RunHeadless(ctx context.Context, newApp func(HAL) App, cfg HeadlessConfig) error {
	return runHeadless(ctx, newHost(os.Stdout), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) App, cfg HeadlessConfig) (err error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}
	script, err := ParseKeys(cfg.Keys)
	if err != nil {
		return fmt.Errorf("headless keys: %w", err)
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	app := newApp(h)
	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if len(script) > 0 {
				if h.kbd.emit(script[0]) {
					script = script[1:]
				}
			}
			for i := 0; i < cfg.StepBudget; i++ {
				if err := app.Step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

var namedKeys = map[string]KeyCode{
	"up":    KeyUp,
	"down":  KeyDown,
	"left":  KeyLeft,
	"right": KeyRight,
	"esc":   KeyEscape,
}

// ParseKeys turns a key script into press events.
//
// Plain characters are runes; <up>, <down>, <left>, <right> and <esc> are
// extended keys. Whitespace is ignored.
func ParseKeys(s string) ([]KeyEvent, error) {
	var out []KeyEvent
	for len(s) > 0 {
		r := rune(s[0])
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			s = s[1:]
		case r == '<':
			end := strings.IndexByte(s, '>')
			if end < 0 {
				return nil, fmt.Errorf("unterminated key name in %q", s)
			}
			name := strings.ToLower(s[1:end])
			code, ok := namedKeys[name]
			if !ok {
				return nil, fmt.Errorf("unknown key <%s>", name)
			}
			out = append(out, KeyEvent{Code: code, Press: true})
			s = s[end+1:]
		default:
			r, n := utf8.DecodeRuneInString(s)
			out = append(out, KeyEvent{Press: true, Rune: r})
			s = s[n:]
		}
	}
	return out, nil
}
