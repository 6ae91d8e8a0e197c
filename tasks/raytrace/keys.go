package raytrace

import (
	"unicode"

	"rayvga/hal"
)

const (
	moveSpeed float32 = 0.4
	rotSpeed  float32 = 0.08
)

type action uint8

const (
	actNone action = iota
	actForward
	actBack
	actStrafeLeft
	actStrafeRight
	actUp
	actDown
	actPitchUp
	actPitchDown
	actYawLeft
	actYawRight
	actQualityLow
	actQualityMedium
	actQualityHigh
	actToggleHUD
	actQuit
)

// actionFor maps a key press to an action. Releases map to actNone.
func actionFor(ev hal.KeyEvent) action {
	if !ev.Press {
		return actNone
	}
	switch ev.Code {
	case hal.KeyUp:
		return actPitchUp
	case hal.KeyDown:
		return actPitchDown
	case hal.KeyLeft:
		return actYawLeft
	case hal.KeyRight:
		return actYawRight
	case hal.KeyEscape:
		return actQuit
	}

	switch unicode.ToLower(ev.Rune) {
	case 'w':
		return actForward
	case 's':
		return actBack
	case 'a':
		return actStrafeLeft
	case 'd':
		return actStrafeRight
	case 'q':
		return actUp
	case 'e':
		return actDown
	case '1':
		return actQualityLow
	case '2':
		return actQualityMedium
	case '3':
		return actQualityHigh
	case 'h':
		return actToggleHUD
	case 0x1b:
		return actQuit
	}
	return actNone
}
