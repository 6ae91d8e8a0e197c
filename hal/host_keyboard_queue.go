//go:build !tinygo

package hal

// Auto-repeat timing in window ticks (60 per second).
const (
	repeatDelay    = 15
	repeatInterval = 3
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// emit queues ev, dropping it when the consumer is behind.
func (k *hostKeyboard) emit(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}

// repeating reports whether a key held for the given number of ticks should
// produce a repeated press this tick.
func repeating(held int) bool {
	return held > repeatDelay && (held-repeatDelay)%repeatInterval == 0
}
