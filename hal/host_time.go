//go:build !tinygo

package hal

import "time"

const hostTickDur = time.Millisecond

// hostTime converts wall-clock time between runner steps into 1 ms ticks.
type hostTime struct {
	ch  chan uint64
	seq uint64
	now func() time.Time

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return newHostTimeWithClock(time.Now)
}

func newHostTimeWithClock(now func() time.Time) *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step publishes the ticks elapsed since the previous call. The first call
// publishes n ticks.
func (t *hostTime) step(n uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / hostTickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % hostTickDur
	t.stepN(ticks)
}

func (t *hostTime) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
