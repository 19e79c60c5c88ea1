package game

import "time"

// Timer is a one-shot countdown in seconds.
type Timer struct {
	Duration float64
	Elapsed  float64
	finished bool
}

func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d.Seconds()}
}

// Tick advances the timer by dt seconds and reports whether this tick
// finished it. A finished timer never reports true again.
func (t *Timer) Tick(dt float64) bool {
	if t.finished {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
		t.finished = true
		return true
	}
	return false
}

func (t *Timer) Finished() bool {
	return t.finished
}

// Remaining is the time left before the timer finishes.
func (t *Timer) Remaining() float64 {
	return max(t.Duration-t.Elapsed, 0)
}
