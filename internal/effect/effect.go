// effect drives the title screen flicker
package effect

import "time"

// IntervalFactor scales the last frame delta into the flicker interval.
//
// note: 0.666 has no frame-rate basis. Since the toggle time is always
// at or before the previous frame, the interval it produces is always
// met, so with no MinInterval the phase flips on every Advance.
const IntervalFactor = 0.666

// Timer owns the flicker phase. The zero value is not ready for use,
// call New.
type Timer struct {
	// MinInterval is a lower bound on the toggle interval. Zero keeps
	// the pure frame-delta interval.
	MinInterval time.Duration

	phase      bool
	lastToggle time.Duration
	lastFrame  time.Duration
}

func New(minInterval time.Duration) *Timer {
	return &Timer{
		MinInterval: minInterval,
		phase:       true,
	}
}

// Advance moves the timer to now and flips the phase if the interval
// has elapsed since the last flip. It reports whether the phase flipped.
//
// The first call measures its delta from zero, so it sees one large
// frame. That is left alone.
func (timer *Timer) Advance(now time.Duration) bool {
	if now < timer.lastFrame {
		// clocks are monotonic, ignore anything that says otherwise
		return false
	}
	delta := now - timer.lastFrame
	timer.lastFrame = now
	interval := timer.Interval(delta)
	if now-timer.lastToggle < interval {
		return false
	}
	timer.phase = !timer.phase
	timer.lastToggle = now
	return true
}

// Interval is the toggle interval for a given frame delta.
func (timer *Timer) Interval(delta time.Duration) time.Duration {
	interval := time.Duration(float64(delta) * IntervalFactor)
	if interval < timer.MinInterval {
		interval = timer.MinInterval
	}
	return interval
}

// Phase is true when the flickering text should be drawn.
func (timer *Timer) Phase() bool {
	return timer.phase
}

// LastToggle is when the phase last flipped.
func (timer *Timer) LastToggle() time.Duration {
	return timer.lastToggle
}
