// frametime keeps a smoothed average of the time between frames, used
// for the periodic debug log line.
package frametime

import (
	"time"
)

// smoothing is how far each new sample pulls the average
const smoothing = 0.10

// Tracker is fed every frame's timestamp. The zero value is ready to use.
type Tracker struct {
	last    time.Duration
	average time.Duration
	frames  uint64
	started bool
}

// Observe records a frame at now and returns the delta since the
// previous frame. The first frame and timestamps that go backwards
// report zero and don't move the average.
func (tracker *Tracker) Observe(now time.Duration) time.Duration {
	if !tracker.started || now < tracker.last {
		tracker.started = true
		tracker.last = now
		return 0
	}
	delta := now - tracker.last
	tracker.last = now
	tracker.frames++
	if tracker.average == 0 {
		tracker.average = delta
	} else {
		tracker.average = time.Duration(float64(tracker.average) + (smoothing * float64(delta-tracker.average)))
	}
	return delta
}

// Average is the smoothed frame time.
func (tracker *Tracker) Average() time.Duration {
	return tracker.average
}

// Frames is how many deltas have been observed.
func (tracker *Tracker) Frames() uint64 {
	return tracker.frames
}

// FPS converts the average into frames per second, zero if nothing has
// been observed.
func (tracker *Tracker) FPS() float64 {
	if tracker.average <= 0 {
		return 0
	}
	return float64(time.Second) / float64(tracker.average)
}
