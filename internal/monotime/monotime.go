// monotime supplies the elapsed-time clock used by the game loop
package monotime

import (
	"sync"
	"time"
)

// epoch is captured once so that Now() reads Go's monotonic clock
// rather than the wall clock.
var epoch = time.Now()

// Now returns the time elapsed since the process started.
//
// A time.Duration is 64-bit so there is no 32-bit millisecond rollover
// to worry about (SDL_GetTicks wraps after ~49 days).
func Now() time.Duration {
	return time.Since(epoch)
}

// Clock is the time source consumed by the game loop
type Clock interface {
	Now() time.Duration
}

// System is the Clock backed by Now()
type System struct{}

var _ Clock = System{}

func (System) Now() time.Duration {
	return Now()
}

// Manual is a Clock that only moves when told to, used by tests and
// the headless driver.
type Manual struct {
	mu  sync.Mutex
	now time.Duration
}

var _ Clock = new(Manual)

func (clock *Manual) Now() time.Duration {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// Advance moves the clock forward by d. Negative values are ignored so
// the clock stays monotonic.
func (clock *Manual) Advance(d time.Duration) time.Duration {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if d > 0 {
		clock.now += d
	}
	return clock.now
}

// Set jumps the clock to t if t is not in the past.
func (clock *Manual) Set(t time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if t > clock.now {
		clock.now = t
	}
}
