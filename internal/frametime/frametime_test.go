package frametime

import (
	"testing"
	"time"
)

func TestObserve(t *testing.T) {
	var tracker Tracker
	steps := []struct {
		now     time.Duration
		delta   time.Duration
		average time.Duration
	}{
		{now: 5 * time.Millisecond, delta: 0, average: 0},
		{now: 15 * time.Millisecond, delta: 10 * time.Millisecond, average: 10 * time.Millisecond},
		{now: 35 * time.Millisecond, delta: 20 * time.Millisecond, average: 11 * time.Millisecond},
		// backwards is ignored
		{now: 30 * time.Millisecond, delta: 0, average: 11 * time.Millisecond},
	}
	for i, step := range steps {
		if delta := tracker.Observe(step.now); delta != step.delta {
			t.Errorf("step %d: delta = %v, expected %v", i, delta, step.delta)
		}
		if tracker.Average() != step.average {
			t.Errorf("step %d: average = %v, expected %v", i, tracker.Average(), step.average)
		}
	}
	if tracker.Frames() != 2 {
		t.Errorf("frames = %d, expected 2", tracker.Frames())
	}
}

func TestFPS(t *testing.T) {
	var tracker Tracker
	if tracker.FPS() != 0 {
		t.Fatal("expected zero fps before any frames")
	}
	for i := 0; i <= 10; i++ {
		tracker.Observe(time.Duration(i) * 20 * time.Millisecond)
	}
	if fps := tracker.FPS(); fps != 50 {
		t.Errorf("fps = %v, expected 50", fps)
	}
}
