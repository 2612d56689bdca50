package effect

import (
	"testing"
	"time"
)

func TestStartsVisible(t *testing.T) {
	if !New(0).Phase() {
		t.Fatal("phase should start true")
	}
}

func TestFlipsEveryFrameWithoutFloor(t *testing.T) {
	timer := New(0)
	want := true
	now := time.Duration(0)
	for frame := 0; frame < 120; frame++ {
		now += 16 * time.Millisecond
		if !timer.Advance(now) {
			t.Fatalf("frame %d: expected a flip", frame)
		}
		want = !want
		if timer.Phase() != want {
			t.Fatalf("frame %d: phase %v, expected %v", frame, timer.Phase(), want)
		}
	}
}

func TestFirstFrameOutlier(t *testing.T) {
	timer := New(0)
	// first call measures from zero: delta = 5s, interval = 3.33s, and
	// 5s since the zero toggle time is enough to flip
	if !timer.Advance(5 * time.Second) {
		t.Fatal("expected first advance to flip")
	}
	if timer.LastToggle() != 5*time.Second {
		t.Fatalf("last toggle = %v", timer.LastToggle())
	}
}

// It must never flip on a call where the time since the last toggle is
// below the interval.
func TestNeverFlipsBeforeInterval(t *testing.T) {
	const floor = 100 * time.Millisecond
	timer := New(floor)
	now := time.Duration(0)
	flips := 0
	for frame := 0; frame < 600; frame++ {
		now += time.Duration(5+frame%13) * time.Millisecond
		sinceToggle := now - timer.LastToggle()
		delta := now - timer.lastFrame
		interval := timer.Interval(delta)
		before := timer.Phase()
		flipped := timer.Advance(now)
		if flipped != (timer.Phase() != before) {
			t.Fatalf("frame %d: Advance result disagrees with phase change", frame)
		}
		if sinceToggle < interval && flipped {
			t.Fatalf("frame %d: flipped %v after last toggle, interval %v", frame, sinceToggle, interval)
		}
		if sinceToggle >= interval && !flipped {
			t.Fatalf("frame %d: did not flip after %v, interval %v", frame, sinceToggle, interval)
		}
		if flipped {
			flips++
		}
	}
	if flips == 0 {
		t.Fatal("phase never flipped")
	}
}

func TestIgnoresTimeGoingBackwards(t *testing.T) {
	timer := New(0)
	timer.Advance(time.Second)
	phase := timer.Phase()
	if timer.Advance(500 * time.Millisecond) {
		t.Fatal("flipped on a timestamp from the past")
	}
	if timer.Phase() != phase {
		t.Fatal("phase changed on a timestamp from the past")
	}
}

func TestInterval(t *testing.T) {
	timer := New(0)
	if got := timer.Interval(1000 * time.Millisecond); got != 666*time.Millisecond {
		t.Errorf("interval for 1s = %v, expected 666ms", got)
	}
	timer.MinInterval = time.Second
	if got := timer.Interval(10 * time.Millisecond); got != time.Second {
		t.Errorf("floor not applied, got %v", got)
	}
}
