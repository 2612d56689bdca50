package monotime

import (
	"testing"
	"time"
)

func TestNowIsMonotonic(t *testing.T) {
	prev := Now()
	for i := 0; i < 1000; i++ {
		cur := System{}.Now()
		if cur < prev {
			t.Fatalf("clock went backwards: %v after %v", cur, prev)
		}
		prev = cur
	}
}

func TestManualClock(t *testing.T) {
	var clock Manual
	if got := clock.Now(); got != 0 {
		t.Fatalf("expected zero start, got %v", got)
	}
	clock.Advance(16 * time.Millisecond)
	clock.Advance(-5 * time.Millisecond)
	if got := clock.Now(); got != 16*time.Millisecond {
		t.Errorf("expected 16ms, got %v", got)
	}
	clock.Set(10 * time.Millisecond)
	if got := clock.Now(); got != 16*time.Millisecond {
		t.Errorf("Set into the past moved the clock to %v", got)
	}
	clock.Set(time.Second)
	if got := clock.Now(); got != time.Second {
		t.Errorf("expected 1s, got %v", got)
	}
}
