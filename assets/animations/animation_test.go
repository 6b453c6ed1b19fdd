package animations

import (
	"testing"
	"time"
)

func TestAdvanceMovesOneFramePerInterval(t *testing.T) {
	a := &Animation{Frames: 4, Interval: 100 * time.Millisecond}

	if a.Advance(60 * time.Millisecond) {
		t.Fatal("unexpected wrap")
	}
	if a.Frame != 0 {
		t.Fatalf("frame advanced before interval: %d", a.Frame)
	}
	a.Advance(40 * time.Millisecond)
	if a.Frame != 1 {
		t.Fatalf("expected frame 1, got %d", a.Frame)
	}
	if a.Timer != 0 {
		t.Errorf("timer not reset: %v", a.Timer)
	}
}

func TestAdvanceWrapsAndLoops(t *testing.T) {
	a := &Animation{Frames: 4, Interval: 100 * time.Millisecond}
	wrapped := false
	for i := 0; i < 4; i++ {
		wrapped = a.Advance(100 * time.Millisecond)
	}
	if !wrapped {
		t.Fatal("expected wrap on the fourth advance")
	}
	if a.Frame != 0 || !a.Looped {
		t.Errorf("frame=%d looped=%v", a.Frame, a.Looped)
	}
}

func TestAdvanceFreezeOnComplete(t *testing.T) {
	a := &Animation{Frames: 3, Interval: 50 * time.Millisecond, FreezeOnComplete: true}
	for i := 0; i < 10; i++ {
		a.Advance(50 * time.Millisecond)
		if a.Frame >= a.Frames {
			t.Fatalf("frame %d out of range", a.Frame)
		}
	}
	if a.Frame != 2 {
		t.Errorf("expected to hold last frame, got %d", a.Frame)
	}
}

func TestAdvanceWithoutFrames(t *testing.T) {
	a := &Animation{Interval: 10 * time.Millisecond}
	if !a.Advance(10 * time.Millisecond) {
		t.Error("a frameless animation should wrap every interval")
	}
	if a.Frame != 0 {
		t.Errorf("frame = %d", a.Frame)
	}
}

func TestRestartAndMidpoint(t *testing.T) {
	a := &Animation{Frames: 4, Interval: time.Millisecond, Frame: 3, Timer: 5, Looped: true}
	a.Restart()
	if a.Frame != 0 || a.Timer != 0 || a.Looped {
		t.Errorf("restart left %+v", a)
	}
	if got := a.Midpoint(); got != 2 {
		t.Errorf("midpoint = %d", got)
	}
}
