package animations

import "time"

// Animation is a time-driven frame counter over a sheet of Frames frames.
type Animation struct {
	Frames           int
	Interval         time.Duration // time each frame stays on screen
	Frame            int
	Timer            time.Duration // time accumulated since the last frame change
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Advance accumulates delta and moves at most one frame once Interval has
// elapsed. It reports whether the animation ran past its last frame.
func (a *Animation) Advance(delta time.Duration) bool {
	a.Timer += delta
	if a.Timer < a.Interval {
		return false
	}
	a.Timer = 0

	frames := a.Frames
	if frames < 1 {
		frames = 1
	}
	a.Frame++
	if a.Frame < frames {
		return false
	}

	a.Looped = true
	if a.FreezeOnComplete {
		// Stay on last frame
		a.Frame = frames - 1
	} else {
		// loop back to the beginning
		a.Frame = 0
	}
	return true
}

// Restart rewinds to the first frame.
func (a *Animation) Restart() {
	a.Frame = 0
	a.Timer = 0
	a.Looped = false
}

// Midpoint returns the frame at the temporal middle of the animation.
func (a *Animation) Midpoint() int {
	return a.Frames / 2
}
