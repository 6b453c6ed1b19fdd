package systems

import (
	"time"

	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateClock creates a system that feeds wall-clock time into the session
// clock. now is injectable for tests.
func NewUpdateClock(now func() time.Time) ecs.System {
	var last time.Time
	return func(e *ecs.ECS) {
		t := now()
		var elapsed time.Duration
		if !last.IsZero() {
			elapsed = t.Sub(last)
		}
		last = t
		AdvanceClock(e, elapsed)
	}
}

// AdvanceClock moves the session clock forward by elapsed. A long stall (a
// dragged window, a breakpoint) counts as MaxFrameDelta so timers never jump.
func AdvanceClock(e *ecs.ECS, elapsed time.Duration) {
	clock := GetOrCreateClock(e)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > cfg.Session.MaxFrameDelta {
		elapsed = cfg.Session.MaxFrameDelta
	}
	clock.Delta = elapsed
	clock.Now += elapsed
}

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Clock))
		components.Clock.SetValue(ent, components.ClockData{})
	}

	ent, _ := components.Clock.First(e.World)
	return components.Clock.Get(ent)
}
