package systems

import (
	"testing"
	"time"

	"github.com/RilyGit/DimaGame/assets"
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = 50 * time.Millisecond

// sheetSet is a SheetSet holding exactly the listed sheets.
type sheetSet map[string]bool

func (s sheetSet) Has(name string) bool { return s[name] }

// newTestWorld returns a world with a collision space covering a wide level.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 3000, float64(cfg.Physics.WorldHeight))
	return e
}

func spawnPlayer(e *ecs.ECS, x float64) *donburi.Entry {
	return factory.CreatePlayer(e, x, factory.AllSheets)
}

func spawnSkeleton(e *ecs.ECS, x float64) *donburi.Entry {
	return factory.CreateEnemy(e, "skeleton", x, factory.AllSheets)
}

// press replaces the held actions for the next tick.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		SetAction(input, a, true)
	}
}

// stepPlayer runs one player tick with the given actions held.
func stepPlayer(e *ecs.ECS, actions ...cfg.ActionID) {
	press(e, actions...)
	AdvanceClock(e, tick)
	UpdatePlayer(e)
}

func stepEnemies(e *ecs.ECS) {
	AdvanceClock(e, tick)
	UpdateEnemies(e)
}

// advance moves the clock forward by d in tick-sized steps.
func advance(e *ecs.ECS, d time.Duration) {
	for d > 0 {
		step := tick
		if d < step {
			step = d
		}
		AdvanceClock(e, step)
		d -= step
	}
}

func xOf(entry *donburi.Entry) float64 {
	return components.Object.Get(entry).X
}

func hp(entry *donburi.Entry) int {
	return components.Health.Get(entry).Current
}

func stateOf(entry *donburi.Entry) cfg.StateID {
	return components.State.Get(entry).CurrentState
}

var _ assets.SheetSet = sheetSet(nil)
