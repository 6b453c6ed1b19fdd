package factory

import (
	"github.com/RilyGit/DimaGame/archetypes"
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace replaces the collision space with one covering a level of the
// given size.
func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	if old, ok := components.Space.First(ecs.World); ok {
		ecs.World.Remove(old.Entity())
	}

	space := archetypes.Space.Spawn(ecs)
	cell := cfg.Physics.SpaceCellSize
	spaceData := resolv.NewSpace(int(width), int(height), cell, cell)
	components.Space.Set(space, spaceData)
	components.World.SetValue(space, components.WorldData{Width: width, Height: height})
	return space
}

// addToSpace registers obj with the collision space and clamps the actor's
// horizontal range to the level width.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object, physics *components.PhysicsData) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(entry).Add(obj)
	world := components.World.Get(entry)
	if world.Width > obj.W {
		physics.MaxX = world.Width - obj.W
	}
}
