package systems

import (
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/tags"
	"github.com/yohamta/donburi/ecs"
)

// Follow returns the camera x that centres target horizontally in a viewport
// viewportWidth wide. The camera never follows vertically.
func Follow(target Rect, viewportWidth float64) float64 {
	return target.X - viewportWidth/2 + target.W/2
}

// UpdateCamera snaps the camera onto the player every tick.
func UpdateCamera(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	camera := GetOrCreateCamera(e)
	camera.Position.X = Follow(Hitbox(playerEntry), float64(cfg.C.Width))
	camera.Position.Y = 0
}

// GetOrCreateCamera returns the singleton Camera component, creating if needed
func GetOrCreateCamera(e *ecs.ECS) *components.CameraData {
	if _, ok := components.Camera.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Camera))
		components.Camera.SetValue(ent, components.CameraData{})
	}

	ent, _ := components.Camera.First(e.World)
	return components.Camera.Get(ent)
}
