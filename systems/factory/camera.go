package factory

import (
	"github.com/RilyGit/DimaGame/archetypes"
	"github.com/RilyGit/DimaGame/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	if _, ok := components.Camera.First(ecs.World); ok {
		return
	}
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
