package factory

import (
	"github.com/RilyGit/DimaGame/archetypes"
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton in the loading state. poll is
// consulted every tick until the background load settles.
func CreateSession(ecs *ecs.ECS, poll func() (components.LoadResult, bool)) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		State: cfg.GameStateLoading,
		Poll:  poll,
	})
	return session
}
