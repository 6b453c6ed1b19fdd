package factory

import (
	"github.com/RilyGit/DimaGame/archetypes"
	"github.com/RilyGit/DimaGame/assets"
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a fresh knight standing on the ground at x.
func CreatePlayer(ecs *ecs.ECS, x float64, sheets assets.SheetSet) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x, cfg.Physics.GroundLevel-h, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player

	components.Player.SetValue(player, components.PlayerData{})
	components.Actor.SetValue(player, components.ActorData{
		IsAlive:     true,
		Direction:   cfg.DirectionRight,
		HitDuration: cfg.Player.HitDuration,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Speed:         cfg.Player.Speed,
		JumpSpeed:     cfg.Player.JumpSpeed,
		Gravity:       cfg.Player.Gravity,
		OnGround:      true,
		VisualOffsetY: cfg.Player.VisualOffsetY,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	animData := GenerateAnimations(cfg.Player.SpriteSheetKey, sheets,
		cfg.Player.FrameWidth, cfg.Player.FrameHeight, cfg.Player.FrameInterval)
	animData.SetAnimation(cfg.Idle)
	components.Animation.Set(player, animData)

	addToSpace(ecs, obj, components.Physics.Get(player))
	return player
}
