package factory

import (
	"github.com/RilyGit/DimaGame/archetypes"
	"github.com/RilyGit/DimaGame/assets"
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the named kind standing on the ground at x,
// facing left. Unknown kinds fall back to the default enemy type.
func CreateEnemy(ecs *ecs.ECS, kind string, x float64, sheets assets.SheetSet) *donburi.Entry {
	enemyType, exists := cfg.EnemyType(kind)
	if !exists {
		logrus.WithField("kind", kind).Warn("unknown enemy type, using default")
		kind = cfg.Enemy.DefaultType
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	w := float64(enemyType.CollisionWidth)
	h := float64(enemyType.CollisionHeight)
	obj := resolv.NewObject(x, cfg.Physics.GroundLevel-h, w, h)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   kind,
		TypeConfig: &enemyType,
	})
	components.Actor.SetValue(enemy, components.ActorData{
		IsAlive:     true,
		Direction:   cfg.DirectionLeft,
		HitDuration: enemyType.HitDuration,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Walk,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Speed:         enemyType.Speed,
		Gravity:       enemyType.Gravity,
		OnGround:      true,
		VisualOffsetY: enemyType.VisualOffsetY,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	animData := GenerateAnimations(enemyType.SpriteSheetKey, sheets,
		enemyType.FrameWidth, enemyType.FrameHeight, enemyType.FrameInterval)
	animData.SetAnimation(cfg.Walk)
	components.Animation.Set(enemy, animData)

	addToSpace(ecs, obj, components.Physics.Get(enemy))
	return enemy
}
