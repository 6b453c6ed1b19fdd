package systems

import (
	"math"
	"time"

	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)

	// Get the player for AI decisions
	playerEntry, _ := tags.Player.First(ecs.World)
	if playerEntry != nil && !playerEntry.Valid() {
		playerEntry = nil
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		UpdateHitState(e, clock.Delta)

		actor := components.Actor.Get(e)
		if actor.IsAlive && !actor.IsTakingHit {
			updateEnemyAI(e, playerEntry, clock.Now)
		}

		ApplyGravity(e)
		ApplyKnockback(e)
		UpdateAnimation(e, clock.Delta)

		enemy := components.Enemy.Get(e)
		if attackLands(e, enemy.TypeConfig.AttackHitFrame, &enemy.AttackConnected) {
			resolveEnemyAttack(ecs, e, playerEntry)
		}
	})
}

func updateEnemyAI(enemyEntry *donburi.Entry, playerEntry *donburi.Entry, now time.Duration) {
	enemy := components.Enemy.Get(enemyEntry)
	physics := components.Physics.Get(enemyEntry)
	state := components.State.Get(enemyEntry)
	typeCfg := enemy.TypeConfig

	physics.SpeedX = 0

	// A swing plays out before the next decision
	if state.CurrentState.IsAttack() {
		return
	}

	// Hold position while there is nobody to fight
	if playerEntry == nil || !components.Actor.Get(playerEntry).IsAlive {
		SetState(enemyEntry, cfg.Walk)
		return
	}

	self := Hitbox(enemyEntry)
	target := Hitbox(playerEntry)
	dx := target.CenterX() - self.CenterX()
	dy := math.Abs(target.Bottom() - self.Bottom())
	distance := math.Abs(dx)
	faceToward(enemyEntry, dx)

	inRange := distance <= typeCfg.AttackRange && dy <= typeCfg.MaxVerticalReach
	if inRange && now >= enemy.NextAttackAt {
		if SetState(enemyEntry, cfg.Attack1) {
			enemy.NextAttackAt = now + typeCfg.AttackCooldown
			enemy.AttackConnected = false
		}
		return
	}

	SetState(enemyEntry, cfg.Walk)
	if distance > typeCfg.StoppingDistance {
		physics.SpeedX = math.Copysign(physics.Speed, dx)
		moveX(enemyEntry, physics.SpeedX)
	}
}

// resolveEnemyAttack lands the swing on the player if the player is still
// inside the enemy's reach. A player standing inside the enemy's own body
// counts as in reach whichever way it faces.
func resolveEnemyAttack(e *ecs.ECS, enemyEntry *donburi.Entry, playerEntry *donburi.Entry) {
	if playerEntry == nil || !components.Actor.Get(playerEntry).IsAlive {
		return
	}
	target := Hitbox(playerEntry)
	if !CheckCollision(AttackBox(enemyEntry), target) && !CheckCollision(Hitbox(enemyEntry), target) {
		return
	}

	enemy := components.Enemy.Get(enemyEntry)
	dir := components.Actor.Get(enemyEntry).Direction
	if TakeDamage(e, playerEntry, enemy.TypeConfig.Damage, dir) {
		logrus.WithFields(logrus.Fields{
			"enemy":  enemy.TypeName,
			"damage": enemy.TypeConfig.Damage,
			"hp":     components.Health.Get(playerEntry).Current,
		}).Debug("player hit")
	}
}

// PruneEnemies removes enemies whose death animation has finished.
func PruneEnemies(e *ecs.ECS) {
	var finished []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Actor.Get(entry).DeathAnimationFinished {
			finished = append(finished, entry)
		}
	})
	for _, entry := range finished {
		removeActor(e, entry)
	}
}

// removeActor deletes an actor and its collision object.
func removeActor(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if spaceEntry, ok := components.Space.First(e.World); ok && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}

// CountEnemies returns the number of enemies still in play.
func CountEnemies(e *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !components.Actor.Get(entry).DeathAnimationFinished {
			n++
		}
	})
	return n
}
