package systems

import (
	"time"

	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs one tick of the knight: recoil, input, physics,
// animation and swing resolution, in that order.
func UpdatePlayer(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	input := getOrCreateInput(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		UpdateHitState(entry, clock.Delta)

		actor := components.Actor.Get(entry)
		physics := components.Physics.Get(entry)
		if actor.IsAlive && !actor.IsTakingHit {
			resolvePlayerInput(e, entry, input, clock.Now)
		} else {
			physics.SpeedX = 0
		}

		ApplyGravity(entry)
		ApplyKnockback(entry)
		UpdateAnimation(entry, clock.Delta)

		player := components.Player.Get(entry)
		if attackLands(entry, cfg.Player.AttackHitFrame, &player.AttackConnected) {
			resolvePlayerAttack(e, entry)
		}
	})
}

func resolvePlayerInput(e *ecs.ECS, entry *donburi.Entry, input *components.InputData, now time.Duration) {
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)
	actor := components.Actor.Get(entry)

	attacking := state.CurrentState.IsAttack()

	// Horizontal movement is locked for the length of a swing.
	physics.SpeedX = 0
	if !attacking {
		left := GetAction(input, cfg.ActionMoveLeft).Pressed
		right := GetAction(input, cfg.ActionMoveRight).Pressed
		switch {
		case left && !right:
			physics.SpeedX = -physics.Speed
			actor.Direction = cfg.DirectionLeft
		case right && !left:
			physics.SpeedX = physics.Speed
			actor.Direction = cfg.DirectionRight
		}
	}
	moveX(entry, physics.SpeedX)

	if GetAction(input, cfg.ActionJump).Pressed && physics.OnGround && !player.IsJumping && !attacking {
		physics.SpeedY = -physics.JumpSpeed
		physics.OnGround = false
		player.IsJumping = true
		SetState(entry, cfg.Jump)
		PlaySFX(e, cfg.SoundJump)
	}

	if GetAction(input, cfg.ActionAttack).Pressed && canAttack(entry, now) {
		next := cfg.Attack1
		if player.AttackToggle {
			next = cfg.Attack2
		}
		if SetState(entry, next) {
			player.AttackToggle = !player.AttackToggle
			player.NextAttackAt = now + cfg.Player.AttackCooldown
			player.AttackConnected = false
			physics.SpeedX = 0
			PlaySFX(e, cfg.SoundSwing)
		}
		return
	}

	if state.CurrentState.IsAttack() || player.IsJumping {
		return
	}
	if physics.SpeedX != 0 {
		SetState(entry, cfg.Run)
	} else {
		SetState(entry, cfg.Idle)
	}
}

// canAttack reports whether the knight may start a swing: off cooldown,
// grounded and not already swinging.
func canAttack(entry *donburi.Entry, now time.Duration) bool {
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)

	if now < player.NextAttackAt {
		return false
	}
	if player.IsJumping || !physics.OnGround {
		return false
	}
	return !state.CurrentState.IsAttack()
}

// resolvePlayerAttack damages every living enemy inside the knight's reach.
// A single swing may hit several enemies.
func resolvePlayerAttack(e *ecs.ECS, entry *donburi.Entry) {
	box := AttackBox(entry)
	dir := components.Actor.Get(entry).Direction
	for _, target := range enemiesInReach(entry, box) {
		TakeDamage(e, target, cfg.Player.AttackDamage, dir)
	}
}

// enemiesInReach narrows the resolv broadphase down to the enemies whose
// hitbox overlaps box.
func enemiesInReach(entry *donburi.Entry, box Rect) []*donburi.Entry {
	obj := components.Object.Get(entry)
	dx := box.W
	if box.X < obj.X {
		dx = -box.W
	}

	var hits []*donburi.Entry
	check := obj.Check(dx, 0, tags.ResolvEnemy)
	if check == nil {
		return hits
	}
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		target, ok := o.Data.(*donburi.Entry)
		if !ok || !target.Valid() {
			continue
		}
		if !components.Actor.Get(target).IsAlive {
			continue
		}
		if CheckCollision(box, Hitbox(target)) {
			hits = append(hits, target)
		}
	}
	return hits
}
