package systems

import (
	"math"
	"time"

	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetState moves an actor to a new action and switches its animation. It
// refuses transitions the action table does not allow and reports whether
// the state changed.
func SetState(entry *donburi.Entry, next cfg.StateID) bool {
	state := components.State.Get(entry)
	if state.CurrentState == next {
		return false
	}
	if !cfg.CanTransition(state.CurrentState, next) {
		logrus.WithFields(logrus.Fields{
			"from": state.CurrentState,
			"to":   next,
		}).Trace("rejected action transition")
		return false
	}

	state.PreviousState = state.CurrentState
	state.CurrentState = next
	components.Animation.Get(entry).SetAnimation(next)
	return true
}

// restState is the action an actor returns to once a hit wears off.
func restState(entry *donburi.Entry) cfg.StateID {
	if entry.HasComponent(components.Enemy) {
		return cfg.Walk
	}
	return cfg.Idle
}

// TakeDamage applies a hit from an attacker facing attackerDirection. Dead,
// dying and recoiling actors ignore it. It reports whether the hit landed.
func TakeDamage(e *ecs.ECS, entry *donburi.Entry, amount int, attackerDirection float64) bool {
	actor := components.Actor.Get(entry)
	if !actor.IsAlive || actor.IsDying || actor.IsTakingHit {
		return false
	}

	health := components.Health.Get(entry)
	health.Current -= amount
	if health.Current < 0 {
		health.Current = 0
	}

	applyKnockbackImpulse(entry, attackerDirection)
	playHurtSound(e, entry)

	if health.Current == 0 {
		Die(entry)
		return true
	}

	actor.IsTakingHit = true
	actor.HitTimer = 0
	SetState(entry, cfg.Hit)
	return true
}

func applyKnockbackImpulse(entry *donburi.Entry, attackerDirection float64) {
	physics := components.Physics.Get(entry)
	dir := 1.0
	if attackerDirection < 0 {
		dir = -1
	}
	physics.KnockbackX = dir * cfg.Combat.KnockbackForce
	if physics.OnGround {
		physics.SpeedY = -cfg.Combat.UpwardImpulse
		physics.OnGround = false
	}
}

func playHurtSound(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Enemy) {
		return
	}
	enemy := components.Enemy.Get(entry)
	if enemy.TypeConfig != nil && enemy.TypeConfig.HurtSound != cfg.SoundNone {
		PlaySFX(e, enemy.TypeConfig.HurtSound)
	}
}

// Die starts the death sequence. Calling it again has no effect. An actor
// without a death animation finishes immediately.
func Die(entry *donburi.Entry) {
	actor := components.Actor.Get(entry)
	if actor.IsDying {
		return
	}
	actor.IsAlive = false
	actor.IsDying = true
	actor.IsTakingHit = false
	actor.HitTimer = 0

	components.Physics.Get(entry).SpeedX = 0

	anim := components.Animation.Get(entry)
	state := components.State.Get(entry)
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Death

	if !anim.Has(cfg.Death) {
		actor.DeathAnimationFinished = true
		return
	}
	anim.SetAnimation(cfg.Death)
}

// UpdateHitState counts down the recoil window and releases the actor once it
// has elapsed.
func UpdateHitState(entry *donburi.Entry, delta time.Duration) {
	actor := components.Actor.Get(entry)
	if !actor.IsTakingHit {
		return
	}
	actor.HitTimer += delta
	if actor.HitTimer < actor.HitDuration {
		return
	}
	actor.IsTakingHit = false
	actor.HitTimer = 0
	if actor.IsAlive {
		SetState(entry, restState(entry))
	}
}

// ApplyGravity integrates vertical motion and lands the actor on the ground
// line.
func ApplyGravity(entry *donburi.Entry) {
	o := components.Object.Get(entry)
	physics := components.Physics.Get(entry)

	o.Y += physics.SpeedY
	physics.SpeedY += physics.Gravity

	groundY := cfg.Physics.GroundLevel - o.H
	if o.Y >= groundY {
		o.Y = groundY
		physics.SpeedY = 0
		physics.OnGround = true
		land(entry)
	} else {
		physics.OnGround = false
	}
	o.Update()
}

func land(entry *donburi.Entry) {
	if entry.HasComponent(components.Player) {
		components.Player.Get(entry).IsJumping = false
	}
	if components.State.Get(entry).CurrentState == cfg.Jump {
		SetState(entry, cfg.Idle)
	}
}

// ApplyKnockback moves the actor by its remaining knockback and decays it.
func ApplyKnockback(entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	if physics.KnockbackX == 0 {
		return
	}
	moveX(entry, physics.KnockbackX)
	physics.KnockbackX *= cfg.Combat.KnockbackDamping
	if math.Abs(physics.KnockbackX) < cfg.Combat.KnockbackThreshold {
		physics.KnockbackX = 0
	}
}

// UpdateAnimation advances the current animation. Finishing the death
// animation marks the actor for removal; finishing an attack returns to idle.
func UpdateAnimation(entry *donburi.Entry, delta time.Duration) {
	anim := components.Animation.Get(entry)
	if !anim.Animation.Advance(delta) {
		return
	}

	state := components.State.Get(entry)
	switch {
	case state.CurrentState == cfg.Death:
		if anim.CurrentSheet == cfg.Death {
			actor := components.Actor.Get(entry)
			actor.IsAlive = false
			actor.DeathAnimationFinished = true
		}
	case state.CurrentState.IsAttack():
		SetState(entry, cfg.Idle)
	}
}

// attackLands reports, once per swing, whether the swing reached the frame it
// connects on. hitFrame below zero selects the animation's midpoint.
func attackLands(entry *donburi.Entry, hitFrame int, connected *bool) bool {
	if *connected || !components.State.Get(entry).CurrentState.IsAttack() {
		return false
	}
	anim := components.Animation.Get(entry)
	if hitFrame < 0 {
		hitFrame = anim.Animation.Midpoint()
	}
	if anim.Animation.Frame < hitFrame {
		return false
	}
	*connected = true
	return true
}

// faceToward points an actor at a horizontal offset. Zero keeps the facing.
func faceToward(entry *donburi.Entry, dx float64) {
	actor := components.Actor.Get(entry)
	if dx > 0 {
		actor.Direction = cfg.DirectionRight
	} else if dx < 0 {
		actor.Direction = cfg.DirectionLeft
	}
}
