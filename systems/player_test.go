package systems

import (
	"math"
	"testing"
	"time"

	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
)

func TestPlayerRunsAndFaces(t *testing.T) {
	e := newTestWorld(t)
	player := spawnPlayer(e, 100)

	stepPlayer(e, cfg.ActionMoveLeft)
	if xOf(player) != 100-cfg.Player.Speed {
		t.Errorf("x = %v, want %v", xOf(player), 100-cfg.Player.Speed)
	}
	if components.Actor.Get(player).Direction != cfg.DirectionLeft {
		t.Error("player should face left")
	}
	if stateOf(player) != cfg.Run {
		t.Errorf("state = %s, want run", stateOf(player))
	}

	stepPlayer(e)
	if stateOf(player) != cfg.Idle {
		t.Errorf("state = %s, want idle once released", stateOf(player))
	}
}

func TestPlayerOpposingDirectionsCancel(t *testing.T) {
	e := newTestWorld(t)
	player := spawnPlayer(e, 100)

	stepPlayer(e, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	if xOf(player) != 100 {
		t.Errorf("x = %v, want 100", xOf(player))
	}
}

func TestPlayerJumpRequiresGround(t *testing.T) {
	e := newTestWorld(t)
	player := spawnPlayer(e, 100)
	physics := components.Physics.Get(player)

	stepPlayer(e, cfg.ActionJump)
	if stateOf(player) != cfg.Jump || !components.Player.Get(player).IsJumping {
		t.Fatalf("expected a jump, state %s", stateOf(player))
	}
	if physics.OnGround {
		t.Fatal("player should be airborne")
	}
	vy := physics.SpeedY

	// Holding jump in the air must not jump again
	stepPlayer(e, cfg.ActionJump)
	if want := vy + physics.Gravity; math.Abs(physics.SpeedY-want) > 1e-9 {
		t.Errorf("vy = %v, want %v", physics.SpeedY, want)
	}

	// No swinging in the air either
	stepPlayer(e, cfg.ActionAttack)
	if stateOf(player) != cfg.Jump {
		t.Errorf("state = %s, want jump", stateOf(player))
	}

	jumps := 0
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == cfg.SoundJump {
			jumps++
		}
	}
	if jumps != 1 {
		t.Errorf("jump sound queued %d times, want 1", jumps)
	}
}

func TestPlayerAttackLocksMovementAndAlternates(t *testing.T) {
	e := newTestWorld(t)
	player := spawnPlayer(e, 100)

	stepPlayer(e, cfg.ActionAttack)
	if stateOf(player) != cfg.Attack1 {
		t.Fatalf("state = %s, want attack1", stateOf(player))
	}

	stepPlayer(e, cfg.ActionMoveLeft)
	if xOf(player) != 100 {
		t.Errorf("x = %v, movement should be locked during a swing", xOf(player))
	}
	if components.Actor.Get(player).Direction != cfg.DirectionRight {
		t.Error("facing should be locked during a swing")
	}

	// The swing ends well before the cooldown does
	for i := 0; i < 17; i++ {
		stepPlayer(e)
	}
	if stateOf(player) != cfg.Idle {
		t.Fatalf("state = %s, want idle after the swing", stateOf(player))
	}

	stepPlayer(e, cfg.ActionAttack)
	if stateOf(player) != cfg.Idle {
		t.Fatalf("state = %s, attack should still be cooling down", stateOf(player))
	}

	stepPlayer(e, cfg.ActionAttack)
	if stateOf(player) != cfg.Attack2 {
		t.Errorf("state = %s, want attack2 on the second swing", stateOf(player))
	}
}

func TestPlayerHeldAttackDamagesOncePerCooldown(t *testing.T) {
	e := newTestWorld(t)
	spawnPlayer(e, 100)
	enemy := spawnSkeleton(e, 150)
	components.Enemy.Get(enemy).NextAttackAt = time.Hour
	skeleton := cfg.Enemy.Types["skeleton"]

	// Hold attack for the whole cooldown. The enemy's recoil ends long before
	// the cooldown does, so only the cooldown stops a second hit.
	ticks := int(cfg.Player.AttackCooldown / tick)
	for i := 0; i < ticks; i++ {
		press(e, cfg.ActionAttack)
		AdvanceClock(e, tick)
		UpdatePlayer(e)
		UpdateEnemies(e)
		if want := skeleton.Health - cfg.Player.AttackDamage; hp(enemy) != want {
			t.Fatalf("tick %d: enemy health = %d, want %d", i+1, hp(enemy), want)
		}
	}
	if components.Actor.Get(enemy).IsTakingHit {
		t.Fatal("enemy should have recovered from the first hit")
	}

	press(e, cfg.ActionAttack)
	AdvanceClock(e, tick)
	UpdatePlayer(e)
	if want := skeleton.Health - 2*cfg.Player.AttackDamage; hp(enemy) != want {
		t.Errorf("enemy health = %d, want %d once the cooldown expired", hp(enemy), want)
	}
}

func TestPlayerAttackHitsEveryEnemyInReach(t *testing.T) {
	e := newTestWorld(t)
	spawnPlayer(e, 100)
	near := spawnSkeleton(e, 170)
	overlapping := spawnSkeleton(e, 200)
	far := spawnSkeleton(e, 400)

	stepPlayer(e, cfg.ActionAttack)

	want := cfg.Enemy.Types["skeleton"].Health - cfg.Player.AttackDamage
	if hp(near) != want || hp(overlapping) != want {
		t.Errorf("health = %d, %d, want both %d", hp(near), hp(overlapping), want)
	}
	if hp(far) != cfg.Enemy.Types["skeleton"].Health {
		t.Errorf("enemy out of reach was hit, health %d", hp(far))
	}

	// One swing lands once
	stepPlayer(e)
	if hp(near) != want {
		t.Errorf("health = %d, the swing landed twice", hp(near))
	}
}

func TestPlayerAttackMissesBehind(t *testing.T) {
	e := newTestWorld(t)
	spawnPlayer(e, 300)
	behind := spawnSkeleton(e, 230)

	stepPlayer(e, cfg.ActionAttack)
	if hp(behind) != cfg.Enemy.Types["skeleton"].Health {
		t.Error("the knight hit an enemy behind it")
	}
}

func TestPlayerIgnoresInputWhileRecoiling(t *testing.T) {
	e := newTestWorld(t)
	player := spawnPlayer(e, 100)
	TakeDamage(e, player, 10, cfg.DirectionLeft)

	stepPlayer(e, cfg.ActionMoveRight)
	if xOf(player) >= 100 {
		t.Errorf("x = %v, the knight should only be pushed back", xOf(player))
	}
	if stateOf(player) != cfg.Hit {
		t.Errorf("state = %s, want hit", stateOf(player))
	}
}

func TestDeadPlayerIgnoresInput(t *testing.T) {
	e := newTestWorld(t)
	player := spawnPlayer(e, 100)
	Die(player)

	stepPlayer(e, cfg.ActionMoveRight, cfg.ActionJump)
	if xOf(player) != 100 || components.Player.Get(player).IsJumping {
		t.Error("a dead knight must not move")
	}
}
