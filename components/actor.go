package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ActorData is the lifecycle shared by the knight and every enemy.
type ActorData struct {
	IsAlive                bool
	IsDying                bool
	DeathAnimationFinished bool
	Direction              float64 // 1 faces right, -1 faces left

	// Hit-stun
	IsTakingHit bool
	HitTimer    time.Duration // time spent recoiling so far
	HitDuration time.Duration
}

var Actor = donburi.NewComponentType[ActorData]()
