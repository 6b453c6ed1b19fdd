package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX     float64
	SpeedY     float64
	Speed      float64 // horizontal speed while moving voluntarily
	JumpSpeed  float64
	Gravity    float64
	KnockbackX float64 // decaying horizontal velocity from the last hit
	OnGround   bool
	MaxX       float64 // right-most x the box may reach, 0 when unbounded

	// VisualOffsetY shifts the sprite below the collision box so the drawn
	// feet, not the box, rest on the ground.
	VisualOffsetY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
