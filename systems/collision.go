package systems

import (
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/yohamta/donburi"
)

// Rect is an axis-aligned box in world coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) Bottom() float64  { return r.Y + r.H }

// CheckCollision reports whether a and b overlap. Touching edges do not count.
func CheckCollision(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Hitbox returns the collision box of an actor. The resolv object already
// sits at the collision box; the sprite is drawn VisualOffsetY below it.
func Hitbox(entry *donburi.Entry) Rect {
	o := components.Object.Get(entry)
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Position returns the actor's logical position: the hitbox corner shifted
// down by the visual offset.
func Position(entry *donburi.Entry) (float64, float64) {
	o := components.Object.Get(entry)
	physics := components.Physics.Get(entry)
	return o.X, o.Y + physics.VisualOffsetY
}

// AttackBox returns the melee reach of an actor: a strip AttackReach wide
// starting at the leading edge of its hitbox and covering the middle half of
// its height.
func AttackBox(entry *donburi.Entry) Rect {
	hb := Hitbox(entry)
	actor := components.Actor.Get(entry)
	reach := cfg.Combat.AttackReach

	x := hb.X + hb.W
	if actor.Direction < 0 {
		x = hb.X - reach
	}
	return Rect{X: x, Y: hb.Y + hb.H/4, W: reach, H: hb.H / 2}
}

// moveX shifts an actor horizontally, keeping it inside the level.
func moveX(entry *donburi.Entry, dx float64) {
	if dx == 0 {
		return
	}
	o := components.Object.Get(entry)
	physics := components.Physics.Get(entry)

	o.X += dx
	if o.X < 0 {
		o.X = 0
	}
	if physics.MaxX > 0 && o.X > physics.MaxX {
		o.X = physics.MaxX
	}
	o.Update()
}
