package systems

import (
	"testing"
	"time"

	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestFollowCentresTarget(t *testing.T) {
	tests := []struct {
		name   string
		target Rect
		width  float64
		want   float64
	}{
		{"mid level", Rect{X: 1000, W: 64, H: 80}, 960, 1000 - 480 + 32},
		{"level start", Rect{X: 100, W: 64, H: 80}, 960, -348},
		{"narrow viewport", Rect{X: 0, W: 10}, 100, -45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Follow(tt.target, tt.width); got != tt.want {
				t.Errorf("Follow = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateCameraTracksPlayer(t *testing.T) {
	e := newTestWorld(t)
	player := spawnPlayer(e, 1000)

	UpdateCamera(e)
	camera := GetOrCreateCamera(e)
	if want := Follow(Hitbox(player), float64(cfg.C.Width)); camera.Position.X != want {
		t.Errorf("camera x = %v, want %v", camera.Position.X, want)
	}
	if camera.Position.Y != 0 {
		t.Errorf("camera y = %v, want 0", camera.Position.Y)
	}
}

func TestAdvanceClockClampsElapsed(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	AdvanceClock(e, 16*time.Millisecond)
	AdvanceClock(e, time.Second)
	AdvanceClock(e, -time.Second)

	clock := GetOrCreateClock(e)
	if want := 16*time.Millisecond + cfg.Session.MaxFrameDelta; clock.Now != want {
		t.Errorf("now = %v, want %v", clock.Now, want)
	}
	if clock.Delta != 0 {
		t.Errorf("delta = %v, want 0 for a negative step", clock.Delta)
	}
}

func TestUpdateClockMeasuresWallTime(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(20 * time.Millisecond), base.Add(time.Minute)}
	i := 0
	system := NewUpdateClock(func() time.Time {
		now := times[i]
		i++
		return now
	})

	system(e)
	if GetOrCreateClock(e).Now != 0 {
		t.Fatal("the first tick has nothing to measure")
	}
	system(e)
	if d := GetOrCreateClock(e).Delta; d != 20*time.Millisecond {
		t.Errorf("delta = %v, want 20ms", d)
	}
	system(e)
	if d := GetOrCreateClock(e).Delta; d != cfg.Session.MaxFrameDelta {
		t.Errorf("delta = %v, want a stall clamped to %v", d, cfg.Session.MaxFrameDelta)
	}
}

func TestCheckCollision(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", base, Rect{X: 9, Y: 9, W: 10, H: 10}, true},
		{"touching edge", base, Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching corner", base, Rect{X: 10, Y: 10, W: 10, H: 10}, false},
		{"same y, x apart", base, Rect{X: 30, Y: 0, W: 10, H: 10}, false},
		{"y overlapping, x apart", Rect{X: 0, Y: 0, W: 10, H: 100}, Rect{X: 11, Y: -50, W: 5, H: 200}, false},
		{"x overlapping, y apart", base, Rect{X: 2, Y: 20, W: 4, H: 4}, false},
		{"nested", base, Rect{X: 2, Y: 2, W: 3, H: 3}, true},
		{"identical", base, base, true},
		{"negative coordinates", Rect{X: -20, Y: -20, W: 15, H: 15}, Rect{X: -10, Y: -10, W: 5, H: 5}, true},
		{"negative, x apart", Rect{X: -20, Y: -20, W: 5, H: 40}, Rect{X: -10, Y: -20, W: 5, H: 40}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := CheckCollision(tt.a, tt.b)
			ba := CheckCollision(tt.b, tt.a)
			if ab != ba {
				t.Fatalf("CheckCollision is not symmetric: %t vs %t", ab, ba)
			}
			if ab != tt.want {
				t.Errorf("CheckCollision = %t, want %t", ab, tt.want)
			}
		})
	}
}

func TestCheckCollisionNeedsHorizontalOverlap(t *testing.T) {
	a := Rect{X: 100, Y: 0, W: 64, H: 80}
	for _, gap := range []float64{0, 0.5, 1, 60} {
		for _, y := range []float64{-100, -40, 0, 40, 100} {
			right := Rect{X: a.X + a.W + gap, Y: y, W: 64, H: 80}
			left := Rect{X: a.X - 64 - gap, Y: y, W: 64, H: 80}
			if CheckCollision(a, right) || CheckCollision(right, a) ||
				CheckCollision(a, left) || CheckCollision(left, a) {
				t.Errorf("boxes %v apart horizontally collided at y %v", gap, y)
			}
		}
	}
}

func TestAttackBoxFollowsFacing(t *testing.T) {
	e := newTestWorld(t)
	player := spawnPlayer(e, 200)
	hb := Hitbox(player)

	right := AttackBox(player)
	if right.X != hb.X+hb.W || right.W != cfg.Combat.AttackReach {
		t.Errorf("right-facing box = %+v", right)
	}
	if right.Y != hb.Y+hb.H/4 || right.H != hb.H/2 {
		t.Errorf("box should cover the middle half, got %+v", right)
	}

	faceToward(player, -1)
	if left := AttackBox(player); left.X != hb.X-cfg.Combat.AttackReach {
		t.Errorf("left-facing box = %+v", left)
	}
}
