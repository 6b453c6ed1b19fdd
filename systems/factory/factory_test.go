package factory

import (
	"testing"
	"time"

	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type sheetSet map[string]bool

func (s sheetSet) Has(name string) bool { return s[name] }

func TestGenerateAnimationsWithEverySheet(t *testing.T) {
	anim := GenerateAnimations("knight", AllSheets, 64, 80, 100*time.Millisecond)

	for state := range cfg.CharacterAnimations["knight"] {
		clip, ok := anim.Clips[state]
		if !ok {
			t.Errorf("missing clip for %s", state)
			continue
		}
		if want := cfg.SpriteAssetName("knight", state); clip.SheetKey != want {
			t.Errorf("%s sheet = %q, want %q", state, clip.SheetKey, want)
		}
	}
	if anim.CurrentSheet != cfg.StateNone {
		t.Errorf("current sheet = %s, want none before the first SetAnimation", anim.CurrentSheet)
	}
	if anim.Animation.Interval != 100*time.Millisecond {
		t.Errorf("interval = %v", anim.Animation.Interval)
	}
}

func TestGenerateAnimationsFallsBack(t *testing.T) {
	anim := GenerateAnimations("knight", sheetSet{"knight_idle": true, "knight_attack1": true}, 64, 80, time.Millisecond)

	tests := []struct {
		state cfg.StateID
		sheet string
	}{
		{cfg.Idle, "knight_idle"},
		{cfg.Run, "knight_idle"},
		{cfg.Attack1, "knight_attack1"},
		{cfg.Attack2, "knight_attack1"},
		{cfg.Hit, "knight_idle"},
	}
	for _, tt := range tests {
		if got := anim.Clips[tt.state].SheetKey; got != tt.sheet {
			t.Errorf("%s sheet = %q, want %q", tt.state, got, tt.sheet)
		}
	}
	if anim.Has(cfg.Death) {
		t.Error("death has no fallback and its sheet is missing")
	}
}

func TestGenerateAnimationsWithoutSheets(t *testing.T) {
	anim := GenerateAnimations("skeleton", sheetSet{}, 64, 94, time.Millisecond)
	if len(anim.Clips) != 0 {
		t.Errorf("clips = %v, want none", anim.Clips)
	}

	// Nothing to switch to keeps the animation where it is
	anim.SetAnimation(cfg.Walk)
	if anim.CurrentSheet != cfg.StateNone || anim.SheetKey() != "" {
		t.Errorf("current sheet = %s", anim.CurrentSheet)
	}
}

func TestCreatePlayerStandsOnGround(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 1000, 540)
	player := CreatePlayer(e, 100, AllSheets)

	obj := components.Object.Get(player)
	if obj.X != 100 || obj.Y+obj.H != cfg.Physics.GroundLevel {
		t.Errorf("player box = %v,%v %vx%v", obj.X, obj.Y, obj.W, obj.H)
	}
	if physics := components.Physics.Get(player); physics.MaxX != 1000-obj.W || !physics.OnGround {
		t.Errorf("physics = %+v", *physics)
	}
	if anim := components.Animation.Get(player); anim.CurrentSheet != cfg.Idle {
		t.Errorf("animation = %s, want idle", anim.CurrentSheet)
	}
	if obj.Data != player {
		t.Error("collision object should point back at its entry")
	}
}

func TestCreateEnemyUsesTypeConfig(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 1000, 540)
	enemy := CreateEnemy(e, "skeleton", 600, AllSheets)
	skeleton := cfg.Enemy.Types["skeleton"]

	if h := components.Health.Get(enemy); h.Current != skeleton.Health || h.Max != skeleton.Health {
		t.Errorf("health = %+v", *h)
	}
	if components.Actor.Get(enemy).Direction != cfg.DirectionLeft {
		t.Error("enemies spawn facing left")
	}
	if components.State.Get(enemy).CurrentState != cfg.Walk {
		t.Error("enemies spawn walking")
	}
	if off := components.Physics.Get(enemy).VisualOffsetY; off != skeleton.VisualOffsetY {
		t.Errorf("visual offset = %v, want %v", off, skeleton.VisualOffsetY)
	}
}

func TestCreateSpaceReplacesPrevious(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 1000, 540)
	CreateSpace(e, 2000, 540)

	count := 0
	components.Space.Each(e.World, func(*donburi.Entry) { count++ })
	if count != 1 {
		t.Fatalf("spaces = %d, want 1", count)
	}
	entry, _ := components.Space.First(e.World)
	if w := components.World.Get(entry).Width; w != 2000 {
		t.Errorf("width = %v, want 2000", w)
	}
}
