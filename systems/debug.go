package systems

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/fonts"
	"github.com/RilyGit/DimaGame/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var attackBoxColor = color.RGBA{255, 255, 0, 255}

// GetOrCreateDebug returns the singleton Debug component, creating if needed
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	if _, ok := components.Debug.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(ent, components.DebugData{Enabled: cfg.Debug.ShowDebug})
	}

	ent, _ := components.Debug.First(e.World)
	return components.Debug.Get(ent)
}

// UpdateDebug toggles the debug overlay.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionToggleDebug).JustPressed {
		debug := GetOrCreateDebug(e)
		debug.Enabled = !debug.Enabled
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Enabled {
		return
	}

	camera := GetOrCreateCamera(ecs)
	width := float64(screen.Bounds().Dx())
	camX := camera.Position.X

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			if obj.X+obj.W < camX || obj.X > camX+width {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}
			strokeRect(screen, Rect{X: obj.X - camX, Y: obj.Y, W: obj.W, H: obj.H}, c)
		}
	}

	// Reach of every swing in progress
	drawReach := func(entry *donburi.Entry) {
		if !components.State.Get(entry).CurrentState.IsAttack() {
			return
		}
		box := AttackBox(entry)
		box.X -= camX
		strokeRect(screen, box, attackBoxColor)
	}
	tags.Player.Each(ecs.World, drawReach)
	tags.Enemy.Each(ecs.World, drawReach)

	drawDebugText(ecs, screen)
}

func drawDebugText(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()
	x := screen.Bounds().Dx() - 230
	y := 20
	line := func(format string, args ...any) {
		text.Draw(screen, fmt.Sprintf(format, args...), face, x, y, cfg.White)
		y += 14
	}

	line("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())
	line("game %s  enemies %d", GameState(e), CountEnemies(e))

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	state := components.State.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	px, py := Position(playerEntry)

	line("state %s (was %s)", state.CurrentState, state.PreviousState)
	line("pos %.1f, %.1f", px, py)
	line("vel %.1f, %.1f  kb %.2f", physics.SpeedX, physics.SpeedY, physics.KnockbackX)
	line("ground %t  frame %d %s", physics.OnGround, anim.Animation.Frame, anim.SheetKey())

	cooldown := components.Player.Get(playerEntry).NextAttackAt - GetOrCreateClock(e).Now
	if cooldown < 0 {
		cooldown = 0
	}
	line("attack cooldown %s", cooldown.Round(time.Millisecond))

	input := getOrCreateInput(e)
	var pressed []string
	for id := cfg.ActionMoveLeft; id < cfg.ActionCount; id++ {
		if input.Current[id] {
			pressed = append(pressed, id.String())
		}
	}
	line("input [%s]", strings.Join(pressed, " "))
}

func strokeRect(screen *ebiten.Image, r Rect, c color.RGBA) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
