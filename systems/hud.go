package systems

import (
	"fmt"

	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/fonts"
	"github.com/RilyGit/DimaGame/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateHUD returns the singleton HUD component, creating if needed
func GetOrCreateHUD(e *ecs.ECS) *components.HUDData {
	if _, ok := components.HUD.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.HUD))
		components.HUD.SetValue(ent, components.HUDData{Shown: 1, Target: 1})
	}

	ent, _ := components.HUD.First(e.World)
	return components.HUD.Get(ent)
}

// UpdateHUD eases the drawn health ratio toward the knight's real health.
func UpdateHUD(e *ecs.ECS) {
	hud := GetOrCreateHUD(e)
	clock := GetOrCreateClock(e)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := float32(components.Health.Get(playerEntry).Ratio())

	if target != hud.Target {
		// A fresh level refills the bar at once
		if target > hud.Target {
			hud.Shown = target
			hud.Tween = nil
		} else {
			hud.Tween = gween.New(hud.Shown, target, cfg.HUD.EaseDuration, ease.OutQuad)
		}
		hud.Target = target
	}

	if hud.Tween != nil {
		shown, done := hud.Tween.Update(float32(clock.Delta.Seconds()))
		hud.Shown = shown
		if done {
			hud.Tween = nil
		}
	}
}

// DrawHUD renders the knight's health bar and the level name in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if session.State == cfg.GameStateLoading || session.State == cfg.GameStateError {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	hud := GetOrCreateHUD(e)
	margin := float32(cfg.HUD.Margin)

	vector.FillRect(screen,
		margin, margin,
		float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight),
		cfg.HUD.BarBgColor, false)

	vector.FillRect(screen,
		margin, margin,
		float32(cfg.HUD.BarWidth)*hud.Shown, float32(cfg.HUD.BarHeight),
		cfg.HUD.BarFgColor, false)

	face := fonts.Small.Get()
	label := fmt.Sprintf("HP %d/%d", hp.Current, hp.Max)
	text.Draw(screen, label, face, int(margin)+6, int(margin)+int(cfg.HUD.BarHeight)-3, cfg.HUD.TextColor)

	y := int(margin) + int(cfg.HUD.BarHeight) + 22
	if level, ok := session.CurrentLevel(); ok {
		name := fmt.Sprintf("Level %d: %s", session.LevelIndex+1, level.Name)
		text.Draw(screen, name, fonts.Regular.Get(), int(margin), y, cfg.HUD.TextColor)
		y += 18
	}
	text.Draw(screen, fmt.Sprintf("Skeletons: %d", CountEnemies(e)), face, int(margin), y, cfg.HUD.TextColor)
}
