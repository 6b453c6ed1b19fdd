package scenes

import (
	"sync"

	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/systems"
	"github.com/RilyGit/DimaGame/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SettingsScene shows the sound settings using ebitenui
type SettingsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
	shouldGoBack bool
}

// NewSettingsScene creates a new settings scene
func NewSettingsScene(sc SceneChanger) *SettingsScene {
	return &SettingsScene{sceneChanger: sc}
}

func (ss *SettingsScene) Update() {
	ss.once.Do(ss.configure)

	// Update ECS for input and audio
	ss.ecs.Update()
	ss.settingsUI.Update()

	if systems.GetAction(systems.GetOrCreateInput(ss.ecs), cfg.ActionMenuBack).JustPressed {
		ss.shouldGoBack = true
	}
	if ss.shouldGoBack {
		ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger))
	}
}

func (ss *SettingsScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.SettingsScreen.BackgroundColor)

	if ss.ecs == nil {
		return
	}
	ss.settingsUI.UI.Draw(screen)
}

func (ss *SettingsScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.UpdateAudio)

	ss.settingsUI = ui.NewSettingsUI(
		// Preview the new volume
		func() { systems.PlaySFX(ss.ecs, cfg.SoundBlip) },
		func() { ss.shouldGoBack = true },
	)
}
