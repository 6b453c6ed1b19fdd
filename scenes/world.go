package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/RilyGit/DimaGame/assets"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/systems"
	"github.com/RilyGit/DimaGame/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tuningWatcher *cfg.TuningWatcher

// SetTuningWatcher makes the world scene reapply tuning edits between ticks.
func SetTuningWatcher(w *cfg.TuningWatcher) {
	tuningWatcher = w
}

// WorldScene runs the knight's fight through the level table
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewWorldScene creates a new world scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	drainTuning(tuningWatcher)
	ws.ecs.Update()

	// ESC leaves a finished session for the menu
	switch systems.GameState(ws.ecs) {
	case cfg.GameStateGameOver, cfg.GameStateGameWon, cfg.GameStateError:
		if systems.GetAction(systems.GetOrCreateInput(ws.ecs), cfg.ActionMenuBack).JustPressed {
			ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		}
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	systems.StartLoading(assets.FS())

	// Load shaders for the hit flash
	if assets.FlashShader == nil {
		if err := assets.LoadShaders(); err != nil {
			logrus.WithError(err).Warn("could not compile shaders, hit flash disabled")
		}
	}

	ecs := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(ecs, systems.PollLoading)

	// Systems that always run
	ecs.AddSystem(systems.NewUpdateClock(time.Now))
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)

	// Gameplay runs only while a level is being played
	ecs.AddSystem(systems.WithPlayingCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithPlayingCheck(systems.PruneEnemies))
	ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateCamera))

	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawGround)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)

	ws.ecs = ecs
}

// drainTuning applies any pending tuning edits. A document that fails to
// apply leaves the running values untouched.
func drainTuning(w *cfg.TuningWatcher) {
	if w == nil {
		return
	}
	for {
		select {
		case path := <-w.Events:
			if err := cfg.ApplyTuningFile(path); err != nil {
				logrus.WithError(err).WithField("path", path).Warn("tuning reload rejected")
				continue
			}
			logrus.WithField("path", path).Info("tuning reloaded")
		case err := <-w.Errors:
			logrus.WithError(err).Warn("tuning watcher error")
		default:
			return
		}
	}
}
