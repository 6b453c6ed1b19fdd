package main

import (
	"flag"
	"image"

	"github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/fonts"
	"github.com/RilyGit/DimaGame/scenes"
	"github.com/RilyGit/DimaGame/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

const appName = "knight-vs-skeletons"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skip-menu", false, "start the game without the main menu")
	debug := flag.Bool("debug", false, "start with the debug overlay visible")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.WithError(err).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowDebug = *debug

	if err := config.ApplyTuning(config.DefaultTuning()); err != nil {
		logrus.WithError(err).Fatal("embedded tuning is invalid")
	}
	if *tuningPath != "" {
		if err := config.ApplyTuningFile(*tuningPath); err != nil {
			logrus.WithError(err).Fatal("could not apply tuning")
		}
		if *watch {
			w, err := config.WatchTuning(*tuningPath)
			if err != nil {
				logrus.WithError(err).Warn("could not watch tuning file")
			} else {
				defer w.Close()
				scenes.SetTuningWatcher(w)
			}
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		logrus.WithError(err).Fatal("could not load fonts")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(appName); err != nil {
		logrus.WithError(err).Warn("could not initialize persistence")
	}
	if saved, err := systems.LoadSettings(); err != nil {
		logrus.WithError(err).Warn("could not load settings")
	} else if saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		logrus.WithError(err).Fatal("game exited with error")
	}
}
