package systems

import (
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawOverlay renders the full-screen message for every session state other
// than playing.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	clock := GetOrCreateClock(e)
	width := float64(screen.Bounds().Dx())

	var title, message, hint string
	var titleColor color.RGBA

	switch session.State {
	case cfg.GameStatePlaying:
		return
	case cfg.GameStateLoading:
		dots := int(clock.Now.Seconds()*3) % 4
		title = strings.TrimRight(cfg.Overlay.LoadingText, ".") + strings.Repeat(".", dots)
		titleColor = cfg.Overlay.TextColor
		if settled, total, ok := LoadProgress(); ok && total > 0 {
			message = fmt.Sprintf("%d / %d assets", settled, total)
		}
	case cfg.GameStateLevelComplete:
		title = cfg.Overlay.LevelCompleteTitle
		titleColor = cfg.Overlay.LevelCompleteColor
		if level, ok := session.CurrentLevel(); ok {
			message = fmt.Sprintf("%s cleared", level.Name)
		}
	case cfg.GameStateGameOver:
		title = cfg.Overlay.GameOverTitle
		titleColor = cfg.Overlay.GameOverColor
		hint = cfg.Overlay.RestartHint
	case cfg.GameStateGameWon:
		title = cfg.Overlay.GameWonTitle
		titleColor = cfg.Overlay.GameWonColor
		message = fmt.Sprintf("All %d levels cleared", len(session.Levels))
		hint = cfg.Overlay.RestartHint
	case cfg.GameStateError:
		title = cfg.Overlay.ErrorTitle
		titleColor = cfg.Overlay.ErrorColor
		if session.Err != nil {
			message = session.Err.Error()
		}
		hint = "Press ESC for menu"
	}

	// Fade the overlay in after the state change
	alpha := float32(1)
	if d := cfg.Overlay.FadeDuration; d > 0 && session.State != cfg.GameStateLoading {
		if t := float32((clock.Now - session.StateSince).Seconds()); t < d {
			alpha = ease.OutQuad(t, 0, 1, d)
		}
	}

	bg := cfg.Overlay.OverlayColor
	bg.A = uint8(float32(bg.A) * alpha)
	vector.FillRect(screen, 0, 0, float32(width), float32(screen.Bounds().Dy()), bg, false)

	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.Overlay.TitleY), fade(titleColor, alpha))

	if message != "" {
		msgFont := fonts.Regular.Get()
		text.Draw(screen, message, msgFont, centerTextX(message, msgFont, width), int(cfg.Overlay.MessageY), fade(cfg.Overlay.TextColor, alpha))
	}
	if hint != "" {
		hintFont := fonts.Small.Get()
		text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(cfg.Overlay.HintY), fade(cfg.Overlay.HintColor, alpha))
	}
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
