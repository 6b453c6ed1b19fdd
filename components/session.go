package components

import (
	"time"

	"github.com/RilyGit/DimaGame/assets"
	"github.com/RilyGit/DimaGame/config"
	"github.com/yohamta/donburi"
)

// LoadResult is delivered once the background asset load settles.
type LoadResult struct {
	Assets *assets.Manager
	Levels []assets.LevelDef
	Err    error
}

// SessionData is the game session: progression through the level table and
// the session state machine.
type SessionData struct {
	State      config.GameStateID
	StateSince time.Duration // clock time State was entered
	LevelIndex int
	Levels     []assets.LevelDef

	// AdvanceAt is when a completed level moves on to the next one.
	AdvanceAt time.Duration

	Assets *assets.Manager // nil until loaded
	Sheets assets.SheetSet
	Poll   func() (LoadResult, bool) // reports the background load once it settles
	Err    error
}

// CurrentLevel returns the active level definition, if any.
func (s *SessionData) CurrentLevel() (assets.LevelDef, bool) {
	if s.LevelIndex < 0 || s.LevelIndex >= len(s.Levels) {
		return assets.LevelDef{}, false
	}
	return s.Levels[s.LevelIndex], true
}

var Session = donburi.NewComponentType[SessionData]()
