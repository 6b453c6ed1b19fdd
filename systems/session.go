package systems

import (
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/systems/factory"
	"github.com/RilyGit/DimaGame/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the singleton Session component, creating if needed
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	if _, ok := components.Session.First(e.World); !ok {
		factory.CreateSession(e, nil)
	}

	ent, _ := components.Session.First(e.World)
	return components.Session.Get(ent)
}

// GameState returns the current session state.
func GameState(e *ecs.ECS) cfg.GameStateID {
	return GetOrCreateSession(e).State
}

// setGameState moves the session along the transition table. Transitions the
// table does not list are logged and refused.
func setGameState(e *ecs.ECS, next cfg.GameStateID) bool {
	session := GetOrCreateSession(e)
	if !cfg.CanTransitionGame(session.State, next) {
		logrus.WithFields(logrus.Fields{
			"from": session.State,
			"to":   next,
		}).Warn("invalid game state transition")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"from":  session.State,
		"to":    next,
		"level": session.LevelIndex,
	}).Info("game state changed")
	session.State = next
	session.StateSince = GetOrCreateClock(e).Now
	return true
}

// LoadLevel replaces the player and enemies with a fresh copy of level index.
// Running past the last level wins the game.
func LoadLevel(e *ecs.ECS, index int) {
	session := GetOrCreateSession(e)
	if index < 0 || index >= len(session.Levels) {
		setGameState(e, cfg.GameStateGameWon)
		return
	}

	clearActors(e)

	level := session.Levels[index]
	width := level.Width
	if width < float64(cfg.C.Width) {
		width = float64(cfg.C.Width)
	}
	factory.CreateSpace(e, width, float64(cfg.Physics.WorldHeight))
	factory.CreateCamera(e)

	sheets := session.Sheets
	if sheets == nil {
		sheets = factory.AllSheets
	}
	player := factory.CreatePlayer(e, level.PlayerStartX, sheets)
	for _, spawn := range level.Enemies {
		factory.CreateEnemy(e, spawn.Kind, level.PlayerStartX+spawn.OffsetX, sheets)
	}

	session.LevelIndex = index
	session.AdvanceAt = 0
	GetOrCreateCamera(e).Position.X = Follow(Hitbox(player), float64(cfg.C.Width))

	logrus.WithFields(logrus.Fields{
		"level":   level.Name,
		"index":   index,
		"enemies": len(level.Enemies),
	}).Info("level loaded")
	setGameState(e, cfg.GameStatePlaying)
}

// clearActors removes the player and every enemy.
func clearActors(e *ecs.ECS) {
	var actors []*donburi.Entry
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		actors = append(actors, entry)
	})
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		actors = append(actors, entry)
	})
	for _, entry := range actors {
		removeActor(e, entry)
	}
}

// Restart sends the session back to the first level.
func Restart(e *ecs.ECS) {
	if !setGameState(e, cfg.GameStateLoading) {
		return
	}
	LoadLevel(e, 0)
}

// UpdateSession drives the session state machine once per tick.
func UpdateSession(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	clock := GetOrCreateClock(e)

	switch session.State {
	case cfg.GameStateLoading:
		updateLoading(e, session)
	case cfg.GameStatePlaying:
		evaluateOutcome(e, session, clock)
	case cfg.GameStateLevelComplete:
		if clock.Now >= session.AdvanceAt {
			advanceLevel(e)
		}
	case cfg.GameStateGameOver, cfg.GameStateGameWon:
		if GetAction(getOrCreateInput(e), cfg.ActionRestart).JustPressed {
			Restart(e)
		}
	}
}

func updateLoading(e *ecs.ECS, session *components.SessionData) {
	if session.Poll != nil {
		result, ok := session.Poll()
		if !ok {
			return
		}
		session.Poll = nil
		if result.Err != nil {
			session.Err = result.Err
			logrus.WithError(result.Err).Error("game failed to load")
			setGameState(e, cfg.GameStateError)
			return
		}
		session.Assets = result.Assets
		if result.Assets != nil {
			session.Sheets = result.Assets
		}
		session.Levels = result.Levels
	}
	LoadLevel(e, session.LevelIndex)
}

// evaluateOutcome checks the win and loss conditions after the tick's updates.
func evaluateOutcome(e *ecs.ECS, session *components.SessionData, clock *components.ClockData) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || components.Actor.Get(playerEntry).DeathAnimationFinished {
		setGameState(e, cfg.GameStateGameOver)
		return
	}

	if CountEnemies(e) == 0 {
		if setGameState(e, cfg.GameStateLevelComplete) {
			session.AdvanceAt = clock.Now + cfg.Session.LevelCompleteDelay
		}
	}
}

// advanceLevel loads the next level once the level-complete pause is over. A
// restart may have moved the session on in the meantime, so the state is
// checked again first.
func advanceLevel(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if session.State != cfg.GameStateLevelComplete {
		return
	}
	LoadLevel(e, session.LevelIndex+1)
}

// WithPlayingCheck wraps a system to run only while a level is being played
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GameState(e) != cfg.GameStatePlaying {
			return
		}
		system(e)
	}
}
