package config

// GameStateID is the top-level session state.
type GameStateID int

const (
	GameStateLoading GameStateID = iota
	GameStatePlaying
	GameStateLevelComplete
	GameStateGameOver
	GameStateGameWon
	GameStateError
)

var gameStateNames = map[GameStateID]string{
	GameStateLoading:       "loading",
	GameStatePlaying:       "playing",
	GameStateLevelComplete: "levelComplete",
	GameStateGameOver:      "gameOver",
	GameStateGameWon:       "gameWon",
	GameStateError:         "error",
}

func (s GameStateID) String() string {
	if name, ok := gameStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// GameStateTransitions is the exhaustive session transition table.
// Loading may reach gameWon when the level table is empty. Error is terminal.
var GameStateTransitions = map[GameStateID][]GameStateID{
	GameStateLoading:       {GameStatePlaying, GameStateGameWon, GameStateError},
	GameStatePlaying:       {GameStateLevelComplete, GameStateGameOver},
	GameStateLevelComplete: {GameStatePlaying, GameStateGameWon},
	GameStateGameOver:      {GameStateLoading},
	GameStateGameWon:       {GameStateLoading},
	GameStateError:         {},
}

// CanTransitionGame reports whether the session may move from one state to another.
func CanTransitionGame(from, to GameStateID) bool {
	for _, next := range GameStateTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
