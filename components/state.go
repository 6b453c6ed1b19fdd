package components

import (
	"github.com/RilyGit/DimaGame/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
}

var State = donburi.NewComponentType[StateData]()
