package components

import (
	"github.com/RilyGit/DimaGame/assets/animations"
	"github.com/RilyGit/DimaGame/config"
	"github.com/yohamta/donburi"
)

// Clip is the sheet an action is drawn from.
type Clip struct {
	SheetKey string // asset name of the sprite sheet
	Frames   int
}

type AnimationData struct {
	Animation    animations.Animation
	Clips        map[config.StateID]Clip // actions this entity can animate
	CurrentSheet config.StateID
	FrameWidth   int
	FrameHeight  int
}

// Has reports whether the entity has an animation for state.
func (a *AnimationData) Has(state config.StateID) bool {
	_, ok := a.Clips[state]
	return ok
}

// SetAnimation switches to the clip for state and restarts it. Switching to
// the clip already playing is a no-op. Without a clip for state the current
// animation keeps running.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state {
		return
	}
	clip, ok := a.Clips[state]
	if !ok {
		return
	}

	a.CurrentSheet = state
	a.Animation.Frames = clip.Frames
	a.Animation.FreezeOnComplete = state == config.Death
	a.Animation.Restart()
}

// SheetKey returns the asset name of the sheet currently shown.
func (a *AnimationData) SheetKey() string {
	return a.Clips[a.CurrentSheet].SheetKey
}

var Animation = donburi.NewComponentType[AnimationData]()
