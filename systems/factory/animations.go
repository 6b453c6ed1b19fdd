package factory

import (
	"fmt"
	"time"

	"github.com/RilyGit/DimaGame/assets"
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
)

type allSheets struct{}

func (allSheets) Has(string) bool { return true }

// AllSheets reports every sheet as loaded.
var AllSheets assets.SheetSet = allSheets{}

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "knight", "skeleton") which maps to a set of animation definitions in config.
// An action whose sheet did not load borrows the sheet of its fallback action;
// actions left with nothing to show are omitted.
func GenerateAnimations(key string, sheets assets.SheetSet, frameWidth, frameHeight int, interval time.Duration) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Clips:        make(map[cfg.StateID]components.Clip, len(defs)),
		CurrentSheet: cfg.StateNone,
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
	}
	animData.Animation.Interval = interval

	for state := range defs {
		if clip, ok := resolveClip(key, state, defs, sheets); ok {
			animData.Clips[state] = clip
		}
	}
	return animData
}

func resolveClip(key string, state cfg.StateID, defs map[cfg.StateID]cfg.AnimationDef, sheets assets.SheetSet) (components.Clip, bool) {
	// Fallback chains are short; the bound only guards against a cycle.
	for i := 0; i < len(defs) && state != cfg.StateNone; i++ {
		def, ok := defs[state]
		if !ok {
			break
		}
		name := cfg.SpriteAssetName(key, state)
		if sheets.Has(name) {
			return components.Clip{SheetKey: name, Frames: def.Frames}, true
		}
		state = def.Fallback
	}
	return components.Clip{}, false
}
