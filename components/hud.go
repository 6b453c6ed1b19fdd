package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData eases the displayed health toward the real value.
type HUDData struct {
	Shown  float32 // health ratio currently drawn
	Target float32
	Tween  *gween.Tween
}

var HUD = donburi.NewComponentType[HUDData]()
