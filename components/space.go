package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[resolv.Space]()

// WorldData holds the playable extent of the current level.
type WorldData struct {
	Width  float64
	Height float64
}

var World = donburi.NewComponentType[WorldData]()
