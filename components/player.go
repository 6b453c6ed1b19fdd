package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	IsJumping       bool
	AttackToggle    bool          // alternates the two swing animations
	NextAttackAt    time.Duration // session time the next swing is allowed
	AttackConnected bool          // the current swing already resolved
}

var Player = donburi.NewComponentType[PlayerData]()
