package components

import (
	"time"

	"github.com/RilyGit/DimaGame/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "skeleton"
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	// Combat
	NextAttackAt    time.Duration
	AttackConnected bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
