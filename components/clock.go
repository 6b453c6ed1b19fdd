package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the session time every timed gameplay rule reads. It only
// advances while systems run, so deadlines stored against it never fire
// across a scene change.
type ClockData struct {
	Now   time.Duration
	Delta time.Duration // elapsed time of the current tick
}

var Clock = donburi.NewComponentType[ClockData]()
