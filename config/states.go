package config

// StateID identifies a character action. It drives the active animation and,
// for the player, which voluntary inputs are accepted.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Run
	Walk
	Jump
	Attack1
	Attack2
	Hit
	Death

	StateCount
)

// StateToFileName maps StateID to the sprite sheet name inside a character directory.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Run:     "run",
	Walk:    "walk",
	Jump:    "jump",
	Attack1: "attack1",
	Attack2: "attack2",
	Hit:     "hit",
	Death:   "death",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "none"
}

// IsAttack reports whether s is one of the melee attack actions.
func (s StateID) IsAttack() bool {
	return s == Attack1 || s == Attack2
}

// StateTransitions lists, for every action, the actions it may change into.
// Death has no outgoing edges.
var StateTransitions = map[StateID][]StateID{
	Idle:    {Run, Walk, Jump, Attack1, Attack2, Hit, Death},
	Run:     {Idle, Walk, Jump, Attack1, Attack2, Hit, Death},
	Walk:    {Idle, Run, Jump, Attack1, Attack2, Hit, Death},
	Jump:    {Idle, Run, Walk, Hit, Death},
	Attack1: {Idle, Walk, Hit, Death},
	Attack2: {Idle, Walk, Hit, Death},
	Hit:     {Idle, Walk, Death},
	Death:   {},
}

// CanTransition reports whether an entity in action from may switch to action to.
func CanTransition(from, to StateID) bool {
	if from == StateNone {
		return true
	}
	for _, next := range StateTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
