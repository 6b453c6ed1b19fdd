package config

type AnimationDef struct {
	Frames int
	// Fallback is the action whose sheet stands in when this sheet is not
	// loaded. StateNone means the action has no animation at all.
	Fallback StateID
}

// CharacterAnimations maps a character key (e.g., "knight")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"knight": {
		Idle:    {Frames: 4, Fallback: StateNone},
		Run:     {Frames: 4, Fallback: Idle},
		Jump:    {Frames: 4, Fallback: Idle},
		Attack1: {Frames: 4, Fallback: Idle},
		Attack2: {Frames: 4, Fallback: Attack1},
		Hit:     {Frames: 4, Fallback: Idle},
		Death:   {Frames: 4, Fallback: StateNone},
	},
	"skeleton": {
		Walk:    {Frames: 4, Fallback: StateNone},
		Idle:    {Frames: 4, Fallback: Walk},
		Attack1: {Frames: 4, Fallback: Walk},
		Hit:     {Frames: 4, Fallback: Walk},
		Death:   {Frames: 4, Fallback: StateNone},
	},
}

// SpriteAssetName returns the asset name of a character's sheet for an action.
func SpriteAssetName(character string, state StateID) string {
	return character + "_" + state.String()
}
