package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundSwing // the knight's attack, "hit" in the asset table
	SoundSkeletonHit
	SoundBlip
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate     int
	DefaultVolume  int // 0-100
	DefaultSoundOn bool
	VolumeStep     int
}

// SoundConfig maps sound IDs to asset names
type SoundConfig struct {
	Names             map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:     44100,
		DefaultVolume:  50,
		DefaultSoundOn: true,
		VolumeStep:     10,
	}

	Sound = SoundConfig{
		Names: map[SoundID]string{
			SoundJump:        "sound_jump",
			SoundSwing:       "sound_hit",
			SoundSkeletonHit: "sound_skeleton_hit",
			SoundBlip:        "sound_blip",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundBlip: 0.8,
		},
	}
}
