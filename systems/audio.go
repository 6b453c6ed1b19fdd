package systems

import (
	"sync"

	"github.com/RilyGit/DimaGame/assets"
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAssets       *assets.Manager
	audioMu            sync.RWMutex
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// SetAssets makes a loaded asset manager the source of sound playback.
func SetAssets(m *assets.Manager) {
	initGlobalAudio()
	m.AttachAudio(globalAudioContext)

	audioMu.Lock()
	globalAssets = m
	audioMu.Unlock()
}

func currentAssets() *assets.Manager {
	audioMu.RLock()
	defer audioMu.RUnlock()
	return globalAssets
}

// UpdateAudio plays the sound effects queued during this tick
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	settings := CurrentSettings()
	volume := settings.EffectiveVolume()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID, volume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID, volume float64) {
	m := currentAssets()
	if m == nil || volume <= 0 {
		return
	}

	name, ok := cfg.Sound.Names[soundID]
	if !ok {
		return
	}
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	m.PlaySound(name, volume)
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
