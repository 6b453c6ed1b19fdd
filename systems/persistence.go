package systems

import (
	"encoding/json"
	"sync"

	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Volume  int  `json:"volume"`
	SoundOn bool `json:"soundOn"`
}

var (
	gdataManager *gdata.Manager

	settingsMu      sync.RWMutex
	currentSettings = components.SettingsData{
		Volume:  cfg.Audio.DefaultVolume,
		SoundOn: cfg.Audio.DefaultSoundOn,
	}
)

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing has
// been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(settingsKey, data)
}

// ApplySavedSettings makes saved settings the current ones, clamping the
// volume into range.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	settingsMu.Lock()
	currentSettings = components.SettingsData{
		Volume:  clampVolume(saved.Volume),
		SoundOn: saved.SoundOn,
	}
	settingsMu.Unlock()
}

// CurrentSettings returns the sound preferences in effect.
func CurrentSettings() components.SettingsData {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return currentSettings
}

// UpdateSettings replaces the current preferences and persists them.
func UpdateSettings(s components.SettingsData) {
	s.Volume = clampVolume(s.Volume)

	settingsMu.Lock()
	currentSettings = s
	settingsMu.Unlock()

	if err := SaveSettings(&SavedSettings{Volume: s.Volume, SoundOn: s.SoundOn}); err != nil {
		logrus.WithError(err).Warn("could not save settings")
	}
}

// AdjustVolume changes the volume by delta steps of VolumeStep.
func AdjustVolume(delta int) components.SettingsData {
	s := CurrentSettings()
	s.Volume += delta * cfg.Audio.VolumeStep
	UpdateSettings(s)
	return CurrentSettings()
}

// ToggleSound flips the sound on/off preference.
func ToggleSound() components.SettingsData {
	s := CurrentSettings()
	s.SoundOn = !s.SoundOn
	UpdateSettings(s)
	return CurrentSettings()
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
