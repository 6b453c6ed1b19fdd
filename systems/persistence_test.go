package systems

import (
	"testing"

	cfg "github.com/RilyGit/DimaGame/config"
)

func keepSettings(t *testing.T) {
	t.Helper()
	saved := CurrentSettings()
	t.Cleanup(func() { UpdateSettings(saved) })
}

func TestAdjustVolumeStepsAndClamps(t *testing.T) {
	keepSettings(t)
	ApplySavedSettings(&SavedSettings{Volume: 50, SoundOn: true})

	if got := AdjustVolume(1).Volume; got != 50+cfg.Audio.VolumeStep {
		t.Errorf("volume = %d, want %d", got, 50+cfg.Audio.VolumeStep)
	}
	if got := AdjustVolume(100).Volume; got != 100 {
		t.Errorf("volume = %d, want clamped to 100", got)
	}
	if got := AdjustVolume(-100).Volume; got != 0 {
		t.Errorf("volume = %d, want clamped to 0", got)
	}
}

func TestToggleSoundMutes(t *testing.T) {
	keepSettings(t)
	ApplySavedSettings(&SavedSettings{Volume: 80, SoundOn: true})

	if v := CurrentSettings(); v.EffectiveVolume() != 0.8 {
		t.Errorf("effective volume = %v, want 0.8", v.EffectiveVolume())
	}
	s := ToggleSound()
	if s.SoundOn || s.EffectiveVolume() != 0 {
		t.Errorf("muted settings should be silent, got %+v", s)
	}
	if s.Volume != 80 {
		t.Errorf("volume = %d, muting must keep the volume", s.Volume)
	}
}

func TestApplySavedSettingsClampsVolume(t *testing.T) {
	keepSettings(t)

	ApplySavedSettings(&SavedSettings{Volume: 250, SoundOn: true})
	if v := CurrentSettings().Volume; v != 100 {
		t.Errorf("volume = %d, want 100", v)
	}
	ApplySavedSettings(nil)
	if v := CurrentSettings().Volume; v != 100 {
		t.Error("nil settings should change nothing")
	}
}

func TestLoadSettingsWithoutPersistence(t *testing.T) {
	if gdataManager != nil {
		t.Skip("persistence initialised")
	}
	saved, err := LoadSettings()
	if saved != nil || err != nil {
		t.Errorf("LoadSettings = %v, %v; want nil, nil", saved, err)
	}
}
