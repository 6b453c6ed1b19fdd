package components

// SettingsData holds the persisted sound preferences
type SettingsData struct {
	Volume  int // 0-100
	SoundOn bool
}

// EffectiveVolume converts the settings to a player volume in [0, 1].
func (s *SettingsData) EffectiveVolume() float64 {
	if !s.SoundOn || s.Volume <= 0 {
		return 0
	}
	if s.Volume >= 100 {
		return 1
	}
	return float64(s.Volume) / 100
}
