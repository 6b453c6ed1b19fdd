package config

import "image/color"

// SettingsScreenConfig contains settings screen configuration
type SettingsScreenConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ValueColor      color.RGBA
	ButtonWidth     int
	ButtonHeight    int
	TitleSize       float64
	TextSize        float64
}

// SettingsScreen is the global settings screen configuration
var SettingsScreen SettingsScreenConfig

func init() {
	SettingsScreen = SettingsScreenConfig{
		BackgroundColor: color.RGBA{R: 20, G: 16, B: 28, A: 255},
		PanelColor:      color.RGBA{R: 40, G: 34, B: 54, A: 255},
		TitleColor:      Orange,
		TextColor:       White,
		ValueColor:      color.RGBA{R: 255, G: 255, B: 100, A: 255},
		ButtonWidth:     120,
		ButtonHeight:    32,
		TitleSize:       28,
		TextSize:        18,
	}
}
