package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all knight-related configuration values
type PlayerConfig struct {
	// Movement
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Gravity   float64 `yaml:"gravity"`

	// Combat
	Health         int           `yaml:"health"`
	AttackDamage   int           `yaml:"attack_damage"`
	AttackCooldown time.Duration `yaml:"attack_cooldown"`
	AttackHitFrame int           `yaml:"attack_hit_frame"` // animation frame on which the swing connects
	HitDuration    time.Duration `yaml:"hit_duration"`

	// Animation
	FrameInterval  time.Duration `yaml:"frame_interval"`
	SpriteSheetKey string        `yaml:"sprite_sheet_key"`

	// Dimensions
	FrameWidth      int     `yaml:"frame_width"`
	FrameHeight     int     `yaml:"frame_height"`
	CollisionWidth  int     `yaml:"collision_width"`
	CollisionHeight int     `yaml:"collision_height"`
	VisualOffsetY   float64 `yaml:"visual_offset_y"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name             string        `yaml:"name"`
	Health           int           `yaml:"health"`
	Speed            float64       `yaml:"speed"`
	AttackRange      float64       `yaml:"attack_range"`
	StoppingDistance float64       `yaml:"stopping_distance"`
	MaxVerticalReach float64       `yaml:"max_vertical_reach"` // Max vertical separation at which an attack may start
	AttackCooldown   time.Duration `yaml:"attack_cooldown"`
	AttackHitFrame   int           `yaml:"attack_hit_frame"` // -1 selects the midpoint of the attack animation
	HitDuration      time.Duration `yaml:"hit_duration"`

	// Combat
	Damage    int     `yaml:"damage"`
	HurtSound SoundID `yaml:"hurt_sound"`

	// Physics
	Gravity float64 `yaml:"gravity"`

	// Animation
	FrameInterval  time.Duration `yaml:"frame_interval"`
	SpriteSheetKey string        `yaml:"sprite_sheet_key"`

	// Dimensions
	FrameWidth      int     `yaml:"frame_width"`
	FrameHeight     int     `yaml:"frame_height"`
	CollisionWidth  int     `yaml:"collision_width"`
	CollisionHeight int     `yaml:"collision_height"`
	VisualOffsetY   float64 `yaml:"visual_offset_y"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig
	DefaultType string
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	AttackReach        float64 `yaml:"attack_reach"` // width of the directional attack strip
	KnockbackForce     float64 `yaml:"knockback_force"`
	KnockbackDamping   float64 `yaml:"knockback_damping"`
	KnockbackThreshold float64 `yaml:"knockback_threshold"`
	UpwardImpulse      float64 `yaml:"upward_impulse"` // vertical velocity applied to grounded targets on hit
}

// PhysicsConfig contains world geometry values
type PhysicsConfig struct {
	GroundLevel    float64 // world y of the ground surface
	GroundTileSize int
	SpaceCellSize  int
	WorldHeight    int
}

// SessionConfig contains game session timing
type SessionConfig struct {
	LevelCompleteDelay time.Duration `yaml:"level_complete_delay"`
	MaxFrameDelta      time.Duration `yaml:"max_frame_delta"` // elapsed time per tick is clamped to this
	LoadTimeout        time.Duration `yaml:"load_timeout"`
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// OverlayConfig contains the full-screen session overlays
type OverlayConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
	FadeDuration float32 // seconds

	LoadingText        string
	LevelCompleteTitle string
	LevelCompleteColor color.RGBA
	GameOverTitle      string
	GameOverColor      color.RGBA
	GameWonTitle       string
	GameWonColor       color.RGBA
	ErrorTitle         string
	ErrorColor         color.RGBA
	RestartHint        string
}

// HUDConfig contains HUD and health bar values
type HUDConfig struct {
	BarWidth      float64
	BarHeight     float64
	Margin        float64
	BarBgColor    color.RGBA
	BarFgColor    color.RGBA
	TextColor     color.RGBA
	EaseDuration  float32 // seconds for the displayed ratio to catch up
	EnemyBarWidth float64
	EnemyBarGap   float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool // Skip menu and go directly to game
	ShowDebug bool // Start with the debug overlay visible
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Session SessionConfig
var Menu MenuConfig
var Overlay OverlayConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Knight vs Skeletons",
	}

	Physics = PhysicsConfig{
		GroundLevel:    480,
		GroundTileSize: 64,
		SpaceCellSize:  32,
		WorldHeight:    540,
	}

	Player = PlayerConfig{
		Speed:     5,
		JumpSpeed: 18,
		Gravity:   0.8,

		Health:         100,
		AttackDamage:   25,
		AttackCooldown: time.Second,
		AttackHitFrame: 0,
		HitDuration:    400 * time.Millisecond,

		FrameInterval:  100 * time.Millisecond,
		SpriteSheetKey: "knight",

		FrameWidth:      64,
		FrameHeight:     80,
		CollisionWidth:  64,
		CollisionHeight: 80,
		VisualOffsetY:   0,
	}

	skeletonType := EnemyTypeConfig{
		Name:             "skeleton",
		Health:           50,
		Speed:            1.5,
		AttackRange:      60,
		StoppingDistance: 30,
		MaxVerticalReach: 50,
		AttackCooldown:   time.Second,
		AttackHitFrame:   -1,
		HitDuration:      400 * time.Millisecond,
		Damage:           10,
		HurtSound:        SoundSkeletonHit,
		Gravity:          0.8,
		FrameInterval:    100 * time.Millisecond,
		SpriteSheetKey:   "skeleton",
		FrameWidth:       64,
		FrameHeight:      94,
		CollisionWidth:   64,
		CollisionHeight:  80,
		VisualOffsetY:    14,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"skeleton": skeletonType,
		},
		DefaultType: "skeleton",
	}

	Combat = CombatConfig{
		AttackReach:        60,
		KnockbackForce:     6,
		KnockbackDamping:   0.8,
		KnockbackThreshold: 0.1,
		UpwardImpulse:      4,
	}

	Session = SessionConfig{
		LevelCompleteDelay: 2 * time.Second,
		MaxFrameDelta:      50 * time.Millisecond,
		LoadTimeout:        30 * time.Second,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 16, B: 28, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "KNIGHT VS SKELETONS",
		TitleY:            140,
		MenuStartY:        220,
		MenuItemHeight:    36,
		MenuItemGap:       14,
		MenuOptions:       []string{"Play", "Settings", "Exit"},
	}

	Overlay = OverlayConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		HintColor:    color.RGBA{R: 200, G: 200, B: 200, A: 255},
		TitleY:       200,
		MessageY:     260,
		HintY:        340,
		FadeDuration: 0.4,

		LoadingText:        "Loading...",
		LevelCompleteTitle: "Level Complete!",
		LevelCompleteColor: BrightGreen,
		GameOverTitle:      "Game Over",
		GameOverColor:      LightRed,
		GameWonTitle:       "You Win!",
		GameWonColor:       Yellow,
		ErrorTitle:         "Failed to load the game",
		ErrorColor:         LightRed,
		RestartHint:        "Press ENTER to restart, ESC for menu",
	}

	HUD = HUDConfig{
		BarWidth:      200,
		BarHeight:     16,
		Margin:        12,
		BarBgColor:    color.RGBA{R: 40, G: 40, B: 40, A: 255},
		BarFgColor:    color.RGBA{R: 40, G: 220, B: 40, A: 255},
		TextColor:     White,
		EaseDuration:  0.25,
		EnemyBarWidth: 48,
		EnemyBarGap:   6,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		ShowDebug: false,
	}
}

// EnemyType returns the configuration for the named enemy kind and whether it
// was found. Unknown kinds resolve to the default type.
func EnemyType(name string) (EnemyTypeConfig, bool) {
	if t, ok := Enemy.Types[name]; ok {
		return t, true
	}
	return Enemy.Types[Enemy.DefaultType], false
}
