package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuning []byte

// ErrInvalidTuning is returned when a tuning document cannot be applied.
var ErrInvalidTuning = errors.New("invalid tuning")

// tuningDoc mirrors the tunable parts of the global configuration. Enemy
// entries are kept as raw nodes so they overlay the existing type instead of
// replacing it with zero values.
type tuningDoc struct {
	Player  PlayerConfig         `yaml:"player"`
	Enemies map[string]yaml.Node `yaml:"enemies"`
	Combat  CombatConfig         `yaml:"combat"`
	Session SessionConfig        `yaml:"session"`
}

// DefaultTuning returns the embedded tuning document.
func DefaultTuning() []byte {
	return defaultTuning
}

// ApplyTuning overlays a YAML tuning document onto the global configuration.
// Keys missing from the document keep their current values. Nothing is changed
// when the document fails to parse or validate.
func ApplyTuning(data []byte) error {
	doc := tuningDoc{
		Player:  Player,
		Combat:  Combat,
		Session: Session,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}

	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, t := range Enemy.Types {
		types[name] = t
	}
	for name, node := range doc.Enemies {
		t, ok := types[name]
		if !ok {
			t = types[Enemy.DefaultType]
			t.Name = name
		}
		if err := node.Decode(&t); err != nil {
			return fmt.Errorf("%w: enemy %q: %v", ErrInvalidTuning, name, err)
		}
		types[name] = t
	}

	if err := validateTuning(doc.Player, types, doc.Combat, doc.Session); err != nil {
		return err
	}

	Player = doc.Player
	Enemy.Types = types
	Combat = doc.Combat
	Session = doc.Session
	return nil
}

// ApplyTuningFile reads a tuning document from disk and applies it.
func ApplyTuningFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ApplyTuning(data)
}

func validateTuning(p PlayerConfig, types map[string]EnemyTypeConfig, c CombatConfig, s SessionConfig) error {
	if p.Health <= 0 {
		return fmt.Errorf("%w: player health must be positive", ErrInvalidTuning)
	}
	if p.FrameInterval <= 0 {
		return fmt.Errorf("%w: player frame_interval must be positive", ErrInvalidTuning)
	}
	if p.CollisionWidth <= 0 || p.CollisionHeight <= 0 {
		return fmt.Errorf("%w: player collision size must be positive", ErrInvalidTuning)
	}
	for name, t := range types {
		if t.Health <= 0 {
			return fmt.Errorf("%w: enemy %q health must be positive", ErrInvalidTuning, name)
		}
		if t.FrameInterval <= 0 {
			return fmt.Errorf("%w: enemy %q frame_interval must be positive", ErrInvalidTuning, name)
		}
		if t.CollisionWidth <= 0 || t.CollisionHeight <= 0 {
			return fmt.Errorf("%w: enemy %q collision size must be positive", ErrInvalidTuning, name)
		}
	}
	if c.KnockbackDamping < 0 || c.KnockbackDamping >= 1 {
		return fmt.Errorf("%w: knockback_damping must be in [0, 1)", ErrInvalidTuning)
	}
	if s.MaxFrameDelta <= 0 {
		return fmt.Errorf("%w: max_frame_delta must be positive", ErrInvalidTuning)
	}
	return nil
}
