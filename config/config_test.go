package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// keepTuning restores the tunable globals after a test changes them.
func keepTuning(t *testing.T) {
	t.Helper()
	player, combat, session := Player, Combat, Session
	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for k, v := range Enemy.Types {
		types[k] = v
	}
	t.Cleanup(func() {
		Player, Combat, Session = player, combat, session
		Enemy.Types = types
	})
}

func TestEmbeddedTuningApplies(t *testing.T) {
	keepTuning(t)
	if err := ApplyTuning(DefaultTuning()); err != nil {
		t.Fatalf("embedded tuning: %v", err)
	}
	if Player.Speed != 5 || Player.AttackCooldown != time.Second {
		t.Errorf("player = %+v", Player)
	}
	if Enemy.Types["skeleton"].AttackHitFrame != -1 {
		t.Error("keys missing from the document must keep their defaults")
	}
}

func TestApplyTuningOverlaysValues(t *testing.T) {
	keepTuning(t)
	doc := []byte(`
player:
  speed: 7
enemies:
  skeleton:
    damage: 15
  wraith:
    speed: 3
session:
  level_complete_delay: 3s
`)
	if err := ApplyTuning(doc); err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
	if Player.Speed != 7 || Player.Health != 100 {
		t.Errorf("player speed=%v health=%v", Player.Speed, Player.Health)
	}
	if Enemy.Types["skeleton"].Damage != 15 || Enemy.Types["skeleton"].Health != 50 {
		t.Errorf("skeleton = %+v", Enemy.Types["skeleton"])
	}
	wraith, ok := EnemyType("wraith")
	if !ok || wraith.Speed != 3 || wraith.Name != "wraith" || wraith.Health != 50 {
		t.Errorf("new enemy types start from the default type, got %+v", wraith)
	}
	if Session.LevelCompleteDelay != 3*time.Second {
		t.Errorf("delay = %v", Session.LevelCompleteDelay)
	}
}

func TestApplyTuningRejectsInvalidDocuments(t *testing.T) {
	keepTuning(t)
	tests := map[string]string{
		"syntax":        "player: [",
		"player health": "player:\n  speed: 99\n  health: 0\n",
		"damping":       "player:\n  speed: 99\ncombat:\n  knockback_damping: 1.5\n",
		"enemy health":  "player:\n  speed: 99\nenemies:\n  skeleton:\n    health: -1\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			before := Player.Speed
			err := ApplyTuning([]byte(doc))
			if !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("err = %v, want ErrInvalidTuning", err)
			}
			if Player.Speed != before {
				t.Error("a rejected document must change nothing")
			}
		})
	}
}

func TestApplyTuningFile(t *testing.T) {
	keepTuning(t)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  jump_speed: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ApplyTuningFile(path); err != nil {
		t.Fatalf("ApplyTuningFile: %v", err)
	}
	if Player.JumpSpeed != 20 {
		t.Errorf("jump speed = %v, want 20", Player.JumpSpeed)
	}
	if err := ApplyTuningFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWatchTuningReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchTuning(path)
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("player:\n  speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case got := <-w.Events:
		if filepath.Base(got) != "tuning.yaml" {
			t.Errorf("event for %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the edited file")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from, to StateID
		want     bool
	}{
		{StateNone, Death, true},
		{Idle, Attack1, true},
		{Jump, Attack1, false},
		{Attack1, Run, false},
		{Hit, Idle, true},
		{Death, Idle, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %t, want %t", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestGameStateTransitions(t *testing.T) {
	if !CanTransitionGame(GameStateLoading, GameStatePlaying) {
		t.Error("loading -> playing")
	}
	if !CanTransitionGame(GameStateGameOver, GameStateLoading) {
		t.Error("gameOver -> loading")
	}
	if CanTransitionGame(GameStatePlaying, GameStateLoading) {
		t.Error("playing -> loading should be refused")
	}
	for _, to := range []GameStateID{GameStateLoading, GameStatePlaying, GameStateGameWon} {
		if CanTransitionGame(GameStateError, to) {
			t.Errorf("error -> %s should be refused", to)
		}
	}
}

func TestEnemyTypeFallsBackToDefault(t *testing.T) {
	got, ok := EnemyType("nope")
	if ok || got.Name != Enemy.DefaultType {
		t.Errorf("EnemyType = %+v, %t", got, ok)
	}
}
