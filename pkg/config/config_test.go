// pkg/config/config_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"player_max_speed", cfg.Player.MaxSpeed, 8},
		{"player_deceleration", cfg.Player.Deceleration, 0.98},
		{"player_shot_speed", cfg.Player.ShotSpeed, 25},
		{"player_width", cfg.Player.Width, 30},
		{"enemy_max_speed", cfg.Enemy.MaxSpeed, 2},
		{"enemy_deceleration", cfg.Enemy.Deceleration, 0.95},
		{"enemy_vision_range", cfg.Enemy.VisionRange, 800},
		{"enemy_projectile_speed", cfg.Enemy.ProjectileSpeed, 8},
		{"enemy_interval", float64(cfg.Spawn.EnemyInterval), 180},
		{"powerup_interval", float64(cfg.Spawn.PowerupInterval), 600},
		{"kill_bonus", float64(cfg.Scoring.KillBonus), 50},
		{"display_width", float64(cfg.Display.Width), 1600},
		{"display_height", float64(cfg.Display.Height), 900},
		{"minimap_scale", cfg.Display.MinimapScale, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestGameConfig_Stats(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Width = 40
	cfg.Enemy.VisionRange = 500

	ps := cfg.PlayerStats()
	if ps.Size.X != 40 || ps.Size.Y != 15 {
		t.Errorf("player size = %v", ps.Size)
	}
	if ps.TripleShotDuration != 600 {
		t.Errorf("triple shot duration = %d", ps.TripleShotDuration)
	}

	es := cfg.EnemyStats()
	if es.VisionRange != 500 || es.Acceleration != 0.03 {
		t.Errorf("enemy stats = %+v", es)
	}

	if start := cfg.PlayerStart(); start.X != 400 || start.Y != 400 {
		t.Errorf("player start = %v", start)
	}
}

func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero_width", func(c *GameConfig) { c.Display.Width = 0 }},
		{"deceleration_above_one", func(c *GameConfig) { c.Player.Deceleration = 1.5 }},
		{"zero_deceleration", func(c *GameConfig) { c.Enemy.Deceleration = 0 }},
		{"inverted_scale", func(c *GameConfig) { c.Enemy.MinScale = 2 }},
		{"zero_shoot_odds", func(c *GameConfig) { c.Enemy.ShootOdds = 0 }},
		{"inverted_spawn_band", func(c *GameConfig) { c.Spawn.EnemyMinDistance = 5000 }},
		{"negative_flash", func(c *GameConfig) { c.Effects.DamageFlashFrames = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadConfig(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warriors.json")
	data := `{
  "player": {"maxSpeed": 12, "maxHealth": 150},
  "spawn": {"enemyInterval": 90}
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Player.MaxSpeed != 12 {
		t.Errorf("Player.MaxSpeed = %v, want 12", cfg.Player.MaxSpeed)
	}
	if cfg.Player.MaxHealth != 150 {
		t.Errorf("Player.MaxHealth = %v, want 150", cfg.Player.MaxHealth)
	}
	if cfg.Spawn.EnemyInterval != 90 {
		t.Errorf("Spawn.EnemyInterval = %v, want 90", cfg.Spawn.EnemyInterval)
	}
	if cfg.Player.Deceleration != 0.98 {
		t.Errorf("unset keys should keep defaults, got deceleration %v", cfg.Player.Deceleration)
	}
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("WARRIORS_ENEMY_VISIONRANGE", "600")
	t.Setenv("WARRIORS_SCORING_KILLBONUS", "75")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Enemy.VisionRange != 600 {
		t.Errorf("Enemy.VisionRange = %v, want 600", cfg.Enemy.VisionRange)
	}
	if cfg.Scoring.KillBonus != 75 {
		t.Errorf("Scoring.KillBonus = %v, want 75", cfg.Scoring.KillBonus)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
		if err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed_json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid_values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.json")
		if err := os.WriteFile(path, []byte(`{"player": {"deceleration": 2}}`), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("LoadConfig() = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	original := DefaultConfig()
	original.Enemy.ShootOdds = 60
	original.Player.TripleShotSpread = 15

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if *loaded != *original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, original)
	}
}

func TestSaveConfig_BadPath(t *testing.T) {
	err := SaveConfig(DefaultConfig(), filepath.Join(t.TempDir(), "no", "such", "dir.json"))
	if err == nil {
		t.Error("expected write error")
	}
}
