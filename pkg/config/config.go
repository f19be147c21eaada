// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/opd-ai/go-spacewarriors/pkg/entity"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// EnvPrefix is prepended to every environment override, e.g.
// WARRIORS_PLAYER_MAXSPEED or WARRIORS_SPAWN_ENEMYINTERVAL.
const EnvPrefix = "WARRIORS"

// ErrInvalidConfig is returned by Validate and LoadConfig for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig contains every tunable of a Space Warriors game
type GameConfig struct {
	Display DisplayConfig `json:"display" mapstructure:"display"`
	Player  PlayerConfig  `json:"player" mapstructure:"player"`
	Enemy   EnemyConfig   `json:"enemy" mapstructure:"enemy"`
	Spawn   SpawnConfig   `json:"spawn" mapstructure:"spawn"`
	Scoring ScoringConfig `json:"scoring" mapstructure:"scoring"`
	Effects EffectsConfig `json:"effects" mapstructure:"effects"`
}

// DisplayConfig contains screen, minimap and background settings
type DisplayConfig struct {
	Width        int     `json:"width" mapstructure:"width"`
	Height       int     `json:"height" mapstructure:"height"`
	FPS          int     `json:"fps" mapstructure:"fps"`
	MinimapSize  float64 `json:"minimapSize" mapstructure:"minimapSize"`
	MinimapScale float64 `json:"minimapScale" mapstructure:"minimapScale"`
	StarCount    int     `json:"starCount" mapstructure:"starCount"`
	StarField    float64 `json:"starField" mapstructure:"starField"`
}

// PlayerConfig contains the player ship tunables and input rates
type PlayerConfig struct {
	MaxSpeed            float64 `json:"maxSpeed" mapstructure:"maxSpeed"`
	Deceleration        float64 `json:"deceleration" mapstructure:"deceleration"`
	MaxAngularVelocity  float64 `json:"maxAngularVelocity" mapstructure:"maxAngularVelocity"`
	AngularDeceleration float64 `json:"angularDeceleration" mapstructure:"angularDeceleration"`
	AngularAcceleration float64 `json:"angularAcceleration" mapstructure:"angularAcceleration"`
	ShotSpeed           float64 `json:"shotSpeed" mapstructure:"shotSpeed"`
	MaxHealth           int     `json:"maxHealth" mapstructure:"maxHealth"`
	TripleShotDuration  int     `json:"tripleShotDuration" mapstructure:"tripleShotDuration"`
	TripleShotSpread    float64 `json:"tripleShotSpread" mapstructure:"tripleShotSpread"`
	Width               float64 `json:"width" mapstructure:"width"`
	Height              float64 `json:"height" mapstructure:"height"`
	StartX              float64 `json:"startX" mapstructure:"startX"`
	StartY              float64 `json:"startY" mapstructure:"startY"`
	TurnRate            float64 `json:"turnRate" mapstructure:"turnRate"`
	Thrust              float64 `json:"thrust" mapstructure:"thrust"`
}

// EnemyConfig contains enemy tunables and the size range used by the spawner
type EnemyConfig struct {
	MaxSpeed        float64 `json:"maxSpeed" mapstructure:"maxSpeed"`
	Deceleration    float64 `json:"deceleration" mapstructure:"deceleration"`
	Acceleration    float64 `json:"acceleration" mapstructure:"acceleration"`
	VisionRange     float64 `json:"visionRange" mapstructure:"visionRange"`
	ProjectileSpeed float64 `json:"projectileSpeed" mapstructure:"projectileSpeed"`
	MaxSpread       float64 `json:"maxSpread" mapstructure:"maxSpread"`
	BaseWidth       float64 `json:"baseWidth" mapstructure:"baseWidth"`
	BaseHeight      float64 `json:"baseHeight" mapstructure:"baseHeight"`
	BaseHealth      float64 `json:"baseHealth" mapstructure:"baseHealth"`
	MinScale        float64 `json:"minScale" mapstructure:"minScale"`
	MaxScale        float64 `json:"maxScale" mapstructure:"maxScale"`
	// ShootOdds is N in the per-frame 1-in-N chance that an enemy fires.
	ShootOdds int `json:"shootOdds" mapstructure:"shootOdds"`
}

// SpawnConfig contains spawn timers (frames) and distance bands
type SpawnConfig struct {
	EnemyInterval      int     `json:"enemyInterval" mapstructure:"enemyInterval"`
	EnemyMinDistance   float64 `json:"enemyMinDistance" mapstructure:"enemyMinDistance"`
	EnemyMaxDistance   float64 `json:"enemyMaxDistance" mapstructure:"enemyMaxDistance"`
	PowerupInterval    int     `json:"powerupInterval" mapstructure:"powerupInterval"`
	PowerupMinDistance float64 `json:"powerupMinDistance" mapstructure:"powerupMinDistance"`
	PowerupMaxDistance float64 `json:"powerupMaxDistance" mapstructure:"powerupMaxDistance"`
}

// ScoringConfig contains score rewards
type ScoringConfig struct {
	DamageBonus int `json:"damageBonus" mapstructure:"damageBonus"`
	KillBonus   int `json:"killBonus" mapstructure:"killBonus"`
}

// EffectsConfig contains visual effect timers
type EffectsConfig struct {
	DamageFlashFrames int `json:"damageFlashFrames" mapstructure:"damageFlashFrames"`
}

// DefaultConfig returns the stock game configuration
func DefaultConfig() *GameConfig {
	player := entity.DefaultPlayerStats()
	enemy := entity.DefaultEnemyStats()

	return &GameConfig{
		Display: DisplayConfig{
			Width:        1600,
			Height:       900,
			FPS:          60,
			MinimapSize:  120,
			MinimapScale: 0.02,
			StarCount:    200,
			StarField:    2000,
		},
		Player: PlayerConfig{
			MaxSpeed:            player.MaxSpeed,
			Deceleration:        player.Deceleration,
			MaxAngularVelocity:  player.MaxAngularVelocity,
			AngularDeceleration: player.AngularDeceleration,
			AngularAcceleration: player.AngularAcceleration,
			ShotSpeed:           player.ShotSpeed,
			MaxHealth:           player.MaxHealth,
			TripleShotDuration:  player.TripleShotDuration,
			TripleShotSpread:    player.TripleShotSpread,
			Width:               player.Size.X,
			Height:              player.Size.Y,
			StartX:              400,
			StartY:              400,
			TurnRate:            3,
			Thrust:              0.2,
		},
		Enemy: EnemyConfig{
			MaxSpeed:        enemy.MaxSpeed,
			Deceleration:    enemy.Deceleration,
			Acceleration:    enemy.Acceleration,
			VisionRange:     enemy.VisionRange,
			ProjectileSpeed: enemy.ProjectileSpeed,
			MaxSpread:       enemy.MaxSpread,
			BaseWidth:       20,
			BaseHeight:      12,
			BaseHealth:      30,
			MinScale:        0.7,
			MaxScale:        1.5,
			ShootOdds:       120,
		},
		Spawn: SpawnConfig{
			EnemyInterval:      180,
			EnemyMinDistance:   800,
			EnemyMaxDistance:   1200,
			PowerupInterval:    600,
			PowerupMinDistance: 500,
			PowerupMaxDistance: 1000,
		},
		Scoring: ScoringConfig{
			DamageBonus: 1,
			KillBonus:   50,
		},
		Effects: EffectsConfig{
			DamageFlashFrames: 10,
		},
	}
}

// PlayerStats converts the player section into entity stats
func (c *GameConfig) PlayerStats() entity.PlayerStats {
	p := c.Player
	return entity.PlayerStats{
		MaxSpeed:            p.MaxSpeed,
		Deceleration:        p.Deceleration,
		MaxAngularVelocity:  p.MaxAngularVelocity,
		AngularDeceleration: p.AngularDeceleration,
		AngularAcceleration: p.AngularAcceleration,
		ShotSpeed:           p.ShotSpeed,
		MaxHealth:           p.MaxHealth,
		TripleShotDuration:  p.TripleShotDuration,
		TripleShotSpread:    p.TripleShotSpread,
		Size:                physics.Vector2D{X: p.Width, Y: p.Height},
	}
}

// PlayerStart returns the player's spawn position
func (c *GameConfig) PlayerStart() physics.Vector2D {
	return physics.Vector2D{X: c.Player.StartX, Y: c.Player.StartY}
}

// EnemyStats converts the enemy section into entity stats
func (c *GameConfig) EnemyStats() entity.EnemyStats {
	e := c.Enemy
	return entity.EnemyStats{
		MaxSpeed:        e.MaxSpeed,
		Deceleration:    e.Deceleration,
		Acceleration:    e.Acceleration,
		VisionRange:     e.VisionRange,
		ProjectileSpeed: e.ProjectileSpeed,
		MaxSpread:       e.MaxSpread,
	}
}

// Validate checks value ranges. Errors wrap ErrInvalidConfig.
func (c *GameConfig) Validate() error {
	var problems []string
	check := func(ok bool, field string) {
		if !ok {
			problems = append(problems, field)
		}
	}

	check(c.Display.Width > 0, "display.width")
	check(c.Display.Height > 0, "display.height")
	check(c.Display.FPS > 0, "display.fps")
	check(c.Display.StarCount >= 0, "display.starCount")
	check(c.Display.MinimapScale > 0, "display.minimapScale")

	check(c.Player.MaxSpeed > 0, "player.maxSpeed")
	check(c.Player.Deceleration > 0 && c.Player.Deceleration <= 1, "player.deceleration")
	check(c.Player.AngularDeceleration > 0 && c.Player.AngularDeceleration <= 1, "player.angularDeceleration")
	check(c.Player.MaxAngularVelocity > 0, "player.maxAngularVelocity")
	check(c.Player.MaxHealth > 0, "player.maxHealth")
	check(c.Player.TripleShotDuration > 0, "player.tripleShotDuration")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player.width/height")

	check(c.Enemy.MaxSpeed > 0, "enemy.maxSpeed")
	check(c.Enemy.Deceleration > 0 && c.Enemy.Deceleration <= 1, "enemy.deceleration")
	check(c.Enemy.VisionRange >= 0, "enemy.visionRange")
	check(c.Enemy.MaxSpread >= 0, "enemy.maxSpread")
	check(c.Enemy.BaseWidth > 0 && c.Enemy.BaseHeight > 0, "enemy.baseWidth/baseHeight")
	check(c.Enemy.MinScale > 0 && c.Enemy.MinScale <= c.Enemy.MaxScale, "enemy.minScale/maxScale")
	check(c.Enemy.ShootOdds > 0, "enemy.shootOdds")

	check(c.Spawn.EnemyInterval > 0, "spawn.enemyInterval")
	check(c.Spawn.PowerupInterval > 0, "spawn.powerupInterval")
	check(c.Spawn.EnemyMinDistance <= c.Spawn.EnemyMaxDistance, "spawn.enemyMinDistance")
	check(c.Spawn.PowerupMinDistance <= c.Spawn.PowerupMaxDistance, "spawn.powerupMinDistance")

	check(c.Effects.DamageFlashFrames >= 0, "effects.damageFlashFrames")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, ", "))
	}
	return nil
}

// LoadConfig builds a configuration from defaults, the optional JSON file at
// path and WARRIORS_* environment overrides, then validates it. An empty path
// skips the file.
func LoadConfig(path string) (*GameConfig, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config GameConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func setDefaults(v *viper.Viper, d *GameConfig) {
	v.SetDefault("display.width", d.Display.Width)
	v.SetDefault("display.height", d.Display.Height)
	v.SetDefault("display.fps", d.Display.FPS)
	v.SetDefault("display.minimapSize", d.Display.MinimapSize)
	v.SetDefault("display.minimapScale", d.Display.MinimapScale)
	v.SetDefault("display.starCount", d.Display.StarCount)
	v.SetDefault("display.starField", d.Display.StarField)

	v.SetDefault("player.maxSpeed", d.Player.MaxSpeed)
	v.SetDefault("player.deceleration", d.Player.Deceleration)
	v.SetDefault("player.maxAngularVelocity", d.Player.MaxAngularVelocity)
	v.SetDefault("player.angularDeceleration", d.Player.AngularDeceleration)
	v.SetDefault("player.angularAcceleration", d.Player.AngularAcceleration)
	v.SetDefault("player.shotSpeed", d.Player.ShotSpeed)
	v.SetDefault("player.maxHealth", d.Player.MaxHealth)
	v.SetDefault("player.tripleShotDuration", d.Player.TripleShotDuration)
	v.SetDefault("player.tripleShotSpread", d.Player.TripleShotSpread)
	v.SetDefault("player.width", d.Player.Width)
	v.SetDefault("player.height", d.Player.Height)
	v.SetDefault("player.startX", d.Player.StartX)
	v.SetDefault("player.startY", d.Player.StartY)
	v.SetDefault("player.turnRate", d.Player.TurnRate)
	v.SetDefault("player.thrust", d.Player.Thrust)

	v.SetDefault("enemy.maxSpeed", d.Enemy.MaxSpeed)
	v.SetDefault("enemy.deceleration", d.Enemy.Deceleration)
	v.SetDefault("enemy.acceleration", d.Enemy.Acceleration)
	v.SetDefault("enemy.visionRange", d.Enemy.VisionRange)
	v.SetDefault("enemy.projectileSpeed", d.Enemy.ProjectileSpeed)
	v.SetDefault("enemy.maxSpread", d.Enemy.MaxSpread)
	v.SetDefault("enemy.baseWidth", d.Enemy.BaseWidth)
	v.SetDefault("enemy.baseHeight", d.Enemy.BaseHeight)
	v.SetDefault("enemy.baseHealth", d.Enemy.BaseHealth)
	v.SetDefault("enemy.minScale", d.Enemy.MinScale)
	v.SetDefault("enemy.maxScale", d.Enemy.MaxScale)
	v.SetDefault("enemy.shootOdds", d.Enemy.ShootOdds)

	v.SetDefault("spawn.enemyInterval", d.Spawn.EnemyInterval)
	v.SetDefault("spawn.enemyMinDistance", d.Spawn.EnemyMinDistance)
	v.SetDefault("spawn.enemyMaxDistance", d.Spawn.EnemyMaxDistance)
	v.SetDefault("spawn.powerupInterval", d.Spawn.PowerupInterval)
	v.SetDefault("spawn.powerupMinDistance", d.Spawn.PowerupMinDistance)
	v.SetDefault("spawn.powerupMaxDistance", d.Spawn.PowerupMaxDistance)

	v.SetDefault("scoring.damageBonus", d.Scoring.DamageBonus)
	v.SetDefault("scoring.killBonus", d.Scoring.KillBonus)

	v.SetDefault("effects.damageFlashFrames", d.Effects.DamageFlashFrames)
}
