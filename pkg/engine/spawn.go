// pkg/engine/spawn.go
package engine

import (
	"context"
	"math"

	"github.com/opd-ai/go-spacewarriors/pkg/entity"
	"github.com/opd-ai/go-spacewarriors/pkg/event"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// tickSpawners advances the enemy and powerup timers and spawns when due.
func (g *Game) tickSpawners(ctx context.Context) {
	g.enemyTimer++
	if g.enemyTimer >= g.Config.Spawn.EnemyInterval {
		g.SpawnEnemy(ctx)
		g.enemyTimer = 0
	}

	g.powerupTimer++
	if g.powerupTimer >= g.Config.Spawn.PowerupInterval {
		g.SpawnPowerup(ctx)
		g.powerupTimer = 0
	}
}

// randomAround returns a point at a uniformly random bearing from center,
// between minDist and maxDist away.
func (g *Game) randomAround(center physics.Vector2D, minDist, maxDist float64) physics.Vector2D {
	angle := g.rng.Float64() * 2 * math.Pi
	distance := minDist + g.rng.Float64()*(maxDist-minDist)
	return center.Add(physics.FromAngle(angle, distance))
}

// SpawnEnemy places a randomly scaled enemy in the spawn band around the player.
func (g *Game) SpawnEnemy(ctx context.Context) *entity.Enemy {
	cfg := g.Config.Enemy
	spawn := g.Config.Spawn

	position := g.randomAround(g.Player.Position, spawn.EnemyMinDistance, spawn.EnemyMaxDistance)
	scale := cfg.MinScale + g.rng.Float64()*(cfg.MaxScale-cfg.MinScale)
	size := physics.Vector2D{X: cfg.BaseWidth * scale, Y: cfg.BaseHeight * scale}
	health := int(math.Floor(cfg.BaseHealth * scale))

	enemy := entity.NewEnemy(position, size, health, g.Config.EnemyStats(), g.rng)
	g.Enemies = append(g.Enemies, enemy)

	g.logger.Debug(ctx, "enemy spawned",
		"id", uint64(enemy.ID), "x", position.X, "y", position.Y,
		"health", enemy.Health, "damage", enemy.Damage)
	g.metrics.EnemySpawned(ctx)
	g.EventBus.Publish(event.NewEntityEvent(event.EnemySpawned, g, uint64(enemy.ID), entity.KindEnemy.String(), position.X, position.Y))
	return enemy
}

// SpawnPowerup places a triple-shot powerup in the spawn band around the player.
func (g *Game) SpawnPowerup(ctx context.Context) *entity.Powerup {
	spawn := g.Config.Spawn
	position := g.randomAround(g.Player.Position, spawn.PowerupMinDistance, spawn.PowerupMaxDistance)

	powerup := entity.NewPowerup(position, entity.TripleShot)
	g.Powerups = append(g.Powerups, powerup)

	g.logger.Debug(ctx, "powerup spawned", "id", uint64(powerup.ID), "type", powerup.Type.String(), "x", position.X, "y", position.Y)
	g.EventBus.Publish(event.NewEntityEvent(event.PowerupSpawned, g, uint64(powerup.ID), powerup.Type.String(), position.X, position.Y))
	return powerup
}

// generateStars scatters the background across a square field centred on the origin.
func (g *Game) generateStars() []*entity.Star {
	field := g.Config.Display.StarField
	stars := make([]*entity.Star, 0, g.Config.Display.StarCount)
	for i := 0; i < g.Config.Display.StarCount; i++ {
		position := physics.Vector2D{
			X: (g.rng.Float64() - 0.5) * 2 * field,
			Y: (g.rng.Float64() - 0.5) * 2 * field,
		}
		stars = append(stars, entity.NewStar(position, float64(g.rng.IntN(3)+1)))
	}
	return stars
}
