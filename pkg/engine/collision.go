// pkg/engine/collision.go
package engine

import (
	"context"
	"slices"

	"github.com/opd-ai/go-spacewarriors/pkg/entity"
	"github.com/opd-ai/go-spacewarriors/pkg/event"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// resolveCollisions applies projectile hits and powerup pickups, then drops
// consumed projectiles, destroyed enemies and collected powerups.
func (g *Game) resolveCollisions(ctx context.Context) {
	g.processPlayerShots(ctx)
	g.processEnemyShots(ctx)
	g.processPowerups(ctx)

	g.Projectiles = slices.DeleteFunc(g.Projectiles, func(p *entity.Projectile) bool { return !p.Alive() })
	g.Enemies = slices.DeleteFunc(g.Enemies, func(e *entity.Enemy) bool { return e.IsDestroyed() })
	g.Powerups = advance(g.Powerups, entity.Frame{Number: g.Frame, PlayerPosition: g.Player.Position})
}

// rebuildIndex loads enemy indices into the quadtree and returns the largest
// hit radius, which bounds every broad-phase query.
func (g *Game) rebuildIndex() float64 {
	points := make([]physics.Vector2D, len(g.Enemies))
	maxReach := 0.0
	for i, e := range g.Enemies {
		points[i] = e.Position
		maxReach = max(maxReach, e.GetCollider().Radius)
	}

	g.index.Clear(physics.BoundsOf(points, maxReach+1))
	for i, p := range points {
		g.index.Insert(p, i)
	}
	return maxReach
}

// processPlayerShots lets each player projectile hit at most one enemy. When
// several overlap, the most recently spawned enemy takes the hit.
func (g *Game) processPlayerShots(ctx context.Context) {
	if len(g.Enemies) == 0 {
		return
	}
	maxReach := g.rebuildIndex()

	for _, p := range g.Projectiles {
		if p.Owner != entity.FactionPlayer || !p.Alive() {
			continue
		}

		target := -1
		for _, i := range g.index.QueryRadius(p.Position, maxReach) {
			e := g.Enemies[i]
			if e.IsDestroyed() || !e.GetCollider().Contains(p.Position) {
				continue
			}
			target = max(target, i)
		}
		if target < 0 {
			continue
		}

		g.hitEnemy(ctx, g.Enemies[target], p)
	}
}

func (g *Game) hitEnemy(ctx context.Context, e *entity.Enemy, p *entity.Projectile) {
	e.TakeDamage(p.Damage)
	p.Expire()
	g.Score += p.Damage * g.Config.Scoring.DamageBonus

	g.metrics.DamageDealt(ctx, entity.KindEnemy.String(), p.Damage)
	g.EventBus.Publish(event.NewDamageEvent(event.EnemyDamaged, g, uint64(e.ID), uint64(p.OwnerID), p.Damage, e.Health))

	if !e.IsDestroyed() {
		return
	}
	g.Score += g.Config.Scoring.KillBonus
	g.logger.Debug(ctx, "enemy destroyed", "id", uint64(e.ID), "score", g.Score)
	g.metrics.EnemyDestroyed(ctx)
	g.EventBus.Publish(event.NewEntityEvent(event.EnemyDestroyed, g, uint64(e.ID), entity.KindEnemy.String(), e.Position.X, e.Position.Y))
}

// processEnemyShots applies at most one enemy hit on the player per frame,
// checking the newest projectiles first.
func (g *Game) processEnemyShots(ctx context.Context) {
	collider := g.Player.GetCollider()
	for i := len(g.Projectiles) - 1; i >= 0; i-- {
		p := g.Projectiles[i]
		if p.Owner != entity.FactionEnemy || !p.Alive() || !collider.Contains(p.Position) {
			continue
		}

		g.Player.TakeDamage(p.Damage)
		p.Expire()
		g.DamageFlash = g.Config.Effects.DamageFlashFrames

		g.metrics.DamageDealt(ctx, entity.KindPlayer.String(), p.Damage)
		g.EventBus.Publish(event.NewDamageEvent(event.PlayerDamaged, g, uint64(g.Player.ID), uint64(p.OwnerID), p.Damage, g.Player.Health))

		if g.Player.IsDestroyed() {
			g.endGame(ctx)
		}
		return
	}
}

func (g *Game) processPowerups(ctx context.Context) {
	for _, pu := range g.Powerups {
		if pu.Collected || !pu.CheckCollision(g.Player.Position, g.Player.Size) {
			continue
		}
		if !pu.Apply(g.Player) {
			continue
		}
		g.logger.Debug(ctx, "powerup collected", "id", uint64(pu.ID), "type", pu.Type.String())
		g.metrics.PowerupCollected(ctx, pu.Type.String())
		g.EventBus.Publish(event.NewEntityEvent(event.PowerupCollected, g, uint64(pu.ID), pu.Type.String(), pu.Position.X, pu.Position.Y))
	}
}

func (g *Game) endGame(ctx context.Context) {
	if g.Status == GameStatusOver {
		return
	}
	g.Status = GameStatusOver
	g.logger.Info(ctx, "game over", "score", g.Score)
	g.metrics.GameEnded(ctx)
	g.EventBus.Publish(event.NewGameEvent(event.GameOver, g, g.Frame, g.Score))
}
