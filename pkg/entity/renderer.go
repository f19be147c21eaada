// pkg/entity/renderer.go
package entity

import "github.com/opd-ai/go-spacewarriors/pkg/physics"

// Renderer draws entities. camera is subtracted from world positions to get
// screen positions.
type Renderer interface {
	Clear()
	RenderStar(star *Star, camera physics.Vector2D)
	RenderPowerup(powerup *Powerup, camera physics.Vector2D)
	RenderProjectile(projectile *Projectile, camera physics.Vector2D)
	RenderEnemy(enemy *Enemy, camera physics.Vector2D)
	RenderPlayer(player *PlayerShip, camera physics.Vector2D)
	Present()
}

// ScreenPosition converts a world position into screen space.
func ScreenPosition(world, camera physics.Vector2D) physics.Vector2D {
	return world.Sub(camera)
}
