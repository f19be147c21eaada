// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
	"github.com/opd-ai/go-spacewarriors/pkg/entity"
	"github.com/opd-ai/go-spacewarriors/pkg/logging"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// NullRenderer draws nothing. It counts draw calls per frame and logs a
// summary on Present, which makes it the headless renderer.
type NullRenderer struct {
	logger *logging.Logger
	counts map[entity.Kind]int
	frames int
	hud    engine.HUDState
}

// NewNullRenderer creates a new NullRenderer with structured logging.
// A nil logger discards output.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{
		logger: logger,
		counts: make(map[entity.Kind]int),
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	clear(d.counts)
}

// RenderStar implements entity.Renderer.
func (d *NullRenderer) RenderStar(*entity.Star, physics.Vector2D) {
	d.counts[entity.KindStar]++
}

// RenderPowerup implements entity.Renderer.
func (d *NullRenderer) RenderPowerup(*entity.Powerup, physics.Vector2D) {
	d.counts[entity.KindPowerup]++
}

// RenderProjectile implements entity.Renderer.
func (d *NullRenderer) RenderProjectile(*entity.Projectile, physics.Vector2D) {
	d.counts[entity.KindProjectile]++
}

// RenderEnemy implements entity.Renderer.
func (d *NullRenderer) RenderEnemy(*entity.Enemy, physics.Vector2D) {
	d.counts[entity.KindEnemy]++
}

// RenderPlayer implements entity.Renderer.
func (d *NullRenderer) RenderPlayer(player *entity.PlayerShip, camera physics.Vector2D) {
	d.counts[entity.KindPlayer]++
	if player == nil {
		return
	}
	screen := entity.ScreenPosition(player.Position, camera)
	d.logger.Debug(context.Background(), "player drawn",
		"screen_x", screen.X,
		"screen_y", screen.Y,
		"angle", player.Angle,
	)
}

// RenderHUD implements engine.HUDRenderer.
func (d *NullRenderer) RenderHUD(state engine.HUDState) {
	d.hud = state
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.frames++
	ctx := logging.WithFrame(context.Background(), d.hud.Frame)
	d.logger.Debug(ctx, "frame presented",
		"enemies", d.counts[entity.KindEnemy],
		"projectiles", d.counts[entity.KindProjectile],
		"powerups", d.counts[entity.KindPowerup],
		"stars", d.counts[entity.KindStar],
		"score", d.hud.Score,
		"health", d.hud.Health,
		"game_over", d.hud.GameOver,
	)
}

// Count returns how many entities of kind were drawn since the last Clear.
func (d *NullRenderer) Count(kind entity.Kind) int {
	return d.counts[kind]
}

// Frames returns the number of presented frames.
func (d *NullRenderer) Frames() int {
	return d.frames
}

// LastHUD returns the most recent HUD state received.
func (d *NullRenderer) LastHUD() engine.HUDState {
	return d.hud
}
