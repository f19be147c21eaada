// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
	"github.com/opd-ai/go-spacewarriors/pkg/entity"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

var (
	colorPlayer      = color.RGBA{0, 255, 255, 255}
	colorPlayerBoost = color.RGBA{255, 215, 0, 255}
	colorEnemy       = color.RGBA{255, 60, 60, 255}
	colorPlayerShot  = color.RGBA{255, 255, 0, 255}
	colorEnemyShot   = color.RGBA{255, 128, 0, 255}
	colorPowerup     = color.RGBA{0, 255, 0, 255}
	colorStar        = color.RGBA{200, 200, 200, 255}
)

// sprite is one pooled ECS entity
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// spritePool recycles sprites frame to frame so the render system sees a
// stable set of entities.
type spritePool struct {
	system *common.RenderSystem
	zIndex float32
	items  []*sprite
	used   int
}

func (p *spritePool) reset() {
	p.used = 0
}

func (p *spritePool) acquire() *sprite {
	if p.used < len(p.items) {
		s := p.items[p.used]
		p.used++
		return s
	}

	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.RenderComponent.Scale = engo.Point{X: 1, Y: 1}
	if p.system != nil {
		if p.zIndex != 0 {
			s.RenderComponent.SetZIndex(p.zIndex)
		}
		p.system.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	}
	p.items = append(p.items, s)
	p.used++
	return s
}

// hideUnused hides sprites not acquired since the last reset.
func (p *spritePool) hideUnused() {
	for _, s := range p.items[p.used:] {
		s.Hidden = true
	}
}

// active returns the sprites acquired since the last reset.
func (p *spritePool) active() []*sprite {
	return p.items[:p.used]
}

// place positions a sprite so its centre lands on center after engo rotates
// it about its top-left corner.
func place(s *sprite, d common.Drawable, center physics.Vector2D, width, height, angle float64, c color.Color) {
	s.Drawable = d
	s.Color = c
	s.Hidden = false
	s.Scale = engo.Point{X: 1, Y: 1}
	if d != nil && d.Width() > 0 && d.Height() > 0 {
		s.Scale = engo.Point{X: float32(width) / d.Width(), Y: float32(height) / d.Height()}
	}

	corner := center.Sub(physics.Vector2D{X: width / 2, Y: height / 2}.RotateDegrees(angle))
	s.Position = engo.Point{X: float32(corner.X), Y: float32(corner.Y)}
	s.Width = float32(width)
	s.Height = float32(height)
	s.Rotation = float32(angle)
}

// EngoRenderer implements entity.Renderer using the Engo game engine
type EngoRenderer struct {
	pool   spritePool
	assets *AssetCache
	camera *CameraSystem
	hud    *HUDSystem
}

// NewEngoRenderer creates a renderer that feeds system. A nil system keeps
// sprites off-screen, which is how the renderer runs without a window.
func NewEngoRenderer(system *common.RenderSystem, assets *AssetCache, camera *CameraSystem, hud *HUDSystem) *EngoRenderer {
	return &EngoRenderer{
		pool:   spritePool{system: system},
		assets: assets,
		camera: camera,
		hud:    hud,
	}
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	r.pool.reset()
}

// Present implements entity.Renderer. Engo draws the sprites on its own
// schedule; Present only hides what this frame did not use.
func (r *EngoRenderer) Present() {
	r.pool.hideUnused()
}

func (r *EngoRenderer) draw(kind entity.Kind, world, camera physics.Vector2D, width, height, angle float64, c color.Color) {
	center := r.camera.Project(entity.ScreenPosition(world, camera))
	place(r.pool.acquire(), r.assets.Get(kind), center, r.camera.Scale(width), r.camera.Scale(height), angle, c)
}

// RenderStar implements entity.Renderer
func (r *EngoRenderer) RenderStar(star *entity.Star, camera physics.Vector2D) {
	d := star.Radius * 2
	r.draw(entity.KindStar, star.Position, camera, d, d, 0, colorStar)
}

// RenderPowerup implements entity.Renderer
func (r *EngoRenderer) RenderPowerup(powerup *entity.Powerup, camera physics.Vector2D) {
	d := powerup.Size * 2
	r.draw(entity.KindPowerup, powerup.Position, camera, d, d, 0, colorPowerup)
}

// RenderProjectile implements entity.Renderer. The streak is centred
// between the head and the tail.
func (r *EngoRenderer) RenderProjectile(projectile *entity.Projectile, camera physics.Vector2D) {
	c := colorEnemyShot
	if projectile.Owner == entity.FactionPlayer {
		c = colorPlayerShot
	}
	mid := projectile.Position.Add(projectile.Tail()).Scale(0.5)
	r.draw(entity.KindProjectile, mid, camera, projectile.Length, 2, projectile.Angle, c)
}

// RenderEnemy implements entity.Renderer
func (r *EngoRenderer) RenderEnemy(enemy *entity.Enemy, camera physics.Vector2D) {
	r.draw(entity.KindEnemy, enemy.Position, camera, enemy.Size.X, enemy.Size.Y, enemy.Angle, colorEnemy)
}

// RenderPlayer implements entity.Renderer
func (r *EngoRenderer) RenderPlayer(player *entity.PlayerShip, camera physics.Vector2D) {
	c := colorPlayer
	if player.TripleShotActive {
		c = colorPlayerBoost
	}
	r.draw(entity.KindPlayer, player.Position, camera, player.Size.X, player.Size.Y, player.Angle, c)
}

// RenderHUD implements engine.HUDRenderer
func (r *EngoRenderer) RenderHUD(state engine.HUDState) {
	if r.hud != nil {
		r.hud.Apply(state)
	}
}

// Drawn returns the number of sprites used by the current frame.
func (r *EngoRenderer) Drawn() int {
	return r.pool.used
}
