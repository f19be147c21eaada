// pkg/render/ebiten/renderer.go
package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
	"github.com/opd-ai/go-spacewarriors/pkg/entity"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

var (
	colorBackground = color.RGBA{10, 10, 25, 255}
	colorPlayer     = color.RGBA{0, 255, 255, 255}
	colorBoost      = color.RGBA{255, 215, 0, 255}
	colorEnemy      = color.RGBA{255, 60, 60, 255}
	colorPlayerShot = color.RGBA{255, 255, 0, 255}
	colorEnemyShot  = color.RGBA{255, 128, 0, 255}
	colorPowerup    = color.RGBA{0, 255, 0, 255}
	colorStar       = color.RGBA{200, 200, 200, 255}
	colorPanel      = color.RGBA{0, 0, 0, 128}
	colorBarEmpty   = color.RGBA{100, 0, 0, 255}
	colorBarFull    = color.RGBA{0, 200, 0, 255}
	colorWhite      = color.RGBA{255, 255, 255, 255}
)

// OpKind identifies a drawing primitive
type OpKind int

const (
	OpCircle OpKind = iota
	OpRect
	OpLine
	OpPolygon
	OpText
)

// Op is one queued drawing primitive in screen pixels. Circles use
// X, Y and R; rectangles X, Y, W and H; lines X, Y, X2, Y2 and Stroke;
// polygons Points and Stroke; text X, Y and Text.
type Op struct {
	Kind   OpKind
	X, Y   float32
	X2, Y2 float32
	W, H   float32
	R      float32
	Stroke float32
	Points []physics.Vector2D
	Text   string
	Color  color.Color
}

// Renderer implements entity.Renderer by building a display list that
// Draw replays onto an ebiten image. The list is double buffered so
// Draw always sees the last presented frame.
type Renderer struct {
	width, height float64
	back          []Op
	front         []Op
}

// NewRenderer creates a renderer for a width by height screen.
func NewRenderer(width, height float64) *Renderer {
	return &Renderer{width: width, height: height}
}

// Clear implements entity.Renderer
func (r *Renderer) Clear() {
	r.back = r.back[:0]
}

// Present implements entity.Renderer
func (r *Renderer) Present() {
	r.front, r.back = r.back, r.front
}

// Ops returns the last presented display list.
func (r *Renderer) Ops() []Op {
	return r.front
}

func (r *Renderer) push(op Op) {
	r.back = append(r.back, op)
}

func (r *Renderer) circle(center physics.Vector2D, radius float64, c color.Color) {
	r.push(Op{Kind: OpCircle, X: float32(center.X), Y: float32(center.Y), R: float32(radius), Color: c})
}

func (r *Renderer) rect(x, y, w, h float64, c color.Color) {
	r.push(Op{Kind: OpRect, X: float32(x), Y: float32(y), W: float32(w), H: float32(h), Color: c})
}

func (r *Renderer) line(from, to physics.Vector2D, stroke float64, c color.Color) {
	r.push(Op{
		Kind: OpLine,
		X:    float32(from.X), Y: float32(from.Y),
		X2: float32(to.X), Y2: float32(to.Y),
		Stroke: float32(stroke), Color: c,
	})
}

func (r *Renderer) polygon(points []physics.Vector2D, c color.Color) {
	r.push(Op{Kind: OpPolygon, Points: points, Stroke: 1.5, Color: c})
}

func (r *Renderer) text(s string, x, y float64) {
	r.push(Op{Kind: OpText, X: float32(x), Y: float32(y), Text: s, Color: colorWhite})
}

// outline returns the corners of a w by h box centred on center and
// rotated by angle degrees.
func outline(center physics.Vector2D, w, h, angle float64, corners ...physics.Vector2D) []physics.Vector2D {
	points := make([]physics.Vector2D, len(corners))
	for i, c := range corners {
		points[i] = center.Add(physics.Vector2D{X: c.X * w / 2, Y: c.Y * h / 2}.RotateDegrees(angle))
	}
	return points
}

// RenderStar implements entity.Renderer
func (r *Renderer) RenderStar(star *entity.Star, camera physics.Vector2D) {
	r.circle(entity.ScreenPosition(star.Position, camera), star.Radius, colorStar)
}

// RenderPowerup implements entity.Renderer
func (r *Renderer) RenderPowerup(powerup *entity.Powerup, camera physics.Vector2D) {
	r.circle(entity.ScreenPosition(powerup.Position, camera), powerup.Size, colorPowerup)
}

// RenderProjectile implements entity.Renderer
func (r *Renderer) RenderProjectile(projectile *entity.Projectile, camera physics.Vector2D) {
	c := colorEnemyShot
	if projectile.Owner == entity.FactionPlayer {
		c = colorPlayerShot
	}
	r.line(entity.ScreenPosition(projectile.Tail(), camera), entity.ScreenPosition(projectile.Position, camera), 2, c)
}

// RenderEnemy implements entity.Renderer
func (r *Renderer) RenderEnemy(enemy *entity.Enemy, camera physics.Vector2D) {
	center := entity.ScreenPosition(enemy.Position, camera)
	r.polygon(outline(center, enemy.Size.X, enemy.Size.Y, enemy.Angle,
		physics.Vector2D{X: -1, Y: -1},
		physics.Vector2D{X: 1, Y: -1},
		physics.Vector2D{X: 1, Y: 1},
		physics.Vector2D{X: -1, Y: 1},
	), colorEnemy)
}

// RenderPlayer implements entity.Renderer. The ship is a triangle with
// its nose along the facing.
func (r *Renderer) RenderPlayer(player *entity.PlayerShip, camera physics.Vector2D) {
	c := colorPlayer
	if player.TripleShotActive {
		c = colorBoost
	}
	center := entity.ScreenPosition(player.Position, camera)
	r.polygon(outline(center, player.Size.X, player.Size.Y, player.Angle,
		physics.Vector2D{X: 1, Y: 0},
		physics.Vector2D{X: -1, Y: -1},
		physics.Vector2D{X: -1, Y: 1},
	), c)
}

// RenderHUD implements engine.HUDRenderer
func (r *Renderer) RenderHUD(state engine.HUDState) {
	const barX, barY, barW, barH = 10, 10, 200, 12

	r.rect(barX, barY, barW, barH, colorBarEmpty)
	if state.MaxHealth > 0 && state.Health > 0 {
		r.rect(barX, barY, barW*float64(state.Health)/float64(state.MaxHealth), barH, colorBarFull)
	}
	if state.TripleShotActive {
		r.rect(barX, barY+barH+4, barW*state.TripleShotFraction, 4, colorBoost)
	}
	r.text(fmt.Sprintf("SCORE %d  HP %d/%d", state.Score, state.Health, state.MaxHealth), barX, barY+barH+12)

	r.minimap(state.Minimap)

	if state.DamageFlashAlpha > 0 {
		r.rect(0, 0, r.width, r.height, color.NRGBA{255, 0, 0, uint8(state.DamageFlashAlpha * 255)})
	}
	if state.GameOver {
		r.rect(0, 0, r.width, r.height, color.NRGBA{0, 0, 0, 160})
		r.text("GAME OVER", r.width/2-27, r.height/2-20)
		r.text(fmt.Sprintf("Final score: %d", state.Score), r.width/2-45, r.height/2)
		r.text("Press R to restart", r.width/2-54, r.height/2+20)
	}
}

func (r *Renderer) minimap(m engine.Minimap) {
	left, top := r.width-m.Size-20, 20.0
	center := physics.Vector2D{X: left + m.Size/2, Y: top + m.Size/2}

	r.rect(left, top, m.Size, m.Size, colorPanel)
	r.polygon(outline(center, m.Size, m.Size, 0,
		physics.Vector2D{X: -1, Y: -1},
		physics.Vector2D{X: 1, Y: -1},
		physics.Vector2D{X: 1, Y: 1},
		physics.Vector2D{X: -1, Y: 1},
	), colorWhite)
	for _, offset := range m.Enemies {
		r.circle(center.Add(offset), 1.5, colorEnemy)
	}
	r.circle(center, 2, colorPlayer)
}

// Draw replays the presented display list onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	for _, op := range r.front {
		switch op.Kind {
		case OpCircle:
			vector.DrawFilledCircle(screen, op.X, op.Y, op.R, op.Color, true)
		case OpRect:
			vector.DrawFilledRect(screen, op.X, op.Y, op.W, op.H, op.Color, true)
		case OpLine:
			vector.StrokeLine(screen, op.X, op.Y, op.X2, op.Y2, op.Stroke, op.Color, true)
		case OpPolygon:
			for i, p := range op.Points {
				q := op.Points[(i+1)%len(op.Points)]
				vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), op.Stroke, op.Color, true)
			}
		case OpText:
			ebitenutil.DebugPrintAt(screen, op.Text, int(op.X), int(op.Y))
		}
	}
}
