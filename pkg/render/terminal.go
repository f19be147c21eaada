// pkg/render/terminal.go
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
	"github.com/opd-ai/go-spacewarriors/pkg/entity"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// Glyphs used by the terminal renderer
const (
	GlyphEnemy           = 'W'
	GlyphPowerup         = '+'
	GlyphPlayerShot      = '|'
	GlyphEnemyShot       = '*'
	GlyphStar            = '.'
	GlyphBrightStar      = '*'
	GlyphMinimapPlayer   = '@'
	GlyphMinimapEnemy    = 'x'
	GlyphMinimapBorder   = '#'
	GlyphHealthFilled    = '='
	GlyphHealthEmpty     = '-'
	healthBarCells       = 20
	minimapCellsPerPixel = 0.25
)

// playerGlyphs is indexed by heading octant, starting east and turning
// clockwise in screen space.
var playerGlyphs = [8]rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}

var (
	stylePlayer      = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	stylePlayerBoost = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnemy       = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePlayerShot  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemyShot   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	stylePowerup     = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleStar        = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBrightStar  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUD         = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGameOver    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// TerminalRenderer draws the camera viewport onto a tcell screen. The
// viewport is stretched to fill the terminal, so one cell covers
// viewWidth/cols by viewHeight/rows world units.
type TerminalRenderer struct {
	screen     tcell.Screen
	viewWidth  float64
	viewHeight float64
	cols, rows int
	flashAlpha float64
}

// NewTerminalRenderer creates a renderer for an initialised screen and a
// viewport of viewWidth by viewHeight world units.
func NewTerminalRenderer(screen tcell.Screen, viewWidth, viewHeight float64) (*TerminalRenderer, error) {
	if screen == nil {
		return nil, fmt.Errorf("terminal renderer: nil screen")
	}
	if viewWidth <= 0 || viewHeight <= 0 {
		return nil, fmt.Errorf("terminal renderer: invalid viewport %vx%v", viewWidth, viewHeight)
	}
	r := &TerminalRenderer{
		screen:     screen,
		viewWidth:  viewWidth,
		viewHeight: viewHeight,
	}
	r.cols, r.rows = screen.Size()
	return r, nil
}

// Screen returns the underlying tcell screen.
func (r *TerminalRenderer) Screen() tcell.Screen {
	return r.screen
}

// toCell converts a screen-space position (pixels) into a terminal cell.
func (r *TerminalRenderer) toCell(screen physics.Vector2D) (int, int, bool) {
	if screen.X < 0 || screen.Y < 0 || screen.X >= r.viewWidth || screen.Y >= r.viewHeight {
		return 0, 0, false
	}
	x := int(screen.X / r.viewWidth * float64(r.cols))
	y := int(screen.Y / r.viewHeight * float64(r.rows))
	return x, y, x < r.cols && y < r.rows
}

func (r *TerminalRenderer) plot(world, camera physics.Vector2D, glyph rune, style tcell.Style) {
	if x, y, ok := r.toCell(entity.ScreenPosition(world, camera)); ok {
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		if x+i >= r.cols {
			return
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Clear implements entity.Renderer. It also picks up terminal resizes.
func (r *TerminalRenderer) Clear() {
	r.cols, r.rows = r.screen.Size()
	r.flashAlpha = 0
	r.screen.Clear()
}

// RenderStar implements entity.Renderer
func (r *TerminalRenderer) RenderStar(star *entity.Star, camera physics.Vector2D) {
	if star.Radius >= 3 {
		r.plot(star.Position, camera, GlyphBrightStar, styleBrightStar)
		return
	}
	r.plot(star.Position, camera, GlyphStar, styleStar)
}

// RenderPowerup implements entity.Renderer
func (r *TerminalRenderer) RenderPowerup(powerup *entity.Powerup, camera physics.Vector2D) {
	r.plot(powerup.Position, camera, GlyphPowerup, stylePowerup)
}

// RenderProjectile implements entity.Renderer
func (r *TerminalRenderer) RenderProjectile(projectile *entity.Projectile, camera physics.Vector2D) {
	if projectile.Owner == entity.FactionPlayer {
		r.plot(projectile.Position, camera, GlyphPlayerShot, stylePlayerShot)
		return
	}
	r.plot(projectile.Position, camera, GlyphEnemyShot, styleEnemyShot)
}

// RenderEnemy implements entity.Renderer
func (r *TerminalRenderer) RenderEnemy(enemy *entity.Enemy, camera physics.Vector2D) {
	r.plot(enemy.Position, camera, GlyphEnemy, styleEnemy)
}

// RenderPlayer implements entity.Renderer
func (r *TerminalRenderer) RenderPlayer(player *entity.PlayerShip, camera physics.Vector2D) {
	style := stylePlayer
	if player.TripleShotActive {
		style = stylePlayerBoost
	}
	r.plot(player.Position, camera, PlayerGlyph(player.Angle), style)
}

// PlayerGlyph picks the arrow closest to a heading in degrees.
func PlayerGlyph(angle float64) rune {
	octant := int(math.Round(angle/45)) % 8
	if octant < 0 {
		octant += 8
	}
	return playerGlyphs[octant]
}

// RenderHUD implements engine.HUDRenderer
func (r *TerminalRenderer) RenderHUD(state engine.HUDState) {
	r.flashAlpha = state.DamageFlashAlpha

	status := fmt.Sprintf("SCORE %d  HP %s %d/%d", state.Score, HealthBar(state.Health, state.MaxHealth), state.Health, state.MaxHealth)
	if state.TripleShotActive {
		status += fmt.Sprintf("  TRIPLE %3.0f%%", state.TripleShotFraction*100)
	}
	r.text(0, 0, status, styleHUD)

	r.renderMinimap(state.Minimap)

	if state.GameOver {
		r.renderGameOver(state.Score)
	}
}

// HealthBar renders health as a fixed-width bar.
func HealthBar(health, maxHealth int) string {
	filled := 0
	if maxHealth > 0 {
		filled = int(math.Ceil(float64(health) / float64(maxHealth) * healthBarCells))
	}
	filled = min(max(filled, 0), healthBarCells)
	return "[" + strings.Repeat(string(GlyphHealthFilled), filled) + strings.Repeat(string(GlyphHealthEmpty), healthBarCells-filled) + "]"
}

// renderMinimap draws the radar box in the top-right corner. The box keeps
// its pixel proportions at a fixed number of cells per pixel.
func (r *TerminalRenderer) renderMinimap(m engine.Minimap) {
	side := int(m.Size * minimapCellsPerPixel)
	if side < 3 || side+2 > r.cols || side/2+2 > r.rows {
		return
	}
	w, h := side, side/2
	left, top := r.cols-w-2, 1

	for x := 0; x < w+2; x++ {
		r.screen.SetContent(left+x, top, GlyphMinimapBorder, nil, styleHUD)
		r.screen.SetContent(left+x, top+h+1, GlyphMinimapBorder, nil, styleHUD)
	}
	for y := 1; y <= h; y++ {
		r.screen.SetContent(left, top+y, GlyphMinimapBorder, nil, styleHUD)
		r.screen.SetContent(left+w+1, top+y, GlyphMinimapBorder, nil, styleHUD)
	}

	cx, cy := left+1+w/2, top+1+h/2
	for _, dot := range m.Enemies {
		x := cx + int(math.Floor(dot.X/m.Size*float64(w)))
		y := cy + int(math.Floor(dot.Y/m.Size*float64(h)))
		if x > left && x <= left+w && y > top && y <= top+h {
			r.screen.SetContent(x, y, GlyphMinimapEnemy, nil, styleEnemy)
		}
	}
	r.screen.SetContent(cx, cy, GlyphMinimapPlayer, nil, stylePlayer)
}

func (r *TerminalRenderer) renderGameOver(score int) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Final score: %d", score),
		"Press R to restart",
	}
	top := r.rows/2 - len(lines)/2
	for i, line := range lines {
		r.text(max((r.cols-len(line))/2, 0), top+i, line, styleGameOver)
	}
}

// Present implements entity.Renderer. A pending damage flash tints the
// background red in proportion to its alpha.
func (r *TerminalRenderer) Present() {
	if r.flashAlpha > 0 {
		r.tint(flashColor(r.flashAlpha))
	}
	r.screen.Show()
}

func flashColor(alpha float64) tcell.Color {
	return tcell.NewRGBColor(int32(math.Round(255*alpha)), 0, 0)
}

func (r *TerminalRenderer) tint(bg tcell.Color) {
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			mainc, combc, style, _ := r.screen.GetContent(x, y)
			r.screen.SetContent(x, y, mainc, combc, style.Background(bg))
		}
	}
}
