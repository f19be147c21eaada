// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// HUD layout in screen pixels
const (
	hudMargin       = 10
	healthBarWidth  = 200
	healthBarHeight = 12
	minimapInset    = 140
	minimapTop      = 20
	minimapDot      = 3.0
	hudZIndex       = 100
)

// HUDElement is one drawable piece of the overlay, positioned by its
// top-left corner.
type HUDElement struct {
	Name     string
	Drawable common.Drawable
	X, Y     float64
	Width    float64
	Height   float64
	Color    color.Color
}

// HUDSystem draws the heads-up display from engine.HUDState
type HUDSystem struct {
	pool          spritePool
	width, height float64

	minimapEnabled bool
	font           *common.Font

	hudColor   color.Color
	enemyColor color.Color
	boostColor color.Color
	panelColor color.Color
}

// NewHUDSystem creates a HUD for a width by height screen. A nil system
// lays out elements without drawing them.
func NewHUDSystem(system *common.RenderSystem, width, height float64) *HUDSystem {
	return &HUDSystem{
		pool:           spritePool{system: system, zIndex: hudZIndex},
		width:          width,
		height:         height,
		minimapEnabled: true,
		hudColor:       color.RGBA{255, 255, 255, 255},
		enemyColor:     color.RGBA{255, 0, 0, 255},
		boostColor:     color.RGBA{255, 215, 0, 255},
		panelColor:     color.RGBA{0, 0, 0, 128},
	}
}

// Apply lays out state and syncs it into the HUD sprites.
func (hud *HUDSystem) Apply(state engine.HUDState) {
	hud.pool.reset()
	for _, el := range hud.Layout(state) {
		center := physics.Vector2D{X: el.X + el.Width/2, Y: el.Y + el.Height/2}
		place(hud.pool.acquire(), el.Drawable, center, el.Width, el.Height, 0, el.Color)
	}
	hud.pool.hideUnused()
}

// Layout computes the overlay for state.
func (hud *HUDSystem) Layout(state engine.HUDState) []HUDElement {
	var els []HUDElement

	els = append(els, HUDElement{
		Name: "health_bg", Drawable: common.Rectangle{},
		X: hudMargin, Y: hudMargin, Width: healthBarWidth, Height: healthBarHeight,
		Color: color.RGBA{60, 60, 60, 255},
	})
	if state.MaxHealth > 0 && state.Health > 0 {
		fraction := float64(state.Health) / float64(state.MaxHealth)
		els = append(els, HUDElement{
			Name: "health", Drawable: common.Rectangle{},
			X: hudMargin, Y: hudMargin, Width: healthBarWidth * fraction, Height: healthBarHeight,
			Color: healthColor(fraction),
		})
	}

	if state.TripleShotActive {
		els = append(els, HUDElement{
			Name: "triple_shot", Drawable: common.Rectangle{},
			X: hudMargin, Y: hudMargin + healthBarHeight + 6, Width: healthBarWidth * state.TripleShotFraction, Height: 6,
			Color: hud.boostColor,
		})
	}

	if hud.font != nil {
		els = append(els, hud.text("score", fmt.Sprintf("Score: %d", state.Score), hudMargin, hudMargin+healthBarHeight+16))
	}

	if hud.minimapEnabled {
		els = append(els, hud.minimap(state.Minimap)...)
	}

	if state.DamageFlashAlpha > 0 {
		els = append(els, HUDElement{
			Name: "damage_flash", Drawable: common.Rectangle{},
			Width: hud.width, Height: hud.height,
			Color: color.NRGBA{255, 0, 0, uint8(state.DamageFlashAlpha * 255)},
		})
	}

	if state.GameOver {
		els = append(els, HUDElement{
			Name: "game_over", Drawable: common.Rectangle{},
			Width: hud.width, Height: hud.height,
			Color: color.NRGBA{0, 0, 0, 160},
		})
		if hud.font != nil {
			msg := fmt.Sprintf("GAME OVER  Score: %d  Press R to restart", state.Score)
			t := hud.text("game_over_text", msg, 0, hud.height/2)
			t.X = (hud.width - t.Width) / 2
			els = append(els, t)
		}
	}
	return els
}

func (hud *HUDSystem) minimap(m engine.Minimap) []HUDElement {
	left := hud.width - minimapInset
	cx, cy := left+m.Size/2, minimapTop+m.Size/2

	els := []HUDElement{
		{
			Name: "minimap", Drawable: common.Rectangle{BorderWidth: 1, BorderColor: hud.hudColor},
			X: left, Y: minimapTop, Width: m.Size, Height: m.Size,
			Color: hud.panelColor,
		},
		{
			Name: "minimap_player", Drawable: common.Rectangle{},
			X: cx - 2, Y: cy - 2, Width: 4, Height: 4,
			Color: colorPlayer,
		},
	}
	for _, dot := range m.Enemies {
		els = append(els, HUDElement{
			Name: "minimap_enemy", Drawable: common.Rectangle{},
			X: cx + dot.X - minimapDot/2, Y: cy + dot.Y - minimapDot/2, Width: minimapDot, Height: minimapDot,
			Color: hud.enemyColor,
		})
	}
	return els
}

func (hud *HUDSystem) text(name, s string, x, y float64) HUDElement {
	t := common.Text{Font: hud.font, Text: s}
	return HUDElement{
		Name: name, Drawable: t,
		X: x, Y: y, Width: float64(t.Width()), Height: float64(t.Height()),
		Color: hud.hudColor,
	}
}

func healthColor(fraction float64) color.Color {
	switch {
	case fraction > 0.5:
		return color.RGBA{0, 200, 0, 255}
	case fraction > 0.25:
		return color.RGBA{230, 200, 0, 255}
	default:
		return color.RGBA{220, 0, 0, 255}
	}
}

// SetMinimapEnabled enables or disables the minimap
func (hud *HUDSystem) SetMinimapEnabled(enabled bool) {
	hud.minimapEnabled = enabled
}

// IsMinimapEnabled returns whether the minimap is enabled
func (hud *HUDSystem) IsMinimapEnabled() bool {
	return hud.minimapEnabled
}

// SetFont sets the font used for HUD text rendering
func (hud *HUDSystem) SetFont(font *common.Font) {
	hud.font = font
}
