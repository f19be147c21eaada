// pkg/engine/hud.go
package engine

import (
	"math"

	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// maxFlashAlpha is the overlay opacity on the frame a hit lands.
const maxFlashAlpha = 0.4

// HUDRenderer is implemented by renderers that draw the overlay.
type HUDRenderer interface {
	RenderHUD(state HUDState)
}

// HUDState is everything the overlay shows for one frame
type HUDState struct {
	Score              int
	Health             int
	MaxHealth          int
	TripleShotActive   bool
	TripleShotFraction float64
	DamageFlashAlpha   float64
	GameOver           bool
	Frame              uint64
	Minimap            Minimap
}

// Minimap is a player-centred radar. Enemies holds offsets from the
// minimap's centre in screen pixels.
type Minimap struct {
	Size    float64
	Scale   float64
	Enemies []physics.Vector2D
}

// HUD snapshots the overlay state.
func (g *Game) HUD() HUDState {
	state := HUDState{
		Score:            g.Score,
		Health:           g.Player.Health,
		MaxHealth:        g.Player.MaxHealth,
		TripleShotActive: g.Player.TripleShotActive,
		GameOver:         g.Status == GameStatusOver,
		Frame:            g.Frame,
		Minimap:          g.minimap(),
	}
	if state.TripleShotActive && g.Player.Stats.TripleShotDuration > 0 {
		state.TripleShotFraction = float64(g.Player.TripleShotTimer) / float64(g.Player.Stats.TripleShotDuration)
	}
	if frames := g.Config.Effects.DamageFlashFrames; frames > 0 && g.DamageFlash > 0 {
		state.DamageFlashAlpha = float64(g.DamageFlash) / float64(frames) * maxFlashAlpha
	}
	return state
}

func (g *Game) minimap() Minimap {
	m := Minimap{Size: g.Config.Display.MinimapSize, Scale: g.Config.Display.MinimapScale}
	half := m.Size / 2
	for _, e := range g.Enemies {
		offset := e.Position.Sub(g.Player.Position).Scale(m.Scale)
		if math.Abs(offset.X) < half && math.Abs(offset.Y) < half {
			m.Enemies = append(m.Enemies, offset)
		}
	}
	return m
}
