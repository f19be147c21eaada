package engo

import (
	"image/color"
	"testing"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

func elementsNamed(els []HUDElement, name string) []HUDElement {
	var out []HUDElement
	for _, el := range els {
		if el.Name == name {
			out = append(out, el)
		}
	}
	return out
}

func baseState() engine.HUDState {
	return engine.HUDState{
		Score:     120,
		Health:    100,
		MaxHealth: 100,
		Minimap:   engine.Minimap{Size: 120, Scale: 0.02},
	}
}

func TestHUDLayout_HealthBar(t *testing.T) {
	tests := []struct {
		name      string
		health    int
		wantWidth float64
		wantFill  bool
		wantColor color.Color
	}{
		{"full", 100, 200, true, color.RGBA{0, 200, 0, 255}},
		{"half", 50, 100, true, color.RGBA{230, 200, 0, 255}},
		{"low", 20, 40, true, color.RGBA{220, 0, 0, 255}},
		{"empty", 0, 0, false, nil},
	}

	hud := NewHUDSystem(nil, 800, 600)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := baseState()
			state.Health = tt.health
			els := hud.Layout(state)

			if len(elementsNamed(els, "health_bg")) != 1 {
				t.Fatal("expected a health bar background")
			}
			fill := elementsNamed(els, "health")
			if !tt.wantFill {
				if len(fill) != 0 {
					t.Errorf("expected no fill, got %+v", fill)
				}
				return
			}
			if len(fill) != 1 {
				t.Fatalf("fill elements = %d, want 1", len(fill))
			}
			if fill[0].Width != tt.wantWidth {
				t.Errorf("fill width = %v, want %v", fill[0].Width, tt.wantWidth)
			}
			if fill[0].Color != tt.wantColor {
				t.Errorf("fill colour = %v, want %v", fill[0].Color, tt.wantColor)
			}
		})
	}
}

func TestHUDLayout_TripleShot(t *testing.T) {
	hud := NewHUDSystem(nil, 800, 600)

	state := baseState()
	if len(elementsNamed(hud.Layout(state), "triple_shot")) != 0 {
		t.Error("expected no triple shot bar while inactive")
	}

	state.TripleShotActive = true
	state.TripleShotFraction = 0.25
	bars := elementsNamed(hud.Layout(state), "triple_shot")
	if len(bars) != 1 || bars[0].Width != 50 {
		t.Errorf("triple shot bars = %+v, want one of width 50", bars)
	}
}

func TestHUDLayout_Minimap(t *testing.T) {
	hud := NewHUDSystem(nil, 800, 600)
	state := baseState()
	state.Minimap.Enemies = []physics.Vector2D{{X: 10, Y: -20}, {X: -59, Y: 0}}

	els := hud.Layout(state)
	box := elementsNamed(els, "minimap")
	if len(box) != 1 {
		t.Fatalf("minimap boxes = %d, want 1", len(box))
	}
	if box[0].X != 660 || box[0].Y != 20 || box[0].Width != 120 {
		t.Errorf("minimap box = %+v, want 120px at (660, 20)", box[0])
	}

	player := elementsNamed(els, "minimap_player")
	if len(player) != 1 || player[0].X+player[0].Width/2 != 720 || player[0].Y+player[0].Height/2 != 80 {
		t.Errorf("player dot = %+v, want centred on (720, 80)", player)
	}

	dots := elementsNamed(els, "minimap_enemy")
	if len(dots) != 2 {
		t.Fatalf("enemy dots = %d, want 2", len(dots))
	}
	if cx := dots[0].X + dots[0].Width/2; cx != 730 {
		t.Errorf("first dot x = %v, want 730", cx)
	}
	if cy := dots[0].Y + dots[0].Height/2; cy != 60 {
		t.Errorf("first dot y = %v, want 60", cy)
	}

	hud.SetMinimapEnabled(false)
	if hud.IsMinimapEnabled() {
		t.Error("expected the minimap to be disabled")
	}
	if len(elementsNamed(hud.Layout(state), "minimap_enemy")) != 0 {
		t.Error("expected no minimap with the minimap disabled")
	}
}

func TestHUDLayout_Overlays(t *testing.T) {
	hud := NewHUDSystem(nil, 800, 600)

	state := baseState()
	els := hud.Layout(state)
	if len(elementsNamed(els, "damage_flash"))+len(elementsNamed(els, "game_over")) != 0 {
		t.Error("expected no overlays on a quiet frame")
	}

	state.DamageFlashAlpha = 0.4
	state.GameOver = true
	els = hud.Layout(state)

	flash := elementsNamed(els, "damage_flash")
	if len(flash) != 1 {
		t.Fatalf("flash overlays = %d, want 1", len(flash))
	}
	if flash[0].Width != 800 || flash[0].Height != 600 {
		t.Errorf("flash size = %vx%v, want full screen", flash[0].Width, flash[0].Height)
	}
	if c := flash[0].Color.(color.NRGBA); c.R != 255 || c.A != 102 {
		t.Errorf("flash colour = %v, want red at alpha 102", c)
	}
	if len(elementsNamed(els, "game_over")) != 1 {
		t.Error("expected a game over overlay")
	}
	if len(elementsNamed(els, "score"))+len(elementsNamed(els, "game_over_text")) != 0 {
		t.Error("expected no text without a font")
	}
}

func TestHUDSystem_ApplyReusesSprites(t *testing.T) {
	hud := NewHUDSystem(nil, 800, 600)

	state := baseState()
	state.GameOver = true
	hud.Apply(state)
	first := hud.pool.used

	hud.Apply(baseState())
	if hud.pool.used != first-1 {
		t.Errorf("sprites used = %d, want %d", hud.pool.used, first-1)
	}
	if len(hud.pool.items) != first {
		t.Errorf("pool size = %d, want %d", len(hud.pool.items), first)
	}
	if !hud.pool.items[first-1].Hidden {
		t.Error("expected the game over sprite to be hidden")
	}
}
