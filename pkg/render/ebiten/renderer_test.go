package ebiten

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-spacewarriors/pkg/config"
	"github.com/opd-ai/go-spacewarriors/pkg/engine"
	"github.com/opd-ai/go-spacewarriors/pkg/entity"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

const epsilon = 1e-6

func quietGame(t *testing.T) *engine.Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Display.StarCount = 0
	cfg.Display.Width = 800
	cfg.Display.Height = 600
	cfg.Spawn.EnemyInterval = 1 << 30
	cfg.Spawn.PowerupInterval = 1 << 30
	cfg.Enemy.ShootOdds = 1 << 30
	return engine.NewGame(cfg, engine.WithRand(rand.New(rand.NewPCG(7, 8))))
}

func opsOfKind(ops []Op, kind OpKind) []Op {
	var out []Op
	for _, op := range ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func near(a, b physics.Vector2D) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestRenderer_DoubleBuffered(t *testing.T) {
	r := NewRenderer(800, 600)

	r.Clear()
	r.RenderStar(&entity.Star{BaseEntity: entity.BaseEntity{Body: physics.Body{Position: physics.Vector2D{X: 5, Y: 6}}}, Radius: 2}, physics.Vector2D{})
	if len(r.Ops()) != 0 {
		t.Fatal("expected nothing presented before Present")
	}
	r.Present()
	if len(r.Ops()) != 1 {
		t.Fatalf("ops = %d, want 1", len(r.Ops()))
	}

	r.Clear()
	if len(r.Ops()) != 1 {
		t.Error("Clear should not touch the presented frame")
	}
}

func TestRenderer_PlayerTriangle(t *testing.T) {
	g := quietGame(t)
	r := NewRenderer(800, 600)
	g.Render(r)

	polys := opsOfKind(r.Ops(), OpPolygon)
	if len(polys) < 1 {
		t.Fatal("expected the player polygon")
	}
	ship := polys[0]
	if len(ship.Points) != 3 {
		t.Fatalf("player points = %d, want 3", len(ship.Points))
	}

	want := []physics.Vector2D{{X: 415, Y: 300}, {X: 385, Y: 292.5}, {X: 385, Y: 307.5}}
	for i, p := range ship.Points {
		if !near(p, want[i]) {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
	if ship.Color != colorPlayer {
		t.Errorf("colour = %v, want player colour", ship.Color)
	}

	g.Player.ActivateTripleShot()
	g.Render(r)
	if opsOfKind(r.Ops(), OpPolygon)[0].Color != colorBoost {
		t.Error("expected the boosted colour with triple shot active")
	}
}

func TestRenderer_WorldEntities(t *testing.T) {
	g := quietGame(t)
	r := NewRenderer(800, 600)

	g.Enemies = append(g.Enemies, entity.NewEnemy(physics.Vector2D{X: 500, Y: 400}, physics.Vector2D{X: 20, Y: 12}, 10, g.Config.EnemyStats(), nil))
	shot := entity.NewProjectile(physics.Vector2D{X: 400, Y: 380}, physics.Vector2D{Y: -10}, entity.FactionPlayer, 5)
	g.Projectiles = append(g.Projectiles, shot)
	g.Powerups = append(g.Powerups, entity.NewPowerup(physics.Vector2D{X: 300, Y: 400}, entity.TripleShot))
	g.Render(r)

	polys := opsOfKind(r.Ops(), OpPolygon)
	if len(polys[0].Points) != 4 {
		t.Errorf("enemy points = %d, want 4", len(polys[0].Points))
	}
	var sum physics.Vector2D
	for _, p := range polys[0].Points {
		sum = sum.Add(p)
	}
	if c := sum.Scale(0.25); !near(c, physics.Vector2D{X: 500, Y: 300}) {
		t.Errorf("enemy centre = %v, want (500, 300)", c)
	}

	lines := opsOfKind(r.Ops(), OpLine)
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	if lines[0].X2 != 400 || lines[0].Y2 != 280 || lines[0].Color != colorPlayerShot {
		t.Errorf("shot line = %+v, want head at (400, 280) in the player colour", lines[0])
	}

	var powerup *Op
	for _, op := range opsOfKind(r.Ops(), OpCircle) {
		if op.Color == colorPowerup {
			powerup = &op
		}
	}
	if powerup == nil || powerup.X != 300 || powerup.Y != 300 || powerup.R != 12 {
		t.Errorf("powerup circle = %+v, want radius 12 at (300, 300)", powerup)
	}
}

func TestRenderer_HUD(t *testing.T) {
	r := NewRenderer(800, 600)
	state := engine.HUDState{
		Score:              250,
		Health:             40,
		MaxHealth:          100,
		TripleShotActive:   true,
		TripleShotFraction: 0.5,
		DamageFlashAlpha:   0.2,
		Minimap: engine.Minimap{
			Size:    120,
			Scale:   0.02,
			Enemies: []physics.Vector2D{{X: 10, Y: 10}},
		},
	}

	r.Clear()
	r.RenderHUD(state)
	r.Present()
	ops := r.Ops()

	rects := opsOfKind(ops, OpRect)
	if rects[1].W != 80 || rects[1].Color != colorBarFull {
		t.Errorf("health fill = %+v, want width 80", rects[1])
	}
	if rects[2].W != 100 || rects[2].Color != colorBoost {
		t.Errorf("triple shot bar = %+v, want width 100", rects[2])
	}
	flash := rects[len(rects)-1]
	if flash.W != 800 || flash.H != 600 {
		t.Errorf("flash = %+v, want full screen", flash)
	}
	if c := flash.Color.(color.NRGBA); c.A != 51 {
		t.Errorf("flash alpha = %d, want 51", c.A)
	}

	texts := opsOfKind(ops, OpText)
	if len(texts) != 1 || texts[0].Text != "SCORE 250  HP 40/100" {
		t.Errorf("texts = %+v", texts)
	}

	var dots []Op
	for _, op := range opsOfKind(ops, OpCircle) {
		if op.Color == colorEnemy {
			dots = append(dots, op)
		}
	}
	if len(dots) != 1 || dots[0].X != 730 || dots[0].Y != 90 {
		t.Errorf("minimap dots = %+v, want one at (730, 90)", dots)
	}
}

func TestRenderer_GameOver(t *testing.T) {
	r := NewRenderer(800, 600)

	r.Clear()
	r.RenderHUD(engine.HUDState{Score: 75, GameOver: true, MaxHealth: 100})
	r.Present()

	var got []string
	for _, op := range opsOfKind(r.Ops(), OpText) {
		got = append(got, op.Text)
	}
	want := []string{"SCORE 75  HP 0/100", "GAME OVER", "Final score: 75", "Press R to restart"}
	if len(got) != len(want) {
		t.Fatalf("texts = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("text %d = %q, want %q", i, got[i], want[i])
		}
	}
	for _, op := range opsOfKind(r.Ops(), OpRect) {
		if op.Color == colorBarFull {
			t.Error("expected no health fill at zero health")
		}
	}
}
