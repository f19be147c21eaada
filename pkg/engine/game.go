// pkg/engine/game.go
package engine

import (
	"context"
	"math/rand/v2"

	"github.com/opd-ai/go-spacewarriors/pkg/config"
	"github.com/opd-ai/go-spacewarriors/pkg/entity"
	"github.com/opd-ai/go-spacewarriors/pkg/event"
	"github.com/opd-ai/go-spacewarriors/pkg/logging"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
	"github.com/opd-ai/go-spacewarriors/pkg/telemetry"
)

// GameStatus is the coarse state of a session
type GameStatus int

const (
	GameStatusActive GameStatus = iota
	GameStatusOver
)

func (s GameStatus) String() string {
	if s == GameStatusOver {
		return "game_over"
	}
	return "active"
}

// Controls is the input sampled for one frame. Fire and Restart are edge
// triggered: set them only on the frame the key went down.
type Controls struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    bool
	Reverse   bool
	Fire      bool
	Restart   bool
	Quit      bool
}

// Game owns every entity collection and runs the per-frame pipeline around
// the entity state machines. It is not safe for concurrent use.
type Game struct {
	Config      *config.GameConfig
	Player      *entity.PlayerShip
	Enemies     []*entity.Enemy
	Projectiles []*entity.Projectile
	Powerups    []*entity.Powerup
	Stars       []*entity.Star

	Status      GameStatus
	Score       int
	Frame       uint64
	DamageFlash int
	Camera      physics.Vector2D
	EventBus    *event.Bus

	enemyTimer   int
	powerupTimer int

	rng     *rand.Rand
	logger  *logging.Logger
	metrics *telemetry.Metrics
	index   *physics.QuadTree[int]
}

// Option customises a Game at construction
type Option func(*Game)

// WithRand sets the random source used for spawning and enemy fire.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logging.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithMetrics sets the telemetry sink. The default records nothing.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(g *Game) { g.metrics = m }
}

// WithEventBus shares an existing bus instead of creating one.
func WithEventBus(b *event.Bus) Option {
	return func(g *Game) { g.EventBus = b }
}

// NewGame creates a game in its initial state. A nil cfg uses defaults, and
// so does a cfg that fails validation, after logging why.
func NewGame(cfg *config.GameConfig, opts ...Option) *Game {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	g := &Game{Config: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.logger == nil {
		g.logger = logging.Discard()
	}
	if g.EventBus == nil {
		g.EventBus = event.NewEventBus()
	}
	if err := g.Config.Validate(); err != nil {
		g.logger.Warn(context.Background(), "invalid configuration, using defaults", "error", err)
		g.Config = config.DefaultConfig()
	}
	g.index = physics.NewQuadTree[int](physics.Rect{}, 8)

	g.Stars = g.generateStars()
	g.reset()
	g.recordPopulation()
	return g
}

// reset puts every per-session field back to its starting value. Stars
// survive restarts.
func (g *Game) reset() {
	g.Player = entity.NewPlayerShip(g.Config.PlayerStart(), g.Config.PlayerStats())
	g.Enemies = nil
	g.Projectiles = nil
	g.Powerups = nil
	g.Status = GameStatusActive
	g.Score = 0
	g.DamageFlash = 0
	g.enemyTimer = 0
	g.powerupTimer = 0
	g.updateCamera()
}

// Restart begins a new session.
func (g *Game) Restart(ctx context.Context) {
	g.reset()
	g.recordPopulation()
	g.logger.Info(ctx, "game restarted")
	g.EventBus.Publish(event.NewGameEvent(event.GameRestarted, g, g.Frame, 0))
}

// IsOver reports whether the player has been destroyed.
func (g *Game) IsOver() bool {
	return g.Status == GameStatusOver
}

// Update advances the world by one frame. The player moves first and every
// enemy steers toward the player's updated position in the same frame.
func (g *Game) Update(ctx context.Context, in Controls) {
	g.Frame++
	ctx = logging.WithFrame(ctx, g.Frame)
	g.metrics.FrameAdvanced(ctx)

	if g.DamageFlash > 0 {
		g.DamageFlash--
	}

	if g.Status == GameStatusOver {
		if in.Restart {
			g.Restart(ctx)
		}
		return
	}

	if in.Fire {
		g.Fire(ctx)
	}
	g.applyControls(in)

	if g.Player.Update() {
		g.EventBus.Publish(event.NewGameEvent(event.TripleShotExpired, g, g.Frame, g.Score))
	}

	g.tickSpawners(ctx)

	frame := entity.Frame{Number: g.Frame, PlayerPosition: g.Player.Position}
	g.Enemies = advance(g.Enemies, frame)
	g.enemiesShoot(ctx)
	g.Projectiles = advance(g.Projectiles, frame)

	g.resolveCollisions(ctx)
	g.updateCamera()
	g.recordPopulation()
}

func (g *Game) applyControls(in Controls) {
	turn := g.Config.Player.TurnRate
	thrust := g.Config.Player.Thrust

	if in.TurnLeft {
		g.Player.Rotate(-turn)
	}
	if in.TurnRight {
		g.Player.Rotate(turn)
	}
	if in.Thrust {
		g.Player.Accelerate(thrust)
	}
	if in.Reverse {
		g.Player.Accelerate(-thrust)
	}
}

// Fire launches one volley from the player's active weapon.
func (g *Game) Fire(ctx context.Context) []*entity.Projectile {
	if g.Status != GameStatusActive {
		return nil
	}
	shots := g.Player.Fire()
	g.Projectiles = append(g.Projectiles, shots...)
	g.metrics.ProjectilesFired(ctx, entity.FactionPlayer.String(), len(shots))
	for _, p := range shots {
		g.EventBus.Publish(event.NewEntityEvent(event.ProjectileFired, g, uint64(p.ID), entity.FactionPlayer.String(), p.Position.X, p.Position.Y))
	}
	return shots
}

func (g *Game) enemiesShoot(ctx context.Context) {
	odds := g.Config.Enemy.ShootOdds
	for _, e := range g.Enemies {
		if g.rng.IntN(odds) != 0 {
			continue
		}
		p := e.Shoot(g.Player.Position)
		if p == nil {
			continue
		}
		g.Projectiles = append(g.Projectiles, p)
		g.metrics.ProjectilesFired(ctx, entity.FactionEnemy.String(), 1)
		g.EventBus.Publish(event.NewEntityEvent(event.ProjectileFired, g, uint64(p.ID), entity.FactionEnemy.String(), p.Position.X, p.Position.Y))
	}
}

func (g *Game) updateCamera() {
	half := physics.Vector2D{X: float64(g.Config.Display.Width) / 2, Y: float64(g.Config.Display.Height) / 2}
	g.Camera = g.Player.Position.Sub(half)
}

// Render draws the world back to front, then the HUD when r supports it.
func (g *Game) Render(r entity.Renderer) {
	r.Clear()
	for _, s := range g.Stars {
		s.Render(r, g.Camera)
	}
	for _, e := range g.Enemies {
		e.Render(r, g.Camera)
	}
	g.Player.Render(r, g.Camera)
	for _, p := range g.Projectiles {
		p.Render(r, g.Camera)
	}
	for _, p := range g.Powerups {
		p.Render(r, g.Camera)
	}
	if hud, ok := r.(HUDRenderer); ok {
		hud.RenderHUD(g.HUD())
	}
	r.Present()
}

// Population counts live entities by kind.
func (g *Game) Population() map[string]int {
	return map[string]int{
		entity.KindEnemy.String():      len(g.Enemies),
		entity.KindProjectile.String(): len(g.Projectiles),
		entity.KindPowerup.String():    len(g.Powerups),
		entity.KindStar.String():       len(g.Stars),
	}
}

// recordPopulation hands the frame's entity counts to the metrics gauge,
// which is read from another goroutine.
func (g *Game) recordPopulation() {
	if g.metrics == nil {
		return
	}
	g.metrics.RecordPopulation(g.Population())
}

// advance ticks every item once and keeps those still alive, in order.
func advance[T entity.Updatable](items []T, f entity.Frame) []T {
	kept := items[:0]
	for _, item := range items {
		if item.Tick(f) {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
