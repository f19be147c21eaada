// Package telemetry records game activity as OpenTelemetry metrics. Without a
// configured global MeterProvider every instrument is a no-op.
package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/opd-ai/go-spacewarriors/pkg/telemetry"

// Metrics holds the game's instruments. A nil *Metrics is valid and records nothing.
type Metrics struct {
	frames     metric.Int64Counter
	shots      metric.Int64Counter
	spawned    metric.Int64Counter
	destroyed  metric.Int64Counter
	damage     metric.Int64Counter
	powerups   metric.Int64Counter
	gamesEnded metric.Int64Counter
	entities   metric.Int64ObservableGauge

	// population is the last snapshot handed over by the game loop. The
	// gauge callback runs on the reader's goroutine and only reads this copy.
	mu         sync.RWMutex
	population map[string]int
}

// New creates the instruments on m. A nil meter uses the global provider.
func New(m metric.Meter) (*Metrics, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}

	t := &Metrics{}
	var err error

	counters := []struct {
		dst         *metric.Int64Counter
		name        string
		description string
	}{
		{&t.frames, "game.frames", "Simulation frames advanced"},
		{&t.shots, "game.projectiles.fired", "Projectiles fired"},
		{&t.spawned, "game.enemies.spawned", "Enemies spawned"},
		{&t.destroyed, "game.enemies.destroyed", "Enemies destroyed by the player"},
		{&t.damage, "game.damage.dealt", "Damage applied to ships"},
		{&t.powerups, "game.powerups.collected", "Powerups collected"},
		{&t.gamesEnded, "game.sessions.ended", "Games that reached game over"},
	}
	for _, c := range counters {
		*c.dst, err = m.Int64Counter(c.name, metric.WithDescription(c.description))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", c.name, err)
		}
	}

	t.entities, err = m.Int64ObservableGauge(
		"game.entities.active",
		metric.WithDescription("Entities alive in the world"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating entities gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			t.mu.RLock()
			defer t.mu.RUnlock()
			for kind, n := range t.population {
				o.ObserveInt64(t.entities, int64(n),
					metric.WithAttributes(attribute.String("kind", kind)))
			}
			return nil
		},
		t.entities,
	)
	if err != nil {
		return nil, fmt.Errorf("registering entities callback: %w", err)
	}

	return t, nil
}

// RecordPopulation stores a copy of the live entity counts for the
// entities gauge. Call it from the game loop once per frame.
func (t *Metrics) RecordPopulation(counts map[string]int) {
	if t == nil {
		return
	}
	snapshot := make(map[string]int, len(counts))
	for kind, n := range counts {
		snapshot[kind] = n
	}
	t.mu.Lock()
	t.population = snapshot
	t.mu.Unlock()
}

// FrameAdvanced counts one simulation frame.
func (t *Metrics) FrameAdvanced(ctx context.Context) {
	if t == nil {
		return
	}
	t.frames.Add(ctx, 1)
}

// ProjectilesFired counts n projectiles fired by faction.
func (t *Metrics) ProjectilesFired(ctx context.Context, faction string, n int) {
	if t == nil || n <= 0 {
		return
	}
	t.shots.Add(ctx, int64(n), metric.WithAttributes(attribute.String("faction", faction)))
}

// EnemySpawned counts one spawned enemy.
func (t *Metrics) EnemySpawned(ctx context.Context) {
	if t == nil {
		return
	}
	t.spawned.Add(ctx, 1)
}

// EnemyDestroyed counts one enemy kill.
func (t *Metrics) EnemyDestroyed(ctx context.Context) {
	if t == nil {
		return
	}
	t.destroyed.Add(ctx, 1)
}

// DamageDealt adds amount to the damage total for the target kind.
func (t *Metrics) DamageDealt(ctx context.Context, target string, amount int) {
	if t == nil || amount <= 0 {
		return
	}
	t.damage.Add(ctx, int64(amount), metric.WithAttributes(attribute.String("target", target)))
}

// PowerupCollected counts one collected powerup of the given type.
func (t *Metrics) PowerupCollected(ctx context.Context, powerupType string) {
	if t == nil {
		return
	}
	t.powerups.Add(ctx, 1, metric.WithAttributes(attribute.String("type", powerupType)))
}

// GameEnded counts one game over.
func (t *Metrics) GameEnded(ctx context.Context) {
	if t == nil {
		return
	}
	t.gamesEnded.Add(ctx, 1)
}
