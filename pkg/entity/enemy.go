// pkg/entity/enemy.go
package entity

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// EnemyStats contains the tunables shared by all enemies
type EnemyStats struct {
	MaxSpeed        float64
	Deceleration    float64
	Acceleration    float64
	VisionRange     float64
	ProjectileSpeed float64
	// MaxSpread is the largest aim error in radians, either side.
	MaxSpread float64
}

// DefaultEnemyStats returns the stock enemy tunables.
func DefaultEnemyStats() EnemyStats {
	return EnemyStats{
		MaxSpeed:        2,
		Deceleration:    0.95,
		Acceleration:    0.03,
		VisionRange:     800,
		ProjectileSpeed: 8,
		MaxSpread:       0.5,
	}
}

// EnemyDamage derives the projectile damage of an enemy from its size.
func EnemyDamage(size physics.Vector2D) int {
	return int(math.Floor(8 * (size.X + size.Y) / 32))
}

// Enemy drifts toward the player every frame and fires when the player is
// within vision range. Pursuit is derived from positions, never stored.
type Enemy struct {
	BaseEntity
	Vitals
	Stats  EnemyStats
	Size   physics.Vector2D
	Damage int

	rng *rand.Rand
}

// NewEnemy creates an enemy at rest. rng drives the aim spread; nil uses a
// randomly seeded source.
func NewEnemy(position, size physics.Vector2D, health int, stats EnemyStats, rng *rand.Rand) *Enemy {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if health < 1 {
		health = 1
	}
	return &Enemy{
		BaseEntity: BaseEntity{
			ID: GenerateID(),
			Body: physics.Body{
				Position:     position,
				Deceleration: stats.Deceleration,
				MaxSpeed:     stats.MaxSpeed,
			},
		},
		Vitals: Vitals{Health: health, MaxHealth: health},
		Stats:  stats,
		Size:   size,
		Damage: EnemyDamage(size),
		rng:    rng,
	}
}

// GetKind returns KindEnemy
func (e *Enemy) GetKind() Kind {
	return KindEnemy
}

// GetCollider returns the circle player projectiles are tested against.
func (e *Enemy) GetCollider() physics.Circle {
	return physics.Circle{Center: e.Position, Radius: e.Size.X}
}

// Update steers toward the player regardless of distance, then runs the
// friction and speed clamp pipeline. The enemy turns to face its motion.
func (e *Enemy) Update(playerPosition physics.Vector2D) {
	direction := playerPosition.Sub(e.Position).Normalize()
	e.Velocity = e.Velocity.Add(direction.Scale(e.Stats.Acceleration))
	e.Integrate()

	if !e.Velocity.IsZero() {
		e.Angle = physics.Degrees(e.Velocity.Angle())
	}
}

// Tick implements Updatable. Enemies are removed by their owner once destroyed.
func (e *Enemy) Tick(f Frame) bool {
	e.Update(f.PlayerPosition)
	return !e.IsDestroyed()
}

// CanSeePlayer reports whether the player is within vision range (inclusive).
func (e *Enemy) CanSeePlayer(playerPosition physics.Vector2D) bool {
	return e.Position.Distance(playerPosition) <= e.Stats.VisionRange
}

// Shoot fires one projectile at target with a random aim error. It returns
// nil when the target is out of sight or exactly on top of the enemy.
func (e *Enemy) Shoot(target physics.Vector2D) *Projectile {
	if !e.CanSeePlayer(target) {
		return nil
	}
	direction := target.Sub(e.Position).Normalize()
	if direction.IsZero() {
		return nil
	}

	spread := (e.rng.Float64()*2 - 1) * e.Stats.MaxSpread
	velocity := direction.Rotate(spread).Scale(e.Stats.ProjectileSpeed)

	p := NewProjectile(e.Position, velocity, FactionEnemy, e.Damage)
	p.OwnerID = e.ID
	// NewProjectile turns zero damage into the default; tiny enemies deal 0.
	p.Damage = e.Damage
	return p
}

// Render implements Drawable
func (e *Enemy) Render(r Renderer, camera physics.Vector2D) {
	r.RenderEnemy(e, camera)
}
