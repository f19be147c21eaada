// pkg/entity/projectile.go
package entity

import (
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

const (
	DefaultProjectileLifetime = 300
	DefaultProjectileDamage   = 10
	DefaultProjectileLength   = 10
)

// Projectile represents a weapon projectile in the game. It moves at
// constant velocity until its lifetime runs out.
type Projectile struct {
	BaseEntity
	Owner    Faction
	OwnerID  ID
	Damage   int
	Lifetime int
	// Length is the drawn streak length. It has no effect on hits.
	Length float64
}

// NewProjectile creates a projectile with the default lifetime. A
// non-positive damage falls back to DefaultProjectileDamage.
func NewProjectile(position, velocity physics.Vector2D, owner Faction, damage int) *Projectile {
	if damage <= 0 {
		damage = DefaultProjectileDamage
	}
	return &Projectile{
		BaseEntity: BaseEntity{
			ID: GenerateID(),
			Body: physics.Body{
				Position:     position,
				Velocity:     velocity,
				Deceleration: 1,
				MaxSpeed:     velocity.Length(),
			},
			Angle: physics.Degrees(velocity.Angle()),
		},
		Owner:    owner,
		Damage:   damage,
		Lifetime: DefaultProjectileLifetime,
		Length:   DefaultProjectileLength,
	}
}

// GetKind returns KindProjectile
func (p *Projectile) GetKind() Kind {
	return KindProjectile
}

// GetCollider returns a zero-radius circle: projectiles hit as points.
func (p *Projectile) GetCollider() physics.Circle {
	return physics.Circle{Center: p.Position}
}

// Alive reports whether the projectile still has lifetime left
func (p *Projectile) Alive() bool {
	return p.Lifetime > 0
}

// Expire ends the projectile immediately, e.g. after a hit.
func (p *Projectile) Expire() {
	p.Lifetime = 0
}

// Update moves the projectile and counts down its lifetime. It reports
// whether the projectile is still alive. Expired projectiles do not move.
func (p *Projectile) Update() bool {
	if !p.Alive() {
		return false
	}
	p.Position = p.Position.Add(p.Velocity)
	p.Lifetime--
	return p.Alive()
}

// Tick implements Updatable
func (p *Projectile) Tick(Frame) bool {
	return p.Update()
}

// Tail returns the far end of the drawn streak.
func (p *Projectile) Tail() physics.Vector2D {
	return p.Position.Sub(p.Velocity.Normalize().Scale(p.Length))
}

// Render implements Drawable
func (p *Projectile) Render(r Renderer, camera physics.Vector2D) {
	r.RenderProjectile(p, camera)
}
