// pkg/entity/player.go
package entity

import (
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// PlayerStats contains the tunables of the player ship
type PlayerStats struct {
	MaxSpeed            float64
	Deceleration        float64
	MaxAngularVelocity  float64
	AngularDeceleration float64
	AngularAcceleration float64
	ShotSpeed           float64
	MaxHealth           int
	TripleShotDuration  int
	// TripleShotSpread is the fan half-angle in degrees.
	TripleShotSpread float64
	Size             physics.Vector2D
}

// DefaultPlayerStats returns the stock ship.
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		MaxSpeed:            8,
		Deceleration:        0.98,
		MaxAngularVelocity:  4,
		AngularDeceleration: 0.92,
		AngularAcceleration: 0.3,
		ShotSpeed:           25,
		MaxHealth:           100,
		TripleShotDuration:  600,
		TripleShotSpread:    20,
		Size:                physics.Vector2D{X: 30, Y: 15},
	}
}

// PlayerShip is the player-controlled ship.
type PlayerShip struct {
	BaseEntity
	Vitals
	Stats           PlayerStats
	AngularVelocity float64
	// Size is the collision box. It never changes with the sprite.
	Size             physics.Vector2D
	TripleShotActive bool
	TripleShotTimer  int

	single Weapon
	triple Weapon
}

// NewPlayerShip creates a ship at rest at position, facing +X.
func NewPlayerShip(position physics.Vector2D, stats PlayerStats) *PlayerShip {
	return &PlayerShip{
		BaseEntity: BaseEntity{
			ID: GenerateID(),
			Body: physics.Body{
				Position:     position,
				Deceleration: stats.Deceleration,
				MaxSpeed:     stats.MaxSpeed,
			},
		},
		Vitals: Vitals{Health: stats.MaxHealth, MaxHealth: stats.MaxHealth},
		Stats:  stats,
		Size:   stats.Size,
		single: NewBlaster(stats.ShotSpeed),
		triple: NewSpreader(stats.ShotSpeed, stats.TripleShotSpread),
	}
}

// GetKind returns KindPlayer
func (p *PlayerShip) GetKind() Kind {
	return KindPlayer
}

// GetCollider returns the circle enemy projectiles are tested against.
func (p *PlayerShip) GetCollider() physics.Circle {
	return physics.Circle{Center: p.Position, Radius: p.Size.X}
}

// Rotate adds angular acceleration scaled by delta. Call once per frame per
// held turn input.
func (p *PlayerShip) Rotate(delta float64) {
	p.AngularVelocity = physics.ClampSymmetric(
		p.AngularVelocity+delta*p.Stats.AngularAcceleration,
		p.Stats.MaxAngularVelocity,
	)
}

// Accelerate pushes the ship along its current facing.
func (p *PlayerShip) Accelerate(thrust float64) {
	p.Push(physics.FromDegrees(p.Angle, thrust))
}

// Update advances the ship one frame. It reports whether the triple shot
// expired during this frame.
func (p *PlayerShip) Update() (tripleShotExpired bool) {
	p.Integrate()
	p.AngularVelocity = physics.DampAngular(p.AngularVelocity, p.Stats.AngularDeceleration)
	p.Angle += p.AngularVelocity

	if p.TripleShotActive {
		p.TripleShotTimer--
		if p.TripleShotTimer <= 0 {
			p.DeactivateTripleShot()
			return true
		}
	}
	return false
}

// Tick implements Updatable
func (p *PlayerShip) Tick(Frame) bool {
	p.Update()
	return true
}

// ActivateTripleShot turns the triple shot on and resets its timer.
func (p *PlayerShip) ActivateTripleShot() {
	p.TripleShotActive = true
	p.TripleShotTimer = p.Stats.TripleShotDuration
}

// DeactivateTripleShot turns the triple shot off.
func (p *PlayerShip) DeactivateTripleShot() {
	p.TripleShotActive = false
	p.TripleShotTimer = 0
}

// Weapon returns the weapon the next Fire call will use.
func (p *PlayerShip) Weapon() Weapon {
	if p.TripleShotActive {
		return p.triple
	}
	return p.single
}

// MuzzlePosition is where fired projectiles appear.
func (p *PlayerShip) MuzzlePosition() physics.Vector2D {
	return p.Position.Add(p.Heading().Scale(p.Size.X/4 + 2))
}

// Fire creates one volley from the active weapon. Projectiles inherit the
// ship's velocity.
func (p *PlayerShip) Fire() []*Projectile {
	return p.Weapon().CreateProjectiles(Shot{
		OwnerID:   p.ID,
		Owner:     FactionPlayer,
		Position:  p.MuzzlePosition(),
		Angle:     p.Angle,
		Inherited: p.Velocity,
	})
}

// Render implements Drawable
func (p *PlayerShip) Render(r Renderer, camera physics.Vector2D) {
	r.RenderPlayer(p, camera)
}
