// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

var lastID atomic.Uint64

// GenerateID returns a process-unique, non-zero entity ID.
func GenerateID() ID {
	return ID(lastID.Add(1))
}

// Faction identifies which side fired a projectile.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Kind tags the concrete entity variant for renderers and logs.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindPowerup
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindPowerup:
		return "powerup"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Entity is the base interface for all game objects
type Entity interface {
	GetID() ID
	GetKind() Kind
	GetPosition() physics.Vector2D
	GetAngle() float64
}

// Frame carries the read-only world state an entity may consult while ticking.
type Frame struct {
	Number         uint64
	PlayerPosition physics.Vector2D
}

// Updatable entities advance by exactly one fixed frame per Tick. Tick
// returns false once the entity should be removed by its owner.
type Updatable interface {
	Entity
	Tick(f Frame) bool
}

// Drawable entities render themselves relative to a camera offset.
type Drawable interface {
	Render(r Renderer, camera physics.Vector2D)
}

// Collidable entities expose the shape used for hit tests.
type Collidable interface {
	Entity
	GetCollider() physics.Circle
}

// Damageable entities carry clamped health.
type Damageable interface {
	TakeDamage(amount int)
	GetHealth() int
	IsDestroyed() bool
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID ID
	physics.Body
	// Angle is the facing in degrees, 0 pointing along +X.
	Angle float64
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// GetAngle returns the facing angle in degrees
func (e *BaseEntity) GetAngle() float64 {
	return e.Angle
}

// Heading returns the unit vector of the current facing.
func (e *BaseEntity) Heading() physics.Vector2D {
	return physics.FromDegrees(e.Angle, 1)
}

// Vitals holds health clamped to [0, MaxHealth].
type Vitals struct {
	Health    int
	MaxHealth int
}

// TakeDamage subtracts amount and clamps the result to [0, MaxHealth].
func (v *Vitals) TakeDamage(amount int) {
	v.Health -= amount
	if v.Health < 0 {
		v.Health = 0
	}
	if v.Health > v.MaxHealth {
		v.Health = v.MaxHealth
	}
}

// GetHealth returns the current health
func (v *Vitals) GetHealth() int {
	return v.Health
}

// IsDestroyed reports whether health has reached zero
func (v *Vitals) IsDestroyed() bool {
	return v.Health <= 0
}

// HealthFraction returns health as a fraction of MaxHealth in [0, 1].
func (v *Vitals) HealthFraction() float64 {
	if v.MaxHealth <= 0 {
		return 0
	}
	return float64(v.Health) / float64(v.MaxHealth)
}
