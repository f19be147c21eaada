// pkg/entity/powerup.go
package entity

import (
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// PowerupType defines the effect granted on pickup
type PowerupType int

const (
	TripleShot PowerupType = iota
)

// DefaultPowerupSize is the pickup radius contributed by the powerup.
const DefaultPowerupSize = 12

func (t PowerupType) String() string {
	switch t {
	case TripleShot:
		return "triple_shot"
	default:
		return "unknown"
	}
}

// Powerup is a static collectible. The owner removes it once Collected.
type Powerup struct {
	BaseEntity
	Type      PowerupType
	Size      float64
	Collected bool
}

// NewPowerup creates an uncollected powerup
func NewPowerup(position physics.Vector2D, powerupType PowerupType) *Powerup {
	return &Powerup{
		BaseEntity: BaseEntity{
			ID:   GenerateID(),
			Body: physics.Body{Position: position},
		},
		Type: powerupType,
		Size: DefaultPowerupSize,
	}
}

// GetKind returns KindPowerup
func (p *Powerup) GetKind() Kind {
	return KindPowerup
}

// GetCollider returns the powerup's own pickup circle.
func (p *Powerup) GetCollider() physics.Circle {
	return physics.Circle{Center: p.Position, Radius: p.Size}
}

// CheckCollision reports whether a player of playerSize at playerPosition is
// close enough to pick this powerup up. It uses half the player's width as
// its radius and a strict comparison.
func (p *Powerup) CheckCollision(playerPosition, playerSize physics.Vector2D) bool {
	return p.Position.Distance(playerPosition) < p.Size+playerSize.X/2
}

// Apply grants the effect to player and marks the powerup collected.
// Applying an already collected powerup does nothing.
func (p *Powerup) Apply(player *PlayerShip) bool {
	if p.Collected {
		return false
	}
	switch p.Type {
	case TripleShot:
		player.ActivateTripleShot()
	default:
		return false
	}
	p.Collected = true
	return true
}

// Tick implements Updatable. Powerups do not move.
func (p *Powerup) Tick(Frame) bool {
	return !p.Collected
}

// Render implements Drawable
func (p *Powerup) Render(r Renderer, camera physics.Vector2D) {
	r.RenderPowerup(p, camera)
}
