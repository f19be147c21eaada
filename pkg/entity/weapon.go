// pkg/entity/weapon.go
package entity

import (
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// Shot describes where and how a volley is fired.
type Shot struct {
	OwnerID  ID
	Owner    Faction
	Position physics.Vector2D
	// Angle is the aim in degrees.
	Angle     float64
	Inherited physics.Vector2D
}

// Weapon interface defines the methods all weapons must implement
type Weapon interface {
	GetName() string
	CreateProjectiles(shot Shot) []*Projectile
}

// BaseWeapon contains common functionality for all weapons
type BaseWeapon struct {
	Name   string
	Speed  float64
	Damage int
}

// GetName returns the weapon's name
func (w *BaseWeapon) GetName() string {
	return w.Name
}

func (w *BaseWeapon) projectile(shot Shot, angle float64) *Projectile {
	velocity := physics.FromDegrees(angle, w.Speed).Add(shot.Inherited)
	p := NewProjectile(shot.Position, velocity, shot.Owner, w.Damage)
	p.OwnerID = shot.OwnerID
	return p
}

// Blaster fires a single projectile along the aim.
type Blaster struct {
	BaseWeapon
}

// NewBlaster creates the default single-shot weapon
func NewBlaster(speed float64) *Blaster {
	return &Blaster{
		BaseWeapon: BaseWeapon{
			Name:   "blaster",
			Speed:  speed,
			Damage: DefaultProjectileDamage,
		},
	}
}

// CreateProjectiles fires one projectile
func (b *Blaster) CreateProjectiles(shot Shot) []*Projectile {
	return []*Projectile{b.projectile(shot, shot.Angle)}
}

// Spreader fires three projectiles fanned at -Spread, 0 and +Spread degrees.
type Spreader struct {
	BaseWeapon
	Spread float64
}

// NewSpreader creates the triple-shot weapon
func NewSpreader(speed, spread float64) *Spreader {
	return &Spreader{
		BaseWeapon: BaseWeapon{
			Name:   "triple_shot",
			Speed:  speed,
			Damage: DefaultProjectileDamage,
		},
		Spread: spread,
	}
}

// CreateProjectiles fires the three-projectile fan
func (s *Spreader) CreateProjectiles(shot Shot) []*Projectile {
	projectiles := make([]*Projectile, 0, 3)
	for _, offset := range []float64{-s.Spread, 0, s.Spread} {
		projectiles = append(projectiles, s.projectile(shot, shot.Angle+offset))
	}
	return projectiles
}
