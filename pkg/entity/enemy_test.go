// pkg/entity/enemy_test.go
package entity

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

func newTestEnemy(position physics.Vector2D, seed uint64) *Enemy {
	return NewEnemy(position, physics.Vector2D{X: 20, Y: 12}, 30, DefaultEnemyStats(), rand.New(rand.NewPCG(seed, seed+1)))
}

func TestEnemyDamage(t *testing.T) {
	tests := []struct {
		name     string
		size     physics.Vector2D
		expected int
	}{
		{"base_size", physics.Vector2D{X: 20, Y: 12}, 8},
		{"small_size_floors", physics.Vector2D{X: 14, Y: 8.4}, 5},
		{"large_size", physics.Vector2D{X: 30, Y: 18}, 12},
		{"tiny_size", physics.Vector2D{X: 1, Y: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnemyDamage(tt.size); got != tt.expected {
				t.Errorf("EnemyDamage(%v) = %d, want %d", tt.size, got, tt.expected)
			}
			e := NewEnemy(physics.Vector2D{}, tt.size, 30, DefaultEnemyStats(), nil)
			if e.Damage != tt.expected {
				t.Errorf("NewEnemy damage = %d, want %d", e.Damage, tt.expected)
			}
		})
	}
}

func TestEnemy_CanSeePlayer(t *testing.T) {
	e := newTestEnemy(physics.Vector2D{X: 100, Y: 100}, 1)

	tests := []struct {
		name     string
		player   physics.Vector2D
		expected bool
	}{
		{"at_vision_range", physics.Vector2D{X: 900, Y: 100}, true},
		{"one_past_vision_range", physics.Vector2D{X: 901, Y: 100}, false},
		{"close", physics.Vector2D{X: 150, Y: 150}, true},
		{"same_position", physics.Vector2D{X: 100, Y: 100}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.CanSeePlayer(tt.player); got != tt.expected {
				t.Errorf("CanSeePlayer(%v) = %v, want %v", tt.player, got, tt.expected)
			}
		})
	}
}

func TestEnemy_UpdateDriftsTowardPlayerOutsideVision(t *testing.T) {
	e := newTestEnemy(physics.Vector2D{}, 1)
	player := physics.Vector2D{X: 5000, Y: 0}

	e.Update(player)

	// 0.03 toward the player, then friction 0.95.
	if math.Abs(e.Velocity.X-0.0285) > epsilon || e.Velocity.Y != 0 {
		t.Errorf("Velocity = %v, want {0.0285 0}", e.Velocity)
	}
	if math.Abs(e.Position.X-0.0285) > epsilon {
		t.Errorf("Position = %v", e.Position)
	}
	if e.Angle != 0 {
		t.Errorf("Angle = %v, want 0 when moving along +X", e.Angle)
	}
}

func TestEnemy_SpeedNeverExceedsMax(t *testing.T) {
	e := newTestEnemy(physics.Vector2D{}, 1)
	player := physics.Vector2D{X: 3000, Y: -2000}
	for i := 0; i < 2000; i++ {
		e.Update(player)
		if e.Speed() > e.Stats.MaxSpeed+epsilon {
			t.Fatalf("frame %d: speed %v exceeds %v", i, e.Speed(), e.Stats.MaxSpeed)
		}
	}
}

func TestEnemy_UpdateOnTopOfPlayerDecays(t *testing.T) {
	e := newTestEnemy(physics.Vector2D{X: 10, Y: 10}, 1)
	e.Velocity = physics.Vector2D{X: 1, Y: 0}

	prev := e.Speed()
	for i := 0; i < 500; i++ {
		// Keep the player on the enemy so steering is zero-guarded.
		e.Update(e.Position)
		if math.IsNaN(e.Velocity.X) || math.IsNaN(e.Velocity.Y) {
			t.Fatal("velocity became NaN")
		}
		if e.Speed() > prev+epsilon {
			t.Fatalf("speed increased from %v to %v", prev, e.Speed())
		}
		prev = e.Speed()
	}
	if !e.Velocity.IsZero() {
		t.Errorf("velocity = %v, want zero", e.Velocity)
	}
}

func TestEnemy_Shoot(t *testing.T) {
	t.Run("out_of_range_returns_nil", func(t *testing.T) {
		e := newTestEnemy(physics.Vector2D{}, 1)
		if p := e.Shoot(physics.Vector2D{X: 801}); p != nil {
			t.Error("expected no projectile out of range")
		}
	})

	t.Run("target_on_enemy_returns_nil", func(t *testing.T) {
		e := newTestEnemy(physics.Vector2D{X: 5, Y: 5}, 1)
		if p := e.Shoot(physics.Vector2D{X: 5, Y: 5}); p != nil {
			t.Error("expected no projectile for zero direction")
		}
	})

	t.Run("projectile_properties", func(t *testing.T) {
		e := newTestEnemy(physics.Vector2D{X: 10, Y: 20}, 1)
		p := e.Shoot(physics.Vector2D{X: 500, Y: 20})
		if p == nil {
			t.Fatal("expected projectile")
		}
		if p.Owner != FactionEnemy || p.OwnerID != e.ID {
			t.Errorf("owner = %v/%d", p.Owner, p.OwnerID)
		}
		if p.Damage != e.Damage {
			t.Errorf("damage = %d, want %d", p.Damage, e.Damage)
		}
		if p.Position != e.Position {
			t.Errorf("position = %v, want %v", p.Position, e.Position)
		}
		if math.Abs(p.Velocity.Length()-e.Stats.ProjectileSpeed) > epsilon {
			t.Errorf("speed = %v, want %v", p.Velocity.Length(), e.Stats.ProjectileSpeed)
		}
		if p.Lifetime != DefaultProjectileLifetime {
			t.Errorf("lifetime = %d", p.Lifetime)
		}
	})

	t.Run("tiny_enemy_shoots_zero_damage", func(t *testing.T) {
		e := NewEnemy(physics.Vector2D{}, physics.Vector2D{X: 1, Y: 1}, 1, DefaultEnemyStats(), rand.New(rand.NewPCG(1, 2)))
		if e.Damage != 0 {
			t.Fatalf("enemy damage = %d, want 0", e.Damage)
		}
		p := e.Shoot(physics.Vector2D{X: 100})
		if p == nil {
			t.Fatal("expected projectile")
		}
		if p.Damage != 0 {
			t.Errorf("damage = %d, want 0 not the projectile default", p.Damage)
		}
	})
}

func TestEnemy_ShootSpreadIsUniform(t *testing.T) {
	const shots = 1000
	const bins = 10

	e := newTestEnemy(physics.Vector2D{}, 42)
	target := physics.Vector2D{X: 400, Y: 0}

	var counts [bins]int
	sum := 0.0
	for i := 0; i < shots; i++ {
		p := e.Shoot(target)
		if p == nil {
			t.Fatalf("shot %d: nil projectile", i)
		}
		offset := p.Velocity.Angle()
		if offset < -0.5-epsilon || offset > 0.5+epsilon {
			t.Fatalf("shot %d: offset %v outside [-0.5, 0.5]", i, offset)
		}
		sum += offset
		bin := int((offset + 0.5) / (1.0 / bins))
		if bin == bins {
			bin--
		}
		counts[bin]++
	}

	if mean := sum / shots; math.Abs(mean) > 0.05 {
		t.Errorf("mean offset %v, want near 0", mean)
	}
	for i, c := range counts {
		if c < 50 || c > 150 {
			t.Errorf("bin %d has %d shots, want about %d", i, c, shots/bins)
		}
	}
}

func TestEnemy_ShootSpreadRelativeToDiagonalTarget(t *testing.T) {
	e := newTestEnemy(physics.Vector2D{X: 100, Y: 100}, 7)
	target := physics.Vector2D{X: 400, Y: 400}
	direct := target.Sub(e.Position).Angle()

	for i := 0; i < 200; i++ {
		p := e.Shoot(target)
		offset := math.Remainder(p.Velocity.Angle()-direct, 2*math.Pi)
		if math.Abs(offset) > 0.5+epsilon {
			t.Fatalf("offset %v outside spread", offset)
		}
	}
}

func TestNewEnemy_HealthFloor(t *testing.T) {
	e := NewEnemy(physics.Vector2D{}, physics.Vector2D{X: 20, Y: 12}, 0, DefaultEnemyStats(), nil)
	if e.Health != 1 || e.MaxHealth != 1 {
		t.Errorf("health = %d/%d, want 1/1", e.Health, e.MaxHealth)
	}
}
