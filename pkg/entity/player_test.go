// pkg/entity/player_test.go
package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

const epsilon = 1e-9

func newTestPlayer() *PlayerShip {
	return NewPlayerShip(physics.Vector2D{X: 400, Y: 400}, DefaultPlayerStats())
}

func TestNewPlayerShip(t *testing.T) {
	p := newTestPlayer()

	if p.Health != 100 || p.MaxHealth != 100 {
		t.Errorf("health = %d/%d, want 100/100", p.Health, p.MaxHealth)
	}
	if !p.Velocity.IsZero() || p.Angle != 0 || p.AngularVelocity != 0 {
		t.Error("new ship should be at rest facing +X")
	}
	if p.Size != (physics.Vector2D{X: 30, Y: 15}) {
		t.Errorf("size = %v", p.Size)
	}
	if p.TripleShotActive {
		t.Error("triple shot should start inactive")
	}
}

func TestPlayerShip_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		deltas   []float64
		expected float64
	}{
		{"single_left", []float64{-3}, -0.9},
		{"single_right", []float64{3}, 0.9},
		{"clamped_right", []float64{3, 3, 3, 3, 3, 3}, 4},
		{"clamped_left", []float64{-3, -3, -3, -3, -3, -3}, -4},
		{"opposing_cancel", []float64{3, -3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			for _, d := range tt.deltas {
				p.Rotate(d)
				if math.Abs(p.AngularVelocity) > p.Stats.MaxAngularVelocity {
					t.Fatalf("angular velocity %v exceeds max", p.AngularVelocity)
				}
			}
			if math.Abs(p.AngularVelocity-tt.expected) > epsilon {
				t.Errorf("AngularVelocity = %v, want %v", p.AngularVelocity, tt.expected)
			}
		})
	}
}

func TestPlayerShip_UpdateTurnsByAngularVelocity(t *testing.T) {
	p := newTestPlayer()
	p.Rotate(3)
	p.Update()

	// 0.9 damped by 0.92 before being applied to the angle.
	if math.Abs(p.AngularVelocity-0.828) > epsilon {
		t.Errorf("AngularVelocity = %v, want 0.828", p.AngularVelocity)
	}
	if math.Abs(p.Angle-0.828) > epsilon {
		t.Errorf("Angle = %v, want 0.828", p.Angle)
	}
}

func TestPlayerShip_AccelerateAlongFacing(t *testing.T) {
	p := newTestPlayer()
	p.Angle = 90
	p.Accelerate(0.2)

	if math.Abs(p.Velocity.X) > epsilon || math.Abs(p.Velocity.Y-0.2) > epsilon {
		t.Errorf("Velocity = %v, want {0 0.2}", p.Velocity)
	}

	p.Accelerate(-0.2)
	if p.Speed() > epsilon {
		t.Errorf("reverse thrust should cancel, speed %v", p.Speed())
	}
}

func TestPlayerShip_SpeedNeverExceedsMax(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 500; i++ {
		p.Rotate(3)
		p.Accelerate(0.2)
		if p.Speed() > p.Stats.MaxSpeed+epsilon {
			t.Fatalf("frame %d: speed %v after Accelerate", i, p.Speed())
		}
		p.Update()
		if p.Speed() > p.Stats.MaxSpeed+epsilon {
			t.Fatalf("frame %d: speed %v after Update", i, p.Speed())
		}
	}
}

func TestPlayerShip_VelocityDecaysToZero(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 100; i++ {
		p.Accelerate(0.2)
	}

	prev := p.Speed()
	for frame := 1; frame <= 1000; frame++ {
		p.Update()
		if p.Speed() > prev {
			t.Fatalf("frame %d: speed rose from %v to %v", frame, prev, p.Speed())
		}
		prev = p.Speed()
		if p.Velocity.IsZero() {
			return
		}
	}
	t.Errorf("velocity did not reach zero, still %v", p.Velocity)
}

func TestPlayerShip_TripleShotExpiry(t *testing.T) {
	p := newTestPlayer()
	p.ActivateTripleShot()

	for frame := 1; frame <= 599; frame++ {
		if p.Update() {
			t.Fatalf("triple shot reported expiry on frame %d", frame)
		}
		if !p.TripleShotActive {
			t.Fatalf("triple shot inactive on frame %d", frame)
		}
	}

	if !p.Update() {
		t.Error("frame 600 should report expiry")
	}
	if p.TripleShotActive || p.TripleShotTimer != 0 {
		t.Errorf("after frame 600: active=%v timer=%d", p.TripleShotActive, p.TripleShotTimer)
	}
}

func TestPlayerShip_TripleShotReactivationResets(t *testing.T) {
	p := newTestPlayer()
	p.ActivateTripleShot()
	for i := 0; i < 400; i++ {
		p.Update()
	}
	p.ActivateTripleShot()

	if p.TripleShotTimer != 600 {
		t.Errorf("timer = %d, want reset to 600", p.TripleShotTimer)
	}
	for i := 0; i < 599; i++ {
		p.Update()
	}
	if !p.TripleShotActive {
		t.Error("reactivated triple shot expired early")
	}
}

func TestPlayerShip_DeactivateTripleShot(t *testing.T) {
	p := newTestPlayer()
	p.ActivateTripleShot()
	p.DeactivateTripleShot()
	if p.TripleShotActive || p.Weapon().GetName() != "blaster" {
		t.Error("deactivated ship should fire the blaster")
	}
}
