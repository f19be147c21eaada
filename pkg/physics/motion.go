// pkg/physics/motion.go
package physics

import "math"

// StopThreshold is the speed below which velocities snap to exactly zero,
// so friction never leaves an entity drifting forever.
const StopThreshold = 0.01

// ApplyFriction scales velocity by the deceleration factor and snaps it to
// zero once its magnitude drops below StopThreshold.
func ApplyFriction(velocity Vector2D, deceleration float64) Vector2D {
	velocity = velocity.Scale(deceleration)
	if velocity.Length() < StopThreshold {
		return Vector2D{}
	}
	return velocity
}

// DampAngular is the scalar counterpart of ApplyFriction for angular velocity.
func DampAngular(angularVelocity, deceleration float64) float64 {
	angularVelocity *= deceleration
	if math.Abs(angularVelocity) < StopThreshold {
		return 0
	}
	return angularVelocity
}

// ClampSymmetric limits value to [-limit, limit].
func ClampSymmetric(value, limit float64) float64 {
	if value > limit {
		return limit
	}
	if value < -limit {
		return -limit
	}
	return value
}

// Body is the kinematic state shared by every physically simulated entity.
// One Integrate call advances the body by exactly one fixed frame.
type Body struct {
	Position     Vector2D
	Velocity     Vector2D
	Deceleration float64
	MaxSpeed     float64
}

// Push adds an impulse to the velocity and enforces the speed limit.
func (b *Body) Push(impulse Vector2D) {
	b.Velocity = b.Velocity.Add(impulse).ClampLength(b.MaxSpeed)
}

// Integrate applies friction, clamps to MaxSpeed and moves the body.
func (b *Body) Integrate() {
	b.Velocity = ApplyFriction(b.Velocity, b.Deceleration).ClampLength(b.MaxSpeed)
	b.Position = b.Position.Add(b.Velocity)
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return b.Velocity.Length()
}
