package game

import (
	"math"

	"github.com/diegok/termpong/internal/geom"
)

const (
	BallSize         = 20
	MaxBallSpeed     = 400.0
	InitialBallSpeed = 200.0
	MaxLaunchAngle   = math.Pi / 4 // 45 degrees either side of horizontal
)

type Ball struct {
	Entity
}

func NewBall(position, velocity geom.Vector2) *Ball {
	return &Ball{Entity: newEntity(position, velocity, BallSize, BallSize)}
}

// Update moves the ball and keeps it under the speed cap
func (b *Ball) Update(dt float64) {
	b.Integrate(dt)
	b.ClampVelocity()
}

// ClampVelocity rescales the velocity to MaxBallSpeed, keeping its direction
func (b *Ball) ClampVelocity() {
	if b.Velocity.IsZero() {
		return
	}
	if b.Speed() > MaxBallSpeed {
		b.Velocity = b.Velocity.Normalize().Scale(MaxBallSpeed)
	}
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return b.Velocity.Length()
}

// Reset places the ball and overwrites its velocity
func (b *Ball) Reset(position, velocity geom.Vector2) {
	b.Position = position
	b.Velocity = velocity
}

// RandomBallVelocity picks a launch angle within 45 degrees of horizontal,
// toward the left or right with equal probability, at InitialBallSpeed.
func RandomBallVelocity(rng Source) geom.Vector2 {
	angle := (rng.Float64()*2 - 1) * MaxLaunchAngle
	if rng.Float64() < 0.5 {
		angle = math.Pi - angle
	}
	return geom.Vec(math.Cos(angle), math.Sin(angle)).Scale(InitialBallSpeed)
}
