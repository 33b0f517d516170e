package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/diegok/termpong/internal/geom"
)

const (
	SpeedIncrement = 1.05 // 5% speed increase per paddle hit
	SpinFactor     = 5.0  // Vertical velocity added at the paddle tip
	pushOut        = 1.0
)

// CollisionManager resolves the ball against the court walls, paddles
// and goal lines.
type CollisionManager struct {
	ball   *Ball
	bounds geom.Rect
}

func NewCollisionManager(ball *Ball, bounds geom.Rect) (*CollisionManager, error) {
	if ball == nil {
		return nil, errors.New("collision manager requires a ball")
	}
	// A court no wider than the ball could report a goal at both ends
	if bounds.W <= ball.Width() || bounds.H <= ball.Height() {
		return nil, fmt.Errorf("court %.0fx%.0f is too small for a %.0fx%.0f ball",
			bounds.W, bounds.H, ball.Width(), ball.Height())
	}
	return &CollisionManager{ball: ball, bounds: bounds}, nil
}

// Bounds returns the court rectangle
func (cm *CollisionManager) Bounds() geom.Rect {
	return cm.bounds
}

// CheckWallCollisions bounces the ball off the top or bottom wall.
// Only the sign of the vertical velocity changes.
func (cm *CollisionManager) CheckWallCollisions() bool {
	b := cm.ball

	if b.Position.Y <= cm.bounds.Top() {
		b.Velocity.Y = math.Abs(b.Velocity.Y)
		b.Position.Y = cm.bounds.Top() + pushOut
		return true
	}
	if b.Position.Y+b.Height() >= cm.bounds.Bottom() {
		b.Velocity.Y = -math.Abs(b.Velocity.Y)
		b.Position.Y = cm.bounds.Bottom() - b.Height() - pushOut
		return true
	}
	return false
}

// CheckPaddleCollision bounces the ball off the paddle when they overlap.
// The hit position on the paddle adds spin, every hit speeds the ball up,
// and the ball is pushed clear of the paddle so it cannot collide again
// on the next frame.
func (cm *CollisionManager) CheckPaddleCollision(p *Paddle) bool {
	b := cm.ball
	ballRect := b.Bounds()
	paddleRect := p.Bounds()

	if !ballRect.Intersects(paddleRect) {
		return false
	}

	isLeft := p.Position.X < cm.bounds.W/2

	// Where on the paddle the ball hit (-1 top, 0 center, 1 bottom)
	offset := (ballRect.Center().Y - paddleRect.Center().Y) / (paddleRect.H / 2)

	b.Velocity.X = -b.Velocity.X
	b.Velocity.Y += offset * SpinFactor
	b.Velocity = b.Velocity.Scale(SpeedIncrement)

	if isLeft {
		b.Position.X = paddleRect.Right() + pushOut
	} else {
		b.Position.X = paddleRect.Left() - ballRect.W - pushOut
	}
	return true
}

// CheckScoringCollision reports whether the ball reached a goal line.
// leftScore is true when the left (player) side scored.
func (cm *CollisionManager) CheckScoringCollision() (scored bool, leftScore bool) {
	b := cm.ball

	// Ball reached left edge - right side scores
	if b.Position.X <= cm.bounds.Left() {
		return true, false
	}
	// Ball reached right edge - left side scores
	if b.Position.X+b.Width() >= cm.bounds.Right() {
		return true, true
	}
	return false, false
}

