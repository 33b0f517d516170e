package game

import (
	"fmt"

	"github.com/diegok/termpong/internal/geom"
)

const (
	PaddleWidth       = 20
	PaddleHeight      = 100
	PlayerPaddleSpeed = 300.0
	AIPaddleSpeed     = 260.0
	PaddleMargin      = 40 // Gap between the court edge and a paddle
)

type Paddle struct {
	Entity
}

func NewPaddle(position geom.Vector2) *Paddle {
	return &Paddle{Entity: newEntity(position, geom.Vector2{}, PaddleWidth, PaddleHeight)}
}

// Move shifts the paddle vertically by direction*speed*dt and clamps Y
// to [boundMin, boundMax]. X never changes.
func (p *Paddle) Move(direction, speed, dt, boundMin, boundMax float64) {
	if boundMin > boundMax {
		panic(fmt.Sprintf("paddle bounds inverted: min %f > max %f", boundMin, boundMax))
	}
	p.Position.Y = geom.Clamp(p.Position.Y+direction*speed*dt, boundMin, boundMax)
}

func (p *Paddle) TopY() float64 {
	return p.Position.Y
}

func (p *Paddle) BottomY() float64 {
	return p.Position.Y + p.Height()
}
