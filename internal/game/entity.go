package game

import "github.com/diegok/termpong/internal/geom"

// Entity is the motion record shared by the ball and the paddles.
// Size is fixed when the entity is created.
type Entity struct {
	Position geom.Vector2
	Velocity geom.Vector2
	size     geom.Vector2
}

func newEntity(position, velocity geom.Vector2, width, height float64) Entity {
	return Entity{
		Position: position,
		Velocity: velocity,
		size:     geom.Vec(width, height),
	}
}

// Size returns width and height as a vector
func (e *Entity) Size() geom.Vector2 {
	return e.size
}

func (e *Entity) Width() float64  { return e.size.X }
func (e *Entity) Height() float64 { return e.size.Y }

// Bounds returns the bounding box at the current position
func (e *Entity) Bounds() geom.Rect {
	return geom.NewRect(e.Position.X, e.Position.Y, e.size.X, e.size.Y)
}

// Center returns the middle of the bounding box
func (e *Entity) Center() geom.Vector2 {
	return e.Bounds().Center()
}

// Integrate advances the position by velocity*dt
func (e *Entity) Integrate(dt float64) {
	if dt == 0 {
		return
	}
	e.Position = e.Position.Add(e.Velocity.Scale(dt))
}
