package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CollisionSides selects which sides of a body take part in contact resolution.
type CollisionSides struct {
	Up, Down, Left, Right bool
}

// AllSides enables contact resolution on every side.
func AllSides() CollisionSides {
	return CollisionSides{Up: true, Down: true, Left: true, Right: true}
}

type BodyData struct {
	Velocity     math.Vec2
	Width        float64 // collision size, centred on the transform
	Height       float64
	Static       bool
	Enabled      bool
	AllowGravity bool

	CheckCollision CollisionSides
	TouchingDown   bool // resting on a surface this frame

	PrevY float64 // centre y before this frame's integration
}

// Bottom returns the world y of the body's lower edge for a centre y.
func (b *BodyData) Bottom(centerY float64) float64 {
	return centerY + b.Height/2
}

var Body = donburi.NewComponentType[BodyData]()
