package gles

import "github.com/chewxy/math32"

// Ball is the animated circle's state in normalized [0, 1] coordinates.
type Ball struct {
	X, Y   float32
	VX, VY float32
	Radius float32
}

// NewBall returns the tutorial's starting state: centered, drifting
// up-right.
func NewBall() Ball {
	return Ball{
		X:      0.5,
		Y:      0.5,
		VX:     0.01,
		VY:     0.015,
		Radius: 0.1,
	}
}

// Step advances the ball by one explicit-Euler frame. Each axis bounces
// independently: when the circle's edge would leave [0, 1], that axis's
// velocity is negated and the position clamped to the nearest valid edge.
func (b *Ball) Step() {
	b.X += b.VX
	b.Y += b.VY

	if b.X-b.Radius < 0 || b.X+b.Radius > 1 {
		b.VX = -b.VX
		b.X = math32.Max(b.Radius, math32.Min(1-b.Radius, b.X))
	}
	if b.Y-b.Radius < 0 || b.Y+b.Radius > 1 {
		b.VY = -b.VY
		b.Y = math32.Max(b.Radius, math32.Min(1-b.Radius, b.Y))
	}
}
