package pixel

import "github.com/chewxy/math32"

const (
	// wavePeriod is the full sweep period of the ping-pong animation.
	wavePeriod = 4.0
	// timeStep is the amount the clock advances per frame.
	timeStep = 0.05
	// timeWrap bounds the clock's magnitude. Purely a float precision
	// guard; the waveform itself only depends on t mod wavePeriod.
	timeWrap = 100.0
)

// TriangleWave maps the animation time t to a progress value in [0, 1].
// It is periodic with period 4: rising linearly on [0, 2), falling linearly
// on [2, 4), continuous at both breakpoints.
func TriangleWave(t float32) float32 {
	cycle := math32.Mod(t, wavePeriod)
	if cycle < wavePeriod/2 {
		return cycle / 2
	}
	return 1 - (cycle-2)/2
}

// Clock accumulates animation time in fixed per-frame steps.
type Clock struct {
	t float32
}

// Now returns the current animation time.
func (c *Clock) Now() float32 {
	return c.t
}

// Advance moves the clock forward by one frame's step, wrapping at the
// precision bound.
func (c *Clock) Advance() {
	c.t += timeStep
	if c.t > timeWrap {
		c.t = 0
	}
}
