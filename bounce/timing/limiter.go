package timing

import "time"

// Limiter controls frame pacing for a render loop.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// TargetFPS is the fixed display refresh target.
const TargetFPS = 60

// FrameDuration returns the target duration of a single frame.
// 16,666 microseconds, matching a 60 Hz refresh.
func FrameDuration() time.Duration {
	return 16666 * time.Microsecond
}
