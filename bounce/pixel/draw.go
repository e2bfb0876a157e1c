package pixel

import (
	"github.com/valerio/go-bounce/bounce/surface"
)

// Config holds the scene parameters for the pixel renderer.
type Config struct {
	// Margin is the horizontal distance kept between the circle's center
	// and either edge of the buffer at the sweep's extremes.
	Margin float32
	// Radius is the circle radius in pixels.
	Radius     float32
	Background Color
	Circle     Color
}

// DefaultConfig returns the tutorial scene: an 80px light blue circle
// sweeping between 100px margins over a dark blue background.
func DefaultConfig() Config {
	return Config{
		Margin:     100,
		Radius:     80,
		Background: BackgroundColor,
		Circle:     CircleColor,
	}
}

// FitTo scales the margin and radius down proportionally when the buffer
// is too small for the configured values, keeping tiny surfaces (such as a
// terminal) animated instead of pinning the circle off-screen.
func (c Config) FitTo(width, height int) Config {
	if float32(width) > 2*(c.Margin+c.Radius) && float32(height) > 2*c.Radius {
		return c
	}
	out := c
	out.Margin = float32(width) / 8
	out.Radius = min(float32(width), float32(height)) / 6
	return out
}

// Fill writes the packed color into every visible pixel of the buffer.
// Rows are addressed through the stride; the padding cells in
// [Width, Stride) of each row are left untouched.
func Fill(buf *surface.Buffer, c Color) {
	packed := c.Pack(buf.Format)
	for y := 0; y < buf.Height; y++ {
		row := buf.Pix[y*buf.Stride : y*buf.Stride+buf.Width]
		for x := range row {
			row[x] = packed
		}
	}
}

// FillCircle rasterizes a filled circle centered at (cx, cy). Only points
// inside the clamped bounding box are tested against the distance
// inequality; boundary pixels (equality) are included.
func FillCircle(buf *surface.Buffer, cx, cy, radius float32, c Color) {
	packed := c.Pack(buf.Format)

	minY := max(0, int(cy-radius))
	maxY := min(buf.Height-1, int(cy+radius))
	minX := max(0, int(cx-radius))
	maxX := min(buf.Width-1, int(cx+radius))

	radiusSq := radius * radius
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float32(x) - cx
			dy := float32(y) - cy
			if dx*dx+dy*dy <= radiusSq {
				buf.Pix[y*buf.Stride+x] = packed
			}
		}
	}
}

// CircleCenter returns the animated circle's center at time t. The center
// sweeps horizontally between the left and right margins following the
// triangle waveform and stays vertically centered.
func CircleCenter(buf *surface.Buffer, t float32, cfg Config) (cx, cy float32) {
	leftEdge := cfg.Margin
	rightEdge := float32(buf.Width) - cfg.Margin
	if rightEdge < leftEdge {
		// Buffer narrower than both margins; pin the sweep.
		rightEdge = leftEdge
	}
	cx = leftEdge + TriangleWave(t)*(rightEdge-leftEdge)
	cy = float32(buf.Height) / 2
	return cx, cy
}

// DrawFrame renders one complete frame at time t: background fill plus the
// animated circle.
func DrawFrame(buf *surface.Buffer, t float32, cfg Config) {
	Fill(buf, cfg.Background)
	cx, cy := CircleCenter(buf, t, cfg)
	FillCircle(buf, cx, cy, cfg.Radius, cfg.Circle)
}
