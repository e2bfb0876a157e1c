package pixel

import (
	"errors"
	"log/slog"

	"github.com/valerio/go-bounce/bounce/surface"
	"github.com/valerio/go-bounce/bounce/timing"
)

// Renderer draws the animated scene directly into a window's pixel buffers.
// A session starts on SurfaceCreated, which spawns a background loop that
// locks, draws and posts one buffer per frame at the limiter's pace, and
// ends on SurfaceDestroyed, which joins the loop before releasing the
// window.
type Renderer struct {
	cfg     Config
	limiter timing.Limiter

	window surface.Window
	clock  Clock
	quit   chan struct{}
	done   chan struct{}
}

var _ surface.Renderer = (*Renderer)(nil)

// ErrSessionActive is returned when SurfaceCreated is called during an
// active session.
var ErrSessionActive = errors.New("pixel: session already active")

// ErrNoWindow is returned when SurfaceCreated is called without a window.
var ErrNoWindow = errors.New("pixel: no window")

// New creates a renderer. A nil limiter selects the fixed 60 FPS ticker.
func New(cfg Config, limiter timing.Limiter) *Renderer {
	if limiter == nil {
		limiter = timing.NewTickerLimiter()
	}
	return &Renderer{
		cfg:     cfg,
		limiter: limiter,
	}
}

// SurfaceCreated binds the window and starts the render loop.
func (r *Renderer) SurfaceCreated(w surface.Window) error {
	if r.window != nil {
		return ErrSessionActive
	}
	if w == nil {
		slog.Error("no window provided for surface creation")
		return ErrNoWindow
	}

	width, height := w.Size()
	slog.Info("surface created", "width", width, "height", height, "format", w.Format())

	r.window = w
	r.clock = Clock{}
	r.quit = make(chan struct{})
	r.done = make(chan struct{})
	r.limiter.Reset()

	go r.loop()
	return nil
}

// SurfaceChanged records new dimensions. The loop reads sizes from the
// locked buffer each frame, so there is nothing to update here.
func (r *Renderer) SurfaceChanged(width, height int) {
	slog.Info("surface changed", "width", width, "height", height)
}

// DrawTick renders a single frame immediately. The renderer is self-paced
// during a session; this is for hosts and tests that drive frames manually.
func (r *Renderer) DrawTick() {
	r.renderFrame()
}

// SurfaceDestroyed stops the render loop, waits for it to exit, and only
// then releases the window. The ordering matters: the window must stay
// valid while the loop might still dereference it.
func (r *Renderer) SurfaceDestroyed() {
	if r.window == nil {
		return
	}

	close(r.quit)
	<-r.done
	slog.Info("render loop joined")

	r.window.Release()
	r.window = nil
}

func (r *Renderer) loop() {
	defer close(r.done)
	slog.Info("render loop started")

	for {
		select {
		case <-r.quit:
			slog.Info("render loop stopped")
			return
		default:
		}

		r.renderFrame()
		r.limiter.WaitForNextFrame()
	}
}

// renderFrame draws one frame into the window. A failed lock skips the
// frame; a failed post is logged and ignored. Neither aborts the session.
func (r *Renderer) renderFrame() {
	w := r.window
	if w == nil {
		slog.Error("no window available for drawing")
		return
	}

	buf, err := w.Lock()
	if err != nil {
		slog.Error("failed to lock window buffer", "error", err)
		return
	}

	slog.Debug("drawing frame",
		"width", buf.Width, "height", buf.Height,
		"stride", buf.Stride, "format", buf.Format)

	DrawFrame(buf, r.clock.Now(), r.cfg)
	r.clock.Advance()

	if err := w.UnlockAndPost(); err != nil {
		slog.Error("failed to unlock and post window buffer", "error", err)
	}
}
