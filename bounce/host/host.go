// Package host contains the bindings that drive a renderer session through
// the surface lifecycle. Each host owns a window, hands it to the renderer
// on SurfaceCreated, and tears the session down in order: stop the
// renderer, then clean up its own display resources.
package host

import "github.com/valerio/go-bounce/bounce/surface"

// Config holds configuration shared by hosts.
type Config struct {
	Title string
	// Width and Height request the window size in pixels. Hosts with a
	// fixed display size (terminal) may ignore them.
	Width  int
	Height int
	// StridePadding adds extra cells to each buffer row beyond the width,
	// exercising the stride-aware drawing path.
	StridePadding int
	Format        surface.Format
	Callbacks     Callbacks
}

// Callbacks allows hosts to communicate with the caller.
type Callbacks struct {
	// OnQuit is invoked when the host requests shutdown (window close,
	// quit key).
	OnQuit func()
}

// Host drives a renderer session.
type Host interface {
	// Init acquires the host's display resources and creates its window.
	Init(config Config) error

	// Window returns the surface handle for the session. Only valid after
	// a successful Init.
	Window() surface.Window

	// Run starts a session on the renderer and blocks until the host is
	// asked to quit, then destroys the session.
	Run(r surface.Renderer) error

	// Cleanup releases the host's display resources.
	Cleanup() error
}
