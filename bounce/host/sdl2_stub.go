//go:build !sdl2

package host

import (
	"fmt"

	"github.com/valerio/go-bounce/bounce/surface"
)

// SDL2Host stub for when SDL2 is not available.
type SDL2Host struct{}

func NewSDL2Host() *SDL2Host {
	return &SDL2Host{}
}

func (s *SDL2Host) Init(config Config) error {
	return fmt.Errorf("SDL2 host not available - compile with -tags sdl2 and install SDL2 development libraries")
}

func (s *SDL2Host) Window() surface.Window {
	return nil
}

func (s *SDL2Host) Run(r surface.Renderer) error {
	return fmt.Errorf("SDL2 host not available")
}

func (s *SDL2Host) Cleanup() error {
	return nil
}
