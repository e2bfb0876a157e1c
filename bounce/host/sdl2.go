//go:build sdl2

package host

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/valerio/go-bounce/bounce/pixel"
	"github.com/valerio/go-bounce/bounce/surface"
	"github.com/valerio/go-bounce/bounce/timing"
)

// SDL2Host presents posted frames in an SDL window through a streaming
// texture. Building this requires SDL2 development libraries installed;
// default builds use the stub, see build tags (sdl2).
type SDL2Host struct {
	config   Config
	window   *surface.MemoryWindow
	sdlWin   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	mu      sync.Mutex
	latest  []uint32
	hasNew  bool
	running bool
}

var _ Host = (*SDL2Host)(nil)

// NewSDL2Host creates an SDL2 host.
func NewSDL2Host() *SDL2Host {
	return &SDL2Host{}
}

// Init opens the SDL window and creates the streaming texture.
func (s *SDL2Host) Init(config Config) error {
	s.config = config

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %v", err)
	}

	win, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(config.Width),
		int32(config.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %v", err)
	}
	s.sdlWin = win

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %v", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(config.Width),
		int32(config.Height),
	)
	if err != nil {
		renderer.Destroy()
		win.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %v", err)
	}
	s.texture = texture

	s.latest = make([]uint32, config.Width*config.Height)
	s.window = surface.NewMemoryWindow(surface.MemoryWindowConfig{
		Width:         config.Width,
		Height:        config.Height,
		StridePadding: config.StridePadding,
		Format:        config.Format,
		OnPost:        s.onPost,
	})

	slog.Info("SDL2 host initialized", "width", config.Width, "height", config.Height)
	return nil
}

// Window implements Host.
func (s *SDL2Host) Window() surface.Window {
	return s.window
}

// Run starts a session and presents frames until the window is closed or
// Escape is pressed. SDL calls stay on the calling goroutine.
func (s *SDL2Host) Run(r surface.Renderer) error {
	if err := r.SurfaceCreated(s.window); err != nil {
		return err
	}

	s.running = true
	limiter := timing.NewTickerLimiter()
	defer limiter.Stop()

	for s.running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				s.running = false
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					s.running = false
				}
			}
		}
		s.present()
		limiter.WaitForNextFrame()
	}

	r.SurfaceDestroyed()
	if s.config.Callbacks.OnQuit != nil {
		s.config.Callbacks.OnQuit()
	}
	return nil
}

// Cleanup destroys the SDL resources.
func (s *SDL2Host) Cleanup() error {
	slog.Info("cleaning up SDL2 host")
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.sdlWin != nil {
		s.sdlWin.Destroy()
	}
	sdl.Quit()
	return nil
}

// onPost runs on the render loop's goroutine and copies the visible region
// of the posted buffer.
func (s *SDL2Host) onPost(buf *surface.Buffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for y := 0; y < buf.Height; y++ {
		copy(s.latest[y*buf.Width:(y+1)*buf.Width], buf.Pix[y*buf.Stride:y*buf.Stride+buf.Width])
	}
	s.hasNew = true
}

func (s *SDL2Host) present() {
	s.mu.Lock()
	if !s.hasNew {
		s.mu.Unlock()
		return
	}

	// ABGR byte order for little-endian RGBA8888 textures.
	bytes := make([]byte, len(s.latest)*4)
	for i, p := range s.latest {
		c := pixel.Unpack(s.config.Format, p)
		bytes[i*4] = c.A
		bytes[i*4+1] = c.B
		bytes[i*4+2] = c.G
		bytes[i*4+3] = c.R
	}
	s.hasNew = false
	s.mu.Unlock()

	s.texture.Update(nil, unsafe.Pointer(&bytes[0]), s.config.Width*4)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
}
