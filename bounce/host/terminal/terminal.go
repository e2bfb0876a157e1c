// Package terminal displays a renderer session in the terminal using tcell.
// Each character cell shows two vertically stacked pixels through the upper
// half block, so the window is sized cols x 2*rows.
package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/valerio/go-bounce/bounce/host"
	"github.com/valerio/go-bounce/bounce/pixel"
	"github.com/valerio/go-bounce/bounce/surface"
)

// frame is a posted buffer copied out of the render loop, so drawing stays
// on the host's goroutine.
type frame struct {
	width, height, stride int
	format                surface.Format
	pix                   []uint32
}

// Host renders posted frames to the terminal.
type Host struct {
	config host.Config
	screen tcell.Screen
	window *surface.MemoryWindow

	frames chan frame
	events chan tcell.Event
}

var _ host.Host = (*Host)(nil)

func New() *Host {
	return &Host{
		frames: make(chan frame, 1),
		events: make(chan tcell.Event, 8),
	}
}

// Init sets up the terminal screen and creates a window matching its size.
func (t *Host) Init(config host.Config) error {
	t.config = config

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()
	t.screen = screen

	cols, rows := screen.Size()
	t.window = surface.NewMemoryWindow(surface.MemoryWindowConfig{
		Width:         cols,
		Height:        rows * 2,
		StridePadding: config.StridePadding,
		Format:        config.Format,
		OnPost:        t.onPost,
	})

	slog.Info("terminal host initialized", "cols", cols, "rows", rows)
	return nil
}

// Window implements host.Host.
func (t *Host) Window() surface.Window {
	return t.window
}

// Run starts a session and blocks until a quit key (Esc, q, Ctrl+C) is
// pressed. The renderer is stopped before the function returns.
func (t *Host) Run(r surface.Renderer) error {
	if err := r.SurfaceCreated(t.window); err != nil {
		return err
	}

	go t.pollEvents()

	for {
		select {
		case f := <-t.frames:
			t.draw(f)
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					r.SurfaceDestroyed()
					if t.config.Callbacks.OnQuit != nil {
						t.config.Callbacks.OnQuit()
					}
					return nil
				}
			case *tcell.EventResize:
				// The window keeps its original size; the screen just
				// re-syncs so the existing frame stays visible.
				t.screen.Sync()
			}
		}
	}
}

// Cleanup restores the terminal.
func (t *Host) Cleanup() error {
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

func (t *Host) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.events <- ev
	}
}

// onPost runs on the render loop's goroutine; it copies the frame and
// hands it to Run. A frame is dropped when the host is still drawing the
// previous one.
func (t *Host) onPost(buf *surface.Buffer) {
	f := frame{
		width:  buf.Width,
		height: buf.Height,
		stride: buf.Stride,
		format: buf.Format,
		pix:    make([]uint32, len(buf.Pix)),
	}
	copy(f.pix, buf.Pix)

	select {
	case t.frames <- f:
	default:
	}
}

func (t *Host) draw(f frame) {
	for y := 0; y < f.height/2; y++ {
		for x := 0; x < f.width; x++ {
			top := pixel.Unpack(f.format, f.pix[(2*y)*f.stride+x])
			bottom := pixel.Unpack(f.format, f.pix[(2*y+1)*f.stride+x])
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	t.screen.Show()
}
