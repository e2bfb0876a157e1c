package surface

import "sync"

// MemoryWindowConfig configures an in-process window.
type MemoryWindowConfig struct {
	Width  int
	Height int
	// StridePadding is the number of extra cells appended to each row beyond
	// Width, emulating the alignment padding of platform buffers.
	StridePadding int
	Format        Format
	// OnPost, if set, is invoked with the posted buffer after each
	// successful UnlockAndPost. It runs on the caller's goroutine.
	OnPost func(*Buffer)
}

// MemoryWindow is a Window backed by process memory. It enforces the
// lock/post protocol and is the surface handle used by the built-in hosts
// and by tests.
type MemoryWindow struct {
	mu       sync.Mutex
	cfg      MemoryWindowConfig
	pix      []uint32
	locked   bool
	released bool
}

var _ Window = (*MemoryWindow)(nil)

// NewMemoryWindow creates an in-process window. Width and height must be
// positive; stride is width plus the configured padding.
func NewMemoryWindow(cfg MemoryWindowConfig) *MemoryWindow {
	stride := cfg.Width + cfg.StridePadding
	return &MemoryWindow{
		cfg: cfg,
		pix: make([]uint32, cfg.Height*stride),
	}
}

func (w *MemoryWindow) buffer() *Buffer {
	return &Buffer{
		Width:  w.cfg.Width,
		Height: w.cfg.Height,
		Stride: w.cfg.Width + w.cfg.StridePadding,
		Format: w.cfg.Format,
		Pix:    w.pix,
	}
}

// Lock implements Window.
func (w *MemoryWindow) Lock() (*Buffer, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.released {
		return nil, ErrWindowReleased
	}
	if w.locked {
		return nil, ErrAlreadyLocked
	}
	w.locked = true
	return w.buffer(), nil
}

// UnlockAndPost implements Window.
func (w *MemoryWindow) UnlockAndPost() error {
	w.mu.Lock()
	if !w.locked {
		w.mu.Unlock()
		return ErrNotLocked
	}
	w.locked = false
	post := w.cfg.OnPost
	buf := w.buffer()
	w.mu.Unlock()

	if post != nil {
		post(buf)
	}
	return nil
}

// Size implements Window.
func (w *MemoryWindow) Size() (width, height int) {
	return w.cfg.Width, w.cfg.Height
}

// Format implements Window.
func (w *MemoryWindow) Format() Format {
	return w.cfg.Format
}

// Release implements Window.
func (w *MemoryWindow) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.released = true
}
