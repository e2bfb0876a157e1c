package surface

import "errors"

// Format identifies the byte order of a 32-bit pixel cell.
type Format int

const (
	// FormatRGBA8888 stores components in R, G, B, A byte order.
	FormatRGBA8888 Format = iota
	// FormatARGB8888 stores components in A, R, G, B byte order.
	FormatARGB8888
)

func (f Format) String() string {
	switch f {
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatARGB8888:
		return "ARGB8888"
	default:
		return "unknown"
	}
}

var (
	// ErrWindowReleased is returned when locking a window that has been released.
	ErrWindowReleased = errors.New("surface: window released")
	// ErrAlreadyLocked is returned when locking a window twice without posting.
	ErrAlreadyLocked = errors.New("surface: buffer already locked")
	// ErrNotLocked is returned when posting a window that holds no locked buffer.
	ErrNotLocked = errors.New("surface: buffer not locked")
)

// Buffer is a window's pixel buffer, held between Lock and UnlockAndPost.
// Rows are Stride cells apart; Stride may exceed Width due to alignment
// padding. Pixel (x, y) lives at Pix[y*Stride+x]. The cells in
// [Width, Stride) of each row are padding and must never be written.
type Buffer struct {
	Width  int
	Height int
	Stride int
	Format Format
	Pix    []uint32
}

// Window is a drawable surface handle supplied by a host. It mirrors the
// lock/post cycle of platform surface APIs: Lock grants exclusive access to
// the current frame's buffer, UnlockAndPost submits it for display.
type Window interface {
	// Lock acquires exclusive write access to the current frame's buffer.
	// The returned buffer is only valid until UnlockAndPost.
	Lock() (*Buffer, error)

	// UnlockAndPost releases the locked buffer and makes it visible.
	UnlockAndPost() error

	// Size returns the window dimensions in pixels.
	Size() (width, height int)

	// Format returns the pixel byte order of the window's buffers.
	Format() Format

	// Release frees the window handle. The window is unusable afterwards;
	// releasing more than once is a no-op.
	Release()
}

// Renderer is the contract between a host and a rendering session. Hosts
// invoke the four entry points in lifecycle order: SurfaceCreated once per
// session, SurfaceChanged on resize, DrawTick per frame for renderers that
// are not self-paced, and SurfaceDestroyed to end the session.
type Renderer interface {
	// SurfaceCreated binds the renderer to a live window and acquires the
	// session's rendering resources. Requires no prior active session.
	SurfaceCreated(w Window) error

	// SurfaceChanged records new surface dimensions.
	SurfaceChanged(width, height int)

	// DrawTick produces exactly one frame.
	DrawTick()

	// SurfaceDestroyed stops rendering and releases all session resources,
	// returning the renderer to its no-session state.
	SurfaceDestroyed()
}
