// Package headless runs a renderer session without a display, for batch
// rendering and automated testing.
package headless

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/valerio/go-bounce/bounce/host"
	"github.com/valerio/go-bounce/bounce/snapshot"
	"github.com/valerio/go-bounce/bounce/surface"
)

// SnapshotConfig holds configuration for frame snapshots.
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save snapshot every N frames
	Directory string // Directory to save snapshots
	BaseName  string // Base name for snapshot filenames
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters.
func CreateSnapshotConfig(interval int, directory string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
		BaseName: "bounce",
	}

	if !config.Enabled {
		return config, nil
	}

	if directory == "" {
		tempDir, err := os.MkdirTemp("", "bounce-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %v", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %v", err)
		}
		config.Directory = directory
	}

	return config, nil
}

// Host runs a fixed number of frames against an in-memory window.
type Host struct {
	config         host.Config
	window         *surface.MemoryWindow
	maxFrames      int
	snapshotConfig SnapshotConfig

	frameCount int
	done       chan struct{}
	doneOnce   sync.Once
}

var _ host.Host = (*Host)(nil)

func New(maxFrames int, snapshotConfig SnapshotConfig) *Host {
	return &Host{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
		done:           make(chan struct{}),
	}
}

// Init creates the in-memory window and hooks frame accounting to its post
// callback.
func (h *Host) Init(config host.Config) error {
	h.config = config
	h.window = surface.NewMemoryWindow(surface.MemoryWindowConfig{
		Width:         config.Width,
		Height:        config.Height,
		StridePadding: config.StridePadding,
		Format:        config.Format,
		OnPost:        h.onPost,
	})

	slog.Info("running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)
	return nil
}

// Window implements host.Host.
func (h *Host) Window() surface.Window {
	return h.window
}

// Run starts a session and blocks until the configured number of frames
// has been posted.
func (h *Host) Run(r surface.Renderer) error {
	if err := r.SurfaceCreated(h.window); err != nil {
		return err
	}
	<-h.done
	r.SurfaceDestroyed()

	if h.snapshotConfig.Enabled {
		slog.Info("headless execution completed", "frames", h.maxFrames, "snapshots_saved_to", h.snapshotConfig.Directory)
	} else {
		slog.Info("headless execution completed", "frames", h.maxFrames)
	}
	if h.config.Callbacks.OnQuit != nil {
		h.config.Callbacks.OnQuit()
	}
	return nil
}

func (h *Host) Cleanup() error {
	return nil
}

// onPost runs on the render loop's goroutine after every posted frame.
func (h *Host) onPost(buf *surface.Buffer) {
	h.frameCount++

	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		h.saveSnapshot(buf)
	}

	if h.frameCount%10 == 0 {
		slog.Info("frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount >= h.maxFrames {
		h.doneOnce.Do(func() { close(h.done) })
	}
}

func (h *Host) saveSnapshot(buf *surface.Buffer) {
	baseName := fmt.Sprintf("%s_frame_%d", h.snapshotConfig.BaseName, h.frameCount)
	if _, err := snapshot.SavePNGToDir(buf, baseName, h.snapshotConfig.Directory); err != nil {
		slog.Error("failed to save PNG snapshot", "frame", h.frameCount, "error", err)
	}
}
