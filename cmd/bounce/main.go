package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/valerio/go-bounce/bounce/host"
	"github.com/valerio/go-bounce/bounce/host/headless"
	"github.com/valerio/go-bounce/bounce/host/terminal"
	"github.com/valerio/go-bounce/bounce/pixel"
	"github.com/valerio/go-bounce/bounce/surface"
	"github.com/valerio/go-bounce/bounce/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "Bounce"
	app.Description = "A bouncing circle rendered straight into pixel buffers"
	app.Usage = "bounce [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.BoolFlag{
			Name:  "sdl2",
			Usage: "Display in an SDL2 window (requires building with -tags sdl2)",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "Surface width in pixels (headless and SDL2)",
			Value: 800,
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Surface height in pixels (headless and SDL2)",
			Value: 480,
		},
		cli.IntFlag{
			Name:  "stride-padding",
			Usage: "Extra cells per buffer row beyond the width",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "format",
			Usage: "Pixel byte order: rgba or argb",
			Value: "rgba",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("error running bounce", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	format := surface.FormatRGBA8888
	switch c.String("format") {
	case "rgba":
	case "argb":
		format = surface.FormatARGB8888
	default:
		return errors.New("format must be rgba or argb")
	}

	config := host.Config{
		Title:         "Bounce",
		Width:         c.Int("width"),
		Height:        c.Int("height"),
		StridePadding: c.Int("stride-padding"),
		Format:        format,
	}

	var (
		h       host.Host
		limiter timing.Limiter
	)
	switch {
	case c.Bool("headless"):
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}
		snapshotConfig, err := headless.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"))
		if err != nil {
			return err
		}

		// Headless runs unthrottled with debug logging on stderr.
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))

		h = headless.New(frames, snapshotConfig)
		limiter = timing.NewNoOpLimiter()
	case c.Bool("sdl2"):
		h = host.NewSDL2Host()
	default:
		h = terminal.New()
	}

	if err := h.Init(config); err != nil {
		return err
	}
	defer h.Cleanup()

	width, height := h.Window().Size()
	scene := pixel.DefaultConfig().FitTo(width, height)

	return h.Run(pixel.New(scene, limiter))
}
