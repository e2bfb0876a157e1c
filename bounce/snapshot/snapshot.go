// Package snapshot saves posted frames as PNG images, mainly for headless
// runs and debugging.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-bounce/bounce/pixel"
	"github.com/valerio/go-bounce/bounce/surface"
)

// ToImage converts a buffer's visible region to an RGBA image, decoding
// each cell according to the buffer's format.
func ToImage(buf *surface.Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := pixel.Unpack(buf.Format, buf.Pix[y*buf.Stride+x])
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}

// SavePNGToDir saves a buffer as a timestamped PNG in the given directory,
// or the working directory when none is given. Returns the written path.
func SavePNGToDir(buf *surface.Buffer, baseName, directory string) (string, error) {
	if directory == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %v", err)
		}
		directory = cwd
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.png", baseName, timestamp)
	filePath := filepath.Join(directory, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %v", filePath, err)
	}
	defer file.Close()

	if err := png.Encode(file, ToImage(buf)); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %v", err)
	}

	slog.Info("snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", buf.Width, buf.Height))
	return filePath, nil
}
