// Package debug provides frame capture for inspecting rendered output.
package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes framebuffer read-backs to PNG files.
type Capture struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewCapture creates a capture writing into dir with file names starting with prefix.
func NewCapture(dir, prefix string) *Capture {
	return &Capture{dir: dir, prefix: prefix, now: time.Now}
}

// SaveColor saves RGBA pixel data read back from GL. Rows are flipped since
// GL's origin is bottom-left.
func (c *Capture) SaveColor(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return c.save("color", img)
}

// SaveStencil saves one byte per pixel of stencil values as a grayscale mask:
// zero is black, anything else white.
func (c *Capture) SaveStencil(values []byte, width, height int) (string, error) {
	if len(values) != width*height {
		return "", fmt.Errorf("stencil data size mismatch: expected %d, got %d", width*height, len(values))
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := values[(height-1-y)*width:]
		for x := 0; x < width; x++ {
			if row[x] != 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return c.save("stencil", img)
}

func (c *Capture) save(kind string, img image.Image) (string, error) {
	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := fmt.Sprintf("%s_%s_%s.png", c.prefix, kind, c.now().Format("2006-01-02_15-04-05.000"))
	if c.dir != "" {
		name = filepath.Join(c.dir, name)
	}

	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return name, nil
}
