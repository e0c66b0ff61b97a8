package pagepair

import (
	"fmt"
	"image/color"
	"os"
)

type Config struct {
	// Directory where converted images are stored after processing
	OutputDir string
}

func NewDefaultConfig() *Config {
	cfg := Config{
		OutputDir: fmt.Sprintf("%s/pagepair/output", os.TempDir()),
	}

	// Create the directory if it does not exist
	// 0755 mean owner can read, write and execute
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
	}

	return &cfg
}

type Format string

const (
	FormatJPEG Format = "jpg"
	FormatPNG  Format = "png"
)

type AlignMode string

const (
	// AlignHeight resizes the shorter page up to the taller one, widths follow aspect ratio.
	AlignHeight AlignMode = "height"
	// AlignWidth resizes both pages to the widest one, heights follow aspect ratio.
	AlignWidth AlignMode = "width"
)

// Options control one batch run. They are shared read-only across all files
// of the batch.
type Options struct {
	// Rasterization resolution, 72 dpi renders at the PDF's native scale.
	DPI int
	// JPEG quality, 0-100. Ignored for PNG output.
	Quality int
	// Horizontal gap between the two pages in pixels.
	GapPx int
	// Render page 2 on the left and page 1 on the right.
	SwapPages bool
	// Output encoding, jpg or png.
	Format Format
	// How the two pages are normalized before pasting.
	AlignBy AlignMode
	// Canvas and flatten color behind transparent page content.
	Background color.Color
	// Apply a light sharpen to the merged canvas.
	Sharpen bool
}

func NewDefaultOptions() *Options {
	return &Options{
		DPI:        300,
		Quality:    97,
		GapPx:      0,
		SwapPages:  false,
		Format:     FormatJPEG,
		AlignBy:    AlignHeight,
		Background: color.White,
		Sharpen:    false,
	}
}

// ParseBackground resolves a background preset name. The empty string keeps
// the default white.
func ParseBackground(name string) (color.Color, error) {
	switch name {
	case "", "white":
		return color.White, nil
	case "lightgray":
		return color.NRGBA{R: 246, G: 248, B: 251, A: 255}, nil
	case "black":
		return color.NRGBA{A: 255}, nil
	default:
		return nil, fmt.Errorf("unknown background preset: %s", name)
	}
}

func (o *Options) background() color.Color {
	if o.Background == nil {
		return color.White
	}
	return o.Background
}
