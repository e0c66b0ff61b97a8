package pagepair

import (
	"image"

	"github.com/noelyahan/mergi"
)

// Thumbnail downscales a merged canvas so its width fits maxWidth, keeping
// the aspect ratio. Images that already fit are returned unchanged; previews
// are never upscaled.
func Thumbnail(img image.Image, maxWidth int) (image.Image, error) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	if maxWidth <= 0 || w <= maxWidth {
		return img, nil
	}

	scaled := (h*maxWidth + w/2) / w
	if scaled < 1 {
		scaled = 1
	}

	return mergi.Resize(img, uint(maxWidth), uint(scaled))
}
