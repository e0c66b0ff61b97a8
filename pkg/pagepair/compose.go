package pagepair

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

type ComposeOptions struct {
	GapPx      int
	AlignBy    AlignMode
	Background color.Color
}

// Compose pastes two rendered pages next to each other on one canvas.
//
// In height mode (the default) the shorter image is resized to the taller
// one's height with Lanczos resampling, keeping its aspect ratio, and the
// canvas is exactly leftW+rightW+gap wide. In width mode both images are
// resized to the wider one's width and centered vertically.
//
// Which image is "left" is the caller's decision; Compose never swaps.
func Compose(left, right image.Image, opts ComposeOptions) *image.NRGBA {
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}

	if opts.AlignBy == AlignWidth {
		return composeByWidth(left, right, opts.GapPx, bg)
	}
	return composeByHeight(left, right, opts.GapPx, bg)
}

func composeByHeight(left, right image.Image, gapPx int, bg color.Color) *image.NRGBA {
	target := max(left.Bounds().Dy(), right.Bounds().Dy())

	// Resize with width 0 so imaging derives round(w*target/h) itself.
	if left.Bounds().Dy() != target {
		left = imaging.Resize(left, 0, target, imaging.Lanczos)
	}
	if right.Bounds().Dy() != target {
		right = imaging.Resize(right, 0, target, imaging.Lanczos)
	}

	w := left.Bounds().Dx() + right.Bounds().Dx() + gapPx
	canvas := imaging.New(w, target, bg)
	canvas = imaging.Paste(canvas, left, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, right, image.Pt(left.Bounds().Dx()+gapPx, 0))

	return canvas
}

func composeByWidth(left, right image.Image, gapPx int, bg color.Color) *image.NRGBA {
	target := max(left.Bounds().Dx(), right.Bounds().Dx())

	if left.Bounds().Dx() != target {
		left = imaging.Resize(left, target, 0, imaging.Lanczos)
	}
	if right.Bounds().Dx() != target {
		right = imaging.Resize(right, target, 0, imaging.Lanczos)
	}

	h := max(left.Bounds().Dy(), right.Bounds().Dy())
	w := target*2 + gapPx
	canvas := imaging.New(w, h, bg)
	canvas = imaging.Paste(canvas, left, image.Pt(0, (h-left.Bounds().Dy())/2))
	canvas = imaging.Paste(canvas, right, image.Pt(target+gapPx, (h-right.Bounds().Dy())/2))

	return canvas
}

// flatten composites a possibly transparent image over an opaque background,
// out = alpha*src + (1-alpha)*bg per channel.
func flatten(img image.Image, bg color.Color) *image.NRGBA {
	if bg == nil {
		bg = color.White
	}

	canvas := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), bg)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}
