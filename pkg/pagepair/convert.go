package pagepair

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// OutputSuffix is appended to the original base name of every converted file.
const OutputSuffix = "_merged"

// File is one uploaded PDF, name plus raw bytes.
type File struct {
	Name string
	Data []byte
}

type Metadata struct {
	// Page count of the source document, not just the two pages used.
	Pages   int `json:"pages"`
	Width   int `json:"width"`
	Height  int `json:"height"`
	DPI     int `json:"dpi"`
	Quality int `json:"quality"`
}

type Result struct {
	OutputName string   `json:"outputName"`
	Data       []byte   `json:"-"`
	Meta       Metadata `json:"metadata"`
}

// Outcome is the per-file verdict of a batch. Exactly one of Result and Err
// is set.
type Outcome struct {
	OriginalName string
	Result       *Result
	Err          error
}

func (o Outcome) Ok() bool {
	return o.Err == nil
}

// Convert runs the whole pipeline for a single document: open, check the
// page count, rasterize pages one and two, compose and encode. The document
// handle is released unconditionally, even when rendering fails.
func Convert(name string, data []byte, opts *Options) (*Result, error) {
	if opts == nil {
		opts = NewDefaultOptions()
	}

	doc, err := OpenDocument(Preflight(data))
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages := doc.PageCount()
	if pages < 2 {
		return nil, &InsufficientPagesError{Pages: pages}
	}

	bg := opts.background()

	first, err := doc.RenderPage(0, opts.DPI, bg)
	if err != nil {
		return nil, err
	}

	second, err := doc.RenderPage(1, opts.DPI, bg)
	if err != nil {
		return nil, err
	}

	left, right := first, second
	if opts.SwapPages {
		left, right = second, first
	}

	merged := Compose(left, right, ComposeOptions{
		GapPx:      opts.GapPx,
		AlignBy:    opts.AlignBy,
		Background: bg,
	})

	if opts.Sharpen {
		// Counterpart of the mild unsharp mask the preview tooling applies.
		merged = imaging.Sharpen(merged, 0.8)
	}

	encoded, err := encode(merged, opts.Format, opts.Quality)
	if err != nil {
		return nil, err
	}

	return &Result{
		OutputName: OutputName(name, opts.Format),
		Data:       encoded,
		Meta: Metadata{
			Pages:   pages,
			Width:   merged.Bounds().Dx(),
			Height:  merged.Bounds().Dy(),
			DPI:     opts.DPI,
			Quality: opts.Quality,
		},
	}, nil
}

// ConvertAll processes the batch sequentially. A failing file is recorded
// and never aborts the rest, so len(outcomes) == len(files) always holds.
func ConvertAll(files []File, opts *Options) []Outcome {
	outcomes := make([]Outcome, 0, len(files))

	for _, f := range files {
		result, err := Convert(f.Name, f.Data, opts)
		outcomes = append(outcomes, Outcome{
			OriginalName: f.Name,
			Result:       result,
			Err:          err,
		})
	}

	return outcomes
}

// OutputName strips the original extension and appends the merged suffix,
// e.g. "report.pdf" becomes "report_merged.jpg".
func OutputName(originalName string, format Format) string {
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))

	ext := "jpg"
	if format == FormatPNG {
		ext = "png"
	}

	return fmt.Sprintf("%s%s.%s", base, OutputSuffix, ext)
}

func encode(img image.Image, format Format, quality int) ([]byte, error) {
	var buf bytes.Buffer

	var err error
	switch format {
	case FormatPNG:
		err = imaging.Encode(&buf, img, imaging.PNG)
	default:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	}
	if err != nil {
		return nil, &EncodeError{Err: err}
	}

	return buf.Bytes(), nil
}
