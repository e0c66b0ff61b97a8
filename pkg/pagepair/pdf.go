package pagepair

import (
	"bytes"
	"image"
	"image/color"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Document is an opened PDF held in memory. It is only alive long enough to
// rasterize the first two pages and must be closed by the caller.
type Document struct {
	fz *fitz.Document
}

func OpenDocument(data []byte) (*Document, error) {
	fz, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, &RenderError{Page: -1, Err: err}
	}

	return &Document{fz: fz}, nil
}

func (d *Document) PageCount() int {
	return d.fz.NumPage()
}

// RenderPage rasterizes one page at the given resolution. The engine scales
// by dpi/72, the PDF's native unit. Transparent content is flattened over bg
// so text edges stay clean; opaque buffers are returned unchanged.
func (d *Document) RenderPage(page int, dpi int, bg color.Color) (image.Image, error) {
	img, err := d.fz.ImageDPI(page, float64(dpi))
	if err != nil {
		return nil, &RenderError{Page: page, Err: err}
	}

	if img.Opaque() {
		return img, nil
	}

	return flatten(img, bg), nil
}

func (d *Document) Close() error {
	return d.fz.Close()
}

// Preflight rewrites the PDF through pdfcpu's optimizer so documents with
// stale object streams or form appearance streams rasterize the same way
// they display. It is best effort: any failure returns the input unchanged.
func Preflight(data []byte) []byte {
	var out bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &out, nil); err != nil {
		return data
	}

	if out.Len() == 0 {
		return data
	}

	return out.Bytes()
}
