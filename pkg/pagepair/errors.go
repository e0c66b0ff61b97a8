package pagepair

import "fmt"

// InsufficientPagesError reports a document that cannot produce a side-by-side
// image because it has fewer than two pages.
type InsufficientPagesError struct {
	Pages int
}

func (e *InsufficientPagesError) Error() string {
	return fmt.Sprintf("document has %d page(s), at least 2 are required", e.Pages)
}

// RenderError wraps a failure from the PDF engine while opening or
// rasterizing a page.
type RenderError struct {
	Page int
	Err  error
}

func (e *RenderError) Error() string {
	if e.Page < 0 {
		return fmt.Sprintf("failed to open document: %v", e.Err)
	}
	return fmt.Sprintf("failed to render page %d: %v", e.Page+1, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// EncodeError wraps a failure while encoding the merged canvas.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode merged image: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
