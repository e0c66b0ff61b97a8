package pagepair

import (
	"bytes"
	"errors"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func TestConvertTwoPages(t *testing.T) {
	pdf := makeTestPDF([][2]int{{200, 300}, {400, 300}})

	opts := NewDefaultOptions()
	opts.DPI = 72
	opts.GapPx = 10

	result, err := Convert("sample.pdf", pdf, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OutputName != "sample_merged.jpg" {
		t.Errorf("expected output name sample_merged.jpg, got %s", result.OutputName)
	}
	// 200 + 400 + 10 gap at native scale
	if result.Meta.Width != 610 || result.Meta.Height != 300 {
		t.Errorf("expected 610x300 canvas, got %dx%d", result.Meta.Width, result.Meta.Height)
	}
	if result.Meta.Pages != 2 {
		t.Errorf("expected page count 2, got %d", result.Meta.Pages)
	}
	if result.Meta.DPI != 72 || result.Meta.Quality != opts.Quality {
		t.Errorf("metadata does not echo the options used: %+v", result.Meta)
	}

	img, err := jpeg.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("output is not a decodable JPEG: %v", err)
	}
	if img.Bounds().Dx() != 610 || img.Bounds().Dy() != 300 {
		t.Errorf("decoded dimensions %dx%d do not match metadata", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestConvertInsufficientPages(t *testing.T) {
	pdf := makeTestPDF([][2]int{{200, 300}})

	_, err := Convert("single.pdf", pdf, NewDefaultOptions())
	if err == nil {
		t.Fatal("expected an error for a 1-page document")
	}

	var ipe *InsufficientPagesError
	if !errors.As(err, &ipe) {
		t.Fatalf("expected InsufficientPagesError, got %T: %v", err, err)
	}
	if ipe.Pages != 1 {
		t.Errorf("expected reported page count 1, got %d", ipe.Pages)
	}
	if !strings.Contains(err.Error(), "1") {
		t.Errorf("expected message to contain the actual count, got %q", err.Error())
	}
}

func TestConvertUsesOnlyFirstTwoPages(t *testing.T) {
	sizes := [][2]int{{200, 300}, {400, 300}}
	long := makeTestPDF(append(sizes, [2]int{500, 500}, [2]int{500, 500}, [2]int{500, 500}))
	short := makeTestPDF(sizes)

	opts := NewDefaultOptions()
	opts.DPI = 72

	longResult, err := Convert("long.pdf", long, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	shortResult, err := Convert("short.pdf", short, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if longResult.Meta.Pages != 5 {
		t.Errorf("expected metadata to keep the true page count 5, got %d", longResult.Meta.Pages)
	}
	if !bytes.Equal(longResult.Data, shortResult.Data) {
		t.Error("expected identical output regardless of trailing pages")
	}
}

func TestConvertSwapPages(t *testing.T) {
	pdf := makeTestPDF([][2]int{{100, 300}, {400, 300}})

	opts := NewDefaultOptions()
	opts.DPI = 72

	plain, err := Convert("doc.pdf", pdf, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts.SwapPages = true
	swapped, err := Convert("doc.pdf", pdf, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plain.Meta.Width != swapped.Meta.Width || plain.Meta.Height != swapped.Meta.Height {
		t.Errorf("swap must not change canvas size: %dx%d vs %dx%d",
			plain.Meta.Width, plain.Meta.Height, swapped.Meta.Width, swapped.Meta.Height)
	}
}

func TestConvertPNGFormat(t *testing.T) {
	pdf := makeTestPDF([][2]int{{200, 300}, {200, 300}})

	opts := NewDefaultOptions()
	opts.DPI = 72
	opts.Format = FormatPNG

	result, err := Convert("doc.pdf", pdf, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OutputName != "doc_merged.png" {
		t.Errorf("expected png output name, got %s", result.OutputName)
	}

	img, err := png.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 300 {
		t.Errorf("expected 400x300, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestConvertAllFaultIsolation(t *testing.T) {
	files := []File{
		{Name: "a.pdf", Data: makeTestPDF([][2]int{{100, 100}, {100, 100}})},
		{Name: "broken.pdf", Data: []byte("this is not a pdf")},
		{Name: "single.pdf", Data: makeTestPDF([][2]int{{100, 100}})},
		{Name: "b.pdf", Data: makeTestPDF([][2]int{{100, 100}, {100, 100}})},
	}

	opts := NewDefaultOptions()
	opts.DPI = 72

	outcomes := ConvertAll(files, opts)

	if len(outcomes) != len(files) {
		t.Fatalf("expected %d outcomes, got %d", len(files), len(outcomes))
	}

	wantOk := []bool{true, false, false, true}
	for i, outcome := range outcomes {
		if outcome.OriginalName != files[i].Name {
			t.Errorf("outcome %d reports %s, expected %s", i, outcome.OriginalName, files[i].Name)
		}
		if outcome.Ok() != wantOk[i] {
			t.Errorf("outcome for %s: ok=%v, expected %v (err=%v)",
				outcome.OriginalName, outcome.Ok(), wantOk[i], outcome.Err)
		}
		if outcome.Ok() && outcome.Result == nil {
			t.Errorf("successful outcome for %s carries no result", outcome.OriginalName)
		}
		if !outcome.Ok() && outcome.Err == nil {
			t.Errorf("failed outcome for %s carries no error", outcome.OriginalName)
		}
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		format   Format
		expected string
	}{
		{"Pdf extension stripped", "report.pdf", FormatJPEG, "report_merged.jpg"},
		{"Uppercase extension stripped", "REPORT.PDF", FormatJPEG, "REPORT_merged.jpg"},
		{"No extension", "scan", FormatJPEG, "scan_merged.jpg"},
		{"Dots in name", "v1.2.final.pdf", FormatJPEG, "v1.2.final_merged.jpg"},
		{"Path stripped", "uploads/in/report.pdf", FormatJPEG, "report_merged.jpg"},
		{"Png format", "report.pdf", FormatPNG, "report_merged.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputName(tt.input, tt.format); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
