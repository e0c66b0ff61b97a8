package pagepair

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestArchiveName(t *testing.T) {
	at := time.Date(2025, 8, 25, 14, 32, 10, 0, time.UTC)

	if got := ArchiveName("merged", at); got != "merged_20250825_143210.zip" {
		t.Errorf("unexpected archive name %s", got)
	}
	if got := ArchiveName("", at); got != "pagepair_20250825_143210.zip" {
		t.Errorf("expected default prefix, got %s", got)
	}
}

func TestWriteZip(t *testing.T) {
	results := []*Result{
		{OutputName: "a_merged.jpg", Data: []byte("jpeg-a")},
		nil, // failed outcome, skipped
		{OutputName: "b_merged.jpg", Data: []byte("jpeg-b")},
	}

	var buf bytes.Buffer
	if err := WriteZip(&buf, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a readable archive: %v", err)
	}

	if len(reader.File) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(reader.File))
	}

	want := map[string]string{
		"a_merged.jpg": "jpeg-a",
		"b_merged.jpg": "jpeg-b",
	}
	for _, f := range reader.File {
		expected, ok := want[f.Name]
		if !ok {
			t.Errorf("unexpected entry %s", f.Name)
			continue
		}
		if f.Method != zip.Deflate {
			t.Errorf("entry %s is not deflate compressed", f.Name)
		}

		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read entry %s: %v", f.Name, err)
		}
		if string(data) != expected {
			t.Errorf("entry %s: expected %q, got %q", f.Name, expected, data)
		}
	}
}

func TestZipDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "one_merged.jpg"), []byte("one"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "two_merged.jpg"), []byte("two"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ZipDir(dir, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a readable archive: %v", err)
	}
	if len(reader.File) != 2 {
		t.Errorf("expected 2 entries, got %d", len(reader.File))
	}
}
