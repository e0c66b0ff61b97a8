package pagepair

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ArchiveName builds the download name for a batch archive,
// e.g. "pagepair_20250825_143210.zip".
func ArchiveName(prefix string, t time.Time) string {
	if prefix == "" {
		prefix = "pagepair"
	}
	return fmt.Sprintf("%s_%s.zip", prefix, t.Format("20060102_150405"))
}

// WriteZip streams every successful output into one deflate-compressed
// archive, one entry per converted file.
func WriteZip(w io.Writer, results []*Result) error {
	archive := zip.NewWriter(w)

	for _, r := range results {
		if r == nil {
			continue
		}

		header := &zip.FileHeader{
			Name:     r.OutputName,
			Method:   zip.Deflate,
			Modified: time.Now(),
		}

		writer, err := archive.CreateHeader(header)
		if err != nil {
			return err
		}

		if _, err := writer.Write(r.Data); err != nil {
			return err
		}
	}

	return archive.Close()
}

func addFileToZip(archive *zip.Writer, filePath, archivePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return nil // Skip directories
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = archivePath
	header.Method = zip.Deflate

	writer, err := archive.CreateHeader(header)
	if err != nil {
		return err
	}

	fileReader, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer fileReader.Close()

	_, err = io.Copy(writer, fileReader)
	return err
}

// ZipDir archives every file under dir, used for batches already written to
// disk by the API layer.
func ZipDir(dir string, w io.Writer) error {
	archive := zip.NewWriter(w)
	defer archive.Close()

	return filepath.Walk(dir, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(dir, filePath)
		if err != nil {
			return err
		}

		return addFileToZip(archive, filePath, relPath)
	})
}
