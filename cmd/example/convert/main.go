package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/visalhout/PagePair/pkg/pagepair"
)

func main() {
	pdfFilePath := "pagepair_tmp/certificate.pdf"
	outputDir := "pagepair_tmp/tmp"

	data, err := os.ReadFile(pdfFilePath)
	if err != nil {
		panic(err)
	}

	result, err := pagepair.Convert(pdfFilePath, data, pagepair.NewDefaultOptions())
	if err != nil {
		panic(err)
	}

	outPath := filepath.Join(outputDir, result.OutputName)
	if err := os.WriteFile(outPath, result.Data, 0644); err != nil {
		panic(err)
	}

	fmt.Printf("PDF converted successfully. Output file: %s\n", outPath)
}
