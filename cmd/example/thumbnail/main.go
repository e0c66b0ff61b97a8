package main

import (
	"fmt"

	"github.com/noelyahan/impexp"
	"github.com/noelyahan/mergi"
	"github.com/visalhout/PagePair/pkg/pagepair"
)

func main() {
	imagePath := "pagepair_tmp/certificate_merged.jpg"
	outputPath := "pagepair_tmp/certificate_preview.png"

	img, err := mergi.Import(impexp.NewFileImporter(imagePath))
	if err != nil {
		panic(err)
	}

	preview, err := pagepair.Thumbnail(img, 1000)
	if err != nil {
		panic(err)
	}

	if err := mergi.Export(impexp.NewFileExporter(preview, outputPath)); err != nil {
		panic(err)
	}

	fmt.Printf("Thumbnail written to %s\n", outputPath)
}
