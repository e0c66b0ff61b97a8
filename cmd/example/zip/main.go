package main

import (
	"os"

	"github.com/visalhout/PagePair/pkg/pagepair"
)

func main() {
	dir := "cmd/example/zip/zip_test"
	// Write the archive outside dir, otherwise the walk would pick it up
	zipFile := "cmd/example/zip/output.zip"

	out, err := os.Create(zipFile)
	if err != nil {
		panic(err)
	}
	defer out.Close()

	if err := pagepair.ZipDir(dir, out); err != nil {
		panic(err)
	}

	println("Directory zipped successfully!")
}
