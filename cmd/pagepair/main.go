// Package main is the entry point for the pagepair CLI, the local batch
// counterpart of the HTTP API.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pagepair CLI.
var rootCmd = &cobra.Command{
	Use:   "pagepair",
	Short: "Merge the first two pages of PDFs into one side-by-side image",
	Long: `pagepair renders the first two pages of each given PDF, pastes them next to
each other on one canvas and encodes the result as JPEG (or PNG). Documents
with fewer than two pages fail individually without stopping the batch.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
