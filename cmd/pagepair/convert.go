package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/visalhout/PagePair/pkg/pagepair"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert two-page PDFs to side-by-side images",
	Long: `Convert renders pages one and two of every given PDF at the requested
resolution, merges them horizontally and writes <name>_merged.jpg (or .png)
into the output directory. With --zip the successful outputs are additionally
bundled into one timestamped archive.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Int("dpi", 300, "rasterization resolution, 72-600")
	convertCmd.Flags().Int("quality", 97, "jpeg quality, 50-100")
	convertCmd.Flags().Int("gap", 0, "gap between the two pages in pixels")
	convertCmd.Flags().Bool("swap", false, "put page two on the left")
	convertCmd.Flags().String("format", "jpg", "output format: jpg or png")
	convertCmd.Flags().String("align", "height", "normalize pages by height or width")
	convertCmd.Flags().String("background", "white", "background preset: white, lightgray or black")
	convertCmd.Flags().Bool("sharpen", false, "sharpen the merged image")
	convertCmd.Flags().String("out", ".", "output directory")
	convertCmd.Flags().Bool("zip", false, "also write a zip archive of all outputs")

	rootCmd.AddCommand(convertCmd)
}

func optionsFromFlags(cmd *cobra.Command) (*pagepair.Options, error) {
	opts := pagepair.NewDefaultOptions()

	opts.DPI, _ = cmd.Flags().GetInt("dpi")
	if opts.DPI < 72 || opts.DPI > 600 {
		return nil, fmt.Errorf("dpi must be between 72 and 600, got %d", opts.DPI)
	}

	opts.Quality, _ = cmd.Flags().GetInt("quality")
	if opts.Quality < 50 || opts.Quality > 100 {
		return nil, fmt.Errorf("quality must be between 50 and 100, got %d", opts.Quality)
	}

	opts.GapPx, _ = cmd.Flags().GetInt("gap")
	if opts.GapPx < 0 {
		return nil, fmt.Errorf("gap must not be negative, got %d", opts.GapPx)
	}

	opts.SwapPages, _ = cmd.Flags().GetBool("swap")
	opts.Sharpen, _ = cmd.Flags().GetBool("sharpen")

	format, _ := cmd.Flags().GetString("format")
	switch pagepair.Format(strings.ToLower(format)) {
	case pagepair.FormatJPEG, pagepair.FormatPNG:
		opts.Format = pagepair.Format(strings.ToLower(format))
	default:
		return nil, fmt.Errorf("format must be jpg or png, got %s", format)
	}

	align, _ := cmd.Flags().GetString("align")
	switch pagepair.AlignMode(strings.ToLower(align)) {
	case pagepair.AlignHeight, pagepair.AlignWidth:
		opts.AlignBy = pagepair.AlignMode(strings.ToLower(align))
	default:
		return nil, fmt.Errorf("align must be height or width, got %s", align)
	}

	background, _ := cmd.Flags().GetString("background")
	bg, err := pagepair.ParseBackground(background)
	if err != nil {
		return nil, err
	}
	opts.Background = bg

	return opts, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := make([]pagepair.File, 0, len(args))
	for _, arg := range args {
		data, err := os.ReadFile(arg)
		if err != nil {
			// An unreadable file fails on its own, the batch goes on
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
			continue
		}
		files = append(files, pagepair.File{Name: arg, Data: data})
	}

	outcomes := pagepair.ConvertAll(files, opts)

	var results []*pagepair.Result
	for _, outcome := range outcomes {
		if !outcome.Ok() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", outcome.OriginalName, outcome.Err)
			continue
		}

		result := outcome.Result
		outPath := filepath.Join(outDir, result.OutputName)
		if err := os.WriteFile(outPath, result.Data, 0644); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: failed to write output: %v\n", outcome.OriginalName, err)
			continue
		}

		results = append(results, result)
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%dx%d, %d pages, %d dpi)\n",
			outcome.OriginalName, outPath,
			result.Meta.Width, result.Meta.Height, result.Meta.Pages, result.Meta.DPI)
	}

	if writeZip, _ := cmd.Flags().GetBool("zip"); writeZip && len(results) > 0 {
		archivePath := filepath.Join(outDir, pagepair.ArchiveName("pagepair", time.Now()))
		archive, err := os.Create(archivePath)
		if err != nil {
			return fmt.Errorf("failed to create archive: %w", err)
		}
		defer archive.Close()

		if err := pagepair.WriteZip(archive, results); err != nil {
			return fmt.Errorf("failed to write archive: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "archive: %s\n", archivePath)
	}

	// Unreadable paths never reach outcomes, so success is counted against
	// the arguments, not the batch.
	if len(results) == 0 {
		return fmt.Errorf("all %d file(s) failed to convert", len(args))
	}

	return nil
}
