package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qoiconv",
	Short: "qoiconv - convert QOI images to common raster formats",
	Long: `qoiconv decodes QOI ("Quite OK Image") files and writes them out
as PNG, BMP or TIFF.

Examples:
  qoiconv convert dice.qoi
  qoiconv convert dice.qoi.zst -o dice.bmp
  qoiconv info dice.qoi`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadInput reads the whole file, transparently unwrapping a zstd
// layer when the path carries a .zst extension.
func loadInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("could not open zstd stream: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}

	return data, nil
}
