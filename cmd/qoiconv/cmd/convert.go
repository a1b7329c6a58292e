package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrMatrix1729/qoi/imgconv"
	"github.com/MrMatrix1729/qoi/qoi"
)

var (
	convertOutput string
	convertFormat string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input.qoi[.zst]>",
	Short: "Decode a QOI file and write it as PNG, BMP or TIFF",
	Long: `Decode a QOI file and write it in another raster format.

The output path defaults to the input path with the extension replaced
by .png. The format is taken from --format, or derived from the output
extension.

Example:
  qoiconv convert dice.qoi -o dice.tiff`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		data, err := loadInput(input)
		if err != nil {
			return err
		}

		decoded, err := qoi.Decode(bytes.NewReader(data))
		if err != nil {
			return err
		}
		img := imgconv.ToNRGBA(decoded)

		output := convertOutput
		if output == "" {
			output = outputPath(input, convertFormat)
		}

		format := convertFormat
		if format == "" {
			format = imgconv.FormatForPath(output)
		}

		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("could not create output: %w", err)
		}
		defer out.Close()

		if err := imgconv.Encode(out, img, format); err != nil {
			return err
		}

		bounds := img.Bounds()
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%dx%d)\n", input, output, bounds.Dx(), bounds.Dy())
		return nil
	},
}

// outputPath swaps the input's extension for the target format's,
// stripping a trailing .zst first.
func outputPath(input, format string) string {
	base := strings.TrimSuffix(input, ".zst")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if format == "" {
		format = imgconv.FormatPNG
	}
	return base + "." + format
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output path (default: input with format extension)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "output format: png, bmp or tiff (default: from output extension)")
	rootCmd.AddCommand(convertCmd)
}
