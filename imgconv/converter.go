// Package imgconv converts decoded images and writes them out in
// standard raster formats.
package imgconv

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Output formats understood by Encode.
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// ToNRGBA returns m as an *image.NRGBA, converting if needed. The
// conversion can be lossy for color models that NRGBA cannot represent.
func ToNRGBA(m image.Image) *image.NRGBA {
	if img, ok := m.(*image.NRGBA); ok {
		return img
	}

	img := image.NewNRGBA(m.Bounds())
	draw.Draw(img, img.Bounds(), m, m.Bounds().Min, draw.Src)

	return img
}

// Encode writes m to w in the named format.
func Encode(w io.Writer, m image.Image, format string) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, m)
	case FormatBMP:
		return bmp.Encode(w, m)
	case FormatTIFF:
		return tiff.Encode(w, m, nil)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// FormatForPath derives the output format from a file extension.
// Unrecognized or missing extensions fall back to PNG.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	default:
		return FormatPNG
	}
}
