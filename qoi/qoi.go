// Package qoi decodes images in the QOI ("Quite OK Image") format.
package qoi

import (
	"image"
	"image/color"
)

// Magic is the 4-byte signature that opens every QOI file.
const Magic = "qoif"

// HeaderSize is the fixed size of the file header in bytes.
const HeaderSize = 14

const (
	cacheSize = 64

	// Decoding allocates 4 output bytes per pixel up front, so the
	// pixel count is capped to keep a hostile header from demanding
	// a buffer beyond ~1.6GB.
	maxPixels = 400_000_000
)

// endMarker closes the chunk stream of every QOI file.
var endMarker = []byte{0, 0, 0, 0, 0, 0, 0, 1}

const (
	opIndex byte = 0b00000000
	opDiff  byte = 0b01000000
	opLuma  byte = 0b10000000
	opRun   byte = 0b11000000
	opRGB   byte = 0b11111110
	opRGBA  byte = 0b11111111
)

const (
	maskOp byte = 0b11000000
	mask6  byte = 0b00111111
	mask4  byte = 0b00001111
	mask2  byte = 0b00000011
)

func init() {
	image.RegisterFormat("qoi", Magic, Decode, DecodeConfig)
}

// colorHash maps a pixel to its color cache slot. The byte arithmetic
// wraps at 256, which preserves the value mod 64.
func colorHash(c color.NRGBA) byte {
	return (3*c.R + 5*c.G + 7*c.B + 11*c.A) % cacheSize
}
