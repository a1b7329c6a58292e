package qoi

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Header holds the fields of the fixed 14-byte QOI file header.
// Channels and Colorspace are informative only; the decoder always
// produces 4-channel output and passes both fields through without
// validation.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}

// ParseHeader parses and validates the file header and returns it
// together with the remaining bytes, the chunk payload. All multi-byte
// fields are big-endian.
func ParseHeader(data []byte) (Header, []byte, error) {
	if len(data) < HeaderSize {
		return Header{}, nil, fmt.Errorf("%w: got %d bytes, want %d", ErrTruncatedHeader, len(data), HeaderSize)
	}
	if !bytes.Equal(data[:4], []byte(Magic)) {
		return Header{}, nil, fmt.Errorf("%w: %q", ErrInvalidMagic, data[:4])
	}

	h := Header{
		Width:      binary.BigEndian.Uint32(data[4:8]),
		Height:     binary.BigEndian.Uint32(data[8:12]),
		Channels:   data[12],
		Colorspace: data[13],
	}

	return h, data[HeaderSize:], nil
}
