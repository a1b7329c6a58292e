package qoi

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
)

// decodeState is the mutable context of one decode pass: the previous
// pixel register, the color cache, and the output buffer. A fresh state
// is created per invocation; nothing is shared between decodes.
type decodeState struct {
	prev  color.NRGBA
	cache [cacheSize]color.NRGBA
	out   []byte
}

func newDecodeState(capacity int) *decodeState {
	return &decodeState{
		prev: color.NRGBA{A: 255},
		out:  make([]byte, 0, capacity),
	}
}

func (s *decodeState) emit(px color.NRGBA) {
	s.out = append(s.out, px.R, px.G, px.B, px.A)
}

// Each handler consumes the opcode byte plus its trailing bytes,
// updates the previous pixel register, appends to the output buffer,
// and reports how many input bytes it consumed. data starts at the
// opcode byte.

func (s *decodeState) handleRGB(data []byte) (int, error) {
	if len(data) < 4 {
		return 0, fmt.Errorf("%w: RGB needs 3 bytes, have %d", ErrTruncatedChunk, len(data)-1)
	}

	s.prev.R = data[1]
	s.prev.G = data[2]
	s.prev.B = data[3]

	s.emit(s.prev)
	return 4, nil
}

func (s *decodeState) handleRGBA(data []byte) (int, error) {
	if len(data) < 5 {
		return 0, fmt.Errorf("%w: RGBA needs 4 bytes, have %d", ErrTruncatedChunk, len(data)-1)
	}

	s.prev = color.NRGBA{R: data[1], G: data[2], B: data[3], A: data[4]}

	s.emit(s.prev)
	return 5, nil
}

func (s *decodeState) handleIndex(b1 byte) (int, error) {
	// the 6-bit index is always < 64, so it cannot miss the cache
	s.prev = s.cache[b1&mask6]

	s.emit(s.prev)
	return 1, nil
}

func (s *decodeState) handleDiff(b1 byte) (int, error) {
	s.prev.R += ((b1 >> 4) & mask2) - 2
	s.prev.G += ((b1 >> 2) & mask2) - 2
	s.prev.B += ((b1 >> 0) & mask2) - 2

	s.emit(s.prev)
	return 1, nil
}

func (s *decodeState) handleLuma(data []byte) (int, error) {
	if len(data) < 2 {
		return 0, fmt.Errorf("%w: LUMA needs a second byte", ErrTruncatedChunk)
	}

	vg := (data[0] & mask6) - 32

	s.prev.R += vg - 8 + ((data[1] >> 4) & mask4)
	s.prev.G += vg
	s.prev.B += vg - 8 + ((data[1] >> 0) & mask4)

	s.emit(s.prev)
	return 2, nil
}

func (s *decodeState) handleRun(b1 byte) (int, error) {
	run := int(b1&mask6) + 1
	for n := 0; n < run; n++ {
		s.emit(s.prev)
	}
	return 1, nil
}

// DecodePixels runs the chunk stream in payload and returns the raw
// pixel buffer: row-major, top-to-bottom, 4 bytes (R,G,B,A) per pixel,
// exactly h.Width*h.Height*4 bytes long.
func DecodePixels(h Header, payload []byte) ([]byte, error) {
	// the product of two uint32 always fits in uint64, so the bound
	// check cannot be defeated by overflow
	pixels := uint64(h.Width) * uint64(h.Height)
	if pixels > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, h.Width, h.Height)
	}
	want := int(pixels) * 4

	s := newDecodeState(want)

	for i := 0; i < len(payload); {
		if i+len(endMarker) <= len(payload) && bytes.Equal(payload[i:i+len(endMarker)], endMarker) {
			// logical end of the pixel stream, not a chunk
			break
		}

		b1 := payload[i]

		var (
			n   int
			err error
		)
		// full-byte opcodes first: 0xFE/0xFF would otherwise match
		// the RUN tag
		switch {
		case b1 == opRGB:
			n, err = s.handleRGB(payload[i:])
		case b1 == opRGBA:
			n, err = s.handleRGBA(payload[i:])
		case b1&maskOp == opIndex:
			n, err = s.handleIndex(b1)
		case b1&maskOp == opDiff:
			n, err = s.handleDiff(b1)
		case b1&maskOp == opLuma:
			n, err = s.handleLuma(payload[i:])
		case b1&maskOp == opRun:
			n, err = s.handleRun(b1)
		default:
			// unreachable: the four 2-bit tags cover every byte
			err = fmt.Errorf("%w: 0b%08b", ErrUnknownOpcode, b1)
		}
		if err != nil {
			return nil, err
		}
		i += n

		// The cache sees the final pixel of each chunk exactly once,
		// also after a run.
		s.cache[colorHash(s.prev)] = s.prev
	}

	// a run may overshoot the last row; trim before checking the length
	if len(s.out) > want {
		s.out = s.out[:want]
	}
	if len(s.out) != want {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrLengthMismatch, want, len(s.out))
	}

	return s.out, nil
}

// Decode reads a QOI image from r until EOF and returns it as an
// *image.NRGBA.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	h, payload, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	pix, err := DecodePixels(h, payload)
	if err != nil {
		return nil, err
	}

	return &image.NRGBA{
		Pix:    pix,
		Stride: int(h.Width) * 4,
		Rect:   image.Rect(0, 0, int(h.Width), int(h.Height)),
	}, nil
}

// DecodeConfig returns the dimensions and color model of a QOI image
// without decoding the pixel stream.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}

	h, _, err := ParseHeader(buf)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}
