package qoi

import "errors"

// Decoding failures wrap one of these sentinel errors, so callers can
// match the failure category with errors.Is instead of parsing the
// message.
var (
	// ErrTruncatedHeader means the input is shorter than the fixed
	// 14-byte header.
	ErrTruncatedHeader = errors.New("qoi: truncated header")

	// ErrInvalidMagic means the input does not start with "qoif".
	ErrInvalidMagic = errors.New("qoi: invalid magic")

	// ErrUnknownOpcode means the decoder hit a byte it could not
	// classify as any chunk type.
	ErrUnknownOpcode = errors.New("qoi: unknown opcode")

	// ErrTruncatedChunk means a multi-byte chunk ran past the end of
	// the input.
	ErrTruncatedChunk = errors.New("qoi: truncated chunk")

	// ErrLengthMismatch means the chunk stream produced fewer pixels
	// than the header promised.
	ErrLengthMismatch = errors.New("qoi: pixel data length mismatch")

	// ErrImageTooLarge means the header declares more pixels than the
	// decoder is willing to allocate.
	ErrImageTooLarge = errors.New("qoi: image too large")
)
