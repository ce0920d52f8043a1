// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import "errors"

// Sentinel errors for decompression. Errors returned by this package wrap one
// of these values; use errors.Is to classify them.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrTruncatedInput is returned when a read needs more bytes than remain in the input.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrBadEnvelope is returned when the zlib header check fails or the window is too large.
	ErrBadEnvelope = errors.New("bad zlib header")
	// ErrUnsupportedMethod is returned when the header selects a method other than deflate.
	ErrUnsupportedMethod = errors.New("unsupported compression method")
	// ErrUnsupportedFeature is returned when the stream declares a preset dictionary.
	ErrUnsupportedFeature = errors.New("unsupported feature")
	// ErrInvalidTable is returned when a set of code lengths does not form a usable prefix code.
	ErrInvalidTable = errors.New("invalid huffman table")
	// ErrNoMatchingCode is returned when the input bits match no code of the active table.
	ErrNoMatchingCode = errors.New("no matching huffman code")
	// ErrInvalidBlock is returned for a reserved block type, a stored block length mismatch,
	// an undefined symbol or a back-reference reaching before the start of the output.
	ErrInvalidBlock = errors.New("invalid block")
	// ErrChecksumMismatch is returned when the Adler-32 trailer does not match the output.
	ErrChecksumMismatch = errors.New("adler32 checksum mismatch")
	// ErrOutOfMemory is returned when the output would grow past MaxOutputSize.
	ErrOutOfMemory = errors.New("output buffer limit exceeded")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")

	// ErrInternal is returned when the decoder hits an internal invariant violation.
	// It never depends on input content; seeing it means a bug in this package.
	ErrInternal = errors.New("internal decoder error")
)
