// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package png

import "errors"

// Sentinel errors for container parsing. Errors from the embedded zlib
// stream are returned as zinflate errors.
var (
	// ErrBadSignature is returned when the input does not start with the PNG signature.
	ErrBadSignature = errors.New("not a PNG file")
	// ErrTruncated is returned when a chunk extends past the end of the input.
	ErrTruncated = errors.New("truncated chunk")
	// ErrChunkTooLarge is returned when a chunk length exceeds 2^31-1.
	ErrChunkTooLarge = errors.New("chunk length out of range")
	// ErrBadCRC is returned when a chunk CRC-32 does not match its type and data.
	ErrBadCRC = errors.New("chunk crc mismatch")
	// ErrInvalidChunk is returned when a chunk's fields are malformed or out of range.
	ErrInvalidChunk = errors.New("invalid chunk")
	// ErrMissingChunk is returned when IHDR, PLTE (for indexed images), IDAT or IEND is absent.
	ErrMissingChunk = errors.New("missing chunk")
	// ErrChunkOrder is returned when chunks violate the ordering rules.
	ErrChunkOrder = errors.New("chunk out of order")
)
