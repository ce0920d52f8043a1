// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import "github.com/rs/zerolog"

// DecompressOptions configures decompression. A nil *DecompressOptions is
// equivalent to DefaultDecompressOptions().
type DecompressOptions struct {
	// MaxOutputSize caps the decompressed size in bytes (0 = no limit).
	MaxOutputSize int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
	// InitialCapacity is the starting output buffer capacity (0 = derived from input size).
	InitialCapacity int
	// Logger receives debug events about the stream layout. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultDecompressOptions returns options with no size limits and logging disabled.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// logger returns the configured logger or a disabled one.
func (o *DecompressOptions) logger() *zerolog.Logger {
	if o == nil || o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}

	return o.Logger
}

// initialCapacity picks the starting output capacity for an input of srcLen bytes.
func (o *DecompressOptions) initialCapacity(srcLen int) int {
	capacity := o.InitialCapacity
	if capacity <= 0 {
		capacity = max(srcLen*initialExpansion, minInitialCapacity)
	}

	if o.MaxOutputSize > 0 {
		capacity = min(capacity, o.MaxOutputSize)
	}

	return capacity
}
