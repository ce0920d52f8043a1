// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package png

import (
	"encoding/binary"
	"math/bits"

	"github.com/pkg/errors"
)

// ColorType is the IHDR color type field.
type ColorType uint8

// Color types.
const (
	Grayscale      ColorType = 0
	TrueColor      ColorType = 2
	Indexed        ColorType = 3
	GrayscaleAlpha ColorType = 4
	TrueColorAlpha ColorType = 6
)

// Interlace methods.
const (
	InterlaceNone  = 0
	InterlaceAdam7 = 1
)

const headerLen = 13

// allowedDepths lists the legal bit depths per color type.
var allowedDepths = map[ColorType][]uint8{
	Grayscale:      {1, 2, 4, 8, 16},
	TrueColor:      {8, 16},
	Indexed:        {1, 2, 4, 8},
	GrayscaleAlpha: {8, 16},
	TrueColorAlpha: {8, 16},
}

// String returns a human readable color type name.
func (c ColorType) String() string {
	switch c {
	case Grayscale:
		return "grayscale"
	case TrueColor:
		return "truecolor"
	case Indexed:
		return "indexed"
	case GrayscaleAlpha:
		return "grayscale+alpha"
	case TrueColorAlpha:
		return "truecolor+alpha"
	default:
		return "unknown"
	}
}

// Channels returns the number of samples per pixel.
func (c ColorType) Channels() int {
	switch c {
	case TrueColor:
		return 3
	case GrayscaleAlpha:
		return 2
	case TrueColorAlpha:
		return 4
	default:
		return 1
	}
}

// Header holds the IHDR fields.
type Header struct {
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   ColorType
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

func parseHeader(data []byte) (Header, error) {
	if len(data) != headerLen {
		return Header{}, errors.Wrapf(ErrInvalidChunk, "IHDR length %d", len(data))
	}

	h := Header{
		Width:       binary.BigEndian.Uint32(data[0:4]),
		Height:      binary.BigEndian.Uint32(data[4:8]),
		BitDepth:    data[8],
		ColorType:   ColorType(data[9]),
		Compression: data[10],
		Filter:      data[11],
		Interlace:   data[12],
	}

	if h.Width == 0 || h.Height == 0 || h.Width > maxChunkLen || h.Height > maxChunkLen {
		return h, errors.Wrapf(ErrInvalidChunk, "dimensions %dx%d", h.Width, h.Height)
	}

	depths, ok := allowedDepths[h.ColorType]
	if !ok {
		return h, errors.Wrapf(ErrInvalidChunk, "color type %d", h.ColorType)
	}

	if !containsDepth(depths, h.BitDepth) {
		return h, errors.Wrapf(ErrInvalidChunk, "bit depth %d for %s", h.BitDepth, h.ColorType)
	}

	if h.Compression != 0 {
		return h, errors.Wrapf(ErrInvalidChunk, "compression method %d", h.Compression)
	}

	if h.Filter != 0 {
		return h, errors.Wrapf(ErrInvalidChunk, "filter method %d", h.Filter)
	}

	if h.Interlace != InterlaceNone && h.Interlace != InterlaceAdam7 {
		return h, errors.Wrapf(ErrInvalidChunk, "interlace method %d", h.Interlace)
	}

	return h, nil
}

func containsDepth(depths []uint8, d uint8) bool {
	for _, v := range depths {
		if v == d {
			return true
		}
	}

	return false
}

// BitsPerPixel returns the number of bits one pixel occupies in a scanline.
func (h Header) BitsPerPixel() int {
	return int(h.BitDepth) * h.ColorType.Channels()
}

// adam7Passes lists x offset, y offset, x step and y step for each pass.
var adam7Passes = [7][4]uint64{
	{0, 0, 8, 8},
	{4, 0, 8, 8},
	{0, 4, 4, 8},
	{2, 0, 4, 4},
	{0, 2, 2, 4},
	{1, 0, 2, 2},
	{0, 1, 1, 2},
}

// ExpectedDataSize returns the size of the decompressed IDAT stream: every
// scanline (of every Adam7 pass when interlaced) plus its filter type byte.
// ok is false when the size does not fit in an int.
func (h Header) ExpectedDataSize() (size int, ok bool) {
	if h.Interlace != InterlaceAdam7 {
		return imageDataSize(uint64(h.Width), uint64(h.Height), uint64(h.BitsPerPixel()))
	}

	total := 0
	for _, p := range adam7Passes {
		w := passExtent(uint64(h.Width), p[0], p[2])
		ht := passExtent(uint64(h.Height), p[1], p[3])
		if w == 0 || ht == 0 {
			continue
		}

		n, ok := imageDataSize(w, ht, uint64(h.BitsPerPixel()))
		if !ok || total > maxInt-n {
			return 0, false
		}
		total += n
	}

	return total, true
}

const maxInt = int(^uint(0) >> 1)

func passExtent(full, offset, step uint64) uint64 {
	if full <= offset {
		return 0
	}

	return (full - offset + step - 1) / step
}

// imageDataSize returns height * (1 + ceil(width*bpp/8)).
func imageDataSize(width, height, bpp uint64) (int, bool) {
	hi, rowBits := bits.Mul64(width, bpp)
	if hi != 0 {
		return 0, false
	}

	row := 1 + (rowBits+7)/8
	hi, total := bits.Mul64(row, height)
	if hi != 0 || total > uint64(maxInt) {
		return 0, false
	}

	return int(total), true
}
