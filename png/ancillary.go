// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package png

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// RGB is one palette entry.
type RGB struct {
	R, G, B uint8
}

const (
	paletteEntrySize  = 3
	maxPaletteEntries = 256
)

// parsePalette decodes PLTE. Indexed images may not have more entries than
// their bit depth can address.
func parsePalette(data []byte, h Header) ([]RGB, error) {
	if len(data) == 0 || len(data)%paletteEntrySize != 0 {
		return nil, errors.Wrapf(ErrInvalidChunk, "PLTE length %d", len(data))
	}

	n := len(data) / paletteEntrySize
	if n > maxPaletteEntries {
		return nil, errors.Wrapf(ErrInvalidChunk, "PLTE has %d entries", n)
	}

	if h.ColorType == Indexed && n > 1<<h.BitDepth {
		return nil, errors.Wrapf(ErrInvalidChunk, "PLTE has %d entries for bit depth %d", n, h.BitDepth)
	}

	palette := make([]RGB, n)
	for i := range palette {
		p := data[i*paletteEntrySize:]
		palette[i] = RGB{R: p[0], G: p[1], B: p[2]}
	}

	return palette, nil
}

// RenderingIntent is the sRGB chunk value.
type RenderingIntent uint8

// Rendering intents.
const (
	IntentPerceptual RenderingIntent = iota
	IntentRelativeColorimetric
	IntentSaturation
	IntentAbsoluteColorimetric
)

func parseSRGB(data []byte) (RenderingIntent, error) {
	if len(data) != 1 {
		return 0, errors.Wrapf(ErrInvalidChunk, "sRGB length %d", len(data))
	}

	intent := RenderingIntent(data[0])
	if intent > IntentAbsoluteColorimetric {
		return 0, errors.Wrapf(ErrInvalidChunk, "sRGB rendering intent %d", intent)
	}

	return intent, nil
}

// Background is the bKGD chunk. Which fields are meaningful depends on the
// color type: Gray for grayscale, R/G/B for truecolor, PaletteIndex for indexed.
type Background struct {
	Gray         uint16
	R, G, B      uint16
	PaletteIndex uint8
}

func parseBackground(data []byte, h Header, palette []RGB) (Background, error) {
	maxSample := uint16(1<<h.BitDepth - 1)

	var bg Background
	switch h.ColorType {
	case Grayscale, GrayscaleAlpha:
		if len(data) != 2 {
			return bg, errors.Wrapf(ErrInvalidChunk, "bKGD length %d", len(data))
		}
		bg.Gray = binary.BigEndian.Uint16(data)
		if bg.Gray > maxSample {
			return bg, errors.Wrapf(ErrInvalidChunk, "bKGD gray %d exceeds bit depth %d", bg.Gray, h.BitDepth)
		}

	case TrueColor, TrueColorAlpha:
		if len(data) != 6 {
			return bg, errors.Wrapf(ErrInvalidChunk, "bKGD length %d", len(data))
		}
		bg.R = binary.BigEndian.Uint16(data[0:2])
		bg.G = binary.BigEndian.Uint16(data[2:4])
		bg.B = binary.BigEndian.Uint16(data[4:6])
		if bg.R > maxSample || bg.G > maxSample || bg.B > maxSample {
			return bg, errors.Wrapf(ErrInvalidChunk, "bKGD color exceeds bit depth %d", h.BitDepth)
		}

	case Indexed:
		if len(data) != 1 {
			return bg, errors.Wrapf(ErrInvalidChunk, "bKGD length %d", len(data))
		}
		if palette == nil {
			return bg, errors.Wrap(ErrChunkOrder, "bKGD before PLTE")
		}
		bg.PaletteIndex = data[0]
		if int(bg.PaletteIndex) >= len(palette) {
			return bg, errors.Wrapf(ErrInvalidChunk, "bKGD palette index %d of %d", bg.PaletteIndex, len(palette))
		}
	}

	return bg, nil
}
