// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import "github.com/pkg/errors"

// HeaderSize is the size in bytes of the zlib stream header.
const HeaderSize = 2

// Header is the decoded two-byte zlib header (CMF, FLG).
type Header struct {
	// Method is the CM field; 8 means deflate.
	Method int
	// WindowSize is the LZ77 window size in bytes declared by CINFO.
	WindowSize int
	// Level is the FLEVEL hint (0 fastest .. 3 maximum compression).
	Level int
	// HasDictionary reports the FDICT flag.
	HasDictionary bool
}

// ParseHeader decodes and validates the zlib header at the start of src.
// Only the deflate method without a preset dictionary is accepted.
func ParseHeader(src []byte) (Header, error) {
	if len(src) < HeaderSize {
		return Header{}, errors.Wrap(ErrTruncatedInput, "zlib header")
	}

	cmf, flg := int(src[0]), int(src[1])
	if (cmf*256+flg)%headerCheckMod != 0 {
		return Header{}, errors.Wrapf(ErrBadEnvelope, "header check failed for cmf=0x%02x flg=0x%02x", cmf, flg)
	}

	h := Header{
		Method:        cmf & 0x0f,
		Level:         flg >> 6,
		HasDictionary: flg&flagDictionary != 0,
	}

	if h.Method != methodDeflate {
		return h, errors.Wrapf(ErrUnsupportedMethod, "method %d", h.Method)
	}

	windowBits := cmf>>4 + windowBitsBias
	if windowBits > 15 {
		return h, errors.Wrapf(ErrBadEnvelope, "window of 2^%d bytes exceeds %d", windowBits, maxWindowSize)
	}
	h.WindowSize = 1 << windowBits

	if h.HasDictionary {
		return h, errors.Wrap(ErrUnsupportedFeature, "preset dictionary")
	}

	return h, nil
}
