// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package png

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/pkg/errors"
)

// Signature is the 8-byte magic at the start of every PNG file.
const Signature = "\x89PNG\r\n\x1a\n"

// Chunk types understood by this package.
const (
	TypeIHDR = "IHDR"
	TypePLTE = "PLTE"
	TypeIDAT = "IDAT"
	TypeIEND = "IEND"
	TypeSRGB = "sRGB"
	TypeBKGD = "bKGD"
)

const (
	chunkOverhead = 12 // length, type and crc fields
	maxChunkLen   = 1<<31 - 1
)

// Chunk is one length-prefixed, CRC-protected record. Data aliases the input.
type Chunk struct {
	Type   string
	Offset int
	Data   []byte
	CRC    uint32
}

// Critical reports whether decoders must understand the chunk (uppercase first letter).
func (c Chunk) Critical() bool {
	return c.Type[0]&0x20 == 0
}

// chunkReader walks the chunks following the signature.
type chunkReader struct {
	src       []byte
	pos       int
	verifyCRC bool
}

func newChunkReader(src []byte, verifyCRC bool) (*chunkReader, error) {
	if len(src) < len(Signature) || string(src[:len(Signature)]) != Signature {
		return nil, ErrBadSignature
	}

	return &chunkReader{src: src, pos: len(Signature), verifyCRC: verifyCRC}, nil
}

// done reports whether every input byte has been consumed.
func (r *chunkReader) done() bool {
	return r.pos >= len(r.src)
}

// next parses the chunk at the current position and advances past it.
func (r *chunkReader) next() (Chunk, error) {
	rest := r.src[r.pos:]
	if len(rest) < chunkOverhead {
		return Chunk{}, errors.Wrapf(ErrTruncated, "chunk header at offset %d", r.pos)
	}

	length := binary.BigEndian.Uint32(rest[0:4])
	if length > maxChunkLen {
		return Chunk{}, errors.Wrapf(ErrChunkTooLarge, "length %d at offset %d", length, r.pos)
	}

	typ := rest[4:8]
	if !validChunkType(typ) {
		return Chunk{}, errors.Wrapf(ErrInvalidChunk, "chunk type %q at offset %d", typ, r.pos)
	}

	if uint64(len(rest)) < uint64(length)+chunkOverhead {
		return Chunk{}, errors.Wrapf(ErrTruncated, "%s chunk of %d bytes at offset %d", typ, length, r.pos)
	}

	c := Chunk{
		Type:   string(typ),
		Offset: r.pos,
		Data:   rest[8 : 8+length],
		CRC:    binary.BigEndian.Uint32(rest[8+length:]),
	}

	if r.verifyCRC {
		if got := crc32.ChecksumIEEE(rest[4 : 8+length]); got != c.CRC {
			return Chunk{}, errors.Wrapf(ErrBadCRC, "%s chunk at offset %d: stored %08x, computed %08x", c.Type, r.pos, c.CRC, got)
		}
	}

	r.pos += int(length) + chunkOverhead
	return c, nil
}

// validChunkType reports whether typ is four ASCII letters.
func validChunkType(typ []byte) bool {
	for _, b := range typ {
		if (b < 'A' || b > 'Z') && (b < 'a' || b > 'z') {
			return false
		}
	}

	return true
}
