// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

// Package png walks the chunk structure of a PNG file and inflates its image
// data with zinflate. It validates the signature, chunk CRCs, chunk ordering
// and the IHDR, PLTE, sRGB and bKGD fields, and concatenates IDAT payloads
// into one zlib stream.
//
// The result is the raw filtered scanline data; scanline unfiltering and
// pixel conversion are left to the caller.
package png

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/woozymasta/zinflate"
)

// Options configures Parse and Decode. A nil *Options uses the defaults.
type Options struct {
	// SkipCRC disables chunk CRC verification.
	SkipCRC bool
	// Inflate is passed to zinflate.Decompress. When nil, Decode caps the
	// output at the size implied by IHDR.
	Inflate *zinflate.DecompressOptions
	// Logger receives debug events about the chunk walk. Nil disables logging.
	Logger *zerolog.Logger
}

// Image is a parsed PNG file.
type Image struct {
	Header     Header
	Palette    []RGB
	SRGB       *RenderingIntent
	Background *Background
	// Chunks lists every chunk in file order, including unrecognized ancillary ones.
	Chunks []Chunk
	// Compressed is the concatenation of all IDAT payloads.
	Compressed []byte
	// Data is the inflated scanline data; set by Decode only.
	Data []byte
}

// Parse walks the chunks of a PNG file without inflating the image data.
func Parse(src []byte, opts *Options) (*Image, error) {
	if opts == nil {
		opts = &Options{}
	}
	log := opts.logger()

	r, err := newChunkReader(src, !opts.SkipCRC)
	if err != nil {
		return nil, err
	}

	img := &Image{}
	p := parser{img: img}
	for !p.seenIEND {
		if r.done() {
			return nil, errors.Wrap(ErrMissingChunk, TypeIEND)
		}

		c, err := r.next()
		if err != nil {
			return nil, err
		}

		log.Debug().Str("type", c.Type).Int("offset", c.Offset).Int("length", len(c.Data)).Msg("chunk")

		if err := p.handle(c); err != nil {
			return nil, err
		}
	}

	if !r.done() {
		log.Debug().Int("bytes", len(src)-r.pos).Msg("ignoring data after IEND")
	}

	return img, nil
}

// Decode parses a PNG file and inflates its concatenated IDAT payload.
func Decode(src []byte, opts *Options) (*Image, error) {
	if opts == nil {
		opts = &Options{}
	}

	img, err := Parse(src, opts)
	if err != nil {
		return nil, err
	}

	inflateOpts := opts.Inflate
	if inflateOpts == nil {
		inflateOpts = &zinflate.DecompressOptions{Logger: opts.Logger}
		if size, ok := img.Header.ExpectedDataSize(); ok {
			inflateOpts.MaxOutputSize = size
		}
	}

	img.Data, err = zinflate.Decompress(img.Compressed, inflateOpts)
	if err != nil {
		return nil, errors.Wrap(err, "inflate image data")
	}

	return img, nil
}

func (o *Options) logger() *zerolog.Logger {
	if o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}

	return o.Logger
}

// parser tracks chunk ordering while filling an Image.
type parser struct {
	img       *Image
	seenIHDR  bool
	seenIDAT  bool
	idatEnded bool
	seenIEND  bool
}

func (p *parser) handle(c Chunk) error {
	if !p.seenIHDR && c.Type != TypeIHDR {
		return errors.Wrapf(ErrChunkOrder, "%s before IHDR", c.Type)
	}

	if p.seenIDAT && c.Type != TypeIDAT {
		p.idatEnded = true
	}

	p.img.Chunks = append(p.img.Chunks, c)

	var err error
	switch c.Type {
	case TypeIHDR:
		if p.seenIHDR {
			return errors.Wrap(ErrChunkOrder, "duplicate IHDR")
		}
		p.seenIHDR = true
		p.img.Header, err = parseHeader(c.Data)

	case TypePLTE:
		if p.img.Palette != nil || p.seenIDAT {
			return errors.Wrap(ErrChunkOrder, "PLTE after IDAT or duplicated")
		}
		if p.img.Header.ColorType == Grayscale || p.img.Header.ColorType == GrayscaleAlpha {
			return errors.Wrapf(ErrInvalidChunk, "PLTE in %s image", p.img.Header.ColorType)
		}
		p.img.Palette, err = parsePalette(c.Data, p.img.Header)

	case TypeSRGB:
		if p.img.Palette != nil || p.seenIDAT {
			return errors.Wrap(ErrChunkOrder, "sRGB after PLTE or IDAT")
		}
		var intent RenderingIntent
		intent, err = parseSRGB(c.Data)
		p.img.SRGB = &intent

	case TypeBKGD:
		if p.seenIDAT {
			return errors.Wrap(ErrChunkOrder, "bKGD after IDAT")
		}
		var bg Background
		bg, err = parseBackground(c.Data, p.img.Header, p.img.Palette)
		p.img.Background = &bg

	case TypeIDAT:
		if p.idatEnded {
			return errors.Wrap(ErrChunkOrder, "IDAT chunks are not consecutive")
		}
		if p.img.Header.ColorType == Indexed && p.img.Palette == nil {
			return errors.Wrap(ErrMissingChunk, "PLTE required for indexed image")
		}
		p.seenIDAT = true
		p.img.Compressed = append(p.img.Compressed, c.Data...)

	case TypeIEND:
		if !p.seenIDAT {
			return errors.Wrap(ErrMissingChunk, TypeIDAT)
		}
		if len(c.Data) != 0 {
			return errors.Wrapf(ErrInvalidChunk, "IEND length %d", len(c.Data))
		}
		p.seenIEND = true

	default:
		if c.Critical() {
			return errors.Wrapf(ErrInvalidChunk, "unknown critical chunk %s", c.Type)
		}
	}

	return err
}
