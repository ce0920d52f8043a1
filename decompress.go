// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import "github.com/pkg/errors"

// Decompress inflates a complete zlib stream held in src.
// opts may be nil (no size limits, no logging). Bytes after the Adler-32
// trailer are ignored. On error no partial output is returned.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := DecompressN(src, opts)
	return out, err
}

// DecompressN inflates a zlib stream and also returns the number of input
// bytes the stream occupied (header, blocks and trailer). Use it to find the
// end of a stream followed by other data. nRead is 0 on error.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	out, nRead, err := decompressCore(src, opts)
	if err != nil {
		return nil, 0, err
	}

	return out, nRead, nil
}

// decompressCore validates the envelope, decodes blocks until the final one,
// then checks the trailer.
func decompressCore(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	log := opts.logger()

	header, err := ParseHeader(src)
	if err != nil {
		return nil, 0, err
	}

	log.Debug().
		Int("method", header.Method).
		Int("window", header.WindowSize).
		Int("level", header.Level).
		Msg("zlib header")

	br := newBitReader(src[HeaderSize:])
	out := newOutputBuffer(opts.initialCapacity(len(src)), opts.MaxOutputSize)

	for blocks := 0; ; blocks++ {
		final, err := decodeBlock(br, out, log)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "block %d at bit %d", blocks, br.pos)
		}

		if final {
			break
		}
	}

	br.alignToByte()
	trailer, err := br.readAlignedBytes(checksumSize)
	if err != nil {
		return nil, 0, errors.Wrap(err, "adler32 trailer")
	}

	if err := verifyChecksum(trailer, out.bytes()); err != nil {
		return nil, 0, err
	}

	nRead := HeaderSize + br.bytesConsumed()

	log.Debug().
		Int("in", nRead).
		Int("out", out.len()).
		Float64("ratio", float64(out.len())/float64(nRead)).
		Msg("inflated")

	return out.bytes(), nRead, nil
}
