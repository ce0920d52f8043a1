// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

/*
Package zinflate implements a zlib (RFC 1950) / deflate (RFC 1951) decoder
for complete in-memory streams, such as the concatenated IDAT payload of a
PNG image.

A stream is a two-byte header, a sequence of stored, fixed-Huffman or
dynamic-Huffman blocks and a big-endian Adler-32 trailer. Huffman tables are
canonical: they are rebuilt from code lengths and decoded one bit at a time
by comparing against the code range of each length. Back-references are
resolved against the growing output buffer by logical position, so they stay
valid across buffer growth.

Preset dictionaries, compression and streaming (bounded memory) decoding are
not supported.

# Decompress

From a byte slice (opts may be nil):

	out, err := zinflate.Decompress(compressed, nil)

To cap the output size:

	out, err := zinflate.Decompress(compressed, &zinflate.DecompressOptions{MaxOutputSize: 64 << 20})

To get the number of input bytes consumed (e.g. when the stream is followed by other data):

	out, nRead, err := zinflate.DecompressN(compressed, nil)
	// advance: compressed = compressed[nRead:]

From an io.Reader:

	out, err := zinflate.DecompressFromReader(r, zinflate.DefaultDecompressOptions())

# Errors

All failures wrap one of the Err* sentinels (ErrTruncatedInput,
ErrBadEnvelope, ErrInvalidTable, ErrNoMatchingCode, ErrInvalidBlock,
ErrChecksumMismatch, ...); classify them with errors.Is.
*/
package zinflate
