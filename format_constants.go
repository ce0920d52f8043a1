// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

// zlib envelope (RFC 1950) constants.
const (
	methodDeflate  = 8       // CM value for deflate
	windowBitsBias = 8       // CINFO is log2(window size) - 8
	maxWindowSize  = 1 << 15 // largest window deflate allows
	headerCheckMod = 31      // CMF*256 + FLG must be a multiple of this
	flagDictionary = 0x20    // FDICT bit in FLG
	checksumSize   = 4       // big-endian Adler-32 trailer
)

// Deflate block (RFC 1951) constants.
const (
	blockStored   = 0
	blockFixed    = 1
	blockDynamic  = 2
	blockReserved = 3

	endOfBlock      = 256
	lengthCodeBase  = 257
	maxLengthCode   = 285
	maxDistanceCode = 29

	maxCodeLength       = 15
	numCodeLengthRanges = maxCodeLength + 1

	numLiteralCodes  = 288 // literal/length alphabet including the two unused codes
	numDistanceCodes = 32  // distance alphabet including the two unused codes
	maxLiteralCodes  = 286 // largest HLIT the dynamic header may declare
	maxDistanceCodes = 30  // largest HDIST the dynamic header may declare
)

// Dynamic block header field widths and biases.
const (
	hlitBits  = 5
	hdistBits = 5
	hclenBits = 4

	hlitBias  = 257
	hdistBias = 1
	hclenBias = 4

	codeLengthBits = 3
)

// Output buffer sizing.
const (
	initialExpansion   = 4
	minInitialCapacity = 64
)

// codeLengthOrder is the order in which code-length-code lengths appear in a dynamic block header.
var codeLengthOrder = [...]uint8{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// Base lengths and extra bit counts for literal/length codes 257..285.
var (
	lengthBase = [...]uint16{
		3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
		15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
		67, 83, 99, 115, 131, 163, 195, 227, 258,
	}
	lengthExtraBits = [...]uint8{
		0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
		1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
		4, 4, 4, 4, 5, 5, 5, 5, 0,
	}
)

// Base distances and extra bit counts for distance codes 0..29.
var (
	distanceBase = [...]uint16{
		1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
		33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
		1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
	}
	distanceExtraBits = [...]uint8{
		0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
		4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
		9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
	}
)
