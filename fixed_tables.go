// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import "sync"

// fixedTables returns the literal/length and distance tables mandated for
// fixed Huffman blocks. They are immutable and built once.
var fixedTables = sync.OnceValues(func() (*fixedTableSet, error) {
	literal, err := newHuffmanTableFromLengths(fixedLiteralLengths())
	if err != nil {
		return nil, err
	}

	distance, err := newHuffmanTableFromLengths(fixedDistanceLengths())
	if err != nil {
		return nil, err
	}

	return &fixedTableSet{literal: literal, distance: distance}, nil
})

type fixedTableSet struct {
	literal  *huffmanTable
	distance *huffmanTable
}

// fixedLiteralLengths returns the RFC 1951 3.2.6 code lengths:
//
//	  0 - 143  8 bits
//	144 - 255  9 bits
//	256 - 279  7 bits
//	280 - 287  8 bits
func fixedLiteralLengths() []uint8 {
	lengths := make([]uint8, numLiteralCodes)
	for i := range lengths {
		switch {
		case i < 144:
			lengths[i] = 8
		case i < 256:
			lengths[i] = 9
		case i < 280:
			lengths[i] = 7
		default:
			lengths[i] = 8
		}
	}

	return lengths
}

// fixedDistanceLengths returns 5 for every distance code.
func fixedDistanceLengths() []uint8 {
	lengths := make([]uint8, numDistanceCodes)
	for i := range lengths {
		lengths[i] = 5
	}

	return lengths
}
