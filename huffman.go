// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import (
	"cmp"
	"slices"
)

// huffmanSymbol is one alphabet entry. A zero length means the symbol is absent.
type huffmanSymbol struct {
	value  uint16
	length uint8
}

// codeRange describes all codes of one bit length. Canonical codes of equal
// length are consecutive, so the codes [start, end) map to
// symbols[offset : offset+count] in order.
type codeRange struct {
	count  int
	start  int
	end    int
	offset int
}

// huffmanTable decodes canonical Huffman codes. symbols is sorted by
// (length, value), which is exactly the order codes are assigned in.
type huffmanTable struct {
	symbols []huffmanSymbol
	ranges  [numCodeLengthRanges]codeRange
	maxLen  int
}

// newHuffmanTableFromLengths builds a table where lengths[i] is the code length of symbol i.
func newHuffmanTableFromLengths(lengths []uint8) (*huffmanTable, error) {
	symbols := make([]huffmanSymbol, len(lengths))
	for i, l := range lengths {
		symbols[i] = huffmanSymbol{value: uint16(i), length: l} //nolint:gosec // G115: alphabets are below 2^11
	}

	return newHuffmanTable(symbols)
}

// newHuffmanTable takes ownership of symbols and assigns canonical codes.
// Returns ErrInvalidTable when the lengths over-subscribe some code length.
func newHuffmanTable(symbols []huffmanSymbol) (*huffmanTable, error) {
	slices.SortFunc(symbols, func(a, b huffmanSymbol) int {
		if a.length != b.length {
			return cmp.Compare(a.length, b.length)
		}
		return cmp.Compare(a.value, b.value)
	})

	t := &huffmanTable{symbols: symbols}
	for _, sym := range symbols {
		if sym.length > maxCodeLength {
			return nil, ErrInvalidTable
		}
		t.ranges[sym.length].count++
	}

	offset := 0
	for l := range t.ranges {
		t.ranges[l].offset = offset
		offset += t.ranges[l].count
	}

	// Length 0 symbols never appear in the stream and take no part in code assignment.
	code := 0
	prevCount := 0
	for l := 1; l < numCodeLengthRanges; l++ {
		code = (code + prevCount) << 1
		r := &t.ranges[l]
		r.start = code
		r.end = code + r.count
		prevCount = r.count

		if r.count == 0 {
			continue
		}

		if r.end-1 >= 1<<l {
			return nil, ErrInvalidTable
		}

		t.maxLen = l
	}

	return t, nil
}

// decode reads one code from br, one bit at a time, most significant bit
// first, and returns the symbol value it maps to.
func (t *huffmanTable) decode(br *bitReader) (uint16, error) {
	code := 0
	for l := 1; l <= t.maxLen; l++ {
		bit, err := br.readBit()
		if err != nil {
			return 0, err
		}

		code = code<<1 | int(bit)

		r := &t.ranges[l]
		if r.count == 0 {
			continue
		}

		if code < r.start {
			// A shorter code would already have matched.
			return 0, ErrNoMatchingCode
		}

		if code < r.end {
			return t.symbols[r.offset+code-r.start].value, nil
		}
	}

	return 0, ErrNoMatchingCode
}
