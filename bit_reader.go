// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

// bitReader is a cursor over an in-memory deflate stream. Fields are packed
// least-significant bit first within each byte.
//
// pos counts bits consumed from the start of src; the byte and bit offsets are
// derived from it so there is exactly one accounting rule.
type bitReader struct {
	src []byte
	pos int
}

func newBitReader(src []byte) *bitReader {
	return &bitReader{src: src}
}

// bitsLeft returns the number of unread bits.
func (br *bitReader) bitsLeft() int {
	return len(br.src)*8 - br.pos
}

// readBits reads n (0..32) bits as an unsigned value, first bit in the lowest position.
// On error the cursor does not move.
func (br *bitReader) readBits(n uint) (uint32, error) {
	if n > 32 {
		return 0, ErrInternal
	}

	if int(n) > br.bitsLeft() {
		return 0, ErrTruncatedInput
	}

	var (
		value uint32
		shift uint
	)
	for shift < n {
		bitOff := uint(br.pos & 7)
		take := min(8-bitOff, n-shift)
		chunk := (uint32(br.src[br.pos>>3]) >> bitOff) & (1<<take - 1)
		value |= chunk << shift
		shift += take
		br.pos += int(take)
	}

	return value, nil
}

// readBit reads a single bit.
func (br *bitReader) readBit() (uint32, error) {
	if br.pos >= len(br.src)*8 {
		return 0, ErrTruncatedInput
	}

	bit := uint32(br.src[br.pos>>3]>>(br.pos&7)) & 1
	br.pos++

	return bit, nil
}

// alignToByte drops the rest of a partially consumed byte.
func (br *bitReader) alignToByte() {
	br.pos = (br.pos + 7) &^ 7
}

// bytesConsumed returns the number of bytes touched so far, counting a partially read byte.
func (br *bitReader) bytesConsumed() int {
	return (br.pos + 7) >> 3
}

// remainingBytes returns the number of whole unread bytes; a partially read byte is not counted.
func (br *bitReader) remainingBytes() int {
	return len(br.src) - br.bytesConsumed()
}

// readAlignedBytes returns the next n bytes. The cursor must be byte aligned.
func (br *bitReader) readAlignedBytes(n int) ([]byte, error) {
	if br.pos&7 != 0 {
		return nil, ErrInternal
	}

	if n > br.remainingBytes() {
		return nil, ErrTruncatedInput
	}

	start := br.pos >> 3
	br.pos += n * 8

	return br.src[start : start+n], nil
}
