// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import "github.com/pkg/errors"

// outputBuffer is the growable destination of a decode. Positions are slice
// indexes, so reallocation never changes what a back-reference distance
// points at: distances are always measured from len(data).
type outputBuffer struct {
	data  []byte
	limit int
}

func newOutputBuffer(capacity, limit int) *outputBuffer {
	return &outputBuffer{
		data:  make([]byte, 0, capacity),
		limit: limit,
	}
}

// len returns the number of bytes written so far.
func (b *outputBuffer) len() int {
	return len(b.data)
}

// bytes returns the written bytes.
func (b *outputBuffer) bytes() []byte {
	return b.data
}

// reserve makes room for n more bytes, doubling capacity as often as needed.
func (b *outputBuffer) reserve(n int) error {
	need := len(b.data) + n
	if b.limit > 0 && need > b.limit {
		return errors.Wrapf(ErrOutOfMemory, "need %d bytes, limit %d", need, b.limit)
	}

	if need <= cap(b.data) {
		return nil
	}

	newCap := max(cap(b.data), minInitialCapacity)
	for newCap < need {
		newCap *= 2
	}

	if b.limit > 0 {
		newCap = min(newCap, b.limit)
	}

	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown

	return nil
}

// appendByte writes one literal byte.
func (b *outputBuffer) appendByte(c byte) error {
	if err := b.reserve(1); err != nil {
		return err
	}

	b.data = append(b.data, c)
	return nil
}

// appendBytes writes p verbatim.
func (b *outputBuffer) appendBytes(p []byte) error {
	if err := b.reserve(len(p)); err != nil {
		return err
	}

	b.data = append(b.data, p...)
	return nil
}

// appendCopy writes length bytes starting distance bytes before the current end.
func (b *outputBuffer) appendCopy(distance, length int) error {
	outPos := len(b.data)
	if distance <= 0 || distance > outPos {
		return errors.Wrapf(ErrInvalidBlock, "distance %d exceeds %d bytes of output", distance, outPos)
	}

	if err := b.reserve(length); err != nil {
		return err
	}

	b.data = b.data[:outPos+length]
	copyBackRef(b.data, outPos, distance, length)

	return nil
}
