// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitReader_FieldsAcrossByteBoundary(t *testing.T) {
	br := newBitReader([]byte{0xAB, 0xCD})

	v, err := br.readBits(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xB), v)

	v, err = br.readBits(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDA), v)

	v, err = br.readBits(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xC), v)

	assert.Equal(t, 0, br.bitsLeft())
}

func TestBitReader_Read32(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03, 0x04, 0xff}
	br := newBitReader(src)

	v, err := br.readBits(32)
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian.Uint32(src), v)

	_, err = br.readBits(33)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestBitReader_SingleBits(t *testing.T) {
	br := newBitReader([]byte{0b10100101})
	want := []uint32{1, 0, 1, 0, 0, 1, 0, 1}
	for i, w := range want {
		bit, err := br.readBit()
		require.NoError(t, err)
		assert.Equal(t, w, bit, "bit %d", i)
	}

	_, err := br.readBit()
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestBitReader_TruncatedReadDoesNotAdvance(t *testing.T) {
	br := newBitReader([]byte{0xff})
	_, err := br.readBits(3)
	require.NoError(t, err)

	_, err = br.readBits(6)
	require.ErrorIs(t, err, ErrTruncatedInput)
	assert.Equal(t, 3, br.pos)

	v, err := br.readBits(5)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1f), v)
}

func TestBitReader_AlignAndAlignedBytes(t *testing.T) {
	br := newBitReader([]byte{0x01, 0x10, 0x20, 0x30})

	_, err := br.readBits(1)
	require.NoError(t, err)
	assert.Equal(t, 3, br.remainingBytes())

	_, err = br.readAlignedBytes(1)
	require.ErrorIs(t, err, ErrInternal)

	br.alignToByte()
	assert.Equal(t, 8, br.pos)
	br.alignToByte()
	assert.Equal(t, 8, br.pos)

	p, err := br.readAlignedBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x10, 0x20}, p)

	_, err = br.readAlignedBytes(2)
	assert.ErrorIs(t, err, ErrTruncatedInput)
	assert.Equal(t, 3, br.bytesConsumed())
}
