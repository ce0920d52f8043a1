// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import (
	"encoding/binary"
	"hash/adler32"
)

// bitWriter assembles deflate bit streams by hand for tests.
type bitWriter struct {
	buf   []byte
	nbits uint
}

// writeBits appends the n low bits of v, least significant first.
func (w *bitWriter) writeBits(v uint32, n uint) {
	for i := uint(0); i < n; i++ {
		if w.nbits%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if v>>i&1 == 1 {
			w.buf[len(w.buf)-1] |= 1 << (w.nbits % 8)
		}
		w.nbits++
	}
}

// writeCode appends an n-bit Huffman code, most significant bit first.
func (w *bitWriter) writeCode(code uint32, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		w.writeBits(code>>uint(i)&1, 1)
	}
}

func (w *bitWriter) align() {
	w.nbits = (w.nbits + 7) &^ 7
}

func (w *bitWriter) writeBytes(p []byte) {
	w.align()
	w.buf = append(w.buf, p...)
	w.nbits += uint(len(p)) * 8
}

func (w *bitWriter) bytes() []byte {
	return w.buf
}

// fixedLiteralCode returns the fixed Huffman code of a literal/length symbol.
func fixedLiteralCode(sym int) (code uint32, n uint) {
	switch {
	case sym < 144:
		return uint32(0x30 + sym), 8
	case sym < 256:
		return uint32(0x190 + sym - 144), 9
	case sym < 280:
		return uint32(sym - 256), 7
	default:
		return uint32(0xc0 + sym - 280), 8
	}
}

func (w *bitWriter) writeFixedLiteral(sym int) {
	w.writeCode(fixedLiteralCode(sym))
}

// zlibWrap frames a raw deflate body with the default zlib header and the Adler-32 of plain.
func zlibWrap(body, plain []byte) []byte {
	out := []byte{0x78, 0x9c}
	out = append(out, body...)
	return binary.BigEndian.AppendUint32(out, adler32.Checksum(plain))
}

// storedBody returns a single final stored block holding payload.
func storedBody(payload []byte, nlen uint16) []byte {
	var w bitWriter
	w.writeBits(1, 1)
	w.writeBits(blockStored, 2)

	var lens [4]byte
	binary.LittleEndian.PutUint16(lens[0:2], uint16(len(payload)))
	binary.LittleEndian.PutUint16(lens[2:4], nlen)
	w.writeBytes(lens[:])
	w.writeBytes(payload)

	return w.bytes()
}
