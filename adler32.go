// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const adlerMod = 65521

// adlerNMax is the largest number of bytes that can be summed before s2 may
// overflow 32 bits, so the modulo only runs once per block.
const adlerNMax = 5552

// Adler32 returns the zlib Adler-32 checksum of p.
func Adler32(p []byte) uint32 {
	s1, s2 := uint32(1), uint32(0)
	for len(p) > 0 {
		n := min(len(p), adlerNMax)
		for _, c := range p[:n] {
			s1 += uint32(c)
			s2 += s1
		}
		s1 %= adlerMod
		s2 %= adlerMod
		p = p[n:]
	}

	return s2<<16 | s1
}

// verifyChecksum compares the big-endian Adler-32 trailer with out.
func verifyChecksum(trailer, out []byte) error {
	want := binary.BigEndian.Uint32(trailer)
	got := Adler32(out)
	if want != got {
		return errors.Wrapf(ErrChecksumMismatch, "stream says %08x, output sums to %08x", want, got)
	}

	return nil
}
