// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

// copyBackRef copies length bytes from dst[outputPos-dist:] to dst[outputPos:].
// The caller has checked that dist is in 1..outputPos and that dst is long enough.
// If dist < length, source and destination overlap and bytes written by this
// call are read back again (dist=1 repeats one byte), so the copy runs byte
// by byte. The built-in copy behaves like memmove and would not repeat them.
func copyBackRef(dst []byte, outputPos, dist, length int) {
	mPos := outputPos - dist
	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return
	}

	for i := range length {
		dst[outputPos+i] = dst[mPos+i]
	}
}
