// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package png

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	stdpng "image/png"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/zinflate"
)

// appendChunk appends a chunk with a correct CRC.
func appendChunk(dst []byte, typ string, data []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(data)))
	start := len(dst)
	dst = append(dst, typ...)
	dst = append(dst, data...)
	return binary.BigEndian.AppendUint32(dst, crc32.ChecksumIEEE(dst[start:]))
}

func ihdr(w, h uint32, depth uint8, ct ColorType, interlace uint8) []byte {
	b := binary.BigEndian.AppendUint32(nil, w)
	b = binary.BigEndian.AppendUint32(b, h)
	return append(b, depth, byte(ct), 0, 0, interlace)
}

func zlibBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// grayFile builds a 4x2 8-bit grayscale image whose IDAT stream is split into parts chunks.
func grayFile(t *testing.T, parts int) (file, raw []byte) {
	raw = []byte{
		0, 10, 20, 30, 40,
		0, 50, 60, 70, 80,
	}
	compressed := zlibBytes(t, raw)

	file = []byte(Signature)
	file = appendChunk(file, TypeIHDR, ihdr(4, 2, 8, Grayscale, InterlaceNone))
	step := (len(compressed) + parts - 1) / parts
	for off := 0; off < len(compressed); off += step {
		file = appendChunk(file, TypeIDAT, compressed[off:min(off+step, len(compressed))])
	}
	file = appendChunk(file, TypeIEND, nil)

	return file, raw
}

func TestDecode_StitchesIDATChunks(t *testing.T) {
	for _, parts := range []int{1, 2, 5} {
		file, raw := grayFile(t, parts)

		img, err := Decode(file, nil)
		require.NoError(t, err, "parts=%d", parts)
		assert.Equal(t, raw, img.Data)
		assert.Equal(t, Header{Width: 4, Height: 2, BitDepth: 8, ColorType: Grayscale}, img.Header)
		assert.Len(t, img.Chunks, parts+2)
	}
}

func TestDecode_StandardEncoderOutput(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 37, 23))
	for y := 0; y < 23; y++ {
		for x := 0; x < 37; x++ {
			src.Set(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 11), B: uint8(x ^ y), A: 200})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, stdpng.Encode(&buf, src))

	img, err := Decode(buf.Bytes(), nil)
	require.NoError(t, err)

	want, err := zlib.NewReader(bytes.NewReader(img.Compressed))
	require.NoError(t, err)
	wantData, err := io.ReadAll(want)
	require.NoError(t, err)

	assert.Equal(t, wantData, img.Data)

	size, ok := img.Header.ExpectedDataSize()
	require.True(t, ok)
	assert.Equal(t, size, len(img.Data))
	assert.Equal(t, TrueColorAlpha, img.Header.ColorType)
}

func TestDecode_IndexedWithPaletteAndBackground(t *testing.T) {
	raw := []byte{0, 0x1b}
	file := []byte(Signature)
	file = appendChunk(file, TypeIHDR, ihdr(4, 1, 2, Indexed, InterlaceNone))
	file = appendChunk(file, TypeSRGB, []byte{byte(IntentRelativeColorimetric)})
	file = appendChunk(file, TypePLTE, []byte{255, 0, 0, 0, 255, 0, 0, 0, 255})
	file = appendChunk(file, TypeBKGD, []byte{2})
	file = appendChunk(file, "tEXt", []byte("Comment\x00hi"))
	file = appendChunk(file, TypeIDAT, zlibBytes(t, raw))
	file = appendChunk(file, TypeIEND, nil)

	img, err := Decode(file, nil)
	require.NoError(t, err)

	want := []RGB{{R: 255}, {G: 255}, {B: 255}}
	if diff := cmp.Diff(want, img.Palette); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, img.SRGB)
	assert.Equal(t, IntentRelativeColorimetric, *img.SRGB)
	require.NotNil(t, img.Background)
	assert.Equal(t, uint8(2), img.Background.PaletteIndex)
	assert.Equal(t, raw, img.Data)
}

func TestDecode_OutputCappedByHeader(t *testing.T) {
	// 4x2 grayscale needs 10 bytes; the stream inflates to 11.
	file := []byte(Signature)
	file = appendChunk(file, TypeIHDR, ihdr(4, 2, 8, Grayscale, InterlaceNone))
	file = appendChunk(file, TypeIDAT, zlibBytes(t, make([]byte, 11)))
	file = appendChunk(file, TypeIEND, nil)

	_, err := Decode(file, nil)
	assert.ErrorIs(t, err, zinflate.ErrOutOfMemory)

	img, err := Decode(file, &Options{Inflate: zinflate.DefaultDecompressOptions()})
	require.NoError(t, err)
	assert.Len(t, img.Data, 11)
}

func TestParse_Errors(t *testing.T) {
	good, _ := grayFile(t, 1)
	idat := appendChunk(nil, TypeIDAT, zlibBytes(t, make([]byte, 10)))
	iend := appendChunk(nil, TypeIEND, nil)
	grayHeader := appendChunk([]byte(Signature), TypeIHDR, ihdr(4, 2, 8, Grayscale, InterlaceNone))

	badCRC := bytes.Clone(good)
	badCRC[len(Signature)+8+3] ^= 0xff

	cases := []struct {
		name string
		file []byte
		want error
	}{
		{name: "signature", file: []byte("GIF89a.."), want: ErrBadSignature},
		{name: "empty", file: nil, want: ErrBadSignature},
		{name: "crc", file: badCRC, want: ErrBadCRC},
		{name: "truncated", file: good[:len(good)-5], want: ErrTruncated},
		{name: "no IEND", file: good[:len(good)-len(iend)], want: ErrMissingChunk},
		{
			name: "IDAT first",
			file: append(append([]byte(Signature), idat...), iend...),
			want: ErrChunkOrder,
		},
		{
			name: "no IDAT",
			file: append(bytes.Clone(grayHeader), iend...),
			want: ErrMissingChunk,
		},
		{
			name: "split IDAT",
			file: concat(grayHeader, idat, appendChunk(nil, "tEXt", []byte("a\x00b")), idat, iend),
			want: ErrChunkOrder,
		},
		{
			name: "palette in grayscale",
			file: concat(grayHeader, appendChunk(nil, TypePLTE, []byte{1, 2, 3}), idat, iend),
			want: ErrInvalidChunk,
		},
		{
			name: "indexed without palette",
			file: concat(appendChunk([]byte(Signature), TypeIHDR, ihdr(1, 1, 8, Indexed, 0)), idat, iend),
			want: ErrMissingChunk,
		},
		{
			name: "unknown critical",
			file: concat(grayHeader, appendChunk(nil, "ABCD", nil), idat, iend),
			want: ErrInvalidChunk,
		},
		{
			name: "bad chunk type",
			file: concat(grayHeader, appendChunk(nil, "AB1D", nil), idat, iend),
			want: ErrInvalidChunk,
		},
		{
			name: "oversized length",
			file: concat(grayHeader, []byte{0x80, 0, 0, 0, 'I', 'D', 'A', 'T', 0, 0, 0, 0}),
			want: ErrChunkTooLarge,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.file, nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_SkipCRC(t *testing.T) {
	good, raw := grayFile(t, 1)
	badCRC := bytes.Clone(good)
	badCRC[len(Signature)+8+13] ^= 0xff

	img, err := Decode(badCRC, &Options{SkipCRC: true})
	require.NoError(t, err)
	assert.Equal(t, raw, img.Data)
}

func TestDecode_CorruptImageData(t *testing.T) {
	compressed := zlibBytes(t, make([]byte, 10))
	compressed[len(compressed)-1] ^= 0x01

	file := []byte(Signature)
	file = appendChunk(file, TypeIHDR, ihdr(4, 2, 8, Grayscale, InterlaceNone))
	file = appendChunk(file, TypeIDAT, compressed)
	file = appendChunk(file, TypeIEND, nil)

	_, err := Decode(file, nil)
	assert.ErrorIs(t, err, zinflate.ErrChecksumMismatch)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
