// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// decodeBlock reads one block header and its body. It reports whether the
// block carried the final flag.
func decodeBlock(br *bitReader, out *outputBuffer, log *zerolog.Logger) (final bool, err error) {
	header, err := br.readBits(3)
	if err != nil {
		return false, err
	}

	final = header&1 == 1
	blockType := header >> 1

	log.Debug().Bool("final", final).Uint32("type", blockType).Int("out", out.len()).Msg("block")

	switch blockType {
	case blockStored:
		return final, decodeStoredBlock(br, out)

	case blockFixed:
		tables, err := fixedTables()
		if err != nil {
			return false, errors.Wrap(ErrInternal, err.Error())
		}
		return final, decodeHuffmanBlock(br, out, tables.literal, tables.distance)

	case blockDynamic:
		literal, distance, err := readDynamicTables(br, log)
		if err != nil {
			return false, err
		}
		return final, decodeHuffmanBlock(br, out, literal, distance)

	default:
		return false, errors.Wrapf(ErrInvalidBlock, "reserved block type %d", blockReserved)
	}
}

// decodeStoredBlock copies an uncompressed block. It starts on a byte
// boundary with LEN and its one's complement NLEN, both little-endian.
func decodeStoredBlock(br *bitReader, out *outputBuffer) error {
	br.alignToByte()

	lens, err := br.readAlignedBytes(4)
	if err != nil {
		return err
	}

	n := binary.LittleEndian.Uint16(lens[0:2])
	nn := binary.LittleEndian.Uint16(lens[2:4])
	if n != ^nn {
		return errors.Wrapf(ErrInvalidBlock, "stored block len=0x%04x nlen=0x%04x", n, nn)
	}

	payload, err := br.readAlignedBytes(int(n))
	if err != nil {
		return err
	}

	return out.appendBytes(payload)
}

// decodeHuffmanBlock decodes literal and back-reference symbols until the end-of-block code.
func decodeHuffmanBlock(br *bitReader, out *outputBuffer, literal, distance *huffmanTable) error {
	for {
		sym, err := literal.decode(br)
		if err != nil {
			return err
		}

		switch {
		case sym < endOfBlock:
			if err := out.appendByte(byte(sym)); err != nil {
				return err
			}
			continue

		case sym == endOfBlock:
			return nil

		case sym > maxLengthCode:
			return errors.Wrapf(ErrInvalidBlock, "undefined length code %d", sym)
		}

		length, err := readLength(br, sym)
		if err != nil {
			return err
		}

		dist, err := readDistance(br, distance)
		if err != nil {
			return err
		}

		if err := out.appendCopy(dist, length); err != nil {
			return err
		}
	}
}

// readLength turns a length code 257..285 plus its extra bits into a match length.
func readLength(br *bitReader, sym uint16) (int, error) {
	idx := sym - lengthCodeBase
	length := int(lengthBase[idx])
	if n := lengthExtraBits[idx]; n > 0 {
		extra, err := br.readBits(uint(n))
		if err != nil {
			return 0, err
		}
		length += int(extra)
	}

	return length, nil
}

// readDistance decodes a distance code and its extra bits into a match distance.
func readDistance(br *bitReader, distance *huffmanTable) (int, error) {
	sym, err := distance.decode(br)
	if err != nil {
		return 0, err
	}

	if sym > maxDistanceCode {
		return 0, errors.Wrapf(ErrInvalidBlock, "undefined distance code %d", sym)
	}

	dist := int(distanceBase[sym])
	if n := distanceExtraBits[sym]; n > 0 {
		extra, err := br.readBits(uint(n))
		if err != nil {
			return 0, err
		}
		dist += int(extra)
	}

	return dist, nil
}
