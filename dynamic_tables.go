// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package zinflate

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// readDynamicTables parses a dynamic block header and returns its
// literal/length and distance tables.
//
// The header is three counts (HLIT, HDIST, HCLEN), then HCLEN 3-bit lengths
// for the code length alphabet in codeLengthOrder, then HLIT+HDIST code
// lengths encoded with that alphabet:
//
//	0 - 15  literal code length
//	    16  repeat previous length 3 - 6 times (2 extra bits)
//	    17  repeat zero 3 - 10 times (3 extra bits)
//	    18  repeat zero 11 - 138 times (7 extra bits)
//
// Runs may cross from the literal/length lengths into the distance lengths.
func readDynamicTables(br *bitReader, log *zerolog.Logger) (literal, distance *huffmanTable, err error) {
	hlit, err := br.readBits(hlitBits)
	if err != nil {
		return nil, nil, err
	}
	hdist, err := br.readBits(hdistBits)
	if err != nil {
		return nil, nil, err
	}
	hclen, err := br.readBits(hclenBits)
	if err != nil {
		return nil, nil, err
	}

	nlit := int(hlit) + hlitBias
	ndist := int(hdist) + hdistBias
	nclen := int(hclen) + hclenBias

	log.Debug().Int("hlit", nlit).Int("hdist", ndist).Int("hclen", nclen).Msg("dynamic block header")

	if nlit > maxLiteralCodes || ndist > maxDistanceCodes {
		return nil, nil, errors.Wrapf(ErrInvalidTable, "hlit=%d hdist=%d", nlit, ndist)
	}

	clSymbols := make([]huffmanSymbol, nclen)
	for i := range clSymbols {
		l, err := br.readBits(codeLengthBits)
		if err != nil {
			return nil, nil, err
		}
		clSymbols[i] = huffmanSymbol{value: uint16(codeLengthOrder[i]), length: uint8(l)} //nolint:gosec // G115: 3-bit field
	}

	clTable, err := newHuffmanTable(clSymbols)
	if err != nil {
		return nil, nil, errors.Wrap(err, "code length table")
	}

	lengths, err := readCodeLengths(br, clTable, nlit+ndist)
	if err != nil {
		return nil, nil, err
	}

	if lengths[endOfBlock] == 0 {
		return nil, nil, errors.Wrap(ErrInvalidTable, "missing end-of-block code")
	}

	literal, err = newHuffmanTableFromLengths(lengths[:nlit])
	if err != nil {
		return nil, nil, errors.Wrap(err, "literal/length table")
	}

	distance, err = newHuffmanTableFromLengths(lengths[nlit:])
	if err != nil {
		return nil, nil, errors.Wrap(err, "distance table")
	}

	return literal, distance, nil
}

// readCodeLengths decodes n run-length encoded code lengths using the code length table.
func readCodeLengths(br *bitReader, clTable *huffmanTable, n int) ([]uint8, error) {
	lengths := make([]uint8, 0, n)
	for len(lengths) < n {
		sym, err := clTable.decode(br)
		if err != nil {
			return nil, err
		}

		if sym < 16 {
			lengths = append(lengths, uint8(sym))
			continue
		}

		var (
			repeat uint32
			extra  uint
			value  uint8
		)
		switch sym {
		case 16:
			if len(lengths) == 0 {
				return nil, errors.Wrap(ErrInvalidTable, "repeat with no previous length")
			}
			repeat, extra, value = 3, 2, lengths[len(lengths)-1]
		case 17:
			repeat, extra = 3, 3
		case 18:
			repeat, extra = 11, 7
		default:
			return nil, errors.Wrapf(ErrInternal, "code length symbol %d", sym)
		}

		bits, err := br.readBits(extra)
		if err != nil {
			return nil, err
		}
		repeat += bits

		if len(lengths)+int(repeat) > n {
			return nil, errors.Wrapf(ErrInvalidTable, "repeat of %d overruns %d code lengths", repeat, n)
		}

		for range repeat {
			lengths = append(lengths, value)
		}
	}

	return lengths, nil
}
