// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/woozymasta/zinflate/png"
)

func init() {
	var (
		dump    string
		skipCRC bool
	)

	pngCommand := &cobra.Command{
		Use:   "png [file]",
		Short: "Parse a PNG file, print its chunks and inflate its image data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			img, err := png.Decode(src, &png.Options{SkipCRC: skipCRC, Logger: &logger})
			if err != nil {
				return err
			}

			printImage(cmd.OutOrStdout(), img)

			if dump != "" {
				return writeOutput(dump, img.Data)
			}
			return nil
		},
	}

	pngCommand.Flags().StringVar(&dump, "dump", "", "write the inflated scanline data to this file (- for stdout)")
	pngCommand.Flags().BoolVar(&skipCRC, "skip-crc", false, "do not verify chunk CRCs")
	rootCommand.AddCommand(pngCommand)
}

func printImage(w io.Writer, img *png.Image) {
	h := img.Header
	fmt.Fprintf(w, "size:        %dx%d\n", h.Width, h.Height)
	fmt.Fprintf(w, "bit depth:   %d\n", h.BitDepth)
	fmt.Fprintf(w, "color type:  %s (%d)\n", h.ColorType, h.ColorType)
	fmt.Fprintf(w, "interlace:   %d\n", h.Interlace)

	if img.SRGB != nil {
		fmt.Fprintf(w, "srgb intent: %d\n", *img.SRGB)
	}

	if len(img.Palette) > 0 {
		fmt.Fprintf(w, "palette:     %d entries\n", len(img.Palette))
	}

	if bg := img.Background; bg != nil {
		switch h.ColorType {
		case png.Grayscale, png.GrayscaleAlpha:
			fmt.Fprintf(w, "background:  gray %d\n", bg.Gray)
		case png.TrueColor, png.TrueColorAlpha:
			fmt.Fprintf(w, "background:  rgb %d %d %d\n", bg.R, bg.G, bg.B)
		case png.Indexed:
			p := img.Palette[bg.PaletteIndex]
			fmt.Fprintf(w, "background:  palette %d (rgb %d %d %d)\n", bg.PaletteIndex, p.R, p.G, p.B)
		}
	}

	fmt.Fprintln(w, "chunks:")
	for _, c := range img.Chunks {
		fmt.Fprintf(w, "  %s  offset=%d length=%d crc=%08x\n", c.Type, c.Offset, len(c.Data), c.CRC)
	}

	fmt.Fprintf(w, "compressed:  %d bytes\n", len(img.Compressed))
	fmt.Fprintf(w, "inflated:    %d bytes\n", len(img.Data))
}
