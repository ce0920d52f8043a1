// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zinflate

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/woozymasta/zinflate"
)

func init() {
	var (
		output    string
		maxOutput int
		maxInput  int
	)

	inflateCommand := &cobra.Command{
		Use:   "inflate [file]",
		Short: "Decompress a zlib stream from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			opts := &zinflate.DecompressOptions{
				MaxOutputSize: maxOutput,
				MaxInputSize:  maxInput,
				Logger:        &logger,
			}

			out, err := zinflate.DecompressFromReader(in, opts)
			if err != nil {
				return err
			}

			return writeOutput(output, out)
		},
	}

	inflateCommand.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")
	inflateCommand.Flags().IntVar(&maxOutput, "max-output", 0, "maximum decompressed size in bytes (0 = unlimited)")
	inflateCommand.Flags().IntVar(&maxInput, "max-input", 0, "maximum compressed size in bytes (0 = unlimited)")
	rootCommand.AddCommand(inflateCommand)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	logger.Info().Str("file", path).Int("bytes", len(data)).Msg("wrote output")
	return nil
}
