// Copyright 2020 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cosnicolaou/pgunzip"
	"github.com/schollz/progressbar/v2"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

func newUnzipCommand() *cobra.Command {
	var (
		output       string
		showProgress bool
	)
	cmd := &cobra.Command{
		Use:   "unzip <file>",
		Short: "decompress a single gzip file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnzip(cmd.Context(), args[0], output, showProgress)
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "output file or s3 path, omit for stdout")
	cmd.Flags().BoolVar(&showProgress, "progress", true, "display a progress bar")
	return cmd
}

func runUnzip(ctx context.Context, name, output string, showProgress bool) error {
	in, size, readerCleanup, err := openFileOrURL(ctx, name)
	if err != nil {
		return err
	}
	defer readerCleanup(ctx)

	out, writerCleanup, err := createFileOrStdout(ctx, output)
	if err != nil {
		return err
	}

	isTTY := terminal.IsTerminal(int(os.Stdout.Fd()))
	var bar *progressbar.ProgressBar
	if showProgress && size > 0 && (len(output) > 0 || !isTTY) {
		barWr := os.Stdout
		if !isTTY {
			barWr = os.Stderr
		}
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetBytes64(size),
			progressbar.OptionSetWriter(barWr),
			progressbar.OptionSetPredictTime(true))
		bar.RenderBlank()
		in = &countingReader{r: in, bar: bar}
	}

	rd, _, err := pgunzip.NewReader(in, pgunzip.WithVerbose(verbose))
	if err != nil {
		return err
	}
	_, err = io.Copy(out, rd)
	if cerr := writerCleanup(ctx); err == nil {
		err = cerr
	}
	if bar != nil {
		fmt.Fprintln(os.Stdout)
	}
	return err
}

// countingReader feeds bytes read through to a progress bar as they are
// consumed, so the bar reflects compressed-input progress rather than
// decompressed-output progress (the former is bounded by the file's known
// size; the latter is not known in advance).
type countingReader struct {
	r   interface{ Read(p []byte) (int, error) }
	bar *progressbar.ProgressBar
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.bar.Add(n)
	}
	return n, err
}
