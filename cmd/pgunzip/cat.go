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
	"github.com/spf13/cobra"
)

func newCatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat [file...]",
		Short: "decompress gzip files or stdin to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(cmd.Context(), args)
		},
	}
	return cmd
}

func runCat(ctx context.Context, args []string) error {
	opts := []pgunzip.Option{pgunzip.WithVerbose(verbose)}

	if len(args) == 0 {
		rd, _, err := pgunzip.NewReader(os.Stdin, opts...)
		if err != nil {
			return err
		}
		_, err = io.Copy(os.Stdout, rd)
		return err
	}

	sources := make([]pgunzip.Source, len(args))
	for i, name := range args {
		in, _, cleanup, err := openFileOrURL(ctx, name)
		if err != nil {
			return err
		}
		data, err := io.ReadAll(in)
		cleanup(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		sources[i] = pgunzip.Source{Name: name, Data: data}
	}

	results, err := pgunzip.DecompressSources(ctx, sources,
		pgunzip.WithVerbose(verbose), pgunzip.WithConcurrency(concurrency))
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("%s: %w", r.Name, r.Err)
		}
		if _, err := os.Stdout.Write(r.Data); err != nil {
			return err
		}
	}
	return nil
}
